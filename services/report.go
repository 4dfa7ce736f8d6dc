package services

import (
	"bytes"
	"context"
	"fmt"

	"github.com/feetrack/api/model"
	"github.com/jung-kurt/gofpdf"
	"gorm.io/gorm"
)

// Report layout constants, in millimeters on A4 portrait.
const (
	reportTopMargin    = 20.0
	reportLeftMargin   = 15.0
	reportBottomMargin = 20.0
	reportSectionGap   = 4.0
)

// ReportService renders the accepted-payment summary as a printable PDF.
type ReportService struct {
	db *gorm.DB
}

// NewReportService creates a new report service
func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{db: db}
}

// AcceptedPayments returns accepted payments for a term, newest first.
// Semester and school year filter by case-insensitive partial match;
// status must equal "Accepted" exactly.
func (s *ReportService) AcceptedPayments(ctx context.Context, semester, schoolYear string) ([]model.Payment, error) {
	query := s.db.WithContext(ctx).
		Model(&model.Payment{}).
		Preload("Student").
		Preload("Student.Profile").
		Where("status = ?", model.StatusAccepted)

	if semester != "" {
		query = query.Where("semester ILIKE ?", "%"+semester+"%")
	}
	if schoolYear != "" {
		query = query.Where("school_year ILIKE ?", "%"+schoolYear+"%")
	}

	var payments []model.Payment
	if err := query.Order("date_issued DESC").Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

// RenderPaymentsPDF formats payments into the printable summary: a header
// followed by one section per payment. Page breaks happen automatically
// when vertical space runs out; each new page starts at the fixed top
// margin.
func (s *ReportService) RenderPaymentsPDF(payments []model.Payment, semester, schoolYear string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(reportLeftMargin, reportTopMargin, reportLeftMargin)
	pdf.SetAutoPageBreak(true, reportBottomMargin)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, "Accepted Payments Report")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 10)
	term := "All terms"
	if semester != "" || schoolYear != "" {
		term = fmt.Sprintf("%s %s", semester, schoolYear)
	}
	pdf.Cell(0, 6, term)
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("%d payment(s)", len(payments)))
	pdf.Ln(10)

	for _, p := range payments {
		s.renderSection(pdf, p)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render report: %w", err)
	}
	return buf.Bytes(), nil
}

func (s *ReportService) renderSection(pdf *gofpdf.Fpdf, p model.Payment) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 6, fmt.Sprintf("%s  -  %s", p.Student.FullName(), p.Committee))
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "", 10)
	for _, name := range model.CommitteeNames {
		value := "0" // Absent category amounts print as zero
		if raw, ok := p.CategoryValue(name); ok && raw != "" {
			value = raw
		}
		pdf.Cell(38, 5, fmt.Sprintf("%s: %s", name, value))
	}
	pdf.Ln(5)

	pdf.Cell(0, 5, fmt.Sprintf("Status: %s    Issued: %s", p.Status, p.DateIssued.Format("2006-01-02")))
	pdf.Ln(5 + reportSectionGap)
}
