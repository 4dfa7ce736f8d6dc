package report

import (
	"github.com/feetrack/api/services"
	"github.com/feetrack/api/utils/response"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ReportHandler serves the printable accepted-payments report
type ReportHandler struct {
	report *services.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(db *gorm.DB) *ReportHandler {
	return &ReportHandler{report: services.NewReportService(db)}
}

// GetAcceptedPaymentsPDF handles GET /api/v1/reports/payments. It streams the
// PDF inline so browsers render it instead of downloading. Semester and
// school year default to the current term when omitted.
func (h *ReportHandler) GetAcceptedPaymentsPDF(c *fiber.Ctx) error {
	semester := c.Query("semester", "First Semester")
	schoolYear := c.Query("school_year", "2025-2026")

	payments, err := h.report.AcceptedPayments(c.Context(), semester, schoolYear)
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch accepted payments")
	}

	pdfBytes, err := h.report.RenderPaymentsPDF(payments, semester, schoolYear)
	if err != nil {
		return response.InternalServerError(c, "Failed to render report")
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="accepted_payments.pdf"`)
	return c.Send(pdfBytes)
}
