package model

import (
	"strconv"
	"time"

	"gorm.io/gorm"
)

// Payment statuses exercised by the review flow. Status is stored as text;
// only these three values are ever written by this API.
const (
	StatusPending  = "Pending"
	StatusAccepted = "Accepted"
	StatusRejected = "Rejected"
)

// Payment is one student submission against a committee. The legacy amount
// and the five per-category fields are text columns carried over from the
// original schema: rows imported from it may hold blanks or junk, so every
// reader parses them defensively instead of trusting the column type.
type Payment struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	StudentID  uint           `gorm:"not null;index" json:"student_id"`
	Committee  string         `gorm:"type:varchar(10);index;not null" json:"committee"`
	Amount     string         `gorm:"type:text" json:"amount"`
	Semester   string         `gorm:"type:text" json:"semester"`
	SchoolYear string         `gorm:"type:text" json:"school_year"`
	Status     string         `gorm:"type:text;default:'Pending'" json:"status"`
	Feedback   string         `gorm:"type:text" json:"feedback"`
	IsWalkIn   bool           `gorm:"default:false" json:"is_walk_in"`
	CF         *string        `gorm:"type:text" json:"cf"`
	LAC        *string        `gorm:"type:text" json:"lac"`
	PTA        *string        `gorm:"type:text" json:"pta"`
	QAA        *string        `gorm:"type:text" json:"qaa"`
	RHC        *string        `gorm:"type:text" json:"rhc"`
	DateIssued time.Time      `gorm:"autoCreateTime;index" json:"date_issued"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Student   User           `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE" json:"student,omitempty"`
	Proofs    []PaymentProof `gorm:"foreignKey:PaymentID;constraint:OnDelete:CASCADE" json:"proofs,omitempty"`
	Feedbacks []Feedback     `gorm:"foreignKey:PaymentID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name for Payment
func (Payment) TableName() string {
	return "payments"
}

// CategoryValue returns the raw stored value for a category field.
// The second return is false when the column is NULL.
func (p *Payment) CategoryValue(name string) (string, bool) {
	var v *string
	switch name {
	case CommitteeCF:
		v = p.CF
	case CommitteeLAC:
		v = p.LAC
	case CommitteePTA:
		v = p.PTA
	case CommitteeQAA:
		v = p.QAA
	case CommitteeRHC:
		v = p.RHC
	}
	if v == nil {
		return "", false
	}
	return *v, true
}

// SetCategoryValue writes a category field. Unknown names are ignored.
func (p *Payment) SetCategoryValue(name string, value string) {
	switch name {
	case CommitteeCF:
		p.CF = &value
	case CommitteeLAC:
		p.LAC = &value
	case CommitteePTA:
		p.PTA = &value
	case CommitteeQAA:
		p.QAA = &value
	case CommitteeRHC:
		p.RHC = &value
	}
}

// ClearCategoryValue resets a category field to NULL. Unknown names are
// ignored.
func (p *Payment) ClearCategoryValue(name string) {
	switch name {
	case CommitteeCF:
		p.CF = nil
	case CommitteeLAC:
		p.LAC = nil
	case CommitteePTA:
		p.PTA = nil
	case CommitteeQAA:
		p.QAA = nil
	case CommitteeRHC:
		p.RHC = nil
	}
}

// Reassign moves the payment to another committee and keeps the category
// mirror consistent: the old committee's column is cleared and the current
// amount is mirrored into the new one. Without the clear, a reassigned
// payment would count under both categories in the rollups.
func (p *Payment) Reassign(committee string) {
	if committee == p.Committee {
		return
	}
	p.ClearCategoryValue(p.Committee)
	p.Committee = committee
	p.SetCategoryValue(committee, p.Amount)
}

// ParseAmount parses a legacy text amount. ok is false for NULL, blank or
// non-numeric values; callers skip those rather than failing.
func ParseAmount(raw *string) (float64, bool) {
	if raw == nil {
		return 0, false
	}
	v, err := strconv.ParseFloat(*raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// FormatAmount renders an amount the way the text columns store it,
// trimming the trailing zeros strconv would otherwise keep.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
