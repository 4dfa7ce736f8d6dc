package model

import (
	"time"

	"gorm.io/gorm"
)

// Feedback is one staff review of a payment. The payment row keeps only
// the latest status and feedback text; these rows are the trail of what
// was said, newest first.
type Feedback struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	PaymentID  uint           `gorm:"not null;index" json:"payment_id"`
	ReviewerID uint           `gorm:"index" json:"reviewer_id"`
	Status     string         `gorm:"type:text;not null" json:"status"`
	Feedback   string         `gorm:"type:text" json:"feedback"`
	DateIssued time.Time      `gorm:"autoCreateTime" json:"date_issued"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	Payment  Payment `gorm:"foreignKey:PaymentID;constraint:OnDelete:CASCADE" json:"-"`
	Reviewer User    `gorm:"foreignKey:ReviewerID;constraint:OnDelete:SET NULL" json:"reviewer,omitempty"`
}

// TableName specifies the table name for Feedback
func (Feedback) TableName() string {
	return "feedbacks"
}
