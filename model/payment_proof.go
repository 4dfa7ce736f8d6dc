package model

import (
	"time"

	"gorm.io/gorm"
)

// PaymentProof is one uploaded image evidencing a payment. A payment owns
// its proofs: deleting the payment removes the rows and the stored files.
type PaymentProof struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	PaymentID  uint           `gorm:"not null;index" json:"payment_id"`
	StorageKey string         `gorm:"not null;type:text" json:"storage_key"`
	Filename   string         `gorm:"not null" json:"filename"`
	URL        string         `gorm:"type:text" json:"url"`
	FileSize   int64          `gorm:"default:0" json:"file_size"`
	UploadedAt time.Time      `gorm:"autoCreateTime" json:"uploaded_at"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	Payment Payment `gorm:"foreignKey:PaymentID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name for PaymentProof
func (PaymentProof) TableName() string {
	return "payment_proofs"
}
