package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// StaffAuditLog records staff/admin actions against payments and the
// committee catalog: who did what, to which row, from where.
type StaffAuditLog struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	StaffID     uint           `gorm:"not null;index" json:"staff_id"`
	Action      string         `gorm:"type:varchar(100);not null" json:"action"` // e.g. "payment_review", "committee_update"
	Resource    string         `gorm:"type:varchar(100)" json:"resource"`        // e.g. "payments", "committees"
	ResourceID  uint           `json:"resource_id"`
	OldValue    datatypes.JSON `gorm:"type:jsonb" json:"old_value"`
	NewValue    datatypes.JSON `gorm:"type:jsonb" json:"new_value"`
	IPAddress   string         `gorm:"type:varchar(45)" json:"ip_address"`
	UserAgent   string         `gorm:"type:text" json:"user_agent"`
	Description string         `gorm:"type:text" json:"description"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Staff User `gorm:"foreignKey:StaffID;constraint:OnDelete:CASCADE" json:"staff,omitempty"`
}

// TableName specifies the table name for StaffAuditLog
func (StaffAuditLog) TableName() string {
	return "staff_audit_logs"
}
