package model

import (
	"time"

	"gorm.io/gorm"
)

// The five fee categories a student can pay into. Payment rows must name
// one of these; anything else is rejected at submission time.
const (
	CommitteeCF  = "CF"
	CommitteeLAC = "LAC"
	CommitteePTA = "PTA"
	CommitteeQAA = "QAA"
	CommitteeRHC = "RHC"
)

// CommitteeNames lists the known categories in display order.
var CommitteeNames = []string{CommitteeCF, CommitteeLAC, CommitteePTA, CommitteeQAA, CommitteeRHC}

// IsKnownCommittee reports whether name is one of the five categories.
// Matching is case-sensitive; committee names are stored uppercased.
func IsKnownCommittee(name string) bool {
	for _, n := range CommitteeNames {
		if n == name {
			return true
		}
	}
	return false
}

// Committee is a catalog row describing one fee category: what it is for,
// the suggested amount and the payment deadline. The catalog is
// informational; payment rows reference committees by name, not by ID.
type Committee struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	Name       string         `gorm:"type:varchar(10);uniqueIndex;not null" json:"name"`
	Details    string         `gorm:"type:text" json:"details"`
	Amount     string         `gorm:"type:text" json:"amount"`
	Deadline   string         `gorm:"type:text" json:"deadline"`
	DatePosted time.Time      `gorm:"autoCreateTime" json:"date_posted"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for Committee
func (Committee) TableName() string {
	return "committees"
}
