package models

import (
	"time"

	"github.com/lib/pq"
)

// Job postings are free text all the way down: company is a name, not a
// relation, and any authenticated account can post one.
type Job struct {
	BaseModel
	Title        string         `gorm:"not null"`
	Company      string         `gorm:"not null"`
	Location     string         `gorm:"not null"`
	Description  string         `gorm:"not null"`
	Requirements string         `gorm:"not null"`
	Salary       string         `gorm:"default:'Not Specified'"`
	Skills       pq.StringArray `gorm:"type:text[]"`
	PostedAt     time.Time      `gorm:"autoCreateTime"`
}
