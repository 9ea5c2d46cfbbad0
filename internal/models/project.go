package models

import "time"

// Project is the only owned entity: it belongs to exactly one company
// account, and only that account may update or delete it.
type Project struct {
	BaseModel
	AccountID         string `gorm:"not null;index"`
	Title             string `gorm:"not null"`
	Description       string `gorm:"not null"`
	ProjectType       string `gorm:"not null"`
	Industry          string `gorm:"not null"`
	Budget            float64
	Timeline          time.Time `gorm:"type:date"`
	Location          *string
	ExpertiseRequired string `gorm:"not null"`
	PaymentTerms      string `gorm:"not null"`

	NDARequired             bool `gorm:"default:false"`
	ConfidentialityRequired bool `gorm:"default:false"`
	IPRightsRequired        bool `gorm:"default:false"`

	CustomField *string

	Owner *Account `gorm:"foreignKey:AccountID"`
}
