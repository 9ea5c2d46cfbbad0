package models

import "time"

// Account is a registered user. Email doubles as the username. Role is set
// once at signup and never updated afterwards.
type Account struct {
	BaseModel
	Email        string      `gorm:"uniqueIndex;not null"`
	PasswordHash string      `gorm:"not null"`
	Role         AccountRole `gorm:"type:varchar(20);not null"`

	// Relations
	CompanyProfile *CompanyProfile `gorm:"foreignKey:AccountID"`
	RefreshTokens  []RefreshToken  `gorm:"foreignKey:AccountID"`
}

// CompanyProfile carries the company-only signup fields. Individual accounts
// have no row here, so an account can never be half a company.
type CompanyProfile struct {
	BaseModel
	AccountID          string `gorm:"not null;uniqueIndex"`
	CompanyName        string `gorm:"not null"`
	CompanyWebsite     string
	Industry           string `gorm:"type:varchar(50)"`
	CompanySize        string `gorm:"type:varchar(20)"`
	CompanyType        string
	PersonName         string
	Designation        string
	PhoneNumber        string `gorm:"type:varchar(15)"`
	BcommuneProfileURL string
}

type RefreshToken struct {
	BaseModel
	AccountID string    `gorm:"not null;index"`
	Token     string    `gorm:"not null;uniqueIndex"`
	ExpiresAt time.Time `gorm:"not null"`
}
