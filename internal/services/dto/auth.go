package dto

import (
	"time"

	"bcommune_backend/internal/models"
)

// IndividualSignupRequest - individual signup form.
type IndividualSignupRequest struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

// CompanySignupRequest - company signup form. Every profile field the original
// form marks required is required here too.
type CompanySignupRequest struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`

	CompanyName        string `json:"company_name" validate:"required,max=255"`
	CompanyWebsite     string `json:"company_website" validate:"required,url"`
	Industry           string `json:"industry" validate:"required,is-industry"`
	CompanySize        string `json:"company_size" validate:"required,is-company-size"`
	CompanyType        string `json:"company_type" validate:"required,max=255"`
	PersonName         string `json:"person_name" validate:"required,max=255"`
	Designation        string `json:"designation" validate:"required,max=255"`
	PhoneNumber        string `json:"phone_number" validate:"required,numeric,len=10"`
	BcommuneProfileURL string `json:"bcommune_profile" validate:"required,url"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type LoginResponse struct {
	AccessToken  string     `json:"access_token"`
	RefreshToken string     `json:"refresh_token"`
	Redirect     string     `json:"redirect,omitempty"`
	Account      AccountDTO `json:"account"`
}

type AccountDTO struct {
	ID             string             `json:"id"`
	Email          string             `json:"email"`
	Role           models.AccountRole `json:"role"`
	CreatedAt      time.Time          `json:"created_at"`
	CompanyProfile *CompanyProfileDTO `json:"company_profile,omitempty"`
}

type CompanyProfileDTO struct {
	CompanyName        string `json:"company_name"`
	CompanyWebsite     string `json:"company_website"`
	Industry           string `json:"industry"`
	CompanySize        string `json:"company_size"`
	CompanyType        string `json:"company_type"`
	PersonName         string `json:"person_name"`
	Designation        string `json:"designation"`
	PhoneNumber        string `json:"phone_number"`
	BcommuneProfileURL string `json:"bcommune_profile"`
}

// NewAccountDTO maps an account (with preloaded profile) to its API shape.
func NewAccountDTO(account *models.Account) AccountDTO {
	d := AccountDTO{
		ID:        account.ID,
		Email:     account.Email,
		Role:      account.Role,
		CreatedAt: account.CreatedAt,
	}
	if account.CompanyProfile != nil {
		d.CompanyProfile = &CompanyProfileDTO{
			CompanyName:        account.CompanyProfile.CompanyName,
			CompanyWebsite:     account.CompanyProfile.CompanyWebsite,
			Industry:           account.CompanyProfile.Industry,
			CompanySize:        account.CompanyProfile.CompanySize,
			CompanyType:        account.CompanyProfile.CompanyType,
			PersonName:         account.CompanyProfile.PersonName,
			Designation:        account.CompanyProfile.Designation,
			PhoneNumber:        account.CompanyProfile.PhoneNumber,
			BcommuneProfileURL: account.CompanyProfile.BcommuneProfileURL,
		}
	}
	return d
}
