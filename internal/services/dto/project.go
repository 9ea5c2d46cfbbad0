package dto

import "time"

// CreateProjectRequest - company-to-company project listing. Timeline is a
// plain date; the datetime tag rejects malformed values before the service
// parses it.
type CreateProjectRequest struct {
	Title             string  `json:"title" validate:"required,max=200"`
	Description       string  `json:"description" validate:"required"`
	ProjectType       string  `json:"project_type" validate:"required,max=100"`
	Industry          string  `json:"industry" validate:"required,max=100"`
	Budget            float64 `json:"budget" validate:"min=0"`
	Timeline          string  `json:"timeline" validate:"required,datetime=2006-01-02"`
	Location          *string `json:"location" validate:"omitempty,max=200"`
	ExpertiseRequired string  `json:"expertise_required" validate:"required"`
	PaymentTerms      string  `json:"payment_terms" validate:"required"`

	NDARequired             bool `json:"nda_required"`
	ConfidentialityRequired bool `json:"confidentiality_required"`
	IPRightsRequired        bool `json:"ip_rights_required"`

	CustomField *string `json:"custom_field" validate:"omitempty,max=200"`
}

// UpdateProjectRequest uses pointers so absent fields stay untouched.
type UpdateProjectRequest struct {
	Title             *string  `json:"title,omitempty" validate:"omitempty,max=200"`
	Description       *string  `json:"description,omitempty"`
	ProjectType       *string  `json:"project_type,omitempty" validate:"omitempty,max=100"`
	Industry          *string  `json:"industry,omitempty" validate:"omitempty,max=100"`
	Budget            *float64 `json:"budget,omitempty" validate:"omitempty,min=0"`
	Timeline          *string  `json:"timeline,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Location          *string  `json:"location,omitempty" validate:"omitempty,max=200"`
	ExpertiseRequired *string  `json:"expertise_required,omitempty"`
	PaymentTerms      *string  `json:"payment_terms,omitempty"`

	NDARequired             *bool `json:"nda_required,omitempty"`
	ConfidentialityRequired *bool `json:"confidentiality_required,omitempty"`
	IPRightsRequired        *bool `json:"ip_rights_required,omitempty"`

	CustomField *string `json:"custom_field,omitempty" validate:"omitempty,max=200"`
}

type ProjectResponse struct {
	ID                string    `json:"id"`
	AccountID         string    `json:"account_id"`
	Title             string    `json:"title"`
	Description       string    `json:"description"`
	ProjectType       string    `json:"project_type"`
	Industry          string    `json:"industry"`
	Budget            float64   `json:"budget"`
	Timeline          string    `json:"timeline"`
	Location          *string   `json:"location,omitempty"`
	ExpertiseRequired string    `json:"expertise_required"`
	PaymentTerms      string    `json:"payment_terms"`
	NDARequired       bool      `json:"nda_required"`
	Confidentiality   bool      `json:"confidentiality_required"`
	IPRightsRequired  bool      `json:"ip_rights_required"`
	CustomField       *string   `json:"custom_field,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

// ProjectBoardResponse is the /projects listing: everyone else's projects
// next to the caller's own. The two halves never overlap.
type ProjectBoardResponse struct {
	Others []ProjectResponse `json:"others"`
	Mine   []ProjectResponse `json:"mine"`
}
