package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupForm struct {
	Email    string `json:"email" validate:"required,email"`
	Role     string `json:"role" validate:"required,is-account-role"`
	Industry string `json:"industry" validate:"omitempty,is-industry"`
	Size     string `json:"company_size" validate:"omitempty,is-company-size"`
	Phone    string `json:"phone_number" validate:"omitempty,numeric,len=10"`
}

func TestValidate_OK(t *testing.T) {
	v := New()

	err := v.Validate(&signupForm{
		Email:    "founder@example.com",
		Role:     "company",
		Industry: "Information Technology",
		Size:     "11-50",
		Phone:    "9876543210",
	})
	assert.NoError(t, err)
}

func TestValidate_ReportsJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(&signupForm{Role: "company"})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors, "email")
	assert.Equal(t, "This field is required", vErr.Errors["email"])
}

func TestValidate_AccountRoleRule(t *testing.T) {
	v := New()

	err := v.Validate(&signupForm{Email: "a@b.com", Role: "admin"})
	require.Error(t, err)

	vErr := err.(*ValidationError)
	assert.Equal(t, "Must be 'individual' or 'company'", vErr.Errors["role"])
}

func TestValidate_IndustryRule(t *testing.T) {
	v := New()

	err := v.Validate(&signupForm{Email: "a@b.com", Role: "company", Industry: "Alchemy"})
	require.Error(t, err)

	vErr := err.(*ValidationError)
	assert.Equal(t, "Unknown industry", vErr.Errors["industry"])
}

func TestValidate_CompanySizeRule(t *testing.T) {
	v := New()

	err := v.Validate(&signupForm{Email: "a@b.com", Role: "company", Size: "a few"})
	require.Error(t, err)

	vErr := err.(*ValidationError)
	assert.Equal(t, "Unknown company size bucket", vErr.Errors["company_size"])
}

func TestValidate_PhoneRules(t *testing.T) {
	v := New()

	err := v.Validate(&signupForm{Email: "a@b.com", Role: "company", Phone: "12345"})
	require.Error(t, err)
	vErr := err.(*ValidationError)
	assert.Contains(t, vErr.Errors, "phone_number")

	err = v.Validate(&signupForm{Email: "a@b.com", Role: "company", Phone: "98765O3210"})
	require.Error(t, err)
	vErr = err.(*ValidationError)
	assert.Equal(t, "Must contain only digits", vErr.Errors["phone_number"])
}

type visibilityForm struct {
	Visibility string `form:"visibility" validate:"required,is-visibility"`
}

func TestValidate_VisibilityRuleUsesFormTag(t *testing.T) {
	v := New()

	err := v.Validate(&visibilityForm{Visibility: "secret"})
	require.Error(t, err)

	vErr := err.(*ValidationError)
	assert.Equal(t, "Must be 'public' or 'private'", vErr.Errors["visibility"])

	assert.NoError(t, v.Validate(&visibilityForm{Visibility: "public"}))
	assert.NoError(t, v.Validate(&visibilityForm{Visibility: "private"}))
}
