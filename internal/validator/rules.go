package validator

import (
	"log"

	"bcommune_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules wires the enum rules used by the DTO tags. Empty values
// pass: 'required' is responsible for presence.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-account-role", validateAccountRole)
	mustRegister("is-visibility", validateVisibility)
	mustRegister("is-industry", validateIndustry)
	mustRegister("is-company-size", validateCompanySize)
}

func validateAccountRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.AccountRole(value) {
	case models.AccountRoleIndividual, models.AccountRoleCompany:
		return true
	default:
		return false
	}
}

func validateVisibility(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.IdeaVisibility(value) {
	case models.IdeaVisibilityPublic, models.IdeaVisibilityPrivate:
		return true
	default:
		return false
	}
}

func validateIndustry(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	for _, industry := range models.Industries {
		if value == industry {
			return true
		}
	}
	return false
}

func validateCompanySize(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	for _, size := range models.CompanySizes {
		if value == size {
			return true
		}
	}
	return false
}
