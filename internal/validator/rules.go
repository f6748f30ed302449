package validator

import (
	"log"

	"github.com/go-playground/validator/v10"

	"fixa_backend/internal/models"
)

// registerCustomRules adds the domain value rules. Empty values pass so that
// 'required' stays the single source of presence checks.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-user-role", validateUserRole)
	mustRegister("is-budget-type", validateBudgetType)
	mustRegister("is-urgency", validateUrgency)
}

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	role := models.UserRole(value)
	// Admin accounts are provisioned out of band, not via registration.
	return models.ValidUserRole(role) && role != models.UserRoleAdmin
}

func validateBudgetType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.ValidBudgetType(models.BudgetType(value))
}

func validateUrgency(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.ValidUrgency(models.UrgencyTier(value))
}
