// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"budgetapp/internal/models"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		RegisterWith(v)
	}
}

// RegisterWith registers the custom validators on v.
func RegisterWith(v *validator.Validate) {
	_ = v.RegisterValidation("transaction_type", validateTransactionType)
	_ = v.RegisterValidation("category", validateCategory)
	_ = v.RegisterValidation("civil_date", validateCivilDate)
	_ = v.RegisterValidation("clock_time", validateClockTime)
}

func validateTransactionType(fl validator.FieldLevel) bool {
	return models.TransactionType(fl.Field().String()).Valid()
}

func validateCategory(fl validator.FieldLevel) bool {
	return models.CategoryType(fl.Field().String()).Valid()
}

func validateCivilDate(fl validator.FieldLevel) bool {
	_, err := models.ParseDate(fl.Field().String())
	return err == nil
}

func validateClockTime(fl validator.FieldLevel) bool {
	_, err := time.Parse(models.TimeLayout, fl.Field().String())
	return err == nil
}
