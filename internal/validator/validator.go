// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// expenseDateLayout is the wire format for expense dates.
const expenseDateLayout = "2006-01-02"

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("expense_date", validateExpenseDate)
		_ = v.RegisterValidation("month", validateMonth)
	}
}

// ParseExpenseDate parses a YYYY-MM-DD date string.
func ParseExpenseDate(s string) (time.Time, error) {
	return time.Parse(expenseDateLayout, s)
}

func validateExpenseDate(fl validator.FieldLevel) bool {
	_, err := time.Parse(expenseDateLayout, fl.Field().String())
	return err == nil
}

func validateMonth(fl validator.FieldLevel) bool {
	m := fl.Field().Int()
	return m >= 1 && m <= 12
}
