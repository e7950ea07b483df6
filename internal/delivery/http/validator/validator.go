// Package validator adapts go-playground/validator to echo's Validator
// interface.
package validator

import (
	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps a shared validator instance.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates the validator used by the echo server.
func New() *CustomValidator {
	return &CustomValidator{validate: validator.New()}
}

// Validate implements echo.Validator. The raw validation error is
// surfaced; the HTTP error handler maps it onto the response envelope.
func (v *CustomValidator) Validate(i any) error {
	return v.validate.Struct(i)
}
