// Package validator adapts go-playground/validator to echo's Validator
// interface so handlers can call c.Validate on bound input DTOs.
package validator

import (
	validatorLib "github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

type echoValidator struct {
	validate *validatorLib.Validate
}

// New returns an echo-compatible validator backed by go-playground/validator.
func New() *echoValidator {
	return &echoValidator{validate: validatorLib.New()}
}

// Validate implements echo.Validator.
func (v *echoValidator) Validate(i any) error {
	return errors.WithStack(v.validate.Struct(i))
}
