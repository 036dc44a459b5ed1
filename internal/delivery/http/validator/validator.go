// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	domainerrors "chaincast/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
)

// echoValidator wraps a single validator instance; it is safe for concurrent use.
type echoValidator struct {
	validate *playground.Validate
}

// New builds the request validator installed on the echo server.
func New() *echoValidator {
	return &echoValidator{
		validate: playground.New(playground.WithRequiredStructEnabled()),
	}
}

// Validate checks a bound request struct against its validation tags. Failures
// surface as a domain validation error so the error handler renders them with
// the right status and code.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
