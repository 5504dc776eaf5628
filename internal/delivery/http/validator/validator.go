// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	domainerrors "bazaar/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps a validator instance for use as echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates a CustomValidator with the default rule set.
func New() *CustomValidator {
	return &CustomValidator{validate: validator.New()}
}

// Validate checks struct tags and maps failures onto the domain validation error.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	return nil
}
