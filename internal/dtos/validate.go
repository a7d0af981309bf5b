package dtos

import (
	"github.com/go-playground/validator/v10"

	apperrors "github.com/justsurfingit/amp-job-portal/internal/errors"
)

// validate reads the same `binding` tags gin uses, so a request is checked
// identically whether it arrives over HTTP or is built in code.
var validate = func() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	return v
}()

// Validate checks req against its binding tags and reports failures as
// INVALID_INPUT.
func Validate(req any) error {
	if err := validate.Struct(req); err != nil {
		return apperrors.InvalidInput("invalid request", err)
	}
	return nil
}
