package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// checkFields runs the `validate` struct tags and reports the first
// violation as ErrInvalid.
func checkFields(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	fe := fieldErrs[0]
	if fe.Param() == "" {
		return fmt.Errorf("%w: %s = %v fails %s", ErrInvalid, fe.Namespace(), fe.Value(), fe.Tag())
	}
	return fmt.Errorf("%w: %s = %v fails %s=%s", ErrInvalid, fe.Namespace(), fe.Value(), fe.Tag(), fe.Param())
}
