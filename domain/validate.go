// SPDX-License-Identifier: MIT

package domain

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// validate is shared; validator caches struct metadata and is safe for concurrent use.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}

	return v
}

// Validator exposes the shared validator so adapters validate their own
// request structs with the same tag set (including "notblank").
func Validator() *validator.Validate {
	return validate
}

// Validate checks a record against its struct tags. Blank text fields map to
// ErrBlankArgument, everything else to ErrInvalidRecord; the offending field
// is named in the message.
func Validate(record any) error {
	err := validate.Struct(record)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	fe := verrs[0]
	if fe.Tag() == "notblank" {
		return fmt.Errorf("%w: %s", ErrBlankArgument, fe.Field())
	}

	return fmt.Errorf("%w: %s failed %q (value %v)", ErrInvalidRecord, fe.Field(), fe.Tag(), fe.Value())
}
