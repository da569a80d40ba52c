package types

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/Fulozz/daily-journal/internal/apierr"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks a request struct against its constraint tags and converts
// the first failure into a Validation error. Requests that fail here never
// reach the network.
func Validate(op string, v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return apierr.Validationf(op, "invalid request: %v", err)
	}
	fe := verrs[0]
	switch {
	case fe.Field() == "ConfirmPassword" && fe.Tag() == "eqfield":
		return apierr.Validationf(op, "passwords do not match")
	case fe.Tag() == "required":
		return apierr.Validationf(op, "%s is required", fe.Field())
	case fe.Tag() == "email":
		return apierr.Validationf(op, "%s must be a valid email address", fe.Field())
	case fe.Tag() == "min":
		return apierr.Validationf(op, "%s must be at least %s characters", fe.Field(), fe.Param())
	case fe.Tag() == "oneof":
		return apierr.Validationf(op, "%s must be one of: %s", fe.Field(), fe.Param())
	default:
		return apierr.Validationf(op, "%s is invalid", fe.Field())
	}
}

// ValidateIDPresent rejects empty resource identifiers before any request is
// built.
func ValidateIDPresent(id, name string) error {
	if id == "" {
		return apierr.Validationf("validate", "%s is required", name)
	}
	return nil
}
