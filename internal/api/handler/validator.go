package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/storefront/gateway/internal/core/domain"
)

// requestValidator runs go-playground/validator on bound request bodies and
// reports failures by their JSON field names.
type requestValidator struct {
	v *validator.Validate
}

// NewValidator returns a validator for echo.Echo.Validator.
func NewValidator() *requestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonName)
	return &requestValidator{v: v}
}

// Validate wraps failures in domain.ErrInvalidInput, listing missing fields
// together: "invalid input: missing email, password".
func (rv *requestValidator) Validate(i any) error {
	err := rv.v.Struct(i)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}

	var missing, other []string
	for _, fe := range ve {
		if fe.Tag() == "required" {
			missing = append(missing, fe.Field())
			continue
		}
		other = append(other, fmt.Sprintf("%s is not valid (%s)", fe.Field(), fe.Tag()))
	}

	parts := other
	if len(missing) > 0 {
		parts = append([]string{"missing " + strings.Join(missing, ", ")}, other...)
	}
	return fmt.Errorf("%w: %s", domain.ErrInvalidInput, strings.Join(parts, "; "))
}

func jsonName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return f.Name
	}
	return name
}
