// Package validator adapts go-playground/validator to echo and reports failures as domain validation errors.
package validator

import (
	"reflect"
	"strings"

	domainerrors "catalog/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

const bodyLocation = "body"

// RequestValidator implements echo.Validator.
type RequestValidator struct {
	validate *validator.Validate
}

// New builds a validator that names fields after their json or form tag.
func New() *RequestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(wireName)

	return &RequestValidator{validate: v}
}

// Validate checks the struct tags of i.
func (rv *RequestValidator) Validate(i any) error {
	err := rv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.WithStack(err)
	}

	verr := domainerrors.NewValidationError()
	for _, fe := range fieldErrs {
		msg, typ := describe(fe)
		verr.Add([]string{bodyLocation, fe.Field()}, msg, typ)
	}

	return verr
}

func describe(fe validator.FieldError) (msg, typ string) {
	if fe.Tag() == "required" {
		return "field required", "value_error.missing"
	}

	return "failed on the '" + fe.Tag() + "' rule", "value_error." + fe.Tag()
}

func wireName(field reflect.StructField) string {
	for _, key := range []string{"json", "form"} {
		name, _, _ := strings.Cut(field.Tag.Get(key), ",")
		switch name {
		case "-":
			return ""
		case "":
			continue
		default:
			return name
		}
	}

	return field.Name
}
