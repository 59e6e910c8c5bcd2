// Package validator adapts go-playground/validator to Echo's Validator
// interface and renders failures as field-keyed validation errors.
package validator

import (
	"fmt"
	"reflect"
	"strings"

	domainerrors "medify/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// requestValidator wraps a validator.Validate instance.
type requestValidator struct {
	validate *validator.Validate
}

// New creates the Echo validator used by all handlers.
func New() *requestValidator {
	v := validator.New()

	// Report fields by their JSON name so validation errors match the wire
	// format clients actually send.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	return &requestValidator{validate: v}
}

// Validate implements echo.Validator. A failed validation is returned as a
// domain ValidationError carrying one message list per offending field.
func (rv *requestValidator) Validate(i any) error {
	err := rv.validate.Struct(i)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	fields := domainerrors.FieldErrors{}
	for _, fieldErr := range validationErrs {
		name := fieldErr.Field()
		fields[name] = append(fields[name], messageFor(fieldErr))
	}

	return domainerrors.NewValidationError(fields)
}

// messageFor renders one human-readable message per failed rule.
func messageFor(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "oneof":
		return fmt.Sprintf("Must be one of: %s.", strings.ReplaceAll(fieldErr.Param(), " ", ", "))
	case "min":
		return fmt.Sprintf("Ensure this field has at least %s characters.", fieldErr.Param())
	case "max":
		return fmt.Sprintf("Ensure this field has no more than %s characters.", fieldErr.Param())
	case "url":
		return "Enter a valid URL."
	default:
		return fmt.Sprintf("Failed on the '%s' rule.", fieldErr.Tag())
	}
}
