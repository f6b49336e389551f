// Package validator adapts go-playground/validator to echo.
package validator

import (
	"reflect"
	"strings"

	"orderservice/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// FieldError describes one rejected request field.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// ValidationError is returned by Validate when a struct fails its rules.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+" failed "+f.Rule)
	}

	return "validation failed: " + strings.Join(parts, ", ")
}

// Validator implements echo.Validator.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator that reports fields by their JSON names.
func New() *Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}

		return name
	})

	// "required" alone does not reject uuid.Nil, a [16]byte array.
	validate.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if id, ok := field.Interface().(uuid.UUID); ok {
			if id == uuid.Nil {
				return ""
			}

			return id.String()
		}

		return nil
	}, uuid.UUID{})

	return &Validator{validate: validate}
}

// Validate checks i against its `validate` tags.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return errors.WithStack(err)
	}

	fields := make([]FieldError, 0, len(validationErrs))
	for _, fe := range validationErrs {
		fields = append(fields, FieldError{
			Field: fe.Field(),
			Rule:  fe.Tag(),
			Param: fe.Param(),
		})
	}

	return &ValidationError{Fields: fields}
}
