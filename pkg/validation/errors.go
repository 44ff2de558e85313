package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Machine-readable error categories. The route layer serializes these
// verbatim, so treat them as part of the API contract.
const (
	CodeRequired      = "required"
	CodeInvalidFormat = "invalid_format"
	CodeOutOfRange    = "out_of_range"
	CodeTooShort      = "too_short"
	CodeTooLong       = "too_long"
	CodeTooFew        = "too_few"
	CodeTooMany       = "too_many"
	CodeInvalidOption = "invalid_option"
	CodeDuplicate     = "duplicate"
	CodeInconsistent  = "inconsistent"
)

// FieldError is a single validation failure tied to one input field.
// Field is a dot-path into the JSON input (e.g. "skills[2]").
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// translateErrors converts validator.ValidationErrors into the full list
// of field errors. Every failing field is reported; nothing short-circuits.
func translateErrors(err error) []FieldError {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "", Message: err.Error(), Code: CodeInvalidFormat}}
	}

	out := make([]FieldError, 0, len(validationErrors))
	for _, e := range validationErrors {
		out = append(out, translateSingle(e))
	}
	return out
}

func translateSingle(e validator.FieldError) FieldError {
	field := fieldPath(e.Namespace())
	param := e.Param()

	switch e.Tag() {
	case "required":
		return FieldError{field, "is required", CodeRequired}

	case "min":
		switch e.Kind() {
		case reflect.String:
			return FieldError{field, fmt.Sprintf("must be at least %s characters", param), CodeTooShort}
		case reflect.Slice, reflect.Array, reflect.Map:
			return FieldError{field, fmt.Sprintf("must contain at least %s entries", param), CodeTooFew}
		default:
			return FieldError{field, fmt.Sprintf("must be at least %s", param), CodeOutOfRange}
		}

	case "max":
		switch e.Kind() {
		case reflect.String:
			return FieldError{field, fmt.Sprintf("must be at most %s characters", param), CodeTooLong}
		case reflect.Slice, reflect.Array, reflect.Map:
			return FieldError{field, fmt.Sprintf("must contain at most %s entries", param), CodeTooMany}
		default:
			return FieldError{field, fmt.Sprintf("must be at most %s", param), CodeOutOfRange}
		}

	case "oneof":
		options := strings.Join(strings.Split(param, " "), ", ")
		return FieldError{field, "must be one of: " + options, CodeInvalidOption}

	case "email":
		return FieldError{field, "must be a valid email address", CodeInvalidFormat}

	case "url":
		return FieldError{field, "must be a valid URL including the scheme", CodeInvalidFormat}

	case "intl_phone":
		return FieldError{field, "must be an international phone number (+ followed by 7-15 digits)", CodeInvalidFormat}

	case "date_string":
		return FieldError{field, "must be a valid date in YYYY-MM-DD format", CodeInvalidFormat}

	case "past_date":
		return FieldError{field, "must not be in the future", CodeOutOfRange}

	case "future_date":
		return FieldError{field, "must be today or later", CodeOutOfRange}

	case "hex_color":
		return FieldError{field, "must be a hex color like #1A2B3C", CodeInvalidFormat}

	case "linkedin_url":
		return FieldError{field, "must be a linkedin.com URL", CodeInvalidFormat}

	case "github_url":
		return FieldError{field, "must be a github.com URL", CodeInvalidFormat}

	case "unique_fold":
		return FieldError{field, "contains duplicate entries (comparison ignores case)", CodeDuplicate}

	default:
		return FieldError{field, fmt.Sprintf("failed %s validation", e.Tag()), CodeInvalidFormat}
	}
}

// fieldPath strips the root struct name from the validator namespace,
// leaving a dot-path that matches the JSON input shape.
func fieldPath(namespace string) string {
	if idx := strings.Index(namespace, "."); idx >= 0 {
		return namespace[idx+1:]
	}
	return namespace
}
