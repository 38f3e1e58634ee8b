package validator

import (
	"fmt"
	"net/url"
	"reflect"
	"sort"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"annotate-service/app/domain"
)

// Validator wraps the go-playground validator with custom rules
type Validator struct {
	validator *validator.Validate
}

// New creates a new validator instance with custom rules
func New() *Validator {
	validate := validator.New()

	// Register custom validators
	registerCustomValidators(validate)

	// Use JSON field names for validation error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{
		validator: validate,
	}
}

var defaultValidator = New()

// ValidateAnnotationInput checks a submission and returns one error per
// offending field, ordered by field name. An empty result means valid.
// It does not touch storage; unknown tag ids are detected by the caller.
func ValidateAnnotationInput(input domain.AnnotationInput) []domain.FieldError {
	return defaultValidator.FieldErrors(input)
}

// FieldErrors validates a struct and lists the failing fields.
func (v *Validator) FieldErrors(i interface{}) []domain.FieldError {
	err := v.validator.Struct(i)
	if err == nil {
		return nil
	}
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []domain.FieldError{{Field: "_", Message: err.Error()}}
	}
	return toFieldErrors(errs)
}

// toFieldErrors keeps the first message per field. Element errors of a
// slice (tags[2]) are reported on the slice field itself.
func toFieldErrors(errs validator.ValidationErrors) []domain.FieldError {
	seen := make(map[string]bool)
	var fields []domain.FieldError

	for _, err := range errs {
		field := err.Field()
		if i := strings.IndexByte(field, '['); i >= 0 {
			field = field[:i]
		}
		if seen[field] {
			continue
		}
		seen[field] = true
		fields = append(fields, domain.FieldError{Field: field, Message: message(field, err)})
	}

	sort.SliceStable(fields, func(i, j int) bool { return fields[i].Field < fields[j].Field })
	return fields
}

func message(field string, err validator.FieldError) string {
	switch err.Tag() {
	case TagRequired:
		return fmt.Sprintf("%s is required", field)
	case TagMax:
		if err.Kind() == reflect.Slice {
			return fmt.Sprintf("%s must have at most %s entries", field, err.Param())
		}
		return fmt.Sprintf("%s must be at most %s characters long", field, err.Param())
	case TagGreaterThan:
		return fmt.Sprintf("%s must reference existing concepts", field)
	case TagAnnotationURI:
		return fmt.Sprintf("%s must be an absolute URI without whitespace", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// registerCustomValidators registers custom validation rules
func registerCustomValidators(validate *validator.Validate) {
	// Annotation subject: an absolute URI, compared byte for byte elsewhere
	_ = validate.RegisterValidation(TagAnnotationURI, func(fl validator.FieldLevel) bool {
		return IsValidAnnotationURI(fl.Field().String())
	})
}

// IsValidAnnotationURI checks that s has a scheme and no whitespace or
// control characters.
func IsValidAnnotationURI(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return false
		}
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return u.Scheme != "" && (u.Host != "" || u.Opaque != "" || u.Path != "")
}

// Common validation tags constants
const (
	TagRequired      = "required"
	TagMax           = "max"
	TagGreaterThan   = "gt"
	TagAnnotationURI = "annotation_uri"
)
