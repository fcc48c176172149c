package handlers

import (
	"errors"
	"fmt"

	"github.com/codecraftpakistan/codecraft-site/internal/models"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// RegisterValidators installs the application form's custom tags on gin's validator
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}

	rules := map[string]validator.Func{
		"countrycode": func(fl validator.FieldLevel) bool {
			return models.IsCountryCode(fl.Field().String())
		},
		"jobrole": func(fl validator.FieldLevel) bool {
			return models.IsJobRole(fl.Field().String())
		},
		"resumefile": func(fl validator.FieldLevel) bool {
			return models.IsResumeFileName(fl.Field().String())
		},
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("failed to register %s validator: %w", tag, err)
		}
	}
	return nil
}

// ParseValidationErrors converts validator errors to user-friendly format
func ParseValidationErrors(err error) []ValidationError {
	var errs []ValidationError

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, fieldError := range validationErrors {
			errs = append(errs, ValidationError{
				Field:   fieldError.Field(),
				Message: getErrorMessage(fieldError),
			})
		}
	}

	return errs
}

// fieldErrors indexes validation errors by struct field for the HTML form
func fieldErrors(errs []ValidationError) map[string]string {
	out := make(map[string]string, len(errs))
	for _, e := range errs {
		if _, seen := out[e.Field]; !seen {
			out[e.Field] = e.Message
		}
	}
	return out
}

var fieldLabels = map[string]string{
	"Name":           "Full name",
	"ContactNumber":  "Contact number",
	"CountryCode":    "Country code",
	"Email":          "Email",
	"Role":           "Position",
	"Experience":     "Experience",
	"ResumeFileName": "Resume",
}

func label(field string) string {
	if l, ok := fieldLabels[field]; ok {
		return l
	}
	return field
}

func getErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return label(fe.Field()) + " is required"
	case "email":
		return "Invalid email format"
	case "number":
		return label(fe.Field()) + " must be a whole number of years"
	case "countrycode":
		return "Unsupported country code"
	case "jobrole":
		return "Select one of the open positions"
	case "resumefile":
		return "Resume must be a .pdf, .doc or .docx file"
	default:
		return label(fe.Field()) + " is invalid"
	}
}
