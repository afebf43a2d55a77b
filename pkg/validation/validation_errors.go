package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to user-friendly labels
var FieldLabels = map[string]string{
	"JobID":       "Job Reference",
	"Applicant":   "Applicant Email",
	"ResumeURL":   "Resume Link",
	"CoverLetter": "Cover Letter",
	"Status":      "Status",
	"Email":       "Email",
}

// FormatErrors turns validator errors into one readable message for the
// response envelope. Non-validator errors pass through unchanged.
func FormatErrors(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err.Error()
	}

	messages := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		label := fieldErr.Field()
		if friendly, ok := FieldLabels[fieldErr.Field()]; ok {
			label = friendly
		}
		messages = append(messages, messageFor(label, fieldErr))
	}
	return strings.Join(messages, "; ")
}

func messageFor(label string, fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", label)
	case "url":
		return fmt.Sprintf("%s must be a valid URL", label)
	default:
		return fmt.Sprintf("%s is invalid (%s)", label, fieldErr.Tag())
	}
}
