package utils

import (
	"errors"
	"sort"

	validation "github.com/jellydator/validation"
)

// ValidationError represents a validation error with field and message
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResult represents the result of validation
type ValidationResult struct {
	IsValid bool              `json:"is_valid"`
	Errors  []ValidationError `json:"errors,omitempty"`
}

// NewValidationResult creates a new validation result
func NewValidationResult() *ValidationResult {
	return &ValidationResult{
		IsValid: true,
		Errors:  []ValidationError{},
	}
}

// AddError adds a validation error to the result
func (vr *ValidationResult) AddError(field, message string) {
	vr.IsValid = false
	vr.Errors = append(vr.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// FromValidationError flattens a jellydator validation error into a
// ValidationResult. Nested errors get dotted field names such as
// "documents.1.kind"; errors are sorted by field.
func FromValidationError(err error) *ValidationResult {
	result := NewValidationResult()
	if err == nil {
		return result
	}

	var errs validation.Errors
	if !errors.As(err, &errs) {
		result.AddError("", err.Error())
		return result
	}

	flattenErrors("", errs, result)
	sort.SliceStable(result.Errors, func(i, j int) bool {
		return result.Errors[i].Field < result.Errors[j].Field
	})
	return result
}

func flattenErrors(prefix string, errs validation.Errors, result *ValidationResult) {
	for field, err := range errs {
		name := field
		if prefix != "" {
			name = prefix + "." + field
		}

		var nested validation.Errors
		if errors.As(err, &nested) {
			flattenErrors(name, nested, result)
			continue
		}
		result.AddError(name, err.Error())
	}
}
