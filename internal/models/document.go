package models

import (
	"fmt"

	validation "github.com/jellydator/validation"

	docvalidation "github.com/prefeitura-rio/app-docnum/internal/validation"
)

// GeneratedDocument is one generated number
type GeneratedDocument struct {
	Number    string `json:"number" example:"11144477735"`
	Formatted string `json:"formatted,omitempty" example:"111.444.777-35"`
}

// GenerateResponse is returned by the generate endpoints
type GenerateResponse struct {
	Kind      string              `json:"kind" example:"cpf"`
	Documents []GeneratedDocument `json:"documents"`
}

// ValidationResponse reports whether a number is valid
type ValidationResponse struct {
	Kind   string `json:"kind" example:"cpf"`
	Number string `json:"number" example:"11144477735"`
	Valid  bool   `json:"valid" example:"true"`
	Strict bool   `json:"strict" example:"false"`
}

// FormatResponse carries a formatted number
type FormatResponse struct {
	Kind      string `json:"kind" example:"cnpj"`
	Number    string `json:"number" example:"11222333000181"`
	Formatted string `json:"formatted" example:"11.222.333/0001-81"`
}

// DocumentInput is one entry of a batch validation request
type DocumentInput struct {
	Kind   string `json:"kind" example:"cpf"`
	Number string `json:"number" example:"111.444.777-35"`
}

// Validate checks the shape of a single entry.
func (d DocumentInput) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Kind,
			validation.Required.Error("kind is required"),
			docvalidation.DocumentKind,
		),
		validation.Field(&d.Number,
			validation.Required.Error("number is required"),
			docvalidation.DocumentNumberLength,
			docvalidation.DocumentNumber,
		),
	)
}

// BatchValidationRequest validates many numbers at once
type BatchValidationRequest struct {
	Documents []DocumentInput `json:"documents"`
	Strict    *bool           `json:"strict,omitempty"`
}

// Validate checks the request against the configured batch size; every
// entry is validated as well.
func (r *BatchValidationRequest) Validate(maxSize int) error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Documents,
			validation.Required.Error("at least one document is required"),
			validation.Length(1, maxSize).Error(fmt.Sprintf("at most %d documents per request", maxSize)),
		),
	)
}

// BatchValidationResponse is the answer to a batch validation request
type BatchValidationResponse struct {
	Results      []ValidationResponse `json:"results"`
	ValidCount   int                  `json:"valid_count"`
	InvalidCount int                  `json:"invalid_count"`
}
