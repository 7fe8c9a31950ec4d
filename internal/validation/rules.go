// Package validation provides request validation rules for document numbers.
package validation

import (
	"regexp"

	validation "github.com/jellydator/validation"

	"github.com/prefeitura-rio/app-docnum/internal/docnum"
)

var (
	// documentNumberPattern allows digits plus the punctuation used by the
	// CPF and CNPJ layouts.
	documentNumberPattern = regexp.MustCompile(`^[0-9./\- ]+$`)
)

// DocumentKind accepts "cpf" or "cnpj" in any case.
var DocumentKind = validation.By(func(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_document_kind_type", "must be a string")
	}
	if s == "" {
		return nil // Let Required handle empty strings
	}
	if _, err := docnum.ParseKind(s); err != nil {
		return validation.NewError("validation_document_kind", "must be cpf or cnpj")
	}
	return nil
})

// DocumentNumber accepts digits with optional CPF/CNPJ punctuation. It does
// not check the length or the check digits: a wrong number is a valid request
// whose answer is "invalid".
var DocumentNumber = validation.Match(documentNumberPattern).
	Error("must contain only digits and the separators . / -")

// DocumentNumberLength bounds the raw input so a request cannot carry
// arbitrarily long strings.
var DocumentNumberLength = validation.Length(1, 32).
	Error("must be between 1 and 32 characters")
