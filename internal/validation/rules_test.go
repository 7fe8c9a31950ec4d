package validation

import (
	"testing"

	validation "github.com/jellydator/validation"
	"github.com/stretchr/testify/assert"
)

func TestDocumentKind(t *testing.T) {
	tests := []struct {
		name    string
		value   interface{}
		wantErr bool
	}{
		{"cpf", "cpf", false},
		{"upper CNPJ", "CNPJ", false},
		{"empty defers to Required", "", false},
		{"unknown", "rg", true},
		{"not a string", 42, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.Validate(tt.value, DocumentKind)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDocumentNumber(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"raw digits", "11144477735", false},
		{"formatted CPF", "111.444.777-35", false},
		{"formatted CNPJ", "11.222.333/0001-81", false},
		{"short but well formed", "123", false},
		{"letters", "abc", true},
		{"mixed", "111.444.777-3X", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.Validate(tt.value, DocumentNumber)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDocumentNumberLength(t *testing.T) {
	assert.NoError(t, validation.Validate("11.222.333/0001-81", DocumentNumberLength))
	assert.Error(t, validation.Validate("111111111111111111111111111111111", DocumentNumberLength))
}
