package commands

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/prefeitura-rio/app-docnum/internal/docnum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunFormat(t *testing.T) {
	tests := []struct {
		name   string
		kind   string
		number string
		input  string
		want   string
	}{
		{"cpf", "cpf", "12345678910", "", "123.456.789-10\n"},
		{"cnpj", "cnpj", "12345678000190", "", "12.345.678/0001-90\n"},
		{"already formatted", "cpf", "111.444.777-35", "", "111.444.777-35\n"},
		{"prompted", "cpf", "", "52998224725\n", "Enter CPF number: 529.982.247-25\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := RunFormat(context.Background(), newTestService(10), tt.kind, tt.number,
				IOTuple{Reader: strings.NewReader(tt.input), Writer: &out})
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestRunFormat_Unformattable(t *testing.T) {
	var out bytes.Buffer
	err := RunFormat(context.Background(), newTestService(10), "cnpj", "1234", IOTuple{Writer: &out})
	assert.ErrorIs(t, err, docnum.ErrUnformattable)
	assert.Empty(t, out.String())
}
