package docnum

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	got, err := FormatCPF("12345678910")
	require.NoError(t, err)
	assert.Equal(t, "123.456.789-10", got)

	got, err = FormatCNPJ("12345678000190")
	require.NoError(t, err)
	assert.Equal(t, "12.345.678/0001-90", got)
}

func TestFormat_Unformattable(t *testing.T) {
	tests := []struct {
		name string
		in   string
		kind Kind
	}{
		{"CPF short", "1234567891", CPF},
		{"CPF long", "123456789101", CPF},
		{"CPF already formatted", "123.456.789-10", CPF},
		{"CPF empty", "", CPF},
		{"CNPJ given CPF", "12345678910", CNPJ},
		{"CNPJ letters", "1234567800019a", CNPJ},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Format(tt.in, tt.kind)
			assert.ErrorIs(t, err, ErrUnformattable)
		})
	}

	_, err := Format("12345678910", Kind(0))
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestFormat_RoundTrips(t *testing.T) {
	g := NewGenerator(rand.New(rand.NewPCG(21, 12)))

	for _, kind := range []Kind{CPF, CNPJ} {
		for i := 0; i < 50; i++ {
			d := g.Generate(kind)

			formatted, err := Format(d, kind)
			require.NoError(t, err)

			assert.Equal(t, d, Normalize(formatted), "stripping punctuation restores the digits")
			assert.Equal(t, Validate(d, kind), Validate(Normalize(formatted), kind))

			again, err := Format(Normalize(formatted), kind)
			require.NoError(t, err)
			assert.Equal(t, formatted, again)
		}
	}
}
