package docnum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		in      string
		want    Kind
		wantErr bool
	}{
		{"cpf", CPF, false},
		{"CPF", CPF, false},
		{" cnpj ", CNPJ, false},
		{"Cnpj", CNPJ, false},
		{"rg", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseKind(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownKind)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKind_Lengths(t *testing.T) {
	assert.Equal(t, 11, CPF.Length())
	assert.Equal(t, 9, CPF.BaseLength())
	assert.Equal(t, 14, CNPJ.Length())
	assert.Equal(t, 12, CNPJ.BaseLength())
	assert.Equal(t, 0, Kind(0).Length())
	assert.Equal(t, 0, Kind(7).BaseLength())
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "cpf", CPF.String())
	assert.Equal(t, "cnpj", CNPJ.String())
	assert.Equal(t, "kind(9)", Kind(9).String())
}

func TestKind_Weights(t *testing.T) {
	for _, kind := range []Kind{CPF, CNPJ} {
		for pass := 1; pass <= 2; pass++ {
			w, err := kind.Weights(pass)
			require.NoError(t, err)
			assert.Len(t, w, kind.BaseLength()+pass-1, "%s pass %d", kind, pass)
			assert.Equal(t, 2, w[len(w)-1], "weights always end in 2")
		}
	}

	w, err := CPF.Weights(2)
	require.NoError(t, err)
	assert.Equal(t, []int{11, 10, 9, 8, 7, 6, 5, 4, 3, 2}, w)

	_, err = CPF.Weights(3)
	assert.ErrorIs(t, err, ErrInvalidPass)

	_, err = CNPJ.Weights(0)
	assert.ErrorIs(t, err, ErrInvalidPass)

	_, err = Kind(0).Weights(1)
	assert.ErrorIs(t, err, ErrUnknownKind)
}
