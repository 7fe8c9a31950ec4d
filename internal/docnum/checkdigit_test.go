package docnum

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeCheckDigit(t *testing.T) {
	tests := []struct {
		name string
		seq  Digits
		kind Kind
		want int
	}{
		{
			name: "CPF all ones first pass",
			seq:  Digits{1, 1, 1, 1, 1, 1, 1, 1, 1},
			kind: CPF,
			want: 1, // weights 10..2, sum 54, remainder 10
		},
		{
			name: "CPF all ones second pass",
			seq:  Digits{1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
			kind: CPF,
			want: 1,
		},
		{
			name: "CPF remainder below two yields zero",
			seq:  Digits{1, 2, 3, 4, 5, 6, 7, 8, 9},
			kind: CPF,
			want: 0,
		},
		{
			name: "CPF second pass",
			seq:  Digits{1, 2, 3, 4, 5, 6, 7, 8, 9, 0},
			kind: CPF,
			want: 9,
		},
		{
			name: "CNPJ first pass",
			seq:  Digits{1, 1, 2, 2, 2, 3, 3, 3, 0, 0, 0, 1},
			kind: CNPJ,
			want: 8,
		},
		{
			name: "CNPJ second pass",
			seq:  Digits{1, 1, 2, 2, 2, 3, 3, 3, 0, 0, 0, 1, 8},
			kind: CNPJ,
			want: 1,
		},
		{
			name: "CPF zeros",
			seq:  make(Digits, 9),
			kind: CPF,
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeCheckDigit(tt.seq, tt.kind)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComputeCheckDigit_InvalidLength(t *testing.T) {
	tests := []struct {
		name string
		seq  Digits
		kind Kind
	}{
		{"CPF empty", Digits{}, CPF},
		{"CPF too short", Digits{1, 2, 3}, CPF},
		{"CPF complete number", ParseDigits("11144477735"), CPF},
		{"CNPJ CPF-sized base", ParseDigits("111444777"), CNPJ},
		{"CNPJ complete number", ParseDigits("11222333000181"), CNPJ},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ComputeCheckDigit(tt.seq, tt.kind)
			assert.True(t, errors.Is(err, ErrInvalidLength), "got %v", err)
		})
	}
}

func TestComputeCheckDigit_InvalidDigit(t *testing.T) {
	_, err := ComputeCheckDigit(Digits{1, 2, 3, 4, 5, 6, 7, 8, 10}, CPF)
	assert.ErrorIs(t, err, ErrInvalidDigit)

	_, err = ComputeCheckDigit(Digits{-1, 2, 3, 4, 5, 6, 7, 8, 9}, CPF)
	assert.ErrorIs(t, err, ErrInvalidDigit)
}

func TestComputeCheckDigit_UnknownKind(t *testing.T) {
	_, err := ComputeCheckDigit(Digits{1, 2, 3}, Kind(0))
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestMustCheckDigit_PanicsOnContractViolation(t *testing.T) {
	assert.Panics(t, func() {
		mustCheckDigit(Digits{1, 2}, CPF)
	})
}

func TestComplete(t *testing.T) {
	got, err := Complete(ParseDigits("111444777"), CPF)
	require.NoError(t, err)
	assert.Equal(t, "11144477735", got.String())

	got, err = Complete(ParseDigits("112223330001"), CNPJ)
	require.NoError(t, err)
	assert.Equal(t, "11222333000181", got.String())
}

func TestComplete_DoesNotMutateBase(t *testing.T) {
	base := make(Digits, 9, 20)
	copy(base, Digits{5, 2, 9, 9, 8, 2, 2, 4, 7})

	got, err := Complete(base, CPF)
	require.NoError(t, err)

	assert.Equal(t, "52998224725", got.String())
	assert.Equal(t, "529982247", base.String())
	assert.Equal(t, 0, base[:cap(base)][9], "backing array must not be written")
}

func TestComplete_RejectsWrongBaseLength(t *testing.T) {
	_, err := Complete(ParseDigits("1114447773"), CPF)
	assert.ErrorIs(t, err, ErrInvalidLength)

	_, err = Complete(ParseDigits("11222333"), CNPJ)
	assert.ErrorIs(t, err, ErrInvalidLength)
}
