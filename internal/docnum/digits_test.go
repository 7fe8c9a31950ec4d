package docnum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDigits(t *testing.T) {
	assert.Equal(t, Digits{1, 2, 3, 4}, ParseDigits("1.2-3/4"))
	assert.Equal(t, Digits{0, 0, 1}, ParseDigits("001"))
	assert.Empty(t, ParseDigits(""))
	assert.Empty(t, ParseDigits("abc"))
	assert.Equal(t, Digits{1}, ParseDigits("١1"), "non-ASCII digits are dropped")
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "11222333000181", Normalize("11.222.333/0001-81"))
	assert.Equal(t, "12345678909", Normalize(" 123.456.789-09 "))
}

func TestDigits_Append(t *testing.T) {
	d := Digits{1, 2}
	e := d.Append(3)

	assert.Equal(t, Digits{1, 2}, d)
	assert.Equal(t, Digits{1, 2, 3}, e)
}

func TestDigits_Repeated(t *testing.T) {
	assert.True(t, ParseDigits("111.111.111-11").Repeated())
	assert.True(t, Digits{7}.Repeated())
	assert.False(t, ParseDigits("11144477735").Repeated())
	assert.False(t, Digits{}.Repeated())
}
