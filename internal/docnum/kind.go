package docnum

import (
	"fmt"
	"strings"
)

// Kind identifies which document a digit sequence belongs to.
type Kind int

const (
	CPF Kind = iota + 1
	CNPJ
)

// branchCode is appended to every generated CNPJ base (head office).
var branchCode = Digits{0, 0, 0, 1}

var (
	cpfWeights = [2][]int{
		{10, 9, 8, 7, 6, 5, 4, 3, 2},
		{11, 10, 9, 8, 7, 6, 5, 4, 3, 2},
	}
	cnpjWeights = [2][]int{
		{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2},
		{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2},
	}
)

// ParseKind maps "cpf" or "cnpj" (any case) to a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cpf":
		return CPF, nil
	case "cnpj":
		return CNPJ, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

func (k Kind) String() string {
	switch k {
	case CPF:
		return "cpf"
	case CNPJ:
		return "cnpj"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Valid reports whether k is CPF or CNPJ.
func (k Kind) Valid() bool {
	return k == CPF || k == CNPJ
}

// Length is the number of digits of a complete number, check digits included.
func (k Kind) Length() int {
	switch k {
	case CPF:
		return 11
	case CNPJ:
		return 14
	}
	return 0
}

// BaseLength is Length minus the two check digits.
func (k Kind) BaseLength() int {
	if !k.Valid() {
		return 0
	}
	return k.Length() - 2
}

// Weights returns the weight list for the given pass (1 or 2). The slice is
// shared and must not be modified.
func (k Kind) Weights(pass int) ([]int, error) {
	if pass != 1 && pass != 2 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPass, pass)
	}
	switch k {
	case CPF:
		return cpfWeights[pass-1], nil
	case CNPJ:
		return cnpjWeights[pass-1], nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownKind, k)
}
