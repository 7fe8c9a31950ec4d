package docnum

import "fmt"

// ComputeCheckDigit returns the check digit for seq. seq must be the base of
// kind (first pass) or the base followed by the first check digit (second
// pass); any other length yields ErrInvalidLength.
func ComputeCheckDigit(seq Digits, kind Kind) (int, error) {
	if !kind.Valid() {
		return 0, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}

	var pass int
	switch len(seq) {
	case kind.BaseLength():
		pass = 1
	case kind.BaseLength() + 1:
		pass = 2
	default:
		return 0, fmt.Errorf("%w: %s expects %d or %d digits, got %d",
			ErrInvalidLength, kind, kind.BaseLength(), kind.BaseLength()+1, len(seq))
	}

	weights, err := kind.Weights(pass)
	if err != nil {
		return 0, err
	}
	return weightedCheckDigit(seq, weights)
}

func weightedCheckDigit(seq Digits, weights []int) (int, error) {
	sum := 0
	for i, v := range seq {
		if v < 0 || v > 9 {
			return 0, fmt.Errorf("%w: %d at position %d", ErrInvalidDigit, v, i)
		}
		sum += v * weights[i]
	}

	remainder := sum % 11
	if remainder < 2 {
		return 0, nil
	}
	return 11 - remainder, nil
}

// mustCheckDigit panics when seq violates the calculator contract. Callers
// only pass sequences whose length they built themselves.
func mustCheckDigit(seq Digits, kind Kind) int {
	d, err := ComputeCheckDigit(seq, kind)
	if err != nil {
		panic(err)
	}
	return d
}

// Complete appends both check digits to base and returns the new sequence.
func Complete(base Digits, kind Kind) (Digits, error) {
	if kind.Valid() && len(base) != kind.BaseLength() {
		return nil, fmt.Errorf("%w: %s base must have %d digits, got %d",
			ErrInvalidLength, kind, kind.BaseLength(), len(base))
	}

	first, err := ComputeCheckDigit(base, kind)
	if err != nil {
		return nil, err
	}
	withFirst := base.Append(first)

	second, err := ComputeCheckDigit(withFirst, kind)
	if err != nil {
		return nil, err
	}
	return withFirst.Append(second), nil
}
