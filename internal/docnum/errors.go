package docnum

import "errors"

var (
	ErrInvalidLength = errors.New("invalid sequence length")
	ErrInvalidDigit  = errors.New("invalid digit")
	ErrUnformattable = errors.New("input cannot be formatted")
	ErrUnknownKind   = errors.New("unknown document kind")
	ErrInvalidPass   = errors.New("check digit pass out of range")
)
