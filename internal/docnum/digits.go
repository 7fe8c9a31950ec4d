package docnum

import (
	"slices"
	"strings"
)

// Digits is an ordered sequence of decimal digits. Leading zeros matter, so it
// is never treated as a numeric value.
type Digits []int

// ParseDigits keeps only the ASCII digits of s, in order.
func ParseDigits(s string) Digits {
	d := make(Digits, 0, len(s))
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= '0' && c <= '9' {
			d = append(d, int(c-'0'))
		}
	}
	return d
}

// Normalize strips every non-digit character from s.
func Normalize(s string) string {
	return ParseDigits(s).String()
}

func (d Digits) String() string {
	var b strings.Builder
	b.Grow(len(d))
	for _, v := range d {
		b.WriteByte(byte('0' + v))
	}
	return b.String()
}

// Append returns a new sequence made of d followed by v. d is left untouched.
func (d Digits) Append(v ...int) Digits {
	return slices.Concat(d, Digits(v))
}

// Repeated reports whether every digit of d is the same. An empty sequence is
// not considered repeated.
func (d Digits) Repeated() bool {
	if len(d) == 0 {
		return false
	}
	for _, v := range d[1:] {
		if v != d[0] {
			return false
		}
	}
	return true
}
