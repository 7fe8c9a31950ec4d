package docnum

import (
	"fmt"
	"regexp"
)

var (
	cpfPattern  = regexp.MustCompile(`^(\d{3})(\d{3})(\d{3})(\d{2})$`)
	cnpjPattern = regexp.MustCompile(`^(\d{2})(\d{3})(\d{3})(\d{4})(\d{2})$`)
)

// Format renders an unpunctuated digit string in the conventional layout:
// XXX.XXX.XXX-XX for CPF and XX.XXX.XXX/XXXX-XX for CNPJ. Input that is not
// exactly Length() ASCII digits returns ErrUnformattable.
func Format(digits string, kind Kind) (string, error) {
	switch kind {
	case CPF:
		if !cpfPattern.MatchString(digits) {
			return "", fmt.Errorf("%w: cpf needs 11 digits, got %q", ErrUnformattable, digits)
		}
		return cpfPattern.ReplaceAllString(digits, "$1.$2.$3-$4"), nil
	case CNPJ:
		if !cnpjPattern.MatchString(digits) {
			return "", fmt.Errorf("%w: cnpj needs 14 digits, got %q", ErrUnformattable, digits)
		}
		return cnpjPattern.ReplaceAllString(digits, "$1.$2.$3/$4-$5"), nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownKind, kind)
}

// FormatCPF formats an 11-digit CPF.
func FormatCPF(s string) (string, error) {
	return Format(s, CPF)
}

// FormatCNPJ formats a 14-digit CNPJ.
func FormatCNPJ(s string) (string, error) {
	return Format(s, CNPJ)
}
