package docnum

// Validate reports whether candidate is a well-formed number of the given
// kind. Non-digit characters are ignored, so formatted input is accepted.
// Malformed input is reported as invalid, never as an error.
func Validate(candidate string, kind Kind) bool {
	if !kind.Valid() {
		return false
	}

	d := ParseDigits(candidate)
	if len(d) != kind.Length() {
		return false
	}

	base := d[:kind.BaseLength()]
	first := mustCheckDigit(base, kind)
	if first != d[kind.BaseLength()] {
		return false
	}

	second := mustCheckDigit(base.Append(first), kind)
	return second == d[kind.BaseLength()+1]
}

// ValidateStrict is Validate that also rejects numbers made of a single
// repeated digit, such as 000.000.000-00 or 11111111111. Those pass the
// checksum but are never issued.
func ValidateStrict(candidate string, kind Kind) bool {
	if ParseDigits(candidate).Repeated() {
		return false
	}
	return Validate(candidate, kind)
}

// ValidateCPF validates a CPF, formatted or not.
func ValidateCPF(s string) bool {
	return Validate(s, CPF)
}

// ValidateCNPJ validates a CNPJ, formatted or not.
func ValidateCNPJ(s string) bool {
	return Validate(s, CNPJ)
}
