package observability

import (
	"github.com/prefeitura-rio/app-docnum/internal/logging"
)

// Logger returns the global safe logger instance
func Logger() *logging.SafeLogger {
	return logging.Logger
}

// MaskCPF masks a CPF number for logging
func MaskCPF(cpf string) string {
	if len(cpf) != 11 {
		return "***.***.***-**"
	}
	return cpf[:3] + ".***" + "." + cpf[6:9] + "-**"
}

// MaskCNPJ keeps the root prefix and branch of a CNPJ and hides the rest.
func MaskCNPJ(cnpj string) string {
	if len(cnpj) != 14 {
		return "**.***.***/****-**"
	}
	return cnpj[:2] + ".***.***/" + cnpj[8:12] + "-**"
}

// MaskDocument picks the mask matching the digit count of number, which is
// expected to be already stripped of punctuation.
func MaskDocument(number string) string {
	switch len(number) {
	case 11:
		return MaskCPF(number)
	case 14:
		return MaskCNPJ(number)
	}
	return "********"
}
