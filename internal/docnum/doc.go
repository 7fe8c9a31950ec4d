// Package docnum generates, validates and formats Brazilian CPF and CNPJ numbers.
//
// Both numbers end in a pair of mod-11 check digits. The first is computed over
// the base digits, the second over the base followed by the first check digit.
// Every function in this package is pure and safe for concurrent use.
package docnum
