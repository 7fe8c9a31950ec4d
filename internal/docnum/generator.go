package docnum

import (
	"math/rand/v2"
	"sync"
)

// Generator produces random complete numbers. The zero value draws from the
// global math/rand/v2 source; use NewGenerator with a seeded *rand.Rand for
// reproducible output.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewGenerator returns a Generator backed by rng. A nil rng selects the global
// source.
func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

var defaultGenerator = &Generator{}

func (g *Generator) digit() int {
	if g.rng == nil {
		return rand.IntN(10)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.IntN(10)
}

// Base draws a random base sequence: 9 digits for CPF, 8 digits followed by
// the 0001 branch code for CNPJ. It panics on an unknown kind.
func (g *Generator) Base(kind Kind) Digits {
	var random int
	switch kind {
	case CPF:
		random = 9
	case CNPJ:
		random = 8
	default:
		panic(ErrUnknownKind)
	}

	base := make(Digits, random)
	for i := range base {
		base[i] = g.digit()
	}
	if kind == CNPJ {
		base = base.Append(branchCode...)
	}
	return base
}

// Digits returns a random complete sequence for kind.
func (g *Generator) Digits(kind Kind) Digits {
	base := g.Base(kind)
	withFirst := base.Append(mustCheckDigit(base, kind))
	return withFirst.Append(mustCheckDigit(withFirst, kind))
}

// Generate returns a random valid number for kind as raw digits.
func (g *Generator) Generate(kind Kind) string {
	return g.Digits(kind).String()
}

// GenerateCPF returns a random valid CPF with no punctuation.
func GenerateCPF() string {
	return defaultGenerator.Generate(CPF)
}

// GenerateCNPJ returns a random valid CNPJ with no punctuation.
func GenerateCNPJ() string {
	return defaultGenerator.Generate(CNPJ)
}
