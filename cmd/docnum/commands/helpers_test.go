package commands

import (
	"bytes"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/prefeitura-rio/app-docnum/internal/docnum"
	"github.com/prefeitura-rio/app-docnum/internal/logging"
	"github.com/prefeitura-rio/app-docnum/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(maxGenerate int) *services.DocumentService {
	generator := docnum.NewGenerator(rand.New(rand.NewPCG(3, 5)))
	return services.NewDocumentService(generator, maxGenerate, logging.New(zap.NewNop()))
}

func TestParseKindArg(t *testing.T) {
	kind, err := parseKindArg("CNPJ")
	require.NoError(t, err)
	assert.Equal(t, docnum.CNPJ, kind)

	_, err = parseKindArg("")
	assert.ErrorIs(t, err, docnum.ErrUnknownKind)

	_, err = parseKindArg("rg")
	assert.ErrorIs(t, err, docnum.ErrUnknownKind)
}

func TestPromptForNumber(t *testing.T) {
	t.Run("reads a line", func(t *testing.T) {
		var out bytes.Buffer
		number, err := promptForNumber(IOTuple{Reader: strings.NewReader(" 111.444.777-35 \n"), Writer: &out}, docnum.CPF)
		require.NoError(t, err)
		assert.Equal(t, "111.444.777-35", number)
		assert.Equal(t, "Enter CPF number: ", out.String())
	})

	t.Run("accepts input without trailing newline", func(t *testing.T) {
		var out bytes.Buffer
		number, err := promptForNumber(IOTuple{Reader: strings.NewReader("11222333000181"), Writer: &out}, docnum.CNPJ)
		require.NoError(t, err)
		assert.Equal(t, "11222333000181", number)
	})

	t.Run("empty input", func(t *testing.T) {
		var out bytes.Buffer
		_, err := promptForNumber(IOTuple{Reader: strings.NewReader("\n"), Writer: &out}, docnum.CPF)
		assert.Error(t, err)
	})

	t.Run("no reader", func(t *testing.T) {
		_, err := promptForNumber(IOTuple{Writer: &bytes.Buffer{}}, docnum.CPF)
		assert.Error(t, err)
	})
}
