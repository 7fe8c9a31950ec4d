// Package commands contains the docnum CLI command implementations.
package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/prefeitura-rio/app-docnum/internal/docnum"
)

// ErrInvalidDocument is returned by RunValidate when the number fails its
// check digits. The CLI maps it to exit status 1 without logging.
var ErrInvalidDocument = errors.New("invalid document")

// IOTuple holds reader and writer for commands, allowing for testing.
type IOTuple struct {
	Reader io.Reader
	Writer io.Writer
}

// DefaultIO returns an IOTuple with os.Stdin and os.Stdout.
func DefaultIO() IOTuple {
	return IOTuple{
		Reader: os.Stdin,
		Writer: os.Stdout,
	}
}

// parseKindArg converts the positional kind argument.
func parseKindArg(arg string) (docnum.Kind, error) {
	if arg == "" {
		return 0, fmt.Errorf("%w: kind argument is required (cpf or cnpj)", docnum.ErrUnknownKind)
	}
	return docnum.ParseKind(arg)
}

// promptForNumber asks for a number on streams when none was given on the
// command line.
func promptForNumber(streams IOTuple, kind docnum.Kind) (string, error) {
	if streams.Reader == nil {
		return "", fmt.Errorf("no %s number given and no input to read from", kind)
	}

	_, _ = fmt.Fprintf(streams.Writer, "Enter %s number: ", strings.ToUpper(kind.String()))
	line, err := bufio.NewReader(streams.Reader).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read number: %w", err)
	}

	number := strings.TrimSpace(line)
	if number == "" {
		return "", fmt.Errorf("%s number cannot be empty", kind)
	}
	return number, nil
}
