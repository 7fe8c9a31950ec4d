package commands

import (
	"context"
	"fmt"

	"github.com/prefeitura-rio/app-docnum/internal/services"
)

// RunValidate checks a number, reading it from streams when number is empty.
// It prints "valid" or "invalid" and returns ErrInvalidDocument for the
// latter.
func RunValidate(
	ctx context.Context,
	service *services.DocumentService,
	kindArg string,
	number string,
	strict bool,
	streams IOTuple,
) error {
	kind, err := parseKindArg(kindArg)
	if err != nil {
		return err
	}

	if number == "" {
		number, err = promptForNumber(streams, kind)
		if err != nil {
			return err
		}
	}

	result := service.Validate(ctx, kind, number, strict)
	if !result.Valid {
		_, _ = fmt.Fprintln(streams.Writer, "invalid")
		return fmt.Errorf("%w: %s %s", ErrInvalidDocument, kind, result.Number)
	}

	_, _ = fmt.Fprintln(streams.Writer, "valid")
	return nil
}
