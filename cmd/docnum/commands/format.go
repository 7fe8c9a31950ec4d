package commands

import (
	"context"
	"fmt"

	"github.com/prefeitura-rio/app-docnum/internal/services"
)

// RunFormat prints number in its punctuated layout, reading it from streams
// when number is empty. Check digits are not verified.
func RunFormat(
	ctx context.Context,
	service *services.DocumentService,
	kindArg string,
	number string,
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

	result, err := service.Format(ctx, kind, number)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintln(streams.Writer, result.Formatted)
	return nil
}
