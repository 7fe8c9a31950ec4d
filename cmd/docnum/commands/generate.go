package commands

import (
	"context"
	"fmt"

	"github.com/prefeitura-rio/app-docnum/internal/docnum"
	"github.com/prefeitura-rio/app-docnum/internal/logging"
	"github.com/prefeitura-rio/app-docnum/internal/services"
)

// GenerateOptions are the flags of the generate command.
type GenerateOptions struct {
	Kind  string
	Mode  string
	Count int
	// Base, when set, is completed with its check digits instead of drawing
	// random digits.
	Base string
}

// RunGenerate produces numbers and emits each one through the selected
// presentation mode: insert modes write to streams.Writer, the others log.
func RunGenerate(
	ctx context.Context,
	service *services.DocumentService,
	logger *logging.SafeLogger,
	opts GenerateOptions,
	streams IOTuple,
) error {
	kind, err := parseKindArg(opts.Kind)
	if err != nil {
		return err
	}
	mode, err := services.ParseMode(opts.Mode)
	if err != nil {
		return err
	}

	numbers, err := generateNumbers(ctx, service, kind, opts)
	if err != nil {
		return err
	}

	for _, number := range numbers {
		p, err := services.Present(number, kind, mode)
		if err != nil {
			return err
		}
		if err := p.Emit(streams.Writer, logger); err != nil {
			return fmt.Errorf("failed to emit document: %w", err)
		}
	}
	return nil
}

func generateNumbers(ctx context.Context, service *services.DocumentService, kind docnum.Kind, opts GenerateOptions) ([]string, error) {
	if opts.Base != "" {
		if opts.Count > 1 {
			return nil, fmt.Errorf("--base cannot be combined with --count %d", opts.Count)
		}
		complete, err := docnum.Complete(docnum.ParseDigits(opts.Base), kind)
		if err != nil {
			return nil, fmt.Errorf("failed to complete base %q: %w", opts.Base, err)
		}
		return []string{complete.String()}, nil
	}

	docs, err := service.Generate(ctx, kind, opts.Count, false)
	if err != nil {
		return nil, err
	}
	numbers := make([]string, 0, len(docs))
	for _, doc := range docs {
		numbers = append(numbers, doc.Number)
	}
	return numbers, nil
}
