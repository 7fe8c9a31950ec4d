// Command docnum generates, validates and formats CPF and CNPJ numbers from
// the command line, and can serve the HTTP API.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/prefeitura-rio/app-docnum/cmd/docnum/commands"
	"github.com/prefeitura-rio/app-docnum/internal/config"
	"github.com/prefeitura-rio/app-docnum/internal/logging"
	"github.com/prefeitura-rio/app-docnum/internal/services"
)

const version = "1.0.0"

func main() {
	if err := newApp(commands.DefaultIO()).Run(context.Background(), os.Args); err != nil {
		if !errors.Is(err, commands.ErrInvalidDocument) {
			_, _ = fmt.Fprintf(os.Stderr, "docnum: %v\n", err)
		}
		os.Exit(1)
	}
}

func newApp(streams commands.IOTuple) *cli.Command {
	return &cli.Command{
		Name:    "docnum",
		Usage:   "Generate, validate and format CPF and CNPJ numbers",
		Version: version,
		Writer:  streams.Writer,
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if err := config.LoadConfig(); err != nil {
				return ctx, fmt.Errorf("failed to load config: %w", err)
			}
			if err := logging.InitLogger(config.AppConfig.LogLevel); err != nil {
				return ctx, fmt.Errorf("failed to initialize logger: %w", err)
			}
			return ctx, nil
		},
		After: func(ctx context.Context, cmd *cli.Command) error {
			_ = logging.Logger.Sync()
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:      "generate",
				Usage:     "Generate numbers with valid check digits",
				ArgsUsage: "cpf|cnpj",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "mode",
						Aliases: []string{"m"},
						Value:   string(services.ModeRawInsert),
						Usage:   "Presentation mode: " + modeNames(),
					},
					&cli.IntFlag{
						Name:    "count",
						Aliases: []string{"n"},
						Value:   1,
						Usage:   "How many numbers to generate",
					},
					&cli.StringFlag{
						Name:    "base",
						Aliases: []string{"b"},
						Usage:   "Complete this base (9 digits for CPF, 12 for CNPJ) instead of drawing random digits",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunGenerate(
						ctx,
						newDocumentService(),
						logging.Logger,
						commands.GenerateOptions{
							Kind:  cmd.Args().First(),
							Mode:  cmd.String("mode"),
							Count: cmd.Int("count"),
							Base:  cmd.String("base"),
						},
						streams,
					)
				},
			},
			{
				Name:      "validate",
				Usage:     "Validate a number, prompting for it when omitted; exits 1 when invalid",
				ArgsUsage: "cpf|cnpj [number]",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "strict",
						Aliases: []string{"s"},
						Usage:   "Reject numbers whose digits are all equal",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					strict := config.AppConfig.StrictValidationDefault
					if cmd.IsSet("strict") {
						strict = cmd.Bool("strict")
					}
					return commands.RunValidate(
						ctx,
						newDocumentService(),
						cmd.Args().Get(0),
						cmd.Args().Get(1),
						strict,
						streams,
					)
				},
			},
			{
				Name:      "format",
				Usage:     "Format a number, prompting for it when omitted",
				ArgsUsage: "cpf|cnpj [number]",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunFormat(
						ctx,
						newDocumentService(),
						cmd.Args().Get(0),
						cmd.Args().Get(1),
						streams,
					)
				},
			},
			{
				Name:  "serve",
				Usage: "Start the HTTP API",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunServe(ctx, config.AppConfig, logging.Logger)
				},
			},
		},
	}
}

func newDocumentService() *services.DocumentService {
	return services.NewDocumentService(nil, config.AppConfig.MaxGenerateCount, logging.Logger)
}

func modeNames() string {
	names := make([]string, 0, len(services.Modes))
	for _, m := range services.Modes {
		names = append(names, string(m))
	}
	return strings.Join(names, ", ")
}
