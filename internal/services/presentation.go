package services

import (
	"errors"
	"fmt"
	"io"

	"github.com/prefeitura-rio/app-docnum/internal/docnum"
	"github.com/prefeitura-rio/app-docnum/internal/logging"
	"go.uber.org/zap"
)

// Mode selects how a number is handed back to the caller.
type Mode string

const (
	ModeRaw             Mode = "raw"
	ModeRawInsert       Mode = "raw-insert"
	ModeFormatted       Mode = "formatted"
	ModeFormattedInsert Mode = "formatted-insert"
)

// Target is where a presented number goes.
type Target string

const (
	// TargetLog reports the number through the logger.
	TargetLog Target = "log"
	// TargetInsert writes the number to the caller's output.
	TargetInsert Target = "insert"
)

var ErrInvalidMode = errors.New("invalid presentation mode")

// Modes lists every supported mode in display order.
var Modes = []Mode{ModeRaw, ModeRawInsert, ModeFormatted, ModeFormattedInsert}

// ParseMode maps a mode name to a Mode.
func ParseMode(s string) (Mode, error) {
	for _, m := range Modes {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
}

// Formatted reports whether the mode punctuates the number.
func (m Mode) Formatted() bool {
	return m == ModeFormatted || m == ModeFormattedInsert
}

// Target reports where the mode sends the number.
func (m Mode) Target() Target {
	if m == ModeRawInsert || m == ModeFormattedInsert {
		return TargetInsert
	}
	return TargetLog
}

// Presentation is a number ready to be emitted.
type Presentation struct {
	Kind      docnum.Kind
	Value     string
	Formatted bool
	Target    Target
}

// Present prepares a raw number for the given mode.
func Present(number string, kind docnum.Kind, mode Mode) (Presentation, error) {
	if _, err := ParseMode(string(mode)); err != nil {
		return Presentation{}, err
	}

	value := number
	if mode.Formatted() {
		formatted, err := docnum.Format(number, kind)
		if err != nil {
			return Presentation{}, err
		}
		value = formatted
	}

	return Presentation{
		Kind:      kind,
		Value:     value,
		Formatted: mode.Formatted(),
		Target:    mode.Target(),
	}, nil
}

// Emit sends the value to out or to logger depending on the target.
func (p Presentation) Emit(out io.Writer, logger *logging.SafeLogger) error {
	if p.Target == TargetInsert {
		_, err := fmt.Fprintln(out, p.Value)
		return err
	}

	logger.Info("generated document",
		zap.String("kind", p.Kind.String()),
		zap.String("value", p.Value),
		zap.Bool("formatted", p.Formatted),
	)
	return nil
}
