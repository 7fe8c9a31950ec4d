package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/prefeitura-rio/app-docnum/internal/docnum"
	"github.com/prefeitura-rio/app-docnum/internal/logging"
	"github.com/prefeitura-rio/app-docnum/internal/models"
	"github.com/prefeitura-rio/app-docnum/internal/observability"
	"github.com/prefeitura-rio/app-docnum/internal/utils"
	"go.uber.org/zap"
)

// DocumentService exposes the checksum engine to the HTTP and CLI hosts,
// adding tracing, metrics and logging around each call.
type DocumentService struct {
	generator   *docnum.Generator
	maxGenerate int
	logger      *logging.SafeLogger
}

// NewDocumentService creates a new document service. A nil generator uses
// the global random source.
func NewDocumentService(generator *docnum.Generator, maxGenerate int, logger *logging.SafeLogger) *DocumentService {
	if generator == nil {
		generator = docnum.NewGenerator(nil)
	}
	return &DocumentService{
		generator:   generator,
		maxGenerate: maxGenerate,
		logger:      logger,
	}
}

// Generate returns count random valid numbers of kind, each with its
// formatted layout when formatted is set.
func (s *DocumentService) Generate(ctx context.Context, kind docnum.Kind, count int, formatted bool) ([]models.GeneratedDocument, error) {
	_, span, cleanup := utils.TraceDocumentOperation(ctx, "generate", kind.String())
	defer cleanup()
	defer observeDuration("generate", time.Now())

	if count <= 0 {
		return nil, fmt.Errorf("%w: %d", models.ErrInvalidDocumentCount, count)
	}
	if count > s.maxGenerate {
		return nil, fmt.Errorf("%w: %d > %d", models.ErrTooManyDocuments, count, s.maxGenerate)
	}

	docs := make([]models.GeneratedDocument, 0, count)
	for i := 0; i < count; i++ {
		doc := models.GeneratedDocument{Number: s.generator.Generate(kind)}
		if formatted {
			f, err := docnum.Format(doc.Number, kind)
			if err != nil {
				// Generated numbers always have the right length.
				utils.RecordErrorInSpan(span, err, map[string]interface{}{"kind": kind.String()})
				return nil, err
			}
			doc.Formatted = f
		}
		docs = append(docs, doc)
	}

	utils.AddSpanAttribute(span, "document.count", count)
	observability.DocumentsGenerated.WithLabelValues(kind.String()).Add(float64(count))
	s.logger.Debug("documents generated",
		zap.String("kind", kind.String()),
		zap.Int("count", count),
		zap.Bool("formatted", formatted))

	return docs, nil
}

// Validate checks a single number. Malformed input is reported as invalid.
func (s *DocumentService) Validate(ctx context.Context, kind docnum.Kind, number string, strict bool) models.ValidationResponse {
	_, span, cleanup := utils.TraceDocumentOperation(ctx, "validate", kind.String())
	defer cleanup()
	defer observeDuration("validate", time.Now())

	var valid bool
	if strict {
		valid = docnum.ValidateStrict(number, kind)
	} else {
		valid = docnum.Validate(number, kind)
	}

	utils.AddSpanAttribute(span, "document.valid", valid)
	utils.AddSpanAttribute(span, "document.strict", strict)
	observability.Validations.WithLabelValues(kind.String(), validationLabel(valid)).Inc()

	s.logger.Debug("document validated",
		zap.String("kind", kind.String()),
		zap.String("number", observability.MaskDocument(docnum.Normalize(number))),
		zap.Bool("valid", valid),
		zap.Bool("strict", strict))

	return models.ValidationResponse{
		Kind:   kind.String(),
		Number: strings.TrimSpace(number),
		Valid:  valid,
		Strict: strict,
	}
}

// Format punctuates a number. Existing punctuation is stripped first, so
// already formatted input comes back unchanged.
func (s *DocumentService) Format(ctx context.Context, kind docnum.Kind, number string) (models.FormatResponse, error) {
	_, span, cleanup := utils.TraceDocumentOperation(ctx, "format", kind.String())
	defer cleanup()
	defer observeDuration("format", time.Now())

	digits := docnum.Normalize(number)
	formatted, err := docnum.Format(digits, kind)
	if err != nil {
		utils.RecordErrorInSpan(span, err, map[string]interface{}{
			"kind":   kind.String(),
			"digits": len(digits),
		})
		observability.FormatOperations.WithLabelValues(kind.String(), "error").Inc()
		s.logger.Debug("document not formattable",
			zap.String("kind", kind.String()),
			zap.Int("digits", len(digits)),
			zap.Error(err))
		return models.FormatResponse{}, err
	}

	observability.FormatOperations.WithLabelValues(kind.String(), "success").Inc()
	return models.FormatResponse{
		Kind:      kind.String(),
		Number:    digits,
		Formatted: formatted,
	}, nil
}

// ValidateBatch validates every entry of req. The request must already have
// passed req.Validate. Strict mode comes from the request when set, otherwise
// from strictDefault.
func (s *DocumentService) ValidateBatch(ctx context.Context, req models.BatchValidationRequest, strictDefault bool) (models.BatchValidationResponse, error) {
	ctx, span, cleanup := utils.TraceOperation(ctx, "document.validate_batch", map[string]interface{}{
		"batch.size": len(req.Documents),
	})
	defer cleanup()

	strict := strictDefault
	if req.Strict != nil {
		strict = *req.Strict
	}

	resp := models.BatchValidationResponse{
		Results: make([]models.ValidationResponse, 0, len(req.Documents)),
	}
	for i, doc := range req.Documents {
		kind, err := docnum.ParseKind(doc.Kind)
		if err != nil {
			utils.RecordErrorInSpan(span, err, map[string]interface{}{"index": i})
			return models.BatchValidationResponse{}, fmt.Errorf("document %d: %w", i, err)
		}

		result := s.Validate(ctx, kind, doc.Number, strict)
		if result.Valid {
			resp.ValidCount++
		} else {
			resp.InvalidCount++
		}
		resp.Results = append(resp.Results, result)
	}

	utils.AddSpanAttribute(span, "batch.valid", resp.ValidCount)
	utils.AddSpanAttribute(span, "batch.invalid", resp.InvalidCount)
	s.logger.Info("batch validated",
		zap.Int("size", len(req.Documents)),
		zap.Int("valid", resp.ValidCount),
		zap.Int("invalid", resp.InvalidCount))

	return resp, nil
}

func validationLabel(valid bool) string {
	if valid {
		return "valid"
	}
	return "invalid"
}

func observeDuration(operation string, start time.Time) {
	observability.OperationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}
