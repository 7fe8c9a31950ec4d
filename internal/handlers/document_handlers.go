package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prefeitura-rio/app-docnum/internal/docnum"
	"github.com/prefeitura-rio/app-docnum/internal/logging"
	"github.com/prefeitura-rio/app-docnum/internal/models"
	"github.com/prefeitura-rio/app-docnum/internal/services"
	"github.com/prefeitura-rio/app-docnum/internal/utils"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// DocumentHandlers handles CPF and CNPJ HTTP requests
type DocumentHandlers struct {
	service       *services.DocumentService
	logger        *logging.SafeLogger
	maxBatchSize  int
	strictDefault bool
}

// NewDocumentHandlers creates a new document handlers instance
func NewDocumentHandlers(service *services.DocumentService, maxBatchSize int, strictDefault bool, logger *logging.SafeLogger) *DocumentHandlers {
	return &DocumentHandlers{
		service:       service,
		logger:        logger,
		maxBatchSize:  maxBatchSize,
		strictDefault: strictDefault,
	}
}

// RegisterRoutes mounts the document endpoints on rg.
func (h *DocumentHandlers) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/documents/validate", h.ValidateBatch)
	rg.GET("/:kind/generate", h.GenerateDocuments)
	rg.GET("/:kind/:number/validate", h.ValidateDocument)
	rg.GET("/:kind/:number/format", h.FormatDocument)
}

// GenerateDocuments godoc
// @Summary Gerar documentos
// @Description Gera números de CPF ou CNPJ aleatórios com dígitos verificadores válidos
// @Tags documents
// @Produce json
// @Param kind path string true "Tipo do documento (cpf ou cnpj)" Enums(cpf, cnpj)
// @Param count query int false "Quantidade de documentos (padrão: 1)" minimum(1)
// @Param formatted query bool false "Incluir versão formatada"
// @Success 200 {object} models.GenerateResponse "Documentos gerados com sucesso"
// @Failure 400 {object} ErrorResponse "Parâmetros inválidos"
// @Failure 500 {object} ErrorResponse "Erro interno do servidor"
// @Router /{kind}/generate [get]
func (h *DocumentHandlers) GenerateDocuments(c *gin.Context) {
	startTime := time.Now()
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "GenerateDocuments")
	defer span.End()

	span.SetAttributes(
		attribute.String("operation", "generate_documents"),
		attribute.String("service", "document"),
	)

	ctx, parseSpan := utils.TraceInputParsing(ctx, "query_parameters")
	kind, ok := parseKindParam(c)
	if !ok {
		parseSpan.End()
		return
	}
	count, err := parseCountQuery(c)
	var formatted bool
	if err == nil {
		formatted, err = parseBoolQuery(c, "formatted", false)
	}
	if err != nil {
		utils.RecordErrorInSpan(parseSpan, err, map[string]interface{}{
			"count_param":     c.Query("count"),
			"formatted_param": c.Query("formatted"),
		})
		parseSpan.End()
		h.logger.Debug("invalid generate parameters", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	utils.AddSpanAttribute(parseSpan, "kind", kind.String())
	utils.AddSpanAttribute(parseSpan, "count", count)
	utils.AddSpanAttribute(parseSpan, "formatted", formatted)
	parseSpan.End()

	ctx, logicSpan := utils.TraceBusinessLogic(ctx, "generate_documents")
	docs, err := h.service.Generate(ctx, kind, count, formatted)
	if err != nil {
		utils.RecordErrorInSpan(logicSpan, err, map[string]interface{}{"count": count})
		logicSpan.End()
		status := http.StatusInternalServerError
		if errors.Is(err, models.ErrInvalidDocumentCount) || errors.Is(err, models.ErrTooManyDocuments) {
			status = http.StatusBadRequest
		}
		c.JSON(status, ErrorResponse{Error: err.Error()})
		return
	}
	logicSpan.End()

	_, respSpan := utils.TraceResponseSerialization(ctx, "generate_response")
	c.JSON(http.StatusOK, models.GenerateResponse{
		Kind:      kind.String(),
		Documents: docs,
	})
	respSpan.End()

	h.logger.Debug("GenerateDocuments completed",
		zap.String("kind", kind.String()),
		zap.Int("count", len(docs)),
		zap.Duration("total_duration", time.Since(startTime)))
}

// ValidateDocument godoc
// @Summary Validar documento
// @Description Verifica os dígitos verificadores de um CPF ou CNPJ. Pontuação é ignorada; CNPJ formatado deve ter a barra codificada (%2F).
// @Tags documents
// @Produce json
// @Param kind path string true "Tipo do documento (cpf ou cnpj)" Enums(cpf, cnpj)
// @Param number path string true "Número do documento"
// @Param strict query bool false "Rejeitar números com todos os dígitos iguais"
// @Success 200 {object} models.ValidationResponse "Resultado da validação"
// @Failure 400 {object} ErrorResponse "Parâmetros inválidos"
// @Router /{kind}/{number}/validate [get]
func (h *DocumentHandlers) ValidateDocument(c *gin.Context) {
	startTime := time.Now()
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "ValidateDocument")
	defer span.End()

	span.SetAttributes(
		attribute.String("operation", "validate_document"),
		attribute.String("service", "document"),
	)

	ctx, parseSpan := utils.TraceInputParsing(ctx, "path_parameters")
	kind, ok := parseKindParam(c)
	if !ok {
		parseSpan.End()
		return
	}
	strict, err := parseBoolQuery(c, "strict", h.strictDefault)
	if err != nil {
		utils.RecordErrorInSpan(parseSpan, err, map[string]interface{}{"strict_param": c.Query("strict")})
		parseSpan.End()
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	parseSpan.End()

	result := h.service.Validate(ctx, kind, c.Param("number"), strict)
	span.SetAttributes(attribute.Bool("document.valid", result.Valid))

	c.JSON(http.StatusOK, result)

	h.logger.Debug("ValidateDocument completed",
		zap.String("kind", kind.String()),
		zap.Bool("valid", result.Valid),
		zap.Duration("total_duration", time.Since(startTime)))
}

// FormatDocument godoc
// @Summary Formatar documento
// @Description Aplica a máscara de CPF (000.000.000-00) ou CNPJ (00.000.000/0000-00). Não verifica os dígitos verificadores.
// @Tags documents
// @Produce json
// @Param kind path string true "Tipo do documento (cpf ou cnpj)" Enums(cpf, cnpj)
// @Param number path string true "Número do documento"
// @Success 200 {object} models.FormatResponse "Documento formatado"
// @Failure 400 {object} ErrorResponse "Tipo de documento inválido"
// @Failure 422 {object} ErrorResponse "Número com quantidade de dígitos incorreta"
// @Router /{kind}/{number}/format [get]
func (h *DocumentHandlers) FormatDocument(c *gin.Context) {
	startTime := time.Now()
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "FormatDocument")
	defer span.End()

	span.SetAttributes(
		attribute.String("operation", "format_document"),
		attribute.String("service", "document"),
	)

	kind, ok := parseKindParam(c)
	if !ok {
		return
	}

	result, err := h.service.Format(ctx, kind, c.Param("number"))
	if err != nil {
		utils.RecordErrorInSpan(span, err, map[string]interface{}{"kind": kind.String()})
		status := http.StatusInternalServerError
		if errors.Is(err, docnum.ErrUnformattable) {
			status = http.StatusUnprocessableEntity
		}
		c.JSON(status, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)

	h.logger.Debug("FormatDocument completed",
		zap.String("kind", kind.String()),
		zap.Duration("total_duration", time.Since(startTime)))
}

// ValidateBatch godoc
// @Summary Validar documentos em lote
// @Description Valida uma lista de CPFs e CNPJs em uma única requisição
// @Tags documents
// @Accept json
// @Produce json
// @Param data body models.BatchValidationRequest true "Documentos a validar"
// @Success 200 {object} models.BatchValidationResponse "Resultados da validação"
// @Failure 400 {object} ErrorResponse "Requisição inválida"
// @Failure 500 {object} ErrorResponse "Erro interno do servidor"
// @Router /documents/validate [post]
func (h *DocumentHandlers) ValidateBatch(c *gin.Context) {
	startTime := time.Now()
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "ValidateBatch")
	defer span.End()

	span.SetAttributes(
		attribute.String("operation", "validate_batch"),
		attribute.String("service", "document"),
	)

	ctx, parseSpan := utils.TraceInputParsing(ctx, "request_body")
	var req models.BatchValidationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RecordErrorInSpan(parseSpan, err, nil)
		parseSpan.End()
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}
	parseSpan.End()

	ctx, validationSpan := utils.TraceInputValidation(ctx, "batch_request", "documents")
	if err := req.Validate(h.maxBatchSize); err != nil {
		result := utils.FromValidationError(err)
		utils.RecordErrorInSpan(validationSpan, err, map[string]interface{}{"batch.size": len(req.Documents)})
		validationSpan.End()
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid request",
			Details: result.Errors,
		})
		return
	}
	validationSpan.End()

	resp, err := h.service.ValidateBatch(ctx, req, h.strictDefault)
	if err != nil {
		utils.RecordErrorInSpan(span, err, nil)
		status := http.StatusInternalServerError
		if errors.Is(err, docnum.ErrUnknownKind) {
			status = http.StatusBadRequest
		}
		c.JSON(status, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)

	h.logger.Debug("ValidateBatch completed",
		zap.Int("size", len(req.Documents)),
		zap.Duration("total_duration", time.Since(startTime)))
}
