package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prefeitura-rio/app-docnum/internal/docnum"
	"github.com/prefeitura-rio/app-docnum/internal/observability"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// Version is reported by the health endpoint.
const Version = "v1.0.0"

// Known good numbers used as a self check of the checksum engine.
const (
	selfCheckCPF  = "11144477735"
	selfCheckCNPJ = "11222333000181"
)

type HealthResponse struct {
	Status    string            `json:"status" example:"healthy"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version" example:"v1.0.0"`
	Services  map[string]string `json:"services"`
}

// HealthCheck godoc
// @Summary Verificação de saúde
// @Description Verifica se o serviço e o motor de dígitos verificadores estão funcionando
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse "Serviço saudável"
// @Failure 503 {object} HealthResponse "Serviço indisponível"
// @Router /health [get]
func HealthCheck(c *gin.Context) {
	_, span := otel.Tracer("").Start(c.Request.Context(), "HealthCheck")
	defer span.End()

	span.SetAttributes(
		attribute.String("operation", "health_check"),
		attribute.String("service", "health"),
	)

	engine := "healthy"
	if !docnum.ValidateCPF(selfCheckCPF) || !docnum.ValidateCNPJ(selfCheckCNPJ) ||
		docnum.ValidateCPF(selfCheckCPF[:10]+"0") {
		engine = "unhealthy"
	}

	health := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Version:   Version,
		Services: map[string]string{
			"checksum_engine": engine,
		},
	}

	if engine != "healthy" {
		health.Status = "unhealthy"
		observability.Logger().Error("health check failed", zap.String("checksum_engine", engine))
		c.JSON(http.StatusServiceUnavailable, health)
		return
	}

	c.JSON(http.StatusOK, health)
}
