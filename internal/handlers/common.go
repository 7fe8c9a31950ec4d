package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prefeitura-rio/app-docnum/internal/docnum"
	"github.com/prefeitura-rio/app-docnum/internal/models"
	"github.com/prefeitura-rio/app-docnum/internal/utils"
)

// ErrorResponse is the body of every non-2xx answer
type ErrorResponse struct {
	Error   string                  `json:"error"`
	Details []utils.ValidationError `json:"details,omitempty"`
}

// parseKindParam reads the :kind path parameter, answering 400 when it is
// neither cpf nor cnpj.
func parseKindParam(c *gin.Context) (docnum.Kind, bool) {
	kind, err := docnum.ParseKind(c.Param("kind"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return 0, false
	}
	return kind, true
}

// parseBoolQuery reads an optional boolean query parameter.
func parseBoolQuery(c *gin.Context, name string, defaultValue bool) (bool, error) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%w: %s=%q", models.ErrInvalidBoolParam, name, raw)
	}
	return v, nil
}

// parseCountQuery reads the optional count query parameter, defaulting to 1.
func parseCountQuery(c *gin.Context) (int, error) {
	raw, ok := c.GetQuery("count")
	if !ok || raw == "" {
		return 1, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", models.ErrInvalidDocumentCount, raw)
	}
	return n, nil
}
