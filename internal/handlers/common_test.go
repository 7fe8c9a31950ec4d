package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prefeitura-rio/app-docnum/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQueryContext(target string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	return c
}

func TestParseBoolQuery(t *testing.T) {
	tests := []struct {
		target  string
		def     bool
		want    bool
		wantErr bool
	}{
		{"/", false, false, false},
		{"/", true, true, false},
		{"/?strict=", true, true, false},
		{"/?strict=true", false, true, false},
		{"/?strict=1", false, true, false},
		{"/?strict=false", true, false, false},
		{"/?strict=yes", false, false, true},
	}

	for _, tt := range tests {
		got, err := parseBoolQuery(newQueryContext(tt.target), "strict", tt.def)
		if tt.wantErr {
			require.Error(t, err, tt.target)
			assert.True(t, errors.Is(err, models.ErrInvalidBoolParam))
			continue
		}
		require.NoError(t, err, tt.target)
		assert.Equal(t, tt.want, got, tt.target)
	}
}

func TestParseCountQuery(t *testing.T) {
	n, err := parseCountQuery(newQueryContext("/"))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = parseCountQuery(newQueryContext("/?count=25"))
	require.NoError(t, err)
	assert.Equal(t, 25, n)

	_, err = parseCountQuery(newQueryContext("/?count=1.5"))
	assert.ErrorIs(t, err, models.ErrInvalidDocumentCount)
}
