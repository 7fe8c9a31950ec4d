package server

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prefeitura-rio/app-docnum/internal/config"
	"github.com/prefeitura-rio/app-docnum/internal/logging"
	"github.com/prefeitura-rio/app-docnum/internal/middleware"
	"github.com/prefeitura-rio/app-docnum/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig() *config.Config {
	return &config.Config{
		Port:                    0,
		Environment:             "test",
		LogLevel:                "info",
		ShutdownTimeout:         2 * time.Second,
		RateLimitEnabled:        true,
		RateLimitRequestsPerSec: 1000,
		RateLimitBurst:          1000,
		CORSAllowOrigins:        []string{"*"},
		MaxGenerateCount:        5,
		MaxBatchSize:            10,
	}
}

func newTestRouter(t *testing.T, cfg *config.Config) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return NewRouter(ctx, cfg, logging.New(zap.NewNop()))
}

func TestNewRouter_Routes(t *testing.T) {
	router := newTestRouter(t, testConfig())

	tests := []struct {
		method string
		target string
		want   int
	}{
		{http.MethodGet, "/v1/health", http.StatusOK},
		{http.MethodGet, "/v1/cpf/generate", http.StatusOK},
		{http.MethodGet, "/v1/cnpj/11.222.333%2F0001-81/validate", http.StatusOK},
		{http.MethodGet, "/v1/cnpj/11222333000181/format", http.StatusOK},
		{http.MethodGet, "/v1/cpf/generate?count=6", http.StatusBadRequest},
		{http.MethodGet, "/metrics", http.StatusOK},
		{http.MethodGet, "/v1/unknown", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code, w.Body.String())
			assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
		})
	}
}

func TestNewRouter_EscapedCNPJ(t *testing.T) {
	router := newTestRouter(t, testConfig())

	req := httptest.NewRequest(http.MethodGet, "/v1/cnpj/11.222.333%2F0001-81/validate", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.ValidationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Valid)
	assert.Equal(t, "11.222.333/0001-81", resp.Number)
}

func TestNewRouter_RateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimitRequestsPerSec = 0.001
	cfg.RateLimitBurst = 1
	router := newTestRouter(t, cfg)

	codes := make([]int, 0, 2)
	for range 2 {
		req := httptest.NewRequest(http.MethodGet, "/v1/health", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestNewRouter_CORS(t *testing.T) {
	cfg := testConfig()
	cfg.CORSAllowOrigins = []string{"https://example.org"}
	router := newTestRouter(t, cfg)

	req := httptest.NewRequest(http.MethodGet, "/v1/health", nil)
	req.Header.Set("Origin", "https://example.org")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "https://example.org", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRun_GracefulShutdown(t *testing.T) {
	gin.SetMode(gin.TestMode)

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := l.Addr().(*net.TCPAddr).Port
	require.NoError(t, l.Close())

	cfg := testConfig()
	cfg.Port = port

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, cfg, logging.New(zap.NewNop()))
	}()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://127.0.0.1:" + strconv.Itoa(port) + "/v1/health")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestRun_ListenError(t *testing.T) {
	l, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	defer l.Close()

	cfg := testConfig()
	cfg.Port = l.Addr().(*net.TCPAddr).Port

	err = Run(context.Background(), cfg, logging.New(zap.NewNop()))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to start server")
}
