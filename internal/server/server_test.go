package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	pkgserver "github.com/DjordjeVuckovic/press-hunter/pkg/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type downHealthChecker struct{}

func (downHealthChecker) Healthy(context.Context) bool { return false }

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("USE_HTTP2", "")
	t.Setenv("CORS_ORIGINS", "")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, DefaultPort, cfg.Port)
	assert.False(t, cfg.UseHttp2)
	assert.Equal(t, []string{"*"}, cfg.CorsOrigins)
}

func TestLoadConfig_Origins(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("USE_HTTP2", "true")
	t.Setenv("CORS_ORIGINS", " https://a.test, ,https://b.test ")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.UseHttp2)
	assert.Equal(t, []string{"https://a.test", "https://b.test"}, cfg.CorsOrigins)
}

func TestLoadConfig_InvalidPort(t *testing.T) {
	for _, port := range []string{"abc", "0", "70000"} {
		t.Setenv("PORT", port)

		_, err := LoadConfig()

		assert.Error(t, err, port)
	}
}

func TestHealthCheck(t *testing.T) {
	tests := []struct {
		name     string
		checker  pkgserver.HealthChecker
		wantCode int
	}{
		{name: "healthy", checker: pkgserver.NewOkHealthChecker(), wantCode: http.StatusOK},
		{name: "unhealthy", checker: downHealthChecker{}, wantCode: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(&Config{Port: DefaultPort, CorsOrigins: []string{"*"}}, tt.checker).
				SetupMiddlewares().
				SetupErrorHandler().
				SetupHealthChecks("/health")
			rec := httptest.NewRecorder()

			s.Echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
