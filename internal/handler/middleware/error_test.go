//go:build unit

package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"testing"

	"fieldbook/internal/handler/httperr"
	"fieldbook/internal/handler/middleware"
	"fieldbook/internal/pkg/config"
	"fieldbook/internal/pkg/errs"
	commonhttp "fieldbook/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newErrorRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.CustomRecovery(), middleware.ErrorHandler())
	r.GET("/panic", func(c *gin.Context) { panic("boom") })
	r.GET("/private-error", func(c *gin.Context) {
		_ = c.Error(errs.New("db exploded"))
	})
	r.GET("/conflict", func(c *gin.Context) {
		httperr.Abort(c, errs.Wrap(errs.ErrCapacityExceeded, "create reservation"))
	})
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	return r
}

func TestErrorHandler(t *testing.T) {
	router := newErrorRouter()

	t.Run("panic becomes internal error", func(t *testing.T) {
		rec := commonhttp.PerformRequest(t, router, http.MethodGet, "/panic", nil, "")
		commonhttp.AssertErrorCode(t, rec, http.StatusInternalServerError, errs.CodeInternal)
	})

	t.Run("unwritten private error is hidden", func(t *testing.T) {
		rec := commonhttp.PerformRequest(t, router, http.MethodGet, "/private-error", nil, "")
		commonhttp.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
		assert.NotContains(t, rec.Body.String(), "db exploded")
	})

	t.Run("wrapped domain error keeps its status and code", func(t *testing.T) {
		rec := commonhttp.PerformRequest(t, router, http.MethodGet, "/conflict", nil, "")
		commonhttp.AssertErrorCode(t, rec, http.StatusConflict, "CAPACITY_EXCEEDED")
	})

	t.Run("success untouched", func(t *testing.T) {
		rec := commonhttp.PerformRequest(t, router, http.MethodGet, "/ok", nil, "")
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
	})
}

func TestErrorHandler_LogsRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	prev := slog.Default()
	logger := middleware.NewLogger(config.LogConfig{Level: "error", TimeZone: "ICT", TimeZoneOffset: 7 * 60 * 60})

	var buf bytes.Buffer
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	r := gin.New()
	r.Use(logger.LoggingMiddleware(), middleware.CustomRecovery(), middleware.ErrorHandler())
	r.GET("/panic", func(c *gin.Context) { panic("boom") })
	r.GET("/unavailable", func(c *gin.Context) {
		httperr.Abort(c, errs.Mark(errs.New("pool exhausted"), errs.ErrStoreUnavailable))
	})

	for _, path := range []string{"/panic", "/unavailable"} {
		t.Run(path, func(t *testing.T) {
			buf.Reset()
			rec := commonhttp.PerformRequest(t, r, http.MethodGet, path, nil, "")

			requestID := rec.Header().Get("X-Request-ID")
			assert.NotEmpty(t, requestID)
			assert.Contains(t, buf.String(), "request_id="+requestID)
		})
	}
}
