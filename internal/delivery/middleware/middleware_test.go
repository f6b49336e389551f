package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"orderservice/config"
	deliverycontext "orderservice/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_Process(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		wantSame bool
	}{
		{name: "reuses caller id", header: "req-123", wantSame: true},
		{name: "generates when missing", header: ""},
		{name: "replaces oversized id", header: strings.Repeat("x", 200)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			m := NewRequestIDMiddleware(slog.New(slog.NewJSONHandler(&buf, nil)))

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/orders", nil)
			if tt.header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var ctxID string
			err := m.Process(func(c echo.Context) error {
				ctx := c.Request().Context()
				ctxID = deliverycontext.GetRequestIDFromContext(ctx)
				deliverycontext.GetLoggerOrDefault(ctx, nil).Info("inside")

				return nil
			})(c)
			require.NoError(t, err)

			headerID := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.NotEmpty(t, headerID)
			assert.Equal(t, headerID, ctxID)
			assert.Equal(t, headerID, deliverycontext.GetRequestID(c))
			assert.Contains(t, buf.String(), `"request_id":"`+headerID+`"`)

			if tt.wantSame {
				assert.Equal(t, tt.header, headerID)
			} else {
				assert.NotEqual(t, tt.header, headerID)
			}
		})
	}
}

func TestLoggerMiddleware_Handle(t *testing.T) {
	newCfg := func(debug bool) *config.Config {
		cfg := &config.Config{}
		cfg.Env.Debug = debug

		return cfg
	}

	t.Run("debug logs error status at warn", func(t *testing.T) {
		var buf bytes.Buffer
		m := NewLoggerMiddleware(slog.New(slog.NewJSONHandler(&buf, nil)), newCfg(true))

		e := echo.New()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/orders/x", nil), httptest.NewRecorder())

		err := m.Handle(func(echo.Context) error {
			return echo.NewHTTPError(http.StatusNotFound)
		})(c)
		require.Error(t, err)

		assert.Contains(t, buf.String(), `"level":"WARN"`)
		assert.Contains(t, buf.String(), `"status":404`)
	})

	t.Run("silent without debug", func(t *testing.T) {
		var buf bytes.Buffer
		m := NewLoggerMiddleware(slog.New(slog.NewJSONHandler(&buf, nil)), newCfg(false))

		e := echo.New()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/orders", nil), httptest.NewRecorder())

		require.NoError(t, m.Handle(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})(c))
		assert.Empty(t, buf.String())
	})
}
