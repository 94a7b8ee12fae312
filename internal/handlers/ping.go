package handlers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/adso-sena/agenda/internal/store"
	"github.com/adso-sena/agenda/internal/version"
)

// PingHandler serves /ping and HEAD /health for liveness.
type PingHandler struct {
	store  store.Store
	logger *slog.Logger
}

// NewPingHandler creates a ping handler. The store is probed by /health.
func NewPingHandler(log *slog.Logger, s store.Store) *PingHandler {
	return &PingHandler{store: s, logger: log.With(slog.String("handler", "ping"))}
}

// Register mounts GET /ping and HEAD /health on the Echo instance.
func (h *PingHandler) Register(e *echo.Echo) {
	e.GET("/ping", h.Ping)
	e.HEAD("/health", h.Health)
}

// Ping returns 200 JSON {"status":"ok","version":...}.
func (h *PingHandler) Ping(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "ok",
		"version": version.GetInfo(),
	})
}

// Health returns 200 when the store answers, 503 otherwise.
func (h *PingHandler) Health(c echo.Context) error {
	if h.store != nil {
		if _, err := h.store.List(c.Request().Context()); err != nil {
			h.logger.Warn("health check failed", slog.Any("error", err))
			return c.NoContent(http.StatusServiceUnavailable)
		}
	}
	return c.NoContent(http.StatusOK)
}
