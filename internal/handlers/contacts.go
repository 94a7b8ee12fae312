package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/adso-sena/agenda/internal/config"
	"github.com/adso-sena/agenda/internal/contacts"
	"github.com/adso-sena/agenda/internal/store"
)

// ContactsHandler serves the REST collection consumed by the agenda client.
type ContactsHandler struct {
	store    store.Store
	resource string
	logger   *slog.Logger
}

// NewContactsHandler creates the handler for the configured resource name.
func NewContactsHandler(log *slog.Logger, s store.Store, cfg config.Config) *ContactsHandler {
	resource := strings.Trim(strings.TrimSpace(cfg.API.Resource), "/")
	if resource == "" {
		resource = config.DefaultResource
	}
	return &ContactsHandler{
		store:    s,
		resource: resource,
		logger:   log.With(slog.String("handler", "contacts")),
	}
}

// Register mounts the collection routes.
func (h *ContactsHandler) Register(e *echo.Echo) {
	group := e.Group("/" + h.resource)
	group.GET("", h.List)
	group.GET("/:id", h.Get)
	group.POST("", h.Create)
	group.PUT("/:id", h.Replace)
	group.PATCH("/:id", h.Patch)
	group.DELETE("/:id", h.Delete)
}

// List returns every contact as a JSON array.
func (h *ContactsHandler) List(c echo.Context) error {
	items, err := h.store.List(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, items)
}

// Get returns one contact.
func (h *ContactsHandler) Get(c echo.Context) error {
	id, err := requireID(c)
	if err != nil {
		return err
	}
	item, err := h.store.Get(c.Request().Context(), id)
	if err != nil {
		return storeError(err)
	}
	return c.JSON(http.StatusOK, item)
}

// Create stores the posted draft under a new server-assigned id.
func (h *ContactsHandler) Create(c echo.Context) error {
	var req contacts.Draft
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	item, err := h.store.Create(c.Request().Context(), req.WithID(""))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	h.logger.Debug("contact created", slog.String("id", item.ID))
	return c.JSON(http.StatusCreated, item)
}

// Replace overwrites every field of a contact (PUT).
func (h *ContactsHandler) Replace(c echo.Context) error {
	id, err := requireID(c)
	if err != nil {
		return err
	}
	var req contacts.Draft
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	item, err := h.store.Update(c.Request().Context(), id, req)
	if err != nil {
		return storeError(err)
	}
	return c.JSON(http.StatusOK, item)
}

// Patch updates only the fields present in the body (PATCH).
func (h *ContactsHandler) Patch(c echo.Context) error {
	id, err := requireID(c)
	if err != nil {
		return err
	}
	var req store.Patch
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	ctx := c.Request().Context()
	current, err := h.store.Get(ctx, id)
	if err != nil {
		return storeError(err)
	}
	item, err := h.store.Update(ctx, id, req.Apply(current.Draft()))
	if err != nil {
		return storeError(err)
	}
	return c.JSON(http.StatusOK, item)
}

// Delete removes a contact and answers with an empty object.
func (h *ContactsHandler) Delete(c echo.Context) error {
	id, err := requireID(c)
	if err != nil {
		return err
	}
	if err := h.store.Delete(c.Request().Context(), id); err != nil {
		return storeError(err)
	}
	return c.JSON(http.StatusOK, map[string]any{})
}

func requireID(c echo.Context) (string, error) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return "", echo.NewHTTPError(http.StatusBadRequest, "contact id is required")
	}
	return id, nil
}

func storeError(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "contact not found")
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}
