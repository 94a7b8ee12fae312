package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adso-sena/agenda/internal/agenda"
	"github.com/adso-sena/agenda/internal/api"
	"github.com/adso-sena/agenda/internal/config"
	"github.com/adso-sena/agenda/internal/contacts"
	"github.com/adso-sena/agenda/internal/handlers"
	"github.com/adso-sena/agenda/internal/logger"
	"github.com/adso-sena/agenda/internal/store"
)

func newBackend(t *testing.T, cfg config.Config) *httptest.Server {
	t.Helper()
	log := logger.Discard()
	s := store.NewMemoryStore()
	srv := NewServer(log, cfg.Server,
		handlers.NewContactsHandler(log, s, cfg),
		handlers.NewPingHandler(log, s),
	)
	ts := httptest.NewServer(srv.Echo())
	t.Cleanup(ts.Close)
	return ts
}

func TestServer_EchoesRequestID(t *testing.T) {
	ts := newBackend(t, config.Default())

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/ping", nil)
	require.NoError(t, err)
	req.Header.Set(api.RequestIDHeader, "req-1")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "req-1", resp.Header.Get(api.RequestIDHeader))
}

func TestServer_ClientRoundTrip(t *testing.T) {
	cfg := config.Default()
	ts := newBackend(t, cfg)
	ctx := context.Background()

	client := api.NewClient(logger.Discard(), ts.URL, cfg.API.Resource, 2*time.Second)
	draft := contacts.Draft{Nombre: "Ana", Telefono: "3001234567", Correo: "ana@sena.edu.co"}

	created, err := client.Create(ctx, draft)
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	items, err := client.List(ctx)
	require.NoError(t, err)
	idx := contacts.IndexByID(items, created.ID)
	require.GreaterOrEqual(t, idx, 0)
	assert.Equal(t, draft, items[idx].Draft())

	changed := draft
	changed.Etiqueta = "Trabajo"
	first, err := client.Update(ctx, created.ID, changed)
	require.NoError(t, err)
	second, err := client.Update(ctx, created.ID, changed)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	require.NoError(t, client.Delete(ctx, created.ID))
	items, err = client.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, -1, contacts.IndexByID(items, created.ID))

	assert.ErrorIs(t, client.Delete(ctx, created.ID), api.ErrNotFound)
}

func TestServer_PatchUpdates(t *testing.T) {
	cfg := config.Default()
	ts := newBackend(t, cfg)
	ctx := context.Background()

	client := api.NewClient(logger.Discard(), ts.URL, cfg.API.Resource, 2*time.Second, api.WithUpdateMethod(http.MethodPatch))
	created, err := client.Create(ctx, contacts.Draft{Nombre: "Beto", Telefono: "1", Correo: "b@c"})
	require.NoError(t, err)

	updated, err := client.Update(ctx, created.ID, contacts.Draft{Nombre: "Beto", Telefono: "2", Correo: "b@c"})
	require.NoError(t, err)
	assert.Equal(t, "2", updated.Telefono)
}

func TestServer_ControllerScenario(t *testing.T) {
	cfg := config.Default()
	ts := newBackend(t, cfg)
	ctx := context.Background()

	ctrl := agenda.NewController(logger.Discard(), api.NewFromConfig(logger.Discard(), config.APIConfig{
		BaseURL:  ts.URL,
		Resource: cfg.API.Resource,
		Timeout:  "2s",
	}))
	require.NoError(t, ctrl.Load(ctx))
	require.Empty(t, ctrl.Contacts())

	created, err := ctrl.Create(ctx, contacts.Draft{Nombre: "Ana", Telefono: "3001234567", Correo: "ana@sena.edu.co"})
	require.NoError(t, err)
	assert.Len(t, ctrl.Contacts(), 1)
	assert.Empty(t, ctrl.State().Error)

	ctrl.Edit(created)
	require.NoError(t, ctrl.Delete(ctx, created.ID))
	assert.Empty(t, ctrl.Contacts())
	assert.Nil(t, ctrl.State().EditTarget)
}

func TestServer_LoadFailureScenario(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))
	defer ts.Close()

	ctrl := agenda.NewController(logger.Discard(), api.NewClient(logger.Discard(), ts.URL, "contactos", time.Second))
	err := ctrl.Load(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, api.ErrStatus)
	assert.Equal(t, agenda.MsgLoadFailed, ctrl.State().Error)
	assert.False(t, ctrl.State().Loading)
	assert.Empty(t, ctrl.Contacts())
}
