// Package api is the REST client for the contacts backend (GET/POST/PUT/DELETE on /contactos).
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/adso-sena/agenda/internal/config"
	"github.com/adso-sena/agenda/internal/contacts"
)

// RequestIDHeader carries a per-call id so client and server logs can be correlated.
const RequestIDHeader = "X-Request-ID"

// Client issues the four contact operations against one backend collection.
type Client struct {
	baseURL      string
	resource     string
	updateMethod string
	http         *http.Client
	logger       *slog.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithUpdateMethod selects PUT or PATCH for updates.
func WithUpdateMethod(method string) Option {
	return func(c *Client) {
		if strings.EqualFold(method, http.MethodPatch) {
			c.updateMethod = http.MethodPatch
		} else {
			c.updateMethod = http.MethodPut
		}
	}
}

// NewClient builds a client for baseURL/resource.
func NewClient(log *slog.Logger, baseURL, resource string, timeout time.Duration, opts ...Option) *Client {
	if log == nil {
		log = slog.Default()
	}
	resource = strings.Trim(strings.TrimSpace(resource), "/")
	if resource == "" {
		resource = config.DefaultResource
	}
	c := &Client{
		baseURL:      normalizeBaseURL(baseURL),
		resource:     resource,
		updateMethod: http.MethodPut,
		http:         &http.Client{Timeout: timeout},
		logger:       log.With(slog.String("component", "api")),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewFromConfig builds a client from the [api] config section.
func NewFromConfig(log *slog.Logger, cfg config.APIConfig) *Client {
	return NewClient(log, cfg.BaseURL, cfg.Resource, cfg.TimeoutDuration(), WithUpdateMethod(cfg.Method()))
}

func normalizeBaseURL(value string) string {
	return strings.TrimRight(strings.TrimSpace(value), "/")
}

// List fetches every contact.
func (c *Client) List(ctx context.Context) ([]contacts.Contact, error) {
	var items []contacts.Contact
	if err := c.do(ctx, "list", http.MethodGet, c.collectionURL(), nil, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []contacts.Contact{}
	}
	return items, nil
}

// Create stores a new contact and returns it with the backend-assigned id.
func (c *Client) Create(ctx context.Context, draft contacts.Draft) (contacts.Contact, error) {
	var created contacts.Contact
	if err := c.do(ctx, "create", http.MethodPost, c.collectionURL(), draft, &created); err != nil {
		return contacts.Contact{}, err
	}
	return created, nil
}

// Update replaces the fields of contact id and returns the stored record.
func (c *Client) Update(ctx context.Context, id string, draft contacts.Draft) (contacts.Contact, error) {
	var updated contacts.Contact
	if err := c.do(ctx, "update", c.updateMethod, c.itemURL(id), draft.WithID(id), &updated); err != nil {
		return contacts.Contact{}, err
	}
	if updated.ID == "" {
		updated.ID = id
	}
	return updated, nil
}

// Delete removes contact id.
func (c *Client) Delete(ctx context.Context, id string) error {
	return c.do(ctx, "delete", http.MethodDelete, c.itemURL(id), nil, nil)
}

func (c *Client) collectionURL() string {
	return c.baseURL + "/" + c.resource
}

func (c *Client) itemURL(id string) string {
	return c.collectionURL() + "/" + url.PathEscape(id)
}

func (c *Client) do(ctx context.Context, op, method, target string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return &Error{Op: op, Err: fmt.Errorf("encode request: %w", err)}
		}
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return &Error{Op: op, Err: fmt.Errorf("%w: %v", ErrNetwork, err)}
	}
	requestID := uuid.NewString()
	req.Header.Set(RequestIDHeader, requestID)
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	log := c.logger.With(slog.String("op", op), slog.String("request_id", requestID))
	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn("request failed", slog.Any("error", err))
		return &Error{Op: op, Err: fmt.Errorf("%w: %v", ErrNetwork, err)}
	}
	defer resp.Body.Close()
	log.Debug("request done", slog.Int("status", resp.StatusCode), slog.Duration("latency", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		cause := ErrStatus
		if resp.StatusCode == http.StatusNotFound {
			cause = ErrNotFound
		}
		return &Error{Op: op, Status: resp.StatusCode, Body: strings.TrimSpace(string(payload)), Err: cause}
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Error{Op: op, Status: resp.StatusCode, Err: fmt.Errorf("%w: %v", ErrDecode, err)}
	}
	return nil
}
