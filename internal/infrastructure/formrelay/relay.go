package formrelay

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"AstroVision/internal/config"
	"AstroVision/internal/domain"
	"AstroVision/internal/ports"
)

// FormIDSource resolves the form id at submit time, so admin edits apply
// without a restart.
type FormIDSource func(ctx context.Context) (string, error)

// Relay posts contact messages to a Formspree-style endpoint.
type Relay struct {
	endpoint string
	formID   FormIDSource
	client   *http.Client
}

var _ ports.FormRelay = (*Relay)(nil)

// NewRelay builds a relay; a nil source falls back to the configured form id.
func NewRelay(cfg config.ContactConfig, source FormIDSource) *Relay {
	if source == nil {
		id := cfg.FormID
		source = func(context.Context) (string, error) { return id, nil }
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Relay{
		endpoint: cfg.Endpoint,
		formID:   source,
		client:   &http.Client{Timeout: timeout},
	}
}

// Submit forwards the message as an urlencoded form.
func (r *Relay) Submit(ctx context.Context, msg domain.ContactMessage) error {
	if r.endpoint == "" || r.client == nil {
		return fmt.Errorf("form relay misconfigured")
	}
	id, err := r.formID(ctx)
	if err != nil {
		return fmt.Errorf("resolve form id: %w", err)
	}
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("form id is empty")
	}

	form := url.Values{}
	form.Set("name", msg.Name)
	form.Set("email", msg.Email)
	form.Set("message", msg.Message)

	target := strings.TrimRight(r.endpoint, "/") + "/" + url.PathEscape(id)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("form service error %s: %s", resp.Status, strings.TrimSpace(string(body)))
	}

	return nil
}
