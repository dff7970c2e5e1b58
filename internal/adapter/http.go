package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"
	"sync"

	"github.com/Only-Gg/gih/internal/config"
	"github.com/Only-Gg/gih/internal/logger"
	"github.com/Only-Gg/gih/internal/utils"
	"github.com/Only-Gg/gih/models"
	"github.com/go-resty/resty/v2"
)

type httpBackendAdapter struct {
	client *utils.HTTPClient
	origin string

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPBackendAdapter constructs an HTTP/REST implementation of
// [BackendAdapter]. It normalises and validates the base URL from
// adapterCfg.ServerURL and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.ServerURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPBackendAdapter(adapterCfg config.Adapter, logger *logger.Logger) (BackendAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid backend server url: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpBackendAdapter{client: client, origin: baseURL, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [BackendAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated
// requests.
func (h *httpBackendAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [BackendAdapter]. It returns the bearer token currently
// held by the adapter, or an empty string if none has been set.
func (h *httpBackendAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Login implements [BackendAdapter]. It POSTs the admin credentials to
// POST /api/auth/admin-login. Both accepted and rejected logins arrive as
// HTTP 200 envelopes; on an accepted one the session token is stored via
// SetToken. Returns an error only for transport or server failures.
func (h *httpBackendAdapter) Login(ctx context.Context, credentials models.AdminLoginRequest) (models.AdminLoginResponse, error) {
	var envelope models.AdminLoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		SetResult(&envelope).
		Post("/api/auth/admin-login")
	if err != nil {
		return models.AdminLoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AdminLoginResponse{}, err
	}

	if envelope.Success {
		h.SetToken(envelope.Token)
	}

	return envelope, nil
}

// ListPages implements [BackendAdapter]. It GETs /api/memory-pages and
// decodes the response into a slice of [models.MemoryPage]. Requires a valid
// bearer token.
func (h *httpBackendAdapter) ListPages(ctx context.Context) ([]models.MemoryPage, error) {
	resp, err := h.authedRequest(ctx).Get("/api/memory-pages")
	if err != nil {
		return nil, fmt.Errorf("list pages request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var pages []models.MemoryPage
	if err = json.Unmarshal(resp.Body(), &pages); err != nil {
		return nil, fmt.Errorf("decode pages response: %w", err)
	}

	return pages, nil
}

// GetPage implements [BackendAdapter]. It GETs /api/memory-pages/{pageID}.
// Requires a valid bearer token.
func (h *httpBackendAdapter) GetPage(ctx context.Context, pageID string) (models.MemoryPage, error) {
	var page models.MemoryPage

	resp, err := h.authedRequest(ctx).
		SetResult(&page).
		Get("/api/memory-pages/" + url.PathEscape(pageID))
	if err != nil {
		return models.MemoryPage{}, fmt.Errorf("get page request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MemoryPage{}, err
	}

	return page, nil
}

// CreatePage implements [BackendAdapter]. It POSTs the new page to
// POST /api/memory-pages and returns the stored record. Requires a valid
// bearer token.
func (h *httpBackendAdapter) CreatePage(ctx context.Context, page models.MemoryPageCreate) (models.MemoryPage, error) {
	var created models.MemoryPage

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(page).
		SetResult(&created).
		Post("/api/memory-pages")
	if err != nil {
		return models.MemoryPage{}, fmt.Errorf("create page request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MemoryPage{}, err
	}

	return created, nil
}

// UpdatePage implements [BackendAdapter]. It PUTs the full replacement
// payload to PUT /api/memory-pages/{pageID}. Requires a valid bearer token.
func (h *httpBackendAdapter) UpdatePage(ctx context.Context, pageID string, page models.MemoryPageUpdate) (models.MemoryPage, error) {
	var updated models.MemoryPage

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(page).
		SetResult(&updated).
		Put("/api/memory-pages/" + url.PathEscape(pageID))
	if err != nil {
		return models.MemoryPage{}, fmt.Errorf("update page request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MemoryPage{}, err
	}

	return updated, nil
}

// DeletePage implements [BackendAdapter]. It sends a DELETE request to
// DELETE /api/memory-pages/{pageID}. Requires a valid bearer token.
func (h *httpBackendAdapter) DeletePage(ctx context.Context, pageID string) error {
	resp, err := h.authedRequest(ctx).
		Delete("/api/memory-pages/" + url.PathEscape(pageID))
	if err != nil {
		return fmt.Errorf("delete page request: %w", err)
	}

	return mapHTTPError(resp)
}

// UploadFile implements [BackendAdapter]. It streams content as the "file"
// part of a multipart POST /api/upload request and returns the stored file's
// URL and generated name. Requires a valid bearer token.
func (h *httpBackendAdapter) UploadFile(ctx context.Context, filename string, content io.Reader) (models.UploadResponse, error) {
	var uploaded models.UploadResponse

	resp, err := h.authedRequest(ctx).
		SetFileReader("file", filename, content).
		SetResult(&uploaded).
		Post("/api/upload")
	if err != nil {
		return models.UploadResponse{}, fmt.Errorf("upload file request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UploadResponse{}, err
	}

	return uploaded, nil
}

// VerifyPassword implements [BackendAdapter]. It POSTs the password attempt
// to POST /api/memory-pages/{pageID}/verify-password. A wrong password is an
// HTTP 200 Success=false envelope; an unknown page id maps to [ErrNotFound].
// No bearer token is required.
func (h *httpBackendAdapter) VerifyPassword(ctx context.Context, pageID, password string) (models.PasswordVerifyResponse, error) {
	var envelope models.PasswordVerifyResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.PasswordVerifyRequest{Password: password}).
		SetResult(&envelope).
		Post("/api/memory-pages/" + url.PathEscape(pageID) + "/verify-password")
	if err != nil {
		return models.PasswordVerifyResponse{}, fmt.Errorf("verify password request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PasswordVerifyResponse{}, err
	}

	return envelope, nil
}

// ResolveMediaURL implements [BackendAdapter]. Absolute references pass
// through unchanged; root-relative ones get the backend origin prefixed;
// anything else is treated as a bare path one level below the origin.
func (h *httpBackendAdapter) ResolveMediaURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if strings.Contains(raw, "://") {
		return raw
	}
	if strings.HasPrefix(raw, "/") {
		return h.origin + raw
	}
	return h.origin + "/" + raw
}

func (h *httpBackendAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
