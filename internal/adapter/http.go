package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/go-resty/resty/v2"
)

const (
	pathHealth   = "/api/health"
	pathVersion  = "/api/version"
	pathRegister = "/api/auth/register"
	pathLogin    = "/api/auth/login"
	pathMe       = "/api/auth/me"
	pathNotes    = "/api/notes"
)

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// envelope mirrors the server's response body with a typed data field.
type envelope[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from cfg.ServerURL and configures
// the underlying resty client with the resolved base URL and request timeout.
//
// Returns an error if cfg.ServerURL is empty or cannot be parsed as a valid URL.
func NewHTTPServerAdapter(cfg config.ClientConfig, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	return &httpServerAdapter{client: client, logger: logger}, nil
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

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Health(ctx context.Context) error {
	resp, err := h.client.R().SetContext(ctx).Get(pathHealth)
	if err != nil {
		return fmt.Errorf("health request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get(pathVersion)
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}

	info, err := decodeData[struct {
		Version string `json:"version"`
	}](resp)
	if err != nil {
		return "", err
	}
	return info.Version, nil
}

// Register implements [ServerAdapter]. It POSTs the request to
// /api/auth/register and stores the issued token.
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResult, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post(pathRegister)
	if err != nil {
		return models.AuthResult{}, fmt.Errorf("register request: %w", err)
	}

	return h.authResult(resp)
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// /api/auth/login and stores the issued token.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.AuthResult, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post(pathLogin)
	if err != nil {
		return models.AuthResult{}, fmt.Errorf("login request: %w", err)
	}

	return h.authResult(resp)
}

func (h *httpServerAdapter) authResult(resp *resty.Response) (models.AuthResult, error) {
	result, err := decodeData[models.AuthResult](resp)
	if err != nil {
		return models.AuthResult{}, err
	}
	if result.Token == "" {
		return models.AuthResult{}, fmt.Errorf("%w: no token issued", ErrUnexpectedResponse)
	}

	h.SetToken(result.Token)
	return result, nil
}

func (h *httpServerAdapter) Me(ctx context.Context) (models.User, error) {
	resp, err := h.authedRequest(ctx).Get(pathMe)
	if err != nil {
		return models.User{}, fmt.Errorf("me request: %w", err)
	}
	return decodeData[models.User](resp)
}

func (h *httpServerAdapter) ListNotes(ctx context.Context, filter models.NoteFilter) ([]models.Note, error) {
	path := listPath(filter)
	resp, err := h.authedRequest(ctx).Get(path)
	if err != nil {
		return nil, fmt.Errorf("list notes request: %w", err)
	}

	notes, err := decodeData[[]models.Note](resp)
	if err != nil {
		return nil, err
	}
	if notes == nil {
		notes = []models.Note{}
	}
	return notes, nil
}

// listPath maps a filter to its route. A category takes precedence over the
// archived flag because the API has no combined route.
func listPath(filter models.NoteFilter) string {
	switch {
	case filter.Category != nil:
		return pathNotes + "/category/" + url.PathEscape(*filter.Category)
	case filter.Archived != nil && *filter.Archived:
		return pathNotes + "/archived"
	case filter.Archived != nil:
		return pathNotes + "/active"
	default:
		return pathNotes
	}
}

func (h *httpServerAdapter) GetNote(ctx context.Context, noteID string) (models.Note, error) {
	resp, err := h.authedRequest(ctx).Get(notePath(noteID))
	if err != nil {
		return models.Note{}, fmt.Errorf("get note request: %w", err)
	}
	return decodeData[models.Note](resp)
}

func (h *httpServerAdapter) CreateNote(ctx context.Context, input models.NoteInput) (models.Note, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(input).
		Post(pathNotes)
	if err != nil {
		return models.Note{}, fmt.Errorf("create note request: %w", err)
	}
	return decodeData[models.Note](resp)
}

func (h *httpServerAdapter) UpdateNote(ctx context.Context, noteID string, patch models.NotePatch) (models.Note, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(patch).
		Put(notePath(noteID))
	if err != nil {
		return models.Note{}, fmt.Errorf("update note request: %w", err)
	}
	return decodeData[models.Note](resp)
}

func (h *httpServerAdapter) DeleteNote(ctx context.Context, noteID string) error {
	resp, err := h.authedRequest(ctx).Delete(notePath(noteID))
	if err != nil {
		return fmt.Errorf("delete note request: %w", err)
	}
	_, err = decodeData[models.Message](resp)
	return err
}

func (h *httpServerAdapter) ArchiveNote(ctx context.Context, noteID string) (models.Note, error) {
	return h.patchNote(ctx, noteID, "archive")
}

func (h *httpServerAdapter) UnarchiveNote(ctx context.Context, noteID string) (models.Note, error) {
	return h.patchNote(ctx, noteID, "unarchive")
}

func (h *httpServerAdapter) patchNote(ctx context.Context, noteID, action string) (models.Note, error) {
	resp, err := h.authedRequest(ctx).Patch(notePath(noteID) + "/" + action)
	if err != nil {
		return models.Note{}, fmt.Errorf("%s note request: %w", action, err)
	}
	return decodeData[models.Note](resp)
}

func notePath(noteID string) string {
	return pathNotes + "/" + url.PathEscape(noteID)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// decodeData checks the status of resp and decodes the data field of its
// envelope.
func decodeData[T any](resp *resty.Response) (T, error) {
	var zero T
	if err := mapHTTPError(resp); err != nil {
		return zero, err
	}

	var env envelope[T]
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		return zero, fmt.Errorf("%w: %w", ErrUnexpectedResponse, err)
	}
	if !env.Success {
		return zero, fmt.Errorf("%w: %s", ErrUnexpectedResponse, env.Error)
	}

	return env.Data, nil
}
