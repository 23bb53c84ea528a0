package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/tompatulpan/Contact-Manager-sub002/internal/config"
	"github.com/tompatulpan/Contact-Manager-sub002/internal/logger"
	"github.com/tompatulpan/Contact-Manager-sub002/internal/utils"
	"github.com/tompatulpan/Contact-Manager-sub002/models"
)

const (
	discoverPath = "/api/connections/{id}/discover"
	contactsPath = "/api/connections/{id}/contacts"
	contactPath  = "/api/connections/{id}/contacts/{uid}"
	healthPath   = "/api/connections/{id}/health"
)

type httpBridgeAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPBridgeAdapter constructs the resty implementation of
// [BridgeAdapter] for the bridge at cfg.HTTPAddress.
//
// Returns an error if the address is empty or cannot be parsed as a URL.
func NewHTTPBridgeAdapter(cfg config.DaemonAdapter, log *logger.Logger) (BridgeAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpBridgeAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: log,
	}, nil
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

func (h *httpBridgeAdapter) request(ctx context.Context, connectionID string) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetPathParam("id", connectionID)
}

// Discover implements [BridgeAdapter]. It POSTs the server URL and
// credentials to /api/connections/{id}/discover.
func (h *httpBridgeAdapter) Discover(ctx context.Context, connectionID string, req models.DiscoverRequest) ([]models.AddressBook, error) {
	var result models.DiscoverResponse

	resp, err := h.request(ctx, connectionID).
		SetBody(req).
		SetResult(&result).
		Post(discoverPath)
	if err != nil {
		return nil, fmt.Errorf("%w: discover request: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("discover: %w", err)
	}

	return result.AddressBooks, nil
}

// Fetch implements [BridgeAdapter]. A successful status whose body carries
// serverError=true is reported as [ErrServerUnavailable].
func (h *httpBridgeAdapter) Fetch(ctx context.Context, connectionID string) ([]models.RemoteContact, error) {
	var result models.FetchResponse

	resp, err := h.request(ctx, connectionID).
		SetResult(&result).
		Get(contactsPath)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch request: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}

	if result.ServerError {
		h.logger.Warn().
			Str("func", "httpBridgeAdapter.Fetch").
			Str("connection_id", connectionID).
			Str("reason", result.Error).
			Msg("bridge reported remote server error")
		return nil, fmt.Errorf("fetch: %w: %s", ErrServerUnavailable, result.Error)
	}

	if result.Contacts == nil {
		return []models.RemoteContact{}, nil
	}

	return result.Contacts, nil
}

// Push implements [BridgeAdapter]. It PUTs the record to
// /api/connections/{id}/contacts/{uid}.
func (h *httpBridgeAdapter) Push(ctx context.Context, connectionID string, req models.PushRequest) (models.PushResponse, error) {
	if req.UID == "" {
		return models.PushResponse{}, fmt.Errorf("push: %w: empty uid", ErrBadRequest)
	}

	var result models.PushResponse

	resp, err := h.request(ctx, connectionID).
		SetPathParam("uid", req.UID).
		SetBody(req).
		SetResult(&result).
		Put(contactPath)
	if err != nil {
		return models.PushResponse{}, fmt.Errorf("%w: push request: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PushResponse{}, fmt.Errorf("push %s: %w", req.UID, err)
	}

	if result.AddressBook == "" {
		result.AddressBook = req.AddressBook
	}

	return result, nil
}

// Delete implements [BridgeAdapter].
func (h *httpBridgeAdapter) Delete(ctx context.Context, connectionID string, req models.DeleteRequest) error {
	if req.UID == "" {
		return fmt.Errorf("delete: %w: empty uid", ErrBadRequest)
	}

	resp, err := h.request(ctx, connectionID).
		SetPathParam("uid", req.UID).
		SetBody(req).
		Delete(contactPath)
	if err != nil {
		return fmt.Errorf("%w: delete request: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("delete %s: %w", req.UID, err)
	}

	return nil
}

// Health implements [BridgeAdapter]. Only failures to reach the bridge are
// returned as errors; an unreachable remote server is reported through
// ServerReachable.
func (h *httpBridgeAdapter) Health(ctx context.Context, connectionID string) (models.HealthResponse, error) {
	var result models.HealthResponse

	resp, err := h.request(ctx, connectionID).
		SetResult(&result).
		Get(healthPath)
	if err != nil {
		return models.HealthResponse{}, fmt.Errorf("%w: health request: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		if errors.Is(err, ErrServerUnavailable) {
			return models.HealthResponse{Status: "degraded", ServerReachable: false}, nil
		}
		return models.HealthResponse{}, fmt.Errorf("health: %w", err)
	}

	return result, nil
}
