package client

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/tompatulpan/Contact-Manager-sub002/internal/utils"
	"github.com/tompatulpan/Contact-Manager-sub002/models"
)

const (
	versionPath     = "/api/version/"
	eventsPath      = "/api/events"
	connectionsPath = "/api/connections/"
	connectionPath  = "/api/connections/{id}"
	pullPath        = "/api/connections/{id}/pull"
	pushPath        = "/api/connections/{id}/push"
	protectPath     = "/api/connections/{id}/protect"
	schedulePath    = "/api/connections/{id}/schedule"
	statusPath      = "/api/connections/{id}/status"
)

var _ ControlClient = (*Client)(nil)

type Client struct {
	api    *utils.HTTPClient
	stream *utils.HTTPClient
}

// New returns a client for the control API at baseURL. token is sent as a
// bearer token when non-empty. timeout bounds every call except Events.
func New(baseURL, token string, timeout time.Duration) *Client {
	baseURL = strings.TrimRight(baseURL, "/")

	api := utils.NewHTTPClient(baseURL, timeout)
	stream := utils.NewHTTPClient(baseURL, 0)
	if token != "" {
		api.SetAuthToken(token)
		stream.SetAuthToken(token)
	}

	return &Client{api: api, stream: stream}
}

// call executes the request and decodes the body into out for every
// status, since the daemon answers failed operations with their result.
func (c *Client) call(ctx context.Context, method, path, connectionID string, body, out any) error {
	req := c.api.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetResult(out).
		SetError(out)
	if connectionID != "" {
		req.SetPathParam("id", connectionID)
	}
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnreachable, err)
	}

	return apiError(resp)
}

func apiError(resp *resty.Response) error {
	if !resp.IsError() {
		return nil
	}

	var body struct {
		Error string `json:"error"`
	}
	msg := strings.TrimSpace(resp.String())
	if json.Unmarshal(resp.Body(), &body) == nil {
		msg = body.Error
	}

	return &APIError{StatusCode: resp.StatusCode(), Message: msg}
}

func (c *Client) Connect(ctx context.Context, cfg models.ConnectConfig) (models.ConnectResult, error) {
	var result models.ConnectResult
	err := c.call(ctx, http.MethodPost, connectionsPath, "", cfg, &result)
	return result, err
}

func (c *Client) Disconnect(ctx context.Context, connectionID string) (models.OperationResult, error) {
	var result models.OperationResult
	err := c.call(ctx, http.MethodDelete, connectionPath, connectionID, nil, &result)
	return result, err
}

func (c *Client) Pull(ctx context.Context, connectionID string) (models.PullResult, error) {
	var result models.PullResult
	err := c.call(ctx, http.MethodPost, pullPath, connectionID, nil, &result)
	return result, err
}

func (c *Client) Push(ctx context.Context, connectionID string) (models.BatchResult, error) {
	var result models.BatchResult
	err := c.call(ctx, http.MethodPost, pushPath, connectionID, nil, &result)
	return result, err
}

func (c *Client) Protect(ctx context.Context, connectionID string) (models.ProtectionResult, error) {
	var result models.ProtectionResult
	err := c.call(ctx, http.MethodPost, protectPath, connectionID, nil, &result)
	return result, err
}

func (c *Client) Schedule(ctx context.Context, connectionID string, req models.ScheduleRequest) (models.OperationResult, error) {
	var result models.OperationResult
	err := c.call(ctx, http.MethodPost, schedulePath, connectionID, req, &result)
	return result, err
}

func (c *Client) Unschedule(ctx context.Context, connectionID string) (models.OperationResult, error) {
	var result models.OperationResult
	err := c.call(ctx, http.MethodDelete, schedulePath, connectionID, nil, &result)
	return result, err
}

func (c *Client) Status(ctx context.Context, connectionID string) (models.ConnectionStatus, error) {
	var result models.ConnectionStatus
	err := c.call(ctx, http.MethodGet, statusPath, connectionID, nil, &result)
	return result, err
}

// Version returns the daemon version, which is served as plain text.
func (c *Client) Version(ctx context.Context) (string, error) {
	resp, err := c.api.R().SetContext(ctx).Get(versionPath)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnreachable, err)
	}
	if err = apiError(resp); err != nil {
		return "", err
	}
	return resp.String(), nil
}

func (c *Client) Events(ctx context.Context, connectionID string, fn func(models.Event) error) error {
	req := c.stream.R().
		SetContext(ctx).
		SetHeader("Accept", "text/event-stream").
		SetDoNotParseResponse(true)
	if connectionID != "" {
		req.SetQueryParam("connection", connectionID)
	}

	resp, err := req.Get(eventsPath)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnreachable, err)
	}
	body := resp.RawBody()
	defer body.Close()

	if resp.StatusCode() != http.StatusOK {
		return &APIError{StatusCode: resp.StatusCode(), Message: http.StatusText(resp.StatusCode())}
	}

	scanner := bufio.NewScanner(body)
	for scanner.Scan() {
		data, ok := strings.CutPrefix(scanner.Text(), "data: ")
		if !ok {
			continue
		}

		var e models.Event
		if err = json.Unmarshal([]byte(data), &e); err != nil {
			return fmt.Errorf("decode event: %w", err)
		}
		if err = fn(e); err != nil {
			return err
		}
	}

	if err = scanner.Err(); err != nil && !errors.Is(err, context.Canceled) && ctx.Err() == nil {
		return fmt.Errorf("read event stream: %w", err)
	}
	return nil
}
