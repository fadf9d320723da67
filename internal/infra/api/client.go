// Package api is the typed gateway to the remote EngineersHub REST API.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"engineershub/config"
	deliverycontext "engineershub/internal/delivery/context"
	"engineershub/internal/domain/entity"
	domainerrors "engineershub/internal/domain/errors"
	"engineershub/internal/errors"
)

// maxErrorBody caps how much of a failed response is read to find the detail.
const maxErrorBody = 1 << 20

// Client calls the remote API with the credential attached to its RequestContext.
// It never retries and never caches.
type Client struct {
	cfg        config.APIConfig
	endpoint   string
	httpClient *http.Client
	rc         *entity.RequestContext
	logger     *slog.Logger
}

// NewClient creates a gateway client. A nil httpClient gets one with the configured timeout.
func NewClient(cfg config.APIConfig, httpClient *http.Client, rc *entity.RequestContext, logger *slog.Logger) (*Client, error) {
	if _, err := url.ParseRequestURI(cfg.BaseURL); err != nil {
		return nil, errors.Wrap(err, "invalid api base url")
	}
	if rc == nil {
		return nil, errors.New("request context is required")
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	prefix := strings.TrimRight(cfg.Prefix, "/")
	if prefix != "" && !strings.HasPrefix(prefix, "/") {
		prefix = "/" + prefix
	}

	return &Client{
		cfg:        cfg,
		endpoint:   strings.TrimRight(cfg.BaseURL, "/") + prefix,
		httpClient: httpClient,
		rc:         rc,
		logger:     logger,
	}, nil
}

// Close releases idle connections held by the underlying transport.
func (c *Client) Close() error {
	if tr, ok := c.httpClient.Transport.(interface{ CloseIdleConnections() }); ok {
		tr.CloseIdleConnections()
	}

	return nil
}

func (c *Client) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, c.logger)
}

// url joins the endpoint with an escaped resource path.
func (c *Client) url(path string, query url.Values) string {
	u := c.endpoint + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	return u
}

// doJSON sends body (when non-nil) as JSON and decodes the response into out (when non-nil).
func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.Wrapf(err, "encode %s %s", method, path)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path, query), reader)
	if err != nil {
		return errors.Wrapf(err, "build %s %s", method, path)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(ctx, req, out)
}

// send attaches the shared headers, executes req, and maps the response.
func (c *Client) send(ctx context.Context, req *http.Request, out any) error {
	requestID := deliverycontext.GetRequestIDOrNew(ctx)
	req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	req.Header.Set("Accept", "application/json")
	if auth := c.rc.AuthorizationFor(ctx); auth != "" {
		req.Header.Set("Authorization", auth)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s", req.Method, req.URL.Path)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := decodeAPIError(resp)
		c.log(ctx).Debug("api request failed",
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.Int("status", resp.StatusCode),
			slog.String("request_id", requestID),
		)

		return errors.WithStack(apiErr)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)

		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(err, "decode %s %s", req.Method, req.URL.Path)
	}

	return nil
}

func decodeAPIError(resp *http.Response) *domainerrors.APIError {
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil || len(body) == 0 {
		return domainerrors.NewAPIError(resp.StatusCode, "")
	}

	var payload domainerrors.ErrorResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return domainerrors.NewAPIError(resp.StatusCode, "")
	}

	return domainerrors.NewAPIError(resp.StatusCode, payload.DetailText())
}

// escape encodes a single path segment.
func escape(segment string) string {
	return url.PathEscape(segment)
}
