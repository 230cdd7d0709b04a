package gateway

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	internal_errors "github.com/itchan-dev/forum/shared/errors"
	"github.com/itchan-dev/forum/shared/logger"
	"github.com/itchan-dev/forum/shared/utils"
)

const requestIDHeader = "X-Request-ID"

// APIClient handles all communication with the remote forum service.
// Every method performs exactly one request.
type APIClient struct {
	BaseURL    string
	HttpClient *http.Client
	Timeout    time.Duration // per request; 0 means no timeout
}

// New creates a new client for interacting with the remote service.
func New(baseURL string) *APIClient {
	return &APIClient{
		BaseURL:    baseURL,
		HttpClient: &http.Client{},
	}
}

// Insecure makes the client accept self-signed certificates, which is what a
// local development service on https://localhost usually presents.
func (c *APIClient) Insecure() *APIClient {
	c.HttpClient.Transport = &http.Transport{
		TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
	}
	return c
}

type call struct {
	op     string
	method string
	path   string
	body   any
}

// do is the single, unified helper for making API requests. Any failure,
// whatever its cause, leaves through fail.
func (c *APIClient) do(ctx context.Context, cl call, out any) error {
	start := time.Now()
	reqID := uuid.NewString()

	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	var body io.Reader
	if cl.body != nil {
		jsonBody, err := json.Marshal(cl.body)
		if err != nil {
			return c.fail(cl, reqID, 0, start, fmt.Errorf("failed to marshal request: %w", err))
		}
		body = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, c.BaseURL+cl.path, body)
	if err != nil {
		return c.fail(cl, reqID, 0, start, fmt.Errorf("failed to create API request: %w", err))
	}
	if cl.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDHeader, reqID)

	resp, err := c.HttpClient.Do(req)
	if err != nil {
		return c.fail(cl, reqID, 0, start, fmt.Errorf("backend unavailable: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		bodyBytes, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return c.fail(cl, reqID, resp.StatusCode, start, fmt.Errorf("%s: %s", resp.Status, bytes.TrimSpace(bodyBytes)))
	}

	if out != nil {
		if err := utils.Decode(resp.Body, out); err != nil {
			return c.fail(cl, reqID, resp.StatusCode, start, fmt.Errorf("cannot decode response: %w", err))
		}
	} else {
		_, _ = io.Copy(io.Discard, resp.Body)
	}

	observe(cl.op, outcomeOK, start)
	logger.Log.Debug("api request succeeded",
		"component", "gateway",
		"op", cl.op,
		"method", cl.method,
		"path", cl.path,
		"status", resp.StatusCode,
		"request_id", reqID,
		"duration", time.Since(start))
	return nil
}

// fail logs the failure with enough detail to diagnose it and converts it
// into the RemoteError callers use as their "no result" sentinel.
func (c *APIClient) fail(cl call, reqID string, status int, start time.Time, cause error) error {
	observe(cl.op, outcomeError, start)
	logger.Log.Error("api request failed",
		"component", "gateway",
		"op", cl.op,
		"method", cl.method,
		"url", c.BaseURL+cl.path,
		"status", status,
		"request_id", reqID,
		"error", cause)
	return &internal_errors.RemoteError{
		Op:         cl.op,
		Method:     cl.method,
		Path:       cl.path,
		StatusCode: status,
		Err:        cause,
	}
}
