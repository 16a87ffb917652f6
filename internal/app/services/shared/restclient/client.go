package restclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"

	"vitalsync-client/internal/app/contracts"
	"vitalsync-client/internal/pkg/constvars"
	"vitalsync-client/internal/pkg/exceptions"
	"vitalsync-client/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// Client is the single place outbound requests go through. It attaches
// the current bearer credential, centralizes 401 handling and maps
// transport failures onto the error taxonomy. It performs no retries.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *zap.Logger

	mu               sync.RWMutex
	tokenProvider    func() string
	onSessionInvalid contracts.SessionInvalidHandler
}

func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: logger,
	}
}

// SetTokenProvider registers the source of the current bearer token. The
// session owner registers itself here; this package never stores
// credentials.
func (c *Client) SetTokenProvider(provider func() string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tokenProvider = provider
}

// SetOnSessionInvalid registers the single global invalidation hook. The
// hook runs before the 401 error propagates to the caller and must be
// idempotent; concurrent failing requests may all observe a 401.
func (c *Client) SetOnSessionInvalid(handler contracts.SessionInvalidHandler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onSessionInvalid = handler
}

func (c *Client) Get(ctx context.Context, path string) ([]byte, error) {
	return c.do(ctx, constvars.MethodGet, path, nil, "", true)
}

func (c *Client) Post(ctx context.Context, path string, body interface{}) ([]byte, error) {
	reader, err := encodeJSONBody(body)
	if err != nil {
		return nil, err
	}
	return c.do(ctx, constvars.MethodPost, path, reader, constvars.MIMEApplicationJSON, true)
}

// PostPublic is Post for pre-authentication endpoints. A 401 from these
// means rejected credentials, not an expired session, so the global
// invalidation hook is not consulted.
func (c *Client) PostPublic(ctx context.Context, path string, body interface{}) ([]byte, error) {
	reader, err := encodeJSONBody(body)
	if err != nil {
		return nil, err
	}
	return c.do(ctx, constvars.MethodPost, path, reader, constvars.MIMEApplicationJSON, false)
}

func (c *Client) Put(ctx context.Context, path string, body interface{}) ([]byte, error) {
	reader, err := encodeJSONBody(body)
	if err != nil {
		return nil, err
	}
	return c.do(ctx, constvars.MethodPut, path, reader, constvars.MIMEApplicationJSON, true)
}

func (c *Client) Delete(ctx context.Context, path string) ([]byte, error) {
	return c.do(ctx, constvars.MethodDelete, path, nil, "", true)
}

// PostMultipart sends fields and an optional file as multipart form
// data. The whole form is buffered before sending; patient photos are
// small.
func (c *Client) PostMultipart(ctx context.Context, path string, fields map[string]string, fileField, fileName string, file io.Reader) ([]byte, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return nil, exceptions.ErrBuildHTTPRequest(err)
		}
	}
	if file != nil {
		part, err := writer.CreateFormFile(fileField, fileName)
		if err != nil {
			return nil, exceptions.ErrBuildHTTPRequest(err)
		}
		if _, err := io.Copy(part, file); err != nil {
			return nil, exceptions.ErrBuildHTTPRequest(err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, exceptions.ErrBuildHTTPRequest(err)
	}
	return c.do(ctx, constvars.MethodPost, path, &buf, writer.FormDataContentType(), true)
}

func encodeJSONBody(body interface{}) (io.Reader, error) {
	if body == nil {
		return nil, nil
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}
	return bytes.NewReader(payload), nil
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, sessionBound bool) ([]byte, error) {
	ctx, requestID := utils.EnsureRequestID(ctx)

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		c.log.Error("restclient.do error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEndpointKey, path),
			zap.Error(err),
		)
		return nil, exceptions.ErrBuildHTTPRequest(err)
	}

	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderRequestID, requestID)
	if contentType != "" {
		req.Header.Set(constvars.HeaderContentType, contentType)
	}
	if token := c.currentToken(); token != "" {
		req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.mapTransportError(err, path, requestID)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		c.log.Error("restclient.do error reading response body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEndpointKey, path),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}

	if resp.StatusCode == constvars.StatusUnauthorized && sessionBound {
		c.log.Warn("restclient.do received 401, invalidating session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEndpointKey, path),
		)
		c.notifySessionInvalid()
		return nil, exceptions.ErrSessionExpired(nil)
	}

	if resp.StatusCode >= constvars.StatusBadRequest {
		return nil, c.mapStatusError(resp.StatusCode, bodyBytes, path, requestID)
	}

	return bodyBytes, nil
}

func (c *Client) currentToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.tokenProvider == nil {
		return ""
	}
	return c.tokenProvider()
}

func (c *Client) notifySessionInvalid() {
	c.mu.RLock()
	handler := c.onSessionInvalid
	c.mu.RUnlock()
	if handler != nil {
		handler()
	}
}

func (c *Client) mapTransportError(err error, path, requestID string) error {
	c.log.Error("restclient.do error sending HTTP request",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEndpointKey, path),
		zap.Error(err),
	)

	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return exceptions.ErrRequestTimeout(err)
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, os.ErrDeadlineExceeded) {
		return exceptions.ErrRequestTimeout(err)
	}
	return exceptions.ErrSendHTTPRequest(err)
}

func (c *Client) mapStatusError(statusCode int, body []byte, path, requestID string) error {
	c.log.Warn(fmt.Sprintf("restclient.do unexpected status %d", statusCode),
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEndpointKey, path),
		zap.Int(constvars.LoggingStatusCodeKey, statusCode),
	)

	var serverMessage struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &serverMessage); err == nil && serverMessage.Message != "" {
		return exceptions.ErrServerMessage(statusCode, serverMessage.Message, path)
	}
	return exceptions.ErrUnexpectedStatusCode(statusCode, path)
}
