package maintenance

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/roivaz/ilp-maintenance-mcp/internal/logging"
)

const (
	DefaultTimeout = 10 * time.Second

	// maxResponseBytes bounds how much of a response body is read.
	maxResponseBytes = 8 << 20
)

type Config struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     logging.Logger
}

// Client issues single-shot calls against the maintenance API. It holds no
// per-call state and is safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
	to      time.Duration
	log     logging.Logger
}

func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		baseURL: ResolveBaseURL(cfg.BaseURL),
		http:    httpClient,
		to:      timeout,
		log:     cfg.Logger.WithName("maintenance.client"),
	}
}

func (c *Client) BaseURL() string { return c.baseURL }

// Do performs req once and returns the parsed JSON body. Non-2xx responses
// yield *HTTPError; connection failures and timeouts wrap ErrUnreachable.
func (c *Client) Do(ctx context.Context, req Request) (gjson.Result, error) {
	path := req.Path
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	url := c.baseURL + path

	var body io.Reader
	if req.Body != nil {
		payload, err := json.Marshal(req.Body)
		if err != nil {
			return gjson.Result{}, fmt.Errorf("encode %s %s body: %w", req.Method, path, err)
		}
		body = bytes.NewReader(payload)
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, url, body)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("build %s %s: %w", req.Method, path, err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if id := RequestIDFrom(ctx); id != "" {
		httpReq.Header.Set("X-Request-ID", id)
	}

	start := time.Now()
	c.log.Debug("calling maintenance API", "method", req.Method, "url", url)
	resp, err := c.http.Do(httpReq)
	if err != nil {
		annotated := c.annotateError(err)
		c.log.Error(annotated, "maintenance API call failed", "method", req.Method, "url", url, "elapsed", time.Since(start))
		return gjson.Result{}, fmt.Errorf("%w: %s %s: %v", ErrUnreachable, req.Method, url, annotated)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return gjson.Result{}, fmt.Errorf("%w: read %s %s response: %v", ErrUnreachable, req.Method, url, c.annotateError(err))
	}
	c.log.Debug("maintenance API responded", "method", req.Method, "url", url, "status", resp.StatusCode, "elapsed", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return gjson.Result{}, &HTTPError{StatusCode: resp.StatusCode, Body: string(raw)}
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return gjson.Result{}, nil
	}
	if !gjson.ValidBytes(raw) {
		return gjson.Result{}, fmt.Errorf("decode %s %s response: invalid JSON", req.Method, path)
	}
	return gjson.ParseBytes(raw), nil
}

func (c *Client) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.to <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.to)
}

func (c *Client) annotateError(err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return fmt.Errorf("call timed out after %s: %w", c.to, err)
	}
	return err
}

type requestIDKey struct{}

// WithRequestID attaches an ID that is forwarded as X-Request-ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
