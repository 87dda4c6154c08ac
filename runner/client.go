package runner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// DefaultTimeout bounds one remote call.
const DefaultTimeout = 5 * time.Second

var tracer = otel.Tracer("graphstudio.runner")

// Client talks to the algorithm service over HTTP/JSON.
type Client struct {
	base   string
	http   *http.Client
	logger *slog.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithTimeout overrides DefaultTimeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithHTTPClient replaces the transport client entirely.
func WithHTTPClient(h *http.Client) ClientOption {
	return func(c *Client) {
		if h != nil {
			c.http = h
		}
	}
}

// WithLogger sets the client logger.
func WithLogger(l *slog.Logger) ClientOption {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewClient returns a Client for the API rooted at base, e.g.
// "http://localhost:5000/api".
func NewClient(base string, opts ...ClientOption) *Client {
	c := &Client{
		base: strings.TrimRight(base, "/"),
		http: &http.Client{
			Timeout:   DefaultTimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run posts req to {base}/run.
func (c *Client) Run(ctx context.Context, req Request) (Response, error) {
	ctx, span := tracer.Start(ctx, "runner.Client.Run",
		trace.WithAttributes(
			attribute.String("algorithm", string(req.Algorithm)),
			attribute.Int("graph.nodes", len(req.Graph.Nodes)),
			attribute.Int("graph.edges", len(req.Graph.Edges)),
		),
	)
	defer span.End()

	var resp Response
	start := time.Now()
	if err := c.do(ctx, http.MethodPost, "/run", req, &resp); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.logger.Warn("algorithm run failed",
			slog.String("algorithm", string(req.Algorithm)),
			slog.String("error", err.Error()),
		)
		return Response{}, err
	}
	span.SetStatus(codes.Ok, "")
	c.logger.Debug("algorithm run finished",
		slog.String("algorithm", string(req.Algorithm)),
		slog.Int("steps", len(resp.Steps)),
		slog.Duration("duration", time.Since(start)),
	)
	return resp, nil
}

// Health is the body of GET {base}/health.
type Health struct {
	Status    string   `json:"status"`
	Message   string   `json:"message"`
	Supported []string `json:"supported_algorithms"`
}

// Health queries {base}/health.
func (c *Client) Health(ctx context.Context) (Health, error) {
	var h Health
	err := c.do(ctx, http.MethodGet, "/health", nil, &h)
	return h, err
}

// Algorithms queries {base}/algorithms.
func (c *Client) Algorithms(ctx context.Context) ([]Info, error) {
	var body struct {
		Algorithms []Info `json:"algorithms"`
	}
	err := c.do(ctx, http.MethodGet, "/algorithms", nil, &body)
	return body.Algorithms, err
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("runner: encode request: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return fmt.Errorf("runner: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("runner: %s %s: %w", method, path, err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(res.Body, 64<<20))
	if err != nil {
		return fmt.Errorf("runner: read response: %w", err)
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return decodeStatusError(res.StatusCode, raw)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("runner: decode response: %w", err)
	}
	return nil
}

func decodeStatusError(code int, raw []byte) error {
	var body struct {
		Error     string   `json:"error"`
		Supported []string `json:"supported_algorithms"`
	}
	se := &StatusError{Code: code, Message: http.StatusText(code)}
	if json.Unmarshal(raw, &body) == nil && body.Error != "" {
		se.Message = body.Error
		se.Supported = body.Supported
	}
	return se
}
