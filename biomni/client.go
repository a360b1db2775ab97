package biomni

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/fwojciec/stepwise"
	"github.com/fwojciec/stepwise/sse"
	"github.com/google/uuid"
)

// Interface compliance check.
var _ stepwise.Client = (*Client)(nil)

// Client implements [stepwise.Client] for the Biomni agent server.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	logger      *slog.Logger
	maxLineSize int
}

// Option configures a [Client].
type Option func(*Client)

// WithBaseURL sets the server base URL. Useful for testing with httptest.
func WithBaseURL(url string) Option {
	return func(c *Client) { c.baseURL = strings.TrimSuffix(url, "/") }
}

// WithHTTPClient sets a custom HTTP client. Streaming responses can run for
// many minutes, so the client should not set an overall Timeout.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger sets the logger for request diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithMaxLineSize bounds a single streamed line. See [sse.WithMaxLineSize].
func WithMaxLineSize(n int) Option {
	return func(c *Client) { c.maxLineSize = n }
}

// New creates a new [Client] with the given options.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL:     defaultBaseURL,
		httpClient:  http.DefaultClient,
		logger:      slog.New(slog.DiscardHandler),
		maxLineSize: sse.DefaultMaxLineSize,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Stream starts a streaming agent run and returns a [stepwise.Stream] of
// classified frames. A non-200 response is returned as *[stepwise.HTTPError].
func (c *Client) Stream(ctx context.Context, req stepwise.Request) (stepwise.Stream, error) {
	resp, err := c.post(ctx, streamPath, req, "text/event-stream")
	if err != nil {
		return nil, err
	}
	return newStream(ctx, resp.Body, sse.WithMaxLineSize(c.maxLineSize)), nil
}

// RunStep is one step returned by the blocking endpoint.
type RunStep struct {
	Message stepwise.StepMessage
	Output  string
}

// RunResult is the outcome of a blocking agent run.
type RunResult struct {
	Status     string
	Steps      []RunStep
	TotalSteps int
}

// Run executes the agent to completion and returns all steps at once.
func (c *Client) Run(ctx context.Context, req stepwise.Request) (RunResult, error) {
	resp, err := c.post(ctx, runPath, req, "application/json")
	if err != nil {
		return RunResult{}, err
	}
	defer resp.Body.Close()

	var apiResp apiRunResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return RunResult{}, fmt.Errorf("biomni: decode run response: %w", err)
	}
	result := RunResult{
		Status:     apiResp.Status,
		TotalSteps: apiResp.TotalSteps,
		Steps:      make([]RunStep, len(apiResp.Steps)),
	}
	for i, step := range apiResp.Steps {
		result.Steps[i] = RunStep{
			Message: stepMessage(step),
			Output:  stringField(step, "output"),
		}
	}
	return result, nil
}

// HealthStatus is the server's health report.
type HealthStatus struct {
	Status  string
	Message string
}

// Health queries the server health endpoint.
func (c *Client) Health(ctx context.Context) (HealthStatus, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+healthPath, nil)
	if err != nil {
		return HealthStatus{}, fmt.Errorf("biomni: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return HealthStatus{}, fmt.Errorf("biomni: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return HealthStatus{}, parseHTTPError(resp)
	}

	var apiResp apiHealthResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return HealthStatus{}, fmt.Errorf("biomni: decode health response: %w", err)
	}
	return HealthStatus{Status: apiResp.Status, Message: apiResp.Message}, nil
}

// post sends req to path and returns the response when its status is 200.
// The caller owns the response body.
func (c *Client) post(ctx context.Context, path string, req stepwise.Request, accept string) (*http.Response, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("biomni: %w", err)
	}
	body, err := json.Marshal(newAPIRequest(req))
	if err != nil {
		return nil, fmt.Errorf("biomni: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("biomni: %w", err)
	}
	requestID := uuid.NewString()
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", accept)
	httpReq.Header.Set("X-Request-Id", requestID)

	c.logger.Debug("sending agent request", "path", path, "request_id", requestID, "llm", req.LLM)
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("biomni: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()
		c.logger.Debug("agent request rejected", "request_id", requestID, "status", resp.StatusCode)
		return nil, parseHTTPError(resp)
	}
	return resp, nil
}

func newAPIRequest(req stepwise.Request) apiRequest {
	llm := req.LLM
	if llm == "" {
		llm = stepwise.DefaultLLM
	}
	return apiRequest{
		Query:            req.Query,
		LLM:              llm,
		Temperature:      req.Temperature,
		TimeoutSeconds:   req.TimeoutSeconds,
		UseToolRetriever: req.UseToolRetriever,
		CommercialMode:   req.CommercialMode,
		DataPath:         req.DataPath,
	}
}

// parseHTTPError builds a *stepwise.HTTPError, preferring FastAPI's string
// detail over the raw body.
func parseHTTPError(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("biomni: %w (failed to read body: %v)", &stepwise.HTTPError{StatusCode: resp.StatusCode}, err)
	}
	httpErr := &stepwise.HTTPError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	var apiErr apiErrorResponse
	if err := json.Unmarshal(body, &apiErr); err == nil && len(apiErr.Detail) > 0 {
		var detail string
		if err := json.Unmarshal(apiErr.Detail, &detail); err == nil {
			httpErr.Body = detail
		}
	}
	return fmt.Errorf("biomni: %w", httpErr)
}
