// Package cronoapi implements the authenticated HTTP executor for the Crono
// public API. It performs exactly one call per Request and returns the raw
// deserialized JSON response; retry, rate limiting and pagination are the
// caller's concern.
package cronoapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"crono-connector/internal/common/errors"
)

// DefaultBaseURL is the production endpoint of the Crono public API.
const DefaultBaseURL = "https://ext.crono.one"

// Request is the transient outcome of resource/operation dispatch: one
// Request is built and executed per input item. Endpoint is relative to the
// client base URL. Query and Body are attached only when non-empty.
type Request struct {
	Method   string         `json:"method"`
	Endpoint string         `json:"endpoint"`
	Query    map[string]any `json:"query,omitempty"`
	Body     map[string]any `json:"body,omitempty"`
}

type Client struct {
	baseURL    string
	apiKey     string
	apiSecret  string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey, apiSecret string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		apiSecret:  apiSecret,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// BaseURL returns the resolved base URL the client targets.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Execute performs one authenticated HTTP call and returns the deserialized
// JSON response unmodified. Non-2xx responses become an API_REQUEST_FAILED
// error carrying the status and response body.
func (c *Client) Execute(ctx context.Context, req *Request) (any, error) {
	if c.apiKey == "" || c.apiSecret == "" {
		return nil, errors.NewNotConfiguredError("missing API key or secret")
	}

	var bodyReader io.Reader
	if len(req.Body) > 0 {
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewBuffer(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, c.baseURL+req.Endpoint, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if len(req.Query) > 0 {
		q := httpReq.URL.Query()
		for key, value := range req.Query {
			q.Set(key, queryValue(value))
		}
		httpReq.URL.RawQuery = q.Encode()
	}

	if bodyReader != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("X-Api-Key", c.apiKey)
	httpReq.Header.Set("X-Api-Secret", c.apiSecret)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.NewAPIRequestError(resp.StatusCode, string(respBody))
	}

	if len(respBody) == 0 {
		return nil, nil
	}

	var result any
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return result, nil
}

// queryValue renders a query parameter value the way the API expects:
// booleans as true/false, numbers without a trailing ".0", nested
// objects and arrays as JSON.
func queryValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(data)
	}
}
