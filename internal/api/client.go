package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"golang.org/x/time/rate"
)

const defaultBaseURL = "http://127.0.0.1:5000"

// RequestError is the uniform failure envelope for every API call.
//
// Message carries the backend-supplied error text when the response body
// contained one, else the operation's fallback message. StatusCode is zero
// for transport failures.
type RequestError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *RequestError) Error() string { return e.Message }

func (e *RequestError) Unwrap() error { return e.Err }

// IsUnauthorized reports whether err is a 401 response. Callers treat this
// as session-invalidating.
func IsUnauthorized(err error) bool {
	var reqErr *RequestError
	return errors.As(err, &reqErr) && reqErr.StatusCode == http.StatusUnauthorized
}

// IsConflict reports whether err is a 409 response (duplicate title, actor
// already assigned, movie already in watchlist).
func IsConflict(err error) bool {
	var reqErr *RequestError
	return errors.As(err, &reqErr) && reqErr.StatusCode == http.StatusConflict
}

// Client issues authenticated requests against the movie catalog backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a backend client with the given base URL and HTTP client.
func NewClient(baseURL string, client *http.Client) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if client == nil {
		client = http.DefaultClient
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: client,
	}
}

// BaseURL returns the backend base URL the client was configured with.
func (c *Client) BaseURL() string { return c.baseURL }

// Limit paces outbound requests at rps requests per second. A zero or
// negative rate removes pacing.
func (c *Client) Limit(rps float64) {
	if rps <= 0 {
		c.limiter = nil
		return
	}
	c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
}

// errorBody is the backend's error envelope.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// do performs one HTTP round trip and decodes the response into result.
//
// token, query, and body may be zero values. Any failure is returned as a
// *RequestError with fallback as the message unless the backend supplied
// its own error text.
func (c *Client) do(ctx context.Context, method, path, token string, query url.Values, body, result any, fallback string) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return &RequestError{Message: fallback, Err: err}
		}
	}

	apiURL := c.baseURL + path
	if len(query) > 0 {
		apiURL += "?" + query.Encode()
	}

	var reqBody *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &RequestError{Message: fallback, Err: fmt.Errorf("failed to encode request body: %w", err)}
		}
		reqBody = bytes.NewReader(data)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, apiURL, reqBody)
	if err != nil {
		return &RequestError{Message: fallback, Err: err}
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &RequestError{Message: fallback, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := fallback
		var envelope errorBody
		if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil {
			if envelope.Error != "" {
				message = envelope.Error
			} else if envelope.Message != "" {
				message = envelope.Message
			}
		}
		return &RequestError{StatusCode: resp.StatusCode, Message: message}
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return &RequestError{StatusCode: resp.StatusCode, Message: fallback, Err: fmt.Errorf("failed to decode response: %w", err)}
		}
	}

	return nil
}

// withConflictText substitutes an operation-specific conflict message when
// the backend returned 409 without its own error text.
func withConflictText(err error, fallback, conflictText string) error {
	if err == nil {
		return nil
	}

	var reqErr *RequestError
	if errors.As(err, &reqErr) && reqErr.StatusCode == http.StatusConflict && reqErr.Message == fallback {
		reqErr.Message = conflictText
	}
	return err
}
