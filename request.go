package openaccess

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// newRequest creates a new HTTP request against a fully built endpoint
// URL (see endpoint.go).
func (c *Client) newRequest(ctx context.Context, method, url string, body any) (*http.Request, error) {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Application-Id", c.applicationID)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if token := c.session.get(); token != "" {
		req.Header.Set("Session-Token", token)
	}

	return req, nil
}

// doJSON executes the request and decodes the JSON response body into v.
func (c *Client) doJSON(req *http.Request, v any) error {
	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if v == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return &MalformedResponseError{Err: err}
	}

	return nil
}

// do executes the request and classifies the outcome. Transport-level
// failures become [ConnectionError]; any status other than 200 becomes
// [ServerError] with the body drained into it. Requests are never
// retried.
func (c *Client) do(req *http.Request) (*http.Response, error) {
	if c.logger != nil {
		c.logger.Debug("openaccess request", "method", req.Method, "url", req.URL.String())
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &ConnectionError{Err: err}
	}

	if c.logger != nil {
		c.logger.Debug("openaccess response", "status", resp.StatusCode, "url", req.URL.String())
	}

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		_ = resp.Body.Close()

		return nil, &ServerError{
			StatusCode: resp.StatusCode,
			Status:     http.StatusText(resp.StatusCode),
			Body:       string(bytes.TrimSpace(body)),
		}
	}

	return resp, nil
}
