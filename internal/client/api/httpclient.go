package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// HTTPClient implements Client over HTTP/JSON. A zero timeout means each
// call blocks until the server responds or the connection fails.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	token   string
}

var _ Client = (*HTTPClient)(nil)

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	FullName    string `json:"full_name"`
	AccessToken string `json:"access_token"`
}

type createRunRequest struct {
	Name string `json:"name,omitempty"`
}

type createRunResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	StartTime string `json:"start_time"`
}

type recordSampleRequest struct {
	UsagePercent float64 `json:"usage_percent"`
}

func (c *HTTPClient) Login(ctx context.Context, username, password string) (string, error) {
	var resp loginResponse
	err := c.do(ctx, http.MethodPost, "/login",
		loginRequest{Username: username, Password: password}, &resp)
	if err != nil {
		return "", err
	}
	c.token = resp.AccessToken
	return resp.FullName, nil
}

func (c *HTTPClient) CreateRun(ctx context.Context, name string) (*Run, error) {
	var resp createRunResponse
	err := c.do(ctx, http.MethodPost, "/test_runs", createRunRequest{Name: name}, &resp)
	if err != nil {
		return nil, err
	}
	return &Run{ID: resp.ID, Name: resp.Name, StartTime: resp.StartTime}, nil
}

func (c *HTTPClient) EndRun(ctx context.Context, runID int64) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/test_runs/%d/end", runID), nil, nil)
}

func (c *HTTPClient) RecordSample(ctx context.Context, runID int64, usagePercent float64) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/test_runs/%d/cpu_usage", runID),
		recordSampleRequest{UsagePercent: usagePercent}, nil)
}

// do sends one JSON request and decodes the response into out when the
// status is 2xx. Non-2xx statuses map to the package sentinel errors.
func (c *HTTPClient) do(ctx context.Context, method, path string, in, out any) error {
	var body *bytes.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return err
		}
	}
	return nil
}

func statusError(code int) error {
	switch code {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusBadRequest:
		return ErrBadRequest
	default:
		return fmt.Errorf("unexpected status %d", code)
	}
}
