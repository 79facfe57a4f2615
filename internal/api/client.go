// internal/api/client.go
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/textproto"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"diet-client/pkg/logger"
)

// Client executes requests against the backend. Sessions are cookie
// based, so the client keeps a cookie jar; no tokens are passed around.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *logger.Logger
}

func NewClient(baseURL string, timeout time.Duration, l *logger.Logger) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
			Jar:     jar,
		},
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  l,
	}, nil
}

// GetJSON issues a GET request and decodes the JSON response into out.
func (c *Client) GetJSON(ctx context.Context, op, path string, query url.Values, out any) error {
	return c.do(ctx, op, http.MethodGet, path, query, "", nil, out)
}

// PostJSON issues a POST request with a JSON body.
func (c *Client) PostJSON(ctx context.Context, op, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode %s request: %w", op, err)
	}
	return c.do(ctx, op, http.MethodPost, path, nil, "application/json", bytes.NewReader(body), out)
}

// PostForm issues a POST request with a form-encoded body.
func (c *Client) PostForm(ctx context.Context, op, path string, form url.Values, out any) error {
	return c.do(ctx, op, http.MethodPost, path, nil, "application/x-www-form-urlencoded",
		strings.NewReader(form.Encode()), out)
}

// PutJSON issues a PUT request with a JSON body.
func (c *Client) PutJSON(ctx context.Context, op, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode %s request: %w", op, err)
	}
	return c.do(ctx, op, http.MethodPut, path, nil, "application/json", bytes.NewReader(body), out)
}

// PatchJSON issues a PATCH request with a JSON body.
func (c *Client) PatchJSON(ctx context.Context, op, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode %s request: %w", op, err)
	}
	return c.do(ctx, op, http.MethodPatch, path, nil, "application/json", bytes.NewReader(body), out)
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, op, path string, out any) error {
	return c.do(ctx, op, http.MethodDelete, path, nil, "", nil, out)
}

// Multipart issues a request with a multipart body: an optional JSON
// "data" part followed by an optional image part named "profileImage".
func (c *Client) Multipart(ctx context.Context, op, method, path string, data any, image []byte, imageName string, out any) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	if data != nil {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="data"`)
		header.Set("Content-Type", "application/json")
		part, err := writer.CreatePart(header)
		if err != nil {
			return fmt.Errorf("failed to create %s data part: %w", op, err)
		}
		if err := json.NewEncoder(part).Encode(data); err != nil {
			return fmt.Errorf("failed to encode %s data part: %w", op, err)
		}
	}

	if len(image) > 0 {
		if imageName == "" {
			imageName = "profile.jpg"
		}
		part, err := writer.CreateFormFile("profileImage", imageName)
		if err != nil {
			return fmt.Errorf("failed to create %s image part: %w", op, err)
		}
		if _, err := part.Write(image); err != nil {
			return fmt.Errorf("failed to write %s image part: %w", op, err)
		}
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize %s multipart body: %w", op, err)
	}

	return c.do(ctx, op, method, path, nil, writer.FormDataContentType(), &buf, out)
}

func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, contentType string, body io.Reader, out any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return fmt.Errorf("failed to build %s request: %w", op, err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("X-Request-ID", uuid.NewString())

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		requestsTotal.WithLabelValues(op, "network").Inc()
		c.logger.Error("Request failed", "operation", op, "method", method, "path", path, "error", err)
		return fmt.Errorf("%s request failed: %w", op, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		requestsTotal.WithLabelValues(op, "network").Inc()
		return fmt.Errorf("failed to read %s response: %w", op, err)
	}

	requestsTotal.WithLabelValues(op, strconv.Itoa(resp.StatusCode)).Inc()
	c.logger.Debug("Request completed",
		"operation", op,
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds())

	if resp.StatusCode >= 400 {
		return &Error{
			Status:  resp.StatusCode,
			Message: messageFrom(respBody),
			Body:    respBody,
		}
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("failed to decode %s response: %w", op, err)
		}
	}

	return nil
}
