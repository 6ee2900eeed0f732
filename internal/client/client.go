// Package client talks to a running capture server.
package client

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// DefaultTimeout bounds one capture round-trip. Decoding itself is local and
// never subject to a timeout.
const DefaultTimeout = 2 * time.Second

type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// New returns a client for a capture server address like "127.0.0.1:8789".
func New(addr string) *Client {
	base := addr
	if !strings.Contains(base, "://") {
		base = "http://" + base
	}
	return &Client{
		BaseURL: strings.TrimRight(base, "/"),
		HTTP:    &http.Client{Timeout: DefaultTimeout},
	}
}

// SessionInfo mirrors the server's session listing shape.
type SessionInfo struct {
	Name     string `json:"name"`
	Created  string `json:"created"`
	Retained int    `json:"retained"`
}

// Tail fetches the last size bytes of the named target's output.
func (c *Client) Tail(ctx context.Context, name string, size int) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("size must be greater than 0")
	}
	url := c.BaseURL + "/api/sessions/" + name + "/tail?size=" + strconv.Itoa(size)
	var out struct {
		Data64 string `json:"data64"`
	}
	if err := c.getJSON(ctx, url, &out); err != nil {
		return nil, err
	}
	data, err := base64.StdEncoding.DecodeString(out.Data64)
	if err != nil {
		return nil, fmt.Errorf("decoding terminal output: %w", err)
	}
	return data, nil
}

// Sessions lists the targets the server knows about.
func (c *Client) Sessions(ctx context.Context) ([]SessionInfo, error) {
	var out []SessionInfo
	if err := c.getJSON(ctx, c.BaseURL+"/api/sessions", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) getJSON(ctx context.Context, url string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("capture server request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("capture server: %s: %s", resp.Status, strings.TrimSpace(string(body)))
	}
	return json.NewDecoder(resp.Body).Decode(v)
}
