// Package client talks to a running Nexus server on behalf of the admin CLI.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/atinyakov/nexus/internal/models"
)

// APIError is a non-2xx answer from the server.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.Status, e.Message)
}

// Client wraps an *http.Client bound to one server.
type Client struct {
	BaseURL string
	HTTP    *http.Client
	// Token is sent as a bearer token when non-empty.
	Token string
}

// New returns a Client for baseURL. A nil httpClient gets a 10s timeout default.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{BaseURL: strings.TrimRight(baseURL, "/"), HTTP: httpClient}
}

// Ping returns the server's liveness message.
func (c *Client) Ping(ctx context.Context) (string, error) {
	var resp struct {
		Message string `json:"message"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/ping", nil, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// Login exchanges admin credentials for the bearer token and remembers it.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var resp struct {
		Token string `json:"token"`
	}
	creds := models.Credentials{Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/api/login", creds, &resp); err != nil {
		return "", err
	}
	c.Token = resp.Token
	return resp.Token, nil
}

// Submit posts a contact-form submission and returns its id.
func (c *Client) Submit(ctx context.Context, name, email, message string) (int64, error) {
	var resp struct {
		ID int64 `json:"id"`
	}
	body := map[string]string{"name": name, "email": email, "message": message}
	if err := c.do(ctx, http.MethodPost, "/api/contact", body, &resp); err != nil {
		return 0, err
	}
	return resp.ID, nil
}

// Contacts lists stored submissions. A limit <= 0 leaves the server default.
func (c *Client) Contacts(ctx context.Context, limit int) ([]models.Contact, error) {
	path := "/api/contacts"
	if limit > 0 {
		path += "?" + url.Values{"limit": {strconv.Itoa(limit)}}.Encode()
	}
	var resp struct {
		Data []models.Contact `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// Status fetches the live transit snapshot.
func (c *Client) Status(ctx context.Context) ([]models.LiveTransitStatus, error) {
	var resp []models.LiveTransitStatus
	if err := c.do(ctx, http.MethodGet, "/api/status", nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// Stats fetches the city counters. The server advances them on every call.
func (c *Client) Stats(ctx context.Context) (models.CityStats, error) {
	var resp models.CityStats
	err := c.do(ctx, http.MethodGet, "/api/stats", nil, &resp)
	return resp, err
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var failure struct {
			Error string `json:"error"`
		}
		data, _ := io.ReadAll(resp.Body)
		if json.Unmarshal(data, &failure) != nil || failure.Error == "" {
			failure.Error = strings.TrimSpace(string(data))
		}
		return &APIError{Status: resp.StatusCode, Message: failure.Error}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
