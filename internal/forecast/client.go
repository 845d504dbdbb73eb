package forecast

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/uvcast/internal/logger"
	"github.com/julianstephens/uvcast/internal/models"
)

// Source fetches the hourly UV forecast for a postal code
type Source interface {
	Fetch(ctx context.Context, postalCode string) ([]models.HourForecast, error)
	Name() string
}

// Client is the HTTP implementation of Source: GET {baseURL}/{postalCode}.
type Client struct {
	baseURL string
	client  *http.Client
}

var _ Source = (*Client)(nil)

// NewClient creates a client for baseURL. A zero timeout means no timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// NewClientWithHTTP lets callers supply their own http.Client
func NewClientWithHTTP(baseURL string, hc *http.Client) *Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), client: hc}
}

func (c *Client) Name() string {
	return "http " + c.baseURL
}

// URL returns the request URL for postalCode
func (c *Client) URL(postalCode string) string {
	return c.baseURL + "/" + url.PathEscape(postalCode)
}

func (c *Client) Fetch(ctx context.Context, postalCode string) ([]models.HourForecast, error) {
	reqID := uuid.New().String()
	target := c.URL(postalCode)
	logger.Debug("Fetching forecast", "request_id", reqID, "postal_code", postalCode, "url", target)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", ErrTransport, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		logger.Warn("Forecast request failed", "request_id", reqID, "error", err)
		return nil, fmt.Errorf("%w: request forecast: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.Warn("Forecast request returned bad status", "request_id", reqID, "status", resp.Status)
		return nil, fmt.Errorf("%w: unexpected status %s", ErrTransport, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrTransport, err)
	}

	entries, err := ParseResponse(body)
	if err != nil {
		logger.Warn("Forecast body rejected", "request_id", reqID, "error", err)
		return nil, err
	}

	logger.Debug("Forecast fetched", "request_id", reqID, "entries", len(entries))
	return entries, nil
}
