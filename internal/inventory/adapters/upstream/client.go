// Package upstream reads inventory snapshots from another dashboard backend
// over HTTP.
package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"tyre-dashboard-service/internal/inventory/core/domain"
	"tyre-dashboard-service/internal/inventory/core/ports"
)

const DefaultTimeout = 60 * time.Second

var ErrUnexpectedStatus = errors.New("unexpected upstream status")

type Client struct {
	baseURL string
	timeout time.Duration
}

// NewClient talks to baseURL, e.g. "http://inventory-api:8001". The /api
// prefix is added by the client.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), timeout: timeout}
}

var _ ports.InventorySourcePort = (*Client)(nil)

func (c *Client) ListInventory(ctx context.Context) ([]domain.Record, error) {
	var out []domain.Record
	if err := c.getJSON(ctx, "/api/inventory", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) FilterOptions(ctx context.Context) (*domain.FilterOptions, error) {
	var out domain.FilterOptions
	if err := c.getJSON(ctx, "/api/filter-options", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) getJSON(ctx context.Context, path string, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	timeout := c.timeout
	if dl, ok := ctx.Deadline(); ok {
		if left := time.Until(dl); left < timeout {
			timeout = left
		}
	}

	agent := fiber.Get(c.baseURL + path)
	agent.Set(fiber.HeaderAccept, fiber.MIMEApplicationJSON)
	agent.Timeout(timeout)
	if err := agent.Parse(); err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}

	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return fmt.Errorf("GET %s: %w", path, errors.Join(errs...))
	}
	if code != http.StatusOK {
		return fmt.Errorf("GET %s: %w %d", path, ErrUnexpectedStatus, code)
	}

	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
