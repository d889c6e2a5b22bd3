package main

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestBanner(t *testing.T) {
	app := fiber.New()
	app.Get("/api/", banner)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/", nil), -1)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	var out map[string]string
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("invalid body %s: %v", body, err)
	}
	if out["message"] != "Tyre Dashboard API" {
		t.Fatalf("unexpected banner %v", out)
	}
}
