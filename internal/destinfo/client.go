// Package destinfo holds the read-only clients for the public destination
// APIs: geocoding, weather, country facts, prayer times, and currency rates.
// Every lookup is best-effort: a failed or empty response degrades to an
// "unavailable" result for that one widget and never blocks the trip
// document or any other lookup.
package destinfo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrUnavailable is returned when an API responds but carries no usable
// result for the destination (unknown place, empty payload, ...). Callers
// render "unavailable" for this and any other lookup error alike.
var ErrUnavailable = errors.New("destination info unavailable")

// Config carries the API base URLs and the shared request timeout.
// Base URLs are overridable so tests can point at an httptest server.
type Config struct {
	GeocodingBaseURL string
	WeatherBaseURL   string
	CountriesBaseURL string
	PrayerBaseURL    string
	CurrencyBaseURL  string
	Timeout          time.Duration
}

// DefaultConfig returns the production endpoints with a 10s timeout.
func DefaultConfig() Config {
	return Config{
		GeocodingBaseURL: "https://geocoding-api.open-meteo.com",
		WeatherBaseURL:   "https://api.open-meteo.com",
		CountriesBaseURL: "https://restcountries.com",
		PrayerBaseURL:    "https://api.aladhan.com",
		CurrencyBaseURL:  "https://api.exchangerate.host",
		Timeout:          10 * time.Second,
	}
}

// Client performs the outbound GET requests. All methods take a context and
// return ErrUnavailable (or a transport error) on any failure; none retries.
type Client struct {
	config     Config
	httpClient *http.Client
}

// NewClient constructs a Client for the given endpoints.
func NewClient(config Config) *Client {
	if config.Timeout <= 0 {
		config.Timeout = 10 * time.Second
	}
	return &Client{
		config:     config,
		httpClient: &http.Client{Timeout: config.Timeout},
	}
}

// getJSON issues a GET and decodes the JSON response body into out.
func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("API error (status %d): %s", resp.StatusCode, body)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
