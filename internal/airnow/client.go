// SPDX-FileCopyrightText: The outside developers
//
// SPDX-License-Identifier: MIT

package airnow

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/sony/gobreaker"

	"github.com/decarbonization/outside/internal/http"
)

const (
	observationPath = "/aq/observation/latLong/current/"
	forecastPath    = "/aq/forecast/latLong/"

	// DefaultDistance is the search radius in miles the API falls back to
	// when no reporting area covers the requested coordinates.
	DefaultDistance = 25
)

// Client fetches air quality data from the AirNow API. All requests run
// through a shared circuit breaker so a flapping upstream does not tie up
// request handlers.
type Client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
	circuit    *gobreaker.CircuitBreaker
}

// New returns a new AirNow API client.
func New(httpClient *http.Client, apiKey, baseURL string) *Client {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "airnow",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})
	return &Client{
		httpClient: httpClient,
		apiKey:     apiKey,
		baseURL:    baseURL,
		circuit:    cb,
	}
}

// CurrentObservation fetches the current observation entries for the given coordinates.
func (c *Client) CurrentObservation(ctx context.Context, latitude, longitude float64) ([]ObservationEntry, error) {
	query := c.baseQuery(latitude, longitude)
	var entries []ObservationEntry
	if err := c.get(ctx, c.baseURL+observationPath, &entries, query); err != nil {
		return nil, fmt.Errorf("failed to fetch current observation: %w", err)
	}
	return entries, nil
}

// Forecast fetches the forecast entries for the given coordinates. An empty
// date requests the forecast starting from the current day.
func (c *Client) Forecast(ctx context.Context, latitude, longitude float64, date string) ([]ForecastEntry, error) {
	query := c.baseQuery(latitude, longitude)
	if date != "" {
		query.Set("date", date)
	}
	var entries []ForecastEntry
	if err := c.get(ctx, c.baseURL+forecastPath, &entries, query); err != nil {
		return nil, fmt.Errorf("failed to fetch forecast: %w", err)
	}
	return entries, nil
}

func (c *Client) baseQuery(latitude, longitude float64) url.Values {
	query := url.Values{}
	query.Set("format", "application/json")
	query.Set("latitude", strconv.FormatFloat(latitude, 'f', -1, 64))
	query.Set("longitude", strconv.FormatFloat(longitude, 'f', -1, 64))
	query.Set("distance", strconv.Itoa(DefaultDistance))
	query.Set("API_KEY", c.apiKey)
	return query
}

func (c *Client) get(ctx context.Context, endpoint string, target any, query url.Values) error {
	_, err := c.circuit.Execute(func() (any, error) {
		status, err := c.httpClient.Get(ctx, endpoint, target, query, nil)
		if err != nil {
			return nil, err
		}
		if status < 200 || status > 299 {
			return nil, fmt.Errorf("unexpected status code: %d", status)
		}
		return nil, nil
	})
	return err
}
