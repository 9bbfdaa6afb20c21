// Package openmeteo is a small client for the Open-Meteo forecast and marine APIs.
package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	DefaultForecastURL = "https://api.open-meteo.com"
	DefaultMarineURL   = "https://marine-api.open-meteo.com"
)

var currentFields = []string{
	"temperature_2m",
	"wind_speed_10m",
	"precipitation",
	"cloud_cover",
	"relative_humidity_2m",
	"pressure_msl",
	"visibility",
}

var hourlyFields = []string{
	"temperature_2m",
	"wind_speed_10m",
	"precipitation",
}

// Client queries Open-Meteo by coordinates
type Client struct {
	forecastURL string
	marineURL   string
	httpClient  *http.Client
}

// NewClient creates a client. Empty base URLs fall back to the public endpoints.
func NewClient(forecastURL, marineURL string, timeout time.Duration) *Client {
	if forecastURL == "" {
		forecastURL = DefaultForecastURL
	}
	if marineURL == "" {
		marineURL = DefaultMarineURL
	}

	return &Client{
		forecastURL: strings.TrimRight(forecastURL, "/"),
		marineURL:   strings.TrimRight(marineURL, "/"),
		httpClient:  &http.Client{Timeout: timeout},
	}
}

// CurrentBlock is the "current" object of a forecast response
type CurrentBlock struct {
	Time          string   `json:"time"`
	Temperature   *float64 `json:"temperature_2m"`
	WindSpeed     *float64 `json:"wind_speed_10m"`
	Precipitation *float64 `json:"precipitation"`
	CloudCover    *float64 `json:"cloud_cover"`
	Humidity      *float64 `json:"relative_humidity_2m"`
	PressureMSL   *float64 `json:"pressure_msl"`
	Visibility    *float64 `json:"visibility"`
}

// HourlyBlock is the "hourly" object shared by both APIs. Values may be null.
type HourlyBlock struct {
	Time          []string   `json:"time"`
	Temperature   []*float64 `json:"temperature_2m"`
	WindSpeed     []*float64 `json:"wind_speed_10m"`
	Precipitation []*float64 `json:"precipitation"`
	WaveHeight    []*float64 `json:"wave_height"`
}

// ForecastResponse is the decoded /v1/forecast payload
type ForecastResponse struct {
	Latitude  float64      `json:"latitude"`
	Longitude float64      `json:"longitude"`
	Timezone  string       `json:"timezone"`
	Current   CurrentBlock `json:"current"`
	Hourly    HourlyBlock  `json:"hourly"`
}

// MarineResponse is the decoded /v1/marine payload
type MarineResponse struct {
	Latitude  float64     `json:"latitude"`
	Longitude float64     `json:"longitude"`
	Timezone  string      `json:"timezone"`
	Hourly    HourlyBlock `json:"hourly"`
}

// Forecast fetches current conditions and the hourly forecast. Wind speed is requested in m/s.
func (c *Client) Forecast(ctx context.Context, lat, lon float64, days int) (*ForecastResponse, error) {
	q := coordinates(lat, lon, days)
	q.Set("current", strings.Join(currentFields, ","))
	q.Set("hourly", strings.Join(hourlyFields, ","))
	q.Set("wind_speed_unit", "ms")

	var out ForecastResponse
	if err := c.get(ctx, c.forecastURL+"/v1/forecast", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Marine fetches the hourly wave height forecast
func (c *Client) Marine(ctx context.Context, lat, lon float64, days int) (*MarineResponse, error) {
	q := coordinates(lat, lon, days)
	q.Set("hourly", "wave_height")

	var out MarineResponse
	if err := c.get(ctx, c.marineURL+"/v1/marine", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func coordinates(lat, lon float64, days int) url.Values {
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(lat, 'f', 4, 64))
	q.Set("longitude", strconv.FormatFloat(lon, 'f', 4, 64))
	q.Set("forecast_days", strconv.Itoa(days))
	q.Set("timezone", "auto")
	return q
}

func (c *Client) get(ctx context.Context, endpoint string, q url.Values, out any) error {
	reqURL := endpoint + "?" + q.Encode()
	zap.S().Debugf("Fetching %s", reqURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("open-meteo returned status code: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
