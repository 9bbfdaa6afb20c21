package openmeteo

import (
	"context"
	"math"
	"net/http"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const forecastBody = `{
  "latitude": -38.0,
  "longitude": -57.5,
  "timezone": "America/Argentina/Buenos_Aires",
  "current": {
    "time": "2026-10-17T14:15",
    "temperature_2m": 17.2,
    "wind_speed_10m": 6.4,
    "precipitation": 0.0,
    "cloud_cover": 40,
    "relative_humidity_2m": 71,
    "pressure_msl": 1015.3,
    "visibility": 24140
  },
  "hourly": {
    "time": ["2026-10-17T00:00", "2026-10-17T01:00", "2026-10-17T02:00"],
    "temperature_2m": [14.1, 13.8, null],
    "wind_speed_10m": [5.0, 6.0, 7.0],
    "precipitation": [0, 0.2, 0]
  }
}`

const marineBody = `{
  "latitude": -38.0,
  "longitude": -57.5,
  "timezone": "America/Argentina/Buenos_Aires",
  "hourly": {
    "time": ["2026-10-17T13:00", "2026-10-17T14:00", "2026-10-17T15:00"],
    "wave_height": [1.1, 1.3, 1.4]
  }
}`

func setupHTTPMock(t *testing.T) {
	t.Helper()
	httpmock.Activate()
	t.Cleanup(httpmock.DeactivateAndReset)
}

func TestClient_Forecast(t *testing.T) {
	setupHTTPMock(t)

	httpmock.RegisterResponder("GET", `=~^https://api\.open-meteo\.com/v1/forecast`,
		func(req *http.Request) (*http.Response, error) {
			q := req.URL.Query()
			assert.Equal(t, "-38.0055", q.Get("latitude"))
			assert.Equal(t, "-57.5426", q.Get("longitude"))
			assert.Equal(t, "ms", q.Get("wind_speed_unit"))
			assert.Equal(t, "7", q.Get("forecast_days"))
			assert.Contains(t, q.Get("current"), "wind_speed_10m")
			return httpmock.NewStringResponse(http.StatusOK, forecastBody), nil
		})

	c := NewClient("", "", 5*time.Second)
	resp, err := c.Forecast(context.Background(), -38.0055, -57.5426, 7)
	require.NoError(t, err)

	require.NotNil(t, resp.Current.Temperature)
	assert.InDelta(t, 17.2, *resp.Current.Temperature, 0.001)
	assert.Len(t, resp.Hourly.Time, 3)
	assert.Nil(t, resp.Hourly.Temperature[2])
}

func TestClient_HTTPError(t *testing.T) {
	setupHTTPMock(t)

	httpmock.RegisterResponder("GET", `=~^https://marine-api\.open-meteo\.com/v1/marine`,
		httpmock.NewStringResponder(http.StatusBadRequest, `{"error":true,"reason":"bad"}`))

	c := NewClient("", "", 5*time.Second)
	resp, err := c.Marine(context.Background(), -38, -57, 1)
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Contains(t, err.Error(), "400")
}

func TestClient_DecodeError(t *testing.T) {
	setupHTTPMock(t)

	httpmock.RegisterResponder("GET", `=~^https://api\.open-meteo\.com/v1/forecast`,
		httpmock.NewStringResponder(http.StatusOK, `not json`))

	c := NewClient("", "", 5*time.Second)
	_, err := c.Forecast(context.Background(), -38, -57, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}

func TestToReading(t *testing.T) {
	setupHTTPMock(t)

	httpmock.RegisterResponder("GET", `=~^https://api\.open-meteo\.com/v1/forecast`,
		httpmock.NewStringResponder(http.StatusOK, forecastBody))
	httpmock.RegisterResponder("GET", `=~^https://marine-api\.open-meteo\.com/v1/marine`,
		httpmock.NewStringResponder(http.StatusOK, marineBody))

	c := NewClient("", "", 5*time.Second)
	f, err := c.Forecast(context.Background(), -38, -57, 1)
	require.NoError(t, err)
	m, err := c.Marine(context.Background(), -38, -57, 1)
	require.NoError(t, err)

	now := time.Date(2026, 10, 17, 17, 15, 0, 0, time.UTC)
	r := ToReading(9, f, m, now, time.UTC)

	assert.Equal(t, uint(9), r.SpotID)
	assert.False(t, r.Empty())
	require.NotNil(t, r.Current.WaveHeight)
	assert.InDelta(t, 1.3, *r.Current.WaveHeight, 0.001, "wave height follows the current hour")

	require.Len(t, r.Hourly.Temperature, 3)
	assert.True(t, math.IsNaN(r.Hourly.Temperature[2]), "null hourly values become NaN")
	assert.Equal(t, "America/Argentina/Buenos_Aires", r.Hourly.Time[0].Location().String())
	assert.Equal(t, 0, r.Hourly.Time[0].Hour())
}

func TestToReading_NoMarine(t *testing.T) {
	f := &ForecastResponse{Hourly: HourlyBlock{Time: []string{"2026-10-17T00:00"}}}
	r := ToReading(1, f, nil, time.Now(), nil)

	assert.Nil(t, r.Current.WaveHeight)
	assert.Empty(t, r.Hourly.WaveHeight)
	assert.Equal(t, time.UTC, r.Hourly.Time[0].Location())
}
