package models

import (
	"math"
	"time"
)

// Current holds the latest observed values of a spot. Nil means the source had no value.
type Current struct {
	Temperature   *float64 `json:"temperature_2m"`
	WindSpeed     *float64 `json:"wind_speed_10m"`
	Precipitation *float64 `json:"precipitation"`
	CloudCover    *float64 `json:"cloud_cover"`
	Humidity      *float64 `json:"relative_humidity_2m"`
	PressureMSL   *float64 `json:"pressure_msl"`
	Visibility    *float64 `json:"visibility"`
	WaveHeight    *float64 `json:"wave_height"`
}

// Hourly is an hourly forecast indexed by hour of the horizon.
// Missing values are NaN.
type Hourly struct {
	Time          []time.Time
	Temperature   []float64
	WindSpeed     []float64
	Precipitation []float64
	WaveHeight    []float64
}

// Reading is an immutable snapshot of one spot's forecast
type Reading struct {
	SpotID    uint
	FetchedAt time.Time
	Current   Current
	Hourly    Hourly
}

// Empty reports whether the reading stands in for a failed fetch
func (r Reading) Empty() bool {
	return r.FetchedAt.IsZero()
}

// Float returns the value or NaN when nil
func Float(v *float64) float64 {
	if v == nil {
		return math.NaN()
	}
	return *v
}

// NullableFloat returns nil for NaN or infinite values so they encode as JSON null
func NullableFloat(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
