package openmeteo

import (
	"math"
	"time"

	"github.com/shadowbane/nautic/pkg/models"
)

// hourLayout is the local-time format Open-Meteo uses with timezone=auto
const hourLayout = "2006-01-02T15:04"

// ToReading merges a forecast and an optional marine response into a reading.
// A nil marine response leaves wave height absent.
func ToReading(spotID uint, f *ForecastResponse, m *MarineResponse, fetchedAt time.Time, loc *time.Location) models.Reading {
	if tz, err := time.LoadLocation(f.Timezone); err == nil && f.Timezone != "" {
		loc = tz
	}

	r := models.Reading{
		SpotID:    spotID,
		FetchedAt: fetchedAt,
		Current: models.Current{
			Temperature:   f.Current.Temperature,
			WindSpeed:     f.Current.WindSpeed,
			Precipitation: f.Current.Precipitation,
			CloudCover:    f.Current.CloudCover,
			Humidity:      f.Current.Humidity,
			PressureMSL:   f.Current.PressureMSL,
			Visibility:    f.Current.Visibility,
		},
		Hourly: models.Hourly{
			Time:          parseTimes(f.Hourly.Time, loc),
			Temperature:   floats(f.Hourly.Temperature),
			WindSpeed:     floats(f.Hourly.WindSpeed),
			Precipitation: floats(f.Hourly.Precipitation),
		},
	}

	if m != nil {
		r.Hourly.WaveHeight = floats(m.Hourly.WaveHeight)
		if i := currentHourIndex(m.Hourly.Time, f.Current.Time); i < len(m.Hourly.WaveHeight) {
			r.Current.WaveHeight = m.Hourly.WaveHeight[i]
		}
	}

	return r
}

// currentHourIndex finds the hourly slot of the current observation, or 0
func currentHourIndex(times []string, current string) int {
	if len(current) < len(hourLayout) {
		return 0
	}
	hour := current[:len("2006-01-02T15")] + ":00"
	for i, t := range times {
		if t == hour {
			return i
		}
	}
	return 0
}

func floats(values []*float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		if v == nil {
			out[i] = math.NaN()
			continue
		}
		out[i] = *v
	}
	return out
}

func parseTimes(values []string, loc *time.Location) []time.Time {
	if loc == nil {
		loc = time.UTC
	}

	out := make([]time.Time, 0, len(values))
	for _, v := range values {
		t, err := time.ParseInLocation(hourLayout, v, loc)
		if err != nil {
			// keep indexes aligned with the value series
			t = time.Time{}
		}
		out = append(out, t)
	}
	return out
}
