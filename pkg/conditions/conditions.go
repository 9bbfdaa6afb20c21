// Package conditions turns spots and their readings into scored map markers.
package conditions

import (
	"github.com/shadowbane/nautic/pkg/models"
	"github.com/shadowbane/nautic/pkg/suitability"
)

// Means are the averaged inputs of one spot for one day. NaN means unknown.
type Means struct {
	Temperature   float64
	WindSpeed     float64
	Precipitation float64
	WaveHeight    float64
}

// FromReading averages the hourly series of a reading for day
func FromReading(r models.Reading, day int) Means {
	return Means{
		Temperature:   suitability.DayMean(r.Hourly.Temperature, day),
		WindSpeed:     suitability.DayMean(r.Hourly.WindSpeed, day),
		Precipitation: suitability.DayMean(r.Hourly.Precipitation, day),
		WaveHeight:    suitability.DayMean(r.Hourly.WaveHeight, day),
	}
}

// FromAverage converts stored per-day averages, mapping nulls to NaN
func FromAverage(avg models.DayAverage) Means {
	return Means{
		Temperature:   models.Float(avg.Temperature),
		WindSpeed:     models.Float(avg.WindSpeed),
		Precipitation: models.Float(avg.Precipitation),
		WaveHeight:    models.Float(avg.WaveHeight),
	}
}

// Averages is the wire shape of Means
type Averages struct {
	Temperature   *float64 `json:"temperature_2m"`
	WindSpeed     *float64 `json:"wind_speed_10m"`
	Precipitation *float64 `json:"precipitation"`
	WaveHeight    *float64 `json:"wave_height"`
}

// Averages converts NaN fields to nil
func (m Means) Averages() Averages {
	return Averages{
		Temperature:   models.NullableFloat(m.Temperature),
		WindSpeed:     models.NullableFloat(m.WindSpeed),
		Precipitation: models.NullableFloat(m.Precipitation),
		WaveHeight:    models.NullableFloat(m.WaveHeight),
	}
}

// Score picks the activity for a spot and labels it. Spots without a
// scoreable activity get LabelNoData.
func Score(spot models.Spot, selected []suitability.Activity, m Means) (suitability.Activity, suitability.Label) {
	activity, ok := suitability.PickActivity(selected, spot.Activities())
	if !ok {
		return "", suitability.LabelNoData
	}

	label, err := suitability.Assess(activity, m.WindSpeed, m.WaveHeight, m.Precipitation)
	if err != nil {
		return activity, suitability.LabelNoData
	}
	return activity, label
}

// Marker is one scored spot on the map
type Marker struct {
	ID       uint                 `json:"id"`
	Name     string               `json:"name"`
	Lat      float64              `json:"lat"`
	Lon      float64              `json:"lon"`
	Sports   []string             `json:"sports"`
	Activity suitability.Activity `json:"activity,omitempty"`
	Label    suitability.Label    `json:"label"`
	Color    string               `json:"color"`
	Averages Averages             `json:"averages"`
}

// NewMarker scores one spot
func NewMarker(spot models.Spot, selected []suitability.Activity, m Means) Marker {
	activity, label := Score(spot, selected, m)
	return Marker{
		ID:       spot.ID,
		Name:     spot.Name,
		Lat:      spot.Lat,
		Lon:      spot.Lon,
		Sports:   spot.SportNames(),
		Activity: activity,
		Label:    label,
		Color:    suitability.Color(label),
		Averages: m.Averages(),
	}
}

// BuildMarkers filters spots by the selection and scores each visible one
// with the means returned by meansOf
func BuildMarkers(spots []models.Spot, selected []suitability.Activity, meansOf func(models.Spot) Means) []Marker {
	visible := suitability.FilterSpots(spots, selected)

	markers := make([]Marker, 0, len(visible))
	for _, spot := range visible {
		markers = append(markers, NewMarker(spot, selected, meansOf(spot)))
	}
	return markers
}
