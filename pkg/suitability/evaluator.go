package suitability

import (
	"fmt"
	"math"
)

// Label is the qualitative score of an activity for a time window
type Label string

const (
	LabelExcellent Label = "excellent"
	LabelGood      Label = "good"
	LabelPoor      Label = "poor"

	// LabelNoData is only produced for markers whose wind input is missing
	LabelNoData Label = "no_data"
)

// Marker colours
const (
	ColorGreen = "#22c55e"
	ColorAmber = "#f59e0b"
	ColorRed   = "#ef4444"
	ColorGray  = "#9ca3af"
)

// Inputs are the averaged values an activity is scored against.
// Wind is in m/s, wave height in metres and precipitation in mm.
type Inputs struct {
	Wind float64
	Wave float64
	Rain float64
}

// Evaluate applies the rule table for the given activity
func Evaluate(activity Activity, in Inputs) (Label, error) {
	switch activity {
	case ActivitySurf:
		return evaluateSurf(in), nil
	case ActivityKite:
		return evaluateKite(in), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownActivity, string(activity))
	}
}

func evaluateSurf(in Inputs) Label {
	switch {
	case in.Wave >= 1.2 && in.Wind < 8 && in.Rain < 2:
		return LabelExcellent
	case in.Wave >= 0.7 && in.Wind < 12 && in.Rain < 4:
		return LabelGood
	default:
		return LabelPoor
	}
}

func evaluateKite(in Inputs) Label {
	switch {
	case in.Wind >= 8 && in.Wind <= 14 && in.Rain < 2:
		return LabelExcellent
	case in.Wind >= 6 && in.Rain < 4:
		return LabelGood
	default:
		return LabelPoor
	}
}

// Assess scores a marker from averaged values that may be NaN.
// A NaN wind short-circuits to LabelNoData; NaN wave or rain count as zero.
func Assess(activity Activity, wind, wave, rain float64) (Label, error) {
	if math.IsNaN(wind) {
		return LabelNoData, nil
	}

	return Evaluate(activity, Inputs{
		Wind: wind,
		Wave: zeroIfNaN(wave),
		Rain: zeroIfNaN(rain),
	})
}

// Color returns the marker colour of a label
func Color(label Label) string {
	switch label {
	case LabelExcellent:
		return ColorGreen
	case LabelGood:
		return ColorAmber
	case LabelPoor:
		return ColorRed
	default:
		return ColorGray
	}
}

// Rating is the quick "right now" summary shown on the forecast page
type Rating string

const (
	RatingGood       Rating = "good"
	RatingAcceptable Rating = "acceptable"
	RatingCalm       Rating = "calm"
)

// RateNow rates current conditions from wave height and wind alone.
// Missing values count as zero.
func RateNow(wave, wind float64) Rating {
	wave = zeroIfNaN(wave)
	wind = zeroIfNaN(wind)

	switch {
	case wave >= 1.2 && wind < 8:
		return RatingGood
	case wave >= 0.7:
		return RatingAcceptable
	default:
		return RatingCalm
	}
}

func zeroIfNaN(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return v
}
