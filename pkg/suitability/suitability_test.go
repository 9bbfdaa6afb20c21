package suitability

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate_Surf(t *testing.T) {
	tests := []struct {
		name string
		in   Inputs
		want Label
	}{
		{"big clean swell", Inputs{Wind: 5, Wave: 1.5, Rain: 0}, LabelExcellent},
		{"threshold wave", Inputs{Wind: 7.9, Wave: 1.2, Rain: 1.9}, LabelExcellent},
		{"windy but surfable", Inputs{Wind: 10, Wave: 1.5, Rain: 0}, LabelGood},
		{"small swell", Inputs{Wind: 3, Wave: 0.7, Rain: 3.9}, LabelGood},
		{"flat", Inputs{Wind: 3, Wave: 0.5, Rain: 0}, LabelPoor},
		{"blown out", Inputs{Wind: 12, Wave: 2, Rain: 0}, LabelPoor},
		{"storm rain", Inputs{Wind: 3, Wave: 2, Rain: 4}, LabelPoor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Evaluate(ActivitySurf, tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluate_Kite(t *testing.T) {
	tests := []struct {
		name string
		in   Inputs
		want Label
	}{
		{"lower bound", Inputs{Wind: 8, Rain: 0}, LabelExcellent},
		{"upper bound", Inputs{Wind: 14, Rain: 1.9}, LabelExcellent},
		{"too strong", Inputs{Wind: 14.1, Rain: 0}, LabelGood},
		{"light wind", Inputs{Wind: 6, Rain: 3}, LabelGood},
		{"rainy session", Inputs{Wind: 10, Rain: 2}, LabelGood},
		{"no wind", Inputs{Wind: 5.9, Rain: 0}, LabelPoor},
		{"downpour", Inputs{Wind: 10, Rain: 4}, LabelPoor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Evaluate(ActivityKite, tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluate_ExcellentRegions(t *testing.T) {
	for wave := 1.2; wave < 4; wave += 0.35 {
		for wind := 0.0; wind < 8; wind += 0.5 {
			for rain := 0.0; rain < 2; rain += 0.4 {
				got, err := Evaluate(ActivitySurf, Inputs{Wind: wind, Wave: wave, Rain: rain})
				require.NoError(t, err)
				assert.Equal(t, LabelExcellent, got, "wave=%v wind=%v rain=%v", wave, wind, rain)
			}
		}
	}

	for wind := 8.0; wind <= 14; wind += 0.5 {
		for rain := 0.0; rain < 2; rain += 0.4 {
			got, err := Evaluate(ActivityKite, Inputs{Wind: wind, Rain: rain})
			require.NoError(t, err)
			assert.Equal(t, LabelExcellent, got, "wind=%v rain=%v", wind, rain)
		}
	}
}

func TestEvaluate_UnknownActivity(t *testing.T) {
	_, err := Evaluate(Activity("windsurf"), Inputs{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownActivity)
}

func TestAssess(t *testing.T) {
	nan := math.NaN()

	label, err := Assess(ActivitySurf, nan, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, LabelNoData, label)
	assert.Equal(t, ColorGray, Color(label))

	// missing wave counts as flat
	label, err = Assess(ActivitySurf, 4, nan, nan)
	require.NoError(t, err)
	assert.Equal(t, LabelPoor, label)

	label, err = Assess(ActivityKite, 10, nan, nan)
	require.NoError(t, err)
	assert.Equal(t, LabelExcellent, label)
}

func TestColor(t *testing.T) {
	assert.Equal(t, ColorGreen, Color(LabelExcellent))
	assert.Equal(t, ColorAmber, Color(LabelGood))
	assert.Equal(t, ColorRed, Color(LabelPoor))
	assert.Equal(t, ColorGray, Color(LabelNoData))
}

func TestRateNow(t *testing.T) {
	assert.Equal(t, RatingGood, RateNow(1.3, 5))
	assert.Equal(t, RatingAcceptable, RateNow(1.3, 9))
	assert.Equal(t, RatingAcceptable, RateNow(0.7, 20))
	assert.Equal(t, RatingCalm, RateNow(0.2, 2))
	assert.Equal(t, RatingCalm, RateNow(math.NaN(), math.NaN()))
}

func TestDayMean(t *testing.T) {
	series := make([]float64, 48)
	for i := range series {
		if i < 24 {
			series[i] = 1
		} else {
			series[i] = 3
		}
	}

	assert.InDelta(t, 1, DayMean(series, 0), 1e-9)
	assert.InDelta(t, 3, DayMean(series, 1), 1e-9)
	assert.True(t, math.IsNaN(DayMean(series, 2)), "past the horizon is NaN")
	assert.True(t, math.IsNaN(DayMean(series, -1)))
	assert.True(t, math.IsNaN(DayMean(nil, 0)), "empty slice must not average to zero")
}

func TestDayMean_PartialDay(t *testing.T) {
	series := []float64{2, 4, 6}
	assert.InDelta(t, 4, DayMean(series, 0), 1e-9)
}

func TestDayMean_NaNPoisons(t *testing.T) {
	series := []float64{1, math.NaN(), 3}
	assert.True(t, math.IsNaN(DayMean(series, 0)))
}

func TestStats(t *testing.T) {
	s := Stats([]float64{0.5, 1.5, 1})
	assert.InDelta(t, 0.5, s.Min, 1e-9)
	assert.InDelta(t, 1, s.Avg, 1e-9)
	assert.InDelta(t, 1.5, s.Max, 1e-9)

	empty := Stats(nil)
	assert.True(t, math.IsNaN(empty.Min))
	assert.True(t, math.IsNaN(empty.Avg))
	assert.True(t, math.IsNaN(empty.Max))
}

type testSpot struct {
	name   string
	sports []Activity
}

func (s testSpot) Activities() []Activity { return s.sports }

func TestFilterSpots(t *testing.T) {
	spots := []testSpot{
		{"San Bernardo", []Activity{ActivityKite}},
		{"Pinamar", []Activity{ActivitySurf, ActivityKite}},
		{"Miramar", []Activity{ActivitySurf}},
	}

	assert.Equal(t, spots, FilterSpots(spots, nil), "empty selection is the identity")

	surf := FilterSpots(spots, []Activity{ActivitySurf})
	require.Len(t, surf, 2)
	assert.Equal(t, "Pinamar", surf[0].name)
	assert.Equal(t, "Miramar", surf[1].name)

	kite := FilterSpots(spots, []Activity{ActivityKite})
	require.Len(t, kite, 2)
	assert.Equal(t, "San Bernardo", kite[0].name)

	both := FilterSpots(spots, []Activity{ActivitySurf, ActivityKite})
	assert.Len(t, both, 3)
}

func TestPickActivity(t *testing.T) {
	got, ok := PickActivity([]Activity{ActivityKite}, []Activity{ActivitySurf, ActivityKite})
	require.True(t, ok)
	assert.Equal(t, ActivityKite, got)

	got, ok = PickActivity(nil, []Activity{ActivitySurf})
	require.True(t, ok)
	assert.Equal(t, ActivitySurf, got)

	got, ok = PickActivity([]Activity{ActivitySurf, ActivityKite}, []Activity{ActivitySurf, ActivityKite})
	require.True(t, ok)
	assert.Equal(t, ActivitySurf, got, "first selected and supported")

	got, ok = PickActivity([]Activity{ActivityKite, ActivitySurf}, []Activity{ActivitySurf, ActivityKite})
	require.True(t, ok)
	assert.Equal(t, ActivityKite, got)

	got, ok = PickActivity([]Activity{ActivitySurf, ActivityKite}, []Activity{ActivityKite})
	require.True(t, ok)
	assert.Equal(t, ActivityKite, got)

	got, ok = PickActivity([]Activity{ActivityKite}, []Activity{ActivitySurf})
	require.True(t, ok)
	assert.Equal(t, ActivitySurf, got, "falls back to the spot's first activity")

	_, ok = PickActivity([]Activity{ActivityKite}, nil)
	assert.False(t, ok)
}

func TestParseActivities(t *testing.T) {
	got, err := ParseActivities([]string{"Surf,kite", " kite "})
	require.NoError(t, err)
	assert.Equal(t, []Activity{ActivitySurf, ActivityKite}, got)

	got, err = ParseActivities(nil)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = ParseActivities([]string{"sup"})
	assert.ErrorIs(t, err, ErrUnknownActivity)

	assert.Equal(t, []Activity{ActivityKite}, KnownActivities([]string{"windsurf", "KITE"}))
}
