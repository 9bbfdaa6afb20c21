package suitability

import "math"

// HoursPerDay is the width of one day slice in an hourly series
const HoursPerDay = 24

// MaxForecastDays bounds the day index accepted by the forecast horizon
const MaxForecastDays = 7

// DaySlice returns hours [24d, 24d+24) of series, clipped to its length.
// Out of range days give an empty slice.
func DaySlice(series []float64, day int) []float64 {
	if day < 0 {
		return nil
	}

	start := day * HoursPerDay
	if start >= len(series) {
		return nil
	}

	end := start + HoursPerDay
	if end > len(series) {
		end = len(series)
	}

	return series[start:end]
}

// Mean is the arithmetic mean of values. A NaN element poisons the result
// and an empty input yields NaN.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}

	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// DayMean averages the day slice of an hourly series
func DayMean(series []float64, day int) float64 {
	return Mean(DaySlice(series, day))
}

// Summary holds min, average and max of a series
type Summary struct {
	Min float64
	Avg float64
	Max float64
}

// Stats summarises values. Every field is NaN for an empty input.
func Stats(values []float64) Summary {
	if len(values) == 0 {
		nan := math.NaN()
		return Summary{Min: nan, Avg: nan, Max: nan}
	}

	s := Summary{Min: math.Inf(1), Max: math.Inf(-1), Avg: Mean(values)}
	for _, v := range values {
		s.Min = math.Min(s.Min, v)
		s.Max = math.Max(s.Max, v)
	}
	return s
}
