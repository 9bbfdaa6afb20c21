package suitability

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownActivity is returned when a value is not one of the supported activities
var ErrUnknownActivity = errors.New("unknown activity")

// Activity is a water sport a spot can be scored for
type Activity string

const (
	ActivitySurf Activity = "surf"
	ActivityKite Activity = "kite"
)

// Activities lists every supported activity in display order
var Activities = []Activity{ActivitySurf, ActivityKite}

// ParseActivity converts a case-insensitive name into an Activity
func ParseActivity(s string) (Activity, error) {
	switch Activity(strings.ToLower(strings.TrimSpace(s))) {
	case ActivitySurf:
		return ActivitySurf, nil
	case ActivityKite:
		return ActivityKite, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownActivity, s)
	}
}

// ParseActivities parses a list of names, accepting comma separated entries.
// Unknown names are returned as an error; duplicates are dropped.
func ParseActivities(values []string) ([]Activity, error) {
	out := make([]Activity, 0, len(values))
	seen := make(map[Activity]bool)

	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			if strings.TrimSpace(part) == "" {
				continue
			}

			a, err := ParseActivity(part)
			if err != nil {
				return nil, err
			}
			if seen[a] {
				continue
			}
			seen[a] = true
			out = append(out, a)
		}
	}

	return out, nil
}

// KnownActivities keeps the names that parse, in order, and silently drops the rest.
// Spot sport tables may carry sports this service does not score.
func KnownActivities(names []string) []Activity {
	out := make([]Activity, 0, len(names))
	for _, name := range names {
		if a, err := ParseActivity(name); err == nil {
			out = append(out, a)
		}
	}
	return out
}
