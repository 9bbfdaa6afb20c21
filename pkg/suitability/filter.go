package suitability

// Scoreable is anything exposing the activities it supports
type Scoreable interface {
	Activities() []Activity
}

// FilterSpots keeps the spots supporting at least one selected activity.
// An empty selection returns spots unchanged.
func FilterSpots[S Scoreable](spots []S, selected []Activity) []S {
	if len(selected) == 0 {
		return spots
	}

	out := make([]S, 0, len(spots))
	for _, spot := range spots {
		if intersects(spot.Activities(), selected) {
			out = append(out, spot)
		}
	}
	return out
}

// PickActivity chooses the one activity a spot is scored against.
// The single selected activity wins when supported, then the first
// supported selection, then the spot's first supported activity.
// ok is false when the spot supports nothing.
func PickActivity(selected, supported []Activity) (Activity, bool) {
	if len(selected) == 1 && contains(supported, selected[0]) {
		return selected[0], true
	}

	for _, a := range selected {
		if contains(supported, a) {
			return a, true
		}
	}

	if len(supported) > 0 {
		return supported[0], true
	}
	return "", false
}

func intersects(a, b []Activity) bool {
	for _, x := range a {
		if contains(b, x) {
			return true
		}
	}
	return false
}

func contains(list []Activity, a Activity) bool {
	for _, x := range list {
		if x == a {
			return true
		}
	}
	return false
}
