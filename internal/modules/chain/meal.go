// README: Meal-timing oracle; decides whether a meal falls before or after an activity.
package chain

import "strings"

// Need is the oracle's verdict for one activity window.
type Need string

const (
	LunchBefore  Need = "lunch_before"
	LunchAfter   Need = "lunch_after"
	DinnerBefore Need = "dinner_before"
	DinnerAfter  Need = "dinner_after"
	Snack        Need = "snack"
	SnackAfter   Need = "snack_after"
	NoNeed       Need = "none"
)

type window struct {
	start, end float64
}

var (
	lunchWindow  = window{12, 14.5}
	dinnerWindow = window{19, 21.5}
	snackWindow  = window{16, 18}
)

const endGrace = 0.5

func (w window) contains(h float64) bool {
	return h >= w.start && h <= w.end
}

func (w window) containsWithGrace(h float64) bool {
	return h >= w.start-endGrace && h <= w.end+endGrace
}

// MealNeed evaluates the windows in a fixed order: finishing inside a meal window
// outranks starting inside one.
func MealNeed(currentHour float64, durationMinutes int) Need {
	endHour := currentHour + float64(durationMinutes)/60

	switch {
	case lunchWindow.containsWithGrace(endHour):
		return LunchAfter
	case dinnerWindow.containsWithGrace(endHour):
		return DinnerAfter
	case lunchWindow.contains(currentHour):
		return LunchBefore
	case dinnerWindow.contains(currentHour):
		return DinnerBefore
	case snackWindow.contains(currentHour):
		return Snack
	case snackWindow.contains(endHour):
		return SnackAfter
	default:
		return NoNeed
	}
}

// Position reports "before", "after" or "" for needs without a side.
func (n Need) Position() string {
	switch {
	case strings.HasSuffix(string(n), "_before"):
		return "before"
	case strings.HasSuffix(string(n), "_after"):
		return "after"
	default:
		return ""
	}
}

// Subtype strips the position suffix: dinner_after -> dinner.
func (n Need) Subtype() string {
	s := strings.TrimSuffix(string(n), "_before")
	return strings.TrimSuffix(s, "_after")
}
