// README: Activity-chain builder; primary intent plus anticipated food, late-night and dessert steps.
package chain

import (
	"fmt"
	"strings"

	"travelbuddy/internal/modules/intent"
)

type Priority string

const (
	Primary     Priority = "primary"
	Anticipated Priority = "anticipated"
	Bonus       Priority = "bonus"
)

const (
	TypeFood          = "food"
	TypeLateNightFood = "late_night_food"
	TypeDessert       = "dessert"

	lateNightFromHour = 19
)

// Item is one step of the activity chain.
type Item struct {
	Type     string   `json:"type"`
	Priority Priority `json:"priority"`
	Subtype  string   `json:"subtype,omitempty"`
	Position string   `json:"position,omitempty"`
	Reason   string   `json:"reason,omitempty"`
}

// Build returns the chain for a label at the given local hour. Item 0 is always the
// single primary item.
func Build(label intent.Label, currentHour float64) []Item {
	items := []Item{{Type: string(label), Priority: Primary}}

	duration := 120
	if def, ok := intent.Lookup(label); ok {
		duration = def.DurationMinutes
	}

	need := MealNeed(currentHour, duration)
	if need != NoNeed {
		items = append(items, Item{
			Type:     TypeFood,
			Priority: Anticipated,
			Subtype:  need.Subtype(),
			Position: need.Position(),
			Reason:   mealReason(need),
		})
	}

	switch label {
	case intent.Movie:
		if currentHour >= lateNightFromHour {
			items = append(items, Item{
				Type:     TypeLateNightFood,
				Priority: Anticipated,
				Reason:   "The show ends late; places open after midnight help",
			})
		}
	case intent.Date:
		items = append(items, Item{
			Type:     TypeDessert,
			Priority: Bonus,
			Reason:   "Something sweet to end the date",
		})
	}

	return items
}

func mealReason(n Need) string {
	switch n.Position() {
	case "before":
		return fmt.Sprintf("It's %s time; eat before you start", n.Subtype())
	case "after":
		return fmt.Sprintf("You'll finish around %s time", n.Subtype())
	default:
		return "A quick bite fits in this slot"
	}
}

// SearchQuery renders a web-search phrase for this step in the given city.
func (it Item) SearchQuery(city string) string {
	var subject string
	switch it.Type {
	case string(intent.Movie):
		subject = "movie theaters showtimes today"
	case TypeFood:
		switch it.Subtype {
		case "lunch":
			subject = "best lunch restaurants"
		case "dinner":
			subject = "best dinner restaurants"
		default:
			subject = "cafes and snacks"
			if it.Priority == Primary {
				subject = stepSubjects[TypeFood]
			}
		}
	case TypeLateNightFood:
		subject = "late night food open now"
	case TypeDessert:
		subject = "dessert places"
	default:
		subject = stepSubject(it.Type)
	}
	return fmt.Sprintf("%s in %s", subject, city)
}

var stepSubjects = map[string]string{
	"activity":    "fun things to do",
	"cafe":        "cozy cafes",
	TypeFood:      "best restaurants",
	"sightseeing": "top sightseeing spots",
	"bar":         "bars and pubs",
}

// stepSubject searches for the first catalog step of an intent label, so "bored"
// looks for activities rather than "bored places".
func stepSubject(typ string) string {
	step := typ
	if def, ok := intent.Lookup(intent.Label(typ)); ok && len(def.Chain) > 0 {
		step = def.Chain[0]
	}
	if s, ok := stepSubjects[step]; ok {
		return s
	}
	return "best " + strings.ReplaceAll(step, "_", " ") + " places"
}
