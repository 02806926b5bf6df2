// README: Static intent catalog; declaration order is the tie-break order for detection.
package intent

import "strings"

var catalog = []Definition{
	{
		Label:           Movie,
		Keywords:        []string{"movie", "film", "cinema", "watch", "theatre", "theater", "showtime"},
		Emoji:           "🎬",
		Chain:           []string{"movie", "food"},
		DurationMinutes: 180,
	},
	{
		Label:           Food,
		Keywords:        []string{"hungry", "food", "eat", "restaurant", "dinner", "lunch", "breakfast", "brunch", "cafe"},
		Emoji:           "🍽️",
		Chain:           []string{"food", "dessert"},
		DurationMinutes: 90,
	},
	{
		Label:           Bored,
		Keywords:        []string{"bored", "nothing to do", "kill time", "something fun", "entertain"},
		Emoji:           "🥱",
		Chain:           []string{"activity", "food"},
		DurationMinutes: 120,
	},
	{
		Label:           Date,
		Keywords:        []string{"date", "romantic", "girlfriend", "boyfriend", "anniversary", "partner"},
		Emoji:           "💕",
		Chain:           []string{"food", "activity", "dessert"},
		DurationMinutes: 180,
	},
	{
		Label:           Explore,
		Keywords:        []string{"explore", "sightseeing", "tourist", "visit", "discover", "landmark", "museum"},
		Emoji:           "🧭",
		Chain:           []string{"sightseeing", "food"},
		DurationMinutes: 180,
	},
	{
		Label:           Chill,
		Keywords:        []string{"chill", "relax", "unwind", "calm", "peaceful", "lazy"},
		Emoji:           "😌",
		Chain:           []string{"cafe", "park"},
		DurationMinutes: 120,
	},
	{
		Label:           Adventure,
		Keywords:        []string{"adventure", "hike", "trek", "thrill", "outdoor", "climb", "kayak"},
		Emoji:           "🧗",
		Chain:           []string{"adventure", "food"},
		DurationMinutes: 240,
	},
	{
		Label:           Shopping,
		Keywords:        []string{"shop", "mall", "buy", "market", "boutique"},
		Emoji:           "🛍️",
		Chain:           []string{"shopping", "food"},
		DurationMinutes: 150,
	},
	{
		Label:           Nightlife,
		Keywords:        []string{"party", "club", "bar", "pub", "drinks", "nightlife", "dance"},
		Emoji:           "🍸",
		Chain:           []string{"bar", "late_night_food"},
		DurationMinutes: 240,
	},
}

// Catalog returns a copy of the static definitions in declaration order.
func Catalog() []Definition {
	out := make([]Definition, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup finds the definition for a label.
func Lookup(label Label) (Definition, bool) {
	for _, def := range catalog {
		if def.Label == label {
			return def, true
		}
	}
	return Definition{}, false
}

// Parse maps a client-supplied string onto a known label.
func Parse(raw string) (Label, bool) {
	l := Label(strings.ToLower(strings.TrimSpace(raw)))
	_, ok := Lookup(l)
	return l, ok
}
