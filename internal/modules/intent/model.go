// README: Intent labels (closed enumeration) and the detected-intent value.
package intent

// Label is one of the fixed intent categories.
type Label string

const (
	Movie     Label = "movie"
	Food      Label = "food"
	Bored     Label = "bored"
	Date      Label = "date"
	Explore   Label = "explore"
	Chill     Label = "chill"
	Adventure Label = "adventure"
	Shopping  Label = "shopping"
	Nightlife Label = "nightlife"
)

// Definition is a static catalog entry.
type Definition struct {
	Label           Label
	Keywords        []string
	Emoji           string
	Chain           []string
	DurationMinutes int
}

// Detected is one classification result for a piece of user text.
type Detected struct {
	Label           Label    `json:"intent"`
	Confidence      float64  `json:"confidence"`
	Emoji           string   `json:"emoji"`
	Chain           []string `json:"chain"`
	DurationMinutes int      `json:"duration_minutes"`
}
