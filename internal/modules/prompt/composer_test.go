package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"travelbuddy/internal/modules/chain"
	"travelbuddy/internal/modules/clarify"
	"travelbuddy/internal/modules/intent"
	"travelbuddy/internal/modules/location"
	"travelbuddy/internal/types"
)

func TestTimeOfDay(t *testing.T) {
	tests := map[float64]string{
		0: "late_night", 5.5: "late_night", 5.99: "late_night",
		6: "early_morning", 7.5: "early_morning",
		8: "morning", 11.9: "morning",
		12: "lunch_time", 13.5: "lunch_time",
		14: "afternoon", 16.9: "afternoon",
		17: "evening", 20.5: "evening",
		21: "night", 23.9: "night",
	}
	for hour, want := range tests {
		assert.Equal(t, want, TimeOfDay(hour), "hour %v", hour)
	}
}

func TestCompose_IncludesContext(t *testing.T) {
	d := intent.Primary("watch a movie")
	out := Compose(Context{
		Query:       "watch a movie",
		City:        "Gurugram",
		Coordinates: &types.Point{Lat: 28.4595, Lng: 77.0266},
		Clock:       location.LocalTime{Hour: 19, Display: "19:00", Timezone: "Asia/Kolkata"},
		Weather:     "31°C, clear sky",
		Preferences: map[string]string{"vibe": "cozy", "budget": "mid"},
		Intent:      &d,
		Chain:       chain.Build(d.Label, 19),
		Answers:     clarify.Answers{"food_timing": "after"},
	})

	for _, want := range []string{
		"Location: Gurugram",
		"28.45950, 77.02660",
		"19:00 (evening)",
		"Weather: 31°C, clear sky",
		"food: dinner after the main activity",
		"food_timing: after",
		"USER REQUEST:\nwatch a movie",
	} {
		assert.Contains(t, out, want)
	}
	assert.Less(t, strings.Index(out, "- budget: mid"), strings.Index(out, "- vibe: cozy"))
}

func TestCompose_SearchBudgetIsHardSlice(t *testing.T) {
	search := map[string]any{"movie": strings.Repeat("x", 500)}
	out := Compose(Context{Query: "q", City: "Paris", Search: search, SearchBudget: 40})

	start := strings.Index(out, "SEARCH RESULTS:\n") + len("SEARCH RESULTS:\n")
	end := strings.Index(out, "\n\nUSER REQUEST:")
	assert.Len(t, out[start:end], 40)
}

func TestCompose_NoSearchBlockWhenEmpty(t *testing.T) {
	out := Compose(Context{Query: "q", City: "Paris", Search: map[string]any{}})
	assert.NotContains(t, out, "SEARCH RESULTS")
}

func TestCorrectiveAndStrict(t *testing.T) {
	out := Corrective("base", []string{"wrong_city", "too_few_stops"})
	assert.True(t, strings.HasPrefix(out, "base"))
	assert.Contains(t, out, "- wrong_city:")
	assert.Contains(t, out, "- too_few_stops:")

	assert.Contains(t, Strict("base"), "ONE valid JSON object")
}
