package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var defaultWrongCities = []string{"Gurugram", "Gurgaon"}

func stop(place string) map[string]any {
	return map[string]any{"time": "7:00 PM", "place": place, "activity": "Visit"}
}

func TestValidate_TooFewStops(t *testing.T) {
	v := NewValidator(defaultWrongCities)

	assert.Contains(t, v.Validate(map[string]any{"timeline": []any{}}, "Paris", "evening"), IssueTooFewStops)
	assert.NotContains(t, v.Validate(map[string]any{"timeline": []any{}}, "Paris", "late_night"), IssueTooFewStops)
	assert.Empty(t, v.Validate(map[string]any{"timeline": []any{stop("Le Comptoir"), stop("Café de Flore")}}, "Paris", "evening"))
	assert.Empty(t, v.Validate(map[string]any{"cards": []any{}}, "Paris", "evening"), "no timeline key, no stop check")
}

func TestValidate_WrongCity(t *testing.T) {
	v := NewValidator(defaultWrongCities)

	p := map[string]any{"greeting": "Welcome to Gurgaon!", "cards": []any{}}
	assert.Equal(t, []Issue{IssueWrongCity}, v.Validate(p, "Paris", "evening"))
	assert.Empty(t, v.Validate(p, "Gurugram", "evening"))
	assert.Empty(t, v.Validate(p, "gurgaon", "evening"))
}

func TestValidate_GenericNames(t *testing.T) {
	v := NewValidator(nil)

	timeline := map[string]any{"timeline": []any{stop("A Local Cafe"), stop("Olive Bar & Kitchen")}}
	assert.Equal(t, []Issue{IssueGenericNames}, v.Validate(timeline, "Delhi", "evening"))

	cards := map[string]any{"cards": []any{
		map[string]any{"title": "Dinner", "options": []any{map[string]any{"name": "Nearby Restaurant"}}},
	}}
	assert.Equal(t, []Issue{IssueGenericNames}, v.Validate(cards, "Delhi", "evening"))
}

func TestValidate_IssueOrder(t *testing.T) {
	v := NewValidator(defaultWrongCities)
	p := map[string]any{"timeline": []any{stop("local cafe in Gurugram")}}
	assert.Equal(t, []Issue{IssueWrongCity, IssueGenericNames, IssueTooFewStops}, v.Validate(p, "Paris", "night"))
}

func TestEnsureEnvelope(t *testing.T) {
	p := map[string]any{"greeting": "", "cards": []any{}}
	repaired := EnsureEnvelope(p, "hello", "bye")

	assert.Equal(t, []string{"greeting", "closing"}, repaired)
	assert.Equal(t, "hello", p["greeting"])
	assert.Equal(t, "bye", p["closing"])
	require.NoError(t, CheckEnvelope(p))

	ok := map[string]any{"greeting": "hi", "closing": "bye"}
	assert.Nil(t, EnsureEnvelope(ok, "x", "y"))
	assert.Equal(t, "hi", ok["greeting"])
}

func TestCheckEnvelope_WrongType(t *testing.T) {
	assert.Error(t, CheckEnvelope(map[string]any{"greeting": 1, "closing": "bye"}))
}

func TestFallback(t *testing.T) {
	p := Fallback("sushi", "Paris")
	require.NoError(t, CheckEnvelope(p))
	assert.Equal(t, "itinerary", p["type"])

	cards := objects(p["cards"])
	require.Len(t, cards, 1)
	opts := objects(cards[0]["options"])
	require.Len(t, opts, 1)
	assert.Equal(t, "sushi in Paris", opts[0]["google_query"])
	assert.Equal(t, "Search: sushi", opts[0]["name"])
}

func TestCannedPayloadsCarryEnvelope(t *testing.T) {
	for name, p := range map[string]map[string]any{
		"options":   CannedOptions("cafe", "Paris"),
		"movies":    CannedMovies("Paris"),
		"itinerary": CannedItinerary("Paris"),
		"empty":     EmptyQuery(),
		"error":     InternalError("boom"),
	} {
		assert.NoError(t, CheckEnvelope(p), name)
	}

	v := NewValidator(defaultWrongCities)
	assert.Empty(t, v.Validate(CannedItinerary("Paris"), "Paris", "morning"))
}

func TestCannedOptions_DefaultCategory(t *testing.T) {
	p := CannedOptions("  ", "Paris")
	assert.Equal(t, "things to do", p["category"])
	assert.Len(t, p["cards"], 3)
}
