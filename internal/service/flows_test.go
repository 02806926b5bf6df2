package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelbuddy/internal/maps"
	"travelbuddy/internal/modules/clarify"
	"travelbuddy/internal/search"
)

const dayPlan = `{
  "greeting": "Morning!",
  "type": "day_plan",
  "timeline": [
    {"time": "9:30 AM", "place": "Amber Fort", "google_query": "Amber Fort Jaipur"},
    {"time": "1:00 PM", "place": "Laxmi Mishthan Bhandar", "google_query": "LMB Johari Bazaar Jaipur"}
  ],
  "closing": "Have fun!"
}`

func TestPlan_TripUsesDestination(t *testing.T) {
	gen := &scriptedGenerator{replies: []string{dayPlan}}
	a := newTestAssistant(gen, nil)

	got, err := a.Plan(context.Background(), PlanRequest{
		PlanType: "trip",
		Traveler: map[string]any{"budget": "mid"},
		Context:  RequestContext{Destination: "Jaipur", Location: "Gurugram"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Jaipur", got["location"])
	assert.Equal(t, "TRIP", got["plan_type"])
	p := gen.requests[0].Prompt
	assert.Contains(t, p, "Plan a day trip exploring Jaipur")
	assert.Contains(t, p, "- budget: mid")
	assert.Contains(t, gen.requests[0].System, `"day_plan"`)
}

func TestPlan_TripPlaceholderDestination(t *testing.T) {
	gen := &scriptedGenerator{replies: []string{dayPlan}}
	got, err := newTestAssistant(gen, nil).Plan(context.Background(), PlanRequest{
		PlanType: "TRIP",
		Context:  RequestContext{Destination: "Location Found"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Gurugram", got["location"])
}

func TestPlan_TomorrowShiftsClock(t *testing.T) {
	gen := &scriptedGenerator{replies: []string{dayPlan}}
	_, err := newTestAssistant(gen, nil).Plan(context.Background(), PlanRequest{
		PlanType: "TOMORROW",
		Context:  RequestContext{LocalHour: hourPtr(22)},
	})
	require.NoError(t, err)
	assert.Contains(t, gen.requests[0].Prompt, "09:00 (morning)")
	assert.Contains(t, gen.requests[0].Prompt, "Sunday, March 15, 2026")
}

func TestPlan_BadType(t *testing.T) {
	_, err := newTestAssistant(nil, nil).Plan(context.Background(), PlanRequest{PlanType: "YESTERDAY"})
	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestClarify_AsksThenPlans(t *testing.T) {
	gen := &scriptedGenerator{replies: []string{movieCards}}
	fs := &fakeSearch{results: []search.Result{{Title: "t", URL: "u", Content: "c"}}}
	a := newTestAssistant(gen, func(d *Deps) { d.Search = fs })
	ctx := context.Background()

	got, err := a.Clarify(ctx, ClarifyRequest{Intent: "movie", Answers: clarify.Answers{"food_timing": "none"}})
	require.NoError(t, err)
	assert.Equal(t, "clarification", got["type"])
	q, ok := got["question"].(*clarify.Question)
	require.True(t, ok)
	assert.Equal(t, "movie_pref", q.ID)
	assert.Equal(t, clarify.Progress{Answered: 1, Total: 2}, got["progress"])
	assert.Zero(t, gen.calls())

	got, err = a.Clarify(ctx, ClarifyRequest{
		Intent:        "movie",
		OriginalQuery: "movie tonight",
		Answers:       clarify.Answers{"food_timing": "none", "movie_pref": []any{"comedy"}},
		Context:       RequestContext{LocalHour: hourPtr(15)},
	})
	require.NoError(t, err)
	assert.Equal(t, "Enjoy the show!", got["closing"])
	assert.Equal(t, "movie", got["intent"])
	require.Equal(t, 1, gen.calls())
	assert.Contains(t, gen.requests[0].Prompt, "comedy movie")
	assert.Contains(t, fs.queries, "comedy movie movie theaters showtimes today in Gurugram")
}

func TestClarify_FoodKeepsPrimaryAndMealSearches(t *testing.T) {
	gen := &scriptedGenerator{replies: []string{movieCards}}
	fs := &fakeSearch{echo: true}
	a := newTestAssistant(gen, func(d *Deps) { d.Search = fs })

	_, err := a.Clarify(context.Background(), ClarifyRequest{
		Intent:  "food",
		Answers: clarify.Answers{"cuisine": []any{"italian"}, "dining_style": "dine_in", "budget": "mid"},
		Context: RequestContext{LocalHour: hourPtr(11)},
	})
	require.NoError(t, err)

	primary := "italian dine in affordable best restaurants in Gurugram"
	lunch := "best lunch restaurants in Gurugram"
	assert.ElementsMatch(t, []string{primary, lunch}, fs.queries)

	require.GreaterOrEqual(t, gen.calls(), 1)
	p := gen.requests[0].Prompt
	assert.Contains(t, p, "result for "+primary)
	assert.Contains(t, p, "result for "+lunch)
	assert.Contains(t, p, `"food_lunch"`)
}

func TestClarify_InvalidAnswersAreAskedAgain(t *testing.T) {
	got, err := newTestAssistant(nil, nil).Clarify(context.Background(), ClarifyRequest{
		Intent:  "movie",
		Answers: clarify.Answers{"food_timing": "maybe"},
	})
	require.NoError(t, err)
	q := got["question"].(*clarify.Question)
	assert.Equal(t, "food_timing", q.ID)
}

func TestClarify_UnknownIntent(t *testing.T) {
	a := newTestAssistant(nil, nil)

	_, err := a.Clarify(context.Background(), ClarifyRequest{Intent: "karaoke"})
	assert.ErrorIs(t, err, ErrBadRequest)

	got, err := a.Clarify(context.Background(), ClarifyRequest{Intent: "", OriginalQuery: "I'm so hungry"})
	require.NoError(t, err)
	assert.Equal(t, "food", got["intent"])
}

func TestOptions_CannedWithoutCollaborators(t *testing.T) {
	got, err := newTestAssistant(nil, nil).Options(context.Background(), OptionsRequest{
		Category: "cafe",
		Context:  RequestContext{Location: "Pune"},
	})
	require.NoError(t, err)
	assert.Equal(t, true, got["canned"])
	assert.Equal(t, "Pune", got["location"])

	_, err = newTestAssistant(nil, nil).Options(context.Background(), OptionsRequest{})
	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestOptions_PlacesWithoutGenerator(t *testing.T) {
	fp := &fakePlaces{places: []maps.Place{{Name: "Blue Tokai", Address: "Sector 29", Rating: 4.6, DistanceKm: 1.2}}}
	got, err := newTestAssistant(nil, func(d *Deps) { d.Places = fp }).Options(context.Background(), OptionsRequest{
		Category: "cafe",
		Context:  RequestContext{Coordinates: gurugramPoint()},
	})
	require.NoError(t, err)

	cards := got["cards"].([]any)
	require.Len(t, cards, 1)
	assert.Equal(t, "Blue Tokai", cards[0].(map[string]any)["title"])
	assert.Equal(t, "1.2 km", cards[0].(map[string]any)["distance"])
	assert.Nil(t, got["canned"])
}

func TestWizardMovies_Canned(t *testing.T) {
	got, err := newTestAssistant(nil, nil).WizardMovies(context.Background(), WizardMoviesRequest{Context: RequestContext{Location: "Pune"}})
	require.NoError(t, err)
	assert.Equal(t, "wizard", got["type"])
	assert.Equal(t, true, got["canned"])
}

func TestWizardMovies_FromCollaborators(t *testing.T) {
	fp := &fakePlaces{places: []maps.Place{{Name: "PVR Ambience", Address: "NH48", Rating: 4.4}}}
	got, err := newTestAssistant(nil, func(d *Deps) { d.Places = fp }).WizardMovies(context.Background(), WizardMoviesRequest{
		Context: RequestContext{Coordinates: gurugramPoint()},
	})
	require.NoError(t, err)
	steps := got["steps"].([]any)
	require.Len(t, steps, 2)
	first := steps[0].(map[string]any)["choices"].([]any)
	assert.Equal(t, "PVR Ambience", first[0].(map[string]any)["name"])
}

func TestWizardItinerary_FillsTravelTimes(t *testing.T) {
	a := newTestAssistant(nil, func(d *Deps) { d.Routes = fakeRoutes{} })
	got, err := a.WizardItinerary(context.Background(), WizardItineraryRequest{
		Selections: []Selection{
			{Name: "PVR Ambience", Time: "7:00 PM", Activity: "Movie"},
			{Name: "Farzi Cafe", Time: "10:00 PM", Activity: "Dinner"},
		},
	})
	require.NoError(t, err)

	timeline := got["timeline"].([]any)
	require.Len(t, timeline, 2)
	assert.Equal(t, "14 mins by car (5.2 km)", timeline[0].(map[string]any)["travel_time_to_next"])
	assert.Nil(t, timeline[1].(map[string]any)["travel_time_to_next"])
	assert.NotEmpty(t, got["greeting"])
}

func TestItinerary_CannedWhenGenerationDegrades(t *testing.T) {
	a := newTestAssistant(nil, func(d *Deps) { d.Routes = fakeRoutes{} })
	got, err := a.Itinerary(context.Background(), ItineraryRequest{Context: RequestContext{Location: "Pune"}})
	require.NoError(t, err)

	assert.Equal(t, true, got["canned"])
	assert.Equal(t, "Pune", got["location"])
	timeline := got["timeline"].([]any)
	assert.Equal(t, "14 mins by car (5.2 km)", timeline[0].(map[string]any)["travel_time_to_next"])
}

func TestItinerary_Generated(t *testing.T) {
	gen := &scriptedGenerator{replies: []string{dayPlan}}
	got, err := newTestAssistant(gen, nil).Itinerary(context.Background(), ItineraryRequest{
		Query:   "explore Jaipur",
		Context: RequestContext{Location: "Jaipur", LocalHour: hourPtr(9)},
	})
	require.NoError(t, err)
	assert.Equal(t, "Have fun!", got["closing"])
	assert.Nil(t, got["canned"])
}
