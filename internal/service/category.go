package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"travelbuddy/internal/infra"
	"travelbuddy/internal/maps"
	"travelbuddy/internal/modules/location"
	"travelbuddy/internal/modules/plan"
	"travelbuddy/internal/modules/prompt"
	"travelbuddy/internal/search"
	"travelbuddy/internal/types"
)

// Options returns a deck of places for one category. Places-nearby is tried first,
// then web search; with neither the canned deck is returned.
func (a *Assistant) Options(ctx context.Context, req OptionsRequest) (map[string]any, error) {
	category := strings.TrimSpace(req.Category)
	if category == "" {
		return nil, fmt.Errorf("%w: category is required", ErrBadRequest)
	}
	city, clock := a.where(ctx, req.Context)

	places := a.nearby(ctx, req.Context.Coordinates, category)
	var web []search.Result
	if len(places) == 0 {
		web = a.searchOne(ctx, fmt.Sprintf("best %s in %s", category, city))
	}
	if len(places) == 0 && len(web) == 0 {
		return a.canned(plan.CannedOptions(category, city), city), nil
	}

	userPrompt := prompt.Compose(prompt.Context{
		Query:        fmt.Sprintf("Show me the best %s options near me", category),
		City:         city,
		Coordinates:  req.Context.Coordinates,
		Clock:        clock,
		Search:       map[string]any{"places": places, "web": web},
		SearchBudget: a.d.SearchBudget,
		Preferences:  a.preferences(ctx, req.UserID, req.Preferences),
	})
	if obj, ok := a.generateJSON(ctx, prompt.CardDeck, userPrompt, true); ok {
		plan.EnsureEnvelope(obj, plan.DefaultGreeting, plan.DefaultClosing)
		obj["category"] = category
		obj["location"] = city
		return obj, nil
	}

	return optionCards(category, city, places, web), nil
}

func optionCards(category, city string, places []maps.Place, web []search.Result) map[string]any {
	var cards []any
	for _, p := range places {
		cards = append(cards, map[string]any{
			"title":        p.Name,
			"subtitle":     p.Address,
			"rating":       p.Rating,
			"distance":     fmt.Sprintf("%.1f km", p.DistanceKm),
			"google_query": fmt.Sprintf("%s %s", p.Name, p.Address),
		})
	}
	for _, r := range web {
		cards = append(cards, map[string]any{
			"title":        r.Title,
			"subtitle":     r.Content,
			"url":          r.URL,
			"google_query": fmt.Sprintf("%s in %s", r.Title, city),
		})
	}
	return map[string]any{
		"greeting": fmt.Sprintf("Here are some %s picks in %s", category, city),
		"type":     "options",
		"category": category,
		"cards":    cards,
		"closing":  "Tap a card to open it in Google Maps!",
		"location": city,
	}
}

// WizardMovies builds the two-step movie wizard: a show, then food.
func (a *Assistant) WizardMovies(ctx context.Context, req WizardMoviesRequest) (map[string]any, error) {
	city, clock := a.where(ctx, req.Context)

	var (
		showtimes []search.Result
		theaters  []maps.Place
		food      []maps.Place
	)
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		q := "movie showtimes today in " + city
		if extra := strings.TrimSpace(req.Query); extra != "" {
			q = extra + " " + q
		}
		showtimes = a.searchOne(egCtx, q)
		return nil
	})
	eg.Go(func() error {
		theaters = a.nearby(egCtx, req.Context.Coordinates, "movie")
		return nil
	})
	eg.Go(func() error {
		food = a.nearby(egCtx, req.Context.Coordinates, "food")
		return nil
	})
	_ = eg.Wait()

	if len(showtimes) == 0 && len(theaters) == 0 {
		return a.canned(plan.CannedMovies(city), city), nil
	}

	query := req.Query
	if strings.TrimSpace(query) == "" {
		query = "Help me pick a movie and food after it"
	}
	userPrompt := prompt.Compose(prompt.Context{
		Query:        query,
		City:         city,
		Coordinates:  req.Context.Coordinates,
		Clock:        clock,
		Search:       map[string]any{"showtimes": showtimes, "theaters": theaters, "food": food},
		SearchBudget: a.d.SearchBudget,
		Preferences:  a.preferences(ctx, req.UserID, req.Preferences),
	})
	if obj, ok := a.generateJSON(ctx, prompt.WizardSteps, userPrompt, true); ok {
		plan.EnsureEnvelope(obj, plan.DefaultGreeting, plan.DefaultClosing)
		obj["location"] = city
		return obj, nil
	}

	return movieSteps(city, showtimes, theaters, food), nil
}

func movieSteps(city string, showtimes []search.Result, theaters []maps.Place, food []maps.Place) map[string]any {
	var shows []any
	for _, t := range theaters {
		shows = append(shows, map[string]any{
			"name":         t.Name,
			"details":      fmt.Sprintf("%s · %.1f km · ⭐ %.1f", t.Address, t.DistanceKm, t.Rating),
			"google_query": t.Name + " showtimes",
		})
	}
	for _, r := range showtimes {
		shows = append(shows, map[string]any{
			"name":         r.Title,
			"details":      r.Content,
			"url":          r.URL,
			"google_query": r.Title,
		})
	}

	meals := []any{map[string]any{
		"name":         "Dinner near the theater",
		"details":      "Open late, close to the cinema",
		"google_query": "restaurants open late in " + city,
	}}
	if len(food) > 0 {
		meals = meals[:0]
		for _, p := range food {
			meals = append(meals, map[string]any{
				"name":         p.Name,
				"details":      fmt.Sprintf("%s · %.1f km", p.Address, p.DistanceKm),
				"google_query": fmt.Sprintf("%s %s", p.Name, p.Address),
			})
		}
	}

	return map[string]any{
		"greeting": fmt.Sprintf("Let's plan a movie night in %s 🎬", city),
		"type":     "wizard",
		"steps": []any{
			map[string]any{"step": 1, "title": "Pick a show", "choices": shows},
			map[string]any{"step": 2, "title": "Food after the movie", "choices": meals},
		},
		"closing":  "Pick a showtime and I'll help with the rest!",
		"location": city,
	}
}

// WizardItinerary turns the client's wizard selections into a timeline with travel
// times between consecutive stops.
func (a *Assistant) WizardItinerary(ctx context.Context, req WizardItineraryRequest) (map[string]any, error) {
	city, _ := a.where(ctx, req.Context)
	if len(req.Selections) == 0 {
		p := a.canned(plan.CannedItinerary(city), city)
		a.fillTravelTimes(ctx, p, city)
		return p, nil
	}

	timeline := make([]any, 0, len(req.Selections))
	for _, s := range req.Selections {
		emoji := s.Emoji
		if emoji == "" {
			emoji = "📍"
		}
		gq := s.GoogleQuery
		if gq == "" {
			gq = fmt.Sprintf("%s in %s", s.Name, city)
		}
		timeline = append(timeline, map[string]any{
			"time":         s.Time,
			"emoji":        emoji,
			"activity":     s.Activity,
			"place":        s.Name,
			"details":      s.Details,
			"google_query": gq,
		})
	}

	p := map[string]any{
		"greeting":  fmt.Sprintf("Your plan for %s is ready! 🎉", city),
		"type":      "day_plan",
		"day_title": fmt.Sprintf("Your %s plan", city),
		"timeline":  timeline,
		"closing":   "Have a great time! 🙌",
		"location":  city,
	}
	a.fillTravelTimes(ctx, p, city)
	return p, nil
}

// Itinerary generates a day-plan timeline and annotates travel times; when generation
// degrades it returns the canned itinerary instead of the search card.
func (a *Assistant) Itinerary(ctx context.Context, req ItineraryRequest) (map[string]any, error) {
	query := strings.TrimSpace(req.Query)
	if query == "" {
		query = "Plan the rest of my day"
	}
	tmpl := prompt.DayPlanTimeline
	out := a.run(ctx, job{
		query:    query,
		rc:       req.Context,
		prefs:    a.preferences(ctx, req.UserID, req.Preferences),
		template: &tmpl,
	})
	if !out.generated {
		infra.PipelineDegradations.WithLabelValues("canned").Inc()
		out.payload = plan.CannedItinerary(out.city)
	}
	a.fillTravelTimes(ctx, out.payload, out.city)
	return annotate(out), nil
}

// fillTravelTimes sets travel_time_to_next on timeline entries that lack it.
func (a *Assistant) fillTravelTimes(ctx context.Context, p map[string]any, city string) {
	if a.d.Routes == nil {
		return
	}
	stops := objectList(p["timeline"])
	if len(stops) < 2 {
		return
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(4)
	for i := 0; i < len(stops)-1; i++ {
		if s, _ := stops[i]["travel_time_to_next"].(string); s != "" {
			continue
		}
		from, to := stopQuery(stops[i], city), stopQuery(stops[i+1], city)
		if from == "" || to == "" {
			continue
		}
		eg.Go(func() error {
			rctx, cancel := context.WithTimeout(egCtx, a.d.Timeouts.Places)
			defer cancel()

			d, dist, err := a.d.Routes.TravelEstimate(rctx, from, to)
			infra.ObserveCall("routes", err)
			if err != nil {
				a.log.Warn("travel estimate failed", zap.String("from", from), zap.String("to", to), zap.Error(err))
				return nil
			}
			stops[i]["travel_time_to_next"] = maps.FormatTravel(d, dist)
			return nil
		})
	}
	_ = eg.Wait()
}

func stopQuery(stop map[string]any, city string) string {
	for _, k := range []string{"google_query", "place"} {
		if s, _ := stop[k].(string); strings.TrimSpace(s) != "" {
			if strings.Contains(strings.ToLower(s), strings.ToLower(city)) {
				return s
			}
			return s + ", " + city
		}
	}
	return ""
}

func objectList(v any) []map[string]any {
	list, _ := v.([]any)
	out := make([]map[string]any, 0, len(list))
	for _, x := range list {
		if m, ok := x.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

func (a *Assistant) where(ctx context.Context, rc RequestContext) (string, location.LocalTime) {
	city := a.d.Resolver.Resolve(ctx, location.Request{
		Destination: rc.Destination,
		Coordinates: rc.Coordinates,
		Location:    rc.Location,
	})
	clock := a.d.Clock.Local(location.ClockRequest{
		LocalTime:   rc.LocalTime,
		LocalHour:   rc.LocalHour,
		Timezone:    rc.Timezone,
		Coordinates: rc.Coordinates,
	})
	return city, clock
}

func (a *Assistant) nearby(ctx context.Context, at *types.Point, category string) []maps.Place {
	if a.d.Places == nil || at == nil || at.IsZero() {
		return nil
	}
	pctx, cancel := context.WithTimeout(ctx, a.d.Timeouts.Places)
	defer cancel()

	places, err := a.d.Places.SearchNearby(pctx, at.Lat, at.Lng, category)
	infra.ObserveCall("places", err)
	if err != nil {
		a.log.Warn("places search failed", zap.String("category", category), zap.Error(err))
		return nil
	}
	return places
}

func (a *Assistant) searchOne(ctx context.Context, q string) []search.Result {
	if a.d.Search == nil {
		return nil
	}
	sctx, cancel := context.WithTimeout(ctx, a.d.Timeouts.Search)
	defer cancel()

	res, err := a.d.Search.Search(sctx, q)
	infra.ObserveCall("search", err)
	if err != nil {
		a.log.Warn("search failed", zap.String("query", q), zap.Error(err))
		return nil
	}
	return res
}

func (a *Assistant) canned(p map[string]any, city string) map[string]any {
	infra.PipelineDegradations.WithLabelValues("canned").Inc()
	p["location"] = city
	return p
}
