package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"travelbuddy/internal/ai"
	"travelbuddy/internal/maps"
	"travelbuddy/internal/modules/location"
	"travelbuddy/internal/modules/plan"
	"travelbuddy/internal/modules/preference"
	"travelbuddy/internal/search"
	"travelbuddy/internal/types"
	"travelbuddy/internal/weather"
)

type scriptedGenerator struct {
	mu       sync.Mutex
	replies  []string
	errs     []error
	requests []ai.Request
}

func (g *scriptedGenerator) Name() string { return "scripted" }

func (g *scriptedGenerator) Generate(ctx context.Context, req ai.Request) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	i := len(g.requests)
	g.requests = append(g.requests, req)
	if i < len(g.errs) && g.errs[i] != nil {
		return "", g.errs[i]
	}
	if i < len(g.replies) {
		return g.replies[i], nil
	}
	return "", errors.New("no scripted reply")
}

func (g *scriptedGenerator) calls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.requests)
}

type fakeSearch struct {
	mu      sync.Mutex
	queries []string
	results []search.Result
	err     error
	echo    bool
}

func (f *fakeSearch) Search(ctx context.Context, q string) ([]search.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries = append(f.queries, q)
	if f.echo {
		return []search.Result{{Title: "result for " + q, URL: "https://example.com/" + q}}, f.err
	}
	return f.results, f.err
}

type fakeWeather struct{}

func (fakeWeather) Current(ctx context.Context, city string) (weather.Report, error) {
	return weather.Report{TempC: 29, Condition: "haze"}, nil
}

type fakePlaces struct {
	places []maps.Place
}

func (f *fakePlaces) SearchNearby(ctx context.Context, lat, lng float64, category string) ([]maps.Place, error) {
	return f.places, nil
}

type fakeRoutes struct{}

func (fakeRoutes) TravelEstimate(ctx context.Context, origin, destination string) (time.Duration, string, error) {
	return 14 * time.Minute, "5.2 km", nil
}

var testNow = time.Date(2026, 3, 14, 13, 30, 0, 0, time.UTC) // 19:00 in Asia/Kolkata

func newTestAssistant(gen ai.Generator, mutate func(*Deps)) *Assistant {
	d := Deps{
		Resolver:     location.NewResolver(nil, time.Second, "Gurugram", nil),
		Clock:        location.NewClock(nil, "Asia/Kolkata", func() time.Time { return testNow }),
		Validator:    plan.NewValidator([]string{"Gurugram", "Gurgaon"}),
		Preferences:  preference.NewService(preference.NewMemoryStore()),
		SearchBudget: 2500,
		MaxSearches:  4,
	}
	if gen != nil {
		d.Generator = gen
	}
	if mutate != nil {
		mutate(&d)
	}
	return NewAssistant(d)
}

func hourPtr(h float64) *float64 { return &h }

func gurugramPoint() *types.Point { return &types.Point{Lat: 28.4595, Lng: 77.0266} }
