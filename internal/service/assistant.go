// README: Assistant orchestrates resolver, classifier, chain, collaborators and the generator per request.
package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"travelbuddy/internal/ai"
	"travelbuddy/internal/config"
	"travelbuddy/internal/infra"
	"travelbuddy/internal/maps"
	"travelbuddy/internal/modules/chain"
	"travelbuddy/internal/modules/clarify"
	"travelbuddy/internal/modules/intent"
	"travelbuddy/internal/modules/location"
	"travelbuddy/internal/modules/plan"
	"travelbuddy/internal/modules/preference"
	"travelbuddy/internal/modules/prompt"
	"travelbuddy/internal/search"
	"travelbuddy/internal/weather"
)

type Searcher interface {
	Search(ctx context.Context, query string) ([]search.Result, error)
}

type WeatherSource interface {
	Current(ctx context.Context, city string) (weather.Report, error)
}

type PlacesFinder interface {
	SearchNearby(ctx context.Context, lat, lng float64, category string) ([]maps.Place, error)
}

type RouteEstimator interface {
	TravelEstimate(ctx context.Context, origin, destination string) (time.Duration, string, error)
}

// Deps wires the assistant. Collaborator fields left nil disable that feature.
type Deps struct {
	Generator   ai.Generator
	Search      Searcher
	Weather     WeatherSource
	Places      PlacesFinder
	Routes      RouteEstimator
	Resolver    *location.Resolver
	Clock       *location.Clock
	Validator   *plan.Validator
	Preferences *preference.Service

	Timeouts     config.TimeoutConfig
	Temperature  float32
	SearchBudget int
	MaxSearches  int
	Log          *zap.Logger
}

type Assistant struct {
	d   Deps
	log *zap.Logger
}

func NewAssistant(d Deps) *Assistant {
	if d.Log == nil {
		d.Log = zap.NewNop()
	}
	if d.MaxSearches <= 0 {
		d.MaxSearches = 4
	}
	if d.Timeouts.Generation <= 0 {
		d.Timeouts.Generation = 60 * time.Second
	}
	if d.Timeouts.Search <= 0 {
		d.Timeouts.Search = 10 * time.Second
	}
	if d.Timeouts.Weather <= 0 {
		d.Timeouts.Weather = 5 * time.Second
	}
	if d.Timeouts.Places <= 0 {
		d.Timeouts.Places = 10 * time.Second
	}
	return &Assistant{d: d, log: d.Log}
}

// Features reports which collaborators were configured at startup.
func (a *Assistant) Features() map[string]bool {
	return map[string]bool{
		"generator": a.d.Generator != nil,
		"search":    a.d.Search != nil,
		"weather":   a.d.Weather != nil,
		"places":    a.d.Places != nil,
		"routes":    a.d.Routes != nil,
	}
}

// GeneratorName is empty when generation is disabled.
func (a *Assistant) GeneratorName() string {
	if a.d.Generator == nil {
		return ""
	}
	return a.d.Generator.Name()
}

// job is one run of the generation pipeline.
type job struct {
	query     string
	rc        RequestContext
	planType  string
	prefs     map[string]string
	template  *prompt.Template
	label     *intent.Label
	answers   clarify.Answers
	modifiers []string
	tomorrow  bool
}

type outcome struct {
	payload   map[string]any
	city      string
	clock     location.LocalTime
	detected  intent.Detected
	items     []chain.Item
	generated bool
}

// Assist answers a free-text request. An empty query is not an error: it gets the
// friendly prompt-for-input payload.
func (a *Assistant) Assist(ctx context.Context, req AssistRequest) (map[string]any, error) {
	if strings.TrimSpace(req.Query) == "" {
		return plan.EmptyQuery(), nil
	}
	prefs := a.preferences(ctx, req.UserID, req.Preferences)

	out := a.run(ctx, job{query: req.Query, rc: req.Context, prefs: prefs})
	return annotate(out), nil
}

func (a *Assistant) run(ctx context.Context, j job) outcome {
	// 1. Resolve where and when
	city := a.d.Resolver.Resolve(ctx, location.Request{
		PlanType:    j.planType,
		Destination: j.rc.Destination,
		Coordinates: j.rc.Coordinates,
		Location:    j.rc.Location,
	})
	clock := a.d.Clock.Local(location.ClockRequest{
		LocalTime:   j.rc.LocalTime,
		LocalHour:   j.rc.LocalHour,
		Timezone:    j.rc.Timezone,
		Coordinates: j.rc.Coordinates,
	})
	if j.tomorrow {
		clock = clock.Tomorrow(9)
	}

	// 2. Classify and chain
	detected := intent.Primary(j.query)
	if j.label != nil {
		if def, ok := intent.Lookup(*j.label); ok {
			detected = intent.Detected{
				Label:           def.Label,
				Confidence:      1,
				Emoji:           def.Emoji,
				Chain:           def.Chain,
				DurationMinutes: def.DurationMinutes,
			}
		}
	}
	items := chain.Build(detected.Label, clock.Hour)

	// 3. Collaborators
	g := a.gather(ctx, city, items, j.modifiers)

	// 4. Compose
	tmpl := templateFor(detected.Label)
	if j.template != nil {
		tmpl = *j.template
	}
	userPrompt := prompt.Compose(prompt.Context{
		Query:           j.query,
		City:            city,
		Coordinates:     j.rc.Coordinates,
		Clock:           clock,
		Weather:         g.weather,
		Search:          g.searchPayload(),
		SearchBudget:    a.d.SearchBudget,
		Preferences:     j.prefs,
		Intent:          &detected,
		Chain:           items,
		Answers:         j.answers,
		SearchModifiers: j.modifiers,
	})

	out := outcome{city: city, clock: clock, detected: detected, items: items}

	// 5. Generate, normalize, validate
	obj, ok := a.generateJSON(ctx, tmpl, userPrompt, true)
	if !ok {
		infra.PipelineDegradations.WithLabelValues("fallback").Inc()
		out.payload = plan.Fallback(j.query, city)
		return out
	}

	phase := prompt.TimeOfDay(clock.Hour)
	if issues := a.d.Validator.Validate(obj, city, phase); len(issues) > 0 {
		a.log.Info("plan failed validation; regenerating once",
			zap.Strings("issues", plan.Strings(issues)), zap.String("city", city))
		infra.PipelineDegradations.WithLabelValues("corrective").Inc()
		if fixed, ok := a.generateJSON(ctx, tmpl, prompt.Corrective(userPrompt, plan.Strings(issues)), false); ok {
			obj = fixed
		}
	}

	plan.EnsureEnvelope(obj, plan.DefaultGreeting, plan.DefaultClosing)
	out.payload = obj
	out.generated = true
	return out
}

func annotate(out outcome) map[string]any {
	p := out.payload
	p["intent"] = string(out.detected.Label)
	p["chain"] = out.items
	p["location"] = out.city
	return p
}

func templateFor(label intent.Label) prompt.Template {
	switch label {
	case intent.Date, intent.Explore, intent.Adventure, intent.Bored:
		return prompt.DayPlanTimeline
	default:
		return prompt.ItineraryCards
	}
}

// preferences merges the stored record for userID with the request's own values;
// request values win.
func (a *Assistant) preferences(ctx context.Context, userID string, inline map[string]any) map[string]string {
	rec := preference.Record{}
	if a.d.Preferences != nil && strings.TrimSpace(userID) != "" {
		stored, _, err := a.d.Preferences.Load(ctx, userID)
		if err != nil {
			a.log.Warn("load preferences failed", zap.String("user_id", userID), zap.Error(err))
		}
		rec = stored
	}
	return rec.Merge(preference.FromMap(inline)).Map()
}
