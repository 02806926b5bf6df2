package service

import (
	"context"
	"fmt"
	"strings"

	"travelbuddy/internal/modules/clarify"
	"travelbuddy/internal/modules/intent"
	"travelbuddy/internal/modules/location"
	"travelbuddy/internal/modules/prompt"
)

const (
	PlanNow      = "NOW"
	PlanTomorrow = "TOMORROW"
	PlanTrip     = location.PlanTypeTrip
)

// Plan normalizes the legacy planner body into the assist pipeline with the day-plan
// template.
func (a *Assistant) Plan(ctx context.Context, req PlanRequest) (map[string]any, error) {
	planType := strings.ToUpper(strings.TrimSpace(req.PlanType))
	if planType == "" {
		planType = PlanNow
	}
	switch planType {
	case PlanNow, PlanTomorrow, PlanTrip:
	default:
		return nil, fmt.Errorf("%w: unknown plan_type %q", ErrBadRequest, req.PlanType)
	}

	rc := req.Context
	if rc.Destination == "" {
		rc.Destination = stringField(req.Traveler, "destination")
	}

	inline := map[string]any{}
	if p, ok := req.Traveler["preferences"].(map[string]any); ok {
		for k, v := range p {
			inline[k] = v
		}
	}
	for _, k := range []string{"budget", "food", "vibe"} {
		if v := stringField(req.Traveler, k); v != "" {
			inline[k] = v
		}
	}

	tmpl := prompt.DayPlanTimeline
	out := a.run(ctx, job{
		query:    legacyQuery(planType, req.Traveler, rc.Destination),
		rc:       rc,
		planType: planType,
		prefs:    a.preferences(ctx, req.UserID, inline),
		template: &tmpl,
		tomorrow: planType == PlanTomorrow,
	})
	out.payload["plan_type"] = planType
	return annotate(out), nil
}

func legacyQuery(planType string, traveler map[string]any, destination string) string {
	for _, k := range []string{"query", "request", "interests"} {
		if q := stringField(traveler, k); q != "" {
			return q
		}
	}
	switch planType {
	case PlanTrip:
		if destination != "" && !location.IsPlaceholder(destination) {
			return "Plan a day trip exploring " + destination
		}
		return "Plan a day trip exploring the city"
	case PlanTomorrow:
		return "Plan my day tomorrow"
	default:
		return "What can I do right now?"
	}
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return strings.TrimSpace(s)
}

// Clarify walks the question bank for an intent. While questions remain it returns
// the next one; once complete it runs the pipeline with the answers folded in.
func (a *Assistant) Clarify(ctx context.Context, req ClarifyRequest) (map[string]any, error) {
	label, ok := intent.Parse(req.Intent)
	if !ok {
		if strings.TrimSpace(req.OriginalQuery) == "" {
			return nil, fmt.Errorf("%w: intent %q is unknown and no original_query given", ErrBadRequest, req.Intent)
		}
		label = intent.Primary(req.OriginalQuery).Label
	}

	answers := clarify.Sanitize(label, req.Answers)
	if q, more := clarify.Next(label, answers); more {
		return map[string]any{
			"type":     "clarification",
			"intent":   string(label),
			"question": q,
			"progress": clarify.ProgressOf(label, answers),
			"answers":  answers,
		}, nil
	}

	query := strings.TrimSpace(req.OriginalQuery)
	if query == "" {
		def, _ := intent.Lookup(label)
		query = fmt.Sprintf("Plan something for me: %s %s", label, def.Emoji)
	}

	out := a.run(ctx, job{
		query:     query,
		rc:        req.Context,
		prefs:     a.preferences(ctx, req.UserID, req.Preferences),
		label:     &label,
		answers:   answers,
		modifiers: clarify.SearchModifiers(label, answers),
	})
	out.payload["progress"] = clarify.ProgressOf(label, answers)
	return annotate(out), nil
}
