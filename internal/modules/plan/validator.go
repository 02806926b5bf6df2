// README: Post-hoc plan validator; wrong city, generic place names, too few timeline stops.
package plan

import (
	"encoding/json"
	"strings"
)

type Issue string

const (
	IssueWrongCity    Issue = "wrong_city"
	IssueGenericNames Issue = "generic_names"
	IssueTooFewStops  Issue = "too_few_stops"

	minTimelineStops = 2
	phaseLateNight   = "late_night"
)

var genericNames = []string{
	"local cafe",
	"local restaurant",
	"nearby restaurant",
	"nearby cafe",
	"popular restaurant",
	"local bar",
	"nearby mall",
	"local park",
	"movie theater near you",
	"restaurant near you",
}

type Validator struct {
	wrongCities []string
}

// NewValidator takes the city literals the model tends to fall back to.
func NewValidator(wrongCities []string) *Validator {
	return &Validator{wrongCities: wrongCities}
}

// Validate returns the defects found in a generated plan, in a fixed order.
func (v *Validator) Validate(plan map[string]any, expectedCity, timePhase string) []Issue {
	var issues []Issue

	if v.mentionsWrongCity(plan, expectedCity) {
		issues = append(issues, IssueWrongCity)
	}
	if hasGenericName(Titles(plan)) {
		issues = append(issues, IssueGenericNames)
	}
	if raw, ok := plan["timeline"]; ok && timePhase != phaseLateNight {
		stops, _ := raw.([]any)
		if len(stops) < minTimelineStops {
			issues = append(issues, IssueTooFewStops)
		}
	}
	return issues
}

func (v *Validator) mentionsWrongCity(plan map[string]any, expectedCity string) bool {
	expected := strings.ToLower(strings.TrimSpace(expectedCity))
	for _, lit := range v.wrongCities {
		l := strings.ToLower(lit)
		// literals are aliases of the expected city
		if l == expected || strings.Contains(expected, l) {
			return false
		}
	}

	raw, err := json.Marshal(plan)
	if err != nil {
		return false
	}
	serialized := strings.ToLower(string(raw))
	for _, lit := range v.wrongCities {
		if lit != "" && strings.Contains(serialized, strings.ToLower(lit)) {
			return true
		}
	}
	return false
}

func hasGenericName(titles []string) bool {
	for _, title := range titles {
		lower := strings.ToLower(title)
		for _, g := range genericNames {
			if strings.Contains(lower, g) {
				return true
			}
		}
	}
	return false
}

// Titles collects the place-like names of a plan: timeline place/activity/title and
// card titles with their option names.
func Titles(plan map[string]any) []string {
	var out []string
	for _, entry := range objects(plan["timeline"]) {
		out = appendStrings(out, entry, "place", "title", "activity")
	}
	for _, card := range objects(plan["cards"]) {
		out = appendStrings(out, card, "title")
		for _, opt := range objects(card["options"]) {
			out = appendStrings(out, opt, "name")
		}
	}
	return out
}

func objects(v any) []map[string]any {
	list, _ := v.([]any)
	out := make([]map[string]any, 0, len(list))
	for _, x := range list {
		if m, ok := x.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

func appendStrings(dst []string, m map[string]any, keys ...string) []string {
	for _, k := range keys {
		if s, ok := m[k].(string); ok && s != "" {
			dst = append(dst, s)
		}
	}
	return dst
}

// Strings converts issues for prompt rendering.
func Strings(issues []Issue) []string {
	out := make([]string, len(issues))
	for i, is := range issues {
		out[i] = string(is)
	}
	return out
}
