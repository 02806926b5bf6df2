// README: Prompt composer; pure interpolation of the request context into one instruction string.
package prompt

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"travelbuddy/internal/modules/chain"
	"travelbuddy/internal/modules/clarify"
	"travelbuddy/internal/modules/intent"
	"travelbuddy/internal/modules/location"
	"travelbuddy/internal/types"
)

const DefaultSearchBudget = 2500

// Context is everything the composer interpolates.
type Context struct {
	Query           string
	City            string
	Coordinates     *types.Point
	Clock           location.LocalTime
	Weather         string
	Search          any
	SearchBudget    int
	Preferences     map[string]string
	Intent          *intent.Detected
	Chain           []chain.Item
	Answers         clarify.Answers
	SearchModifiers []string
}

// TimeOfDay buckets an hour into a fixed phase label.
func TimeOfDay(hour float64) string {
	switch {
	case hour < 6:
		return "late_night"
	case hour < 8:
		return "early_morning"
	case hour < 12:
		return "morning"
	case hour < 14:
		return "lunch_time"
	case hour < 17:
		return "afternoon"
	case hour < 21:
		return "evening"
	default:
		return "night"
	}
}

// Compose renders the user-turn prompt. The search block is cut at the byte budget
// without regard to JSON structure.
func Compose(c Context) string {
	var b strings.Builder

	b.WriteString("USER CONTEXT:\n")
	fmt.Fprintf(&b, "- Location: %s\n", c.City)
	if c.Coordinates != nil && !c.Coordinates.IsZero() {
		fmt.Fprintf(&b, "- Coordinates: %.5f, %.5f\n", c.Coordinates.Lat, c.Coordinates.Lng)
	} else {
		b.WriteString("- Coordinates: N/A\n")
	}
	fmt.Fprintf(&b, "- Current Time: %s (%s)\n", c.Clock.Display, TimeOfDay(c.Clock.Hour))
	if c.Clock.Timezone != "" {
		fmt.Fprintf(&b, "- Timezone: %s\n", c.Clock.Timezone)
	}
	if !c.Clock.Date.IsZero() {
		fmt.Fprintf(&b, "- Date: %s\n", c.Clock.Date.Format("Monday, January 02, 2006"))
	}
	if c.Weather != "" {
		fmt.Fprintf(&b, "- Weather: %s\n", c.Weather)
	}

	b.WriteString("\nUSER PREFERENCES:\n")
	if len(c.Preferences) == 0 {
		b.WriteString("- none given\n")
	}
	keys := make([]string, 0, len(c.Preferences))
	for k := range c.Preferences {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, "- %s: %s\n", k, c.Preferences[k])
	}

	if c.Intent != nil {
		fmt.Fprintf(&b, "\nDETECTED INTENT: %s %s\n", c.Intent.Label, c.Intent.Emoji)
	}
	if len(c.Chain) > 0 {
		b.WriteString("\nPLAN THESE STEPS IN ORDER:\n")
		for i, it := range c.Chain {
			fmt.Fprintf(&b, "%d. %s (%s)", i+1, stepName(it), it.Priority)
			if it.Reason != "" {
				fmt.Fprintf(&b, " - %s", it.Reason)
			}
			b.WriteString("\n")
		}
	}

	if len(c.Answers) > 0 {
		b.WriteString("\nUSER ANSWERS:\n")
		ids := make([]string, 0, len(c.Answers))
		for id := range c.Answers {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		for _, id := range ids {
			fmt.Fprintf(&b, "- %s: %v\n", id, c.Answers[id])
		}
	}
	if len(c.SearchModifiers) > 0 {
		fmt.Fprintf(&b, "- Looking for: %s\n", strings.Join(c.SearchModifiers, ", "))
	}

	if block := searchBlock(c.Search, c.SearchBudget); block != "" {
		b.WriteString("\nSEARCH RESULTS:\n")
		b.WriteString(block)
		b.WriteString("\n")
	}

	b.WriteString("\nUSER REQUEST:\n")
	b.WriteString(c.Query)
	b.WriteString("\n\nUse real, current place names and create a helpful plan.")
	return b.String()
}

func stepName(it chain.Item) string {
	name := strings.ReplaceAll(it.Type, "_", " ")
	if it.Subtype != "" && it.Subtype != it.Type {
		name += ": " + it.Subtype
	}
	if it.Position != "" {
		name += " " + it.Position + " the main activity"
	}
	return name
}

func searchBlock(search any, budget int) string {
	if search == nil {
		return ""
	}
	raw, err := json.Marshal(search)
	if err != nil || string(raw) == "null" || string(raw) == "{}" || string(raw) == "[]" {
		return ""
	}
	if budget <= 0 {
		budget = DefaultSearchBudget
	}
	if len(raw) > budget {
		raw = raw[:budget]
	}
	return string(raw)
}

// Corrective appends the validator's findings and demands a fix.
func Corrective(original string, issues []string) string {
	var b strings.Builder
	b.WriteString(original)
	b.WriteString("\n\nYOUR PREVIOUS ANSWER HAD THESE PROBLEMS:\n")
	for _, is := range issues {
		fmt.Fprintf(&b, "- %s: %s\n", is, issueHint(is))
	}
	b.WriteString("Fix every problem above and answer again with the full JSON.")
	return b.String()
}

func issueHint(issue string) string {
	switch issue {
	case "wrong_city":
		return "you mentioned a city other than the user's; only use places in the user's city"
	case "generic_names":
		return "you used generic names; name real, specific places"
	case "too_few_stops":
		return "the timeline needs at least two stops"
	default:
		return "correct this"
	}
}

// Strict is used after a reply could not be parsed as JSON.
func Strict(original string) string {
	return original + "\n\nIMPORTANT: Reply with ONE valid JSON object only. No markdown fences, no text before or after it."
}
