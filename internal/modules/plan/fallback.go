// README: Fixed degradation payloads.
package plan

import "fmt"

const (
	DefaultGreeting = "Here's what I found for you! ✨"
	DefaultClosing  = "Have a great time! 🙌"
)

// Fallback is the single "search on maps" card used when generation cannot be parsed
// or every generator failed.
func Fallback(query, city string) map[string]any {
	return map[string]any{
		"greeting": fmt.Sprintf("I'm having trouble searching right now, but here are some ideas for %s! 🌟", city),
		"type":     "itinerary",
		"cards": []any{
			map[string]any{
				"emoji":     "🔍",
				"title":     "Search on Google Maps",
				"subtitle":  "Find great places near you",
				"card_type": "primary",
				"options": []any{
					map[string]any{
						"name":         "Search: " + query,
						"highlight":    "Tap to search on Google Maps",
						"details":      "Find options in " + city,
						"google_query": fmt.Sprintf("%s in %s", query, city),
						"tags":         []any{"Search"},
					},
				},
			},
		},
		"closing":  "Try again in a moment, or search directly on Google Maps!",
		"fallback": true,
	}
}

// EmptyQuery answers a request that carried no query text.
func EmptyQuery() map[string]any {
	return map[string]any{
		"greeting": "Hey! What would you like to do? 🤔",
		"type":     "error",
		"cards":    []any{},
		"closing":  "Tell me what you're in the mood for!",
	}
}

// InternalError is the body for an unexpected failure at the route boundary.
func InternalError(msg string) map[string]any {
	return map[string]any{
		"greeting": "Oops, something went wrong! 😅",
		"type":     "error",
		"cards":    []any{},
		"closing":  "Please try again!",
		"error":    msg,
	}
}
