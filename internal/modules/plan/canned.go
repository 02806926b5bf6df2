// README: Canned results for the category endpoints when collaborators return nothing.
package plan

import (
	"fmt"
	"strings"
)

var categoryEmoji = map[string]string{
	"food":      "🍽️",
	"cafe":      "☕",
	"movie":     "🎬",
	"dessert":   "🍨",
	"shopping":  "🛍️",
	"nightlife": "🍸",
	"park":      "🌳",
}

func emojiFor(category string) string {
	if e, ok := categoryEmoji[strings.ToLower(category)]; ok {
		return e
	}
	return "📍"
}

// CannedOptions returns search-backed cards for a category.
func CannedOptions(category, city string) map[string]any {
	category = strings.TrimSpace(category)
	if category == "" {
		category = "things to do"
	}
	angles := []struct{ prefix, subtitle string }{
		{"Top rated", "Highest reviewed on Google Maps"},
		{"Open now", "Places open at this hour"},
		{"Budget friendly", "Good value picks"},
	}

	cards := make([]any, 0, len(angles))
	for _, a := range angles {
		q := fmt.Sprintf("%s %s in %s", strings.ToLower(a.prefix), category, city)
		cards = append(cards, map[string]any{
			"emoji":        emojiFor(category),
			"title":        fmt.Sprintf("%s %s", a.prefix, category),
			"subtitle":     a.subtitle,
			"google_query": q,
		})
	}
	return map[string]any{
		"greeting": fmt.Sprintf("Here are some ways to find %s in %s %s", category, city, emojiFor(category)),
		"type":     "options",
		"category": category,
		"cards":    cards,
		"closing":  "Tap a card to open it in Google Maps!",
		"canned":   true,
	}
}

// CannedMovies is the movie-wizard substitute: pick a show, then food.
func CannedMovies(city string) map[string]any {
	return map[string]any{
		"greeting": fmt.Sprintf("Let's plan a movie night in %s 🎬", city),
		"type":     "wizard",
		"steps": []any{
			map[string]any{
				"step":  1,
				"title": "Pick a show",
				"choices": []any{
					map[string]any{
						"name":         "Today's showtimes",
						"details":      "Compare theaters and times",
						"google_query": fmt.Sprintf("movie showtimes today in %s", city),
					},
				},
			},
			map[string]any{
				"step":  2,
				"title": "Food after the movie",
				"choices": []any{
					map[string]any{
						"name":         "Dinner near the theater",
						"details":      "Open late, close to the cinema",
						"google_query": fmt.Sprintf("restaurants open late in %s", city),
					},
				},
			},
		},
		"closing": "Pick a showtime and I'll help with the rest!",
		"canned":  true,
	}
}

// CannedItinerary is the itinerary substitute: a two-stop timeline of searches.
func CannedItinerary(city string) map[string]any {
	return map[string]any{
		"greeting":  fmt.Sprintf("Here's a simple plan for %s 🗺️", city),
		"type":      "day_plan",
		"day_title": fmt.Sprintf("Explore %s", city),
		"timeline": []any{
			map[string]any{
				"time":         "Now",
				"emoji":        "🧭",
				"activity":     "Top sights",
				"place":        fmt.Sprintf("Top attractions in %s", city),
				"details":      "Browse the highest rated spots",
				"google_query": fmt.Sprintf("top attractions in %s", city),
			},
			map[string]any{
				"time":         "After",
				"emoji":        "🍽️",
				"activity":     "Eat",
				"place":        fmt.Sprintf("Best rated food in %s", city),
				"details":      "Pick something close to your last stop",
				"google_query": fmt.Sprintf("best restaurants in %s", city),
			},
		},
		"tips":    []any{"Check opening hours before you head out"},
		"closing": "Enjoy the day!",
		"canned":  true,
	}
}
