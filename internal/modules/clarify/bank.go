// README: Static per-intent question bank.
package clarify

import "travelbuddy/internal/modules/intent"

var foodTypeOptions = []Option{
	{Label: "Quick bite 🍔", Value: "quick", SearchModifier: "quick bites fast food"},
	{Label: "Sit-down meal 🍝", Value: "restaurant", SearchModifier: "restaurants"},
	{Label: "Street food 🌮", Value: "street", SearchModifier: "street food"},
	{Label: "Fine dining 🥂", Value: "fine", SearchModifier: "fine dining"},
}

var budgetQuestion = Question{
	ID:     "budget",
	Prompt: "What's the budget like?",
	Options: []Option{
		{Label: "Budget friendly 💸", Value: "low", SearchModifier: "cheap"},
		{Label: "Mid-range 👌", Value: "mid", SearchModifier: "affordable"},
		{Label: "Treat myself ✨", Value: "high", SearchModifier: "premium"},
	},
}

var bank = map[intent.Label][]Question{
	intent.Movie: {
		{
			ID:     "food_timing",
			Prompt: "Want to grab food around the movie?",
			Options: []Option{
				{Label: "Eat before 🍕", Value: "before"},
				{Label: "Eat after 🍜", Value: "after"},
				{Label: "Just the movie 🎬", Value: "none"},
			},
		},
		{
			ID:        "food_type",
			Prompt:    "What kind of food?",
			Options:   foodTypeOptions,
			DependsOn: map[string][]string{"food_timing": {"before", "after"}},
		},
		{
			ID:     "movie_pref",
			Prompt: "Any genre in mind?",
			Options: []Option{
				{Label: "Action 💥", Value: "action", SearchModifier: "action movie"},
				{Label: "Comedy 😂", Value: "comedy", SearchModifier: "comedy movie"},
				{Label: "Drama 🎭", Value: "drama", SearchModifier: "drama movie"},
				{Label: "Horror 👻", Value: "horror", SearchModifier: "horror movie"},
				{Label: "Surprise me 🎲", Value: "any"},
			},
			MultiSelect: true,
		},
	},
	intent.Food: {
		{
			ID:     "cuisine",
			Prompt: "What are you craving?",
			Options: []Option{
				{Label: "Indian 🍛", Value: "indian", SearchModifier: "indian"},
				{Label: "Chinese 🥡", Value: "chinese", SearchModifier: "chinese"},
				{Label: "Italian 🍝", Value: "italian", SearchModifier: "italian"},
				{Label: "Cafe ☕", Value: "cafe", SearchModifier: "cafe"},
				{Label: "Anything 🤷", Value: "any"},
			},
			MultiSelect: true,
		},
		{
			ID:     "dining_style",
			Prompt: "Dine in or grab and go?",
			Options: []Option{
				{Label: "Dine in 🍽️", Value: "dine_in", SearchModifier: "dine in"},
				{Label: "Takeaway 🥡", Value: "takeaway", SearchModifier: "takeaway"},
			},
		},
		budgetQuestion,
	},
	intent.Bored: {
		{
			ID:     "energy",
			Prompt: "How much energy do you have?",
			Options: []Option{
				{Label: "Low, keep it easy 😴", Value: "low", SearchModifier: "relaxing"},
				{Label: "Up for anything ⚡", Value: "high", SearchModifier: "fun activities"},
			},
		},
		{
			ID:     "setting",
			Prompt: "Indoors or outdoors?",
			Options: []Option{
				{Label: "Indoors 🏠", Value: "indoor", SearchModifier: "indoor"},
				{Label: "Outdoors 🌳", Value: "outdoor", SearchModifier: "outdoor"},
			},
		},
	},
	intent.Date: {
		{
			ID:     "date_stage",
			Prompt: "What kind of date is it?",
			Options: []Option{
				{Label: "First date 🌱", Value: "first", SearchModifier: "casual"},
				{Label: "Special occasion 💍", Value: "special", SearchModifier: "romantic"},
				{Label: "Regular date night 💕", Value: "regular", SearchModifier: "cozy"},
			},
		},
		{
			ID:     "date_vibe",
			Prompt: "Pick a vibe",
			Options: []Option{
				{Label: "Candle-lit dinner 🕯️", Value: "dinner", SearchModifier: "candle light dinner"},
				{Label: "Something active 🎳", Value: "active", SearchModifier: "activities for couples"},
				{Label: "Rooftop views 🌆", Value: "rooftop", SearchModifier: "rooftop"},
			},
		},
		budgetQuestion,
	},
	intent.Explore: {
		{
			ID:     "interest",
			Prompt: "What do you want to see?",
			Options: []Option{
				{Label: "History 🏛️", Value: "history", SearchModifier: "historical monuments"},
				{Label: "Nature 🌿", Value: "nature", SearchModifier: "parks gardens"},
				{Label: "Markets 🧺", Value: "markets", SearchModifier: "local markets"},
				{Label: "Art 🎨", Value: "art", SearchModifier: "art galleries"},
			},
			MultiSelect: true,
		},
		{
			ID:     "transport",
			Prompt: "How are you getting around?",
			Options: []Option{
				{Label: "Car 🚗", Value: "car"},
				{Label: "Metro 🚇", Value: "metro", SearchModifier: "near metro"},
				{Label: "Walking 🚶", Value: "walk", SearchModifier: "walkable"},
			},
		},
	},
	intent.Chill: {
		{
			ID:     "chill_spot",
			Prompt: "Where do you want to unwind?",
			Options: []Option{
				{Label: "Cafe ☕", Value: "cafe", SearchModifier: "quiet cafe"},
				{Label: "Park 🌳", Value: "park", SearchModifier: "park"},
				{Label: "Spa 💆", Value: "spa", SearchModifier: "spa"},
			},
		},
	},
	intent.Adventure: {
		{
			ID:     "adventure_type",
			Prompt: "What kind of thrill?",
			Options: []Option{
				{Label: "Trek 🥾", Value: "trek", SearchModifier: "trekking"},
				{Label: "Water sports 🚣", Value: "water", SearchModifier: "water sports"},
				{Label: "Adventure park 🧗", Value: "park", SearchModifier: "adventure park"},
			},
		},
		{
			ID:     "distance",
			Prompt: "How far will you travel?",
			Options: []Option{
				{Label: "Within the city 🏙️", Value: "city"},
				{Label: "Day trip 🚙", Value: "day_trip", SearchModifier: "day trip"},
			},
		},
	},
	intent.Shopping: {
		{
			ID:     "shopping_for",
			Prompt: "What are you shopping for?",
			Options: []Option{
				{Label: "Clothes 👗", Value: "clothes", SearchModifier: "clothing stores"},
				{Label: "Electronics 📱", Value: "electronics", SearchModifier: "electronics"},
				{Label: "Just browsing 👀", Value: "browse", SearchModifier: "shopping mall"},
			},
			MultiSelect: true,
		},
		{
			ID:     "shopping_style",
			Prompt: "Mall or street market?",
			Options: []Option{
				{Label: "Mall 🏬", Value: "mall", SearchModifier: "mall"},
				{Label: "Street market 🛍️", Value: "market", SearchModifier: "street market"},
			},
		},
	},
	intent.Nightlife: {
		{
			ID:     "night_vibe",
			Prompt: "What's the vibe tonight?",
			Options: []Option{
				{Label: "Dance 💃", Value: "dance", SearchModifier: "nightclub"},
				{Label: "Chill drinks 🍻", Value: "drinks", SearchModifier: "pub"},
				{Label: "Live music 🎸", Value: "live", SearchModifier: "live music bar"},
			},
		},
		{
			ID:     "late_food",
			Prompt: "Food after?",
			Options: []Option{
				{Label: "Yes, late-night bites 🌯", Value: "yes", SearchModifier: "late night food"},
				{Label: "No 🙅", Value: "no"},
			},
		},
	},
}

// Questions returns the bank for a label; unknown labels have no questions.
func Questions(label intent.Label) []Question {
	return bank[label]
}
