package chain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelbuddy/internal/modules/intent"
)

func TestMealNeed(t *testing.T) {
	tests := []struct {
		name     string
		hour     float64
		duration int
		want     Need
	}{
		{"ends inside lunch", 11.0, 90, LunchAfter},
		{"end-hour check wins over start-hour", 12.0, 20, LunchAfter},
		{"starts in lunch ends after grace", 13.0, 180, LunchBefore},
		{"movie at seven ends at ten", 19.0, 180, DinnerAfter},
		{"ends inside dinner", 17.5, 90, DinnerAfter},
		{"starts in dinner ends late", 20.0, 240, DinnerBefore},
		{"afternoon snack", 16.0, 90, Snack},
		{"ends in snack window", 15.5, 40, SnackAfter},
		{"early morning", 7.0, 60, NoNeed},
		{"after midnight", 0.5, 120, NoNeed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MealNeed(tt.hour, tt.duration))
		})
	}
}

func TestNeed_PositionAndSubtype(t *testing.T) {
	assert.Equal(t, "after", DinnerAfter.Position())
	assert.Equal(t, "dinner", DinnerAfter.Subtype())
	assert.Equal(t, "before", LunchBefore.Position())
	assert.Equal(t, "lunch", LunchBefore.Subtype())
	assert.Equal(t, "", Snack.Position())
	assert.Equal(t, "snack", SnackAfter.Subtype())
}

func TestBuild_MovieEvening(t *testing.T) {
	items := Build(intent.Movie, 19)
	require.Len(t, items, 3)

	assert.Equal(t, Item{Type: "movie", Priority: Primary}, items[0])
	assert.Equal(t, TypeFood, items[1].Type)
	assert.Equal(t, Anticipated, items[1].Priority)
	assert.Equal(t, "after", items[1].Position)
	assert.Equal(t, "dinner", items[1].Subtype)
	assert.Equal(t, TypeLateNightFood, items[2].Type)
}

func TestBuild_DateAlwaysEndsWithDessert(t *testing.T) {
	for _, hour := range []float64{0, 9, 12, 16, 18, 19, 23.5} {
		items := Build(intent.Date, hour)
		last := items[len(items)-1]
		assert.Equal(t, TypeDessert, last.Type, "hour %v", hour)
		assert.Equal(t, Bonus, last.Priority)

		desserts := 0
		for _, it := range items {
			if it.Type == TypeDessert && it.Priority == Bonus {
				desserts++
			}
		}
		assert.Equal(t, 1, desserts)
	}
}

func TestBuild_ExactlyOnePrimary(t *testing.T) {
	for _, def := range intent.Catalog() {
		for hour := 0.0; hour < 24; hour += 0.5 {
			items := Build(def.Label, hour)
			primaries := 0
			for _, it := range items {
				if it.Priority == Primary {
					primaries++
				}
			}
			require.Equal(t, 1, primaries, "%s at %v", def.Label, hour)
			require.Equal(t, Primary, items[0].Priority)
			require.Equal(t, string(def.Label), items[0].Type)
		}
	}
}

func TestBuild_NoMealNeed(t *testing.T) {
	items := Build(intent.Chill, 7)
	assert.Equal(t, []Item{{Type: "chill", Priority: Primary}}, items)
}

func TestItem_SearchQuery(t *testing.T) {
	assert.Equal(t, "movie theaters showtimes today in Paris", Item{Type: "movie"}.SearchQuery("Paris"))
	assert.Equal(t, "best dinner restaurants in Paris", Item{Type: TypeFood, Subtype: "dinner"}.SearchQuery("Paris"))
	assert.Equal(t, "late night food open now in Paris", Item{Type: TypeLateNightFood}.SearchQuery("Paris"))
	assert.Equal(t, "best shopping places in Paris", Item{Type: "shopping"}.SearchQuery("Paris"))
}

func TestItem_SearchQueryUsesCatalogStep(t *testing.T) {
	tests := map[intent.Label]string{
		intent.Bored:     "fun things to do in Pune",
		intent.Chill:     "cozy cafes in Pune",
		intent.Date:      "best restaurants in Pune",
		intent.Explore:   "top sightseeing spots in Pune",
		intent.Nightlife: "bars and pubs in Pune",
		intent.Adventure: "best adventure places in Pune",
	}
	for label, want := range tests {
		assert.Equal(t, want, Build(label, 16)[0].SearchQuery("Pune"), "intent %s", label)
	}

	assert.Equal(t, "best restaurants in Pune", Build(intent.Food, 16)[0].SearchQuery("Pune"))
	assert.Equal(t, "cafes and snacks in Pune", Item{Type: TypeFood, Priority: Anticipated}.SearchQuery("Pune"))
}
