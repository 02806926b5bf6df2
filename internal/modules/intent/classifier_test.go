package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect_MovieQuery(t *testing.T) {
	got := Detect("I want to watch a movie")
	require.NotEmpty(t, got)

	assert.Equal(t, Movie, got[0].Label)
	assert.GreaterOrEqual(t, got[0].Confidence, 0.5)
	assert.Equal(t, 180, got[0].DurationMinutes)
	assert.Equal(t, "🎬", got[0].Emoji)
}

func TestDetect_DefaultsToExplore(t *testing.T) {
	for _, input := range []string{"", "   ", "qwerty zxcv"} {
		got := Detect(input)
		require.Len(t, got, 1, "input %q", input)
		assert.Equal(t, Explore, got[0].Label)
		assert.Equal(t, defaultConfidence, got[0].Confidence)
	}
}

func TestDetect_CaseInsensitive(t *testing.T) {
	got := Detect("HUNGRY for DINNER")
	require.NotEmpty(t, got)
	assert.Equal(t, Food, got[0].Label)
	assert.Equal(t, 0.7, got[0].Confidence)
}

func TestDetect_OrderedAndBounded(t *testing.T) {
	inputs := []string{
		"romantic dinner date then dessert",
		"bored, maybe a movie or a mall or a club",
		"party at the bar with drinks and dance at the club then a pub",
		"explore a museum",
	}
	for _, input := range inputs {
		got := Detect(input)
		require.NotEmpty(t, got)
		for i, d := range got {
			assert.GreaterOrEqual(t, d.Confidence, 0.3)
			assert.LessOrEqual(t, d.Confidence, 0.9)
			if i > 0 {
				assert.GreaterOrEqual(t, got[i-1].Confidence, d.Confidence, "input %q", input)
			}
		}
	}
}

func TestDetect_ConfidenceCapped(t *testing.T) {
	got := Detect("party at the bar with drinks and dance at the club then a pub")
	require.NotEmpty(t, got)
	assert.Equal(t, Nightlife, got[0].Label)
	assert.Equal(t, maxConfidence, got[0].Confidence)
}

func TestDetect_TiesKeepCatalogOrder(t *testing.T) {
	// one hit each for movie, shopping and nightlife
	got := Detect("film, mall, pub")
	require.Len(t, got, 3)
	assert.Equal(t, []Label{Movie, Shopping, Nightlife}, []Label{got[0].Label, got[1].Label, got[2].Label})
}

func TestDetect_ChainIsCopied(t *testing.T) {
	got := Detect("movie")
	got[0].Chain[0] = "mutated"

	def, ok := Lookup(Movie)
	require.True(t, ok)
	assert.Equal(t, "movie", def.Chain[0])
}

func TestParse(t *testing.T) {
	l, ok := Parse(" Movie ")
	assert.True(t, ok)
	assert.Equal(t, Movie, l)

	_, ok = Parse("karaoke")
	assert.False(t, ok)
}

func TestCatalog_EveryLabelDefined(t *testing.T) {
	labels := []Label{Movie, Food, Bored, Date, Explore, Chill, Adventure, Shopping, Nightlife}
	assert.Len(t, Catalog(), len(labels))
	for _, l := range labels {
		def, ok := Lookup(l)
		assert.True(t, ok, "label %s", l)
		assert.Positive(t, def.DurationMinutes)
		assert.NotEmpty(t, def.Keywords)
	}
}
