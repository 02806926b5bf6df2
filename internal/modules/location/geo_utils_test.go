package location

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"travelbuddy/internal/types"
)

func TestDistanceKm(t *testing.T) {
	cyberHub := types.Point{Lat: 28.4950, Lng: 77.0895}
	connaught := types.Point{Lat: 28.6315, Lng: 77.2167}
	paris := types.Point{Lat: 48.8566, Lng: 2.3522}
	london := types.Point{Lat: 51.5074, Lng: -0.1278}

	assert.InDelta(t, 0, DistanceKm(cyberHub, cyberHub), 0.001)
	assert.InDelta(t, 19.7, DistanceKm(cyberHub, connaught), 2.0)
	assert.InDelta(t, 344, DistanceKm(paris, london), 10)
	assert.InDelta(t, DistanceKm(paris, london), DistanceKm(london, paris), 1e-9)
}

func TestSortByDistance(t *testing.T) {
	type ranked struct {
		name string
		km   float64
	}
	places := []ranked{{"c", 5}, {"a", 1}, {"b", 3}, {"a2", 1}}

	SortByDistance(places, func(p ranked) float64 { return p.km })

	var names []string
	for _, p := range places {
		names = append(names, p.name)
	}
	assert.Equal(t, []string{"a", "a2", "b", "c"}, names)

	var empty []ranked
	assert.NotPanics(t, func() { SortByDistance(empty, func(p ranked) float64 { return p.km }) })
}
