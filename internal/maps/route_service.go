package maps

import (
	"context"
	"errors"
	"fmt"
	"time"

	"googlemaps.github.io/maps"
)

var ErrNoRoute = errors.New("maps: no route found")

// RouteService estimates door-to-door travel between timeline stops.
type RouteService struct {
	client   *maps.Client
	language string
	mode     maps.Mode
}

func NewRouteService(client *maps.Client, language string) *RouteService {
	return &RouteService{client: client, language: language, mode: maps.TravelModeDriving}
}

// TravelEstimate asks for alternatives and returns the fastest route's total duration
// and distance across all of its legs. Origin and destination are place names or
// "lat,lng".
func (s *RouteService) TravelEstimate(ctx context.Context, origin, destination string) (time.Duration, string, error) {
	routes, _, err := s.client.Directions(ctx, &maps.DirectionsRequest{
		Origin:       origin,
		Destination:  destination,
		Mode:         s.mode,
		Language:     s.language,
		Alternatives: true,
	})
	if err != nil {
		return 0, "", fmt.Errorf("directions %q -> %q: %w", origin, destination, err)
	}

	best, meters := time.Duration(-1), 0
	for _, r := range routes {
		var d time.Duration
		var m int
		for _, leg := range r.Legs {
			d += leg.Duration
			m += leg.Distance.Meters
		}
		if len(r.Legs) > 0 && (best < 0 || d < best) {
			best, meters = d, m
		}
	}
	if best < 0 {
		return 0, "", ErrNoRoute
	}
	return best, fmt.Sprintf("%.1f km", float64(meters)/1000), nil
}

// FormatTravel renders an estimate the way timeline entries show it.
func FormatTravel(d time.Duration, distance string) string {
	mins := int(d.Round(time.Minute).Minutes())
	if mins < 1 {
		mins = 1
	}
	if distance == "" {
		return fmt.Sprintf("%d mins by car", mins)
	}
	return fmt.Sprintf("%d mins by car (%s)", mins, distance)
}
