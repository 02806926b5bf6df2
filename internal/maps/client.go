package maps

import (
	"fmt"

	"googlemaps.github.io/maps"
)

// NewClient builds the Google Maps client shared by the places, geocode and route
// services. baseURL is only set in tests.
func NewClient(apiKey, baseURL string) (*maps.Client, error) {
	opts := []maps.ClientOption{maps.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, maps.WithBaseURL(baseURL))
	}
	client, err := maps.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return client, nil
}
