package maps

import (
	"context"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
	"googlemaps.github.io/maps"

	"travelbuddy/internal/modules/location"
)

// GeocodeService reverse-geocodes coordinates; results are cached per ~100m cell.
type GeocodeService struct {
	client   *maps.Client
	language string
	cache    *cache.Cache
}

func NewGeocodeService(client *maps.Client, language string, ttl time.Duration) *GeocodeService {
	return &GeocodeService{client: client, language: language, cache: cache.New(ttl, 2*ttl)}
}

// ReverseGeocode implements location.Geocoder.
func (s *GeocodeService) ReverseGeocode(ctx context.Context, lat, lng float64) (location.Address, error) {
	key := fmt.Sprintf("%.3f,%.3f", lat, lng)
	if v, ok := s.cache.Get(key); ok {
		return v.(location.Address), nil
	}

	results, err := s.client.ReverseGeocode(ctx, &maps.GeocodingRequest{
		LatLng:   &maps.LatLng{Lat: lat, Lng: lng},
		Language: s.language,
	})
	if err != nil {
		return location.Address{}, fmt.Errorf("geocode api error: %w", err)
	}
	if len(results) == 0 {
		return location.Address{}, fmt.Errorf("no geocode results")
	}

	var addr location.Address
	for _, res := range results {
		for _, c := range res.AddressComponents {
			for _, t := range c.Types {
				switch t {
				case "locality":
					setOnce(&addr.City, c.LongName)
				case "postal_town", "administrative_area_level_2":
					setOnce(&addr.Town, c.LongName)
				case "sublocality", "sublocality_level_1", "neighborhood":
					setOnce(&addr.Suburb, c.LongName)
				case "administrative_area_level_1":
					setOnce(&addr.State, c.LongName)
				}
			}
		}
	}
	if addr == (location.Address{}) {
		return addr, fmt.Errorf("no usable address components")
	}

	s.cache.Set(key, addr, cache.DefaultExpiration)
	return addr, nil
}

func setOnce(dst *string, v string) {
	if *dst == "" {
		*dst = v
	}
}
