package maps

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"googlemaps.github.io/maps"

	"travelbuddy/internal/modules/location"
	"travelbuddy/internal/types"
)

const (
	minRating     = 4.0
	maxPlaces     = 5
	nearbyRadiusM = 5000
)

// Place represents a simplified location result.
type Place struct {
	Name             string  `json:"name"`
	Address          string  `json:"address"`
	Rating           float32 `json:"rating"`
	Lat              float64 `json:"lat"`
	Lng              float64 `json:"lng"`
	PlaceID          string  `json:"place_id"`
	UserRatingsTotal int     `json:"user_ratings_total,omitempty"`
	DistanceKm       float64 `json:"distance_km"`
}

// categoryTypes maps the client's category words to Places types.
var categoryTypes = map[string]maps.PlaceType{
	"food":       maps.PlaceTypeRestaurant,
	"restaurant": maps.PlaceTypeRestaurant,
	"cafe":       maps.PlaceTypeCafe,
	"coffee":     maps.PlaceTypeCafe,
	"movie":      maps.PlaceTypeMovieTheater,
	"dessert":    maps.PlaceTypeBakery,
	"shopping":   maps.PlaceTypeShoppingMall,
	"nightlife":  maps.PlaceTypeBar,
	"bar":        maps.PlaceTypeBar,
	"park":       maps.PlaceTypePark,
	"museum":     maps.PlaceTypeMuseum,
}

// Name fragments of closed venues and utility stops, never an outing.
var excludedKeywords = []string{"Permanently Closed", "ATM", "Petrol", "Parking"}

// PlacesService handles interactions with Google Places API.
type PlacesService struct {
	client   *maps.Client
	language string
}

func NewPlacesService(client *maps.Client, language string) *PlacesService {
	return &PlacesService{client: client, language: language}
}

// SearchNearby finds well-rated open places of a category around a point, nearest first.
func (s *PlacesService) SearchNearby(ctx context.Context, lat, lng float64, category string) ([]Place, error) {
	r := &maps.NearbySearchRequest{
		Location: &maps.LatLng{Lat: lat, Lng: lng},
		Radius:   nearbyRadiusM,
		Language: s.language,
		OpenNow:  true,
	}
	if t, ok := categoryTypes[strings.ToLower(strings.TrimSpace(category))]; ok {
		r.Type = t
	} else {
		r.Keyword = category
	}

	resp, err := s.client.NearbySearch(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("places api error: %w", err)
	}
	origin := types.Point{Lat: lat, Lng: lng}

	results := lo.FilterMap(resp.Results, func(res maps.PlacesSearchResult, _ int) (Place, bool) {
		if res.Rating < minRating {
			return Place{}, false
		}
		for _, kw := range excludedKeywords {
			if containsIgnoreCase(res.Name, kw) {
				return Place{}, false
			}
		}
		addr := res.Vicinity
		if addr == "" {
			addr = res.FormattedAddress
		}
		loc := res.Geometry.Location
		return Place{
			Name:             res.Name,
			Address:          addr,
			Rating:           res.Rating,
			Lat:              loc.Lat,
			Lng:              loc.Lng,
			PlaceID:          res.PlaceID,
			UserRatingsTotal: res.UserRatingsTotal,
			DistanceKm:       location.DistanceKm(origin, types.Point{Lat: loc.Lat, Lng: loc.Lng}),
		}, true
	})
	results = lo.UniqBy(results, func(p Place) string { return p.PlaceID })

	location.SortByDistance(results, func(p Place) float64 { return p.DistanceKm })
	if len(results) > maxPlaces {
		results = results[:maxPlaces]
	}
	return results, nil
}

func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
