// README: Location resolver; trip destination, then reverse geocode, then free text, then the default city.
package location

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"travelbuddy/internal/types"
)

const PlanTypeTrip = "TRIP"

var placeholderWords = []string{"found", "location"}

// Address holds the reverse-geocoded components the resolver cares about.
type Address struct {
	City   string
	Town   string
	Suburb string
	State  string
}

// Geocoder turns coordinates into address components.
type Geocoder interface {
	ReverseGeocode(ctx context.Context, lat, lng float64) (Address, error)
}

// Request carries every location hint a client may send.
type Request struct {
	PlanType    string
	Destination string
	Coordinates *types.Point
	Location    string
}

type Resolver struct {
	geocoder    Geocoder
	timeout     time.Duration
	defaultCity string
	log         *zap.Logger
}

// NewResolver builds a resolver. geocoder may be nil when reverse geocoding is disabled.
func NewResolver(geocoder Geocoder, timeout time.Duration, defaultCity string, log *zap.Logger) *Resolver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Resolver{geocoder: geocoder, timeout: timeout, defaultCity: defaultCity, log: log}
}

// Resolve never fails and never returns an empty string.
func (r *Resolver) Resolve(ctx context.Context, req Request) string {
	if strings.EqualFold(strings.TrimSpace(req.PlanType), PlanTypeTrip) {
		dest := strings.TrimSpace(req.Destination)
		if len(dest) > 2 && !IsPlaceholder(dest) {
			return dest
		}
	}

	if req.Coordinates != nil && !req.Coordinates.IsZero() && r.geocoder != nil {
		if city := r.reverse(ctx, *req.Coordinates); city != "" {
			return city
		}
	}

	if loc := strings.TrimSpace(req.Location); loc != "" && !IsPlaceholder(loc) {
		return loc
	}

	return r.defaultCity
}

func (r *Resolver) reverse(ctx context.Context, p types.Point) string {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	addr, err := r.geocoder.ReverseGeocode(ctx, p.Lat, p.Lng)
	if err != nil {
		r.log.Warn("reverse geocode failed", zap.Error(err), zap.Float64("lat", p.Lat), zap.Float64("lng", p.Lng))
		return ""
	}
	for _, c := range []string{addr.City, addr.Town, addr.Suburb, addr.State} {
		if c = strings.TrimSpace(c); c != "" {
			return c
		}
	}
	return ""
}

// IsPlaceholder reports UI strings such as "Location Found" that are not a place.
func IsPlaceholder(s string) bool {
	lower := strings.ToLower(s)
	for _, w := range placeholderWords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}
