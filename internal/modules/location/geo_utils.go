package location

import (
	"cmp"
	"math"
	"slices"

	"travelbuddy/internal/types"
)

const earthRadiusKm = 6371.0

// DistanceKm is the great-circle (haversine) distance between two points.
func DistanceKm(from, to types.Point) float64 {
	rad := func(deg float64) float64 { return deg * math.Pi / 180 }

	dLat := rad(to.Lat - from.Lat)
	dLng := rad(to.Lng - from.Lng)
	h := math.Pow(math.Sin(dLat/2), 2) +
		math.Cos(rad(from.Lat))*math.Cos(rad(to.Lat))*math.Pow(math.Sin(dLng/2), 2)

	return 2 * earthRadiusKm * math.Asin(math.Min(1, math.Sqrt(h)))
}

// SortByDistance orders items nearest-first; ties keep their input order.
func SortByDistance[T any](items []T, km func(T) float64) {
	slices.SortStableFunc(items, func(a, b T) int { return cmp.Compare(km(a), km(b)) })
}
