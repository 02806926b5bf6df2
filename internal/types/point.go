// README: Common coordinate value object used across modules.
package types

type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// IsZero reports whether the point carries no coordinates.
func (p Point) IsZero() bool {
	return p.Lat == 0 && p.Lng == 0
}
