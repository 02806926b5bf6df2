// README: Local clock for a request; client time, then coordinate or client timezone, then server time.
package location

import (
	"fmt"
	"strings"
	"time"

	"travelbuddy/internal/types"
)

// TimezoneFinder maps coordinates to an IANA zone name (tzf.F satisfies it).
type TimezoneFinder interface {
	GetTimezoneName(lng, lat float64) string
}

// ClockRequest is the client's view of its own time.
type ClockRequest struct {
	LocalTime   string
	LocalHour   *float64
	Timezone    string
	Coordinates *types.Point
}

// LocalTime is the resolved wall clock for one request.
type LocalTime struct {
	Date     time.Time
	Hour     float64
	Display  string
	Timezone string
}

type Clock struct {
	finder    TimezoneFinder
	defaultTZ string
	now       func() time.Time
}

// NewClock builds a clock; finder may be nil.
func NewClock(finder TimezoneFinder, defaultTZ string, now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}
	return &Clock{finder: finder, defaultTZ: defaultTZ, now: now}
}

var clockLayouts = []string{"15:04", "15:04:05", "3:04 PM", "3:04PM", "3:04 pm", "3PM", "3 PM"}

func (c *Clock) Local(req ClockRequest) LocalTime {
	tz := strings.TrimSpace(req.Timezone)
	if tz == "" && req.Coordinates != nil && !req.Coordinates.IsZero() && c.finder != nil {
		tz = c.finder.GetTimezoneName(req.Coordinates.Lng, req.Coordinates.Lat)
	}
	if tz == "" {
		tz = c.defaultTZ
	}

	now := c.now()
	if loc, err := time.LoadLocation(tz); err == nil {
		now = now.In(loc)
	} else {
		tz = now.Location().String()
	}

	out := LocalTime{
		Date:     now,
		Hour:     float64(now.Hour()) + float64(now.Minute())/60,
		Display:  now.Format("15:04"),
		Timezone: tz,
	}

	if t, ok := parseClock(req.LocalTime); ok {
		out.Hour = float64(t.Hour()) + float64(t.Minute())/60
		out.Display = t.Format("15:04")
	}
	if req.LocalHour != nil && *req.LocalHour >= 0 && *req.LocalHour < 24 {
		if _, ok := parseClock(req.LocalTime); !ok {
			out.Display = formatHour(*req.LocalHour)
		}
		out.Hour = *req.LocalHour
	}
	return out
}

// Tomorrow moves the clock to the given hour of the next day.
func (lt LocalTime) Tomorrow(hour int) LocalTime {
	next := lt.Date.AddDate(0, 0, 1)
	lt.Date = time.Date(next.Year(), next.Month(), next.Day(), hour, 0, 0, 0, next.Location())
	lt.Hour = float64(hour)
	lt.Display = formatHour(float64(hour))
	return lt
}

func parseClock(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func formatHour(h float64) string {
	whole := int(h)
	return fmt.Sprintf("%02d:%02d", whole, int((h-float64(whole))*60))
}
