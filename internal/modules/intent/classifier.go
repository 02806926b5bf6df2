// README: Keyword intent classifier; total over all inputs, never returns an empty list.
package intent

import (
	"math"
	"sort"
	"strings"
)

const (
	baseConfidence    = 0.3
	perHitConfidence  = 0.2
	maxConfidence     = 0.9
	defaultConfidence = 0.5
)

// Detect scores every catalog entry by case-insensitive keyword hits and returns the
// matches ordered by descending confidence. Equal scores keep catalog order.
func Detect(text string) []Detected {
	lower := strings.ToLower(text)

	var out []Detected
	for _, def := range catalog {
		hits := 0
		for _, kw := range def.Keywords {
			if strings.Contains(lower, kw) {
				hits++
			}
		}
		if hits == 0 {
			continue
		}
		out = append(out, detected(def, confidence(hits)))
	}

	if len(out) == 0 {
		def, _ := Lookup(Explore)
		return []Detected{detected(def, defaultConfidence)}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Confidence > out[j].Confidence
	})
	return out
}

// Primary returns the highest-confidence detection.
func Primary(text string) Detected {
	return Detect(text)[0]
}

func confidence(hits int) float64 {
	c := math.Min(maxConfidence, baseConfidence+perHitConfidence*float64(hits))
	// keep scores at one decimal so 0.3+0.2*n compares exactly
	return math.Round(c*10) / 10
}

func detected(def Definition, conf float64) Detected {
	chain := make([]string, len(def.Chain))
	copy(chain, def.Chain)
	return Detected{
		Label:           def.Label,
		Confidence:      conf,
		Emoji:           def.Emoji,
		Chain:           chain,
		DurationMinutes: def.DurationMinutes,
	}
}
