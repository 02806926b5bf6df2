// README: User preference record keyed by a client id or device fingerprint.
package preference

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

type Record struct {
	Budget string            `json:"budget,omitempty"`
	Food   string            `json:"food,omitempty"`
	Vibe   string            `json:"vibe,omitempty"`
	Extra  map[string]string `json:"extra,omitempty"`
}

// Merge overlays the non-empty fields of update onto r.
func (r Record) Merge(update Record) Record {
	out := r
	if update.Budget != "" {
		out.Budget = update.Budget
	}
	if update.Food != "" {
		out.Food = update.Food
	}
	if update.Vibe != "" {
		out.Vibe = update.Vibe
	}
	if len(update.Extra) > 0 {
		extra := make(map[string]string, len(r.Extra)+len(update.Extra))
		for k, v := range r.Extra {
			extra[k] = v
		}
		for k, v := range update.Extra {
			extra[k] = v
		}
		out.Extra = extra
	}
	return out
}

// Map flattens the record for prompt rendering.
func (r Record) Map() map[string]string {
	out := make(map[string]string, 3+len(r.Extra))
	for k, v := range r.Extra {
		if v != "" {
			out[k] = v
		}
	}
	if r.Budget != "" {
		out["budget"] = r.Budget
	}
	if r.Food != "" {
		out["food"] = r.Food
	}
	if r.Vibe != "" {
		out["vibe"] = r.Vibe
	}
	return out
}

// FromMap reads a loose client object; unknown keys land in Extra.
func FromMap(m map[string]any) Record {
	var r Record
	for k, v := range m {
		s, ok := text(v)
		if !ok {
			continue
		}
		switch strings.ToLower(k) {
		case "budget":
			r.Budget = s
		case "food":
			r.Food = s
		case "vibe":
			r.Vibe = s
		default:
			if r.Extra == nil {
				r.Extra = map[string]string{}
			}
			r.Extra[k] = s
		}
	}
	return r
}

// text renders a client value as prompt text. Lists are comma-joined; nulls are skipped.
func text(v any) (string, bool) {
	switch t := v.(type) {
	case nil:
		return "", false
	case string:
		return t, true
	case []string:
		return strings.Join(t, ", "), true
	case []any:
		parts := make([]string, 0, len(t))
		for _, e := range t {
			if e != nil {
				parts = append(parts, fmt.Sprint(e))
			}
		}
		return strings.Join(parts, ", "), true
	default:
		return fmt.Sprint(t), true
	}
}

// Fingerprint derives a stable id from request headers when the client sends none.
func Fingerprint(userAgent, acceptLanguage, ip string) string {
	sum := sha256.Sum256([]byte(userAgent + "|" + acceptLanguage + "|" + ip))
	return hex.EncodeToString(sum[:])[:16]
}
