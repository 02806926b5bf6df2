// README: Envelope check; every response carries a greeting and a closing.
package plan

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

var envelopeSchema = gojsonschema.NewGoLoader(map[string]any{
	"type":     "object",
	"required": []any{"greeting", "closing"},
	"properties": map[string]any{
		"greeting": map[string]any{"type": "string", "minLength": 1},
		"closing":  map[string]any{"type": "string", "minLength": 1},
	},
})

// CheckEnvelope validates the greeting/closing contract.
func CheckEnvelope(p map[string]any) error {
	result, err := gojsonschema.Validate(envelopeSchema, gojsonschema.NewGoLoader(p))
	if err != nil {
		return fmt.Errorf("validation error: %w", err)
	}
	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return fmt.Errorf("envelope validation failed: %v", errs)
	}
	return nil
}

// EnsureEnvelope fills a missing or empty greeting/closing in place and reports
// which keys it repaired.
func EnsureEnvelope(p map[string]any, greeting, closing string) []string {
	if CheckEnvelope(p) == nil {
		return nil
	}
	var repaired []string
	if s, ok := p["greeting"].(string); !ok || s == "" {
		p["greeting"] = greeting
		repaired = append(repaired, "greeting")
	}
	if s, ok := p["closing"].(string); !ok || s == "" {
		p["closing"] = closing
		repaired = append(repaired, "closing")
	}
	return repaired
}
