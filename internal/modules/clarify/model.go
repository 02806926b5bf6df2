// README: Clarifying-question types and the client-held answer map.
package clarify

// Option is one selectable answer.
type Option struct {
	Label          string `json:"label"`
	Value          string `json:"value"`
	SearchModifier string `json:"search_modifier,omitempty"`
}

// Question is a single follow-up prompt. DependsOn maps another question id to the
// values that must have been chosen for this question to be asked.
type Question struct {
	ID          string              `json:"id"`
	Prompt      string              `json:"question"`
	Options     []Option            `json:"options"`
	DependsOn   map[string][]string `json:"depends_on,omitempty"`
	MultiSelect bool                `json:"multi_select,omitempty"`
}

// Answers is question id -> chosen value. Values are a string or, for multi-select
// questions, a list of strings (decoded JSON may deliver []any).
type Answers map[string]any

// Progress counts how far a walk has come.
type Progress struct {
	Answered int `json:"answered"`
	Total    int `json:"total"`
}

func (q Question) option(value string) (Option, bool) {
	for _, o := range q.Options {
		if o.Value == value {
			return o, true
		}
	}
	return Option{}, false
}

// values flattens an answer into its chosen strings.
func values(v any) []string {
	switch t := v.(type) {
	case string:
		return []string{t}
	case []string:
		return t
	case []any:
		out := make([]string, 0, len(t))
		for _, x := range t {
			if s, ok := x.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
