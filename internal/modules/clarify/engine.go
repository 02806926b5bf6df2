// README: Forward-only clarification walk over the question bank.
package clarify

import (
	"slices"

	"travelbuddy/internal/modules/intent"
)

// Next returns the first question that is neither answered nor blocked by an
// unsatisfied dependency. ok is false when the walk is complete.
func Next(label intent.Label, answers Answers) (*Question, bool) {
	for _, q := range Questions(label) {
		if _, answered := answers[q.ID]; answered {
			continue
		}
		if !dependenciesMet(q, answers) {
			continue
		}
		return &q, true
	}
	return nil, false
}

// IsComplete reports that no further question would be asked.
func IsComplete(label intent.Label, answers Answers) bool {
	_, ok := Next(label, answers)
	return !ok
}

// ProgressOf reports answered questions against the questions still reachable. A
// question is dropped from the total only when a dependency is answered with a
// value it does not allow.
func ProgressOf(label intent.Label, answers Answers) Progress {
	var p Progress
	for _, q := range Questions(label) {
		if _, answered := answers[q.ID]; answered {
			p.Answered++
			p.Total++
			continue
		}
		if blocked(q, answers) {
			continue
		}
		p.Total++
	}
	return p
}

// SearchModifiers collects the search modifiers of every chosen option in bank order.
func SearchModifiers(label intent.Label, answers Answers) []string {
	var out []string
	for _, q := range Questions(label) {
		for _, v := range values(answers[q.ID]) {
			if o, ok := q.option(v); ok && o.SearchModifier != "" {
				out = append(out, o.SearchModifier)
			}
		}
	}
	return out
}

// Sanitize keeps only answers to known questions whose values are declared
// options. Multi-select answers keep their valid values; an answer left with
// none is dropped so the question is asked again.
func Sanitize(label intent.Label, answers Answers) Answers {
	out := make(Answers, len(answers))
	for _, q := range Questions(label) {
		raw, ok := answers[q.ID]
		if !ok {
			continue
		}
		var valid []string
		for _, v := range values(raw) {
			if _, known := q.option(v); known {
				valid = append(valid, v)
			}
		}
		switch {
		case len(valid) == 0:
		case q.MultiSelect:
			out[q.ID] = valid
		default:
			out[q.ID] = valid[0]
		}
	}
	return out
}

func dependenciesMet(q Question, answers Answers) bool {
	for dep, allowed := range q.DependsOn {
		if !anyAllowed(answers[dep], allowed) {
			return false
		}
	}
	return true
}

func blocked(q Question, answers Answers) bool {
	for dep, allowed := range q.DependsOn {
		v, answered := answers[dep]
		if answered && !anyAllowed(v, allowed) {
			return true
		}
	}
	return false
}

func anyAllowed(v any, allowed []string) bool {
	for _, s := range values(v) {
		if slices.Contains(allowed, s) {
			return true
		}
	}
	return false
}
