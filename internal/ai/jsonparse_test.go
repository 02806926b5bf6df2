package ai

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseModelOutput(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want any
	}{
		{"direct", `{"a":1}`, map[string]any{"a": float64(1)}},
		{"padded", "  \n{\"a\":1}\n ", map[string]any{"a": float64(1)}},
		{"fenced json", "```json\n{\"a\":1}\n```", map[string]any{"a": float64(1)}},
		{"fenced bare", "Here you go:\n```\n{\"a\":1}\n```\nEnjoy", map[string]any{"a": float64(1)}},
		{"brace scan", `garbage {"a":1} trailing junk`, map[string]any{"a": float64(1)}},
		{"array", `[1,2]`, []any{float64(1), float64(2)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseModelOutput(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseModelOutput_Failures(t *testing.T) {
	for _, raw := range []string{"", "not json at all", "{broken", "} backwards {", "```json\n{nope}\n```"} {
		_, err := ParseModelOutput(raw)
		assert.True(t, errors.Is(err, ErrParse), "raw %q", raw)
	}
}

func TestParseObject(t *testing.T) {
	obj, err := ParseObject("```json\n{\"greeting\":\"hi\"}\n```")
	require.NoError(t, err)
	assert.Equal(t, "hi", obj["greeting"])

	_, err = ParseObject("[1,2,3]")
	assert.ErrorIs(t, err, ErrParse)
}
