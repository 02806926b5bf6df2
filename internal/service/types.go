package service

import (
	"errors"

	"travelbuddy/internal/modules/clarify"
	"travelbuddy/internal/types"
)

// ErrBadRequest marks input the pipeline cannot act on; handlers map it to 400.
var ErrBadRequest = errors.New("bad request")

// RequestContext is the client's location and clock hints.
type RequestContext struct {
	Location    string       `json:"location"`
	Coordinates *types.Point `json:"coordinates,omitempty"`
	LocalTime   string       `json:"local_time"`
	LocalHour   *float64     `json:"local_hour,omitempty"`
	Timezone    string       `json:"timezone"`
	Destination string       `json:"destination,omitempty"`
}

type AssistRequest struct {
	Query       string         `json:"query"`
	Context     RequestContext `json:"context"`
	Preferences map[string]any `json:"preferences"`
	UserID      string         `json:"user_id,omitempty"`
}

// PlanRequest is the legacy planner body.
type PlanRequest struct {
	PlanType string         `json:"plan_type"`
	Traveler map[string]any `json:"traveler"`
	Context  RequestContext `json:"context"`
	UserID   string         `json:"user_id,omitempty"`
}

type ClarifyRequest struct {
	Intent        string          `json:"intent"`
	Answers       clarify.Answers `json:"answers"`
	OriginalQuery string          `json:"original_query"`
	Context       RequestContext  `json:"context"`
	Preferences   map[string]any  `json:"preferences"`
	UserID        string          `json:"user_id,omitempty"`
}

type OptionsRequest struct {
	Category    string         `json:"category"`
	Context     RequestContext `json:"context"`
	Preferences map[string]any `json:"preferences"`
	UserID      string         `json:"user_id,omitempty"`
}

type WizardMoviesRequest struct {
	Query       string         `json:"query"`
	Context     RequestContext `json:"context"`
	Preferences map[string]any `json:"preferences"`
	UserID      string         `json:"user_id,omitempty"`
}

// Selection is one choice the client made in a wizard step.
type Selection struct {
	Name        string `json:"name"`
	Time        string `json:"time"`
	Activity    string `json:"activity"`
	Emoji       string `json:"emoji"`
	Details     string `json:"details"`
	GoogleQuery string `json:"google_query"`
}

type WizardItineraryRequest struct {
	Selections []Selection    `json:"selections"`
	Context    RequestContext `json:"context"`
}

type ItineraryRequest struct {
	Query       string         `json:"query"`
	Context     RequestContext `json:"context"`
	Preferences map[string]any `json:"preferences"`
	UserID      string         `json:"user_id,omitempty"`
}
