package domain

import (
	"context"
	"time"
)

// CommandSuggestion is the validated two-field contract returned by the
// model. Any suggestion that reaches the presenter satisfies this shape.
type CommandSuggestion struct {
	Command     string `json:"command"`
	Description string `json:"description"`
}

// SuggestionRequest captures user intent originating from the CLI.
type SuggestionRequest struct {
	Context         context.Context
	Query           string
	ModelOverride   string
	Timeout         time.Duration
	CopyToClipboard bool
	RecordHistory   bool
	Debug           bool
}

// SuggestionResponse is the canonical response propagated back to the CLI.
type SuggestionResponse struct {
	Suggestion  CommandSuggestion
	Model       string
	Environment EnvironmentDescriptor
	RawPayload  string
}

// SuggestionService exposes the use-case boundary for handling a query.
type SuggestionService interface {
	Run(SuggestionRequest) (SuggestionResponse, error)
}
