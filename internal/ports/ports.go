// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// This package establishes the contract between the application core and
// external adapters (infrastructure). The application depends on these
// abstractions, never on a concrete HTTP client, config parser, or database.
package ports

import (
	"context"
	"time"

	"github.com/doeshing/gask-go/internal/domain"
)

// ConfigProvider loads the configuration from the first existing candidate
// file. Implementations typically read an INI file such as ~/.gask.conf.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// EnvironmentProbe produces the host environment descriptor embedded into
// prompts. Implementations are platform-specific and selected at startup.
// Probing never fails: unresolvable details degrade to "Unknown".
type EnvironmentProbe interface {
	Describe(context.Context) domain.EnvironmentDescriptor
}

// GenerationRequest contains all data needed for one generation call.
type GenerationRequest struct {
	Query       string
	Environment domain.EnvironmentDescriptor
	Model       string
	APIKey      string
	Endpoint    string
	Timeout     time.Duration
}

// GenerativeTextClient submits a prompt to a hosted generative-text
// endpoint and returns the raw text payload of the first candidate. The
// payload is untrusted model output; callers must validate it before use.
type GenerativeTextClient interface {
	Generate(context.Context, GenerationRequest) (string, error)
}

// HistoryRepository persists validated suggestions across invocations.
type HistoryRepository interface {
	Save(domain.HistoryRecord) error
	Records(limit int, search string) ([]domain.HistoryRecord, error)
	Clear() error
	ExportJSON(dest string) error
	Path() string
}

// Clipboard provides cross-platform clipboard integration for copying
// commands without manually selecting text.
type Clipboard interface {
	Copy(text string) error
	Enabled() bool
}

// Logger provides structured logging abstraction for the application layer.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
