package domain

// Config mirrors the INI configuration file (.gask.conf).
type Config struct {
	APIKey         string
	ModelName      string
	Endpoint       string
	TimeoutSeconds int
	HistoryEnabled bool

	// SourcePath records which candidate file the configuration was read from.
	SourcePath string
}

// Default configuration values applied when the file omits a key.
const (
	DefaultModelName      = "gemini-1.5-flash"
	DefaultEndpoint       = "https://generativelanguage.googleapis.com"
	DefaultTimeoutSeconds = 600
)

// PlaceholderAPIKey is the documented placeholder shipped in sample configs.
// A key equal to a placeholder is rejected the same as a missing key.
const PlaceholderAPIKey = "your_google_api_key_here"
