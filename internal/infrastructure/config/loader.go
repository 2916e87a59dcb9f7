package config

import (
	"context"
	"os"
	"path/filepath"

	"gopkg.in/ini.v1"

	"github.com/doeshing/gask-go/internal/domain"
	"github.com/doeshing/gask-go/internal/ports"
)

const msgInvalidAPIKey = "Invalid API_KEY. Please set a valid API key in your configuration file (~/.gask.conf)."

// FileLoader loads INI configuration from the first existing candidate:
// an explicit path (constructor or GASK_CONFIG), the file next to the
// executable, then ~/.gask.conf.
type FileLoader struct {
	overridePath string
	placeholders []string
}

// NewFileLoader builds a new loader. Placeholder API keys are rejected at
// load time; the rejected set defaults to the documented sample value.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{
		overridePath: path,
		placeholders: []string{domain.PlaceholderAPIKey},
	}
}

// SetOverridePath points the loader at an explicit config file. An empty
// path restores the default search order.
func (l *FileLoader) SetOverridePath(path string) {
	l.overridePath = path
}

// WithPlaceholders replaces the set of API key values treated as unset.
func (l *FileLoader) WithPlaceholders(values ...string) *FileLoader {
	l.placeholders = values
	return l
}

// Load implements ports.ConfigProvider.
func (l *FileLoader) Load(context.Context) (domain.Config, error) {
	path, found := l.ResolvePath()
	if !found {
		return domain.Config{}, domain.ConfigurationError("Configuration file not found", nil)
	}

	file, err := ini.Load(path)
	if err != nil {
		return domain.Config{}, domain.ConfigurationError("Configuration file could not be parsed", err)
	}

	section := file.Section(ini.DefaultSection)
	cfg := domain.Config{
		APIKey:         section.Key("API_KEY").String(),
		ModelName:      section.Key("MODEL_NAME").MustString(domain.DefaultModelName),
		Endpoint:       section.Key("ENDPOINT").MustString(domain.DefaultEndpoint),
		TimeoutSeconds: section.Key("TIMEOUT").MustInt(domain.DefaultTimeoutSeconds),
		HistoryEnabled: section.Key("HISTORY").MustBool(true),
		SourcePath:     path,
	}

	if err := l.validateAPIKey(cfg.APIKey); err != nil {
		return domain.Config{}, err
	}
	return cfg, nil
}

// ResolvePath returns the config file that Load would read and whether any
// candidate exists.
func (l *FileLoader) ResolvePath() (string, bool) {
	for _, candidate := range l.candidates() {
		if candidate == "" {
			continue
		}
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}
	return "", false
}

// DefaultPath is where `gask init` writes a new config file.
func (l *FileLoader) DefaultPath() string {
	if l.overridePath != "" {
		return expandPath(l.overridePath)
	}
	return filepath.Join(userHomeDir(), domain.ConfigFileName)
}

func (l *FileLoader) candidates() []string {
	var paths []string
	if l.overridePath != "" {
		paths = append(paths, expandPath(l.overridePath))
	}
	if custom := os.Getenv("GASK_CONFIG"); custom != "" {
		paths = append(paths, expandPath(custom))
	}
	if exe, err := os.Executable(); err == nil {
		paths = append(paths, filepath.Join(filepath.Dir(exe), domain.ConfigFileName))
	}
	paths = append(paths, filepath.Join(userHomeDir(), domain.ConfigFileName))
	return paths
}

func (l *FileLoader) validateAPIKey(key string) error {
	if key == "" {
		return domain.ConfigurationError(msgInvalidAPIKey, nil)
	}
	for _, placeholder := range l.placeholders {
		if key == placeholder {
			return domain.ConfigurationError(msgInvalidAPIKey, nil)
		}
	}
	return nil
}

func expandPath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if len(path) > 1 && path[:2] == "~/" {
		return filepath.Join(userHomeDir(), path[2:])
	}
	return filepath.Clean(path)
}

func userHomeDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "."
}

var _ ports.ConfigProvider = (*FileLoader)(nil)
