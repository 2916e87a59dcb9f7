package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/ini.v1"

	"github.com/doeshing/gask-go/internal/domain"
)

// Write persists cfg as an INI file at path. The file is created with
// owner-only permissions since it holds the API key.
func Write(path string, cfg domain.Config) error {
	file := ini.Empty()
	section := file.Section(ini.DefaultSection)
	section.Key("API_KEY").SetValue(cfg.APIKey)
	section.Key("MODEL_NAME").SetValue(cfg.ModelName)
	if cfg.Endpoint != "" && cfg.Endpoint != domain.DefaultEndpoint {
		section.Key("ENDPOINT").SetValue(cfg.Endpoint)
	}
	if cfg.TimeoutSeconds > 0 && cfg.TimeoutSeconds != domain.DefaultTimeoutSeconds {
		section.Key("TIMEOUT").SetValue(strconv.Itoa(cfg.TimeoutSeconds))
	}
	if !cfg.HistoryEnabled {
		section.Key("HISTORY").SetValue("false")
	}

	var buf bytes.Buffer
	if _, err := file.WriteTo(&buf); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), domain.SecureFilePermissions)
}
