package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/doeshing/gask-go/internal/app"
	"github.com/doeshing/gask-go/internal/domain"
)

// NewConfigCommand creates the config command with its subcommands.
func NewConfigCommand(container *app.Container) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect Gask configuration",
	}

	configCmd.AddCommand(
		newConfigShowCommand(container),
		newConfigPathCommand(container),
	)

	return configCmd
}

func newConfigShowCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := container.ConfigLoader.Load(cmd.Context())
			if err != nil {
				return err
			}
			return renderEffectiveConfig(cmd.OutOrStdout(), cfg)
		},
	}
}

func newConfigPathCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Show which configuration file is in use",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, found := container.ConfigLoader.ResolvePath()
			if !found {
				return domain.ConfigurationError("Configuration file not found", nil)
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}

// effectiveConfig is the YAML view printed by `gask config show`. The API
// key is always redacted.
type effectiveConfig struct {
	APIKey         string `yaml:"api_key"`
	ModelName      string `yaml:"model_name"`
	Endpoint       string `yaml:"endpoint"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	HistoryEnabled bool   `yaml:"history_enabled"`
	SourcePath     string `yaml:"source_path"`
}

func renderEffectiveConfig(out io.Writer, cfg domain.Config) error {
	view := effectiveConfig{
		APIKey:         redactKey(cfg.APIKey),
		ModelName:      cfg.ModelName,
		Endpoint:       cfg.Endpoint,
		TimeoutSeconds: cfg.TimeoutSeconds,
		HistoryEnabled: cfg.HistoryEnabled,
		SourcePath:     cfg.SourcePath,
	}
	raw, err := yaml.Marshal(view)
	if err != nil {
		return err
	}
	_, err = out.Write(raw)
	return err
}

func redactKey(key string) string {
	if len(key) <= 4 {
		return "****"
	}
	return key[:4] + "****"
}
