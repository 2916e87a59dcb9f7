package commands

import (
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/doeshing/gask-go/internal/app"
	"github.com/doeshing/gask-go/internal/domain"
	"github.com/doeshing/gask-go/internal/infrastructure/config"
)

// NewInitCommand creates the init command to bootstrap a configuration
// file. The wizard asks for the API key and model and writes ~/.gask.conf
// with owner-only permissions.
func NewInitCommand(container *app.Container) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a Gask configuration file",
		Long: `Create the Gask configuration file interactively.

The wizard asks for your Google AI Studio API key and the model to use,
then writes ~/.gask.conf. Use --config on the root command or the
GASK_CONFIG environment variable to store the file elsewhere.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInitWizard(cmd, container, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")

	return cmd
}

func runInitWizard(cmd *cobra.Command, container *app.Container, force bool) error {
	path := container.ConfigLoader.DefaultPath()

	if !force {
		if _, err := os.Stat(path); err == nil {
			return domain.UsageError(fmt.Sprintf("Config file %s already exists. Re-run with --force to overwrite.", path))
		}
	}

	var apiKey string
	if err := survey.AskOne(&survey.Password{
		Message: "Google AI Studio API key:",
	}, &apiKey, survey.WithValidator(survey.Required)); err != nil {
		return err
	}

	model := domain.DefaultModelName
	if err := survey.AskOne(&survey.Input{
		Message: "Model name:",
		Default: domain.DefaultModelName,
	}, &model); err != nil {
		return err
	}

	cfg := domain.Config{
		APIKey:         apiKey,
		ModelName:      model,
		HistoryEnabled: true,
	}
	if err := config.Write(path, cfg); err != nil {
		return domain.ConfigurationError("Could not write the configuration file", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Configuration written to %s\n", path)
	return nil
}
