package cli

import (
	"context"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/doeshing/gask-go/internal/app"
	"github.com/doeshing/gask-go/internal/domain"
	"github.com/doeshing/gask-go/internal/infrastructure/cli/commands"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
}

// NewRootCmd wires the cobra root command.
func NewRootCmd(ctx context.Context, opts Options) *cobra.Command {
	container := app.BuildContainer(ctx, opts.Verbose)
	return newRootCmd(container, opts)
}

func newRootCmd(container *app.Container, opts Options) *cobra.Command {
	container.SuggestService.Clipboard = NewClipboard()

	var (
		desc       bool
		copyCmd    bool
		model      string
		timeout    time.Duration
		configPath string
		noHistory  bool
	)

	root := &cobra.Command{
		Use:   "gask [query]",
		Short: "Gask - command suggestions powered by Google AI Studio",
		Long: `Gask translates a natural-language query into a single shell command
plus a short description, using the Google Generative Language API.
The suggested command targets your detected OS, terminal, and shell.`,
		Args: cobra.ArbitraryArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if configPath != "" {
				container.ConfigLoader.SetOverridePath(configPath)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				if desc {
					return domain.UsageError("Description requested without a query. Please provide a query.")
				}
				return cmd.Help()
			}

			req := domain.SuggestionRequest{
				Context:         cmd.Context(),
				Query:           strings.Join(args, " "),
				ModelOverride:   model,
				Timeout:         timeout,
				CopyToClipboard: copyCmd,
				RecordHistory:   !noHistory,
				Debug:           opts.Verbose,
			}
			resp, err := container.SuggestService.Run(req)
			if err != nil {
				return err
			}
			RenderSuggestion(cmd.OutOrStdout(), resp.Suggestion, desc)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.Flags().BoolVarP(&desc, "desc", "d", false, "Also print the description of the suggested command")
	root.Flags().BoolVar(&desc, "description", false, "Alias for --desc")
	_ = root.Flags().MarkHidden("description")
	root.Flags().BoolVarP(&copyCmd, "copy", "c", false, "Copy the suggested command to the clipboard")
	root.Flags().StringVarP(&model, "model", "m", "", "Override model name (default from config)")
	root.Flags().DurationVar(&timeout, "timeout", 0, "Override request timeout (default from config)")
	root.PersistentFlags().StringVar(&configPath, "config", "", "Explicit configuration file path")
	root.Flags().BoolVar(&noHistory, "no-history", false, "Do not record this suggestion in history")

	root.AddCommand(commands.NewInitCommand(container))
	root.AddCommand(commands.NewConfigCommand(container))
	root.AddCommand(commands.NewHistoryCommand(container))
	root.AddCommand(commands.NewVersionCommand())
	return root
}
