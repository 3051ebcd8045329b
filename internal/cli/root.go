// Package cli defines the studio command tree. Without a subcommand the
// interactive landing page starts; the subcommands script the storage, check
// page templates and run the mock search.
package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/five82/studio/internal/app"
	"github.com/five82/studio/internal/storage"
)

// App holds the persistent flags shared by every command.
type App struct {
	ConfigPath  string
	StoragePath string
	PagePath    string
	Theme       string
	Debug       bool
	Ephemeral   bool
}

func (a *App) options() app.Options {
	return app.Options{
		ConfigPath:  a.ConfigPath,
		StoragePath: a.StoragePath,
		PagePath:    a.PagePath,
		ThemeName:   a.Theme,
		Debug:       a.Debug,
		Ephemeral:   a.Ephemeral,
	}
}

func NewRootCmd() *cobra.Command {
	a := &App{}

	cmd := &cobra.Command{
		Use:           "studio",
		Short:         "Design anything, from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: strings.TrimSpace(`
  # Start the interactive landing page
  studio

  # Inspect stored data
  studio storage keys
  studio storage get recentDesigns

  # Check a custom page template
  studio --page ./landing.html page check
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(cmd.Context(), a.options())
		},
	}

	cmd.PersistentFlags().StringVar(&a.ConfigPath, "config", envOr("STUDIO_CONFIG", ""), "Config file (default ~/.config/studio/config.toml)")
	cmd.PersistentFlags().StringVar(&a.StoragePath, "storage", envOr("STUDIO_STORAGE", ""), "Storage database path (overrides config)")
	cmd.PersistentFlags().StringVar(&a.PagePath, "page", "", "Page template path (default: embedded landing page)")
	cmd.PersistentFlags().BoolVar(&a.Ephemeral, "ephemeral", false, "Keep storage in memory for this run")
	cmd.Flags().StringVar(&a.Theme, "theme", "", "Theme used when preferences name none (Light, Dark, High Contrast)")
	cmd.Flags().BoolVar(&a.Debug, "debug", false, "Log at debug level")

	cmd.AddCommand(newStorageCmd(a))
	cmd.AddCommand(newPageCmd(a))
	cmd.AddCommand(newSearchCmd())

	return cmd
}

// Execute runs the command tree and returns the process exit code.
func Execute(ctx context.Context, args []string) int {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "studio: %v\n", err)
		return 1
	}
	return 0
}

// openKV resolves the configured storage and opens it.
func openKV(cmd *cobra.Command, a *App) (storage.KV, func() error, error) {
	cfg, err := app.Resolve(a.options())
	if err != nil {
		return nil, nil, err
	}
	return app.OpenStorage(cmd.Context(), cfg.StoragePath, a.Ephemeral)
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}
