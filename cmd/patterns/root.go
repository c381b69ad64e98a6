// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"patterns-cli/internal/config"
	"patterns-cli/internal/issue"
	"patterns-cli/internal/logging"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// NewRootCommand builds the command tree bound to app.
func NewRootCommand(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "patterns",
		Short: "Small Go idioms you can run",
		Long: TitleStyle.Render("patterns") + SubtitleStyle.Render(" - Small Go idioms you can run") + `

patterns replays light-switch scripts against three state machine designs:
a naive runtime-checked light, a zero-width marker typestate, and a typestate
whose On state carries the intensity. It also demonstrates block-scoped
config loading, builders for optional fields and methods on defined types.

` + SubtitleStyle.Render("Examples:") + `
  patterns light toggle set 200 get     Replay ops on the default variant
  patterns light compare toggle get     Replay ops on every variant
  patterns block shed.toml              Load and describe a block config
  patterns explain typestate            Read the typestate lesson
  patterns config show                  Show current configuration`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			app.initRootConfig(cmd)
			return nil
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&app.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&app.configPath, "config", "", "config file (default is $HOME/.config/patterns/config.cue)")

	rootCmd.AddCommand(newLightCommand(app))
	rootCmd.AddCommand(newBlockCommand(app))
	rootCmd.AddCommand(newPersonCommand(app))
	rootCmd.AddCommand(newShoutCommand(app))
	rootCmd.AddCommand(newFactorialCommand(app))
	rootCmd.AddCommand(newExplainCommand(app))
	rootCmd.AddCommand(newConfigCommand(app))

	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute builds the production App and runs the command tree.
// This is called by main.main().
func Execute() {
	app := NewApp(Dependencies{})
	rootCmd := NewRootCommand(app)

	// fang overrides rootCmd.Version, so the version goes through fang.WithVersion.
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(func(w io.Writer, _ fang.Styles, err error) {
			app.renderError(w, err)
		}),
	); err != nil {
		os.Exit(int(exitCodeOf(err)))
	}
}

// initRootConfig loads the config file and environment overrides, then sets up
// logging and the color scheme. A broken config is reported as a warning and
// the defaults are used so that commands keep working. Commands annotated with
// configErrorsAnnotation report the failure themselves and get no warning.
func (a *App) initRootConfig(cmd *cobra.Command) {
	cfg, path, err := a.loadConfig(cmd.Context())
	if err != nil {
		if !reportsConfigErrors(cmd) {
			fmt.Fprintln(a.stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, a.verbose))
		}
		cfg = config.DefaultConfig()
	}
	a.settings = cfg

	// Apply verbose from config if not set via flag
	if !a.verbose {
		a.verbose = cfg.UI.Verbose
	}

	logging.Setup(a.stderr, a.verbose)
	applyColorScheme(cfg.UI.ColorScheme)

	slog.Debug("configuration loaded", "path", path, "default_variant", cfg.DefaultVariant)
}

// reportsConfigErrors reports whether cmd or one of its parents carries
// configErrorsAnnotation.
func reportsConfigErrors(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if _, ok := c.Annotations[configErrorsAnnotation]; ok {
			return true
		}
	}
	return false
}

// applyColorScheme pins lipgloss adaptive colors when the scheme is not auto.
func applyColorScheme(scheme config.ColorScheme) {
	switch scheme {
	case config.ColorSchemeDark:
		lipgloss.SetHasDarkBackground(true)
	case config.ColorSchemeLight:
		lipgloss.SetHasDarkBackground(false)
	}
}

// renderError writes err for the user: the issue catalog entry of a
// ServiceError, then the error text.
func (a *App) renderError(w io.Writer, err error) {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		renderServiceError(w, svcErr, a.issueStyle())
	}
	fmt.Fprintln(w, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, a.verbose))
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
