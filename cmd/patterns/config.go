// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"patterns-cli/internal/config"
	"patterns-cli/internal/issue"
	"patterns-cli/pkg/cueutil"

	"github.com/spf13/cobra"
)

// configErrorsAnnotation marks commands that return configuration load
// failures as their own error.
const configErrorsAnnotation = "patterns.config-errors"

// newConfigCommand creates the `patterns config` command tree.
// Subcommands that read configuration use the App's ConfigProvider.
func newConfigCommand(app *App) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:         "config",
		Short:       "Manage patterns configuration",
		Annotations: map[string]string{configErrorsAnnotation: "true"},
		Long: `Manage patterns configuration.

Configuration is stored in:
  - Linux: ~/.config/patterns/config.cue
  - macOS: ~/Library/Application Support/patterns/config.cue
  - Windows: %APPDATA%\patterns\config.cue

Environment variables override the file: PATTERNS_DEFAULT_VARIANT,
PATTERNS_UI_COLOR_SCHEME, PATTERNS_UI_VERBOSE, PATTERNS_LESSON_STYLE and
PATTERNS_LESSON_WIDTH.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(cmd.Context(), app)
		},
	})

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(app.stdout, force)
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing configuration file")
	cfgCmd.AddCommand(initCmd)

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfigPath(app)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Output effective configuration as CUE",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := app.loadConfig(cmd.Context())
			if err != nil {
				return newServiceError(err, configIssueID(err), "")
			}

			fmt.Fprint(app.stdout, config.GenerateCUE(cfg))
			return nil
		},
	})

	return cfgCmd
}

func showConfig(ctx context.Context, app *App) error {
	cfg, path, err := app.loadConfig(ctx)
	if err != nil {
		return newServiceError(err, configIssueID(err), "")
	}

	// Style definitions using shared color palette
	headerStyle := TitleStyle
	keyStyle := CmdStyle
	valueStyle := SuccessStyle

	w := app.stdout
	fmt.Fprintln(w, headerStyle.Render("Current Configuration"))
	fmt.Fprintln(w)

	if path != "" {
		fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("Config file"), path)
	} else {
		fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("default_variant"), valueStyle.Render(cfg.DefaultVariant.String()))

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s:\n", keyStyle.Render("ui"))
	fmt.Fprintf(w, "  color_scheme: %s\n", valueStyle.Render(cfg.UI.ColorScheme.String()))
	fmt.Fprintf(w, "  verbose: %s\n", valueStyle.Render(strconv.FormatBool(cfg.UI.Verbose)))

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s:\n", keyStyle.Render("lesson"))
	fmt.Fprintf(w, "  style: %s\n", valueStyle.Render(cfg.Lesson.Style.String()))
	fmt.Fprintf(w, "  width: %s\n", valueStyle.Render(strconv.Itoa(cfg.Lesson.Width)))

	return nil
}

func initConfig(w io.Writer, force bool) error {
	path, created, err := config.CreateDefaultConfig(force)
	if err != nil {
		return fmt.Errorf("failed to create config: %w", err)
	}

	if !created {
		fmt.Fprintf(w, "%s Configuration already exists at %s (use --force to overwrite)\n", WarningStyle.Render("!"), path)
		return nil
	}

	fmt.Fprintf(w, "%s Created default configuration at %s\n", SuccessStyle.Render("✓"), path)
	return nil
}

func showConfigPath(app *App) error {
	cfgDir, err := config.ConfigDir()
	if err != nil {
		return err
	}

	path, exists, err := config.ConfigFilePath(app.loadOptions())
	if err != nil {
		return err
	}

	fmt.Fprintf(app.stdout, "Config directory: %s\n", cfgDir)
	if exists {
		fmt.Fprintf(app.stdout, "Config file: %s\n", path)
	} else {
		fmt.Fprintf(app.stdout, "Config file: %s %s\n", path, SubtitleStyle.Render("(not created)"))
	}

	return nil
}

// configIssueID picks the catalog entry for a configuration load failure.
func configIssueID(err error) issue.Id {
	var validationErr *cueutil.ValidationError
	if errors.Is(err, config.ErrInvalidConfig) || errors.As(err, &validationErr) {
		return issue.ConfigParseErrorId
	}
	return issue.ConfigLoadFailedId
}
