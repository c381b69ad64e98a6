// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"io"
	"os"

	"patterns-cli/internal/config"
)

type (
	// App wires CLI services and shared dependencies. It is the composition root
	// for the CLI layer: every Cobra handler receives an App reference and reads
	// configuration through its ConfigProvider.
	App struct {
		Config ConfigProvider
		stdout io.Writer
		stderr io.Writer

		// configPath is the --config flag value.
		configPath string
		// verbose is the --verbose flag value, or ui.verbose when the flag is unset.
		verbose bool
		// settings is the configuration loaded by the root pre-run hook.
		settings *config.Config
	}

	// Dependencies defines the injection points for building an App. Nil fields are
	// replaced with production defaults by NewApp.
	Dependencies struct {
		Config ConfigProvider
		Stdout io.Writer
		Stderr io.Writer
	}

	// ConfigProvider loads configuration using explicit options.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.Config, error)
	}
)

// NewApp creates an App with defaults for omitted dependencies.
func NewApp(deps Dependencies) *App {
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}

	return &App{
		Config: deps.Config,
		stdout: deps.Stdout,
		stderr: deps.Stderr,
	}
}

// loadOptions maps global flags to config loading options.
func (a *App) loadOptions() config.LoadOptions {
	return config.LoadOptions{ConfigFilePath: a.configPath}
}

// loadConfig loads configuration, also returning the source file when the
// provider can report it.
func (a *App) loadConfig(ctx context.Context) (*config.Config, string, error) {
	if src, ok := a.Config.(config.Source); ok {
		return src.LoadWithSource(ctx, a.loadOptions())
	}
	cfg, err := a.Config.Load(ctx, a.loadOptions())
	return cfg, "", err
}

// Settings returns the configuration loaded for this invocation, or the
// defaults when none has been loaded.
func (a *App) Settings() *config.Config {
	if a.settings == nil {
		return config.DefaultConfig()
	}
	return a.settings
}

// issueStyle is the glamour style used for issue catalog entries.
func (a *App) issueStyle() string {
	switch a.Settings().UI.ColorScheme {
	case config.ColorSchemeDark:
		return "dark"
	case config.ColorSchemeLight:
		return "light"
	default:
		return "auto"
	}
}
