// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"patterns-cli/internal/issue"
	"patterns-cli/internal/light"
	"patterns-cli/internal/light/script"
	"patterns-cli/pkg/types"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

// errScriptAndArgs is returned when both --script and positional ops are given.
var errScriptAndArgs = errors.New("use either --script or operations as arguments, not both")

// newLightCommand creates the `patterns light` command tree.
func newLightCommand(app *App) *cobra.Command {
	var (
		variant    string
		scriptPath string
	)

	lightCmd := &cobra.Command{
		Use:   "light [ops...]",
		Short: "Replay light operations against one light variant",
		Long: `Replay light operations against one light variant.

Operations are toggle, set <0-255>, get and status. They can be given as
arguments ("toggle set 200 get", "set=200") or read from a shell-syntax script
with --script. Without operations a short demonstration is replayed.

Variants:
  naive     one type, state checked at runtime; set while off is ignored
  marker    zero-width Off and On types; intensity is not tracked
  payload   Off and On types; only On carries and exposes an intensity`,
		Example: `  patterns light toggle set 200 get
  patterns light --variant naive set 50 toggle get
  patterns light --script testdata/scenario.sh`,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := app.resolveVariant(variant)
			if err != nil {
				return err
			}
			ops, err := loadOps(scriptPath, args)
			if err != nil {
				return err
			}
			return runLight(app.stdout, v, ops)
		},
	}

	lightCmd.Flags().StringVar(&variant, "variant", "", "light variant: naive, marker or payload (default from config)")
	lightCmd.Flags().StringVar(&scriptPath, "script", "", "read operations from a shell-syntax script file")

	lightCmd.AddCommand(newLightCompareCommand(app))

	return lightCmd
}

func newLightCompareCommand(app *App) *cobra.Command {
	var scriptPath string

	compareCmd := &cobra.Command{
		Use:   "compare [ops...]",
		Short: "Replay light operations against every variant side by side",
		Long: `Replay the same operations against every light variant and show the
results side by side. An operation that does not exist on a variant's current
type stops that variant's column.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ops, err := loadOps(scriptPath, args)
			if err != nil {
				return err
			}
			return compareLights(app.stdout, ops)
		},
	}

	compareCmd.Flags().StringVar(&scriptPath, "script", "", "read operations from a shell-syntax script file")

	return compareCmd
}

// resolveVariant returns the --variant value, or the configured default.
func (a *App) resolveVariant(flagValue string) (light.Variant, error) {
	if flagValue == "" {
		return a.Settings().DefaultVariant, nil
	}
	v, err := light.ParseVariant(flagValue)
	if err != nil {
		return "", failWith(types.ExitInvalidInput, issue.UnknownVariantId, err)
	}
	return v, nil
}

// loadOps reads ops from the script file or the arguments. With neither it
// returns the demonstration sequence.
func loadOps(scriptPath string, args []string) ([]script.Op, error) {
	var (
		ops []script.Op
		err error
	)
	switch {
	case scriptPath != "" && len(args) > 0:
		return nil, &ExitError{Code: types.ExitInvalidInput, Err: errScriptAndArgs}
	case scriptPath != "":
		ops, err = script.ParseFile(scriptPath)
		err = issue.WrapWithContext(err, "replay light script", scriptPath)
	case len(args) > 0:
		ops, err = script.ParseArgs(args)
		err = issue.WrapWithOperation(err, "parse light operations")
	default:
		return demoOps(), nil
	}
	if err != nil {
		return nil, failWith(types.ExitInvalidInput, issue.ScriptInvalidId, err)
	}
	return ops, nil
}

// demoOps turns the light on, reads it, raises it to 200, reads it again and
// turns it off.
func demoOps() []script.Op {
	return []script.Op{
		script.Toggle(),
		script.Get(),
		script.Set(200),
		script.Get(),
		script.Toggle(),
		script.Status(),
	}
}

func runLight(w io.Writer, v light.Variant, ops []script.Op) error {
	trace, runErr := script.Run(v, ops)
	slog.Debug("light script replayed", "variant", v, "ops", len(ops), "steps", len(trace.Steps))

	fmt.Fprintln(w, TitleStyle.Render(v.String()+" light"))
	fmt.Fprintln(w, renderTrace(trace))

	if runErr != nil {
		var unavailable *script.UnavailableError
		if errors.As(runErr, &unavailable) {
			return failWith(types.ExitUnavailable, issue.IntensityUnavailableId, runErr)
		}
		return runErr
	}

	fmt.Fprintln(w, SuccessStyle.Render("Final: ")+trace.Final().Rendered)
	return nil
}

// renderTrace draws one row per replayed step.
func renderTrace(trace script.Trace) string {
	t := newTraceTable("#", "op", "state", "intensity", "effect", "light")
	for i, step := range trace.Steps {
		t.Row(
			strconv.Itoa(i+1),
			step.Op.String(),
			step.State.String(),
			intensityCell(trace.Variant, step),
			string(step.Effect),
			step.Rendered,
		)
	}
	return t.String()
}

func intensityCell(v light.Variant, step script.Step) string {
	if !v.TracksIntensity() {
		return "-"
	}
	return step.Intensity.String()
}

// compareLights replays ops against every variant and renders one column per
// variant.
func compareLights(w io.Writer, ops []script.Op) error {
	variants := light.Variants()
	traces := make([]script.Trace, len(variants))
	failures := make([]error, len(variants))
	for i, v := range variants {
		traces[i], failures[i] = script.Run(v, ops)
		if failures[i] != nil && !errors.Is(failures[i], script.ErrUnavailableWhileOff) && !errors.Is(failures[i], script.ErrIntensityUntracked) {
			return failures[i]
		}
	}

	headers := []string{"op"}
	for _, v := range variants {
		headers = append(headers, v.String())
	}
	t := newTraceTable(headers...)

	for row, op := range ops {
		cells := []string{op.String()}
		for i := range variants {
			cells = append(cells, compareCell(traces[i], failures[i], row))
		}
		t.Row(cells...)
	}

	fmt.Fprintln(w, TitleStyle.Render("light compare"))
	fmt.Fprintln(w, t.String())
	return nil
}

// compareCell is the text for step row of one variant's replay.
func compareCell(trace script.Trace, failure error, row int) string {
	switch {
	case row < len(trace.Steps):
		step := trace.Steps[row]
		if step.Effect == script.EffectIgnored {
			return step.Rendered + " (ignored)"
		}
		return step.Rendered
	case row == len(trace.Steps) && failure != nil:
		if errors.Is(failure, script.ErrIntensityUntracked) {
			return "not defined: no intensity"
		}
		return "not defined while Off"
	default:
		return "-"
	}
}

func newTraceTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(traceBorderStyle).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return traceHeaderStyle
			}
			return traceCellStyle
		})
}
