// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"patterns-cli/internal/config"
	"patterns-cli/internal/issue"
	"patterns-cli/internal/lesson"
	"patterns-cli/pkg/types"

	"github.com/spf13/cobra"
)

// newExplainCommand creates the `patterns explain` command.
func newExplainCommand(app *App) *cobra.Command {
	var (
		style string
		width int
	)

	explainCmd := &cobra.Command{
		Use:   "explain [idiom]",
		Short: "Explain one of the demonstrated idioms",
		Long: `Explain one of the demonstrated idioms. Without an argument the available
lessons are listed.

The rendering style and wrap width come from lesson.style and lesson.width in
the configuration unless --style or --width is given.`,
		Example: `  patterns explain
  patterns explain typestate --style notty`,
		Args: cobra.MaximumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			names := make([]string, 0, len(lesson.Names()))
			for _, n := range lesson.Names() {
				names = append(names, string(n))
			}
			return names, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return listLessons(app)
			}

			l, err := lesson.Get(lesson.Name(args[0]))
			if err != nil {
				return failWith(types.ExitInvalidInput, issue.LessonNotFoundId, err)
			}

			settings := app.Settings().Lesson
			if cmd.Flags().Changed("style") {
				settings.Style = config.LessonStyle(style)
			}
			if cmd.Flags().Changed("width") {
				settings.Width = width
			}
			if valid, errs := settings.IsValid(); !valid {
				return &ExitError{Code: types.ExitInvalidInput, Err: errs[0]}
			}

			rendered, err := l.Render(settings.Style.String(), settings.Width)
			if err != nil {
				return err
			}
			fmt.Fprint(app.stdout, rendered)
			return nil
		},
	}

	explainCmd.Flags().StringVar(&style, "style", "", "glamour style: auto, dark, light, notty or ascii")
	explainCmd.Flags().IntVar(&width, "width", 0, "word-wrap width, 0 disables wrapping")

	return explainCmd
}

func listLessons(app *App) error {
	fmt.Fprintln(app.stdout, TitleStyle.Render("Lessons"))
	for _, name := range lesson.Names() {
		l, err := lesson.Get(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(app.stdout, "  %s  %s\n", CmdStyle.Render(fmt.Sprintf("%-10s", name)), SubtitleStyle.Render(l.Title()))
	}
	return nil
}
