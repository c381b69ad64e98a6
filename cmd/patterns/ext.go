// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"patterns-cli/internal/ext"
	"patterns-cli/pkg/types"

	"github.com/spf13/cobra"
	"golang.org/x/exp/constraints"
)

// newShoutCommand creates the `patterns shout` command.
func newShoutCommand(app *App) *cobra.Command {
	var spanish bool

	shoutCmd := &cobra.Command{
		Use:   "shout <text...>",
		Short: "Add urgency to a message",
		Example: `  patterns shout hurry up
  patterns shout --spanish vamos`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg := ext.Urgent(strings.Join(args, " "))
			if spanish {
				msg.AddUrgencyInSpanish()
			} else {
				msg.AddUrgency()
			}
			fmt.Fprintln(app.stdout, msg)
			return nil
		},
	}

	shoutCmd.Flags().BoolVar(&spanish, "spanish", false, "wrap the message in ¡...! instead of appending !")

	return shoutCmd
}

// newFactorialCommand creates the `patterns factorial` command.
func newFactorialCommand(app *App) *cobra.Command {
	var bits int

	factorialCmd := &cobra.Command{
		Use:   "factorial <n>",
		Short: "Compute n! in an unsigned integer of the given width",
		Long: `Compute n! in an unsigned integer of the given width.

The result is checked for overflow: 6! does not fit in 8 bits and 21! does not
fit in 64 bits.`,
		Example: `  patterns factorial 20
  patterns factorial --bits 8 5`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				res string
				err error
			)
			switch bits {
			case 8:
				res, err = checkedFactorial[uint8](args[0], bits)
			case 16:
				res, err = checkedFactorial[uint16](args[0], bits)
			case 32:
				res, err = checkedFactorial[uint32](args[0], bits)
			case 64:
				res, err = checkedFactorial[uint64](args[0], bits)
			default:
				err = fmt.Errorf("unsupported --bits %d (want 8, 16, 32 or 64)", bits)
			}
			if err != nil {
				return &ExitError{Code: types.ExitInvalidInput, Err: err}
			}

			fmt.Fprintf(app.stdout, "%s! = %s\n", args[0], res)
			return nil
		},
	}

	factorialCmd.Flags().IntVar(&bits, "bits", 64, "integer width: 8, 16, 32 or 64")

	return factorialCmd
}

func checkedFactorial[T constraints.Unsigned](arg string, bits int) (string, error) {
	n, err := strconv.ParseUint(arg, 10, bits)
	if err != nil {
		return "", fmt.Errorf("invalid n %q: must be an integer between 0 and %d", arg, uint64(^T(0)))
	}
	res, err := ext.CheckedFactorial(T(n))
	if err != nil {
		return "", err
	}
	return strconv.FormatUint(uint64(res), 10), nil
}
