// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"patterns-cli/internal/blockconfig"
	"patterns-cli/internal/issue"
	"patterns-cli/pkg/types"

	"github.com/spf13/cobra"
)

// newBlockCommand creates the `patterns block` command.
func newBlockCommand(app *App) *cobra.Command {
	var sequential bool

	blockCmd := &cobra.Command{
		Use:   "block <file>",
		Short: "Load a block config file and describe the work",
		Long: `Load a block config file (.toml or .cue) and describe the work.

The file is read, checked for UTF-8, decoded and validated against the block
schema. By default the steps run inside one scoped function so only the final
config escapes; --sequential runs the same steps one after another.`,
		Example: `  patterns block shed.toml
  patterns block --sequential shed.cue`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			load := blockconfig.Load
			if sequential {
				load = blockconfig.LoadSequential
			}

			cfg, err := load(args[0])
			if err != nil {
				return failWith(types.ExitInvalidInput, issue.BlockConfigInvalidId, err)
			}
			return blockconfig.Describe(app.stdout, cfg)
		},
	}

	blockCmd.Flags().BoolVar(&sequential, "sequential", false, "load step by step instead of in one scoped block")

	return blockCmd
}
