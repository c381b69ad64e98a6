// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"

	"patterns-cli/internal/person"
	"patterns-cli/pkg/types"

	"github.com/spf13/cobra"
)

// newPersonCommand creates the `patterns person` command. Only the optional
// flags that were given are applied to the builder.
func newPersonCommand(app *App) *cobra.Command {
	var (
		name, familyName string
		age              uint8
		phone            uint64
		address, job     string
		education        string
		residency        string
		nationality      string
	)

	personCmd := &cobra.Command{
		Use:   "person",
		Short: "Build a person with optional fields",
		Long: `Build a person from required and optional fields and print it.

--name, --family-name and --age are required. Every other flag sets an
optional field; fields that are not given are left out of the output.`,
		Example: `  patterns person --name Ada --family-name Lovelace --age 36 --job Mathematician`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := person.New(name, familyName, age)

			flags := cmd.Flags()
			if flags.Changed("phone") {
				p = p.WithPhone(phone)
			}
			if flags.Changed("address") {
				p = p.WithHomeAddress(address)
			}
			if flags.Changed("job") {
				p = p.WithJobTitle(job)
			}
			if flags.Changed("education") {
				p = p.WithEducation(education)
			}
			if flags.Changed("residency") {
				p = p.WithResidency(residency)
			}
			if flags.Changed("nationality") {
				p = p.WithNationality(nationality)
			}

			if valid, errs := p.IsValid(); !valid {
				return &ExitError{Code: types.ExitInvalidInput, Err: errors.Join(errs...)}
			}

			fmt.Fprintln(app.stdout, p)
			return nil
		},
	}

	personCmd.Flags().StringVar(&name, "name", "", "given name (required)")
	personCmd.Flags().StringVar(&familyName, "family-name", "", "family name (required)")
	personCmd.Flags().Uint8Var(&age, "age", 0, "age in years (required)")
	personCmd.Flags().Uint64Var(&phone, "phone", 0, "phone number")
	personCmd.Flags().StringVar(&address, "address", "", "home address")
	personCmd.Flags().StringVar(&job, "job", "", "job title")
	personCmd.Flags().StringVar(&education, "education", "", "education")
	personCmd.Flags().StringVar(&residency, "residency", "", "country of residency")
	personCmd.Flags().StringVar(&nationality, "nationality", "", "nationality")

	for _, required := range []string{"name", "family-name", "age"} {
		_ = personCmd.MarkFlagRequired(required)
	}

	return personCmd
}
