// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/asap/fixture"
)

var fixturesCmd = &cobra.Command{
	Use:   "fixtures",
	Short: "List the built-in matrices",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		out := cmd.OutOrStdout()
		for _, name := range fixture.Names() {
			f, err := fixture.Builtin(name)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%-13s %dx%d  %s\n", f.Name, f.Rows, f.Cols, f.Description)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fixturesCmd)
}
