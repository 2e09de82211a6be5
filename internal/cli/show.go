// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/asap/fixture"
)

var showOutput string

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the CSR arrays and the dense form of the matrix",
	Args:  cobra.NoArgs,
	RunE:  runShow,
}

func init() {
	showCmd.Flags().StringVarP(&showOutput, "output", "o", "text", "output format: text, yaml or toml")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, _ []string) error {
	f, m, err := loadMatrix()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	switch showOutput {
	case "text":
	case string(fixture.YAML), string(fixture.TOML):
		snap := fixture.FromMatrix(f.Name, m)
		snap.Description = f.Description
		return fixture.Encode(out, fixture.Format(showOutput), snap)
	default:
		return fmt.Errorf("invalid --output %q", showOutput)
	}

	fmt.Fprintf(out, "fixture: %s\n", f.Name)
	if f.Description != "" {
		fmt.Fprintf(out, "  %s\n", f.Description)
	}
	fmt.Fprint(out, m)
	d, err := m.Dense()
	if err != nil {
		fmt.Fprintln(out, "dense: (empty)")
		return nil
	}
	fmt.Fprintf(out, "dense:\n%v\n", mat.Formatted(d))

	return nil
}
