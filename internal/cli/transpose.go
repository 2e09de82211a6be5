// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"slices"

	"github.com/spf13/cobra"
)

// errTransposeMismatch is returned by "transpose --assert" when the arrays differ.
var errTransposeMismatch = errors.New("asapdebug: transpose arrays differ from the original")

var transposeAssert bool

var transposeCmd = &cobra.Command{
	Use:   "transpose",
	Short: "Print the transpose and compare its CSR arrays with the original",
	Long: `Prints the materialized transpose of the matrix and reports whether its
data, indices and indptr arrays equal those of the original. They do for
matrices with a symmetric pattern and values; with --assert any difference
is an error.`,
	Args: cobra.NoArgs,
	RunE: runTranspose,
}

func init() {
	transposeCmd.Flags().BoolVar(&transposeAssert, "assert", false, "fail when the transpose arrays differ")
	rootCmd.AddCommand(transposeCmd)
}

func runTranspose(cmd *cobra.Command, _ []string) error {
	_, m, err := loadMatrix()
	if err != nil {
		return err
	}
	tr := m.Transpose()
	out := cmd.OutOrStdout()

	fmt.Fprint(out, tr)
	dataEq := slices.Equal(m.Val(), tr.Val())
	indicesEq := slices.Equal(m.ColInd(), tr.ColInd())
	indptrEq := slices.Equal(m.RowPtr(), tr.RowPtr())
	fmt.Fprintf(out, "data equal:    %t\n", dataEq)
	fmt.Fprintf(out, "indices equal: %t\n", indicesEq)
	fmt.Fprintf(out, "indptr equal:  %t\n", indptrEq)

	if transposeAssert && !(dataEq && indicesEq && indptrEq) {
		return errTransposeMismatch
	}

	return nil
}
