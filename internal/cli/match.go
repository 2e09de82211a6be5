// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/asap/assignment"
)

var (
	matchMaximize    bool
	matchCardinality bool
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Solve the minimum-weight full bipartite matching of the matrix",
	Long: `Treats every stored entry as an edge between its row and column and prints
the full matching of minimum total weight as row_ind / col_ind arrays.

--maximize looks for the maximum weight instead; --cardinality prints the
maximum cardinality matching (weights ignored) used as the feasibility check.`,
	Args: cobra.NoArgs,
	RunE: runMatch,
}

func init() {
	matchCmd.Flags().BoolVar(&matchMaximize, "maximize", false, "maximize the total weight")
	matchCmd.Flags().BoolVar(&matchCardinality, "cardinality", false, "print the maximum cardinality matching instead")
	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, _ []string) error {
	_, m, err := loadMatrix()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if matchCardinality {
		match, size := assignment.MaximumBipartiteMatching(m)
		fmt.Fprintf(out, "matched: %d of %d\n", size, min(m.Rows(), m.Cols()))
		fmt.Fprintf(out, "row -> col: %v\n", match)
		return nil
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	opts := assignment.Options{Ctx: ctx, Logger: logger, Maximize: matchMaximize}
	res, err := assignment.MinWeightFullBipartiteMatching(m, opts)
	if err != nil {
		return fmt.Errorf("match: %w", err)
	}
	cost, err := assignment.Cost(m, res)
	if err != nil {
		return fmt.Errorf("match: %w", err)
	}
	fmt.Fprintf(out, "row_ind: %v\n", res.RowIdx)
	fmt.Fprintf(out, "col_ind: %v\n", res.ColIdx)
	fmt.Fprintf(out, "cost:    %g\n", cost)

	return nil
}
