// SPDX-License-Identifier: MIT

// Package cli implements the asapdebug command: small diagnostics that print
// a sparse matrix, check its transpose and solve its assignment problem.
package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/asap/fixture"
	"github.com/katalvlaran/asap/sparse"
)

// version is set at build time with -ldflags "-X ...cli.version=v1.2.3".
var version = "dev"

var (
	fixtureName string
	fixturePath string
	logLevel    string

	logger = slog.New(slog.DiscardHandler)
)

var rootCmd = &cobra.Command{
	Use:   "asapdebug",
	Short: "Inspect sparse matrices and their minimum-weight full matchings",
	Long: `asapdebug prints the CSR arrays of a small sparse matrix, checks its
transpose and solves its minimum-weight full bipartite matching.

The matrix is a built-in fixture (--fixture, see "asapdebug fixtures") or a
YAML/TOML file (--file).`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&fixtureName, "fixture", "f", fixture.DefaultName, "built-in fixture name")
	pf.StringVar(&fixturePath, "file", "", "load the matrix from a .yaml/.yml/.toml file instead")
	pf.StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn or error")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func setupLogging(cmd *cobra.Command, _ []string) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(logLevel))); err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", logLevel, err)
	}
	logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	return nil
}

// loadMatrix resolves --file or --fixture into a matrix.
func loadMatrix() (fixture.Fixture, *sparse.CSR, error) {
	var (
		f   fixture.Fixture
		err error
	)
	if fixturePath != "" {
		f, err = fixture.Load(fixturePath)
	} else {
		f, err = fixture.Builtin(fixtureName)
	}
	if err != nil {
		return fixture.Fixture{}, nil, err
	}
	m, err := f.Matrix()
	if err != nil {
		return fixture.Fixture{}, nil, err
	}
	logger.Info("matrix loaded", "fixture", f.Name, "rows", m.Rows(), "cols", m.Cols(), "nnz", m.NNZ())

	return f, m, nil
}
