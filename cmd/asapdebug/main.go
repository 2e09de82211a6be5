// SPDX-License-Identifier: MIT

// Command asapdebug prints sparse matrix diagnostics and assignment results.
package main

import (
	"os"

	"github.com/katalvlaran/asap/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
