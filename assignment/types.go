// SPDX-License-Identifier: MIT

package assignment

import (
	"context"
	"fmt"
	"log/slog"
)

// Options configures MinWeightFullBipartiteMatching.
//   - Ctx: checked between augmentations; nil means context.Background().
//   - Logger: receives Debug traces of the solver phases; nil discards them.
//   - Maximize: find the full matching of maximum instead of minimum weight.
type Options struct {
	Ctx      context.Context
	Logger   *slog.Logger
	Maximize bool
}

// DefaultOptions returns minimization with a background context and a
// discarding logger.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		Logger: slog.New(slog.DiscardHandler),
	}
}

// normalize fills nil fields with the defaults.
func (o *Options) normalize() {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}
}

// Result holds a full matching as parallel index slices: row RowIdx[k] is
// matched to column ColIdx[k]. RowIdx is strictly increasing.
type Result struct {
	RowIdx []int
	ColIdx []int
}

// Len returns the number of matched pairs.
func (r Result) Len() int { return len(r.RowIdx) }

// String formats the result like the debug scripts print it:
// "([0 1 2], [0 2 1])".
func (r Result) String() string {
	return fmt.Sprintf("(%v, %v)", r.RowIdx, r.ColIdx)
}
