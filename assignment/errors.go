// SPDX-License-Identifier: MIT

package assignment

import "errors"

var (
	// ErrNilMatrix indicates a nil *sparse.CSR was passed.
	ErrNilMatrix = errors.New("assignment: nil matrix")

	// ErrNaNInf indicates a stored weight is NaN or ±Inf.
	ErrNaNInf = errors.New("assignment: NaN or Inf weight")

	// ErrInfeasible indicates that no full matching exists.
	ErrInfeasible = errors.New("assignment: no full matching exists")

	// ErrNotAnEdge is returned by Cost for a pair that is not a stored entry.
	ErrNotAnEdge = errors.New("assignment: pair is not a stored entry")

	// ErrBadResult is returned by Cost for mismatched RowIdx/ColIdx lengths
	// or indices outside the matrix.
	ErrBadResult = errors.New("assignment: malformed result")
)

