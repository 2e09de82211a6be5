// SPDX-License-Identifier: MIT

package sparse

import "errors"

// Every message is prefixed with "sparse: ". Constructors wrap these with the
// offending position via fmt.Errorf("...: %w"); match with errors.Is.
var (
	// ErrBadShape is returned when rows or cols is negative.
	ErrBadShape = errors.New("sparse: invalid shape")

	// ErrPointerArray indicates a malformed row pointer array: wrong length,
	// RowPtr[0] != 0 or a decreasing offset.
	ErrPointerArray = errors.New("sparse: invalid row pointer array")

	// ErrLengthMismatch indicates Val and ColInd disagree with each other or
	// with RowPtr[rows].
	ErrLengthMismatch = errors.New("sparse: array length mismatch")

	// ErrOutOfRange indicates a row or column index outside the matrix.
	ErrOutOfRange = errors.New("sparse: index out of range")

	// ErrUnsortedIndices indicates column indices that are not strictly
	// increasing inside a row.
	ErrUnsortedIndices = errors.New("sparse: column indices not strictly increasing within row")

	// ErrDuplicateEntry is returned by Builder.Insert for an already stored (i, j).
	ErrDuplicateEntry = errors.New("sparse: duplicate entry")

	// ErrNaNInf is returned when a NaN or ±Inf value is inserted.
	ErrNaNInf = errors.New("sparse: NaN or Inf encountered")

	// ErrNilMatrix indicates a nil *CSR or nil source matrix.
	ErrNilMatrix = errors.New("sparse: nil matrix")

	// ErrEmptyMatrix is returned when a zero-row or zero-column matrix cannot
	// be represented (gonum dense matrices must be non-empty).
	ErrEmptyMatrix = errors.New("sparse: empty matrix")
)
