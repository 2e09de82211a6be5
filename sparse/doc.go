// SPDX-License-Identifier: MIT

// Package sparse provides a compressed sparse row (CSR) matrix of float64
// values.
//
// What:
//
//   - CSR stores a rows×cols matrix as three arrays: Val (stored values),
//     ColInd (column of each stored value) and RowPtr (rows+1 offsets into
//     Val/ColInd). Row i lives in Val[RowPtr[i]:RowPtr[i+1]].
//   - Builder accumulates (row, col, value) triplets and emits a canonical CSR.
//   - FromDense / Dense convert to and from gonum matrices.
//   - Transpose materializes the transposed CSR.
//
// Canonical form:
//
//   - RowPtr[0] == 0, RowPtr is non-decreasing, RowPtr[rows] == NNZ.
//   - Column indices are in [0, cols) and strictly increasing within a row.
//   - Explicitly stored zeros are kept; they are entries like any other.
//
// gonum interop:
//
//	*CSR satisfies mat.Matrix, mat.NonZeroDoer and mat.RowNonZeroDoer, so it
//	can be passed to mat.Equal, mat.Formatted, (*mat.Dense).Mul and friends.
//	As with every gonum matrix, At panics on out-of-range indices.
//
// Complexity:
//
//   - NewCSR: O(rows + NNZ); At: O(log k) for k entries in the row.
//   - Transpose: O(rows + cols + NNZ); Dense: O(rows·cols).
//
// Errors:
//
//   - ErrBadShape, ErrPointerArray, ErrLengthMismatch, ErrOutOfRange,
//     ErrUnsortedIndices, ErrDuplicateEntry, ErrNaNInf, ErrNilMatrix,
//     ErrEmptyMatrix.
package sparse
