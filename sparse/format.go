// SPDX-License-Identifier: MIT

package sparse

import (
	"strconv"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtHeader    = "CSR Matrix Representation\n"
	_fmtDimension = "Dimension ( "
	_fmtVal       = "Val       ( "
	_fmtColInd    = "ColInd    ( "
	_fmtRowPtr    = "RowPtr    ( "
	_fmtClose     = ")\n"
)

// String implements fmt.Stringer with the CSR debug block:
//
//	CSR Matrix Representation
//	Dimension ( 3 x 3 )
//	Val       ( 1 2 3 4 5 6 )
//	ColInd    ( 0 2 2 0 1 2 )
//	RowPtr    ( 0 2 3 6 )
func (m *CSR) String() string {
	var sb strings.Builder
	sb.WriteString(_fmtHeader)
	sb.WriteString(_fmtDimension)
	sb.WriteString(strconv.Itoa(m.rows))
	sb.WriteString(" x ")
	sb.WriteString(strconv.Itoa(m.cols))
	sb.WriteString(" " + _fmtClose)

	sb.WriteString(_fmtVal)
	for _, v := range m.val {
		sb.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		sb.WriteByte(' ')
	}
	sb.WriteString(_fmtClose)

	writeInts(&sb, _fmtColInd, m.colInd)
	writeInts(&sb, _fmtRowPtr, m.rowPtr)

	return sb.String()
}

func writeInts(sb *strings.Builder, label string, xs []int) {
	sb.WriteString(label)
	for _, x := range xs {
		sb.WriteString(strconv.Itoa(x))
		sb.WriteByte(' ')
	}
	sb.WriteString(_fmtClose)
}
