// SPDX-License-Identifier: MIT
// Package matrix: Dense, the concrete row-major float64 container.
// Elements live in one flat slice for cache friendliness; all public
// access is bounds-checked and reports sentinel errors from errors.go.

package matrix

import (
	"fmt"
	"strings"
)

// Method tags used when wrapping ErrOutOfRange with call context.
const (
	ctxAt      = "At"
	ctxSet     = "Set"
	ctxRowView = "RowView"
)

// String() rendering delimiters, kept as constants to avoid magic literals.
const (
	_fmtRowOpen  = "["
	_fmtSep      = ", "
	_fmtRowClose = "]\n"
)

// denseErrorf wraps an underlying sentinel with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
// Contents are value-agnostic: NaN and ±Inf are stored verbatim.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new Dense or ErrInvalidDimensions.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// Allocate flat slice
	data := make([]float64, rows*cols)

	// Return initialized Dense
	return &Dense{r: rows, c: cols, data: data}, nil
}

// FromRows builds a Dense from a slice of row slices, copying the data so
// the caller's slices are never aliased by the matrix.
// Stage 1 (Validate): non-empty input, non-empty first row, equal row lengths.
// Stage 2 (Execute): copy row by row into flat storage.
// Errors: ErrInvalidDimensions on empty input, ErrRaggedRows on uneven rows.
// Complexity: O(r*c) time and memory.
func FromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}

	r, c := len(rows), len(rows[0])
	data := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		// Every row must match the width fixed by the first row.
		if len(rows[i]) != c {
			return nil, fmt.Errorf("FromRows: row %d: %w", i, ErrRaggedRows)
		}
		data = append(data, rows[i]...)
	}

	return &Dense{r: r, c: c, data: data}, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the flat row-major offset or returns ErrOutOfRange.
// It returns the plain sentinel without context; public methods (At/Set)
// wrap with method name and coordinates.
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col).
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): read from flat storage.
// Errors: ErrOutOfRange (wrapped with coordinates) on invalid indices.
// Complexity: O(1); no allocations on the success path.
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Set assigns v at (row, col). Any float64 is accepted, including NaN and
// ±Inf: finite-only enforcement would break the IEEE propagation that the
// log-probability contract guarantees.
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): write into flat storage.
// Errors: ErrOutOfRange (wrapped with coordinates) on invalid indices.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err) // wrap with context
	}
	m.data[off] = v // direct flat write

	return nil
}

// RowView returns the row's backing slice without copying.
// The slice aliases the matrix storage: writes through it mutate the matrix,
// and it remains valid only while the matrix lives. Callers that need an
// independent copy should copy explicitly or use Clone. Intended for
// read-only gathers in scoring hot paths.
// Errors: ErrOutOfRange on an invalid row.
// Complexity: O(1), zero-copy.
func (m *Dense) RowView(row int) ([]float64, error) {
	if row < 0 || row >= m.r {
		return nil, fmt.Errorf("Dense.%s(%d): %w", ctxRowView, row, ErrOutOfRange)
	}
	base := row * m.c

	return m.data[base : base+m.c], nil
}

// Clone returns a deep copy (new buffer, same shape).
// Mutations of the clone never affect the original.
// Complexity: O(r*c) time and memory.
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data)) // allocate same length
	copy(cp, m.data)                   // deep copy contents

	return &Dense{r: m.r, c: m.c, data: cp}
}

// Do calls f for every element in deterministic row-major order,
// stopping early when f returns false.
// Complexity: O(r*c) worst case; no allocations.
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ { // fixed row order
		base = i * m.c
		for j = 0; j < m.c; j++ { // fixed column order
			if !f(i, j, m.data[base+j]) {
				return // early stop requested by caller
			}
		}
	}
}

// Apply replaces every element with f(i, j, current) in deterministic
// row-major order. The transform runs in place; use Clone first to keep
// the original.
// Complexity: O(r*c); no allocations.
func (m *Dense) Apply(f func(i, j int, v float64) float64) {
	var i, j, base int
	for i = 0; i < m.r; i++ { // fixed row order
		base = i * m.c
		for j = 0; j < m.c; j++ { // fixed column order
			m.data[base+j] = f(i, j, m.data[base+j])
		}
	}
}

// String implements fmt.Stringer for diagnostics; not for hot paths.
// Rows render as "[v, v, ...]" lines in row order.
// Complexity: O(r*c) for string construction.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ { // iterate cols
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
