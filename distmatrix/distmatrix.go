// SPDX-License-Identifier: MIT

// Package distmatrix - Dense storage (flat row-major) & safe accessors.
//
// Purpose:
//   - Cache-friendly flat buffer with the explicit index formula i*n + j.
//   - Safety at the public surface: At/Set return errors instead of panicking.
//   - Symmetry by construction: Set mirrors writes into both triangles.
//   - Finite-value policy enforced at ingestion (FromRows) and on Set.
package distmatrix

import (
	"fmt"
	"math"
)

// denseErrorf wraps a sentinel with uniform Dense context and call-site
// indices, preserving errors.Is matching via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a square symmetric distance matrix.
// n is the dimension and data holds n*n elements in row-major order.
// The zero value is unusable; construct via New or FromRows.
type Dense struct {
	n    int
	data []float64
}

// New creates an n×n Dense matrix initialized to zeros (which is itself a
// valid, degenerate distance matrix).
// Returns ErrBadShape when n <= 0.
// Complexity: O(n²).
func New(n int) (*Dense, error) {
	if n <= 0 {
		return nil, fmt.Errorf("New(%d): %w", n, ErrBadShape)
	}

	return &Dense{n: n, data: make([]float64, n*n)}, nil
}

// FromRows copies a square [][]float64 into a Dense matrix.
// Values are copied as given — asymmetry in the input survives the copy
// and is caught later by Validate, not here. Rejects ragged or empty
// input with ErrBadShape and non-finite entries with ErrNaNInf.
// Complexity: O(n²).
func FromRows(rows [][]float64) (*Dense, error) {
	n := len(rows)
	if n == 0 {
		return nil, fmt.Errorf("FromRows: empty input: %w", ErrBadShape)
	}

	d := &Dense{n: n, data: make([]float64, n*n)}
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("FromRows: row %d has %d columns, want %d: %w", i, len(row), n, ErrBadShape)
		}
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, denseErrorf("FromRows", i, j, ErrNaNInf)
			}
			d.data[i*n+j] = v
		}
	}

	return d, nil
}

// N returns the matrix dimension.
// Complexity: O(1).
func (d *Dense) N() int { return d.n }

// Dist returns the distance between items i and j without bounds checks.
// It is the hot-path accessor satisfying fourpoint.Distances; callers are
// expected to have validated indices (the fourpoint package does).
// Complexity: O(1).
func (d *Dense) Dist(i, j int) float64 { return d.data[i*d.n+j] }

// At retrieves the element at (i, j) with bounds checking.
// Returns ErrOutOfRange on invalid indices.
// Complexity: O(1).
func (d *Dense) At(i, j int) (float64, error) {
	if i < 0 || i >= d.n || j < 0 || j >= d.n {
		return 0, denseErrorf("At", i, j, ErrOutOfRange)
	}

	return d.data[i*d.n+j], nil
}

// Set assigns distance v to the pair (i, j), mirroring the write into
// (j, i) so symmetry holds by construction.
// Returns ErrOutOfRange on invalid indices and ErrNaNInf for non-finite v.
// Complexity: O(1).
func (d *Dense) Set(i, j int, v float64) error {
	if i < 0 || i >= d.n || j < 0 || j >= d.n {
		return denseErrorf("Set", i, j, ErrOutOfRange)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return denseErrorf("Set", i, j, ErrNaNInf)
	}
	d.data[i*d.n+j] = v
	d.data[j*d.n+i] = v

	return nil
}

// Clone returns a deep copy of the matrix.
// Complexity: O(n²).
func (d *Dense) Clone() *Dense {
	data := make([]float64, len(d.data))
	copy(data, d.data)

	return &Dense{n: d.n, data: data}
}
