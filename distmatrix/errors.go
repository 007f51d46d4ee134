// SPDX-License-Identifier: MIT
// Package distmatrix: sentinel error set.
// This file defines ONLY package-level sentinel errors. All functions
// return these sentinels (wrapped with call-site context via %w where
// coordinates help) and tests match them via errors.Is. No function
// panics on user input.

package distmatrix

import "errors"

var (
	// ErrBadShape is returned when a requested or supplied shape is invalid:
	// non-positive dimension, ragged rows, or a non-square input.
	ErrBadShape = errors.New("distmatrix: invalid shape")

	// ErrOutOfRange indicates an index outside 0..n-1. Public indexers
	// (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("distmatrix: index out of range")

	// ErrNilMatrix indicates a nil *Dense receiver or argument.
	ErrNilMatrix = errors.New("distmatrix: nil matrix")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are
	// required (ingestion, Set, or a non-finite epsilon).
	ErrNaNInf = errors.New("distmatrix: NaN or Inf encountered")

	// ErrNonZeroDiagonal signals a diagonal entry outside ±eps; a distance
	// matrix conventionally has D[i][i] == 0.
	ErrNonZeroDiagonal = errors.New("distmatrix: diagonal not zero within eps")

	// ErrAsymmetry signals |D[i][j] - D[j][i]| > eps for some i<j.
	ErrAsymmetry = errors.New("distmatrix: matrix is not symmetric within eps")

	// ErrNegativeDistance signals an off-diagonal entry below -eps;
	// distances are non-negative by definition.
	ErrNegativeDistance = errors.New("distmatrix: negative distance")
)
