// SPDX-License-Identifier: MIT
// Package distmatrix: validation of distance-matrix structure.
//
// Purpose:
//   - Single source of truth for the checks the fourpoint package assumes
//     its input has already passed.
//   - Deterministic, side-effect-free scans with fixed loop order; fail on
//     the first violation with a plain wrapped sentinel.
//
// Each validator states what it checks and what it assumes; the composite
// Validate runs the fixed sequence NotNil → Finite → Diagonal → Symmetry
// → NonNegative.

package distmatrix

import (
	"fmt"
	"math"
)

// DefaultEpsilon is the structural tolerance for diagonal, symmetry and
// non-negativity checks. It is deliberately much tighter than the
// fourpoint equality tolerance: structure should hold near-exactly even
// when the metric itself is noisy.
const DefaultEpsilon = 1e-9

// validatorErrorf tags a sentinel with the validator name for grep-able,
// errors.Is-matchable diagnostics.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// normalizeEps rejects non-finite eps with ErrNaNInf and flips negative
// eps to its absolute value (a negative structural tolerance has no
// useful meaning).
func normalizeEps(tag string, eps float64) (float64, error) {
	if math.IsNaN(eps) || math.IsInf(eps, 0) {
		return 0, validatorErrorf(tag, ErrNaNInf)
	}
	if eps < 0 {
		eps = -eps
	}

	return eps, nil
}

// ValidateZeroDiagonal checks |D[i][i]| ≤ eps for all i.
// Assumes d is non-nil. Complexity: O(n).
func ValidateZeroDiagonal(d *Dense, eps float64) error {
	eps, err := normalizeEps("ValidateZeroDiagonal", eps)
	if err != nil {
		return err
	}
	for i := 0; i < d.n; i++ {
		if math.Abs(d.data[i*d.n+i]) > eps {
			return validatorErrorf("ValidateZeroDiagonal", ErrNonZeroDiagonal)
		}
	}

	return nil
}

// ValidateSymmetric checks |D[i][j] - D[j][i]| ≤ eps over the strict
// upper triangle. Dense matrices built exclusively through Set are
// symmetric by construction; FromRows input is not.
// Assumes d is non-nil. Complexity: O(n²).
func ValidateSymmetric(d *Dense, eps float64) error {
	eps, err := normalizeEps("ValidateSymmetric", eps)
	if err != nil {
		return err
	}
	for i := 0; i < d.n; i++ {
		for j := i + 1; j < d.n; j++ {
			if math.Abs(d.data[i*d.n+j]-d.data[j*d.n+i]) > eps {
				return validatorErrorf("ValidateSymmetric", ErrAsymmetry)
			}
		}
	}

	return nil
}

// ValidateNonNegative checks D[i][j] ≥ -eps for all entries.
// Assumes d is non-nil. Complexity: O(n²).
func ValidateNonNegative(d *Dense, eps float64) error {
	eps, err := normalizeEps("ValidateNonNegative", eps)
	if err != nil {
		return err
	}
	for _, v := range d.data {
		if v < -eps {
			return validatorErrorf("ValidateNonNegative", ErrNegativeDistance)
		}
	}

	return nil
}

// Validate runs the full structural gate for a distance matrix:
// non-nil, finite entries (guaranteed at ingestion, re-checked cheaply),
// ~zero diagonal, symmetry within eps, non-negativity.
//
// Errors: ErrNilMatrix, ErrNaNInf, ErrNonZeroDiagonal, ErrAsymmetry,
// ErrNegativeDistance — the first violation encountered, in that order.
// Complexity: O(n²).
func Validate(d *Dense, eps float64) error {
	if d == nil {
		return validatorErrorf("Validate", ErrNilMatrix)
	}
	for _, v := range d.data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return validatorErrorf("Validate", ErrNaNInf)
		}
	}
	if err := ValidateZeroDiagonal(d, eps); err != nil {
		return err
	}
	if err := ValidateSymmetric(d, eps); err != nil {
		return err
	}

	return ValidateNonNegative(d, eps)
}
