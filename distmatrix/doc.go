// SPDX-License-Identifier: MIT

// Package distmatrix stores and validates square symmetric distance
// matrices for the fourpoint additivity predicate.
//
// Dense is a flat row-major n×n float64 buffer with safe accessors:
// At/Set return sentinel errors instead of panicking, Set mirrors writes
// into both triangles so the invariant D[i][j] == D[j][i] holds by
// construction, and Dist is the unchecked O(1) fast path that satisfies
// fourpoint.Distances.
//
// Validate is the caller-side gate the fourpoint package assumes has
// already run on untrusted input: finite entries, ~zero diagonal,
// symmetry within epsilon, non-negativity. All checks are pure,
// deterministic, allocation-free, and report via errors.Is-matchable
// sentinels.
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/phylokit/treemetric/distmatrix"
//	  "github.com/phylokit/treemetric/fourpoint"
//	)
//
//	d, err := distmatrix.FromRows(rows)
//	if err != nil { ... }
//	if err := distmatrix.Validate(d, distmatrix.DefaultEpsilon); err != nil { ... }
//	ok, err := fourpoint.IsAdditive(d, fourpoint.DefaultTolerance)
//
// Complexity quicksheet:
//   - New: O(n²) zero-init; At/Set/Dist: O(1); Clone: O(n²); Validate: O(n²).
package distmatrix
