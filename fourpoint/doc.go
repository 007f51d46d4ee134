// Package fourpoint tests distance matrices for additivity via the
// classical four-point condition.
//
// A distance matrix is additive when it is exactly realizable as
// path-length sums between the leaves of some edge-weighted tree.
// For any four leaves of such a tree:
//
//	1 -\    /- 3
//	    >--<
//	2 -/    \- 4
//
// the three pairwise distance sums
//
//   - D(1,2) + D(3,4)
//   - D(1,3) + D(2,4)
//   - D(1,4) + D(2,3)
//
// cover the same edge set except that the smallest sum skips the
// internal path; the two largest sums must therefore be identical.
// The four-point condition is exactly that statement, and a matrix is
// additive iff the condition holds on every quartet of indices.
//
// Three operations compose linearly:
//
//   - PairingSums — the three candidate pairwise sums of one quartet
//   - Condition   — does one quartet satisfy the four-point condition?
//   - IsAdditive  — does every quartet of the matrix satisfy it?
//
// Equality of sums is tolerance-based to absorb floating-point and
// measurement noise: two sums a, b count as equal when (a-b)² < tolerance
// (squared difference, strictly less; see DefaultTolerance). Tolerance 0
// therefore makes the comparison unsatisfiable and fails every quartet —
// pass a small positive tolerance for exact-arithmetic inputs.
//
// ⚙️ Usage:
//
//	import "github.com/phylokit/treemetric/fourpoint"
//
//	d := fourpoint.Rows{
//	  {0, 1, 1, 1},
//	  {1, 0, 1, 1},
//	  {1, 1, 0, 1},
//	  {1, 1, 1, 0},
//	}
//	ok, err := fourpoint.IsAdditive(d, fourpoint.DefaultTolerance)
//
// Performance:
//
//   - Time:   O(n⁴) — C(n,4) quartets, O(1) each; exhaustive by design
//   - Memory: O(1) beyond the input matrix
//
// Use Options.Workers with IsAdditiveWith to spread quartet evaluation
// across goroutines; quartet checks are independent and side-effect
// free, so the result is identical to the sequential path.
package fourpoint
