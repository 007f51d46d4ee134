// Package fourpoint: domain types and options.
package fourpoint

// DefaultTolerance is the default slack when comparing pairing sums for
// equality. Comparison is squared-difference based: sums a and b count as
// equal when (a-b)² < tolerance. Note this is weaker than |a-b| < tolerance
// for tolerance < 1; the convention is kept explicit to avoid silent
// behavioral drift.
const DefaultTolerance = 1e-2

// Quartet holds four distinct indices into a distance matrix.
// Order is irrelevant: Condition yields the same verdict for every
// permutation of the same four indices.
type Quartet [4]int

// Pair is an unordered index pair, normalized to (min, max) by NewPair so
// that equal pairs compare equal regardless of construction order.
type Pair [2]int

// NewPair returns the normalized pair {min(i,j), max(i,j)}.
func NewPair(i, j int) Pair {
	if j < i {
		i, j = j, i
	}

	return Pair{i, j}
}

// Pairing is one of the three ways to split a quartet into two disjoint
// pairs, e.g. (01|23). X and Y are normalized pairs ordered so that the
// smaller pair comes first; two Pairing values built from the same
// partition are therefore identical and usable as a map key.
type Pairing struct {
	X, Y Pair
}

// NewPairing returns the normalized pairing of p and q.
func NewPairing(p, q Pair) Pairing {
	if q[0] < p[0] || (q[0] == p[0] && q[1] < p[1]) {
		p, q = q, p
	}

	return Pairing{X: p, Y: q}
}

// Distances is the read-only view the package needs from a distance
// matrix: a square, symmetric, non-negative n×n structure with zero
// diagonal. Symmetry and non-negativity are assumed, not enforced —
// validate beforehand (e.g. with distmatrix.Validate) if the input is
// untrusted. Dist must be O(1) and must not be called with out-of-range
// indices; the package bounds-checks quartets before touching it.
type Distances interface {
	// N returns the matrix dimension.
	N() int

	// Dist returns the distance between items i and j.
	Dist(i, j int) float64
}

// Rows adapts a raw [][]float64 square matrix to the Distances view.
// The slice is used as-is, never copied or mutated.
type Rows [][]float64

// N returns the number of rows.
func (r Rows) N() int { return len(r) }

// Dist returns r[i][j].
func (r Rows) Dist(i, j int) float64 { return r[i][j] }

// Options configures IsAdditiveWith.
//
// Fields:
//   - Tolerance — equality slack forwarded to the per-quartet condition;
//     must be ≥ 0.
//   - Workers   — number of goroutines evaluating quartets. Values ≤ 1
//     select the sequential path. The parallel path preserves the pure-AND
//     semantics: any failing quartet makes the result false, and early
//     exit only skips work, never verdicts.
type Options struct {
	Tolerance float64
	Workers   int
}

// DefaultOptions returns the canonical defaults: DefaultTolerance,
// sequential evaluation.
func DefaultOptions() Options {
	return Options{Tolerance: DefaultTolerance, Workers: 1}
}
