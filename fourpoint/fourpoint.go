package fourpoint

import "fmt"

// quartetPairings lists the three 2+2 partitions of quartet positions
// (0,1,2,3): (01|23), (02|13), (03|12). Every 4-element set has exactly
// these three pairings and no others.
var quartetPairings = [3][4]int{
	{0, 1, 2, 3},
	{0, 2, 1, 3},
	{0, 3, 1, 2},
}

// validateQuartet guards every public entry point: d non-nil, all four
// indices in 0..n-1 and pairwise distinct.
// Returns wrapped ErrNilDistances / ErrIndexOutOfRange / ErrDuplicateIndex.
// Complexity: O(1).
func validateQuartet(d Distances, q Quartet) error {
	if d == nil {
		return ErrNilDistances
	}
	n := d.N()
	for i := 0; i < len(q); i++ {
		if q[i] < 0 || q[i] >= n {
			return fmt.Errorf("quartet %v: index %d: %w", q, q[i], ErrIndexOutOfRange)
		}
		for j := i + 1; j < len(q); j++ {
			if q[i] == q[j] {
				return fmt.Errorf("quartet %v: index %d: %w", q, q[i], ErrDuplicateIndex)
			}
		}
	}

	return nil
}

// pairingSums computes the three pairwise sums of a validated quartet
// without allocating. Order matches quartetPairings.
// Complexity: O(1), six matrix reads.
func pairingSums(d Distances, q Quartet) [3]float64 {
	return [3]float64{
		d.Dist(q[0], q[1]) + d.Dist(q[2], q[3]),
		d.Dist(q[0], q[2]) + d.Dist(q[1], q[3]),
		d.Dist(q[0], q[3]) + d.Dist(q[1], q[2]),
	}
}

// conditionHolds is the four-point kernel on three precomputed sums:
// the largest sum must be matched, within tolerance, by at least one of
// the other two. Counting sums s with (sMax-s)² < tolerance captures
// "max plus at least one other close to it" without sorting — the max
// itself contributes one to the count whenever tolerance > 0. Ties at
// the maximum pass trivially; three equal sums (the ultrametric-like
// degenerate case) yield count 3.
// Complexity: O(1).
func conditionHolds(sums [3]float64, tolerance float64) bool {
	sMax := sums[0]
	if sums[1] > sMax {
		sMax = sums[1]
	}
	if sums[2] > sMax {
		sMax = sums[2]
	}

	near := 0
	for _, s := range sums {
		if delta := sMax - s; delta*delta < tolerance {
			near++
		}
	}

	return near >= 2
}

// PairingSums computes the three candidate pairwise sums of one quartet.
//
// For quartet (q0,q1,q2,q3) the pairings and their sums are:
//
//	(q0q1|q2q3) → D(q0,q1) + D(q2,q3)
//	(q0q2|q1q3) → D(q0,q2) + D(q1,q3)
//	(q0q3|q1q2) → D(q0,q3) + D(q1,q2)
//
// The result maps each normalized Pairing key to its sum and always holds
// exactly three entries on success. Map iteration order is irrelevant to
// the four-point check (Condition consumes the sums via max+count), so
// Go's randomized iteration is harmless downstream.
//
// Errors: ErrNilDistances, ErrIndexOutOfRange, ErrDuplicateIndex.
// Complexity: O(1).
func PairingSums(d Distances, q Quartet) (map[Pairing]float64, error) {
	if err := validateQuartet(d, q); err != nil {
		return nil, fmt.Errorf("PairingSums: %w", err)
	}

	sums := make(map[Pairing]float64, len(quartetPairings))
	for _, p := range quartetPairings {
		x := NewPair(q[p[0]], q[p[1]])
		y := NewPair(q[p[2]], q[p[3]])
		sums[NewPairing(x, y)] = d.Dist(x[0], x[1]) + d.Dist(y[0], y[1])
	}

	return sums, nil
}

// Condition reports whether one quartet satisfies the four-point
// condition: the two largest of its three pairing sums are equal within
// tolerance, where sums a, b count as equal when (a-b)² < tolerance.
//
// The verdict is invariant under any permutation of the quartet — all 24
// orderings select the same three pairings, merely relabeled.
//
// Errors: ErrNegativeTolerance plus the PairingSums taxonomy.
// Complexity: O(1).
func Condition(d Distances, q Quartet, tolerance float64) (bool, error) {
	if tolerance < 0 {
		return false, fmt.Errorf("Condition: %w", ErrNegativeTolerance)
	}
	if err := validateQuartet(d, q); err != nil {
		return false, fmt.Errorf("Condition: %w", err)
	}

	return conditionHolds(pairingSums(d, q), tolerance), nil
}
