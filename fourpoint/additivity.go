package fourpoint

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// IsAdditive reports whether the whole matrix is additive: every quartet
// of indices must satisfy the four-point condition within tolerance.
//
// Quartets are enumerated once each as combinations i<j<k<l; the result
// is the logical AND over all of them, short-circuiting on the first
// failure. A matrix with n < 4 has no quartets and is vacuously additive:
// the AND over an empty constraint set is true, and this function commits
// to that convention explicitly.
//
// Errors: ErrNilDistances, ErrNegativeTolerance.
// Complexity: O(n⁴) time — C(n,4) quartets at O(1) each — and O(1) space.
func IsAdditive(d Distances, tolerance float64) (bool, error) {
	_, found, err := FirstViolation(d, tolerance)
	if err != nil {
		return false, err
	}

	return !found, nil
}

// FirstViolation scans quartets in canonical i<j<k<l order and returns
// the first one failing the four-point condition, with found=true. For an
// additive matrix (or n < 4) it returns found=false. IsAdditive is the
// negation of found; the witness quartet is the natural starting point
// when debugging a non-tree-like matrix.
//
// Errors: ErrNilDistances, ErrNegativeTolerance.
// Complexity: O(n⁴) worst case, O(1) space.
func FirstViolation(d Distances, tolerance float64) (Quartet, bool, error) {
	if d == nil {
		return Quartet{}, false, fmt.Errorf("FirstViolation: %w", ErrNilDistances)
	}
	if tolerance < 0 {
		return Quartet{}, false, fmt.Errorf("FirstViolation: %w", ErrNegativeTolerance)
	}

	n := d.N()
	for i := 0; i < n-3; i++ {
		for j := i + 1; j < n-2; j++ {
			for k := j + 1; k < n-1; k++ {
				for l := k + 1; l < n; l++ {
					q := Quartet{i, j, k, l}
					if !conditionHolds(pairingSums(d, q), tolerance) {
						return q, true, nil
					}
				}
			}
		}
	}

	return Quartet{}, false, nil
}

// IsAdditiveWith is IsAdditive with explicit Options. Workers ≤ 1 runs
// the sequential path; Workers > 1 spreads quartet evaluation across that
// many goroutines, striding the outermost index so each worker owns a
// disjoint quartet subset. Quartet checks are independent and
// side-effect free, so the verdict is identical to the sequential path;
// a shared flag lets workers stop early once any quartet has failed.
//
// Errors: ErrNilDistances, ErrNegativeTolerance.
// Complexity: O(n⁴) work total, O(Workers) goroutines.
func IsAdditiveWith(d Distances, opts Options) (bool, error) {
	if d == nil {
		return false, fmt.Errorf("IsAdditiveWith: %w", ErrNilDistances)
	}
	if opts.Tolerance < 0 {
		return false, fmt.Errorf("IsAdditiveWith: %w", ErrNegativeTolerance)
	}
	if opts.Workers <= 1 {
		return IsAdditive(d, opts.Tolerance)
	}

	n := d.N()
	if n < 4 {
		return true, nil
	}

	workers := opts.Workers
	if outer := n - 3; workers > outer {
		workers = outer // no point in more workers than outer indices
	}

	var (
		failed atomic.Bool
		wg     sync.WaitGroup
	)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(start int) {
			defer wg.Done()
			for i := start; i < n-3; i += workers {
				if failed.Load() {
					return
				}
				for j := i + 1; j < n-2; j++ {
					for k := j + 1; k < n-1; k++ {
						for l := k + 1; l < n; l++ {
							q := Quartet{i, j, k, l}
							if !conditionHolds(pairingSums(d, q), opts.Tolerance) {
								failed.Store(true)

								return
							}
						}
					}
				}
			}
		}(w)
	}
	wg.Wait()

	return !failed.Load(), nil
}
