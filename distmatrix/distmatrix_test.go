package distmatrix_test

import (
	"testing"

	"github.com/phylokit/treemetric/distmatrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew verifies allocation and the zero-init contract.
func TestNew(t *testing.T) {
	d, err := distmatrix.New(3)
	require.NoError(t, err)
	assert.Equal(t, 3, d.N())

	v, err := d.At(2, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v, "fresh matrix is all zeros")

	_, err = distmatrix.New(0)
	assert.ErrorIs(t, err, distmatrix.ErrBadShape)

	_, err = distmatrix.New(-2)
	assert.ErrorIs(t, err, distmatrix.ErrBadShape)
}

// TestSet_MirrorsBothTriangles: Set writes (i,j) and (j,i) so symmetry
// holds by construction.
func TestSet_MirrorsBothTriangles(t *testing.T) {
	d, err := distmatrix.New(4)
	require.NoError(t, err)

	require.NoError(t, d.Set(1, 3, 2.5))

	upper, err := d.At(1, 3)
	require.NoError(t, err)
	lower, err := d.At(3, 1)
	require.NoError(t, err)
	assert.Equal(t, 2.5, upper)
	assert.Equal(t, 2.5, lower, "mirrored write must land in the lower triangle")
}

// TestAccessors_Bounds: At/Set return ErrOutOfRange instead of panicking.
func TestAccessors_Bounds(t *testing.T) {
	d, err := distmatrix.New(2)
	require.NoError(t, err)

	_, err = d.At(2, 0)
	assert.ErrorIs(t, err, distmatrix.ErrOutOfRange)

	_, err = d.At(0, -1)
	assert.ErrorIs(t, err, distmatrix.ErrOutOfRange)

	err = d.Set(-1, 0, 1)
	assert.ErrorIs(t, err, distmatrix.ErrOutOfRange)
}

// TestSet_RejectsNonFinite: the numeric policy rejects NaN and ±Inf at
// the write site.
func TestSet_RejectsNonFinite(t *testing.T) {
	d, err := distmatrix.New(2)
	require.NoError(t, err)

	assert.ErrorIs(t, d.Set(0, 1, nan()), distmatrix.ErrNaNInf)
	assert.ErrorIs(t, d.Set(0, 1, posInf()), distmatrix.ErrNaNInf)
	assert.ErrorIs(t, d.Set(0, 1, negInf()), distmatrix.ErrNaNInf)
}

// TestFromRows copies values as given, including asymmetry (which is
// Validate's job to catch, not ingestion's).
func TestFromRows(t *testing.T) {
	d, err := distmatrix.FromRows([][]float64{
		{0, 1, 4},
		{2, 0, 5},
		{4, 5, 0},
	})
	require.NoError(t, err)

	upper, err := d.At(0, 1)
	require.NoError(t, err)
	lower, err := d.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, upper)
	assert.Equal(t, 2.0, lower, "FromRows must preserve input asymmetry")
}

// TestFromRows_Errors: empty, ragged, and non-finite input.
func TestFromRows_Errors(t *testing.T) {
	_, err := distmatrix.FromRows(nil)
	assert.ErrorIs(t, err, distmatrix.ErrBadShape)

	_, err = distmatrix.FromRows([][]float64{{0, 1}, {1}})
	assert.ErrorIs(t, err, distmatrix.ErrBadShape)

	_, err = distmatrix.FromRows([][]float64{{0, nan()}, {1, 0}})
	assert.ErrorIs(t, err, distmatrix.ErrNaNInf)
}

// TestClone: deep copy, independent storage.
func TestClone(t *testing.T) {
	d, err := distmatrix.FromRows([][]float64{{0, 3}, {3, 0}})
	require.NoError(t, err)

	c := d.Clone()
	require.NoError(t, c.Set(0, 1, 9))

	orig, err := d.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 3.0, orig, "mutating the clone must not touch the original")
	assert.Equal(t, 9.0, c.Dist(0, 1))
}
