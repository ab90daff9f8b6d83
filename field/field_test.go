package field_test

import (
	"image/color"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/jumpflood/field"
	"github.com/katalvlaran/jumpflood/jfa"
)

// runLine runs the driver on the 3×1 grid [0 0 4] with predicate v != 0.
// Final records: (0,0)→(2,0), (1,0)→(2,0), (2,0)→(1,0).
func runLine(t *testing.T) *jfa.Result[int] {
	t.Helper()
	d, err := jfa.New(3, 1, []int{0, 0, 4}, 0)
	require.NoError(t, err)
	res, err := d.Run(func(v int) bool { return v != 0 })
	require.NoError(t, err)

	return res
}

// TestDistances checks per-cell Euclidean distances to the records.
func TestDistances(t *testing.T) {
	d := field.Distances(runLine(t))

	rows, cols := d.Dims()
	assert.Equal(t, 1, rows)
	assert.Equal(t, 3, cols)
	if diff := cmp.Diff([]float64{2, 1, 1}, d.RawRowView(0)); diff != "" {
		t.Errorf("distances mismatch (-want +got):\n%s", diff)
	}
}

// TestDistances_Unresolved maps cells without a record to +Inf.
func TestDistances_Unresolved(t *testing.T) {
	drv, err := jfa.New(2, 2, []int{1, 1, 1, 1}, 1)
	require.NoError(t, err)
	res, err := drv.Run(func(int) bool { return true })
	require.NoError(t, err)

	d := field.Distances(res)
	for _, v := range d.RawMatrix().Data {
		assert.True(t, math.IsInf(v, 1))
	}
}

// TestNormalize covers scaling, +Inf and the all-zero field.
func TestNormalize(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-12)

	got := field.Normalize(mat.NewDense(1, 3, []float64{2, 1, 1}))
	if diff := cmp.Diff([]float64{1, 0.5, 0.5}, got.RawRowView(0), approx); diff != "" {
		t.Errorf("scaled mismatch (-want +got):\n%s", diff)
	}

	got = field.Normalize(mat.NewDense(2, 2, []float64{0, 4, math.Inf(1), 2}))
	if diff := cmp.Diff([]float64{0, 1, 1, 0.5}, got.RawMatrix().Data, approx); diff != "" {
		t.Errorf("inf mismatch (-want +got):\n%s", diff)
	}

	got = field.Normalize(mat.NewDense(1, 2, []float64{0, 0}))
	assert.Equal(t, []float64{0, 0}, got.RawRowView(0))

	src := mat.NewDense(1, 1, []float64{3})
	_ = field.Normalize(src)
	assert.Equal(t, 3.0, src.At(0, 0), "input must not be modified")
}

// TestRender checks gray levels and nearest-neighbor upscaling.
func TestRender(t *testing.T) {
	norm := field.Normalize(field.Distances(runLine(t)))

	img, err := field.Render(norm, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, img.Bounds().Dx())
	assert.Equal(t, 1, img.Bounds().Dy())
	assert.Equal(t, color.Gray{Y: 255}, img.GrayAt(0, 0))
	assert.Equal(t, color.Gray{Y: 128}, img.GrayAt(1, 0))

	big, err := field.Render(norm, 3)
	require.NoError(t, err)
	assert.Equal(t, 9, big.Bounds().Dx())
	assert.Equal(t, 3, big.Bounds().Dy())
	assert.Equal(t, color.Gray{Y: 255}, big.GrayAt(2, 2))
	assert.Equal(t, color.Gray{Y: 128}, big.GrayAt(3, 1))
	assert.Equal(t, color.Gray{Y: 128}, big.GrayAt(8, 2))
}

// TestRender_InvalidScale rejects scale < 1.
func TestRender_InvalidScale(t *testing.T) {
	_, err := field.Render(mat.NewDense(1, 1, nil), 0)
	assert.ErrorIs(t, err, field.ErrInvalidScale)
}
