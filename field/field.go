package field

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	xdraw "golang.org/x/image/draw"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/jumpflood/jfa"
)

// ErrInvalidScale indicates a non-positive Render scale factor.
var ErrInvalidScale = errors.New("field: scale must be at least 1")

// Distances returns an r.Height×r.Width matrix whose (y,x) entry is the
// Euclidean distance from cell (x,y) to its nearest record, or +Inf when
// the cell never found one.
// Complexity: O(W×H).
func Distances[T any](r *jfa.Result[T]) *mat.Dense {
	d := mat.NewDense(r.Height, r.Width, nil)
	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			rec := r.NearestAt(x, y)
			if !rec.Found {
				d.Set(y, x, math.Inf(1))

				continue
			}
			d.Set(y, x, jfa.Distance(jfa.Point{X: x, Y: y}, rec.Point))
		}
	}

	return d
}

// Normalize returns a copy of d with finite entries divided by the largest
// finite entry, so they fall in [0,1]; +Inf entries become 1. A field whose
// finite maximum is 0 is returned as zeros (with +Inf still mapped to 1).
func Normalize(d *mat.Dense) *mat.Dense {
	rows, cols := d.Dims()
	raw := mat.DenseCopyOf(d).RawMatrix().Data

	finite := make([]float64, 0, len(raw))
	for _, v := range raw {
		if !math.IsInf(v, 0) && !math.IsNaN(v) {
			finite = append(finite, v)
		}
	}
	peak := 0.0
	if len(finite) > 0 {
		peak = floats.Max(finite)
	}

	out := make([]float64, len(raw))
	for i, v := range raw {
		switch {
		case math.IsInf(v, 1):
			out[i] = 1
		case peak > 0:
			out[i] = v / peak
		}
	}

	return mat.NewDense(rows, cols, out)
}

// Render draws a normalized field as a grayscale image, one pixel per cell
// (0 → black, 1 → white), then upscales it by scale.
// Returns ErrInvalidScale if scale < 1.
func Render(d *mat.Dense, scale int) (*image.Gray, error) {
	if scale < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidScale, scale)
	}
	rows, cols := d.Dims()
	src := image.NewGray(image.Rect(0, 0, cols, rows))
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			v := d.At(y, x)
			if math.IsNaN(v) {
				v = 0
			}
			v = math.Max(0, math.Min(1, v))
			src.SetGray(x, y, color.Gray{Y: uint8(math.Round(v * 255))})
		}
	}
	if scale == 1 {
		return src, nil
	}

	dst := image.NewGray(image.Rect(0, 0, cols*scale, rows*scale))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)

	return dst, nil
}
