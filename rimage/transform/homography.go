// Package transform computes projective transforms between image planes and uses them to rectify
// camera frames into a top-down view of the ground.
package transform

import (
	"math"

	"github.com/golang/geo/r2"
	"gonum.org/v1/gonum/mat"
)

// Homography is a 3x3 matrix (represented as a 2D array) used to transform a plane from the perspective
// of one 2D view to the perspective of another. Indices are [row][column]; points are (x, y) = (col, row).
type Homography [3][3]float64

// At returns the value at the given row and column.
func (h *Homography) At(row, col int) float64 {
	return h[row][col]
}

// Apply maps pt through the homography. It returns false when pt lands on the line at infinity
// or the result is not finite.
func (h *Homography) Apply(pt r2.Point) (r2.Point, bool) {
	x := h.At(0, 0)*pt.X + h.At(0, 1)*pt.Y + h.At(0, 2)
	y := h.At(1, 0)*pt.X + h.At(1, 1)*pt.Y + h.At(1, 2)
	z := h.At(2, 0)*pt.X + h.At(2, 1)*pt.Y + h.At(2, 2)
	if z == 0 {
		return r2.Point{}, false
	}
	out := r2.Point{X: x / z, Y: y / z}
	if math.IsNaN(out.X) || math.IsNaN(out.Y) || math.IsInf(out.X, 0) || math.IsInf(out.Y, 0) {
		return r2.Point{}, false
	}
	return out, true
}

// Inverse returns the homography mapping back from the destination plane.
func (h *Homography) Inverse() (*Homography, error) {
	m := mat.NewDense(3, 3, h.flat())
	var inv mat.Dense
	if err := inv.Inverse(m); err != nil {
		return nil, NewGeometryError("transform is not invertible: %v", err)
	}
	var out Homography
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out[r][c] = inv.At(r, c)
		}
	}
	return &out, nil
}

func (h *Homography) flat() []float64 {
	return []float64{
		h[0][0], h[0][1], h[0][2],
		h[1][0], h[1][1], h[1][2],
		h[2][0], h[2][1], h[2][2],
	}
}
