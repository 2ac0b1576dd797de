package transform

import (
	"math"

	"github.com/golang/geo/r2"
	"gonum.org/v1/gonum/mat"
)

// collinearEpsilon is the smallest doubled triangle area, in square pixels, still considered a
// proper triangle.
const collinearEpsilon = 1e-6

// GetPerspectiveTransform returns the unique homography mapping each src[i] onto dst[i].
//
// Both quadrilaterals must list their corners in the same winding order (for example both clockwise
// starting from the top-left). This is not checked: mismatched orderings still yield a valid matrix
// that mirrors or twists the output.
func GetPerspectiveTransform(src, dst [4]r2.Point) (*Homography, error) {
	if err := checkQuad("source", src); err != nil {
		return nil, err
	}
	if err := checkQuad("destination", dst); err != nil {
		return nil, err
	}

	// x' = (h00 x + h01 y + h02) / (h20 x + h21 y + 1)
	// y' = (h10 x + h11 y + h12) / (h20 x + h21 y + 1)
	a := mat.NewDense(8, 8, nil)
	b := mat.NewVecDense(8, nil)
	for i := 0; i < 4; i++ {
		x, y := src[i].X, src[i].Y
		u, v := dst[i].X, dst[i].Y
		a.SetRow(2*i, []float64{x, y, 1, 0, 0, 0, -x * u, -y * u})
		a.SetRow(2*i+1, []float64{0, 0, 0, x, y, 1, -x * v, -y * v})
		b.SetVec(2*i, u)
		b.SetVec(2*i+1, v)
	}

	var coeffs mat.VecDense
	if err := coeffs.SolveVec(a, b); err != nil {
		return nil, NewGeometryError("cannot solve for transform: %v", err)
	}

	h := &Homography{
		{coeffs.AtVec(0), coeffs.AtVec(1), coeffs.AtVec(2)},
		{coeffs.AtVec(3), coeffs.AtVec(4), coeffs.AtVec(5)},
		{coeffs.AtVec(6), coeffs.AtVec(7), 1},
	}
	for _, v := range h.flat() {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, NewGeometryError("transform has non-finite coefficients")
		}
	}
	return h, nil
}

// checkQuad rejects quadrilaterals where any three corners are collinear, which also covers
// repeated corners.
func checkQuad(name string, pts [4]r2.Point) error {
	for i, p := range pts {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			return NewGeometryError("%s point %d is not finite", name, i)
		}
	}
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			for k := j + 1; k < 4; k++ {
				area := pts[j].Sub(pts[i]).Cross(pts[k].Sub(pts[i]))
				if math.Abs(area) < collinearEpsilon {
					return NewGeometryError("%s points %d, %d and %d are collinear", name, i, j, k)
				}
			}
		}
	}
	return nil
}
