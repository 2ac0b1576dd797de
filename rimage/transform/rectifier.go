package transform

import (
	"context"
	"math"

	"github.com/golang/geo/r2"
	"go.opencensus.io/trace"

	"go.viam.com/rover/rimage"
	"go.viam.com/rover/utils"
)

// Rectifier warps camera frames so that a trapezoid of ground in front of the camera becomes a
// top-down rectangle. Output pixels whose source falls outside the frame are black.
type Rectifier struct {
	src, dst [4]r2.Point
	forward  *Homography
	inverse  *Homography
	parallel bool
}

// NewRectifier builds a rectifier from four source points in camera space and the four destination
// points they should land on. See GetPerspectiveTransform for the ordering precondition.
func NewRectifier(src, dst [4]r2.Point, parallel bool) (*Rectifier, error) {
	forward, err := GetPerspectiveTransform(src, dst)
	if err != nil {
		return nil, err
	}
	inverse, err := forward.Inverse()
	if err != nil {
		return nil, err
	}
	return &Rectifier{src: src, dst: dst, forward: forward, inverse: inverse, parallel: parallel}, nil
}

// Transform returns the camera to top-down homography.
func (r *Rectifier) Transform() Homography {
	return *r.forward
}

// Rectify resamples img through the transform with bilinear interpolation. The output has the
// same size as the input.
func (r *Rectifier) Rectify(ctx context.Context, img *rimage.Image) (*rimage.Image, error) {
	ctx, span := trace.StartSpan(ctx, "transform::Rectifier::Rectify")
	defer span.End()

	if img == nil {
		return nil, rimage.NewShapeMismatchError("a frame", "nil")
	}
	width, height := img.Width(), img.Height()
	out := rimage.NewImage(width, height)
	row := func(y int) {
		for x := 0; x < width; x++ {
			srcPt, ok := r.inverse.Apply(r2.Point{X: float64(x), Y: float64(y)})
			if !ok {
				continue
			}
			if c, ok := bilinear(img, srcPt); ok {
				out.SetXY(x, y, c)
			}
		}
	}

	var err error
	if r.parallel {
		err = utils.ParallelForEachRow(ctx, height, row)
	} else {
		err = utils.ForEachRow(ctx, height, row)
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

// bilinear samples img at pt treating everything outside the frame as black. It returns false when
// pt is far enough outside that no real pixel contributes.
func bilinear(img *rimage.Image, pt r2.Point) (rimage.Color, bool) {
	x0f, y0f := math.Floor(pt.X), math.Floor(pt.Y)
	if x0f < -1 || y0f < -1 || x0f >= float64(img.Width()) || y0f >= float64(img.Height()) {
		return rimage.Color{}, false
	}
	x0, y0 := int(x0f), int(y0f)
	fx, fy := pt.X-x0f, pt.Y-y0f

	var r, g, b float64
	add := func(x, y int, w float64) {
		if w == 0 || !img.In(x, y) {
			return
		}
		c := img.GetXY(x, y)
		r += w * float64(c.R)
		g += w * float64(c.G)
		b += w * float64(c.B)
	}
	add(x0, y0, (1-fx)*(1-fy))
	add(x0+1, y0, fx*(1-fy))
	add(x0, y0+1, (1-fx)*fy)
	add(x0+1, y0+1, fx*fy)
	return rimage.NewColor(toUint8(r), toUint8(g), toUint8(b)), true
}

func toUint8(v float64) uint8 {
	return uint8(utils.TruncateClamp(math.Round(v), 0, 255))
}
