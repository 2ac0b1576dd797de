package referenceframe

import (
	"math"

	"github.com/golang/geo/r2"

	"go.viam.com/rover/rimage"
)

// VehicleCoords converts every set pixel of a rectified mask into the vehicle frame: the vehicle
// sits at the middle of the bottom edge, +x points forward (up the image) and +y points left.
// Points come out in the mask's row-major order.
func VehicleCoords(mask *rimage.Mask) []r2.Point {
	height := float64(mask.Height())
	halfWidth := float64(mask.Width()) / 2
	pts := make([]r2.Point, 0, mask.Count())
	mask.Iterate(func(row, col int) bool {
		pts = append(pts, r2.Point{
			X: -(float64(row) - height),
			Y: -(float64(col) - halfWidth),
		})
		return true
	})
	return pts
}

// Polar is a point given by its distance from the vehicle and its bearing in radians; 0 is straight
// ahead and positive bearings are to the left.
type Polar struct {
	Distance float64
	Angle    float64
}

// ToPolar converts vehicle frame points to polar form, element-wise and in order.
func ToPolar(pts []r2.Point) []Polar {
	out := make([]Polar, len(pts))
	for i, p := range pts {
		out[i] = Polar{Distance: math.Hypot(p.X, p.Y), Angle: math.Atan2(p.Y, p.X)}
	}
	return out
}

// FromPolar converts polar points back to the vehicle frame.
func FromPolar(polar []Polar) []r2.Point {
	out := make([]r2.Point, len(polar))
	for i, p := range polar {
		out[i] = r2.Point{X: p.Distance * math.Cos(p.Angle), Y: p.Distance * math.Sin(p.Angle)}
	}
	return out
}
