package referenceframe

import (
	"math"
	"math/rand"
	"testing"

	"github.com/golang/geo/r2"
	"go.viam.com/test"

	"go.viam.com/rover/rimage"
)

func TestVehicleCoords(t *testing.T) {
	mask := rimage.NewMask(320, 160)
	test.That(t, VehicleCoords(mask), test.ShouldHaveLength, 0)

	mask.Set(160, 0)
	mask.Set(0, 159)
	mask.Set(319, 159)
	pts := VehicleCoords(mask)
	test.That(t, pts, test.ShouldResemble, []r2.Point{
		{X: 160, Y: 0},
		{X: 1, Y: 160},
		{X: 1, Y: -159},
	})

	odd := rimage.NewMask(5, 2)
	odd.Set(2, 1)
	test.That(t, VehicleCoords(odd), test.ShouldResemble, []r2.Point{{X: 1, Y: 0.5}})
}

func TestToPolar(t *testing.T) {
	polar := ToPolar([]r2.Point{{X: 10, Y: 0}, {X: 0, Y: 5}, {X: 3, Y: -4}})
	test.That(t, polar, test.ShouldHaveLength, 3)
	test.That(t, polar[0].Distance, test.ShouldAlmostEqual, 10.0)
	test.That(t, polar[0].Angle, test.ShouldAlmostEqual, 0.0)
	test.That(t, polar[1].Angle, test.ShouldAlmostEqual, math.Pi/2)
	test.That(t, polar[2].Distance, test.ShouldAlmostEqual, 5.0)
	test.That(t, polar[2].Angle, test.ShouldBeLessThan, 0)

	test.That(t, ToPolar(nil), test.ShouldHaveLength, 0)

	nan := ToPolar([]r2.Point{{X: math.NaN(), Y: 1}})
	test.That(t, math.IsNaN(nan[0].Distance), test.ShouldBeTrue)
	test.That(t, math.IsNaN(nan[0].Angle), test.ShouldBeTrue)
}

func TestPolarRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	mask := rimage.NewMask(64, 48)
	for n := 0; n < 500; n++ {
		mask.Set(rng.Intn(64), rng.Intn(48))
	}
	pts := VehicleCoords(mask)
	test.That(t, pts, test.ShouldHaveLength, mask.Count())

	back := FromPolar(ToPolar(pts))
	test.That(t, back, test.ShouldHaveLength, len(pts))
	for i := range pts {
		test.That(t, back[i].X, test.ShouldAlmostEqual, pts[i].X, 1e-9)
		test.That(t, back[i].Y, test.ShouldAlmostEqual, pts[i].Y, 1e-9)
	}
}
