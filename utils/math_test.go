package utils

import (
	"math"
	"testing"

	"go.viam.com/test"
)

func TestAngleConversions(t *testing.T) {
	test.That(t, DegToRad(180), test.ShouldAlmostEqual, math.Pi)
	test.That(t, RadToDeg(math.Pi/2), test.ShouldAlmostEqual, 90)
	test.That(t, ModAngDeg(-90), test.ShouldAlmostEqual, 270)
	test.That(t, ModAngDeg(720), test.ShouldAlmostEqual, 0)
}

func TestIsFinite(t *testing.T) {
	test.That(t, IsFinite(), test.ShouldBeTrue)
	test.That(t, IsFinite(1, -2, 3e300), test.ShouldBeTrue)
	test.That(t, IsFinite(1, math.NaN()), test.ShouldBeFalse)
	test.That(t, IsFinite(math.Inf(-1)), test.ShouldBeFalse)
}

func TestTruncateClamp(t *testing.T) {
	test.That(t, TruncateClamp(3.9, 0, 199), test.ShouldEqual, 3)
	test.That(t, TruncateClamp(-0.9, 0, 199), test.ShouldEqual, 0)
	test.That(t, TruncateClamp(-48, 0, 199), test.ShouldEqual, 0)
	test.That(t, TruncateClamp(199.99, 0, 199), test.ShouldEqual, 199)
	test.That(t, TruncateClamp(1e30, 0, 199), test.ShouldEqual, 199)
	test.That(t, TruncateClamp(-1e30, 0, 199), test.ShouldEqual, 0)
	test.That(t, ClampInt(-1, 0, 5), test.ShouldEqual, 0)
	test.That(t, ClampInt(9, 0, 5), test.ShouldEqual, 5)
	test.That(t, ClampInt(3, 0, 5), test.ShouldEqual, 3)
}

func TestSaturatingAddUint32(t *testing.T) {
	test.That(t, SaturatingAddUint32(1, 1), test.ShouldEqual, uint32(2))
	test.That(t, SaturatingAddUint32(math.MaxUint32-1, 5), test.ShouldEqual, uint32(math.MaxUint32))
}
