package utils

import (
	"image"
	"testing"

	"go.viam.com/test"
)

func TestNewOutOfRangeError(t *testing.T) {
	err := NewOutOfRangeError("world cell", image.Pt(3, 12), image.Pt(0, 0), image.Pt(9, 9))
	test.That(t, err.Error(), test.ShouldEqual, "world cell (3,12) out of range [(0,0), (9,9)]")

	err = NewOutOfRangeError("threshold", 300, 0, 255)
	test.That(t, err.Error(), test.ShouldEqual, "threshold 300 out of range [0, 255]")
}
