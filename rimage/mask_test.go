package rimage

import (
	"errors"
	"image"
	"testing"

	"go.viam.com/test"
)

func TestMask(t *testing.T) {
	m := NewMask(4, 3)
	test.That(t, m.Count(), test.ShouldEqual, 0)
	m.Set(3, 0)
	m.Set(1, 2)
	m.Set(0, 1)
	test.That(t, m.Count(), test.ShouldEqual, 3)
	test.That(t, m.IsSet(3, 0), test.ShouldBeTrue)
	test.That(t, m.At(2, 2), test.ShouldEqual, uint8(0))

	var visited []image.Point
	m.Iterate(func(row, col int) bool {
		visited = append(visited, image.Point{col, row})
		return true
	})
	test.That(t, visited, test.ShouldResemble, []image.Point{{3, 0}, {0, 1}, {1, 2}})

	visited = nil
	m.Iterate(func(row, col int) bool {
		visited = append(visited, image.Point{col, row})
		return false
	})
	test.That(t, visited, test.ShouldHaveLength, 1)

	gray := m.Gray()
	test.That(t, gray.GrayAt(1, 2).Y, test.ShouldEqual, uint8(255))
	test.That(t, gray.GrayAt(2, 2).Y, test.ShouldEqual, uint8(0))
}

func TestOverlay(t *testing.T) {
	obstacle, rock, navigable := NewMask(2, 2), NewMask(2, 2), NewMask(2, 2)
	obstacle.Set(0, 0)
	rock.Set(0, 0)
	navigable.Set(1, 1)

	overlay, err := NewOverlay([OverlayChannels]*Mask{obstacle, rock, navigable})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, overlay.Channel(2), test.ShouldEqual, navigable)

	img := overlay.Image()
	c := img.NRGBAAt(0, 0)
	test.That(t, []uint8{c.R, c.G, c.B, c.A}, test.ShouldResemble, []uint8{255, 255, 0, 255})
	c = img.NRGBAAt(1, 1)
	test.That(t, []uint8{c.R, c.G, c.B}, test.ShouldResemble, []uint8{0, 0, 255})

	var shapeErr *ShapeMismatchError
	_, err = NewOverlay([OverlayChannels]*Mask{obstacle, NewMask(3, 2), navigable})
	test.That(t, errors.As(err, &shapeErr), test.ShouldBeTrue)
	test.That(t, shapeErr.Actual, test.ShouldEqual, "3x2")

	_, err = NewOverlay([OverlayChannels]*Mask{obstacle, nil, navigable})
	test.That(t, errors.As(err, &shapeErr), test.ShouldBeTrue)
}
