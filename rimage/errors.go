package rimage

import (
	"fmt"
	"image"
)

// ShapeMismatchError is returned when an image's dimensions or channel layout are not what an
// operation expects.
type ShapeMismatchError struct {
	Expected string
	Actual   string
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("shape mismatch: expected %s but got %s", e.Expected, e.Actual)
}

// NewShapeMismatchError returns a ShapeMismatchError describing both shapes.
func NewShapeMismatchError(expected, actual string) error {
	return &ShapeMismatchError{Expected: expected, Actual: actual}
}

// NewSizeMismatchError returns a ShapeMismatchError for two differing width/height pairs.
func NewSizeMismatchError(expected, actual image.Point) error {
	return NewShapeMismatchError(
		fmt.Sprintf("%dx%d", expected.X, expected.Y),
		fmt.Sprintf("%dx%d", actual.X, actual.Y),
	)
}
