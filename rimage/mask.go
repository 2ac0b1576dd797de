package rimage

import (
	"image"
)

// Mask is a binary image: every cell is either set (1) or unset (0).
type Mask struct {
	data          []uint8
	width, height int
}

// NewMask returns an empty mask of the given size.
func NewMask(width, height int) *Mask {
	return &Mask{
		data:   make([]uint8, width*height),
		width:  width,
		height: height,
	}
}

// Width returns the number of columns.
func (m *Mask) Width() int {
	return m.width
}

// Height returns the number of rows.
func (m *Mask) Height() int {
	return m.height
}

// Size returns the width and height as a point.
func (m *Mask) Size() image.Point {
	return image.Point{m.width, m.height}
}

// Set marks (x, y), which must be in bounds.
func (m *Mask) Set(x, y int) {
	m.data[y*m.width+x] = 1
}

// At returns 1 if (x, y) is set and 0 otherwise.
func (m *Mask) At(x, y int) uint8 {
	return m.data[y*m.width+x]
}

// IsSet returns whether (x, y) is set.
func (m *Mask) IsSet(x, y int) bool {
	return m.data[y*m.width+x] != 0
}

// Count returns the number of set cells.
func (m *Mask) Count() int {
	n := 0
	for _, v := range m.data {
		n += int(v)
	}
	return n
}

// Iterate visits every set cell in row-major order until visit returns false.
func (m *Mask) Iterate(visit func(row, col int) bool) {
	for k, v := range m.data {
		if v == 0 {
			continue
		}
		if !visit(k/m.width, k%m.width) {
			return
		}
	}
}

// Gray renders the mask as a gray image, set cells white.
func (m *Mask) Gray() *image.Gray {
	out := image.NewGray(image.Rect(0, 0, m.width, m.height))
	for k, v := range m.data {
		out.Pix[(k/m.width)*out.Stride+k%m.width] = v * 255
	}
	return out
}
