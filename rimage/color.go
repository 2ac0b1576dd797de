package rimage

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a single opaque 8-bit RGB pixel.
type Color struct {
	R, G, B uint8
}

// NewColor returns the color with the given channel values.
func NewColor(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// NewColorFromColor converts any color.Color into a Color, dropping alpha.
// Fully transparent colors become Black.
func NewColorFromColor(c color.Color) Color {
	if cc, ok := c.(Color); ok {
		return cc
	}
	cc, ok := colorful.MakeColor(c)
	if !ok {
		return Black
	}
	r, g, b := cc.Clamped().RGB255()
	return Color{R: r, G: g, B: b}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	a = 0xffff
	return
}

// RGB255 returns the three channel values.
func (c Color) RGB255() (uint8, uint8, uint8) {
	return c.R, c.G, c.B
}

// Hsv returns hue in [0, 360), saturation and value in [0, 1].
func (c Color) Hsv() (h, s, v float64) {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hsv()
}

// Hex returns the color as #rrggbb.
func (c Color) Hex() string {
	return fmt.Sprintf("#%.2x%.2x%.2x", c.R, c.G, c.B)
}

func (c Color) String() string {
	return fmt.Sprintf("%s (%d,%d,%d)", c.Hex(), c.R, c.G, c.B)
}

// ColorModel converts any color into a Color.
var ColorModel = color.ModelFunc(func(c color.Color) color.Color {
	return NewColorFromColor(c)
})

var (
	Red   = NewColor(255, 0, 0)
	Green = NewColor(0, 255, 0)
	Blue  = NewColor(0, 0, 255)

	White = NewColor(255, 255, 255)
	Gray  = NewColor(128, 128, 128)
	Black = NewColor(0, 0, 0)

	Yellow = NewColor(255, 255, 0)
)
