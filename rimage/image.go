// Package rimage holds the RGB frame, binary mask and overlay types that flow through the
// perception pipeline, along with helpers to read and write them as image files.
package rimage

import (
	"fmt"
	"image"
	"image/color"
)

// Image is an RGB frame stored row-major. The zero point is the top-left pixel.
type Image struct {
	data          []Color
	width, height int
}

// NewImage returns a black image of the given size.
func NewImage(width, height int) *Image {
	return &Image{
		data:   make([]Color, width*height),
		width:  width,
		height: height,
	}
}

// NewImageFromRGB builds an image from interleaved 8-bit RGB samples. pix must hold exactly
// width*height*3 values.
func NewImageFromRGB(width, height int, pix []uint8) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, NewShapeMismatchError("positive width and height", fmt.Sprintf("%dx%d", width, height))
	}
	if len(pix) != width*height*3 {
		return nil, NewShapeMismatchError(
			fmt.Sprintf("%d samples (%dx%dx3)", width*height*3, width, height),
			fmt.Sprintf("%d samples", len(pix)),
		)
	}
	img := NewImage(width, height)
	for i := range img.data {
		img.data[i] = Color{pix[3*i], pix[3*i+1], pix[3*i+2]}
	}
	return img, nil
}

// FrameFromImage converts a decoded camera image into a frame. Single channel images and empty
// images are rejected since they carry no color information to classify.
func FrameFromImage(img image.Image) (*Image, error) {
	if img == nil {
		return nil, NewShapeMismatchError("an image", "nil")
	}
	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, NewShapeMismatchError("non-empty image", fmt.Sprintf("bounds %v", bounds))
	}
	switch img.ColorModel() {
	case color.GrayModel, color.Gray16Model, color.AlphaModel, color.Alpha16Model:
		return nil, NewShapeMismatchError("3 color channels", fmt.Sprintf("single channel %T", img))
	default:
	}
	return ConvertImage(img), nil
}

// ConvertImage copies any image into an Image. The result is always anchored at (0, 0).
func ConvertImage(img image.Image) *Image {
	if ii, ok := img.(*Image); ok {
		return ii.Clone()
	}
	bounds := img.Bounds()
	out := NewImage(bounds.Dx(), bounds.Dy())
	switch src := img.(type) {
	case *image.NRGBA:
		for y := 0; y < out.height; y++ {
			row := src.Pix[y*src.Stride:]
			for x := 0; x < out.width; x++ {
				out.data[out.kxy(x, y)] = Color{row[4*x], row[4*x+1], row[4*x+2]}
			}
		}
	case *image.RGBA:
		for y := 0; y < out.height; y++ {
			row := src.Pix[y*src.Stride:]
			for x := 0; x < out.width; x++ {
				out.data[out.kxy(x, y)] = Color{row[4*x], row[4*x+1], row[4*x+2]}
			}
		}
	default:
		for y := 0; y < out.height; y++ {
			for x := 0; x < out.width; x++ {
				out.data[out.kxy(x, y)] = NewColorFromColor(img.At(bounds.Min.X+x, bounds.Min.Y+y))
			}
		}
	}
	return out
}

func (i *Image) kxy(x, y int) int {
	return (y * i.width) + x
}

// ColorModel implements image.Image.
func (i *Image) ColorModel() color.Model {
	return ColorModel
}

// Bounds implements image.Image.
func (i *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, i.width, i.height)
}

// At implements image.Image.
func (i *Image) At(x, y int) color.Color {
	if !i.In(x, y) {
		return Black
	}
	return i.data[i.kxy(x, y)]
}

// Width returns the number of columns.
func (i *Image) Width() int {
	return i.width
}

// Height returns the number of rows.
func (i *Image) Height() int {
	return i.height
}

// Size returns the width and height as a point.
func (i *Image) Size() image.Point {
	return image.Point{i.width, i.height}
}

// In returns whether (x, y) is inside the image.
func (i *Image) In(x, y int) bool {
	return x >= 0 && y >= 0 && x < i.width && y < i.height
}

// Get returns the color at p, which must be in bounds.
func (i *Image) Get(p image.Point) Color {
	return i.data[i.kxy(p.X, p.Y)]
}

// GetXY returns the color at (x, y), which must be in bounds.
func (i *Image) GetXY(x, y int) Color {
	return i.data[i.kxy(x, y)]
}

// Set sets the color at p, which must be in bounds.
func (i *Image) Set(p image.Point, c Color) {
	i.data[i.kxy(p.X, p.Y)] = c
}

// SetXY sets the color at (x, y), which must be in bounds.
func (i *Image) SetXY(x, y int, c Color) {
	i.data[i.kxy(x, y)] = c
}

// Fill sets every pixel to c.
func (i *Image) Fill(c Color) {
	for k := range i.data {
		i.data[k] = c
	}
}

// Clone returns a deep copy.
func (i *Image) Clone() *Image {
	data := make([]Color, len(i.data))
	copy(data, i.data)
	return &Image{data: data, width: i.width, height: i.height}
}
