package rimage

import (
	"fmt"
	"image"
	"image/color"
)

// OverlayChannels is the number of masks held by an Overlay.
const OverlayChannels = 3

// An Overlay stacks three same-sized masks as the red, green and blue channels of one display image.
type Overlay struct {
	channels      [OverlayChannels]*Mask
	width, height int
}

// NewOverlay stacks the given masks in channel order. All masks must be the same size.
func NewOverlay(channels [OverlayChannels]*Mask) (*Overlay, error) {
	if channels[0] == nil {
		return nil, NewShapeMismatchError("3 masks", "nil channel 0")
	}
	size := channels[0].Size()
	for i, m := range channels {
		if m == nil {
			return nil, NewShapeMismatchError("3 masks", fmt.Sprintf("nil channel %d", i))
		}
		if m.Size() != size {
			return nil, NewSizeMismatchError(size, m.Size())
		}
	}
	return &Overlay{channels: channels, width: size.X, height: size.Y}, nil
}

// Channel returns the mask stored at index i.
func (o *Overlay) Channel(i int) *Mask {
	return o.channels[i]
}

// Size returns the width and height as a point.
func (o *Overlay) Size() image.Point {
	return image.Point{o.width, o.height}
}

// Image renders the overlay with each set channel at full intensity.
func (o *Overlay) Image() *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, o.width, o.height))
	for y := 0; y < o.height; y++ {
		for x := 0; x < o.width; x++ {
			out.SetNRGBA(x, y, color.NRGBA{
				R: o.channels[0].At(x, y) * 255,
				G: o.channels[1].At(x, y) * 255,
				B: o.channels[2].At(x, y) * 255,
				A: 255,
			})
		}
	}
	return out
}
