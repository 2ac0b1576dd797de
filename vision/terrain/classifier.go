// Package terrain classifies rectified camera pixels into navigable ground, obstacles and rock
// samples using fixed RGB thresholds.
package terrain

import (
	"context"

	"go.opencensus.io/trace"

	"go.viam.com/rover/rimage"
)

// Masks holds one binary mask per category, all the size of the classified frame.
//
// Navigable and Obstacle never overlap. Rock is computed independently and may overlap Obstacle:
// a dark yellow sample can pass both tests.
type Masks struct {
	Obstacle  *rimage.Mask
	Rock      *rimage.Mask
	Navigable *rimage.Mask
}

// Get returns the mask for c.
func (m *Masks) Get(c Category) *rimage.Mask {
	switch c {
	case Obstacle:
		return m.Obstacle
	case Rock:
		return m.Rock
	case Navigable:
		return m.Navigable
	default:
		return nil
	}
}

// Overlay stacks the masks in channel order for display.
func (m *Masks) Overlay() (*rimage.Overlay, error) {
	return rimage.NewOverlay([rimage.OverlayChannels]*rimage.Mask{m.Obstacle, m.Rock, m.Navigable})
}

// A Classifier thresholds frames. It holds no state besides its thresholds.
type Classifier struct {
	thresholds Thresholds
	rock       RockThresholds
}

// NewClassifier returns a classifier. Passing UseDefaultThresholds selects DefaultThresholds.
func NewClassifier(thresholds Thresholds, rock RockThresholds) *Classifier {
	return &Classifier{thresholds: thresholds.OrDefault(), rock: rock}
}

// Thresholds returns the navigable/obstacle thresholds in effect.
func (c *Classifier) Thresholds() Thresholds {
	return c.thresholds
}

// RockThresholds returns the rock thresholds in effect.
func (c *Classifier) RockThresholds() RockThresholds {
	return c.rock
}

// IsNavigable returns whether every channel is strictly above the thresholds.
func (c *Classifier) IsNavigable(col rimage.Color) bool {
	return int(col.R) > c.thresholds.R && int(col.G) > c.thresholds.G && int(col.B) > c.thresholds.B
}

// IsObstacle returns whether every channel is strictly below the thresholds. Pixels with mixed
// comparisons are neither navigable nor obstacle.
func (c *Classifier) IsObstacle(col rimage.Color) bool {
	return int(col.R) < c.thresholds.R && int(col.G) < c.thresholds.G && int(col.B) < c.thresholds.B
}

// IsRock returns whether the pixel looks like a rock sample.
func (c *Classifier) IsRock(col rimage.Color) bool {
	return int(col.R) > c.rock.MinRed && int(col.G) > c.rock.MinGreen && int(col.B) < c.rock.MaxBlue
}

// Classify builds the three category masks for img.
func (c *Classifier) Classify(ctx context.Context, img *rimage.Image) (*Masks, error) {
	_, span := trace.StartSpan(ctx, "terrain::Classifier::Classify")
	defer span.End()

	if img == nil {
		return nil, rimage.NewShapeMismatchError("a frame", "nil")
	}
	width, height := img.Width(), img.Height()
	masks := &Masks{
		Obstacle:  rimage.NewMask(width, height),
		Rock:      rimage.NewMask(width, height),
		Navigable: rimage.NewMask(width, height),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			col := img.GetXY(x, y)
			if c.IsNavigable(col) {
				masks.Navigable.Set(x, y)
			} else if c.IsObstacle(col) {
				masks.Obstacle.Set(x, y)
			}
			if c.IsRock(col) {
				masks.Rock.Set(x, y)
			}
		}
	}
	return masks, nil
}
