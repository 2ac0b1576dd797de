package terrain

import (
	"github.com/pkg/errors"
)

// Thresholds separates bright navigable ground from dark obstacles. A pixel is navigable when every
// channel is strictly above its threshold and an obstacle when every channel is strictly below.
type Thresholds struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// DefaultThresholds works for the sandy ground and dark rock walls of the simulator.
var DefaultThresholds = Thresholds{R: 200, G: 150, B: 150}

// UseDefaultThresholds is a sentinel asking for DefaultThresholds.
var UseDefaultThresholds = Thresholds{R: -1, G: -1, B: -1}

// IsSentinel returns whether every component is negative.
func (t Thresholds) IsSentinel() bool {
	return t.R < 0 && t.G < 0 && t.B < 0
}

// OrDefault returns DefaultThresholds when t is the sentinel and t otherwise.
func (t Thresholds) OrDefault() Thresholds {
	if t.IsSentinel() {
		return DefaultThresholds
	}
	return t
}

// Validate checks that every component is a channel value, unless t is the sentinel.
func (t Thresholds) Validate() error {
	if t.IsSentinel() {
		return nil
	}
	for _, v := range []int{t.R, t.G, t.B} {
		if v < 0 || v > 255 {
			return errors.Errorf("threshold %v must be all in [0, 255] or all negative", t)
		}
	}
	return nil
}

// RockThresholds picks out the yellow rock samples: bright red and green with little blue.
type RockThresholds struct {
	MinRed   int `json:"min_red"`
	MinGreen int `json:"min_green"`
	MaxBlue  int `json:"max_blue"`
}

// DefaultRockThresholds are the hand tuned values for the simulator's samples.
var DefaultRockThresholds = RockThresholds{MinRed: 75, MinGreen: 75, MaxBlue: 50}

// Validate checks that every component is a channel value.
func (t RockThresholds) Validate() error {
	for _, v := range []int{t.MinRed, t.MinGreen, t.MaxBlue} {
		if v < 0 || v > 255 {
			return errors.Errorf("rock threshold %v must be in [0, 255]", t)
		}
	}
	return nil
}
