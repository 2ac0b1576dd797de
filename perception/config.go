package perception

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/go-viper/mapstructure/v2"
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	goutils "go.viam.com/utils"

	"go.viam.com/rover/referenceframe"
	"go.viam.com/rover/slam"
	"go.viam.com/rover/vision/terrain"
)

// Config describes how frames are rectified, classified and mapped. The zero value is usable and
// selects the simulator defaults.
type Config struct {
	// SourcePoints outline the ground trapezoid in the camera frame as [x, y] pairs. When omitted
	// they are derived from the frame size.
	SourcePoints [][2]float64 `json:"source_points,omitempty"`
	// DestinationPoints are where SourcePoints land in the rectified frame, in the same order.
	DestinationPoints [][2]float64 `json:"destination_points,omitempty"`

	NavigableThreshold *terrain.Thresholds     `json:"navigable_threshold,omitempty"`
	RockThreshold      *terrain.RockThresholds `json:"rock_threshold,omitempty"`

	WorldSize    int     `json:"world_size,omitempty"`
	Scale        float64 `json:"scale,omitempty"`
	ParallelRows bool    `json:"parallel_rows,omitempty"`
}

// Validate ensures all parts of the config are valid.
func (cfg *Config) Validate(path string) error {
	var errs error
	fail := func(err error) {
		errs = multierr.Append(errs, goutils.NewConfigValidationError(path, err))
	}

	hasSrc, hasDst := len(cfg.SourcePoints) != 0, len(cfg.DestinationPoints) != 0
	if hasSrc != hasDst {
		fail(errors.New("source_points and destination_points must be set together"))
	}
	if hasSrc && len(cfg.SourcePoints) != 4 {
		fail(errors.Errorf("source_points needs 4 points but has %d", len(cfg.SourcePoints)))
	}
	if hasDst && len(cfg.DestinationPoints) != 4 {
		fail(errors.Errorf("destination_points needs 4 points but has %d", len(cfg.DestinationPoints)))
	}
	if cfg.NavigableThreshold != nil {
		if err := cfg.NavigableThreshold.Validate(); err != nil {
			fail(err)
		}
	}
	if cfg.RockThreshold != nil {
		if err := cfg.RockThreshold.Validate(); err != nil {
			fail(err)
		}
	}
	if cfg.WorldSize < 0 {
		fail(errors.Errorf("world_size %d cannot be negative", cfg.WorldSize))
	}
	if cfg.Scale < 0 || math.IsNaN(cfg.Scale) || math.IsInf(cfg.Scale, 0) {
		fail(errors.Errorf("scale %v must be a positive number", cfg.Scale))
	}
	return errs
}

// withDefaults returns a copy of cfg with every unset field filled in.
func (cfg *Config) withDefaults() Config {
	out := *cfg
	if out.NavigableThreshold == nil {
		t := terrain.DefaultThresholds
		out.NavigableThreshold = &t
	} else {
		t := out.NavigableThreshold.OrDefault()
		out.NavigableThreshold = &t
	}
	if out.RockThreshold == nil {
		t := terrain.DefaultRockThresholds
		out.RockThreshold = &t
	}
	if out.WorldSize == 0 {
		out.WorldSize = slam.DefaultWorldSize
	}
	if out.Scale == 0 {
		out.Scale = referenceframe.DefaultScale
	}
	return out
}

// correspondence returns the configured point pairs, or the defaults for a width x height frame.
func (cfg *Config) correspondence(width, height int) (src, dst [4]r2.Point) {
	if len(cfg.SourcePoints) == 0 {
		return DefaultSourcePoints(width, height), DefaultDestinationPoints(width, height)
	}
	for i := 0; i < 4; i++ {
		src[i] = r2.Point{X: cfg.SourcePoints[i][0], Y: cfg.SourcePoints[i][1]}
		dst[i] = r2.Point{X: cfg.DestinationPoints[i][0], Y: cfg.DestinationPoints[i][1]}
	}
	return src, dst
}

// DefaultSourcePoints outlines the ground just ahead of the simulator's camera: top-left,
// bottom-left, bottom-right, top-right.
func DefaultSourcePoints(width, height int) [4]r2.Point {
	w, h := float64(width), float64(height)
	return [4]r2.Point{
		{X: 120, Y: 95},
		{X: 10, Y: h - 20},
		{X: w - 10, Y: h - 20},
		{X: w - 120, Y: 95},
	}
}

// DefaultDestinationPoints places the ground patch just below the centre of the rectified frame,
// in the same order as DefaultSourcePoints.
func DefaultDestinationPoints(width, height int) [4]r2.Point {
	w, h := float64(width), float64(height)
	return [4]r2.Point{
		{X: w/2 - 5, Y: h - 10},
		{X: w/2 - 5, Y: h + 5},
		{X: w/2 + 5, Y: h + 5},
		{X: w/2 + 5, Y: h - 10},
	}
}

// ConfigFromAttributes decodes a loosely typed attribute map, such as one embedded in a larger
// robot config, into a Config.
func ConfigFromAttributes(attributes map[string]interface{}) (*Config, error) {
	var cfg Config
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		Result:           &cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(attributes); err != nil {
		return nil, errors.Wrap(err, "cannot decode perception attributes")
	}
	return &cfg, nil
}

// ReadConfigFile reads a JSON config from disk.
func ReadConfigFile(path string) (*Config, error) {
	//nolint:gosec
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrapf(err, "cannot parse config %q", path)
	}
	return &cfg, nil
}

func (cfg *Config) String() string {
	c := cfg.withDefaults()
	return fmt.Sprintf("world_size=%d scale=%v thresholds=%+v rock=%+v", c.WorldSize, c.Scale, *c.NavigableThreshold, *c.RockThreshold)
}
