// Package perception turns a camera frame and the pose it was taken from into a terrain overlay,
// polar descriptors for steering and new hits on the world map.
package perception

import (
	"context"
	"image"
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.opencensus.io/trace"

	"go.viam.com/rover/logging"
	"go.viam.com/rover/referenceframe"
	"go.viam.com/rover/rimage"
	"go.viam.com/rover/rimage/transform"
	"go.viam.com/rover/slam"
	"go.viam.com/rover/vision/terrain"
)

// Result is everything one perception step produces.
type Result struct {
	// Frame counts successful steps, starting at 1.
	Frame int
	// Rectified is the top-down view the masks were computed from.
	Rectified *rimage.Image
	// Overlay holds the obstacle, rock and navigable masks as red, green and blue.
	Overlay *rimage.Overlay

	Navigable PolarDescriptors
	Obstacle  PolarDescriptors
	Rock      PolarDescriptors

	// WorldMap is the map that was updated.
	WorldMap *slam.WorldMap
}

// Descriptors returns the polar descriptors of category c.
func (r *Result) Descriptors(c terrain.Category) PolarDescriptors {
	switch c {
	case terrain.Obstacle:
		return r.Obstacle
	case terrain.Rock:
		return r.Rock
	default:
		return r.Navigable
	}
}

// A Perceiver runs perception steps. Steps are serialized: one step reads the pose and updates
// the world map as a unit before the next begins.
type Perceiver struct {
	mu         sync.Mutex
	cfg        Config
	classifier *terrain.Classifier
	rectifiers map[image.Point]*transform.Rectifier
	fixed      *transform.Rectifier
	frames     int
	runID      uuid.UUID
	logger     logging.Logger
}

// NewPerceiver validates cfg and returns a Perceiver. When cfg names its own correspondence points
// the transform is built here, so a degenerate calibration fails fast with a GeometryError.
func NewPerceiver(cfg *Config, logger logging.Logger) (*Perceiver, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	if err := cfg.Validate("perception"); err != nil {
		return nil, err
	}
	full := cfg.withDefaults()
	runID := uuid.New()
	p := &Perceiver{
		cfg:        full,
		classifier: terrain.NewClassifier(*full.NavigableThreshold, *full.RockThreshold),
		rectifiers: map[image.Point]*transform.Rectifier{},
		runID:      runID,
		logger:     logger.WithFields("run", runID.String()),
	}
	if len(full.SourcePoints) != 0 {
		src, dst := full.correspondence(0, 0)
		r, err := transform.NewRectifier(src, dst, full.ParallelRows)
		if err != nil {
			return nil, err
		}
		p.fixed = r
	}
	return p, nil
}

// RunID identifies this Perceiver's navigation run in logs.
func (p *Perceiver) RunID() uuid.UUID {
	return p.runID
}

// WorldSize returns the side length of the world maps this Perceiver updates.
func (p *Perceiver) WorldSize() int {
	return p.cfg.WorldSize
}

// Scale returns the number of vehicle frame pixels per world cell.
func (p *Perceiver) Scale() float64 {
	return p.cfg.Scale
}

// Frames returns how many steps have succeeded.
func (p *Perceiver) Frames() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.frames
}

// NewWorldMap returns an empty map sized for this Perceiver.
func (p *Perceiver) NewWorldMap() (*slam.WorldMap, error) {
	return slam.NewWorldMap(p.cfg.WorldSize)
}

func (p *Perceiver) rectifier(size image.Point) (*transform.Rectifier, error) {
	if p.fixed != nil {
		return p.fixed, nil
	}
	if r, ok := p.rectifiers[size]; ok {
		return r, nil
	}
	src, dst := p.cfg.correspondence(size.X, size.Y)
	r, err := transform.NewRectifier(src, dst, p.cfg.ParallelRows)
	if err != nil {
		return nil, err
	}
	p.rectifiers[size] = r
	return r, nil
}

// Step rectifies and classifies frame, then adds every classified pixel to worldMap as seen from
// pose. On error nothing is written to worldMap and the frame count is unchanged.
func (p *Perceiver) Step(
	ctx context.Context,
	frame *rimage.Image,
	pose referenceframe.Pose,
	worldMap *slam.WorldMap,
) (*Result, error) {
	ctx, span := trace.StartSpan(ctx, "perception::Perceiver::Step")
	defer span.End()

	p.mu.Lock()
	defer p.mu.Unlock()

	res, err := p.step(ctx, frame, pose, worldMap)
	if err != nil {
		p.logger.Warnw("skipping frame", "frame", p.frames+1, "pose", pose.String(), "error", err)
		return nil, err
	}
	return res, nil
}

func (p *Perceiver) step(
	ctx context.Context,
	frame *rimage.Image,
	pose referenceframe.Pose,
	worldMap *slam.WorldMap,
) (*Result, error) {
	if frame == nil {
		return nil, rimage.NewShapeMismatchError("a frame", "nil")
	}
	if worldMap == nil {
		return nil, errors.New("no world map to update")
	}
	if worldMap.Size() != p.cfg.WorldSize {
		return nil, errors.Errorf("world map is %d cells wide but perception is configured for %d",
			worldMap.Size(), p.cfg.WorldSize)
	}
	if err := pose.Validate(); err != nil {
		return nil, err
	}

	r, err := p.rectifier(frame.Size())
	if err != nil {
		return nil, err
	}
	rectified, err := r.Rectify(ctx, frame)
	if err != nil {
		return nil, errors.Wrap(err, "cannot rectify frame")
	}
	masks, err := p.classifier.Classify(ctx, rectified)
	if err != nil {
		return nil, err
	}
	overlay, err := masks.Overlay()
	if err != nil {
		return nil, err
	}

	var (
		descriptors [terrain.NumCategories]PolarDescriptors
		cells       [terrain.NumCategories][]image.Point
	)
	for _, c := range terrain.Categories {
		pts := referenceframe.VehicleCoords(masks.Get(c))
		descriptors[c] = NewPolarDescriptors(referenceframe.ToPolar(pts))
		cells[c], err = referenceframe.ToWorldGridAll(pts, pose, p.cfg.WorldSize, p.cfg.Scale)
		if err != nil {
			return nil, errors.Wrapf(err, "cannot map %s pixels", c)
		}
	}

	var accumErr error
	worldMap.Mutate(func(m slam.MutableWorldMap) {
		for _, c := range terrain.Categories {
			if accumErr = m.Accumulate(cells[c], c); accumErr != nil {
				return
			}
		}
	})
	if accumErr != nil {
		return nil, accumErr
	}

	p.frames++
	p.logger.Debugw("perceived frame",
		"frame", p.frames,
		"pose", pose.String(),
		"navigable", descriptors[terrain.Navigable].Len(),
		"obstacle", descriptors[terrain.Obstacle].Len(),
		"rock", descriptors[terrain.Rock].Len(),
	)
	return &Result{
		Frame:     p.frames,
		Rectified: rectified,
		Overlay:   overlay,
		Navigable: descriptors[terrain.Navigable],
		Obstacle:  descriptors[terrain.Obstacle],
		Rock:      descriptors[terrain.Rock],
		WorldMap:  worldMap,
	}, nil
}
