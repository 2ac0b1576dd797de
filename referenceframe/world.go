package referenceframe

import (
	"image"
	"math"

	"github.com/golang/geo/r2"
	"github.com/pkg/errors"

	"go.viam.com/rover/utils"
)

// DefaultScale is the number of vehicle frame pixels per world grid cell.
const DefaultScale = 10

// Rotate turns p counter-clockwise about the origin by yawDeg degrees.
func Rotate(p r2.Point, yawDeg float64) r2.Point {
	sin, cos := math.Sincos(utils.DegToRad(yawDeg))
	return r2.Point{
		X: p.X*cos - p.Y*sin,
		Y: p.X*sin + p.Y*cos,
	}
}

// TranslateAndScale shrinks p by scale and moves it to pos.
func TranslateAndScale(p, pos r2.Point, scale float64) r2.Point {
	return r2.Point{
		X: p.X/scale + pos.X,
		Y: p.Y/scale + pos.Y,
	}
}

// ToWorld rotates a vehicle frame point by the pose's yaw, then scales and translates it to the
// pose's position.
func ToWorld(p r2.Point, pose Pose, scale float64) r2.Point {
	return TranslateAndScale(Rotate(p, pose.YawDeg), pose.Position(), scale)
}

// ToWorldGrid maps a vehicle frame point into the cell of a worldSize x worldSize grid. World
// coordinates are truncated toward zero and each axis is clamped into [0, worldSize-1] on its own,
// so points beyond the map land on its border. ErrNonFinite is returned instead of casting NaN or
// an infinity.
func ToWorldGrid(p r2.Point, pose Pose, worldSize int, scale float64) (image.Point, error) {
	w := ToWorld(p, pose, scale)
	if !utils.IsFinite(w.X, w.Y) {
		return image.Point{}, errors.Wrapf(ErrNonFinite, "world point %v", w)
	}
	return image.Point{
		X: utils.TruncateClamp(w.X, 0, worldSize-1),
		Y: utils.TruncateClamp(w.Y, 0, worldSize-1),
	}, nil
}

// ToWorldGridAll maps every point with ToWorldGrid. It fails without partial output if any point
// cannot be mapped.
func ToWorldGridAll(pts []r2.Point, pose Pose, worldSize int, scale float64) ([]image.Point, error) {
	if worldSize <= 0 {
		return nil, errors.Errorf("world size %d must be positive", worldSize)
	}
	if scale == 0 || !utils.IsFinite(scale) {
		return nil, errors.Errorf("invalid scale %v", scale)
	}
	if err := pose.Validate(); err != nil {
		return nil, err
	}
	out := make([]image.Point, len(pts))
	for i, p := range pts {
		cell, err := ToWorldGrid(p, pose, worldSize, scale)
		if err != nil {
			return nil, err
		}
		out[i] = cell
	}
	return out, nil
}
