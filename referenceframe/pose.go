// Package referenceframe converts terrain pixels between the rectified image, the vehicle-centred
// frame and the global world grid.
package referenceframe

import (
	"fmt"

	"github.com/golang/geo/r2"
	"github.com/pkg/errors"

	"go.viam.com/rover/utils"
)

// ErrNonFinite is returned when a pose or point holds NaN or an infinity where a grid cell is needed.
var ErrNonFinite = errors.New("non-finite coordinate")

// Pose is where the vehicle was, in world units, and which way it faced when a frame was captured.
// Yaw is in degrees, counter-clockwise from the world +x axis.
type Pose struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	YawDeg float64 `json:"yaw"`
}

// NewPose returns a pose.
func NewPose(x, y, yawDeg float64) Pose {
	return Pose{X: x, Y: y, YawDeg: yawDeg}
}

// Position returns the pose's location.
func (p Pose) Position() r2.Point {
	return r2.Point{X: p.X, Y: p.Y}
}

// Validate returns ErrNonFinite when any component is NaN or infinite.
func (p Pose) Validate() error {
	if !utils.IsFinite(p.X, p.Y, p.YawDeg) {
		return errors.Wrapf(ErrNonFinite, "pose %v", p)
	}
	return nil
}

func (p Pose) String() string {
	return fmt.Sprintf("(%.2f, %.2f, %.1f°)", p.X, p.Y, utils.ModAngDeg(p.YawDeg))
}
