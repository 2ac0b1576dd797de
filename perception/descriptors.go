package perception

import (
	"gonum.org/v1/gonum/stat"

	"go.viam.com/rover/referenceframe"
)

// PolarDescriptors are the distances and bearings, in vehicle frame pixels and radians, of every
// pixel of one terrain category. Index i of both slices describes the same pixel.
type PolarDescriptors struct {
	Distances []float64
	Angles    []float64
}

// NewPolarDescriptors splits polar points into parallel slices.
func NewPolarDescriptors(polar []referenceframe.Polar) PolarDescriptors {
	pd := PolarDescriptors{
		Distances: make([]float64, len(polar)),
		Angles:    make([]float64, len(polar)),
	}
	for i, p := range polar {
		pd.Distances[i] = p.Distance
		pd.Angles[i] = p.Angle
	}
	return pd
}

// Len returns the number of pixels described.
func (pd PolarDescriptors) Len() int {
	return len(pd.Angles)
}

// MeanAngle is the average bearing, the usual steering target for navigable terrain. It returns
// false when there are no pixels.
func (pd PolarDescriptors) MeanAngle() (float64, bool) {
	if pd.Len() == 0 {
		return 0, false
	}
	return stat.Mean(pd.Angles, nil), true
}

// MeanDistance is the average distance. It returns false when there are no pixels.
func (pd PolarDescriptors) MeanDistance() (float64, bool) {
	if pd.Len() == 0 {
		return 0, false
	}
	return stat.Mean(pd.Distances, nil), true
}
