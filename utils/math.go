package utils

import "math"

// DegToRad converts degrees to radians.
func DegToRad(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(radians float64) float64 {
	return radians * 180 / math.Pi
}

// ModAngDeg returns the given angle in degrees normalized to [0, 360).
func ModAngDeg(ang float64) float64 {
	return math.Mod(math.Mod(ang, 360)+360, 360)
}

// IsFinite returns whether none of the given values are NaN or infinite.
func IsFinite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// TruncateClamp truncates v toward zero and limits the result to [lo, hi].
// The clamp happens before the integer conversion so values outside the range of int are safe.
// v must be finite.
func TruncateClamp(v float64, lo, hi int) int {
	t := math.Trunc(v)
	if t <= float64(lo) {
		return lo
	}
	if t >= float64(hi) {
		return hi
	}
	return int(t)
}

// SaturatingAddUint32 adds delta to n, stopping at math.MaxUint32.
func SaturatingAddUint32(n, delta uint32) uint32 {
	if n > math.MaxUint32-delta {
		return math.MaxUint32
	}
	return n + delta
}
