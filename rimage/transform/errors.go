package transform

import "fmt"

// GeometryError is returned when a set of correspondence points cannot define a perspective
// transform, such as when three of them are collinear or two coincide.
type GeometryError struct {
	Reason string
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("degenerate perspective transform: %s", e.Reason)
}

// NewGeometryError returns a GeometryError with a formatted reason.
func NewGeometryError(format string, args ...interface{}) error {
	return &GeometryError{Reason: fmt.Sprintf(format, args...)}
}
