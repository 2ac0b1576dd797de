package utils

import (
	"github.com/pkg/errors"
)

// NewOutOfRangeError is used when a value falls outside of its allowed interval.
func NewOutOfRangeError(name string, value, lo, hi interface{}) error {
	return errors.Errorf("%s %v out of range [%v, %v]", name, value, lo, hi)
}
