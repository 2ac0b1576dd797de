package terrain

import "fmt"

// Category is a terrain class. Its value doubles as the channel index in the vision overlay and
// the world map.
type Category int

// The three terrain categories, in overlay/world map channel order.
const (
	Obstacle Category = iota
	Rock
	Navigable
)

// NumCategories is the number of terrain categories.
const NumCategories = 3

// Categories lists every category in channel order.
var Categories = [NumCategories]Category{Obstacle, Rock, Navigable}

func (c Category) String() string {
	switch c {
	case Obstacle:
		return "obstacle"
	case Rock:
		return "rock"
	case Navigable:
		return "navigable"
	default:
		return fmt.Sprintf("category(%d)", int(c))
	}
}

// Valid returns whether c is one of the known categories.
func (c Category) Valid() bool {
	return c >= Obstacle && c <= Navigable
}
