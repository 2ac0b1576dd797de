// Package slam holds the persistent world map that perception steps accumulate terrain
// observations into.
package slam

import (
	"image"
	"sync"

	"github.com/pkg/errors"

	"go.viam.com/rover/utils"
	"go.viam.com/rover/vision/terrain"
)

// DefaultWorldSize is the side length, in cells, of the simulator's world map.
const DefaultWorldSize = 200

// WorldMap is a square grid with one hit counter per terrain category per cell. Counters only ever
// grow: a cell seen as navigable in many frames carries more weight than one seen once.
//
// A WorldMap is safe for concurrent use; every read or write holds its lock.
type WorldMap struct {
	mu    sync.Mutex
	size  int
	cells []uint32
}

// NewWorldMap returns an empty size x size map.
func NewWorldMap(size int) (*WorldMap, error) {
	if size <= 0 {
		return nil, errors.Errorf("world map size %d must be positive", size)
	}
	return &WorldMap{
		size:  size,
		cells: make([]uint32, size*size*terrain.NumCategories),
	}, nil
}

// Size returns the side length in cells.
func (wm *WorldMap) Size() int {
	return wm.size
}

// At returns the hit count of category c at (x, y).
func (wm *WorldMap) At(x, y int, c terrain.Category) uint32 {
	wm.mu.Lock()
	defer wm.mu.Unlock()
	return (*mutableWorldMap)(wm).At(x, y, c)
}

// Total returns the sum of every counter of category c.
func (wm *WorldMap) Total(c terrain.Category) uint64 {
	wm.mu.Lock()
	defer wm.mu.Unlock()
	var total uint64
	for k := int(c); k < len(wm.cells); k += terrain.NumCategories {
		total += uint64(wm.cells[k])
	}
	return total
}

// Accumulate adds one hit to category c for every cell in cells. Repeated cells count once per
// occurrence. Either every cell is applied or, on error, none are.
func (wm *WorldMap) Accumulate(cells []image.Point, c terrain.Category) error {
	var err error
	wm.Mutate(func(m MutableWorldMap) {
		err = m.Accumulate(cells, c)
	})
	return err
}

// MutableWorldMap is the view of a WorldMap handed to Mutate while its lock is held.
type MutableWorldMap interface {
	Size() int
	At(x, y int, c terrain.Category) uint32
	Accumulate(cells []image.Point, c terrain.Category) error
	Iterate(visit func(x, y int, c terrain.Category, hits uint32) bool)
}

// Mutate runs mutator with the map locked, so several updates land as one unit.
func (wm *WorldMap) Mutate(mutator func(m MutableWorldMap)) {
	wm.mu.Lock()
	defer wm.mu.Unlock()
	mutator((*mutableWorldMap)(wm))
}

// Snapshot returns a copy of the map.
func (wm *WorldMap) Snapshot() *WorldMap {
	wm.mu.Lock()
	defer wm.mu.Unlock()
	cells := make([]uint32, len(wm.cells))
	copy(cells, wm.cells)
	return &WorldMap{size: wm.size, cells: cells}
}

type mutableWorldMap WorldMap

func (mwm *mutableWorldMap) k(x, y int, c terrain.Category) int {
	return (y*mwm.size+x)*terrain.NumCategories + int(c)
}

func (mwm *mutableWorldMap) Size() int {
	return mwm.size
}

func (mwm *mutableWorldMap) At(x, y int, c terrain.Category) uint32 {
	return mwm.cells[mwm.k(x, y, c)]
}

func (mwm *mutableWorldMap) Accumulate(cells []image.Point, c terrain.Category) error {
	if !c.Valid() {
		return errors.Errorf("unknown terrain category %v", c)
	}
	bounds := image.Rect(0, 0, mwm.size, mwm.size)
	for _, p := range cells {
		if !p.In(bounds) {
			return utils.NewOutOfRangeError("world cell", p, bounds.Min, bounds.Max.Sub(image.Point{1, 1}))
		}
	}
	for _, p := range cells {
		k := mwm.k(p.X, p.Y, c)
		mwm.cells[k] = utils.SaturatingAddUint32(mwm.cells[k], 1)
	}
	return nil
}

func (mwm *mutableWorldMap) Iterate(visit func(x, y int, c terrain.Category, hits uint32) bool) {
	for k, hits := range mwm.cells {
		if hits == 0 {
			continue
		}
		cell := k / terrain.NumCategories
		if !visit(cell%mwm.size, cell/mwm.size, terrain.Category(k%terrain.NumCategories), hits) {
			return
		}
	}
}
