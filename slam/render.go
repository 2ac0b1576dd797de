package slam

import (
	"image"
	"image/color"

	"go.viam.com/rover/vision/terrain"
)

// Image renders the map for display: obstacle hits in red, rock hits in green and navigable hits
// in blue, each saturating at 255. World +y is drawn upward, so row 0 of the image is the top
// row of the map.
func (wm *WorldMap) Image() *image.NRGBA {
	wm.mu.Lock()
	defer wm.mu.Unlock()
	mwm := (*mutableWorldMap)(wm)
	out := image.NewNRGBA(image.Rect(0, 0, wm.size, wm.size))
	for y := 0; y < wm.size; y++ {
		for x := 0; x < wm.size; x++ {
			out.SetNRGBA(x, wm.size-1-y, color.NRGBA{
				R: saturate(mwm.At(x, y, terrain.Obstacle)),
				G: saturate(mwm.At(x, y, terrain.Rock)),
				B: saturate(mwm.At(x, y, terrain.Navigable)),
				A: 255,
			})
		}
	}
	return out
}

func saturate(hits uint32) uint8 {
	if hits > 255 {
		return 255
	}
	return uint8(hits)
}
