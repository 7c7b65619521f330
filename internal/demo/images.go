package demo

import (
	"image"
	"image/color"
	"math/rand"
)

const (
	mapWidth  = 256
	mapHeight = 256
)

// continuousMaps are the pseudo-colored index maps. Seeds are fixed per map
// so repeated demo runs reproduce the same gradient structure.
var continuousMaps = []struct {
	Name string
	Seed int64
}{
	{"ndvi_map", 1},
	{"gndvi_map", 2},
	{"ndre_map", 3},
	{"savi_map", 4},
	{"evi_map", 5},
	{"soil_condition_map", 6},
	{"pest_risk_score_map", 7},
}

// bandedMaps are classification maps with three fixed vertical bands.
var bandedMaps = []string{"crop_health_map", "pest_risk_map"}

var (
	bandLow    = color.RGBA{R: 0, G: 200, B: 0, A: 255}
	bandMedium = color.RGBA{R: 220, G: 220, B: 0, A: 255}
	bandHigh   = color.RGBA{R: 220, G: 0, B: 0, A: 255}
)

// gradientMap renders a horizontal gradient blended with seeded noise and
// passed through the jet palette. The base value depends only on the column;
// rows differ only by their independent noise draws.
func gradientMap(seed int64, w, h int) *image.RGBA {
	rnd := rand.New(rand.NewSource(seed))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := int(255 * float64(x) / float64(w-1))
			v = int(0.7*float64(v) + 0.3*float64(rnd.Intn(256)))
			if v < 0 {
				v = 0
			} else if v > 255 {
				v = 255
			}
			r, g, b := JetRGB(float64(v) / 255)
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(r * 255),
				G: uint8(g * 255),
				B: uint8(b * 255),
				A: 255,
			})
		}
	}
	return img
}

// bandedMap renders three vertical bands: low risk on the left, medium in
// the middle, high on the right.
func bandedMap(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var c color.RGBA
			switch {
			case x < w/3:
				c = bandLow
			case x < 2*w/3:
				c = bandMedium
			default:
				c = bandHigh
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}
