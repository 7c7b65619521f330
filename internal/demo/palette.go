package demo

// JetRGB maps an intensity in [0,1] to an RGB color on a piecewise-linear
// jet-style colormap. The exact segment math is a compatibility contract:
// rendered demo maps must stay visually comparable with real engine output,
// so no colormap library may be substituted here.
func JetRGB(v float64) (r, g, b float64) {
	switch {
	case v < 0.25:
		r, g, b = 0, 4*v, 1
	case v < 0.5:
		r, g, b = 0, 1, 1-4*(v-0.25)
	case v < 0.75:
		r, g, b = 4*(v-0.5), 1, 0
	default:
		r, g, b = 1, 1-4*(v-0.75), 0
	}
	return clamp01(r), clamp01(g), clamp01(b)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
