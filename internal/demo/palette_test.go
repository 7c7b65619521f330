package demo

import (
	"math"
	"testing"
)

func TestJetRGBEndpoints(t *testing.T) {
	r, g, b := JetRGB(0)
	if r != 0 || g != 0 || b != 1 {
		t.Fatalf("expected (0,0,1) at v=0, got (%v,%v,%v)", r, g, b)
	}

	r, g, b = JetRGB(1)
	if r != 1 || g != 0 || b != 0 {
		t.Fatalf("expected (1,0,0) at v=1, got (%v,%v,%v)", r, g, b)
	}
}

func TestJetRGBChannelsWithinRange(t *testing.T) {
	for i := 0; i <= 1000; i++ {
		v := float64(i) / 1000
		r, g, b := JetRGB(v)
		for name, ch := range map[string]float64{"r": r, "g": g, "b": b} {
			if ch < 0 || ch > 1 {
				t.Fatalf("channel %s out of range at v=%v: %v", name, v, ch)
			}
		}
	}
}

func TestJetRGBContinuousAtBreakpoints(t *testing.T) {
	const eps = 1e-9
	// The slope within any segment is at most 4, so values just either side
	// of a breakpoint must agree to within 4*2*eps.
	const tol = 1e-8

	for _, bp := range []float64{0.25, 0.5, 0.75} {
		rl, gl, bl := JetRGB(bp - eps)
		rr, gr, br := JetRGB(bp + eps)
		if math.Abs(rl-rr) > tol || math.Abs(gl-gr) > tol || math.Abs(bl-br) > tol {
			t.Fatalf("discontinuity at v=%v: left (%v,%v,%v) right (%v,%v,%v)", bp, rl, gl, bl, rr, gr, br)
		}
	}
}
