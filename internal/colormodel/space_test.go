package colormodel

import (
	"math"
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
)

func TestToHSL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		hex  string
		want HSL
	}{
		{"#000000", HSL{0, 0, 0}},
		{"#FFFFFF", HSL{0, 0, 100}},
		{"#808080", HSL{0, 0, 50}},
		{"#FF0000", HSL{0, 100, 50}},
		{"#00FF00", HSL{120, 100, 50}},
		{"#0000FF", HSL{240, 100, 50}},
		{"#FFFF00", HSL{60, 100, 50}},
		{"#FF00FF", HSL{300, 100, 50}},
		{"#336699", HSL{210, 50, 40}},
		{"#FF0001", HSL{0, 100, 50}},
	}

	for _, tt := range tests {
		if got := ToHSL(ParseHex(tt.hex)); got != tt.want {
			t.Fatalf("ToHSL(%s) = %+v, want %+v", tt.hex, got, tt.want)
		}
	}
}

func TestToHSLHueStaysBelow360(t *testing.T) {
	t.Parallel()

	forEachSampleColor(func(c Color) {
		hsl := ToHSL(c)
		if hsl.H < 0 || hsl.H >= 360 {
			t.Fatalf("hue out of range for %s: %d", c.Hex(), hsl.H)
		}
		if hsl.S < 0 || hsl.S > 100 || hsl.L < 0 || hsl.L > 100 {
			t.Fatalf("saturation/lightness out of range for %s: %+v", c.Hex(), hsl)
		}
	})
}

func TestToOklabReferenceValues(t *testing.T) {
	t.Parallel()

	white := ToOklab(Color{R: 255, G: 255, B: 255})
	if !approxEqual(white.L, 1, 1e-4) || !approxEqual(white.A, 0, 1e-4) || !approxEqual(white.B, 0, 1e-4) {
		t.Fatalf("unexpected Oklab for white: %+v", white)
	}

	black := ToOklab(Color{})
	if black != (Oklab{}) {
		t.Fatalf("expected zero Oklab for black, got %+v", black)
	}

	red := ToOklab(Color{R: 255})
	if !approxEqual(red.L, 0.62796, 1e-4) || !approxEqual(red.A, 0.22486, 1e-4) || !approxEqual(red.B, 0.12585, 1e-4) {
		t.Fatalf("unexpected Oklab for red: %+v", red)
	}
}

func TestToHSLMatchesColorful(t *testing.T) {
	t.Parallel()

	forEachSampleColor(func(c Color) {
		got := ToHSL(c)
		h, s, l := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}.Hsl()

		hueGap := math.Abs(float64(got.H) - h)
		hueGap = math.Min(hueGap, 360-hueGap)
		if s > 0 && hueGap > 1 {
			t.Fatalf("hue mismatch for %s: got %d, reference %f", c.Hex(), got.H, h)
		}
		if !approxEqual(float64(got.S), s*100, 1) || !approxEqual(float64(got.L), l*100, 1) {
			t.Fatalf("HSL mismatch for %s: got %+v, reference (%f, %f, %f)", c.Hex(), got, h, s, l)
		}
	})
}

func TestSRGBDecodeMatchesColorful(t *testing.T) {
	t.Parallel()

	for channel := 0; channel <= 255; channel++ {
		v := float64(channel) / 255
		r, _, _ := colorful.Color{R: v, G: v, B: v}.LinearRgb()
		if got := srgbToLinear(uint8(channel)); !approxEqual(got, r, 1e-9) {
			t.Fatalf("linear decode mismatch for %d: got %f, reference %f", channel, got, r)
		}
	}
}

func TestToOklabPrimariesAndGray(t *testing.T) {
	t.Parallel()

	// Reference values from the Oklab definition, rounded to 4 places.
	tests := []struct {
		c    Color
		want Oklab
	}{
		{Color{G: 255}, Oklab{L: 0.8664, A: -0.2339, B: 0.1795}},
		{Color{B: 255}, Oklab{L: 0.4520, A: -0.0325, B: -0.3115}},
		{Color{R: 128, G: 128, B: 128}, Oklab{L: 0.5999, A: 0, B: 0}},
	}

	for _, tt := range tests {
		got := ToOklab(tt.c)
		if !approxEqual(got.L, tt.want.L, 2e-4) || !approxEqual(got.A, tt.want.A, 2e-4) || !approxEqual(got.B, tt.want.B, 2e-4) {
			t.Fatalf("ToOklab(%s) = %+v, want %+v", tt.c.Hex(), got, tt.want)
		}
	}
}

func TestToOklchPolarRoundTrip(t *testing.T) {
	t.Parallel()

	forEachSampleColor(func(c Color) {
		lab := ToOklab(c)
		lch := ToOklch(c)
		if lch.H < 0 || lch.H >= 360 {
			t.Fatalf("hue out of range for %s: %f", c.Hex(), lch.H)
		}

		back := lch.Lab()
		if !approxEqual(back.L, lab.L, 1e-12) || !approxEqual(back.A, lab.A, 1e-9) || !approxEqual(back.B, lab.B, 1e-9) {
			t.Fatalf("polar round trip for %s: got %+v, want %+v", c.Hex(), back, lab)
		}
	})
}

// forEachSampleColor walks a coarse lattice of the RGB cube plus its corners.
func forEachSampleColor(fn func(Color)) {
	steps := []uint8{0, 1, 17, 64, 127, 128, 200, 254, 255}
	for _, r := range steps {
		for _, g := range steps {
			for _, b := range steps {
				fn(Color{R: r, G: g, B: b})
			}
		}
	}
}

func approxEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}
