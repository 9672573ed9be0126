package colormodel

import "math"

// HSL holds hue in whole degrees [0,360) and saturation/lightness as whole
// percentages [0,100].
type HSL struct {
	H int `json:"h"`
	S int `json:"s"`
	L int `json:"l"`
}

// Oklab is a point in Björn Ottosson's perceptual color space.
type Oklab struct {
	L float64 `json:"l"`
	A float64 `json:"a"`
	B float64 `json:"b"`
}

// Oklch is the polar form of Oklab; H is in degrees [0,360).
type Oklch struct {
	L float64 `json:"l"`
	C float64 `json:"c"`
	H float64 `json:"h"`
}

func ToHSL(c Color) HSL {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))
	l := (maxC + minC) / 2

	var h, s float64
	if maxC != minC {
		d := maxC - minC
		if l > 0.5 {
			s = d / (2 - maxC - minC)
		} else {
			s = d / (maxC + minC)
		}

		switch maxC {
		case r:
			h = (g - b) / d
			if g < b {
				h += 6
			}
		case g:
			h = (b-r)/d + 2
		default:
			h = (r-g)/d + 4
		}
		h /= 6
	}

	hue := int(math.Round(h * 360))
	if hue >= 360 {
		hue -= 360
	}

	return HSL{
		H: hue,
		S: int(math.Round(s * 100)),
		L: int(math.Round(l * 100)),
	}
}

func ToOklab(c Color) Oklab {
	lr := srgbToLinear(c.R)
	lg := srgbToLinear(c.G)
	lb := srgbToLinear(c.B)

	l := 0.4122214708*lr + 0.5363325363*lg + 0.0514459929*lb
	m := 0.2119034982*lr + 0.6806995451*lg + 0.1073969566*lb
	s := 0.0883024619*lr + 0.2817188376*lg + 0.6299787005*lb

	lp := math.Cbrt(l)
	mp := math.Cbrt(m)
	sp := math.Cbrt(s)

	return Oklab{
		L: 0.2104542553*lp + 0.7936177850*mp - 0.0040720468*sp,
		A: 1.9779984951*lp - 2.4285922050*mp + 0.4505937099*sp,
		B: 0.0259040371*lp + 0.7827717662*mp - 0.8086757660*sp,
	}
}

func ToOklch(c Color) Oklch {
	lab := ToOklab(c)
	hue := math.Atan2(lab.B, lab.A) * (180 / math.Pi)
	if hue < 0 {
		hue += 360
	}
	if hue >= 360 {
		hue = 0
	}

	return Oklch{
		L: lab.L,
		C: math.Sqrt(lab.A*lab.A + lab.B*lab.B),
		H: hue,
	}
}

// Lab converts back to rectangular form.
func (p Oklch) Lab() Oklab {
	rad := p.H * (math.Pi / 180)
	return Oklab{L: p.L, A: p.C * math.Cos(rad), B: p.C * math.Sin(rad)}
}

// srgbToLinear uses the IEC 61966-2-1 threshold; the WCAG luminance
// formula below keeps its own older 0.03928 cut-off.
func srgbToLinear(channel uint8) float64 {
	v := float64(channel) / 255
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}
