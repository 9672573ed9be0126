package colormodel

import "math"

// WCAG 2.x contrast thresholds.
const (
	ratioAALarge   = 3.0
	ratioAAALarge  = 4.5
	ratioAANormal  = 4.5
	ratioAAANormal = 7.0
)

type WCAGCompliance struct {
	Ratio     float64 `json:"ratio"`
	AALarge   bool    `json:"aaLarge"`
	AAALarge  bool    `json:"aaaLarge"`
	AANormal  bool    `json:"aaNormal"`
	AAANormal bool    `json:"aaaNormal"`
}

// RelativeLuminance is the WCAG weighted luminance in [0,1].
func RelativeLuminance(c Color) float64 {
	return 0.2126*wcagLinear(c.R) + 0.7152*wcagLinear(c.G) + 0.0722*wcagLinear(c.B)
}

// PerceivedLuminance is the cheap Rec. 601 brightness in [0,1]; good enough
// for picking label ink on a swatch, not for accessibility checks.
func PerceivedLuminance(c Color) float64 {
	return (0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)) / 255
}

// LabelInk returns black for light swatches and white for dark ones.
func LabelInk(c Color) Color {
	if PerceivedLuminance(c) > 0.5 {
		return Color{}
	}
	return Color{R: 255, G: 255, B: 255}
}

// ContrastRatio is symmetric and lies in [1,21].
func ContrastRatio(a, b Color) float64 {
	la := RelativeLuminance(a)
	lb := RelativeLuminance(b)
	lighter := math.Max(la, lb)
	darker := math.Min(la, lb)
	return (lighter + 0.05) / (darker + 0.05)
}

func CheckContrast(a, b Color) WCAGCompliance {
	ratio := ContrastRatio(a, b)
	return WCAGCompliance{
		Ratio:     ratio,
		AALarge:   ratio >= ratioAALarge,
		AAALarge:  ratio >= ratioAAALarge,
		AANormal:  ratio >= ratioAANormal,
		AAANormal: ratio >= ratioAAANormal,
	}
}

func wcagLinear(channel uint8) float64 {
	v := float64(channel) / 255
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}
