// Package colormodel holds the color arithmetic used across the picker:
// hex parsing, HSL/Oklab/Oklch conversion, WCAG contrast and RGB distance.
// Everything here is pure and never fails on well-typed input.
package colormodel

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color is an opaque sRGB color with 8-bit channels.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// ParseHex reads a 6-digit hex string with an optional leading '#'.
// Input that is too short or holds a non-hex character yields black.
func ParseHex(hex string) Color {
	clean := strings.TrimPrefix(hex, "#")
	if len(clean) < 6 || !isHexString(clean) {
		return Color{}
	}

	return Color{
		R: parseByte(clean[0:2]),
		G: parseByte(clean[2:4]),
		B: parseByte(clean[4:6]),
	}
}

// Hex returns the canonical uppercase #RRGGBB form.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

func (c Color) String() string {
	return c.Hex()
}

// RGBA implements image/color.Color; the alpha channel is always opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff}.RGBA()
}

// FromColor drops alpha from any image/color value. Premultiplied input is
// converted to straight alpha first so translucent pixels keep their hue.
func FromColor(value color.Color) Color {
	nrgba := color.NRGBAModel.Convert(value).(color.NRGBA)
	return Color{R: nrgba.R, G: nrgba.G, B: nrgba.B}
}

func isHexString(value string) bool {
	for _, ch := range value {
		switch {
		case ch >= '0' && ch <= '9':
		case ch >= 'a' && ch <= 'f':
		case ch >= 'A' && ch <= 'F':
		default:
			return false
		}
	}
	return true
}

func parseByte(pair string) uint8 {
	value, err := strconv.ParseUint(pair, 16, 8)
	if err != nil {
		return 0
	}
	return uint8(value)
}
