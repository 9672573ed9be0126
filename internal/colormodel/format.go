package colormodel

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownFormat = errors.New("unknown color format")

// Format names one of the textual notations a color can be copied as.
type Format string

const (
	FormatHex   Format = "hex"
	FormatRGB   Format = "rgb"
	FormatHSL   Format = "hsl"
	FormatOklch Format = "oklch"
)

var formats = []Format{FormatHex, FormatRGB, FormatHSL, FormatOklch}

// Formats lists the supported notations in display order.
func Formats() []Format {
	return append([]Format(nil), formats...)
}

func ParseFormat(value string) (Format, error) {
	normalized := Format(strings.ToLower(strings.TrimSpace(value)))
	for _, format := range formats {
		if format == normalized {
			return format, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, value)
}

// Format renders c in the given notation. Unknown formats fall back to hex.
func (c Color) Format(format Format) string {
	switch format {
	case FormatRGB:
		return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
	case FormatHSL:
		hsl := ToHSL(c)
		return fmt.Sprintf("hsl(%d, %d%%, %d%%)", hsl.H, hsl.S, hsl.L)
	case FormatOklch:
		lch := ToOklch(c)
		return fmt.Sprintf("oklch(%.2f%% %.4f %.2f)", lch.L*100, lch.C, lch.H)
	default:
		return c.Hex()
	}
}
