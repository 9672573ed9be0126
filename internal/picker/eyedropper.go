// Package picker turns raw screen samples into colors: eyedropper results
// from the webview and pixels or dominant colors of captured images.
package picker

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"pickperfect/internal/colormodel"
)

var ErrUnrecognizedSample = errors.New("unrecognized eyedropper sample")

var numberPattern = regexp.MustCompile(`[0-9]*\.?[0-9]+`)

// NormalizeEyedropper reads what an eyedropper reports. Engines answer
// either "#RRGGBB" (sometimes with a trailing alpha pair, which is dropped)
// or "rgb(r, g, b)" / "rgba(r, g, b, a)" with possibly fractional channels.
func NormalizeEyedropper(raw string) (colormodel.Color, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return colormodel.Color{}, fmt.Errorf("%w: empty value", ErrUnrecognizedSample)
	}

	if strings.HasPrefix(value, "#") {
		if len(value) < 7 {
			return colormodel.Color{}, fmt.Errorf("%w: %q", ErrUnrecognizedSample, raw)
		}
		digits := value[1:7]
		if _, err := strconv.ParseUint(digits, 16, 32); err != nil {
			return colormodel.Color{}, fmt.Errorf("%w: %q", ErrUnrecognizedSample, raw)
		}
		return colormodel.ParseHex(digits), nil
	}

	numbers := numberPattern.FindAllString(value, 4)
	if len(numbers) < 3 {
		return colormodel.Color{}, fmt.Errorf("%w: %q", ErrUnrecognizedSample, raw)
	}

	var channels [3]uint8
	for i, number := range numbers[:3] {
		parsed, err := strconv.ParseFloat(number, 64)
		if err != nil {
			return colormodel.Color{}, fmt.Errorf("%w: %q", ErrUnrecognizedSample, raw)
		}
		channels[i] = uint8(math.Max(0, math.Min(255, math.Round(parsed))))
	}

	return colormodel.Color{R: channels[0], G: channels[1], B: channels[2]}, nil
}
