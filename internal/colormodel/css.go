package colormodel

import (
	"math"
	"strconv"
	"strings"
)

// ParseCSSColor reads the color forms that show up in computed styles and
// inline declarations: rgb()/rgba() in comma or space syntax, #rgb, #rgba,
// #rrggbb, #rrggbbaa, the transparent keyword and CSS color names.
// alpha is in [0,1]; ok is false for anything else, including "none".
func ParseCSSColor(value string) (c Color, alpha float64, ok bool) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	switch {
	case normalized == "":
		return Color{}, 0, false
	case normalized == "transparent":
		return Color{}, 0, true
	case strings.HasPrefix(normalized, "#"):
		return parseCSSHex(normalized[1:])
	case strings.HasPrefix(normalized, "rgb"):
		return parseCSSFunction(normalized)
	}

	named, found := lookupCSSName(normalized)
	if !found {
		return Color{}, 0, false
	}
	return named, 1, true
}

func parseCSSHex(digits string) (Color, float64, bool) {
	if !isHexString(digits) {
		return Color{}, 0, false
	}

	switch len(digits) {
	case 3, 4:
		expanded := make([]byte, 0, len(digits)*2)
		for i := 0; i < len(digits); i++ {
			expanded = append(expanded, digits[i], digits[i])
		}
		return parseCSSHex(string(expanded))
	case 6:
		return ParseHex(digits), 1, true
	case 8:
		return ParseHex(digits), float64(parseByte(digits[6:8])) / 255, true
	default:
		return Color{}, 0, false
	}
}

func parseCSSFunction(value string) (Color, float64, bool) {
	open := strings.IndexByte(value, '(')
	closing := strings.LastIndexByte(value, ')')
	if open < 0 || closing < open {
		return Color{}, 0, false
	}

	name := value[:open]
	if name != "rgb" && name != "rgba" {
		return Color{}, 0, false
	}

	fields := strings.FieldsFunc(value[open+1:closing], func(r rune) bool {
		return r == ',' || r == '/' || r == ' ' || r == '\t'
	})
	if len(fields) != 3 && len(fields) != 4 {
		return Color{}, 0, false
	}

	var channels [3]uint8
	for i := 0; i < 3; i++ {
		channel, ok := parseChannel(fields[i])
		if !ok {
			return Color{}, 0, false
		}
		channels[i] = channel
	}

	alpha := 1.0
	if len(fields) == 4 {
		parsed, ok := parseAlpha(fields[3])
		if !ok {
			return Color{}, 0, false
		}
		alpha = parsed
	}

	return Color{R: channels[0], G: channels[1], B: channels[2]}, alpha, true
}

func parseChannel(field string) (uint8, bool) {
	scale := 1.0
	if strings.HasSuffix(field, "%") {
		field = strings.TrimSuffix(field, "%")
		scale = 255.0 / 100
	}

	value, err := strconv.ParseFloat(field, 64)
	if err != nil {
		return 0, false
	}
	return uint8(math.Round(clamp(value*scale, 0, 255))), true
}

func parseAlpha(field string) (float64, bool) {
	scale := 1.0
	if strings.HasSuffix(field, "%") {
		field = strings.TrimSuffix(field, "%")
		scale = 0.01
	}

	value, err := strconv.ParseFloat(field, 64)
	if err != nil {
		return 0, false
	}
	return clamp(value*scale, 0, 1), true
}

func clamp(value, minimum, maximum float64) float64 {
	if value < minimum {
		return minimum
	}
	if value > maximum {
		return maximum
	}
	return value
}
