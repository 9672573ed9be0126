package colormodel

import (
	"math"

	"golang.org/x/image/colornames"
)

// NamedColor is one entry of a caller-supplied reference palette.
type NamedColor struct {
	Name  string `json:"name"`
	Color Color  `json:"color"`
}

type Nearest struct {
	Name     string  `json:"name"`
	Color    Color   `json:"color"`
	Distance float64 `json:"distance"`
}

// Distance is the Euclidean distance in raw RGB space, 0 to ~441.67.
func Distance(a, b Color) float64 {
	dr := float64(a.R) - float64(b.R)
	dg := float64(a.G) - float64(b.G)
	db := float64(a.B) - float64(b.B)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// FindNearest scans candidates in order and keeps the first one at minimal
// distance. candidates must not be empty.
func FindNearest(target Color, candidates []NamedColor) Nearest {
	nearest := candidates[0]
	minDistance := Distance(target, nearest.Color)

	for _, candidate := range candidates[1:] {
		distance := Distance(target, candidate.Color)
		if distance < minDistance {
			minDistance = distance
			nearest = candidate
		}
	}

	return Nearest{
		Name:     nearest.Name,
		Color:    nearest.Color,
		Distance: minDistance,
	}
}

// CSSNamedColors returns the CSS Color Module Level 4 keywords in
// alphabetical order. Aliases such as gray/grey both appear.
func CSSNamedColors() []NamedColor {
	named := make([]NamedColor, 0, len(colornames.Names))
	for _, name := range colornames.Names {
		named = append(named, NamedColor{Name: name, Color: FromColor(colornames.Map[name])})
	}
	return named
}

func lookupCSSName(name string) (Color, bool) {
	value, ok := colornames.Map[name]
	if !ok {
		return Color{}, false
	}
	return FromColor(value), true
}
