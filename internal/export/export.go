// Package export writes a sampled palette in formats other tools read.
package export

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/flosch/pongo2"
	"github.com/samber/lo"

	"pickperfect/internal/colormodel"
	"pickperfect/internal/palette"
)

type Kind string

const (
	KindCSS  Kind = "css"
	KindGPL  Kind = "gpl"
	KindJSON Kind = "json"
)

const defaultName = "PickPerfect"

var ErrUnknownKind = errors.New("unknown export kind")

//go:embed templates/*.tpl
var templatesFS embed.FS

var templates = map[Kind]*pongo2.Template{
	KindCSS: mustTemplate("templates/palette.css.tpl"),
	KindGPL: mustTemplate("templates/palette.gpl.tpl"),
}

func Kinds() []Kind {
	return []Kind{KindCSS, KindGPL, KindJSON}
}

func ParseKind(value string) (Kind, error) {
	kind := Kind(strings.ToLower(strings.TrimSpace(value)))
	if !lo.Contains(Kinds(), kind) {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, value)
	}
	return kind, nil
}

type swatch struct {
	Hex   string
	R     int
	G     int
	B     int
	Count int
	Type  string
}

type jsonPalette struct {
	Name   string                   `json:"name"`
	Colors []palette.ExtractedColor `json:"colors"`
}

// Render writes colors as kind. The name is flattened to a single line
// without comment terminators; empty names become "PickPerfect".
func Render(kind Kind, name string, colors []palette.ExtractedColor) (string, error) {
	name = cleanName(name)

	if kind == KindJSON {
		encoded, err := json.MarshalIndent(jsonPalette{
			Name:   name,
			Colors: lo.Ternary(colors == nil, []palette.ExtractedColor{}, colors),
		}, "", "  ")
		if err != nil {
			return "", fmt.Errorf("encode json palette: %w", err)
		}
		return string(encoded) + "\n", nil
	}

	tpl, ok := templates[kind]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	swatches := lo.Map(colors, func(c palette.ExtractedColor, _ int) swatch {
		rgb := colormodel.ParseHex(c.Hex)
		return swatch{
			Hex:   rgb.Hex(),
			R:     int(rgb.R),
			G:     int(rgb.G),
			B:     int(rgb.B),
			Count: c.Count,
			Type:  string(c.Type),
		}
	})

	out, err := tpl.Execute(pongo2.Context{
		"name":     name,
		"prefix":   slug(name),
		"columns":  min(len(swatches), 6),
		"swatches": swatches,
	})
	if err != nil {
		return "", fmt.Errorf("render %s palette: %w", kind, err)
	}
	return out, nil
}

func mustTemplate(name string) *pongo2.Template {
	body, err := templatesFS.ReadFile(name)
	if err != nil {
		panic(err)
	}
	return pongo2.Must(pongo2.FromString(string(body)))
}

// cleanName keeps a user-supplied name inside the single header line of
// the css and gpl formats.
func cleanName(name string) string {
	name = strings.Join(strings.Fields(strings.ReplaceAll(name, "*/", " ")), " ")
	return lo.Ternary(name == "", defaultName, name)
}

func slug(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return lo.Ternary(b.Len() == 0, "color", strings.TrimSuffix(b.String(), "-"))
}
