package main

import (
	"github.com/samber/lo"

	"pickperfect/internal/colormodel"
)

type ColorDescription struct {
	Hex       string                       `json:"hex"`
	Formats   map[colormodel.Format]string `json:"formats"`
	HSL       colormodel.HSL               `json:"hsl"`
	Oklch     colormodel.Oklch             `json:"oklch"`
	Luminance float64                      `json:"luminance"`
	LabelInk  string                       `json:"labelInk"`
	Nearest   NearestName                  `json:"nearest"`
}

type NearestName struct {
	Name     string  `json:"name"`
	Hex      string  `json:"hex"`
	Distance float64 `json:"distance"`
}

type ColorService struct {
	named []colormodel.NamedColor
}

func NewColorService() *ColorService {
	return &ColorService{named: colormodel.CSSNamedColors()}
}

func (s *ColorService) Formats() []colormodel.Format {
	return colormodel.Formats()
}

func (s *ColorService) Format(hex string, format string) (string, error) {
	parsed, err := colormodel.ParseFormat(format)
	if err != nil {
		return "", err
	}
	return colormodel.ParseHex(hex).Format(parsed), nil
}

func (s *ColorService) Describe(hex string) ColorDescription {
	c := colormodel.ParseHex(hex)

	return ColorDescription{
		Hex: c.Hex(),
		Formats: lo.SliceToMap(colormodel.Formats(), func(format colormodel.Format) (colormodel.Format, string) {
			return format, c.Format(format)
		}),
		HSL:       colormodel.ToHSL(c),
		Oklch:     colormodel.ToOklch(c),
		Luminance: colormodel.RelativeLuminance(c),
		LabelInk:  colormodel.LabelInk(c).Hex(),
		Nearest:   s.Nearest(hex),
	}
}

func (s *ColorService) CheckContrast(foreground string, background string) colormodel.WCAGCompliance {
	return colormodel.CheckContrast(colormodel.ParseHex(foreground), colormodel.ParseHex(background))
}

func (s *ColorService) Nearest(hex string) NearestName {
	nearest := colormodel.FindNearest(colormodel.ParseHex(hex), s.named)
	return NearestName{Name: nearest.Name, Hex: nearest.Color.Hex(), Distance: nearest.Distance}
}
