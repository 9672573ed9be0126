package palette

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"pickperfect/internal/colormodel"
)

type colorTally struct {
	hex   string
	count int
	roles []Role
}

func (t *colorTally) add(role Role) {
	t.count++
	for _, existing := range t.roles {
		if existing == role {
			return
		}
	}
	t.roles = append(t.roles, role)
}

func (t *colorTally) role() Role {
	if len(t.roles) == 1 {
		return t.roles[0]
	}
	return RoleMixed
}

// Sample walks every rendered element, tallies background, text and border
// colors by canonical hex and returns the most frequent MaxPaletteSize
// entries. Ties keep discovery order.
func Sample(doc Document) []ExtractedColor {
	order := make([]*colorTally, 0)
	byHex := make(map[string]*colorTally)

	record := func(value string, role Role) {
		hex, ok := canonicalHex(value)
		if !ok {
			return
		}

		tally, exists := byHex[hex]
		if !exists {
			tally = &colorTally{hex: hex}
			byHex[hex] = tally
			order = append(order, tally)
		}
		tally.add(role)
	}

	for _, element := range doc.Elements() {
		if !element.Rendered() {
			continue
		}

		style := element.ComputedStyle()
		record(style.Background, RoleBackground)
		record(style.Text, RoleText)
		record(style.Border, RoleBorder)
	}

	colors := make([]ExtractedColor, 0, len(order))
	for _, tally := range order {
		colors = append(colors, ExtractedColor{Hex: tally.hex, Count: tally.count, Type: tally.role()})
	}

	sortByCount(colors)
	if len(colors) > MaxPaletteSize {
		colors = colors[:MaxPaletteSize]
	}

	return colors
}

// Extract asks the host for its active target and runs Sample there.
// Failures are reported as ErrNoActiveTarget or ErrSamplingFailed.
func Extract(ctx context.Context, host Host) ([]ExtractedColor, error) {
	target, err := host.ActiveTarget(ctx)
	if err != nil {
		if errors.Is(err, ErrNoActiveTarget) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrNoActiveTarget, err)
	}
	if target.ID == "" {
		return nil, ErrNoActiveTarget
	}

	colors, err := host.Execute(ctx, target, Sample)
	if err != nil {
		if errors.Is(err, ErrSamplingFailed) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrSamplingFailed, err)
	}
	if colors == nil {
		return nil, fmt.Errorf("%w: %s returned no result", ErrSamplingFailed, target.ID)
	}

	return colors, nil
}

// RunSafely executes sample and turns a panic inside it into an error, so
// hosts can surface a broken document as a sampling failure.
func RunSafely(sample SampleFunc, doc Document) (colors []ExtractedColor, err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			colors = nil
			err = fmt.Errorf("%w: %v", ErrSamplingFailed, recovered)
		}
	}()

	colors = sample(doc)
	if colors == nil {
		colors = []ExtractedColor{}
	}
	return colors, nil
}

func canonicalHex(value string) (string, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" || strings.EqualFold(trimmed, "none") || strings.EqualFold(trimmed, "transparent") {
		return "", false
	}

	c, alpha, ok := colormodel.ParseCSSColor(firstColor(trimmed))
	if !ok || alpha == 0 {
		return "", false
	}
	return c.Hex(), true
}

// firstColor picks the top side out of a shorthand such as
// "rgb(1, 2, 3) rgb(4, 5, 6)".
func firstColor(value string) string {
	if end := strings.IndexByte(value, ')'); end >= 0 {
		return value[:end+1]
	}
	if fields := strings.Fields(value); len(fields) > 0 {
		return fields[0]
	}
	return value
}

func sortByCount(colors []ExtractedColor) {
	sort.SliceStable(colors, func(i, j int) bool {
		return colors[i].Count > colors[j].Count
	})
}
