package palette

import (
	"fmt"
	"strings"

	"github.com/jkl1337/go-chromath"
	"github.com/jkl1337/go-chromath/deltae"

	"pickperfect/internal/colormodel"
)

// DefaultGroupThreshold is the RGB distance under which two swatches read
// as the same color.
const DefaultGroupThreshold = 30

// DefaultDeltaEThreshold is the CIEDE2000 counterpart of DefaultGroupThreshold.
const DefaultDeltaEThreshold = 10

// Metric selects the distance used to decide whether two colors merge.
type Metric string

const (
	MetricRGB        Metric = "rgb"
	MetricDeltaE2000 Metric = "deltae2000"
)

var (
	labIlluminant = &chromath.IlluminantRefD50
	rgbToXYZ      = chromath.NewRGBTransformer(
		&chromath.SpaceSRGB,
		&chromath.AdaptationBradford,
		labIlluminant,
		&chromath.Scaler8bClamping,
		1.0,
		nil,
	)
	xyzToLab = chromath.NewLabTransformer(labIlluminant)
	klch     = &deltae.KLChDefault
)

func ParseMetric(value string) (Metric, error) {
	switch Metric(strings.ToLower(strings.TrimSpace(value))) {
	case "", MetricRGB:
		return MetricRGB, nil
	case MetricDeltaE2000, "deltae", "ciede2000":
		return MetricDeltaE2000, nil
	default:
		return "", fmt.Errorf("unknown grouping metric %q", value)
	}
}

type GroupOptions struct {
	// Threshold is exclusive, so 0 merges nothing. A negative value selects
	// the metric's default. DeltaE thresholds are in deltaE units.
	Threshold float64
	Metric    Metric
}

func (o GroupOptions) normalized() GroupOptions {
	normalized := o
	if normalized.Metric == "" {
		normalized.Metric = MetricRGB
	}
	if normalized.Threshold < 0 {
		normalized.Threshold = DefaultGroupThreshold
		if normalized.Metric == MetricDeltaE2000 {
			normalized.Threshold = DefaultDeltaEThreshold
		}
	}
	return normalized
}

// Group merges entries closer than threshold in RGB space. See GroupWith.
func Group(colors []ExtractedColor, threshold float64) []ExtractedColor {
	return GroupWith(colors, GroupOptions{Threshold: threshold, Metric: MetricRGB})
}

// GroupWith is a greedy single pass: each entry joins the first existing
// representative closer than the threshold, adding its count, or becomes a
// representative itself. Representatives keep their own color and role and
// are not re-centered. The result is re-sorted by count.
//
// The first match wins even when a later representative is closer, so the
// grouping depends on input order. Sampled palettes arrive sorted by count,
// which keeps the result stable in practice.
func GroupWith(colors []ExtractedColor, options GroupOptions) []ExtractedColor {
	normalized := options.normalized()
	distance := distanceFunc(normalized.Metric)

	grouped := make([]ExtractedColor, 0, len(colors))
	representatives := make([]colormodel.Color, 0, len(colors))

	for _, entry := range colors {
		candidate := colormodel.ParseHex(entry.Hex)

		merged := false
		for index, representative := range representatives {
			if distance(representative, candidate) < normalized.Threshold {
				grouped[index].Count += entry.Count
				merged = true
				break
			}
		}

		if !merged {
			grouped = append(grouped, entry)
			representatives = append(representatives, candidate)
		}
	}

	sortByCount(grouped)
	return grouped
}

func distanceFunc(metric Metric) func(a, b colormodel.Color) float64 {
	if metric == MetricDeltaE2000 {
		return deltaE2000
	}
	return colormodel.Distance
}

func deltaE2000(a, b colormodel.Color) float64 {
	return deltae.CIE2000(toLab(a), toLab(b), klch)
}

func toLab(c colormodel.Color) chromath.Lab {
	rgb := chromath.RGB{float64(c.R), float64(c.G), float64(c.B)}
	return xyzToLab.Invert(rgbToXYZ.Convert(rgb))
}
