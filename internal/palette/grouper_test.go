package palette

import (
	"reflect"
	"testing"

	"pickperfect/internal/colormodel"
)

func TestGroupMergesIntoFirstRepresentative(t *testing.T) {
	t.Parallel()

	input := []ExtractedColor{
		{Hex: "#FFFFFF", Count: 10, Type: RoleBackground},
		{Hex: "#101010", Count: 6, Type: RoleText},
		{Hex: "#F5F5F5", Count: 5, Type: RoleBackground},
		{Hex: "#1A1A1A", Count: 4, Type: RoleBorder},
		{Hex: "#FF0000", Count: 1, Type: RoleMixed},
	}

	got := Group(input, 30)
	want := []ExtractedColor{
		{Hex: "#FFFFFF", Count: 15, Type: RoleBackground},
		{Hex: "#101010", Count: 10, Type: RoleText},
		{Hex: "#FF0000", Count: 1, Type: RoleMixed},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected grouping:\n got %+v\nwant %+v", got, want)
	}

	if input[0].Count != 10 {
		t.Fatalf("group must not mutate its input, got %+v", input[0])
	}
}

func TestGroupFirstMatchWinsOverCloser(t *testing.T) {
	t.Parallel()

	// #140000 is 20 away from #000000 and only 12 away from #200000, but the
	// earlier representative claims it.
	input := []ExtractedColor{
		{Hex: "#000000", Count: 3, Type: RoleText},
		{Hex: "#200000", Count: 2, Type: RoleBackground},
		{Hex: "#140000", Count: 1, Type: RoleBorder},
	}

	got := Group(input, 30)
	if len(got) != 2 {
		t.Fatalf("expected 2 groups, got %+v", got)
	}
	if got[0].Hex != "#000000" || got[0].Count != 4 {
		t.Fatalf("expected first representative to absorb the entry, got %+v", got[0])
	}
}

func TestGroupThresholdIsExclusive(t *testing.T) {
	t.Parallel()

	input := []ExtractedColor{
		{Hex: "#000000", Count: 2, Type: RoleText},
		{Hex: "#1E0000", Count: 1, Type: RoleText},
	}

	if got := Group(input, 30); len(got) != 2 {
		t.Fatalf("distance equal to threshold must not merge, got %+v", got)
	}
	if got := Group(input, 30.5); len(got) != 1 {
		t.Fatalf("expected merge under a wider threshold, got %+v", got)
	}
}

func TestGroupResortsByCount(t *testing.T) {
	t.Parallel()

	input := []ExtractedColor{
		{Hex: "#0000FF", Count: 5, Type: RoleText},
		{Hex: "#FF0000", Count: 4, Type: RoleBackground},
		{Hex: "#F00A0A", Count: 4, Type: RoleBackground},
	}

	got := Group(input, -1)
	if got[0].Hex != "#FF0000" || got[0].Count != 8 {
		t.Fatalf("expected merged red to lead, got %+v", got)
	}
}

func TestGroupIsIdempotent(t *testing.T) {
	t.Parallel()

	input := make([]ExtractedColor, 0, MaxPaletteSize)
	for i := 0; i < MaxPaletteSize; i++ {
		c := colormodel.Color{R: uint8(i * 11), G: uint8(255 - i*7), B: uint8(i * 3)}
		input = append(input, ExtractedColor{Hex: c.Hex(), Count: MaxPaletteSize - i, Type: RoleBackground})
	}

	for _, threshold := range []float64{10, 30, 60, 120} {
		once := Group(input, threshold)
		twice := Group(once, threshold)
		if !reflect.DeepEqual(once, twice) {
			t.Fatalf("threshold %v: grouping not idempotent:\n once %+v\ntwice %+v", threshold, once, twice)
		}

		for i := range once {
			for j := i + 1; j < len(once); j++ {
				d := colormodel.Distance(colormodel.ParseHex(once[i].Hex), colormodel.ParseHex(once[j].Hex))
				if d < threshold {
					t.Fatalf("threshold %v: %s and %s left closer than threshold (%f)", threshold, once[i].Hex, once[j].Hex, d)
				}
			}
		}
	}
}

func TestGroupWithDeltaE(t *testing.T) {
	t.Parallel()

	input := []ExtractedColor{
		{Hex: "#3366CC", Count: 3, Type: RoleBackground},
		{Hex: "#3468CB", Count: 2, Type: RoleBackground},
		{Hex: "#CC3366", Count: 1, Type: RoleText},
	}

	got := GroupWith(input, GroupOptions{Threshold: -1, Metric: MetricDeltaE2000})
	if len(got) != 2 || got[0].Count != 5 {
		t.Fatalf("expected near-identical blues to merge under deltaE, got %+v", got)
	}
}

func TestGroupWithDeltaEDefaultIsTighterThanRGB(t *testing.T) {
	t.Parallel()

	// About 13.8 apart in CIEDE2000.
	input := []ExtractedColor{
		{Hex: "#FF0000", Count: 2, Type: RoleBackground},
		{Hex: "#C02020", Count: 1, Type: RoleBackground},
	}

	if got := GroupWith(input, GroupOptions{Threshold: -1, Metric: MetricDeltaE2000}); len(got) != 2 {
		t.Fatalf("default deltaE threshold must keep both reds, got %+v", got)
	}
	if got := GroupWith(input, GroupOptions{Threshold: 20, Metric: MetricDeltaE2000}); len(got) != 1 {
		t.Fatalf("expected reds to merge under a threshold of 20, got %+v", got)
	}
}

func TestGroupZeroThresholdMergesNothing(t *testing.T) {
	t.Parallel()

	input := []ExtractedColor{
		{Hex: "#FFFFFF", Count: 3, Type: RoleBackground},
		{Hex: "#FEFEFE", Count: 2, Type: RoleBackground},
		{Hex: "#FFFFFF", Count: 1, Type: RoleText},
	}

	got := Group(input, 0)
	if !reflect.DeepEqual(got, input) {
		t.Fatalf("zero threshold must leave the palette unchanged:\n got %+v\nwant %+v", got, input)
	}
	if got := GroupWith(input, GroupOptions{Threshold: 0, Metric: MetricDeltaE2000}); len(got) != 3 {
		t.Fatalf("zero deltaE threshold must merge nothing, got %+v", got)
	}
}

func TestParseMetric(t *testing.T) {
	t.Parallel()

	if metric, err := ParseMetric(""); err != nil || metric != MetricRGB {
		t.Fatalf("expected rgb default, got %q (%v)", metric, err)
	}
	if metric, err := ParseMetric("CIEDE2000"); err != nil || metric != MetricDeltaE2000 {
		t.Fatalf("expected deltae2000, got %q (%v)", metric, err)
	}
	if _, err := ParseMetric("manhattan"); err == nil {
		t.Fatal("expected error for unknown metric")
	}
}
