package picker

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"sort"

	"github.com/esimov/colorquant"
	_ "github.com/gen2brain/avif"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"pickperfect/internal/colormodel"
	"pickperfect/internal/palette"
)

// MaxDominantColors is the largest palette the quantizer can build.
const MaxDominantColors = 256

var ErrOutOfBounds = errors.New("point outside image")

// LoadImage decodes a PNG, JPEG, GIF, BMP, WebP or AVIF file.
func LoadImage(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", path, err)
	}
	return img, nil
}

// PickFromImage returns the opaque color of the pixel at (x, y) in the
// image's own coordinate space.
func PickFromImage(img image.Image, x int, y int) (colormodel.Color, error) {
	if !image.Pt(x, y).In(img.Bounds()) {
		return colormodel.Color{}, fmt.Errorf("%w: (%d, %d) not in %v", ErrOutOfBounds, x, y, img.Bounds())
	}
	return colormodel.FromColor(img.At(x, y)), nil
}

// Dominant quantizes img down to at most n colors and ranks them by the
// number of pixels they cover. Fully transparent pixels are ignored.
func Dominant(img image.Image, n int) ([]palette.ExtractedColor, error) {
	if n < 1 || n > MaxDominantColors {
		return nil, fmt.Errorf("dominant color count must be between 1 and %d, got %d", MaxDominantColors, n)
	}

	bounds := img.Bounds()
	if bounds.Empty() {
		return []palette.ExtractedColor{}, nil
	}

	quantized := image.NewNRGBA(bounds)
	colorquant.NoDither.Quantize(img, quantized, n, false, true)

	counts := make(map[string]int)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a == 0 {
				continue
			}
			counts[colormodel.FromColor(quantized.At(x, y)).Hex()]++
		}
	}

	colors := make([]palette.ExtractedColor, 0, len(counts))
	for hex, count := range counts {
		colors = append(colors, palette.ExtractedColor{Hex: hex, Count: count, Type: palette.RoleBackground})
	}
	sort.Slice(colors, func(i, j int) bool {
		if colors[i].Count != colors[j].Count {
			return colors[i].Count > colors[j].Count
		}
		return colors[i].Hex < colors[j].Hex
	})

	if len(colors) > n {
		colors = colors[:n]
	}
	return colors, nil
}
