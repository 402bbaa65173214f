package main

import (
	"bufio"
	"errors"
	"image"
	"image/color"
	"io"
	"strings"
)

// Characters used in the drawing, from thinnest to boldest. This is the
// 69-glyph reference ramp; the first ascii.py release shipped 65 of these,
// without `.'` and `><`, so its output differs slightly.
const gradient = ".'`^\",:;Il!i><~+_-?][}{1)(|\\/tfjrxnuvczXYUJCLQ0OZmwqpdbkhao*#MW&8%B@$"

const (
	// Assumed maximum of brightness(). The formula itself tops out at 252,
	// but glyph indexes have always been scaled by 253.
	maxBrightness = 253

	// Each pixel is printed this many times, so the art is not squashed by
	// glyphs being taller than they are wide.
	glyphRepeat = 3
)

var invertedGradient = reverse(gradient)

var errBadWidth = errors.New("render: width must be positive")

type Mode int

const (
	Normal Mode = iota
	Inverted
)

func (m Mode) String() string {
	switch m {
	case Normal:
		return "normal"
	case Inverted:
		return "inverted"
	}
	return "unknown"
}

// glyphs returns the gradient used by the mode: thin glyphs for dark pixels
// in Normal mode, bold glyphs for dark pixels in Inverted mode.
func (m Mode) glyphs() string {
	if m == Inverted {
		return invertedGradient
	}
	return gradient
}

type Pixel struct {
	R, G, B uint8
}

func pixelOf(c color.Color) Pixel {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Pixel{n.R, n.G, n.B}
}

// Raster is a decoded image flattened into row-major pixels.
type Raster struct {
	Pix    []Pixel
	Width  int
	Height int
}

func newRaster(img image.Image) Raster {
	bounds := img.Bounds()
	r := Raster{
		Pix:    make([]Pixel, 0, bounds.Dx()*bounds.Dy()),
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r.Pix = append(r.Pix, pixelOf(img.At(x, y)))
		}
	}
	return r
}

// brightness approximates relative luminance. The explicit conversions keep
// each product rounded on its own, so no platform fuses them.
func brightness(p Pixel) int {
	r := float64(0.21 * float64(p.R))
	g := float64(0.71 * float64(p.G))
	b := float64(0.07 * float64(p.B))
	return int(r + g + b)
}

func glyphIndex(brightness, n int) int {
	i := brightness * n / maxBrightness
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}

// render writes one line per image row. Every row, the first one included,
// starts with a line break, so the output holds exactly one line break per
// row and no trailing one.
func render(w io.Writer, pixels []Pixel, width int, mode Mode) error {
	if len(pixels) == 0 {
		return nil
	}
	if width <= 0 {
		return errBadWidth
	}

	glyphs := mode.glyphs()
	out := bufio.NewWriter(w)
	for i, p := range pixels {
		if i%width == 0 {
			if err := out.WriteByte('\n'); err != nil {
				return err
			}
		}
		g := glyphs[glyphIndex(brightness(p), len(glyphs))]
		for j := 0; j < glyphRepeat; j++ {
			if err := out.WriteByte(g); err != nil {
				return err
			}
		}
	}
	return out.Flush()
}

func renderString(r Raster, mode Mode) (string, error) {
	var b strings.Builder
	b.Grow(len(r.Pix)*glyphRepeat + r.Height)
	if err := render(&b, r.Pix, r.Width, mode); err != nil {
		return "", err
	}
	return b.String(), nil
}

func reverse(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}
