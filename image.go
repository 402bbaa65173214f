package main

import (
	"errors"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"math"
	"os"

	"github.com/nfnt/resize"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Images wider than this are scaled down before rendering. The value was
// found by trial and error: each pixel becomes three glyphs.
const maxWidth = 300

var errIsDir = errors.New("is a directory")

func isImage(path string) bool {
	switch extension(path) {
	case "png", "jpg", "jpeg", "gif", "bmp", "tif", "tiff", "webp":
		return true
	}
	return false
}

func loadImage(path string) (image.Image, string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, "", openError(path, err)
	}
	defer file.Close()

	if fi, err := file.Stat(); err != nil {
		return nil, "", openError(path, err)
	} else if fi.IsDir() {
		return nil, "", openError(path, errIsDir)
	}

	img, format, err := image.Decode(file)
	if err != nil {
		return nil, "", &ImportError{Path: path, Kind: Unsupported, Err: err}
	}

	b := img.Bounds()
	if b.Empty() {
		return nil, "", &ImportError{Path: path, Kind: Unsupported, Err: errors.New("image has no pixels")}
	}
	log.Printf("decoded %s as %s, %dx%d", path, format, b.Dx(), b.Dy())
	return img, format, nil
}

// fitSize returns the render size for an image: at most maxWidth wide, with
// the height scaled by the same ratio. The height is rounded half away from
// zero, so 1200x10 becomes 300x3, and is never less than 1.
func fitSize(width, height int) (int, int) {
	if width <= maxWidth {
		return width, height
	}
	h := int(math.Round(float64(maxWidth) * float64(height) / float64(width)))
	if h < 1 {
		h = 1
	}
	return maxWidth, h
}

func fitWidth(img image.Image) image.Image {
	b := img.Bounds()
	w, h := fitSize(b.Dx(), b.Dy())
	if w == b.Dx() && h == b.Dy() {
		return img
	}
	log.Printf("resizing %dx%d to %dx%d", b.Dx(), b.Dy(), w, h)
	return resize.Resize(uint(w), uint(h), img, resize.NearestNeighbor)
}
