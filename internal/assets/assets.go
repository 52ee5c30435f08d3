package assets

import (
	"errors"
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"
)

// ErrResourceUnavailable is returned when a texture or GPU resource cannot be loaded.
// It is never fatal: the viewer falls back to untextured drawing.
var ErrResourceUnavailable = errors.New("resource unavailable")

// LoadTexture decodes the image at path and prepares it for upload: flipped vertically so
// v=0 samples the bottom row, and downscaled so the longest side is at most maxSize
// (maxSize <= 0 keeps the source size).
func LoadTexture(path string, maxSize int) (*image.RGBA, error) {
	img, err := imgio.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: texture %s: %v", ErrResourceUnavailable, path, err)
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil, fmt.Errorf("%w: texture %s: empty image", ErrResourceUnavailable, path)
	}
	out := transform.FlipV(img)
	if w, h := fit(b.Dx(), b.Dy(), maxSize); w != b.Dx() || h != b.Dy() {
		out = transform.Resize(out, w, h, transform.Linear)
	}
	return out, nil
}

// fit scales w×h down so neither side exceeds limit, keeping the aspect ratio.
func fit(w, h, limit int) (int, int) {
	if limit <= 0 || (w <= limit && h <= limit) {
		return w, h
	}
	if w >= h {
		return limit, atLeastOne(h * limit / w)
	}
	return atLeastOne(w * limit / h), limit
}

func atLeastOne(v int) int {
	if v < 1 {
		return 1
	}
	return v
}
