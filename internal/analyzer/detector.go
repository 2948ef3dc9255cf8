// Package analyzer finds the visually busy part of a picture, so box art
// can be cropped to the slide panel without cutting off the logo or hero.
package analyzer

import "image"

// Block represents a detected region of interest in an image
type Block struct {
	Rect       image.Rectangle
	Type       string  // "detail", "center"
	Confidence float64 // 0.0-1.0
}

// Detector is the interface for image analysis strategies
type Detector interface {
	Detect(img image.Image) ([]Block, error)
}

// Salient returns the bounding box of every detected block, or the whole
// image when nothing was found.
func Salient(det Detector, img image.Image) image.Rectangle {
	bounds := img.Bounds()
	blocks, err := det.Detect(img)
	if err != nil || len(blocks) == 0 {
		return bounds
	}
	union := blocks[0].Rect
	for _, b := range blocks[1:] {
		union = union.Union(b.Rect)
	}
	return union.Intersect(bounds)
}

// CropTo picks the largest rectangle of the given aspect (width/height)
// that fits in bounds and is centred as close as possible on focus.
func CropTo(bounds, focus image.Rectangle, aspect float64) image.Rectangle {
	if aspect <= 0 || bounds.Empty() {
		return bounds
	}
	w, h := bounds.Dx(), bounds.Dy()
	if float64(w)/float64(h) > aspect {
		w = int(float64(h) * aspect)
	} else {
		h = int(float64(w) / aspect)
	}

	if focus.Empty() {
		focus = bounds
	}
	cx := (focus.Min.X + focus.Max.X) / 2
	cy := (focus.Min.Y + focus.Max.Y) / 2

	x := clampInt(cx-w/2, bounds.Min.X, bounds.Max.X-w)
	y := clampInt(cy-h/2, bounds.Min.Y, bounds.Max.Y-h)
	return image.Rect(x, y, x+w, y+h)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
