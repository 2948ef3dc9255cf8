package analyzer

import (
	"image"
	"image/color"
	"testing"
)

// newTestImage returns a black canvas with one white square
func newTestImage(w, h int, square image.Rectangle) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := square.Min.Y; y < square.Max.Y; y++ {
		for x := square.Min.X; x < square.Max.X; x++ {
			img.SetGray(x, y, color.Gray{Y: 255})
		}
	}
	return img
}

func TestContrastDetector(t *testing.T) {
	img := newTestImage(200, 200, image.Rect(50, 50, 150, 150))

	detector := NewContrastDetector()
	blocks, err := detector.Detect(img)
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}

	if len(blocks) == 0 {
		t.Fatal("Expected at least one block, got none")
	}

	// Verify the detected block roughly matches our white rectangle
	block := blocks[0]
	if block.Rect.Dx() < 80 || block.Rect.Dy() < 80 {
		t.Errorf("Block too small: %v", block.Rect)
	}

	t.Logf("Detected %d blocks", len(blocks))
	for i, b := range blocks {
		t.Logf("Block %d: %v (type: %s, confidence: %.2f)", i, b.Rect, b.Type, b.Confidence)
	}
}

func TestContrastDetectorScalesBack(t *testing.T) {
	// 1024px source is analysed at 256px; the block must come back in source pixels
	img := newTestImage(1024, 1024, image.Rect(600, 100, 900, 400))

	blocks, err := NewContrastDetector().Detect(img)
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
	if len(blocks) == 0 {
		t.Fatal("Expected a block")
	}

	focus := Salient(NewContrastDetector(), img)
	center := image.Pt((focus.Min.X+focus.Max.X)/2, (focus.Min.Y+focus.Max.Y)/2)
	if center.X < 700 || center.X > 800 || center.Y < 200 || center.Y > 300 {
		t.Errorf("Focus %v is not centred on the square", focus)
	}
}

func TestSalientFallsBackToBounds(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 64, 64))
	if got := Salient(NewContrastDetector(), img); got != img.Bounds() {
		t.Errorf("Expected full bounds for a flat image, got %v", got)
	}
}

func TestCropTo(t *testing.T) {
	tests := []struct {
		name   string
		bounds image.Rectangle
		focus  image.Rectangle
		aspect float64
		want   image.Rectangle
	}{
		{"wide centred", image.Rect(0, 0, 400, 300), image.Rectangle{}, 0.75, image.Rect(88, 0, 313, 300)},
		{"wide focus right", image.Rect(0, 0, 400, 300), image.Rect(350, 0, 400, 300), 0.75, image.Rect(175, 0, 400, 300)},
		{"tall focus top", image.Rect(0, 0, 300, 800), image.Rect(0, 0, 300, 10), 0.75, image.Rect(0, 0, 300, 400)},
		{"exact aspect", image.Rect(0, 0, 300, 400), image.Rect(0, 0, 10, 10), 0.75, image.Rect(0, 0, 300, 400)},
		{"no aspect", image.Rect(0, 0, 10, 10), image.Rectangle{}, 0, image.Rect(0, 0, 10, 10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CropTo(tt.bounds, tt.focus, tt.aspect)
			if got != tt.want {
				t.Errorf("CropTo = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDetectorRegistry(t *testing.T) {
	tests := []struct {
		variant string
		wantErr bool
	}{
		{"contrast", false},
		{"", false}, // default
		{"center", false},
		{"ocr", true},
		{"invalid", true},
	}

	for _, tt := range tests {
		t.Run(tt.variant, func(t *testing.T) {
			detector, err := NewDetector(tt.variant)

			if tt.wantErr {
				if err == nil {
					t.Error("Expected error, got nil")
				}
			} else {
				if err != nil {
					t.Errorf("Unexpected error: %v", err)
				}
				if detector == nil {
					t.Error("Expected detector, got nil")
				}
			}
		})
	}
}
