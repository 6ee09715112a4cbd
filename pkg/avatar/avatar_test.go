package avatar

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"
)

func sourcePNG(t *testing.T, width, height int) *bytes.Buffer {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode source: %v", err)
	}
	return &buf
}

func TestPrepareDownscalesLargeImages(t *testing.T) {
	out, err := Prepare(sourcePNG(t, 1024, 512), 512)
	if err != nil {
		t.Fatalf("prepare: %v", err)
	}

	img, err := jpeg.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 512 || bounds.Dy() != 256 {
		t.Errorf("size = %dx%d, want 512x256", bounds.Dx(), bounds.Dy())
	}
}

func TestPrepareKeepsSmallImages(t *testing.T) {
	out, err := Prepare(sourcePNG(t, 100, 80), 512)
	if err != nil {
		t.Fatalf("prepare: %v", err)
	}

	img, err := jpeg.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 100 || bounds.Dy() != 80 {
		t.Errorf("size = %dx%d, want 100x80", bounds.Dx(), bounds.Dy())
	}
}

func TestPrepareRejectsGarbage(t *testing.T) {
	if _, err := Prepare(bytes.NewReader([]byte("not an image")), 512); err == nil {
		t.Error("expected decode error")
	}
}
