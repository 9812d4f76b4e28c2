package imageutil

import (
	"image"
	"image/color"
	"testing"
)

func TestRGBAImagePixelAccess(t *testing.T) {
	img := NewRGBAImage(4, 3)
	if img.Width() != 4 || img.Height() != 3 {
		t.Fatalf("Dimensions %dx%d, expected 4x3", img.Width(), img.Height())
	}

	c := RGB{R: 10, G: 20, B: 30}
	img.SetRGB(2, 1, c)
	if got := img.GetRGB(2, 1); got != c {
		t.Errorf("GetRGB = %+v, expected %+v", got, c)
	}

	// Alpha is always opaque.
	if a := img.RGBAAt(2, 1).A; a != 255 {
		t.Errorf("Alpha = %d, expected 255", a)
	}
}

func TestRGBAImageClone(t *testing.T) {
	img := CreateSolidImage(3, 3, RGB{R: 100, G: 100, B: 100})
	clone := img.Clone()

	clone.SetRGB(1, 1, RGB{R: 255})
	if img.GetRGB(1, 1).R != 100 {
		t.Error("Mutating the clone changed the original")
	}
}

func TestRGBAImageFromImage(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	src.Set(0, 0, color.NRGBA{R: 50, G: 60, B: 70, A: 255})

	img := RGBAImageFromImage(src)
	if img.Width() != 2 || img.Height() != 2 {
		t.Fatalf("Dimensions %dx%d, expected 2x2", img.Width(), img.Height())
	}
	if got := img.GetRGB(0, 0); got != (RGB{R: 50, G: 60, B: 70}) {
		t.Errorf("GetRGB = %+v", got)
	}
}

func TestRGBAImageFromImageIdentity(t *testing.T) {
	img := NewRGBAImage(2, 2)
	if RGBAImageFromImage(img) != img {
		t.Error("Expected wrapping an RGBAImage to return it unchanged")
	}
}

func TestRGBAImageFromImageOffsetBounds(t *testing.T) {
	// Subimages carry non-zero origin bounds; conversion must
	// normalize to (0,0).
	src := image.NewRGBA(image.Rect(5, 5, 8, 7))
	src.SetRGBA(5, 5, color.RGBA{R: 9, A: 255})

	img := RGBAImageFromImage(src)
	if img.Width() != 3 || img.Height() != 2 {
		t.Fatalf("Dimensions %dx%d, expected 3x2", img.Width(), img.Height())
	}
	if got := img.GetRGB(0, 0).R; got != 9 {
		t.Errorf("Origin pixel R = %d, expected 9", got)
	}
}

func TestGrayImagePixelAccess(t *testing.T) {
	img := NewGrayImage(3, 2)
	img.SetGrayValue(1, 1, 200)
	if got := img.GetGray(1, 1); got != 200 {
		t.Errorf("GetGray = %d, expected 200", got)
	}

	clone := img.Clone()
	clone.SetGrayValue(1, 1, 10)
	if img.GetGray(1, 1) != 200 {
		t.Error("Mutating the clone changed the original")
	}
}

func TestRGBFromColor(t *testing.T) {
	got := RGBFromColor(color.RGBA{R: 1, G: 2, B: 3, A: 255})
	if got != (RGB{R: 1, G: 2, B: 3}) {
		t.Errorf("RGBFromColor = %+v", got)
	}
}
