package imageutil

import "testing"

func TestCreateGradientImageEndpoints(t *testing.T) {
	img := CreateGradientImage(5, 1)
	if got := img.GetRGB(0, 0).R; got != 0 {
		t.Errorf("Left edge R = %d, expected 0", got)
	}
	if got := img.GetRGB(4, 0).R; got != 255 {
		t.Errorf("Right edge R = %d, expected 255", got)
	}
}

func TestCreateGradientImageSingleColumn(t *testing.T) {
	img := CreateGradientImage(1, 3)
	if img.Width() != 1 || img.Height() != 3 {
		t.Fatalf("Dimensions %dx%d, expected 1x3", img.Width(), img.Height())
	}
	for y := 0; y < 3; y++ {
		if got := img.GetRGB(0, y); got != (RGB{}) {
			t.Errorf("Pixel (0,%d) = %+v, expected black", y, got)
		}
	}
}
