package imageutil

import "testing"

func TestActiveOps(t *testing.T) {
	ops := ActiveOps()
	if ops == nil {
		t.Fatal("No operation set selected")
	}
	name := ops.Name()
	if name != "portable" && name != "opencv" {
		t.Errorf("Unknown operation set %q", name)
	}
	if Accelerated() != (name == "opencv") {
		t.Error("Accelerated() disagrees with the active operation name")
	}
}

func TestPortableDenoise(t *testing.T) {
	ops := portableOps{}

	img := CreateSolidImage(8, 8, RGB{R: 120, G: 120, B: 120})
	// Inject single-pixel noise; the median filter must remove it.
	img.SetRGB(4, 4, RGB{R: 255, G: 255, B: 255})

	out := ops.Denoise(img)
	if out.Width() != 8 || out.Height() != 8 {
		t.Fatalf("Denoised %dx%d, expected 8x8", out.Width(), out.Height())
	}
	if got := out.GetRGB(4, 4); got.R != 120 {
		t.Errorf("Noise pixel R = %d after denoise, expected 120", got.R)
	}
}

func TestPortableEdgeDetect(t *testing.T) {
	ops := portableOps{}

	// A uniform region has no edges, so the inverted edge map is white.
	flat := ToGrayscale(CreateSolidImage(10, 10, RGB{R: 128, G: 128, B: 128}))
	out := ops.EdgeDetect(flat)
	if out.Width() != 10 || out.Height() != 10 {
		t.Fatalf("Edge map %dx%d, expected 10x10", out.Width(), out.Height())
	}
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if got := out.GetGray(x, y); got != 255 {
				t.Fatalf("Flat region pixel (%d,%d) = %d, expected 255", x, y, got)
			}
		}
	}
}

func TestPortableEdgeDetectFindsEdges(t *testing.T) {
	ops := portableOps{}

	// Checkerboard boundaries must register darker than cell interiors.
	gray := ToGrayscale(CreateCheckerboardImage(16, 16, 8))
	out := ops.EdgeDetect(gray)

	interior := out.GetGray(3, 3) // deep inside a cell
	boundary := out.GetGray(7, 7) // cell corner
	if boundary >= interior {
		t.Errorf("Boundary = %d, interior = %d, expected boundary darker", boundary, interior)
	}
}
