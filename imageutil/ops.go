package imageutil

import (
	"image"

	"github.com/disintegration/gift"
)

// Ops is the strategy surface for operations that have an accelerated
// OpenCV-backed implementation. The portable implementation is pure Go
// and always available; the accelerated one is selected when the binary
// is built with the gocv tag.
type Ops interface {
	// Name identifies the implementation.
	Name() string

	// Denoise removes noise while preserving the image shape.
	Denoise(img *RGBAImage) *RGBAImage

	// EdgeDetect computes an edge map from a grayscale image and inverts
	// it so edges render dark on a light background. The result is
	// single-channel with the same dimensions as the input.
	EdgeDetect(gray *GrayImage) *GrayImage
}

var activeOps = probeOps()

// ActiveOps returns the operation set selected at startup.
func ActiveOps() Ops { return activeOps }

// Accelerated reports whether the OpenCV-backed operations are in use.
func Accelerated() bool { return activeOps.Name() == "opencv" }

// portableOps implements Ops in pure Go.
type portableOps struct{}

func (portableOps) Name() string { return "portable" }

// Denoise applies a 3x3 median filter.
func (portableOps) Denoise(img *RGBAImage) *RGBAImage {
	return applyFilters(img, gift.Median(3, false))
}

// EdgeDetect convolves with a generic 3x3 edge kernel and inverts the
// result.
func (portableOps) EdgeDetect(gray *GrayImage) *GrayImage {
	g := gift.New(
		gift.Convolution([]float32{
			-1, -1, -1,
			-1, 8, -1,
			-1, -1, -1,
		}, false, false, false, 0),
		gift.Invert(),
	)
	dst := image.NewGray(g.Bounds(gray.Bounds()))
	g.Draw(dst, gray.Gray)
	return &GrayImage{Gray: dst}
}
