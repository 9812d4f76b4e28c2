//go:build gocv

package imageutil

import (
	"gocv.io/x/gocv"
)

func probeOps() Ops { return opencvOps{} }

// opencvOps delegates denoising and edge detection to OpenCV via gocv.
// Any conversion failure falls back to the portable implementation, so
// these operations never surface an error.
type opencvOps struct{}

func (opencvOps) Name() string { return "opencv" }

// Denoise applies an edge-preserving bilateral filter.
func (opencvOps) Denoise(img *RGBAImage) *RGBAImage {
	src, err := gocv.ImageToMatRGB(img.RGBA)
	if err != nil {
		return portableOps{}.Denoise(img)
	}
	defer src.Close()

	dst := gocv.NewMat()
	defer dst.Close()
	gocv.BilateralFilter(src, &dst, 9, 75, 75)

	out, err := dst.ToImage()
	if err != nil {
		return portableOps{}.Denoise(img)
	}
	return RGBAImageFromImage(out)
}

// EdgeDetect runs Canny edge detection and inverts the binary map so
// edges render dark on a light background.
func (opencvOps) EdgeDetect(gray *GrayImage) *GrayImage {
	src, err := gocv.ImageGrayToMatGray(gray.Gray)
	if err != nil {
		return portableOps{}.EdgeDetect(gray)
	}
	defer src.Close()

	edges := gocv.NewMat()
	defer edges.Close()
	gocv.Canny(src, &edges, 100, 200)

	inverted := gocv.NewMat()
	defer inverted.Close()
	gocv.BitwiseNot(edges, &inverted)

	out, err := inverted.ToImage()
	if err != nil {
		return portableOps{}.EdgeDetect(gray)
	}
	return GrayImageFromImage(out)
}
