package imageutil

import (
	"math"

	"github.com/nfnt/resize"
)

// Resize scales an image to the exact target dimensions using Lanczos3
// resampling. Dimensions are clamped to a minimum of 1.
func Resize(img *RGBAImage, width, height int) *RGBAImage {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	out := resize.Resize(uint(width), uint(height), img.RGBA, resize.Lanczos3)
	return RGBAImageFromImage(out)
}

// DeriveHeight computes the output height for a target width that
// preserves the source aspect ratio, corrected by the glyph's visual
// height-to-width ratio: 0.5 for text glyphs (roughly twice as tall as
// wide), 1.0 for emoji (visually square). The result is never below 1.
func DeriveHeight(width, srcWidth, srcHeight int, charAspect float64) int {
	aspect := float64(srcHeight) / float64(srcWidth)
	h := int(math.Round(float64(width) * aspect * charAspect))
	if h < 1 {
		h = 1
	}
	return h
}
