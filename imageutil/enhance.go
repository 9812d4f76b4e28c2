package imageutil

import (
	"image"
	"math"

	"github.com/disintegration/gift"
)

// applyFilters runs a gift filter chain over an RGBA image and returns
// the filtered copy.
func applyFilters(img *RGBAImage, filters ...gift.Filter) *RGBAImage {
	g := gift.New(filters...)
	dst := image.NewRGBA(g.Bounds(img.Bounds()))
	g.Draw(dst, img.RGBA)
	return &RGBAImage{RGBA: dst}
}

// Brightness scales pixel values by factor. 1.0 is neutral, 0.0 yields a
// black image, values above 1.0 brighten.
func Brightness(img *RGBAImage, factor float64) *RGBAImage {
	f := float32(factor)
	return applyFilters(img, gift.ColorFunc(
		func(r0, g0, b0, a0 float32) (float32, float32, float32, float32) {
			return clampf(r0 * f), clampf(g0 * f), clampf(b0 * f), a0
		}))
}

// Contrast blends each pixel against the image's mean luminance.
// 1.0 is neutral, 0.0 yields a uniform gray image, values above 1.0
// increase contrast.
func Contrast(img *RGBAImage, factor float64) *RGBAImage {
	mean := float32(meanLuminance(img)) / 255
	f := float32(factor)
	blend := func(v float32) float32 {
		return clampf(mean + (v-mean)*f)
	}
	return applyFilters(img, gift.ColorFunc(
		func(r0, g0, b0, a0 float32) (float32, float32, float32, float32) {
			return blend(r0), blend(g0), blend(b0), a0
		}))
}

// Sharpen blends each pixel against a 3x3 smoothed copy of the image.
// 1.0 is neutral, 0.0 yields the smoothed image, values above 1.0
// sharpen.
func Sharpen(img *RGBAImage, factor float64) *RGBAImage {
	smoothed := applyFilters(img, gift.Convolution(
		[]float32{
			1, 1, 1,
			1, 5, 1,
			1, 1, 1,
		}, true, false, false, 0))

	width, height := img.Width(), img.Height()
	out := NewRGBAImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			p := img.GetRGB(x, y)
			s := smoothed.GetRGB(x, y)
			out.SetRGB(x, y, RGB{
				R: blendChannel(s.R, p.R, factor),
				G: blendChannel(s.G, p.G, factor),
				B: blendChannel(s.B, p.B, factor),
			})
		}
	}
	return out
}

// AutoContrast stretches each channel's histogram so the darkest value
// maps to 0 and the lightest to 255. Channels with no spread are left
// unchanged.
func AutoContrast(img *RGBAImage) *RGBAImage {
	width, height := img.Width(), img.Height()

	var lo, hi [3]int
	for ch := 0; ch < 3; ch++ {
		lo[ch], hi[ch] = 255, 0
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := img.RGBAAt(x, y)
			for ch, v := range [3]uint8{c.R, c.G, c.B} {
				if int(v) < lo[ch] {
					lo[ch] = int(v)
				}
				if int(v) > hi[ch] {
					hi[ch] = int(v)
				}
			}
		}
	}

	var scale [3]float64
	for ch := 0; ch < 3; ch++ {
		if hi[ch] > lo[ch] {
			scale[ch] = 255.0 / float64(hi[ch]-lo[ch])
		}
	}

	remap := func(v uint8, ch int) uint8 {
		if scale[ch] == 0 {
			return v
		}
		return clampUint8(float64(int(v)-lo[ch]) * scale[ch])
	}

	out := NewRGBAImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := img.RGBAAt(x, y)
			out.SetRGB(x, y, RGB{
				R: remap(c.R, 0),
				G: remap(c.G, 1),
				B: remap(c.B, 2),
			})
		}
	}
	return out
}

// meanLuminance returns the average BT.601 luminance, rounded to the
// nearest integer.
func meanLuminance(img *RGBAImage) int {
	width, height := img.Width(), img.Height()
	if width == 0 || height == 0 {
		return 0
	}

	var sum float64
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := img.RGBAAt(x, y)
			sum += 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
		}
	}
	return int(math.Round(sum / float64(width*height)))
}

// blendChannel interpolates from a toward b by factor, clamped to [0,255].
func blendChannel(a, b uint8, factor float64) uint8 {
	return clampUint8(float64(a) + factor*(float64(b)-float64(a)))
}

func clampf(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clampUint8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(math.Round(v))
}
