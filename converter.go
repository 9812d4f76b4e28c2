// Package asciiart renders raster images as grids of text glyphs or
// emoji, optionally colorized for terminal (ANSI truecolor) or HTML
// output.
package asciiart

import (
	"image"
	"strings"

	"github.com/ElevateDynasty/ASCII-ART/imageutil"
)

// Converter turns one decoded image into ASCII or emoji art. Each
// Convert call works on its own copies of the pixel data, so a Converter
// is safe for concurrent conversions.
type Converter struct {
	src *imageutil.RGBAImage
}

// NewConverter decodes the image at path. The path's extension must be a
// supported format; missing files and unsupported extensions are
// reported via imageutil.ErrNotFound and imageutil.ErrUnsupportedFormat.
func NewConverter(path string) (*Converter, error) {
	img, err := imageutil.Load(path)
	if err != nil {
		return nil, err
	}
	return &Converter{src: img}, nil
}

// NewConverterFromImage wraps an already decoded image.
func NewConverterFromImage(img image.Image) *Converter {
	return &Converter{src: imageutil.RGBAImageFromImage(img)}
}

// Convert runs the preprocessing pipeline and renders the artifact.
// Identical settings on the same image always produce identical output.
func (c *Converter) Convert(s Settings) (*Art, error) {
	// The zero-value mode renders uncolored.
	if s.ColorMode == "" {
		s.ColorMode = ColorNone
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	gray, width, height := c.preprocess(s)

	var colors [][]RGB
	if s.ColorMode != ColorNone || (s.UseEmoji && s.ColorEmoji) {
		// Sample from the original image, not the enhanced working
		// copy, so color fidelity is independent of the grayscale
		// enhancements.
		colors = colorMatrix(imageutil.Resize(c.src, width, height))
	}

	mapper := NewMapper(s.glyphs())
	colorizer := NewColorizer(s.ColorMode)
	colored := s.ColorMode != ColorNone

	lines := make([]string, 0, height)
	for y := 0; y < height; y++ {
		var row strings.Builder
		for x := 0; x < width; x++ {
			brightness := float64(gray.GetGray(x, y))

			var glyph string
			switch {
			case s.UseEmoji && s.ColorEmoji && colors != nil:
				px := colors[y][x]
				glyph = mapper.ColoredEmoji(int(px.R), int(px.G), int(px.B))
			case s.Invert:
				glyph = mapper.InvertedGlyph(brightness)
			default:
				glyph = mapper.Glyph(brightness)
			}

			if colored {
				if s.UseEmoji {
					glyph = colorizer.WrapEmoji(glyph)
				} else {
					glyph = colorizer.WrapGlyph(glyph, colors[y][x])
				}
			}
			row.WriteString(glyph)
		}
		lines = append(lines, colorizer.WrapLine(row.String()))
	}

	text := colorizer.WrapDocument(strings.Join(lines, "\n"), s.UseEmoji)

	return &Art{
		Text:     text,
		Width:    width,
		Height:   height,
		Colored:  colored,
		Emoji:    s.UseEmoji,
		Settings: s,
	}, nil
}

// preprocess applies the enhancement steps in their fixed order
// (denoise, contrast, brightness, auto-enhance, sharpen, resize, then
// edge detection or grayscale) and returns the intensity source plus the
// agreed output dimensions. Steps at their neutral factor are skipped.
func (c *Converter) preprocess(s Settings) (*imageutil.GrayImage, int, int) {
	work := c.src
	ops := imageutil.ActiveOps()

	if s.Denoise {
		work = ops.Denoise(work)
	}
	if s.Contrast != 1.0 {
		work = imageutil.Contrast(work, s.Contrast)
	}
	if s.Brightness != 1.0 {
		work = imageutil.Brightness(work, s.Brightness)
	}
	if s.AutoEnhance {
		work = imageutil.AutoContrast(work)
	}
	if s.Sharpen != 1.0 {
		work = imageutil.Sharpen(work, s.Sharpen)
	}

	width := s.Width
	height := s.Height
	if height == 0 {
		charAspect := 0.5
		if s.UseEmoji {
			charAspect = 1.0
		}
		height = imageutil.DeriveHeight(width, work.Width(), work.Height(), charAspect)
	}
	work = imageutil.Resize(work, width, height)

	// Edge detection applies to glyph output only; emoji mapping reads
	// the color matrix, with grayscale still computed for the
	// brightness-driven emoji path.
	if s.EdgeDetection && !s.UseEmoji {
		return ops.EdgeDetect(imageutil.ToGrayscale(work)), width, height
	}
	return imageutil.ToGrayscale(work), width, height
}

// colorMatrix captures the pixel grid of a resized image as RGB rows.
func colorMatrix(img *imageutil.RGBAImage) [][]RGB {
	height, width := img.Height(), img.Width()
	m := make([][]RGB, height)
	for y := 0; y < height; y++ {
		m[y] = make([]RGB, width)
		for x := 0; x < width; x++ {
			px := img.GetRGB(x, y)
			m[y][x] = RGB{R: px.R, G: px.G, B: px.B}
		}
	}
	return m
}

// ConvertFile decodes the image at path and converts it in one call.
func ConvertFile(path string, s Settings) (*Art, error) {
	c, err := NewConverter(path)
	if err != nil {
		return nil, err
	}
	return c.Convert(s)
}
