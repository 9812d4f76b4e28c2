package asciiart

import (
	"errors"
	"fmt"
)

// ErrInvalidSettings tags configuration rejected before pipeline
// execution. The wrapping message names the offending field.
var ErrInvalidSettings = errors.New("invalid settings")

// Settings configures one conversion. Build it once at the boundary;
// glyph and emoji table names are resolved to tables before the pipeline
// runs (see CharsetByName, EmojiSetByName).
type Settings struct {
	// Width is the output width in glyphs. Must be at least 1.
	Width int

	// Height is the explicit output height. 0 derives it from the
	// source aspect ratio corrected by the glyph aspect.
	Height int

	Charset   Charset
	ColorMode ColorMode
	Invert    bool

	// Contrast, Brightness, and Sharpen are enhancement factors where
	// 1.0 is neutral.
	Contrast   float64
	Brightness float64
	Sharpen    float64

	EdgeDetection bool
	Denoise       bool
	AutoEnhance   bool

	UseEmoji   bool
	EmojiSet   Charset
	ColorEmoji bool
}

// DefaultSettings returns the library defaults: detailed character set,
// a mild contrast boost, denoising on.
func DefaultSettings() Settings {
	return Settings{
		Width:      100,
		Charset:    CharsetDetailed,
		ColorMode:  ColorNone,
		Contrast:   1.2,
		Brightness: 1.0,
		Sharpen:    1.0,
		Denoise:    true,
		EmojiSet:   EmojiBrightness,
	}
}

// Validate rejects settings the pipeline cannot honor.
func (s Settings) Validate() error {
	switch {
	case s.Width < 1:
		return fmt.Errorf("%w: width must be at least 1, got %d", ErrInvalidSettings, s.Width)
	case s.Height < 0:
		return fmt.Errorf("%w: height must not be negative, got %d", ErrInvalidSettings, s.Height)
	case s.Contrast < 0:
		return fmt.Errorf("%w: contrast must not be negative, got %g", ErrInvalidSettings, s.Contrast)
	case s.Brightness < 0:
		return fmt.Errorf("%w: brightness must not be negative, got %g", ErrInvalidSettings, s.Brightness)
	case s.Sharpen < 0:
		return fmt.Errorf("%w: sharpen must not be negative, got %g", ErrInvalidSettings, s.Sharpen)
	case !s.ColorMode.valid():
		return fmt.Errorf("%w: unknown color mode %q", ErrInvalidSettings, s.ColorMode)
	}
	return nil
}

// glyphs returns the active glyph table, falling back to the documented
// defaults when a table is unset.
func (s Settings) glyphs() Charset {
	if s.UseEmoji {
		if len(s.EmojiSet) == 0 {
			return EmojiBrightness
		}
		return s.EmojiSet
	}
	if len(s.Charset) == 0 {
		return CharsetDetailed
	}
	return s.Charset
}
