package asciiart

import "math"

// Mapper quantizes intensity values into glyphs from an ordered table.
type Mapper struct {
	glyphs Charset
}

// NewMapper creates a mapper over the given glyph table. An empty table
// falls back to the detailed character set.
func NewMapper(glyphs Charset) Mapper {
	if len(glyphs) == 0 {
		glyphs = CharsetDetailed
	}
	return Mapper{glyphs: glyphs}
}

// Len returns the number of glyphs in the table.
func (m Mapper) Len() int { return len(m.glyphs) }

// Index maps a brightness value to a table index with half-up rounding.
// Brightness 0 maps to index 0 (darkest), 255 to the last index.
func (m Mapper) Index(brightness float64) int {
	if brightness < 0 {
		brightness = 0
	}
	if brightness > 255 {
		brightness = 255
	}
	idx := int(math.Floor(brightness/255*float64(len(m.glyphs)-1) + 0.5))
	if idx < 0 {
		idx = 0
	}
	if idx > len(m.glyphs)-1 {
		idx = len(m.glyphs) - 1
	}
	return idx
}

// Glyph returns the glyph for a brightness value.
func (m Mapper) Glyph(brightness float64) string {
	return m.glyphs[m.Index(brightness)]
}

// InvertedGlyph returns the glyph for the inverted brightness value.
func (m Mapper) InvertedGlyph(brightness float64) string {
	return m.Glyph(255 - brightness)
}

// Themed squares for color-driven emoji mapping.
const (
	emojiBlack  = "⬛"
	emojiWhite  = "⬜"
	emojiRed    = "🟥"
	emojiOrange = "🟧"
	emojiYellow = "🟨"
	emojiGreen  = "🟩"
	emojiBlue   = "🟦"
	emojiPurple = "🟪"
)

// ColoredEmoji classifies an RGB triple into a themed square emoji by
// dominant channel. The thresholds are fixed visual tuning.
func (m Mapper) ColoredEmoji(r, g, b int) string {
	mean := float64(r+g+b) / 3
	if mean < 30 {
		return emojiBlack
	}
	if mean > 225 {
		return emojiWhite
	}

	maxChannel := r
	if g > maxChannel {
		maxChannel = g
	}
	if b > maxChannel {
		maxChannel = b
	}

	switch maxChannel {
	case r:
		if g > 150 && r > 200 {
			return emojiYellow
		}
		if g > 100 {
			return emojiOrange
		}
		return emojiRed
	case g:
		return emojiGreen
	default:
		if r > 150 {
			return emojiPurple
		}
		return emojiBlue
	}
}
