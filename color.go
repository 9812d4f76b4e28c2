package asciiart

import (
	"fmt"
	"strings"
)

// RGB is a color sample from the color matrix.
type RGB struct {
	R, G, B uint8
}

const ansiReset = "\x1b[0m"

// AnsiFg returns the truecolor foreground escape sequence.
func (c RGB) AnsiFg() string {
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", c.R, c.G, c.B)
}

// AnsiBg returns the truecolor background escape sequence.
func (c RGB) AnsiBg() string {
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm", c.R, c.G, c.B)
}

// Hex returns the color as a lowercase hex triplet.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Luminance returns the perceived brightness in [0,255] using the
// 0.299/0.587/0.114 weighting.
func (c RGB) Luminance() float64 {
	return 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
}

// ColorMode selects the output encoding for glyph colors.
type ColorMode string

const (
	ColorNone   ColorMode = "none"
	ColorAnsiFg ColorMode = "ansi-fg"
	ColorAnsiBg ColorMode = "ansi-bg"
	ColorHTMLFg ColorMode = "html-fg"
	ColorHTMLBg ColorMode = "html-bg"
)

// ParseColorMode resolves a mode name, case-insensitively.
func ParseColorMode(s string) (ColorMode, error) {
	mode := ColorMode(strings.ToLower(s))
	switch mode {
	case ColorNone, ColorAnsiFg, ColorAnsiBg, ColorHTMLFg, ColorHTMLBg:
		return mode, nil
	}
	return ColorNone, fmt.Errorf("%w: unknown color mode %q", ErrInvalidSettings, s)
}

// HTML reports whether the mode produces markup output.
func (m ColorMode) HTML() bool {
	return m == ColorHTMLFg || m == ColorHTMLBg
}

// valid reports whether the mode is one of the recognized values. The
// zero value counts as none.
func (m ColorMode) valid() bool {
	switch m {
	case "", ColorNone, ColorAnsiFg, ColorAnsiBg, ColorHTMLFg, ColorHTMLBg:
		return true
	}
	return false
}

// Colorizer wraps glyphs, lines, and whole documents according to a
// color mode.
type Colorizer struct {
	mode ColorMode
}

// NewColorizer creates a Colorizer for the given mode.
func NewColorizer(mode ColorMode) Colorizer {
	return Colorizer{mode: mode}
}

// luma601 is the integer BT.601 luminance used for text selection.
// Integer math keeps the 128 boundary exact: gray 127 reads as dark,
// gray 128 as light, which the float weighting misses by one ulp.
func luma601(c RGB) int {
	return (299*int(c.R) + 587*int(c.G) + 114*int(c.B) + 500) / 1000
}

// WrapGlyph attaches color metadata to a single glyph. Background modes
// pick white text on dark backgrounds and black text on light ones so
// the glyph stays readable.
func (c Colorizer) WrapGlyph(glyph string, col RGB) string {
	switch c.mode {
	case ColorAnsiFg:
		return col.AnsiFg() + glyph + ansiReset

	case ColorAnsiBg:
		text := RGB{}
		if luma601(col) < 128 {
			text = RGB{R: 255, G: 255, B: 255}
		}
		return col.AnsiBg() + text.AnsiFg() + glyph + ansiReset

	case ColorHTMLFg:
		return `<span style="color:` + col.Hex() + `">` + escapeGlyph(glyph) + `</span>`

	case ColorHTMLBg:
		text := "#000000"
		if luma601(col) < 128 {
			text = "#ffffff"
		}
		return `<span style="background:` + col.Hex() + `;color:` + text + `">` +
			escapeGlyph(glyph) + `</span>`
	}
	return glyph
}

// WrapEmoji formats an emoji glyph. ANSI color metadata never applies to
// emoji; under HTML modes the emoji gets a class-tagged span with no
// color style.
func (c Colorizer) WrapEmoji(glyph string) string {
	if c.mode.HTML() {
		return `<span class="emoji">` + glyph + `</span>`
	}
	return glyph
}

// WrapLine frames one completed row of glyphs. HTML modes wrap the row
// in a block-level container; other modes pass it through.
func (c Colorizer) WrapLine(line string) string {
	if c.mode.HTML() {
		return `<div class="ascii-line">` + line + `</div>`
	}
	return line
}

// WrapDocument frames the joined rows. HTML modes embed the content in a
// standalone document with monospace styling; emoji output gets a larger
// font and looser spacing. Other modes return the content unwrapped.
func (c Colorizer) WrapDocument(content string, emoji bool) string {
	if !c.mode.HTML() {
		return content
	}

	fontSize, lineHeight, letterSpacing := "10px", "10px", "0px"
	if emoji {
		fontSize, lineHeight, letterSpacing = "16px", "18px", "2px"
	}
	return fmt.Sprintf(htmlShell, fontSize, lineHeight, letterSpacing, content)
}

// escapeGlyph escapes the HTML-reserved characters a glyph can contain.
// Spaces become non-breaking so glyph runs survive whitespace collapsing.
func escapeGlyph(glyph string) string {
	switch glyph {
	case "<":
		return "&lt;"
	case ">":
		return "&gt;"
	case "&":
		return "&amp;"
	case `"`:
		return "&quot;"
	case " ":
		return "&nbsp;"
	}
	return glyph
}

const htmlShell = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>ASCII Art</title>
    <style>
        * {
            margin: 0;
            padding: 0;
            box-sizing: border-box;
        }
        body {
            background: #1a1a2e;
            display: flex;
            justify-content: center;
            align-items: center;
            min-height: 100vh;
            padding: 20px;
        }
        .ascii-container {
            background: #16213e;
            padding: 20px;
            border-radius: 10px;
            box-shadow: 0 10px 40px rgba(0, 0, 0, 0.5);
            overflow-x: auto;
        }
        .ascii-art {
            font-family: 'Courier New', 'Monaco', 'Menlo', monospace;
            font-size: %s;
            line-height: %s;
            letter-spacing: %s;
            white-space: pre;
        }
        .ascii-line {
            display: block;
        }
        .emoji {
            display: inline;
        }
    </style>
</head>
<body>
    <div class="ascii-container">
        <div class="ascii-art">
%s
        </div>
    </div>
</body>
</html>`
