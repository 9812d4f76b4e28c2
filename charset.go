package asciiart

import "strings"

// Charset is an ordered glyph table. Index 0 is the darkest glyph, the
// last index the lightest. A glyph is a single character or emoji.
type Charset []string

// Character sets ordered by density, dark to light.
var (
	// CharsetStandard is a balanced 10-level set.
	CharsetStandard = splitGlyphs("@%#*+=-:. ")

	// CharsetDetailed is a 70-level set for high precision output.
	CharsetDetailed = splitGlyphs("$@B%8&WM#*oahkbdpqwmZO0QLCJUYXzcvunxrjft/\\|()1{}[]?-_+~<>i!lI;:,\"^`'. ")

	// CharsetSimple is a basic 5-level set.
	CharsetSimple = splitGlyphs("@#*:. ")

	// CharsetBlocks uses Unicode block characters.
	CharsetBlocks = splitGlyphs("█▓▒░ ")

	// CharsetNumbers uses numeric characters only.
	CharsetNumbers = splitGlyphs("0123456789 ")

	// CharsetLetters uses letter characters only.
	CharsetLetters = splitGlyphs("MWNXK0Okxdolc:;,. ")
)

// Emoji sets for creative output, dark to light.
var (
	EmojiBrightness = Charset{"⬛", "🟫", "🟥", "🟧", "🟨", "🟩", "🟦", "🟪", "⬜"}
	EmojiGrayscale  = Charset{"⚫", "🔴", "🟤", "🟠", "🟡", "🟢", "🔵", "🟣", "⚪"}
	EmojiHearts     = Charset{"🖤", "❤️", "🧡", "💛", "💚", "💙", "💜", "🤍", "💗"}
	EmojiSquares    = Charset{"⬛", "🟫", "🟥", "🟧", "🟨", "🟩", "🟦", "🟪", "⬜"}
	EmojiNature     = Charset{"🌑", "🌲", "🌳", "🌴", "🌿", "🍀", "🌸", "🌼", "☀️"}
	EmojiSpace      = Charset{"⬛", "🌑", "🌙", "⭐", "✨", "💫", "🌟", "⚡", "☀️"}
	EmojiOcean      = Charset{"🌊", "🐳", "🐬", "🐠", "🐟", "🦈", "🐙", "🦑", "💎"}
	EmojiFood       = Charset{"🍫", "🍩", "🍪", "🧁", "🍰", "🍨", "🍦", "🎂", "🍬"}
	EmojiFaces      = Charset{"😈", "👿", "😠", "😐", "🙂", "😊", "😄", "😁", "🌟"}
	EmojiWeather    = Charset{"🌑", "☁️", "🌧️", "⛈️", "🌤️", "⛅", "🌥️", "☀️", "✨"}
	EmojiFire       = Charset{"⬛", "🟤", "🔴", "🟠", "🟡", "🔥", "💥", "⭐", "💫"}
	EmojiGeometric  = Charset{"◼️", "◾", "▪️", "◽", "◻️", "⬜", "🔲", "🔳", "💠"}
)

var charsetsByName = map[string]Charset{
	"standard": CharsetStandard,
	"detailed": CharsetDetailed,
	"simple":   CharsetSimple,
	"blocks":   CharsetBlocks,
	"numbers":  CharsetNumbers,
	"letters":  CharsetLetters,
}

var emojiSetsByName = map[string]Charset{
	"brightness": EmojiBrightness,
	"grayscale":  EmojiGrayscale,
	"hearts":     EmojiHearts,
	"squares":    EmojiSquares,
	"nature":     EmojiNature,
	"space":      EmojiSpace,
	"ocean":      EmojiOcean,
	"food":       EmojiFood,
	"faces":      EmojiFaces,
	"weather":    EmojiWeather,
	"fire":       EmojiFire,
	"geometric":  EmojiGeometric,
}

// CharsetByName resolves a character set by name, case-insensitively.
// Unknown names fall back to the detailed set.
func CharsetByName(name string) Charset {
	if cs, ok := charsetsByName[strings.ToLower(name)]; ok {
		return cs
	}
	return CharsetDetailed
}

// EmojiSetByName resolves an emoji set by name, case-insensitively.
// Unknown names fall back to the brightness set.
func EmojiSetByName(name string) Charset {
	if es, ok := emojiSetsByName[strings.ToLower(name)]; ok {
		return es
	}
	return EmojiBrightness
}

// CharsetNames lists the available character set names.
func CharsetNames() []string {
	return []string{"standard", "detailed", "simple", "blocks", "numbers", "letters"}
}

// EmojiSetNames lists the available emoji set names.
func EmojiSetNames() []string {
	return []string{
		"brightness", "grayscale", "hearts", "squares", "nature",
		"space", "ocean", "food", "faces", "weather", "fire", "geometric",
	}
}

func splitGlyphs(s string) Charset {
	glyphs := make(Charset, 0, len(s))
	for _, r := range s {
		glyphs = append(glyphs, string(r))
	}
	return glyphs
}
