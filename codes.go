package sgr

import (
	"errors"
	"strings"
)

var (
	ErrStyleName = errors.New("unrecognised style name")
	ErrColorName = errors.New("unrecognised color name")
)

// SGR parameter codes that are not tied to a single style or color.
const (
	ResetAll  = 0  // ResetAll reverts every attribute to the terminal default
	DefaultFG = 39 // DefaultFG restores the default foreground color
	DefaultBG = 49 // DefaultBG restores the default background color
)

// Style is one of the eight emphasis attributes of the SGR code table.
// The declaration order below is the order styles appear in a reduced
// code sequence, see [Text.Reduce].
type Style uint8

const (
	Bold      Style = iota // bold or increased intensity
	Faint                  // faint, also known as dim or decreased intensity
	Italic                 // italic
	Underline              // underline
	Blink                  // slow blink
	Invert                 // swap the foreground and background colors
	Conceal                // hide the text, rarely supported
	Strike                 // strikethrough

	styleCount
)

// Bold and Faint share the clear code 22, the ANSI standard defines
// no way to drop one without the other.
var (
	styleOn  = [styleCount]uint8{1, 2, 3, 4, 5, 7, 8, 9}
	styleOff = [styleCount]uint8{22, 22, 23, 24, 25, 27, 28, 29}
)

// On returns the code that applies the style.
func (s Style) On() uint8 {
	return styleOn[s]
}

// Off returns the code that clears the style.
func (s Style) Off() uint8 {
	return styleOff[s]
}

var styleNames = [styleCount]string{
	"bold", "faint", "italic", "underline", "blink", "invert", "conceal", "strike",
}

func (s Style) String() string {
	return styleNames[s]
}

// ParseStyle matches a case-insensitive style name such as "bold" or
// "Underline" to its [Style]. The name "dim" is accepted as an alias
// for faint.
func ParseStyle(name string) (Style, error) {
	name = strings.ToLower(name)
	if name == "dim" {
		return Faint, nil
	}
	for s, n := range styleNames {
		if n == name {
			return Style(s), nil
		}
	}
	return 0, ErrStyleName
}

// Color is one of the 16 standard terminal colors, the 8 base colors
// and their bright variants. A Color names a color only; whether it
// lands on the foreground or the background is decided by the [Text]
// method that takes it.
type Color uint8

const (
	Black Color = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	BrightBlack
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	BrightWhite

	colorCount
)

const brightStart = BrightBlack

// FG returns the code that sets the foreground to c,
// 30-37 for the base colors and 90-97 for the bright variants.
func (c Color) FG() uint8 {
	if c < brightStart {
		return 30 + uint8(c)
	}
	return 90 + uint8(c-brightStart)
}

// BG returns the code that sets the background to c,
// 40-47 for the base colors and 100-107 for the bright variants.
func (c Color) BG() uint8 {
	if c < brightStart {
		return 40 + uint8(c)
	}
	return 100 + uint8(c-brightStart)
}

var colorNames = [colorCount]string{
	"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white",
	"bright-black", "bright-red", "bright-green", "bright-yellow",
	"bright-blue", "bright-magenta", "bright-cyan", "bright-white",
}

func (c Color) String() string {
	return colorNames[c]
}

// ParseColor matches a case-insensitive color name such as "red" or
// "Bright-Cyan" to its [Color]. A "bright " prefix with a space is
// accepted in place of the hyphenated form.
func ParseColor(name string) (Color, error) {
	name = strings.ToLower(name)
	if after, found := strings.CutPrefix(name, "bright "); found {
		name = "bright-" + after
	}
	for c, n := range colorNames {
		if n == name {
			return Color(c), nil
		}
	}
	return 0, ErrColorName
}
