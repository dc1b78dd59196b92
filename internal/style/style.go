package style

import (
	"strconv"
	"strings"
)

// Color is one of the eight base ANSI colors.
type Color int

const (
	Black Color = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

var colorNames = []string{"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white"}

func (c Color) String() string {
	if c < Black || c > White {
		return "color(" + strconv.Itoa(int(c)) + ")"
	}
	return colorNames[c]
}

// ParseColor maps a lowercase color name to its Color.
func ParseColor(name string) (Color, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for idx, n := range colorNames {
		if n == name {
			return Color(idx), true
		}
	}
	return 0, false
}

// Style describes one SGR escape. A nil Fg or Bg leaves that channel alone.
type Style struct {
	Fg     *Color
	Bg     *Color
	Bright bool // bright background (10x codes)
	Bold   bool
	Dim    bool
	Reset  bool // overrides everything else
}

// Reset is the SGR sequence that clears all attributes.
const Reset = "\033[0m"

// Plain is the style whose start sequence is itself a reset.
var Plain = Style{Reset: true}

// Fg returns a style with only a foreground color.
func Fg(c Color) Style {
	return Style{Fg: &c}
}

// FgBg returns a style with both channels set.
func FgBg(fg, bg Color) Style {
	return Style{Fg: &fg, Bg: &bg}
}

// WithBold returns a copy of s rendered bold.
func (s Style) WithBold() Style {
	s.Bold = true
	return s
}

// WithBright returns a copy of s using the bright background range.
func (s Style) WithBright() Style {
	s.Bright = true
	return s
}

// Start renders the escape sequence that switches the terminal into s.
// Intensity is always stated explicitly: 1 for bold, 2 for dim, 22 otherwise.
func (s Style) Start() string {
	if s.Reset {
		return Reset
	}
	codes := make([]string, 0, 3)
	if s.Fg != nil {
		codes = append(codes, "3"+strconv.Itoa(int(*s.Fg)))
	}
	if s.Bg != nil {
		if s.Bright {
			codes = append(codes, "10"+strconv.Itoa(int(*s.Bg)))
		} else {
			codes = append(codes, "4"+strconv.Itoa(int(*s.Bg)))
		}
	}
	switch {
	case s.Bold:
		codes = append(codes, "1")
	case s.Dim:
		codes = append(codes, "2")
	default:
		codes = append(codes, "22")
	}
	return "\033[" + strings.Join(codes, ";") + "m"
}

// Render wraps text in the style's start sequence and a reset.
func (s Style) Render(text string) string {
	return s.Start() + text + Reset
}
