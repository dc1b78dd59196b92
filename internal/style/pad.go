package style

import (
	"strings"
	"unicode/utf8"
)

// Center pads s with spaces to width. When the padding is odd the extra space
// goes left only if width is odd as well, which keeps columns stable against
// the layout produced by the stock logcat colorizers.
func Center(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	margin := width - n
	left := margin/2 + (margin & width & 1)
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", margin-left)
}

// RightJustify left-pads s with spaces to width.
func RightJustify(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return strings.Repeat(" ", width-n) + s
}

// Suffix keeps the trailing width runes of s.
func Suffix(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[len(runes)-width:])
}
