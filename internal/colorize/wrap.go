package colorize

import "strings"

// Wrap slices message into chunks of width-indent runes and joins them with
// a newline plus indent spaces. Escape sequences count toward the chunk
// length, so colored text wraps earlier than its visible width suggests.
func Wrap(message string, indent, width int) string {
	area := width - indent
	if area <= 0 {
		return message
	}
	runes := []rune(message)
	if len(runes) <= area {
		return message
	}
	sep := "\n" + strings.Repeat(" ", indent)
	var b strings.Builder
	b.Grow(len(message) + (len(runes)/area)*len(sep))
	for current := 0; current < len(runes); current += area {
		next := min(current+area, len(runes))
		b.WriteString(string(runes[current:next]))
		if next < len(runes) {
			b.WriteString(sep)
		}
	}
	return b.String()
}
