package highlight

import (
	"sort"
	"strings"

	"logcat/internal/style"
)

// Span marks a byte range of a line and the style it should be drawn in.
type Span struct {
	Start int
	End   int
	Style style.Style
}

// Fragment stores a segment of text with an optional style. Plain
// fragments are emitted untouched.
type Fragment struct {
	Text   string
	Styled bool
	Style  style.Style
}

// BuildFragments splits the provided line by styled spans. Spans are clamped
// to the line and overlapping tails are dropped.
func BuildFragments(line string, spans []Span) []Fragment {
	if len(spans) == 0 {
		return []Fragment{{Text: line}}
	}

	sorted := make([]Span, len(spans))
	copy(sorted, spans)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})

	fragments := make([]Fragment, 0, len(sorted)*2+1)
	cursor := 0
	for _, span := range sorted {
		start := clamp(span.Start, cursor, len(line))
		end := clamp(span.End, start, len(line))
		if start > cursor {
			fragments = appendPlain(fragments, line[cursor:start])
		}
		if end > start {
			fragments = append(fragments, Fragment{Text: line[start:end], Styled: true, Style: span.Style})
		}
		cursor = end
	}
	if cursor < len(line) {
		fragments = appendPlain(fragments, line[cursor:])
	}
	return fragments
}

func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

func appendPlain(list []Fragment, text string) []Fragment {
	if text == "" {
		return list
	}
	// Merge adjacent plain text.
	if len(list) > 0 {
		last := &list[len(list)-1]
		if !last.Styled {
			last.Text += text
			return list
		}
	}
	return append(list, Fragment{Text: text})
}

// Render emits styled fragments as start + text + reset and plain ones as is.
func Render(frags []Fragment) string {
	var b strings.Builder
	for _, f := range frags {
		if f.Styled {
			b.WriteString(f.Style.Render(f.Text))
			continue
		}
		b.WriteString(f.Text)
	}
	return b.String()
}
