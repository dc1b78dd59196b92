package highlight

import (
	"regexp"
	"strconv"

	"logcat/internal/style"
)

// durationPattern matches tokens such as "12.5ms" or "1s204ms".
var durationPattern = regexp.MustCompile(`(?:(\d+)s)?([\d.]*\d)ms`)

// Threshold pairs a lower bound (exclusive, in milliseconds) with a style.
type Threshold struct {
	AboveMs float64
	Style   style.Style
}

// LatencyThresholds are ordered from most to least severe.
var LatencyThresholds = []Threshold{
	{AboveMs: 640, Style: style.Fg(style.Red).WithBold()},
	{AboveMs: 320, Style: style.Fg(style.Red)},
	{AboveMs: 160, Style: style.Fg(style.Yellow).WithBold()},
	{AboveMs: 32, Style: style.Fg(style.Yellow)},
	{AboveMs: 16, Style: style.Fg(style.Cyan)},
}

// LatencyStyle classifies a duration in milliseconds.
func LatencyStyle(ms float64) style.Style {
	for _, th := range LatencyThresholds {
		if ms > th.AboveMs {
			return th.Style
		}
	}
	return style.Plain
}

// LatencySpans locates every duration token in message and styles it by
// severity. Tokens whose number does not parse are skipped.
func LatencySpans(message string) []Span {
	locs := durationPattern.FindAllStringSubmatchIndex(message, -1)
	if len(locs) == 0 {
		return nil
	}
	spans := make([]Span, 0, len(locs))
	for _, loc := range locs {
		ms, err := strconv.ParseFloat(message[loc[4]:loc[5]], 64)
		if err != nil {
			continue
		}
		if loc[2] >= 0 {
			sec, err := strconv.ParseFloat(message[loc[2]:loc[3]], 64)
			if err != nil {
				continue
			}
			ms += sec * 1000
		}
		spans = append(spans, Span{Start: loc[0], End: loc[1], Style: LatencyStyle(ms)})
	}
	return spans
}

// Latency recolors every duration token in message, leaving the rest intact.
func Latency(message string) string {
	spans := LatencySpans(message)
	if len(spans) == 0 {
		return message
	}
	return Render(BuildFragments(message, spans))
}
