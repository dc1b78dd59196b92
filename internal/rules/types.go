package rules

import (
	"strings"

	"logcat/internal/style"
)

// Decision is the outcome of classifying a tag before any color is allocated.
type Decision int

const (
	// Allocate means no override applies and the tag gets a palette color.
	Allocate Decision = iota
	// Ignore drops the line.
	Ignore
	// Denied marks an SELinux denial.
	Denied
	// Highlight marks a tag from the highlight set.
	Highlight
)

func (d Decision) String() string {
	switch d {
	case Ignore:
		return "ignore"
	case Denied:
		return "denied"
	case Highlight:
		return "highlight"
	default:
		return "allocate"
	}
}

const denialMarker = "avc: denied"

var (
	// DeniedStyle is forced on the tag of any line reporting a denial.
	DeniedStyle = style.FgBg(style.White, style.Red)
	// HighlightStyle is forced on highlighted tags.
	HighlightStyle = style.FgBg(style.Black, style.White)
)

// Columns holds the width of every header column. Zero hides a column.
type Columns struct {
	Time      int
	User      int
	ParentPID int
	Process   int
	Tag       int
	Priority  int
}

// Config is the per-run configuration of the colorizer.
type Config struct {
	Highlight map[string]struct{}
	Ignored   map[string]struct{}
	// Pinned tags start with a fixed color instead of drawing from the queue.
	Pinned  map[string]style.Color
	Columns Columns
}

// DefaultConfig returns the compiled-in configuration.
func DefaultConfig() Config {
	return Config{
		Highlight: toSet([]string{"ActivityManager", "MyApp"}),
		Ignored:   toSet([]string{"SpammyApp"}),
		Pinned: map[string]style.Color{
			"dalvikvm":        style.Blue,
			"art":             style.Blue,
			"Process":         style.Blue,
			"ActivityManager": style.Cyan,
			"ActivityThread":  style.Cyan,
		},
		Columns: Columns{
			Time:      18,
			User:      3,
			ParentPID: 7,
			Process:   7,
			Tag:       20,
			Priority:  3,
		},
	}
}

// Classify applies ignore, denial and highlight overrides in that order.
func (c Config) Classify(tag, message string) Decision {
	if _, ok := c.Ignored[tag]; ok {
		return Ignore
	}
	if strings.Contains(message, denialMarker) {
		return Denied
	}
	if _, ok := c.Highlight[tag]; ok {
		return Highlight
	}
	return Allocate
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		set[v] = struct{}{}
	}
	return set
}
