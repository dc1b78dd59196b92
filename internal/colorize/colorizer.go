package colorize

import (
	"strconv"
	"strings"

	"logcat/internal/highlight"
	"logcat/internal/logline"
	"logcat/internal/rules"
	"logcat/internal/style"
)

// TabSize is the tab stop used before parsing.
const TabSize = 4

// DefaultWidth is used when the terminal width is unknown.
const DefaultWidth = 80

// UserColors are the backgrounds of the user column, indexed by user id.
var UserColors = []style.Color{style.Blue, style.Yellow, style.Red, style.Green, style.Magenta, style.Cyan}

// PriorityStyles maps each logcat priority letter to its column style.
var PriorityStyles = map[byte]style.Style{
	'V': style.FgBg(style.Black, style.White),
	'D': style.FgBg(style.Black, style.Blue),
	'I': style.FgBg(style.Black, style.Green),
	'W': style.FgBg(style.Black, style.Yellow),
	'E': style.FgBg(style.Black, style.Red),
	'F': style.FgBg(style.Black, style.Red),
}

var (
	timeStyle    = style.FgBg(style.Green, style.Black)
	processStyle = style.FgBg(style.Black, style.Black).WithBright()
)

// Colorizer turns raw logcat lines into aligned, colored output. It keeps
// the tag colors and pid tracking for one session and is not safe for
// concurrent use.
type Colorizer struct {
	cfg     rules.Config
	colors  *Allocator
	tracker *Tracker
	width   int
}

// New creates a colorizer for a terminal width columns wide.
func New(cfg rules.Config, width int) *Colorizer {
	if width <= 0 {
		width = DefaultWidth
	}
	return &Colorizer{
		cfg:     cfg,
		colors:  NewAllocator(cfg.Pinned),
		tracker: NewTracker(),
		width:   width,
	}
}

// SetWidth changes the wrap width for subsequent lines.
func (c *Colorizer) SetWidth(width int) {
	if width > 0 {
		c.width = width
	}
}

// Width returns the current wrap width.
func (c *Colorizer) Width() int { return c.width }

// Allocator exposes the tag color allocator.
func (c *Colorizer) Allocator() *Allocator { return c.colors }

// Tracker exposes the pid to uid tracker.
func (c *Colorizer) Tracker() *Tracker { return c.tracker }

// Format renders one line. The second result is false when the line is
// dropped by the ignore list. Lines that do not parse, or carry an unknown
// priority, come back unchanged.
func (c *Colorizer) Format(raw string) (string, bool) {
	line := logline.ExpandTabs(raw, TabSize)

	if ann, ok := logline.ParseAnnouncement(line); ok {
		c.tracker.Record(ann.PID, ann.UID)
	}

	entry := logline.Parse(line)
	if !entry.Parsed {
		return raw, true
	}

	decision := c.cfg.Classify(entry.Tag, entry.Message)
	if decision == rules.Ignore {
		return "", false
	}

	priority, ok := PriorityStyles[entry.Priority]
	if !ok {
		return raw, true
	}

	var b strings.Builder
	cols := c.cfg.Columns
	column := func(s style.Style, text string) {
		b.WriteString(s.Render(text))
		b.WriteByte(' ')
	}

	if cols.Time > 0 && entry.Time != "" {
		column(timeStyle, entry.Time)
	}
	if cols.User > 0 {
		if s, text, ok := c.userColumn(entry.Process, cols.User); ok {
			column(s, text)
		} else {
			b.WriteString(strings.Repeat(" ", cols.User+1))
		}
	}
	if cols.ParentPID > 0 && entry.ParentPID != "" {
		column(processStyle, style.Center(entry.ParentPID, cols.ParentPID))
	}
	if cols.Process > 0 {
		column(processStyle, style.Center(entry.Process, cols.Process))
	}

	tagStyle := c.tagStyle(entry.Tag, decision)
	if cols.Tag > 0 {
		tag := style.RightJustify(style.Suffix(entry.Tag, cols.Tag), cols.Tag)
		column(tagStyle, tag)
	}
	if cols.Priority > 0 {
		column(priority, style.Center(string(entry.Priority), cols.Priority))
	}

	message := highlight.Latency(entry.Message)
	b.WriteString(Wrap(message, c.HeaderWidth(entry), c.width))
	return b.String(), true
}

// HeaderWidth is the message indent for a line carrying the given columns.
func (c *Colorizer) HeaderWidth(entry logline.Entry) int {
	cols := c.cfg.Columns
	width := 0
	add := func(w int, present bool) {
		if w > 0 && present {
			width += w + 1
		}
	}
	add(cols.Time, entry.Time != "")
	add(cols.User, true)
	add(cols.ParentPID, entry.ParentPID != "")
	add(cols.Process, true)
	add(cols.Tag, true)
	add(cols.Priority, true)
	return width
}

func (c *Colorizer) tagStyle(tag string, decision rules.Decision) style.Style {
	switch decision {
	case rules.Denied:
		return rules.DeniedStyle
	case rules.Highlight:
		return rules.HighlightStyle
	default:
		return style.Fg(c.colors.Allocate(tag))
	}
}

func (c *Colorizer) userColumn(process string, width int) (style.Style, string, bool) {
	pid, err := strconv.Atoi(process)
	if err != nil {
		return style.Style{}, "", false
	}
	uid, ok := c.tracker.Lookup(pid)
	if !ok || uid < firstAppUID {
		return style.Style{}, "", false
	}
	user := UserID(uid)
	bg := UserColors[user%len(UserColors)]
	return style.FgBg(style.Black, bg), style.Center(strconv.Itoa(user), width), true
}
