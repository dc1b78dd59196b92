package logline

import (
	"regexp"
	"strconv"
	"strings"
)

// Entry is one logcat record. Parsed is false for lines that matched
// neither supported format; only Raw is meaningful then.
type Entry struct {
	Raw      string
	Parsed   bool
	Priority byte
	Tag      string
	Process  string
	Message  string

	// Threadtime only.
	Time      string
	ParentPID string
}

// Announcement is the pid/uid pair from an ActivityManager "Start proc" line.
type Announcement struct {
	PID int
	UID int
}

var (
	briefPattern      = regexp.MustCompile(`^([A-Z])/([^(]+)\(([^)]+)\): (.*)$`)
	threadtimePattern = regexp.MustCompile(`^([0-9]+-[0-9]+ [0-9:.]+)\s+([0-9]+)\s+([0-9]+) ([VDIWEF]) (\S*)\s*: (.*)$`)
	startProcPattern  = regexp.MustCompile(`^I/ActivityManager.*?: Start proc .*?: pid=(\d+) uid=(\d+)`)
)

// Parse decomposes a tab-expanded line. The brief format is tried first and
// the threadtime format second.
func Parse(line string) Entry {
	if m := briefPattern.FindStringSubmatch(line); m != nil {
		return Entry{
			Raw:      line,
			Parsed:   true,
			Priority: m[1][0],
			Tag:      strings.TrimSpace(m[2]),
			Process:  strings.TrimSpace(m[3]),
			Message:  strings.TrimSpace(m[4]),
		}
	}
	if m := threadtimePattern.FindStringSubmatch(line); m != nil {
		return Entry{
			Raw:       line,
			Parsed:    true,
			Time:      m[1],
			ParentPID: m[2],
			Process:   m[3],
			Priority:  m[4][0],
			Tag:       strings.TrimSpace(m[5]),
			Message:   strings.TrimSpace(m[6]),
		}
	}
	return Entry{Raw: line}
}

// ParseAnnouncement reports the pid and uid of a process start line.
func ParseAnnouncement(line string) (Announcement, bool) {
	m := startProcPattern.FindStringSubmatch(line)
	if m == nil {
		return Announcement{}, false
	}
	pid, err := strconv.Atoi(m[1])
	if err != nil {
		return Announcement{}, false
	}
	uid, err := strconv.Atoi(m[2])
	if err != nil {
		return Announcement{}, false
	}
	return Announcement{PID: pid, UID: uid}, true
}

// ExpandTabs replaces each tab with spaces up to the next multiple of size,
// restarting the column count after every newline.
func ExpandTabs(line string, size int) string {
	if size <= 0 || !strings.Contains(line, "\t") {
		return line
	}
	var b strings.Builder
	b.Grow(len(line) + 8)
	col := 0
	for _, r := range line {
		switch r {
		case '\t':
			pad := size - col%size
			b.WriteString(strings.Repeat(" ", pad))
			col += pad
		case '\n', '\r':
			b.WriteRune(r)
			col = 0
		default:
			b.WriteRune(r)
			col++
		}
	}
	return b.String()
}
