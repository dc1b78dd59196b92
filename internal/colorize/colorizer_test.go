package colorize

import (
	"strings"
	"testing"

	"logcat/internal/logline"
	"logcat/internal/rules"
	"logcat/internal/style"
)

func TestFormatPassthrough(t *testing.T) {
	c := New(rules.DefaultConfig(), 80)
	lines := []string{
		"--------- beginning of main",
		"\tindented\tgarbage",
		"",
		"X/Unknown( 12): priority letter is not a logcat level",
	}
	for _, line := range lines {
		got, ok := c.Format(line)
		if !ok {
			t.Errorf("Format(%q) dropped the line", line)
		}
		if got != line {
			t.Errorf("Format(%q) = %q, want unchanged", line, got)
		}
	}
}

func TestFormatIgnore(t *testing.T) {
	cfg := rules.DefaultConfig()
	cfg.Highlight["SpammyApp"] = struct{}{}
	c := New(cfg, 80)

	for _, line := range []string{
		"D/SpammyApp( 1): chatter",
		"E/SpammyApp( 1): avc: denied { read }",
	} {
		if got, ok := c.Format(line); ok || got != "" {
			t.Errorf("Format(%q) = %q, %v; want dropped", line, got, ok)
		}
	}
	if len(c.Allocator().Queue()) != len(Palette) {
		t.Errorf("queue changed size")
	}
	if _, ok := c.Allocator().Lookup("SpammyApp"); ok {
		t.Errorf("ignored tag was allocated a color")
	}
}

func TestFormatEndToEnd(t *testing.T) {
	c := New(rules.DefaultConfig(), 200)

	if _, ok := c.Format("I/ActivityManager(  123): Start proc com.example: pid=456 uid=10002"); !ok {
		t.Fatalf("announcement line dropped")
	}
	if uid, ok := c.Tracker().Lookup(456); !ok || uid != 10002 {
		t.Fatalf("tracker Lookup(456) = %d, %v", uid, ok)
	}

	got, ok := c.Format("D/MyTag ( 456): hello")
	if !ok {
		t.Fatalf("line dropped")
	}
	want := style.FgBg(style.Black, style.Blue).Render(" 0 ") + " " +
		processStyle.Render("  456  ") + " " +
		style.Fg(style.Red).Render(strings.Repeat(" ", 15)+"MyTag") + " " +
		style.FgBg(style.Black, style.Blue).Render(" D ") + " " +
		"hello"
	if got != want {
		t.Fatalf("Format() =\n%q\nwant\n%q", got, want)
	}

	q := c.Allocator().Queue()
	if q[len(q)-1] != style.Red {
		t.Fatalf("MyTag's color not moved to the back: %v", q)
	}
}

func TestFormatUserColumnBlankForSystemUIDs(t *testing.T) {
	c := New(rules.DefaultConfig(), 200)
	c.Format("I/ActivityManager(  1): Start proc system: pid=77 uid=1000")

	got, _ := c.Format("I/Sys( 77): x")
	if !strings.HasPrefix(got, "    "+processStyle.Start()) {
		t.Fatalf("expected blank user column, got %q", got)
	}
	got, _ = c.Format("I/Other( 78): x")
	if !strings.HasPrefix(got, "    "+processStyle.Start()) {
		t.Fatalf("expected blank user column for unknown pid, got %q", got)
	}
}

func TestFormatTagOverrides(t *testing.T) {
	c := New(rules.DefaultConfig(), 200)

	got, _ := c.Format("E/ActivityManager( 1): avc: denied { read } for pid=1")
	if !strings.Contains(got, rules.DeniedStyle.Start()+strings.Repeat(" ", 5)+"ActivityManager"+style.Reset) {
		t.Errorf("denial style missing: %q", got)
	}

	got, _ = c.Format("I/MyApp( 1): started")
	if !strings.Contains(got, rules.HighlightStyle.Start()+strings.Repeat(" ", 15)+"MyApp"+style.Reset) {
		t.Errorf("highlight style missing: %q", got)
	}
	if _, ok := c.Allocator().Lookup("MyApp"); ok {
		t.Errorf("highlighted tag should not draw from the allocator")
	}
}

func TestFormatTruncatesTagKeepingSuffix(t *testing.T) {
	c := New(rules.DefaultConfig(), 200)
	got, _ := c.Format("I/com.example.feature.SyncAdapterTag( 1): x")
	want := "example.feature.SyncAdapterTag"[10:]
	if len(want) != 20 {
		t.Fatalf("bad fixture")
	}
	if !strings.Contains(got, style.Fg(style.Red).Render(want)) {
		t.Fatalf("expected suffix %q in %q", want, got)
	}
}

func TestFormatWrapsMessageUnderHeader(t *testing.T) {
	cfg := rules.DefaultConfig()
	cfg.Columns = rules.Columns{Tag: 5, Priority: 1}
	c := New(cfg, 20)

	got, _ := c.Format("W/Tag( 1): abcdefghijklmnop")
	header := style.Fg(style.Red).Render("  Tag") + " " + PriorityStyles['W'].Render("W") + " "
	want := header + "abcdefghijkl\n" + strings.Repeat(" ", 8) + "mnop"
	if got != want {
		t.Fatalf("Format() =\n%q\nwant\n%q", got, want)
	}
}

func TestFormatLatencyInMessage(t *testing.T) {
	cfg := rules.DefaultConfig()
	cfg.Columns = rules.Columns{}
	c := New(cfg, 200)

	got, _ := c.Format("I/ActivityManager( 1): Displayed com.example/.Main: +640.1ms")
	want := "Displayed com.example/.Main: +" + style.Fg(style.Red).WithBold().Render("640.1ms")
	if got != want {
		t.Fatalf("Format() = %q, want %q", got, want)
	}
}

func TestFormatThreadtime(t *testing.T) {
	c := New(rules.DefaultConfig(), 200)
	line := "10-15 11:41:02.123  1234  5678 W Choreographer: Skipped 31 frames!"
	got, ok := c.Format(line)
	if !ok {
		t.Fatalf("line dropped")
	}
	if !strings.HasPrefix(got, timeStyle.Render("10-15 11:41:02.123")+" ") {
		t.Errorf("missing time column: %q", got)
	}
	if !strings.Contains(got, processStyle.Render("  1234 ")) {
		t.Errorf("missing ppid column: %q", got)
	}
	entry := logline.Parse(line)
	if w := c.HeaderWidth(entry); w != 19+4+8+8+21+4 {
		t.Errorf("HeaderWidth = %d", w)
	}
}

func TestFormatExpandsTabsInMessage(t *testing.T) {
	cfg := rules.DefaultConfig()
	cfg.Columns = rules.Columns{}
	c := New(cfg, 200)
	got, _ := c.Format("I/Tag( 1): a\tb")
	// The tab sits at column 12 of the raw line, so it expands to four spaces.
	if got != "a    b" {
		t.Fatalf("Format() = %q, want %q", got, "a    b")
	}
}

func TestSetWidth(t *testing.T) {
	c := New(rules.DefaultConfig(), 0)
	if c.Width() != DefaultWidth {
		t.Fatalf("Width() = %d, want %d", c.Width(), DefaultWidth)
	}
	c.SetWidth(-5)
	if c.Width() != DefaultWidth {
		t.Fatalf("negative width accepted")
	}
	c.SetWidth(132)
	if c.Width() != 132 {
		t.Fatalf("Width() = %d, want 132", c.Width())
	}
}
