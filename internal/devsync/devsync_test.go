package devsync

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"logcat/internal/adb"
	"logcat/internal/style"
)

type fakeDevice struct {
	sizes   map[string]int64
	pushed  []string
	failOn  string
	scanned bool
}

func (f *fakeDevice) RemoteSize(_ context.Context, remote string) (int64, error) {
	size, ok := f.sizes[remote]
	if !ok {
		return 0, adb.ErrNotExist
	}
	return size, nil
}

func (f *fakeDevice) Push(_ context.Context, local, remote string) error {
	if local == f.failOn {
		return errors.New("device offline")
	}
	f.pushed = append(f.pushed, remote)
	return nil
}

func (f *fakeDevice) ScanMedia(context.Context) error {
	f.scanned = true
	return nil
}

func writeFile(t *testing.T, path string, size int) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(path, bytes.Repeat([]byte("x"), size), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func TestEscapeRemote(t *testing.T) {
	if got := EscapeRemote("Music/AC:DC (live)/track #1.mp3"); got != "Music/AC_DC _live_/track _1.mp3" {
		t.Fatalf("EscapeRemote = %q", got)
	}
}

func TestSyncPushesOnlyChangedFiles(t *testing.T) {
	src := t.TempDir()
	writeFile(t, filepath.Join(src, "same.txt"), 2048)
	writeFile(t, filepath.Join(src, "changed.txt"), 10)
	writeFile(t, filepath.Join(src, "nested", "new file!.txt"), 5)

	dev := &fakeDevice{sizes: map[string]int64{
		"/sdcard/dst/same.txt":    2048,
		"/sdcard/dst/changed.txt": 9,
	}}
	var out bytes.Buffer
	sum, err := Syncer{Device: dev, Out: &out}.Sync(context.Background(), src, "/sdcard/dst")
	if err != nil {
		t.Fatalf("Sync: %v", err)
	}

	if sum.Checked != 3 || sum.Pushed != 2 || sum.Failed != 0 {
		t.Fatalf("summary = %+v", sum)
	}
	sort.Strings(dev.pushed)
	want := []string{"/sdcard/dst/changed.txt", "/sdcard/dst/nested/new file_.txt"}
	if strings.Join(dev.pushed, ",") != strings.Join(want, ",") {
		t.Fatalf("pushed = %q, want %q", dev.pushed, want)
	}
	if !dev.scanned {
		t.Fatalf("media scan not triggered")
	}

	report := out.String()
	if !strings.Contains(report, " "+style.Fg(style.Green).Start()+"       2kB"+style.Reset+" same.txt\n") {
		t.Errorf("missing unchanged line in %q", report)
	}
	if !strings.Contains(report, " "+style.Fg(style.Yellow).Start()+"       0kB"+style.Reset+" changed.txt\n") {
		t.Errorf("missing pushed line in %q", report)
	}
	if !strings.HasSuffix(report, "sync done, kicking off media scanner\n") {
		t.Errorf("missing trailer in %q", report)
	}
}

func TestSyncCountsFailures(t *testing.T) {
	src := t.TempDir()
	bad := filepath.Join(src, "bad.bin")
	writeFile(t, bad, 1)
	writeFile(t, filepath.Join(src, "good.bin"), 1)

	dev := &fakeDevice{sizes: map[string]int64{}, failOn: bad}
	sum, err := Syncer{Device: dev, Out: &bytes.Buffer{}}.Sync(context.Background(), src, "/sdcard")
	if err != nil {
		t.Fatalf("Sync: %v", err)
	}
	if sum.Pushed != 1 || sum.Failed != 1 {
		t.Fatalf("summary = %+v", sum)
	}
}

func TestSyncMissingSource(t *testing.T) {
	dev := &fakeDevice{}
	_, err := Syncer{Device: dev, Out: &bytes.Buffer{}}.Sync(context.Background(), filepath.Join(t.TempDir(), "nope"), "/sdcard")
	if err == nil {
		t.Fatalf("expected error for missing source")
	}
	if dev.scanned {
		t.Fatalf("media scan should not run after a failed walk")
	}
}

func TestSyncHonorsCancel(t *testing.T) {
	src := t.TempDir()
	writeFile(t, filepath.Join(src, "a"), 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Syncer{Device: &fakeDevice{}, Out: &bytes.Buffer{}}.Sync(ctx, src, "/sdcard")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}
