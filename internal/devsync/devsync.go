package devsync

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strconv"

	"logcat/internal/adb"
	"logcat/internal/style"
)

// Device is the subset of adb the sync loop needs.
type Device interface {
	RemoteSize(ctx context.Context, remote string) (int64, error)
	Push(ctx context.Context, local, remote string) error
	ScanMedia(ctx context.Context) error
}

// Summary counts what a sync did.
type Summary struct {
	Checked int
	Pushed  int
	Failed  int
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9/\-_. ]`)

// EscapeRemote replaces characters the device shell cannot take unquoted.
func EscapeRemote(rel string) string {
	return unsafeChars.ReplaceAllString(rel, "_")
}

var (
	pushStyle = style.Fg(style.Yellow)
	skipStyle = style.Fg(style.Green)
)

// Syncer copies a local tree to a device directory.
type Syncer struct {
	Device Device
	Out    io.Writer
	Logger *slog.Logger
}

// Sync walks source and pushes every regular file whose size differs from
// the copy under dest. Symlinked files are followed; symlinked directories
// are skipped. A failed push is logged and counted but does not stop the
// walk. The media scanner runs once the walk completes.
func (s Syncer) Sync(ctx context.Context, source, dest string) (Summary, error) {
	logger := s.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	var sum Summary

	err := filepath.WalkDir(source, func(local string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		info, err := os.Stat(local)
		if err != nil {
			return fmt.Errorf("stat %s: %w", local, err)
		}
		if !info.Mode().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(source, local)
		if err != nil {
			return err
		}
		rel = EscapeRemote(filepath.ToSlash(rel))
		remote := path.Join(dest, rel)

		sum.Checked++
		localSize := info.Size()
		remoteSize, err := s.Device.RemoteSize(ctx, remote)
		needPush := err != nil || remoteSize != localSize
		if err != nil && !errors.Is(err, adb.ErrNotExist) {
			logger.Warn("remote size unavailable", "path", remote, "err", err)
		}

		st := skipStyle
		if needPush {
			st = pushStyle
		}
		kb := style.RightJustify(strconv.FormatInt(localSize/1024, 10), 8)
		fmt.Fprintf(s.Out, " %s%skB%s %s\n", st.Start(), kb, style.Reset, rel)

		if !needPush {
			return nil
		}
		if err := s.Device.Push(ctx, local, remote); err != nil {
			sum.Failed++
			logger.Error("push failed", "path", local, "err", err)
			return nil
		}
		sum.Pushed++
		return nil
	})
	if err != nil {
		return sum, fmt.Errorf("walk %s: %w", source, err)
	}

	fmt.Fprintln(s.Out, "sync done, kicking off media scanner")
	if err := s.Device.ScanMedia(ctx); err != nil {
		return sum, err
	}
	return sum, nil
}
