package adb

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// ErrNotExist is returned by RemoteSize when the device has no such file.
var ErrNotExist = errors.New("remote file does not exist")

// Runner executes a command and returns its combined output.
type Runner func(ctx context.Context, name string, args ...string) ([]byte, error)

// Client wraps the adb binary.
type Client struct {
	path string
	args []string
	run  Runner
}

// New returns a client for the adb binary at path. Extra global arguments
// (for example "-s SERIAL" or "-d") are passed before every subcommand.
func New(path string, args ...string) *Client {
	return NewWithRunner(path, execRunner, args...)
}

// NewWithRunner is New with a custom command runner.
func NewWithRunner(path string, run Runner, args ...string) *Client {
	if strings.TrimSpace(path) == "" {
		path = "adb"
	}
	return &Client{path: path, args: append([]string{}, args...), run: run}
}

func execRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}

func (c *Client) argv(sub ...string) []string {
	out := make([]string, 0, len(c.args)+len(sub))
	out = append(out, c.args...)
	return append(out, sub...)
}

// LogcatArgs is the argument list of the logcat invocation.
func (c *Client) LogcatArgs() []string {
	return c.argv("logcat")
}

// Logcat builds the long-running logcat command bound to ctx.
func (c *Client) Logcat(ctx context.Context) *exec.Cmd {
	return exec.CommandContext(ctx, c.path, c.LogcatArgs()...)
}

// RemoteSize returns the size in bytes of a file on the device.
func (c *Client) RemoteSize(ctx context.Context, remote string) (int64, error) {
	out, err := c.run(ctx, c.path, c.argv("shell", "ls", "-l", remote)...)
	if err != nil && len(out) == 0 {
		return 0, fmt.Errorf("stat %s: %w", remote, err)
	}
	return parseListingSize(string(out))
}

// parseListingSize reads the size field from one line of `ls -l`. Older
// toolbox builds omit the link count column that toybox prints.
func parseListingSize(listing string) (int64, error) {
	if strings.Contains(listing, "No such file") {
		return 0, ErrNotExist
	}
	fields := strings.Fields(listing)
	idx := 3
	if len(fields) >= 8 {
		if _, err := strconv.Atoi(fields[1]); err == nil {
			idx = 4
		}
	}
	if len(fields) <= idx {
		return 0, fmt.Errorf("unexpected listing %q", strings.TrimSpace(listing))
	}
	size, err := strconv.ParseInt(fields[idx], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse size from %q: %w", strings.TrimSpace(listing), err)
	}
	return size, nil
}

// Push copies a local file to the device.
func (c *Client) Push(ctx context.Context, local, remote string) error {
	if _, err := c.run(ctx, c.path, c.argv("push", local, remote)...); err != nil {
		return fmt.Errorf("push %s: %w", local, err)
	}
	return nil
}

// mediaRoots are broadcast to the media scanner after a sync.
var mediaRoots = []string{"file:///data/media", "file:///mnt/sdcard"}

// ScanMedia asks the device to rescan its shared storage.
func (c *Client) ScanMedia(ctx context.Context) error {
	for _, root := range mediaRoots {
		args := c.argv("shell", "am", "broadcast", "-a", "android.intent.action.MEDIA_MOUNTED", "-d", root)
		if _, err := c.run(ctx, c.path, args...); err != nil {
			return fmt.Errorf("media scan %s: %w", root, err)
		}
	}
	return nil
}
