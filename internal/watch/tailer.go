package watch

import (
	"context"
	"fmt"

	"github.com/nxadm/tail"
)

// LogEvent represents a single line read from a source.
type LogEvent struct {
	Line string
	Err  error
}

// TailFile streams lines from a saved logcat capture. With follow set the
// file is watched for appended lines until ctx ends; otherwise the channel
// closes at end of file.
func TailFile(ctx context.Context, path string, follow bool) (<-chan LogEvent, error) {
	cfg := tail.Config{Follow: follow, ReOpen: follow, Logger: tail.DiscardingLogger, MustExist: true}
	t, err := tail.TailFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("tail %s: %w", path, err)
	}

	out := make(chan LogEvent)
	go func() {
		defer close(out)
		defer t.Cleanup()
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case line, ok := <-t.Lines:
				if !ok {
					return
				}
				evt := LogEvent{Line: line.Text}
				if line.Err != nil {
					evt = LogEvent{Err: line.Err}
				}
				select {
				case out <- evt:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}
