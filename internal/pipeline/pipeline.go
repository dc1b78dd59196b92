package pipeline

import (
	"context"
	"io"

	"logcat/internal/colorize"
	"logcat/internal/watch"
)

// RenderedEvent is one formatted line, or a source error.
type RenderedEvent struct {
	Raw  string
	Text string
	Err  error
}

// Stream owns the colorizer for a session. All lines pass through a single
// goroutine, so the colorizer needs no locking.
type Stream struct {
	colorizer *colorize.Colorizer
}

// New creates a pipeline stream around a colorizer.
func New(c *colorize.Colorizer) Stream {
	return Stream{colorizer: c}
}

// Connect wires a line source to formatted output. Ignored lines are dropped.
func (s Stream) Connect(ctx context.Context, in <-chan watch.LogEvent) <-chan RenderedEvent {
	out := make(chan RenderedEvent)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case evt, ok := <-in:
				if !ok {
					return
				}
				rendered := RenderedEvent{Raw: evt.Line, Err: evt.Err}
				if evt.Err == nil {
					text, keep := s.colorizer.Format(evt.Line)
					if !keep {
						continue
					}
					rendered.Text = text
				}
				select {
				case out <- rendered:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out
}

// Copy formats every line from in onto w, one per line, until the source
// closes or ctx ends. Source errors are returned after the stream drains. A
// write error stops the stream and is returned immediately.
func (s Stream) Copy(ctx context.Context, in <-chan watch.LogEvent, w io.Writer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var firstErr error
	for evt := range s.Connect(ctx, in) {
		if evt.Err != nil {
			if firstErr == nil {
				firstErr = evt.Err
			}
			continue
		}
		if _, err := io.WriteString(w, evt.Text+"\n"); err != nil {
			return err
		}
	}
	return firstErr
}
