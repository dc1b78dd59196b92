package watch

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// Command starts cmd and streams its stdout line by line. When the output
// ends the process is reaped; a failing exit is reported as the final event
// unless ctx was cancelled.
func Command(ctx context.Context, cmd *exec.Cmd) (<-chan LogEvent, error) {
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("create stdout pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start %s: %w", cmd.Path, err)
	}

	out := make(chan LogEvent)
	go func() {
		defer close(out)
		for evt := range ReadLines(ctx, stdout) {
			select {
			case out <- evt:
			case <-ctx.Done():
			}
		}
		err := cmd.Wait()
		if err == nil || ctx.Err() != nil {
			return
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			err = fmt.Errorf("%s exited with status %d", cmd.Path, exitErr.ExitCode())
		}
		select {
		case out <- LogEvent{Err: err}:
		case <-ctx.Done():
		}
	}()
	return out, nil
}
