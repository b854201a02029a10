package script

import (
	"context"
	"io"
	stdlog "log"

	"github.com/hpcloud/tail"
	"github.com/sirupsen/logrus"
)

// FollowOptions configures Follow.
type FollowOptions struct {
	// FromStart replays the existing contents before waiting for new lines.
	FromStart bool
	// Logger receives syntax errors of skipped lines. Nil discards them.
	Logger *logrus.Entry
}

// Follow tails path and calls handle for every stroke appended to it until
// ctx is cancelled or handle returns an error. Lines that fail to parse are
// logged and skipped. Line numbers count from the first line read.
func Follow(ctx context.Context, path string, opts FollowOptions, handle func(Stroke) error) error {
	whence := io.SeekEnd
	if opts.FromStart {
		whence = io.SeekStart
	}

	t, err := tail.TailFile(path, tail.Config{
		Follow:   true,
		ReOpen:   true,
		Location: &tail.SeekInfo{Offset: 0, Whence: whence},
		Logger:   stdlog.New(io.Discard, "", 0),
	})
	if err != nil {
		return err
	}
	defer t.Cleanup()
	defer t.Stop()

	n := 0
	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-t.Lines:
			if !ok {
				return t.Err()
			}
			if line.Err != nil {
				return line.Err
			}
			n++
			st, ok, err := ParseLine(line.Text, n)
			if err != nil {
				if opts.Logger != nil {
					opts.Logger.WithError(err).Warn("Skipping malformed script line")
				}
				continue
			}
			if !ok {
				continue
			}
			if err := handle(st); err != nil {
				return err
			}
		}
	}
}
