package logging

import (
	"io"
	"os"
	"sync"
)

// stderrSink is shared by every logger that writes to the terminal. Writes
// are serialized so lines from concurrent dispatchers never interleave.
type stderrSink struct {
	mu  sync.Mutex
	out io.Writer
}

func (s *stderrSink) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.out.Write(p)
}

func (s *stderrSink) swap(w io.Writer) io.Writer {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev := s.out
	s.out = w
	return prev
}

var sharedSink = &stderrSink{out: os.Stderr}

// SetGlobalOutput redirects the terminal sink of every logger and returns
// the writer it replaced. The keyboard TUI points it away from the screen
// while it runs.
func SetGlobalOutput(w io.Writer) io.Writer {
	if w == nil {
		w = io.Discard
	}
	return sharedSink.swap(w)
}
