// Package profiling times nested phases of a command run and wires CPU and
// heap profiles to cobra flags.
package profiling

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// Stopper ends a span.
type Stopper interface {
	Stop()
}

type span struct {
	name     string
	depth    int
	start    time.Time
	duration time.Duration
	profiler *Profiler
}

func (s *span) Stop() {
	s.profiler.end(s)
}

// Profiler records spans in start order. Spans nest by call order, so a span
// must be stopped before its parent.
type Profiler struct {
	mu      sync.Mutex
	enabled bool
	started time.Time
	spans   []*span
	depth   int
}

var defaultProfiler = &Profiler{}

// Enable turns on the global profiler. Spans started before Enable are not
// recorded.
func Enable() {
	defaultProfiler.mu.Lock()
	defer defaultProfiler.mu.Unlock()
	if defaultProfiler.enabled {
		return
	}
	defaultProfiler.enabled = true
	defaultProfiler.started = time.Now()
}

// Enabled reports whether spans are being recorded.
func Enabled() bool {
	defaultProfiler.mu.Lock()
	defer defaultProfiler.mu.Unlock()
	return defaultProfiler.enabled
}

// Start begins a span, typically used as defer profiling.Start("x").Stop().
func Start(name string) Stopper {
	return defaultProfiler.start(name)
}

// Summarize writes the recorded spans as an indented tree.
func Summarize(w io.Writer) {
	defaultProfiler.summarize(w)
}

func (p *Profiler) start(name string) Stopper {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.enabled {
		return noopStopper{}
	}
	s := &span{name: name, depth: p.depth, start: time.Now(), profiler: p}
	p.spans = append(p.spans, s)
	p.depth++
	return s
}

func (p *Profiler) end(s *span) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if s.duration != 0 {
		return
	}
	s.duration = time.Since(s.start)
	if p.depth > 0 {
		p.depth--
	}
}

func (p *Profiler) summarize(w io.Writer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.enabled {
		return
	}

	total := time.Since(p.started)
	fmt.Fprintln(w, "\n--- Timing Profile ---")
	for _, s := range p.spans {
		pct := 0.0
		if total > 0 {
			pct = float64(s.duration) / float64(total) * 100
		}
		fmt.Fprintf(w, "%s- %s (%v, %.1f%%)\n",
			strings.Repeat("  ", s.depth+1), s.name, s.duration.Round(100*time.Microsecond), pct)
	}
	fmt.Fprintf(w, "total %v\n", total.Round(100*time.Microsecond))
}

// reset clears all state; tests use it between runs.
func (p *Profiler) reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.enabled = false
	p.started = time.Time{}
	p.spans = nil
	p.depth = 0
}

type noopStopper struct{}

func (noopStopper) Stop() {}
