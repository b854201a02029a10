package script

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/grovetools/stroke/bank"
	"github.com/grovetools/stroke/dispatch"
	"github.com/grovetools/stroke/errors"
	"github.com/grovetools/stroke/layout"
	"github.com/grovetools/stroke/testutil"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	src := `# type "Hi"
lt lt      # shift
mc mb

center left-top
`
	strokes, err := Parse(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, strokes, 3)

	assert.Equal(t, Stroke{Line: 2, Start: layout.LeftTop, End: layout.LeftTop}, strokes[0])
	assert.Equal(t, Stroke{Line: 3, Start: layout.Center, End: layout.MidBottom}, strokes[1])
	assert.Equal(t, Stroke{Line: 5, Start: layout.Center, End: layout.LeftTop}, strokes[2])
	assert.Equal(t, "mc lt", strokes[2].String())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		line int
	}{
		{"one zone", "mc\n", 1},
		{"three zones", "mc lt\nmc lt rt\n", 2},
		{"unknown zone", "\n\nmc zz\n", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.src))
			require.Error(t, err)
			se, ok := errors.As(err)
			require.True(t, ok)
			assert.Equal(t, errors.ErrCodeScriptSyntax, se.Code)
			assert.Equal(t, tt.line, se.Details["line"])
		})
	}
}

func newDispatcher(t *testing.T) (*dispatch.Dispatcher, *testutil.RecordingHost) {
	t.Helper()
	l := logrus.New()
	l.SetOutput(io.Discard)
	host := &testutil.RecordingHost{}
	d, err := dispatch.New(bank.MustDefault(), host, dispatch.WithLogger(logrus.NewEntry(l)))
	require.NoError(t, err)
	return d, host
}

func TestPlay(t *testing.T) {
	d, host := newDispatcher(t)

	strokes, err := Parse(strings.NewReader("lt lt\nmc mb\nmc rt\n"))
	require.NoError(t, err)
	require.NoError(t, Play(d, strokes))

	assert.Equal(t, "Hi", host.Output())
	assert.Equal(t, layout.ShiftOff, d.Session().Shift)
}

func TestPlayReportsLine(t *testing.T) {
	d, _ := newDispatcher(t)

	err := Play(d, []Stroke{{Line: 4, Start: layout.Zone(0x9), End: layout.Center}})
	require.Error(t, err)
	se, ok := errors.As(err)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeInvalidZone, se.Code)
	assert.Equal(t, 4, se.Details["line"])
}

func TestFollow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "strokes.txt")
	require.NoError(t, os.WriteFile(path, []byte("mc lt\nbogus\n"), 0o644))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	got := make(chan Stroke, 8)
	done := make(chan error, 1)
	go func() {
		done <- Follow(ctx, path, FollowOptions{FromStart: true}, func(st Stroke) error {
			got <- st
			return nil
		})
	}()

	select {
	case st := <-got:
		assert.Equal(t, Stroke{Line: 1, Start: layout.Center, End: layout.LeftTop}, st)
	case <-ctx.Done():
		t.Fatal("existing line not replayed")
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	require.NoError(t, err)
	_, err = f.WriteString("rb rb\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	select {
	case st := <-got:
		assert.Equal(t, Stroke{Line: 3, Start: layout.RightBottom, End: layout.RightBottom}, st)
	case <-ctx.Done():
		t.Fatal("appended line not seen")
	}

	cancel()
	assert.NoError(t, <-done)
}
