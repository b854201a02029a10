package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grovetools/stroke/cli"
	"github.com/grovetools/stroke/dispatch"
	"github.com/grovetools/stroke/keycode"
	"github.com/grovetools/stroke/layout"
	"github.com/grovetools/stroke/logging"
	"github.com/grovetools/stroke/pkg/profiling"
	"github.com/grovetools/stroke/script"
	"github.com/grovetools/stroke/tui/keyboard"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// ReplayResult is the JSON form of a finished replay.
type ReplayResult struct {
	Text    string            `json:"text"`
	Strokes int               `json:"strokes"`
	Layout  string            `json:"layout"`
	Shift   layout.ShiftState `json:"shift"`
}

// streamHost writes emitted text as it arrives. Enter, space and tab become
// their characters; other key codes are only logged.
type streamHost struct {
	out    io.Writer
	logger *logrus.Entry
}

func (h *streamHost) EmitText(text string) {
	fmt.Fprint(h.out, text)
}

func (h *streamHost) EmitKeyCode(code keycode.Code) {
	switch code {
	case keycode.Enter:
		fmt.Fprintln(h.out)
	case keycode.Space:
		fmt.Fprint(h.out, " ")
	case keycode.Tab:
		fmt.Fprint(h.out, "\t")
	default:
		h.logger.WithField("code", code).Debug("Key code emitted")
	}
}

func (h *streamHost) StateChanged(l *layout.Layout, shift layout.ShiftState) {
	h.logger.WithFields(logrus.Fields{"layout": l.Name(), "shift": shift}).Debug("State changed")
}

// NewReplayCmd creates the `replay` command
func NewReplayCmd() *cobra.Command {
	cmd := cli.NewStandardCommand(
		"replay [file]",
		"Run a stroke script through a session and print the text",
	)
	cmd.Long = `Run a stroke script, one "<start> <end>" pair per line, through a fresh
session and print the resulting text. Reads stdin when no file is given.
With --follow the file is tailed and text is printed as strokes arrive.

Examples:
  stroke replay hello.strokes
  echo "mc lt" | stroke replay
  stroke replay --follow --start cyrillic /tmp/strokes.log`
	cmd.Args = cobra.MaximumNArgs(1)
	cmd.Flags().String("start", "", "Layout the session starts on")
	cmd.Flags().BoolP("follow", "f", false, "Tail the file and replay strokes as they are appended")
	cmd.Flags().Bool("from-start", false, "With --follow, replay the existing contents first")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		logger := cli.GetLogger(cmd)
		b, err := loadBank()
		if err != nil {
			return err
		}
		start, err := startLayout(cmd)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		if follow, _ := cmd.Flags().GetBool("follow"); follow {
			if len(args) == 0 {
				return fmt.Errorf("--follow needs a file")
			}
			fromStart, _ := cmd.Flags().GetBool("from-start")
			host := &streamHost{out: out, logger: logger}
			d, err := dispatch.New(b, host, dispatch.WithStartLayout(start))
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return followScript(ctx, d, args[0], fromStart)
		}

		var in io.Reader = cmd.InOrStdin()
		if len(args) == 1 {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open script: %w", err)
			}
			defer f.Close()
			in = f
		}

		parseSpan := profiling.Start("parse script")
		strokes, err := script.Parse(in)
		parseSpan.Stop()
		if err != nil {
			return err
		}

		buf := &keyboard.Buffer{}
		d, err := dispatch.New(b, buf, dispatch.WithStartLayout(start))
		if err != nil {
			return err
		}
		playSpan := profiling.Start("play strokes")
		err = script.Play(d, strokes)
		playSpan.Stop()
		if err != nil {
			return err
		}
		logger.WithField("strokes", len(strokes)).Debug("Replay finished")

		if cli.GetOptions(cmd).JSONOutput {
			s := d.Session()
			data, err := json.MarshalIndent(ReplayResult{
				Text:    buf.String(),
				Strokes: len(strokes),
				Layout:  s.LayoutName(),
				Shift:   s.Shift,
			}, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal replay result: %w", err)
			}
			fmt.Fprintln(out, string(data))
			return nil
		}
		fmt.Fprintln(out, buf.String())
		return nil
	}

	return cmd
}

func followScript(ctx context.Context, d *dispatch.Dispatcher, path string, fromStart bool) error {
	logger := logging.NewLogger("script")
	return script.Follow(ctx, path, script.FollowOptions{FromStart: fromStart, Logger: logger}, func(st script.Stroke) error {
		if _, err := d.HandleStroke(st.Start, st.End); err != nil {
			logger.WithError(err).WithField("stroke", st.String()).Warn("Stroke rejected")
		}
		return nil
	})
}
