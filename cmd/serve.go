package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/grovetools/stroke/cli"
	"github.com/grovetools/stroke/logging"
	"github.com/grovetools/stroke/server"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 5 * time.Second

// NewServeCmd creates the `serve` command
func NewServeCmd() *cobra.Command {
	cmd := cli.NewStandardCommand(
		"serve",
		"Serve the stroke endpoint over a websocket",
	)
	cmd.Long = `Serve a websocket endpoint that accepts strokes from an external geometry
layer and answers with the emitted text, key codes and session state. Each
connection gets its own session.

Examples:
  stroke serve
  stroke serve --listen 0.0.0.0:7373 --start cyrillic`
	cmd.Args = cobra.NoArgs
	cmd.Flags().String("listen", "", "Address to listen on (default from server.listen)")
	cmd.Flags().String("path", "", "Websocket path (default from server.path)")
	cmd.Flags().String("start", "", "Layout each connection starts on")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, _, err := cli.LoadConfig(cmd)
		if err != nil {
			return err
		}
		b, err := loadBank()
		if err != nil {
			return err
		}
		start, err := startLayout(cmd)
		if err != nil {
			return err
		}

		listen := cfg.Server.Listen
		if v, _ := cmd.Flags().GetString("listen"); v != "" {
			listen = v
		}
		path := cfg.Server.Path
		if v, _ := cmd.Flags().GetString("path"); v != "" {
			path = v
		}

		logger := logging.NewLogger("server")
		srv, err := server.New(b, logger, server.Options{Path: path, StartLayout: start})
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			errCh <- srv.ListenAndServe(listen)
		}()

		logging.NewPrettyLogger().WithWriter(cmd.ErrOrStderr()).
			Success(fmt.Sprintf("Serving strokes on ws://%s%s", listen, path))

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down server: %w", err)
		}
		return <-errCh
	}

	return cmd
}
