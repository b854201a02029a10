// Package server exposes a stroke session over a websocket, for geometry
// layers that classify touches outside this process.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/grovetools/stroke/bank"
	"github.com/grovetools/stroke/config"
	"github.com/grovetools/stroke/dispatch"
	"github.com/grovetools/stroke/errors"
	"github.com/grovetools/stroke/layout"
	"github.com/sirupsen/logrus"
)

// maxMessageSize bounds a single client frame.
const maxMessageSize = 4096

// Options configures a Server.
type Options struct {
	// Path is upgraded to a websocket. Defaults to config.DefaultServerPath.
	Path string
	// StartLayout is the layout each new connection starts on; empty uses the
	// bank default.
	StartLayout string
}

// Server serves the stroke endpoint and a small JSON API.
type Server struct {
	bank     *bank.Bank
	opts     Options
	logger   *logrus.Entry
	upgrader websocket.Upgrader

	mu     sync.Mutex
	server *http.Server
	closed bool
}

// New creates a server over b. The start layout is checked up front so a
// misconfigured server fails before it accepts connections.
func New(b *bank.Bank, logger *logrus.Entry, opts Options) (*Server, error) {
	if opts.Path == "" {
		opts.Path = config.DefaultServerPath
	}
	if opts.StartLayout != "" && !b.Has(opts.StartLayout) {
		return nil, errors.UnknownLayout(opts.StartLayout).WithDetail("role", "start")
	}
	return &Server{
		bank:   b,
		opts:   opts,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}, nil
}

// Handler returns the HTTP handler with every route registered.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	mux.HandleFunc("/api/layouts", s.handleGetLayouts)
	mux.HandleFunc(s.opts.Path, s.handleStrokes)

	return mux
}

// ListenAndServe listens on addr and serves until Shutdown.
func (s *Server) ListenAndServe(addr string) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	return s.Serve(listener)
}

// Serve accepts connections on listener.
func (s *Server) Serve(listener net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		listener.Close()
		return nil
	}
	s.server = srv
	s.mu.Unlock()

	s.logger.WithFields(logrus.Fields{
		"addr": listener.Addr().String(),
		"path": s.opts.Path,
	}).Info("Stroke server listening")

	err := srv.Serve(listener)
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down server...")
	s.mu.Lock()
	srv := s.server
	s.closed = true
	s.mu.Unlock()
	if srv != nil {
		return srv.Shutdown(ctx)
	}
	return nil
}

// handleGetLayouts lists the bank's layouts as JSON.
func (s *Server) handleGetLayouts(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(DescribeLayouts(s.bank)); err != nil {
		s.logger.WithError(err).Warn("Failed to write layout list")
	}
}

// handleStrokes upgrades the connection and runs one session on it. Frames
// are handled strictly in order on this goroutine, which is the session's
// only writer.
func (s *Server) handleStrokes(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.WithError(err).Warn("Websocket upgrade failed")
		return
	}
	defer conn.Close()
	conn.SetReadLimit(maxMessageSize)

	logger := s.logger.WithField("remote", r.RemoteAddr)
	host := &connHost{}
	d, err := dispatch.New(s.bank, host,
		dispatch.WithLogger(logger),
		dispatch.WithStartLayout(s.opts.StartLayout),
	)
	if err != nil {
		logger.WithError(err).Error("Failed to start session")
		return
	}
	logger.Debug("Session opened")

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.WithError(err).Warn("Connection closed unexpectedly")
			}
			logger.Debug("Session closed")
			return
		}

		resp := s.handleFrame(d, host, data)
		if err := conn.WriteJSON(resp); err != nil {
			logger.WithError(err).Warn("Failed to write response")
			return
		}
	}
}

func (s *Server) handleFrame(d *dispatch.Dispatcher, host *connHost, data []byte) Response {
	host.reset()

	var resp Response
	if err := s.applyFrame(d, data); err != nil {
		se, ok := errors.As(err)
		if !ok {
			se = errors.Wrap(err, errors.ErrCodeInternal, "stroke failed")
		}
		resp.Error = se
	}

	sess := d.Session()
	resp.Text = host.text
	resp.Codes = host.codes
	resp.Layout = sess.LayoutName()
	resp.Shift = sess.Shift
	resp.Changed = host.changed
	return resp
}

func (s *Server) applyFrame(d *dispatch.Dispatcher, data []byte) error {
	var req Request
	if err := json.Unmarshal(data, &req); err != nil {
		return errors.Wrap(err, errors.ErrCodeInvalidInput, "malformed stroke request")
	}

	start, err := parseZone(req.Start)
	if err != nil {
		return err
	}
	end, err := parseZone(req.End)
	if err != nil {
		return err
	}

	_, err = d.HandleStroke(start, end)
	return err
}

func parseZone(token string) (layout.Zone, error) {
	z, err := layout.ParseZone(token)
	if err != nil {
		return 0, errors.New(errors.ErrCodeInvalidZone, err.Error()).WithDetail("zone", token)
	}
	return z, nil
}
