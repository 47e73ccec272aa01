// Package server exposes the evaluator over HTTP and WebSocket. It keeps no
// state between requests.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/gorilla/websocket"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

// Options configures a Server
type Options struct {
	Addr           string
	WriteTimeout   time.Duration
	MaxMessageSize int64
	Clock          quartz.Clock
}

// Server serves hand evaluations
type Server struct {
	addr           string
	upgrader       websocket.Upgrader
	logger         *log.Logger
	clock          quartz.Clock
	writeWait      time.Duration
	maxMessageSize int64
}

// NewServer creates a new evaluation server
func NewServer(opts Options, logger *log.Logger) *Server {
	if opts.Clock == nil {
		opts.Clock = quartz.NewReal()
	}
	if opts.WriteTimeout <= 0 {
		opts.WriteTimeout = 10 * time.Second
	}
	if opts.MaxMessageSize <= 0 {
		opts.MaxMessageSize = 4096
	}

	return &Server{
		addr: opts.Addr,
		upgrader: websocket.Upgrader{
			CheckOrigin:     func(r *http.Request) bool { return true },
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		logger:         logger.WithPrefix("server"),
		clock:          opts.Clock,
		writeWait:      opts.WriteTimeout,
		maxMessageSize: opts.MaxMessageSize,
	}
}

// Handler returns the HTTP routes
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/evaluate", s.handleEvaluate)
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/health", s.handleHealth)
	return mux
}

// Run serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("Starting evaluation server", "addr", s.addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		s.logger.Info("Shutting down evaluation server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// evaluate runs one request and logs how long it took
func (s *Server) evaluate(req EvaluateRequest) *EvaluateResponse {
	start := s.clock.Now()
	resp := Evaluate(req, start)
	if resp.Error != nil {
		s.logger.Debug("Rejected hand", "cards", req.Cards, "code", resp.Error.Code)
	} else {
		s.logger.Debug("Evaluated hand", "cards", req.Cards, "score", resp.Score,
			"double", resp.IsDouble, "elapsed", s.clock.Since(start))
	}
	return resp
}

func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		s.writeJSON(w, http.StatusMethodNotAllowed,
			NewErrorResponse("", CodeMethodNotAllowed, "use POST", s.clock.Now()))
		return
	}

	var req EvaluateRequest
	body := http.MaxBytesReader(w, r.Body, s.maxMessageSize)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		s.writeJSON(w, http.StatusBadRequest,
			NewErrorResponse("", CodeInvalidMessage, "failed to parse request body", s.clock.Now()))
		return
	}

	resp := s.evaluate(req)
	status := http.StatusOK
	if resp.Error != nil {
		status = http.StatusBadRequest
	}
	s.writeJSON(w, status, resp)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("Failed to write response", "error", err)
	}
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("Failed to upgrade connection", "error", err)
		return
	}

	c := newConnection(conn, s)
	s.logger.Info("Client connected", "remote", r.RemoteAddr)
	c.serve()
	s.logger.Info("Client disconnected", "remote", r.RemoteAddr)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = fmt.Fprintf(w, "OK")
}
