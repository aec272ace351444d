package daemon

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"mediaconv/internal/api"
	"mediaconv/internal/config"
	"mediaconv/internal/logging"
)

const maxCommandBody = 1 << 20

type apiServer struct {
	bind   string
	logger *slog.Logger
	daemon *Daemon

	mu       sync.Mutex
	listener net.Listener
	server   *http.Server
}

func newAPIServer(cfg *config.Config, d *Daemon, logger *slog.Logger) *apiServer {
	srv := &apiServer{
		bind:   strings.TrimSpace(cfg.Paths.APIBind),
		logger: logging.NewComponentLogger(logger, "api-server"),
		daemon: d,
	}

	token := cfg.Paths.APIToken
	mux := http.NewServeMux()
	mux.HandleFunc("/api/status", authMiddleware(token, srv.handleStatus))
	mux.HandleFunc("/api/commands/", authMiddleware(token, srv.handleCommand))
	mux.HandleFunc("/api/windows", authMiddleware(token, srv.handleWindows))
	mux.HandleFunc("/api/windows/", authMiddleware(token, srv.handleWindowAction))
	mux.HandleFunc("/api/events", authMiddleware(token, d.hub.ServeHTTP))

	srv.server = &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return srv
}

func (s *apiServer) handler() http.Handler {
	return s.server.Handler
}

func (s *apiServer) start(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.bind)
	if err != nil {
		return fmt.Errorf("api listen: %w", err)
	}
	s.mu.Lock()
	s.listener = listener
	s.mu.Unlock()

	go func() {
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("api server error", logging.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		s.stop()
	}()

	s.logger.Info("api server listening", logging.String("address", listener.Addr().String()))
	return nil
}

func (s *apiServer) stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = s.server.Shutdown(shutdownCtx)
	_ = s.listener.Close()
	s.listener = nil
}

func (s *apiServer) address() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

func (s *apiServer) handleStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	s.writeJSON(w, http.StatusOK, s.daemon.Status(r.Context()).StatusDTO())
}

func (s *apiServer) handleCommand(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(r.URL.Path, "/api/commands/")
	if name == "" || strings.Contains(name, "/") {
		s.writeError(w, http.StatusNotFound, "unknown command")
		return
	}
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxCommandBody))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "read request body")
		return
	}

	ctx := r.Context()
	if id := strings.TrimSpace(r.Header.Get("X-Correlation-ID")); id != "" {
		ctx = logging.WithCorrelationID(ctx, id)
	}
	result, err := s.daemon.service.Invoke(ctx, name, json.RawMessage(body))
	switch {
	case errors.Is(err, api.ErrUnknownCommand):
		s.writeError(w, http.StatusNotFound, err.Error())
		return
	case errors.Is(err, api.ErrInvalidArguments):
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		s.writeJSON(w, http.StatusInternalServerError, api.CommandResponse{Error: err.Error()})
		return
	}
	s.writeJSON(w, http.StatusOK, api.CommandResponse{OK: true, Result: result})
}

func (s *apiServer) handleWindows(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	s.writeJSON(w, http.StatusOK, api.WindowListResponse{Windows: s.daemon.windows.Labels()})
}

// handleWindowAction serves POST /api/windows/{label}/close.
func (s *apiServer) handleWindowAction(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/windows/")
	label, action, ok := strings.Cut(rest, "/")
	if !ok || label == "" || action != "close" {
		s.writeError(w, http.StatusNotFound, "not found")
		return
	}
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	closed := s.daemon.windows.Close(r.Context(), label)
	s.writeJSON(w, http.StatusOK, api.CommandResponse{OK: true, Result: closed})
}

func (s *apiServer) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("failed to encode response", logging.Error(err))
	}
}

func (s *apiServer) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}
