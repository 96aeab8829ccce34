// Package api exposes the assistant over HTTP for chat front-ends.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/oakmund/finsight/internal/core"
	"github.com/oakmund/finsight/internal/metrics"
	"github.com/oakmund/finsight/internal/session"
)

// Responder is the assistant surface the server needs.
type Responder interface {
	Respond(ctx context.Context, query string, sess *session.Session) string
	Route(query string) (route core.Route, specialistName string)
}

// Server represents the HTTP server for the assistant.
type Server struct {
	httpServer *http.Server
	assistant  Responder
	sessions   session.Store
	metrics    *metrics.Registry
	logger     *zap.Logger
	mux        *http.ServeMux
}

// Config holds server configuration
type Config struct {
	Host        string
	Port        int
	MetricsPath string // empty disables the metrics endpoint
}

// NewServer creates a new HTTP server
func NewServer(cfg Config, assistant Responder, sessions session.Store, m *metrics.Registry, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	mux := http.NewServeMux()
	s := &Server{
		httpServer: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
			Handler:      mux,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 120 * time.Second, // LLM exchanges are slow
			IdleTimeout:  60 * time.Second,
		},
		assistant: assistant,
		sessions:  sessions,
		metrics:   m,
		logger:    logger,
		mux:       mux,
	}

	mux.HandleFunc("POST /api/query", s.handleQuery)
	mux.HandleFunc("GET /api/history", s.handleHistory)
	mux.HandleFunc("GET /api/health", s.handleHealth)
	if m != nil && cfg.MetricsPath != "" {
		mux.Handle("GET "+cfg.MetricsPath, m.Handler())
	}

	return s
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.Info("starting HTTP server", zap.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down HTTP server")
	return s.httpServer.Shutdown(ctx)
}

// Handler returns the server's mux, for tests.
func (s *Server) Handler() http.Handler {
	return s.mux
}

type queryRequest struct {
	Query     string `json:"query"`
	SessionID string `json:"session_id,omitempty"`
}

type queryResponse struct {
	SessionID  string `json:"session_id"`
	Route      string `json:"route"`
	Specialist string `json:"specialist"`
	Response   string `json:"response"`
}

func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	var req queryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest,
			core.WrapError(core.ErrInvalidArgument, fmt.Errorf("decoding request: %w", err)))
		return
	}

	sess := s.sessions.GetOrCreate(req.SessionID)
	route, specialistName := s.assistant.Route(req.Query)
	text := s.assistant.Respond(r.Context(), req.Query, sess)

	if s.metrics != nil {
		if counter, ok := s.sessions.(interface{ Count() int }); ok {
			s.metrics.SetSessionsActive(counter.Count())
		}
	}

	writeJSON(w, http.StatusOK, queryResponse{
		SessionID:  sess.ID,
		Route:      string(route),
		Specialist: specialistName,
		Response:   text,
	})
}

type historyResponse struct {
	SessionID string         `json:"session_id"`
	Turns     []session.Turn `json:"turns"`
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("session_id")
	sess, ok := s.sessions.Get(id)
	if !ok {
		writeError(w, http.StatusNotFound, core.ErrSessionNotFound)
		return
	}
	writeJSON(w, http.StatusOK, historyResponse{SessionID: sess.ID, Turns: sess.Turns()})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
