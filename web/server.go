// Package web provides the HTTP server, middleware chain and the
// content-negotiated error dispatcher for the application.
package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Options configures the server. Zero values get sensible defaults in
// NewServer.
type Options struct {
	// Debug enables failure detail on rendered error pages.
	Debug bool
	// RequestsPerSecond and Burst shape the per-client rate limiter.
	RequestsPerSecond int
	Burst             int
}

// HandlerFunc is a request handler that reports failure by return
// value; non-nil errors flow to the dispatcher.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// Server holds the HTTP server and its middleware state.
type Server struct {
	router         *mux.Router
	server         *http.Server
	dispatcher     *Dispatcher
	logger         *zap.SugaredLogger
	opts           Options
	rateLimiters   map[string]*rateLimiterEntry
	rateLimitersMu sync.Mutex
	stopCh         chan struct{}
}

// NewServer builds the server around a renderer for error pages.
func NewServer(renderer Renderer, logger *zap.SugaredLogger, opts Options) *Server {
	if opts.RequestsPerSecond <= 0 {
		opts.RequestsPerSecond = 50
	}
	if opts.Burst <= 0 {
		opts.Burst = 100
	}
	s := &Server{
		router:       mux.NewRouter(),
		dispatcher:   NewDispatcher(renderer, opts.Debug),
		logger:       logger,
		opts:         opts,
		rateLimiters: make(map[string]*rateLimiterEntry),
		stopCh:       make(chan struct{}),
	}
	s.setupRoutes()
	go s.cleanupRateLimiters()
	return s
}

// Dispatcher exposes the error dispatcher so collaborators outside the
// middleware chain can shape failures the same way.
func (s *Server) Dispatcher() *Dispatcher { return s.dispatcher }

// Router exposes the underlying router for feature modules to mount
// their routes on.
func (s *Server) Router() *mux.Router { return s.router }

func (s *Server) setupRoutes() {
	s.router.Use(s.requestIDMiddleware)
	s.router.Use(s.metricsMiddleware)
	s.router.Use(s.rateLimitMiddleware)
	s.router.Use(s.recoverMiddleware)

	s.router.HandleFunc("/health", s.healthCheck).Methods("GET")
	s.router.Handle("/metrics", promhttp.Handler())

	// Unknown routes go through the dispatcher so clients get the
	// negotiated not-found response, not the mux default.
	s.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.dispatcher.Dispatch(w, r, http.StatusNotFound,
			NewHTTPFailure(http.StatusNotFound, errors.New("page not found")))
	})
}

// Handle registers a failure-returning handler on path.
func (s *Server) Handle(path string, fn HandlerFunc, methods ...string) {
	route := s.router.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			s.dispatcher.Dispatch(w, r, http.StatusInternalServerError, err)
		}
	})
	if len(methods) > 0 {
		route.Methods(methods...)
	}
}

// healthCheck reports liveness.
func (s *Server) healthCheck(w http.ResponseWriter, _ *http.Request) {
	s.respondJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}

// respondJSON writes a JSON response with proper error handling.
func (s *Server) respondJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Response already started; nothing to send the client.
		s.logger.Errorw("Failed to encode JSON response",
			"error", err,
			"data_type", fmt.Sprintf("%T", data))
	}
}

// Start starts the server on addr and blocks until it stops.
func (s *Server) Start(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.router,
	}
	return s.server.ListenAndServe()
}

// StartTLS starts the server with TLS and blocks until it stops.
func (s *Server) StartTLS(addr, certFile, keyFile string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.router,
	}
	return s.server.ListenAndServeTLS(certFile, keyFile)
}

// Stop gracefully shuts the server down.
func (s *Server) Stop(ctx context.Context) error {
	close(s.stopCh)
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
