// Package server provides the HTTP interface of the resume builder.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/sample"
	"github.com/jonathan/resume-builder/internal/server/ratelimit"
	"github.com/jonathan/resume-builder/internal/session"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/jonathan/resume-builder/internal/web"
	"github.com/sirupsen/logrus"
)

// PDFFunc prints an HTML document to PDF.
type PDFFunc func(ctx context.Context, html string, timeout time.Duration) ([]byte, error)

// Server represents the HTTP server
type Server struct {
	httpServer      *http.Server
	handler         http.Handler
	logger          *logrus.Logger
	renderer        *rendering.Renderer
	pages           *rendering.Engine
	sessions        *session.Store
	rateLimiter     *ratelimit.Limiter
	sample          *types.Profile
	defaultTemplate string
	pdfEnabled      bool
	pdfTimeout      time.Duration
	pdf             PDFFunc
}

// Config holds server configuration
type Config struct {
	Port            int
	DefaultTemplate string
	PDFEnabled      bool
	PDFTimeout      time.Duration

	Sample    *types.Profile        // Backs the load-sample control; defaults to the built-in sample
	Logger    *logrus.Logger        // Defaults to a discarding logger
	Session   *config.SessionConfig // Defaults to a random key and a 24h TTL
	RateLimit *ratelimit.Config     // Defaults to ratelimit.LoadConfig()
	PDF       PDFFunc               // Defaults to rendering.PDF
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	sessions, err := session.NewStore(cfg.Session)
	if err != nil {
		return nil, fmt.Errorf("failed to create session store: %w", err)
	}

	s := &Server{
		logger:          cfg.Logger,
		renderer:        rendering.NewRenderer(),
		pages:           rendering.NewEngine("pages", web.Pages()),
		sessions:        sessions,
		sample:          cfg.Sample,
		defaultTemplate: cfg.DefaultTemplate,
		pdfEnabled:      cfg.PDFEnabled,
		pdfTimeout:      cfg.PDFTimeout,
		pdf:             cfg.PDF,
	}
	if s.logger == nil {
		s.logger = observability.Discard()
	}
	if s.sample == nil {
		s.sample = sample.Default()
	}
	if !rendering.HasTemplate(s.defaultTemplate) {
		s.defaultTemplate = types.DefaultTemplate
	}
	if s.pdfTimeout <= 0 {
		s.pdfTimeout = rendering.DefaultPDFTimeout
	}
	if s.pdf == nil {
		s.pdf = rendering.PDF
	}

	rlConfig := cfg.RateLimit
	if rlConfig == nil {
		rlConfig = ratelimit.LoadConfig()
	}
	s.rateLimiter = ratelimit.NewLimiter(rlConfig)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /form", s.handleForm)
	mux.HandleFunc("POST /generate", s.handleGenerate)
	mux.HandleFunc("POST /update_template", s.handleUpdateTemplate)
	mux.HandleFunc("GET /download/{file_type}", s.handleDownload)
	mux.HandleFunc("GET /api/sample", s.handleSample)
	mux.HandleFunc("GET /static/style.css", s.handleStylesheet)
	mux.HandleFunc("GET /health", s.handleHealth)

	s.handler = s.withRequestID(s.withLogging(s.withRateLimit(mux)))

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: s.pdfTimeout + 30*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Handler returns the fully wrapped HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start begins listening for requests and blocks until SIGINT or SIGTERM.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		s.logger.WithField("addr", s.httpServer.Addr).Info("Server starting")
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		s.rateLimiter.Stop()
		return fmt.Errorf("server error: %w", err)
	case <-stop:
	}
	s.logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.rateLimiter.Stop()
	s.logger.Info("Server stopped")
	return nil
}

// Close releases background resources without a running listener.
func (s *Server) Close() {
	s.rateLimiter.Stop()
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, r *http.Request, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log(r).WithError(err).Error("Error encoding JSON response")
	}
}

// errorResponse logs err and writes it as plain text with its mapped status.
func (s *Server) errorResponse(w http.ResponseWriter, r *http.Request, err error) {
	status := HTTPStatus(err)
	entry := s.log(r).WithError(err).WithField("status", status)
	if status >= http.StatusInternalServerError {
		entry.Error("Request failed")
	} else {
		entry.Info("Request rejected")
	}
	http.Error(w, publicMessage(err), status)
}

// htmlResponse writes an HTML page
func (s *Server) htmlResponse(w http.ResponseWriter, r *http.Request, page string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(page)); err != nil {
		s.log(r).WithError(err).Warn("Error writing response")
	}
}
