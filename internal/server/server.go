package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonathan/career-coach/internal/opportunities"
	"github.com/jonathan/career-coach/internal/store"
)

// Config holds server configuration
type Config struct {
	Port        int
	DatabaseURL string
}

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	store      store.Store
	finder     *opportunities.Finder
}

// New creates a new server instance. Without a database URL, state lives
// in memory for the lifetime of the process.
func New(cfg Config) (*Server, error) {
	var st store.Store
	if cfg.DatabaseURL != "" {
		pg, err := store.ConnectPostgres(context.Background(), cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		st = pg
	} else {
		st = store.NewMemoryStore()
	}

	s := &Server{
		store:  st,
		finder: opportunities.NewFinder(nil),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)

	// Profile endpoints
	mux.HandleFunc("PUT /profiles/{owner}", s.handleSaveProfile)
	mux.HandleFunc("GET /profiles/{owner}", s.handleGetProfile)
	mux.HandleFunc("DELETE /profiles/{owner}", s.handleDeleteProfile)

	// Resume endpoints
	mux.HandleFunc("POST /profiles/{owner}/customize", s.handleCustomize)
	mux.HandleFunc("POST /profiles/{owner}/improve", s.handleImprove)
	mux.HandleFunc("GET /profiles/{owner}/resumes", s.handleListResumes)
	mux.HandleFunc("GET /resumes/{id}", s.handleGetResume)

	// Interview endpoints
	mux.HandleFunc("POST /grade", s.handleGrade)
	mux.HandleFunc("GET /questions", s.handleQuestions)
	mux.HandleFunc("POST /profiles/{owner}/interviews", s.handleSaveInterview)
	mux.HandleFunc("GET /profiles/{owner}/interviews", s.handleListInterviews)

	// Opportunity endpoints
	mux.HandleFunc("GET /opportunities/jobs", s.handleSearchJobs)
	mux.HandleFunc("GET /opportunities/hackathons", s.handleSearchHackathons)
	mux.HandleFunc("GET /profiles/{owner}/recommendations", s.handleRecommendations)

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s, nil
}

// Start runs the server until SIGINT or SIGTERM, then shuts down
// gracefully.
func (s *Server) Start() error {
	errCh := make(chan error, 1)
	go func() {
		log.Printf("listening on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		s.store.Close()
		return err
	case sig := <-sigCh:
		log.Printf("received %s, shutting down", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := s.httpServer.Shutdown(ctx)
	s.store.Close()
	return err
}

// writeJSON writes v as a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

// writeError writes an error response with the status mapped from the
// error type.
func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, HTTPStatus(err), map[string]string{"error": err.Error()})
}
