// Package api exposes transcript analysis over HTTP.
package api

import (
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/chatlens/chatlens/internal/store"
	"github.com/chatlens/chatlens/pkg/config"
	"github.com/chatlens/chatlens/pkg/stats"
)

// Server holds the dependencies shared by all handlers.
type Server struct {
	cfg   *config.Config
	store store.Store

	mu       sync.Mutex
	patterns map[string]*stats.PatternSet
}

// NewServer creates a Server backed by the given session store.
func NewServer(cfg *config.Config, st store.Store) *Server {
	return &Server{
		cfg:      cfg,
		store:    st,
		patterns: make(map[string]*stats.PatternSet),
	}
}

// NewRouter wires the API routes.
func NewRouter(s *Server) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(api chi.Router) {
		api.Get("/health", s.handleHealth)
		api.Post("/upload", s.handleUpload)
		api.Get("/authors", s.handleAuthors)
		api.Get("/stats", s.handleStats)
		api.Get("/word-frequency", s.handleWordFrequency)
		api.Get("/insights", s.handleInsights)
		api.Get("/emoji", s.handleEmoji)
		api.Delete("/session/{key}", s.handleDeleteSession)
	})

	return r
}

// patternsFor returns the tracked phrase set for a language, loading from
// the configured directory once per language.
func (s *Server) patternsFor(language string) *stats.PatternSet {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ps, ok := s.patterns[language]; ok {
		return ps
	}

	var ps *stats.PatternSet
	if s.cfg.Patterns.Dir != "" {
		ps = stats.LoadPatterns(s.cfg.Patterns.Dir, language)
	} else {
		ps = stats.FallbackPatterns(language)
	}
	s.patterns[language] = ps
	return ps
}
