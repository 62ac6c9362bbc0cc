// Package server is the preview HTTP server: it serves one processed deck
// so the result of a fragment pass can be checked in a browser.
package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server serves a processed deck over HTTP.
type Server struct {
	router chi.Router
	deck   []byte
	log    *slog.Logger
}

// NewServer creates the preview server for an already-rendered deck.
func NewServer(deck []byte, log *slog.Logger) *Server {
	s := &Server{
		deck: deck,
		log:  log,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	r.Get("/health", s.handleHealth)
	r.Get("/", s.handleDeck)

	s.router = r
}

func (s *Server) handleDeck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(s.deck)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
