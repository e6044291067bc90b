package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/medha0618nair/doc-analyser/internal/brochure"
	"github.com/medha0618nair/doc-analyser/internal/config"
	"github.com/medha0618nair/doc-analyser/internal/pdftext"
)

// ExtractFunc turns uploaded PDF bytes into a text document.
type ExtractFunc func(data []byte) (*pdftext.Document, error)

// Server is the HTTP API server for the brochure processor.
type Server struct {
	router    chi.Router
	extract   ExtractFunc
	processor *brochure.Processor
	stats     *brochure.Stats
	log       *slog.Logger
	cfg       config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(extract ExtractFunc, proc *brochure.Processor, stats *brochure.Stats, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		extract:   extract,
		processor: proc,
		stats:     stats,
		log:       log,
		cfg:       cfg,
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
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/", s.handleRoot)
	r.Get("/health", s.handleHealth)
	r.Get("/stats", s.handleStats)
	r.Post("/process-brochure", s.handleProcessBrochure)

	s.router = r
}
