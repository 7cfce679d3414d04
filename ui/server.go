package ui

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"residualmap/app"
	"residualmap/internal/config"
)

// Server exposes the residual pipeline over HTTP: upload a dataset, get the
// record set, the charts, or the association brief back.
type Server struct {
	router  *chi.Mux
	service *app.AnalysisService
	reports *app.ReportService
	cfg     *config.Config
}

// NewServer creates the HTTP application
func NewServer(cfg *config.Config, service *app.AnalysisService) *Server {
	s := &Server{
		router:  chi.NewRouter(),
		service: service,
		reports: app.NewReportService(),
		cfg:     cfg,
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
}

func (s *Server) setupRoutes() {
	s.router.Post("/api/analyze", s.handleAnalyze)
	s.router.Post("/charts/heatmap.svg", s.handleHeatmap)
	s.router.Post("/charts/network.svg", s.handleNetwork)
	s.router.Post("/reports/brief.html", s.handleReport)
	s.router.Get("/healthz", s.handleHealth)
}

// ListenAndServe starts the server on the configured port
func (s *Server) ListenAndServe() error {
	addr := ":" + s.cfg.Server.Port
	log.Printf("[Server] listening on %s", addr)
	return http.ListenAndServe(addr, s.router)
}

// Handler returns the underlying router, used by tests
func (s *Server) Handler() http.Handler {
	return s.router
}
