package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/meltforce/ftracker/internal/ingest/sensor"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	sensor *sensor.Provider
	log    *slog.Logger
	apiKey string
	router chi.Router
}

// New creates a new Server with all routes configured.
func New(sensorProvider *sensor.Provider, apiKey string, log *slog.Logger) *Server {
	s := &Server{
		sensor: sensorProvider,
		log:    log,
		apiKey: apiKey,
		router: chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	s.router.Route("/api/v1/trainings", func(r chi.Router) {
		r.Use(APIKeyAuth(s.apiKey))
		r.Post("/", s.handleCompute)
		r.Post("/batch", s.handleComputeBatch)
	})

	s.router.Get("/api/v1/workout-types", s.handleWorkoutTypes)
}

// SetMCP mounts an MCP transport handler at /mcp behind the API key.
func (s *Server) SetMCP(h http.Handler) {
	s.router.With(APIKeyAuth(s.apiKey)).Handle("/mcp", h)
}
