package http

import (
	"net/http"
)

// NewServer builds the router. inngestHandler may be nil.
func NewServer(db Pinger, metricsHandler, inngestHandler http.Handler) *Server {
	server := &Server{
		DB:             db,
		MetricsHandler: metricsHandler,
		InngestHandler: inngestHandler,
		Router:         http.NewServeMux(),
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("/health", Chain(s.HealthCheckHandler(), paramsMiddleware))
	if s.InngestHandler != nil {
		s.Router.Handle("/api/inngest", Chain(s.InngestHandler, paramsMiddleware))
	}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
