package http

import (
	"context"
	"net/http"
)

// Pinger reports whether the backing database is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Server exposes metrics, health and the optional Inngest endpoint.
type Server struct {
	DB             Pinger
	MetricsHandler http.Handler
	InngestHandler http.Handler
	Router         *http.ServeMux
}
