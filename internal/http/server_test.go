package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mauv0809/volleystat/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePinger struct{ err error }

func (f fakePinger) PingContext(context.Context) error { return f.err }

func setupServer(t *testing.T, db Pinger, inngest http.Handler) *Server {
	t.Helper()
	reg := prometheus.NewRegistry()
	svc := metrics.NewService(reg)
	svc.IncMutation(metrics.EntityTeam)
	return NewServer(db, metrics.NewMetricsHandler(reg), inngest)
}

func TestServer(t *testing.T) {
	t.Run("health ok", func(t *testing.T) {
		// Setup
		s := setupServer(t, fakePinger{}, nil)
		rr := httptest.NewRecorder()

		// Execute
		s.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "OK!", rr.Body.String())
	})

	t.Run("health with database down", func(t *testing.T) {
		s := setupServer(t, fakePinger{err: errors.New("connection refused")}, nil)
		rr := httptest.NewRecorder()

		s.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health?verbose=true", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	})

	t.Run("metrics", func(t *testing.T) {
		s := setupServer(t, fakePinger{}, nil)
		rr := httptest.NewRecorder()

		s.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `volleystat_mutations_total{entity="team"} 1`)
	})

	t.Run("inngest route only when configured", func(t *testing.T) {
		rr := httptest.NewRecorder()
		setupServer(t, fakePinger{}, nil).ServeHTTP(rr, httptest.NewRequest(http.MethodPut, "/api/inngest", nil))
		assert.Equal(t, http.StatusNotFound, rr.Code)

		called := false
		inngest := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			w.WriteHeader(http.StatusOK)
		})
		rr = httptest.NewRecorder()
		setupServer(t, fakePinger{}, inngest).ServeHTTP(rr, httptest.NewRequest(http.MethodPut, "/api/inngest", nil))
		assert.True(t, called)
		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestChain(t *testing.T) {
	var order []string
	mw := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}
	h := Chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { order = append(order, "handler") }), mw("first"), mw("second"))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, []string{"first", "second", "handler"}, order)
}
