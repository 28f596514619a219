// Package httptransport assembles the public HTTP surface: middleware stack,
// health and metrics endpoints, and the authenticated feature routes.
package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	authmw "docflow/pkg/platform/middleware/auth"
	"docflow/pkg/platform/middleware/requesttime"
	"docflow/pkg/requestcontext"
)

// Registrar mounts a feature's endpoints on the router.
type Registrar interface {
	Register(r chi.Router)
}

// NewRouter wires the middleware stack and all feature routes. Everything
// under the authenticated group requires a valid bearer token; health and
// metrics stay open for probes and scrapers.
func NewRouter(logger *slog.Logger, validator authmw.JWTValidator, features ...Registrar) chi.Router {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(requesttime.Middleware)
	r.Use(propagateRequestID)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(authmw.RequireAuth(validator, logger))
		for _, feature := range features {
			feature.Register(r)
		}
	})

	return r
}

// propagateRequestID copies chi's request ID into the request context used by
// services and log lines.
func propagateRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if reqID := chimiddleware.GetReqID(ctx); reqID != "" {
			ctx = requestcontext.WithRequestID(ctx, reqID)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
