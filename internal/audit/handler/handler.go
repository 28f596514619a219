// Package handler exposes audit trail queries over HTTP.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"docflow/internal/audit"
	id "docflow/pkg/domain"
	dErrors "docflow/pkg/domain-errors"
	"docflow/pkg/platform/httputil"
	"docflow/pkg/requestcontext"
)

// Service defines the interface for audit trail queries.
type Service interface {
	ListByActor(ctx context.Context, actorID id.EmployeeID) ([]audit.Event, error)
	ListByDocument(ctx context.Context, docID id.DocumentID) ([]audit.Event, error)
}

// Handler wires audit endpoints to the audit publisher.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs an audit handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts audit endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Route("/audit", func(r chi.Router) {
		r.Get("/documents/{documentID}", h.HandleListByDocument)
		r.Get("/actors/{actorID}", h.HandleListByActor)
	})
}

// HandleListByDocument handles GET /audit/documents/{documentID}.
func (h *Handler) HandleListByDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if requestcontext.EmployeeID(ctx).IsNil() {
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "authentication required"))
		return
	}

	docID, err := id.ParseDocumentID(chi.URLParam(r, "documentID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	events, err := h.service.ListByDocument(ctx, docID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, events)
}

// HandleListByActor handles GET /audit/actors/{actorID}.
func (h *Handler) HandleListByActor(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if requestcontext.EmployeeID(ctx).IsNil() {
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "authentication required"))
		return
	}

	actorID, err := id.ParseEmployeeID(chi.URLParam(r, "actorID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	events, err := h.service.ListByActor(ctx, actorID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, events)
}
