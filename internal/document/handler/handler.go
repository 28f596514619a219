// Package handler exposes document routing over HTTP. All endpoints require
// an authenticated employee; the workflow engine itself decides what that
// employee may see or do.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"docflow/internal/document"
	"docflow/internal/workflow"
	id "docflow/pkg/domain"
	dErrors "docflow/pkg/domain-errors"
	"docflow/pkg/platform/httputil"
	"docflow/pkg/requestcontext"
)

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service

// Service defines the interface for document operations.
type Service interface {
	Submit(ctx context.Context, req document.SubmitRequest) (workflow.Document, error)
	ApplyAction(ctx context.Context, docID id.DocumentID, action workflow.Action, actorID id.EmployeeID, comment string) (workflow.Document, workflow.RoutingEntry, error)
	Acknowledge(ctx context.Context, docID id.DocumentID, actorID id.EmployeeID) (workflow.Document, error)
	NextStage(ctx context.Context, docID id.DocumentID, actorID id.EmployeeID) (workflow.Position, error)
	VisibleDocuments(ctx context.Context, employeeID id.EmployeeID) ([]workflow.Document, error)
	History(ctx context.Context, docID id.DocumentID, employeeID id.EmployeeID) (workflow.History, error)
	TimeReport(ctx context.Context, docID id.DocumentID, employeeID id.EmployeeID) (workflow.TimeReport, error)
}

// Handler wires document endpoints to the document service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a document handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts document endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Route("/documents", func(r chi.Router) {
		r.Post("/", h.HandleSubmit)
		r.Get("/", h.HandleList)
		r.Route("/{documentID}", func(r chi.Router) {
			r.Post("/actions", h.HandleAction)
			r.Post("/acknowledge", h.HandleAcknowledge)
			r.Get("/history", h.HandleHistory)
			r.Get("/time-report", h.HandleTimeReport)
			r.Get("/next-stage", h.HandleNextStage)
		})
	})
}

// HandleSubmit handles POST /documents requests.
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	if _, ok := h.authenticated(w, ctx); !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[SubmitRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	doc, err := h.service.Submit(ctx, req.ToDomain())
	if err != nil {
		h.logger.ErrorContext(ctx, "document submission failed",
			"request_id", requestID,
			"submitted_by", req.SubmittedBy,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, FromDocument(doc))
}

// HandleAction handles POST /documents/{documentID}/actions requests.
func (h *Handler) HandleAction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	actorID, ok := h.authenticated(w, ctx)
	if !ok {
		return
	}
	docID, ok := h.documentID(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[ActionRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	doc, _, err := h.service.ApplyAction(ctx, docID, req.ParsedAction(), actorID, req.Comment)
	if err != nil {
		h.logger.WarnContext(ctx, "workflow action refused",
			"request_id", requestID,
			"document_id", docID,
			"action", req.Action,
			"actor_id", actorID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "workflow action applied",
		"request_id", requestID,
		"document_id", docID,
		"action", req.Action,
		"status", doc.Status,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, FromDocument(doc))
}

// HandleAcknowledge handles POST /documents/{documentID}/acknowledge requests.
func (h *Handler) HandleAcknowledge(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actorID, ok := h.authenticated(w, ctx)
	if !ok {
		return
	}
	docID, ok := h.documentID(w, r)
	if !ok {
		return
	}

	doc, err := h.service.Acknowledge(ctx, docID, actorID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromDocument(doc))
}

// HandleList handles GET /documents requests, returning only documents the
// authenticated employee is permitted to see.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	employeeID, ok := h.authenticated(w, ctx)
	if !ok {
		return
	}

	docs, err := h.service.VisibleDocuments(ctx, employeeID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	out := make([]DocumentResponse, 0, len(docs))
	for _, doc := range docs {
		out = append(out, FromDocument(doc))
	}
	httputil.WriteJSON(w, http.StatusOK, out)
}

// HandleHistory handles GET /documents/{documentID}/history requests.
func (h *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	employeeID, ok := h.authenticated(w, ctx)
	if !ok {
		return
	}
	docID, ok := h.documentID(w, r)
	if !ok {
		return
	}

	history, err := h.service.History(ctx, docID, employeeID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	out := make([]RoutingResponse, 0, len(history))
	for _, entry := range history {
		out = append(out, FromRoutingEntry(entry))
	}
	httputil.WriteJSON(w, http.StatusOK, out)
}

// HandleTimeReport handles GET /documents/{documentID}/time-report requests.
func (h *Handler) HandleTimeReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	employeeID, ok := h.authenticated(w, ctx)
	if !ok {
		return
	}
	docID, ok := h.documentID(w, r)
	if !ok {
		return
	}

	report, err := h.service.TimeReport(ctx, docID, employeeID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromTimeReport(report))
}

// HandleNextStage handles GET /documents/{documentID}/next-stage requests.
func (h *Handler) HandleNextStage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actorID, ok := h.authenticated(w, ctx)
	if !ok {
		return
	}
	docID, ok := h.documentID(w, r)
	if !ok {
		return
	}

	next, err := h.service.NextStage(ctx, docID, actorID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, NextStageResponse{
		NextStage: string(next),
		Terminal:  next == workflow.PositionNone,
	})
}

func (h *Handler) authenticated(w http.ResponseWriter, ctx context.Context) (id.EmployeeID, bool) {
	employeeID := requestcontext.EmployeeID(ctx)
	if employeeID.IsNil() {
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "authentication required"))
		return id.EmployeeID{}, false
	}
	return employeeID, true
}

func (h *Handler) documentID(w http.ResponseWriter, r *http.Request) (id.DocumentID, bool) {
	docID, err := id.ParseDocumentID(chi.URLParam(r, "documentID"))
	if err != nil {
		httputil.WriteError(w, err)
		return id.DocumentID{}, false
	}
	return docID, true
}
