// Package handler exposes directory lookups over HTTP.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"docflow/internal/directory"
	id "docflow/pkg/domain"
	dErrors "docflow/pkg/domain-errors"
	"docflow/pkg/platform/httputil"
	"docflow/pkg/requestcontext"
)

// Service defines the interface for directory lookups.
type Service interface {
	LookupEmployee(ctx context.Context, nameOrID string) (directory.Employee, error)
	LookupOffice(ctx context.Context, officeID id.OfficeID) (directory.Office, error)
}

// Handler wires directory endpoints to the directory service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a directory handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts directory endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Route("/directory", func(r chi.Router) {
		r.Get("/employees/{employeeKey}", h.HandleLookupEmployee)
		r.Get("/offices/{officeID}", h.HandleLookupOffice)
	})
}

// EmployeeResponse is the HTTP representation of a directory employee.
type EmployeeResponse struct {
	ID         id.EmployeeID `json:"id"`
	Name       string        `json:"name"`
	Position   string        `json:"position"`
	Department string        `json:"department"`
	OfficeID   id.OfficeID   `json:"office_id,omitempty"`
}

// OfficeResponse is the HTTP representation of a directory office.
type OfficeResponse struct {
	ID   id.OfficeID `json:"id"`
	Name string      `json:"name"`
}

// HandleLookupEmployee handles GET /directory/employees/{employeeKey}.
// The key is either an employee UUID or an exact display name.
func (h *Handler) HandleLookupEmployee(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if requestcontext.EmployeeID(ctx).IsNil() {
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "authentication required"))
		return
	}

	employee, err := h.service.LookupEmployee(ctx, chi.URLParam(r, "employeeKey"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, EmployeeResponse{
		ID:         employee.ID,
		Name:       employee.Name,
		Position:   employee.Position,
		Department: employee.Department,
		OfficeID:   employee.OfficeID,
	})
}

// HandleLookupOffice handles GET /directory/offices/{officeID}.
func (h *Handler) HandleLookupOffice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if requestcontext.EmployeeID(ctx).IsNil() {
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "authentication required"))
		return
	}

	officeID, err := id.ParseOfficeID(chi.URLParam(r, "officeID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	office, err := h.service.LookupOffice(ctx, officeID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, OfficeResponse{ID: office.ID, Name: office.Name})
}
