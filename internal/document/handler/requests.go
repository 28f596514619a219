package handler

import (
	"strings"

	"docflow/internal/document"
	"docflow/internal/workflow"
	dErrors "docflow/pkg/domain-errors"
)

// SubmitRequest is the HTTP request body for POST /documents.
type SubmitRequest struct {
	Title         string   `json:"title"`
	Category      string   `json:"category"`
	SubmittedBy   string   `json:"submitted_by"`
	ExpectedHours float64  `json:"expected_hours"`
	AttachmentRef string   `json:"attachment_ref"`
	AssignedTo    []string `json:"assigned_to"`
}

// Validate validates and normalizes the request.
// Implements the Validatable interface for httputil.DecodeAndPrepare.
func (r *SubmitRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}

	r.Title = strings.TrimSpace(r.Title)
	r.SubmittedBy = strings.TrimSpace(r.SubmittedBy)
	if r.SubmittedBy == "" {
		return dErrors.New(dErrors.CodeValidation, "submitted_by is required")
	}
	if len(r.Title) > 500 {
		return dErrors.New(dErrors.CodeValidation, "title must be at most 500 characters")
	}
	if r.ExpectedHours < 0 {
		return dErrors.New(dErrors.CodeValidation, "expected_hours must not be negative")
	}
	return nil
}

// ToDomain builds the service-level submit request. Unknown categories fall
// back to the default chain rather than failing the submission.
func (r *SubmitRequest) ToDomain() document.SubmitRequest {
	return document.SubmitRequest{
		Title:         r.Title,
		Category:      workflow.ParseCategory(r.Category),
		SubmittedBy:   r.SubmittedBy,
		ExpectedHours: r.ExpectedHours,
		AttachmentRef: r.AttachmentRef,
		AssignedTo:    r.AssignedTo,
	}
}

// ActionRequest is the HTTP request body for POST /documents/{documentID}/actions.
type ActionRequest struct {
	Action  string `json:"action"`
	Comment string `json:"comment"`

	parsedAction workflow.Action
}

// Validate validates and parses the request.
func (r *ActionRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}

	r.Action = strings.TrimSpace(r.Action)
	if r.Action == "" {
		return dErrors.New(dErrors.CodeValidation, "action is required")
	}
	action, err := workflow.ParseAction(r.Action)
	if err != nil {
		return err
	}
	r.parsedAction = action
	r.Comment = strings.TrimSpace(r.Comment)
	return nil
}

// ParsedAction returns the validated workflow action.
func (r *ActionRequest) ParsedAction() workflow.Action {
	return r.parsedAction
}
