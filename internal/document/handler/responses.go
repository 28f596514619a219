package handler

import (
	"time"

	"docflow/internal/workflow"
	id "docflow/pkg/domain"
)

// DocumentResponse is the HTTP representation of a document snapshot. Status
// carries the effective status: a stored approval that still has a pending
// stage renders as processing, so clients never see a premature approval.
type DocumentResponse struct {
	ID            id.DocumentID     `json:"id"`
	Category      string            `json:"category"`
	Title         string            `json:"title"`
	SubmittedBy   string            `json:"submitted_by"`
	Department    string            `json:"department"`
	Status        string            `json:"status"`
	StoredStatus  string            `json:"stored_status"`
	CurrentOffice string            `json:"current_office"`
	NextOffice    string            `json:"next_office"`
	AssignedTo    []id.EmployeeID   `json:"assigned_to,omitempty"`
	Reviewer      string            `json:"reviewer,omitempty"`
	Comments      string            `json:"comments,omitempty"`
	ReviewDate    *time.Time        `json:"review_date,omitempty"`
	DateUploaded  time.Time         `json:"date_uploaded"`
	ExpectedHours float64           `json:"expected_hours"`
	AttachmentRef string            `json:"attachment_ref,omitempty"`
	Version       int64             `json:"version"`
	History       []RoutingResponse `json:"history,omitempty"`
}

// RoutingResponse is one ledger entry in a document response.
type RoutingResponse struct {
	Office      string    `json:"office"`
	ToOffice    string    `json:"to_office,omitempty"`
	Action      string    `json:"action"`
	PerformedBy string    `json:"performed_by"`
	Timestamp   time.Time `json:"timestamp"`
	Comments    string    `json:"comments,omitempty"`
}

// TimeReportResponse is the HTTP response for GET /documents/{documentID}/time-report.
type TimeReportResponse struct {
	ExpectedHours  float64 `json:"expected_hours"`
	SpentHours     float64 `json:"spent_hours"`
	RemainingHours float64 `json:"remaining_hours"`
	Exceeded       bool    `json:"exceeded"`
	Percentage     float64 `json:"percentage"`
	IsApproved     bool    `json:"is_approved"`
	IsRejected     bool    `json:"is_rejected"`
}

// NextStageResponse is the HTTP response for GET /documents/{documentID}/next-stage.
type NextStageResponse struct {
	NextStage string `json:"next_stage"`
	Terminal  bool   `json:"terminal"`
}

// FromDocument converts a domain document to its HTTP representation.
func FromDocument(doc workflow.Document) DocumentResponse {
	resp := DocumentResponse{
		ID:            doc.ID,
		Category:      string(doc.Category),
		Title:         doc.Title,
		SubmittedBy:   doc.SubmittedBy,
		Department:    doc.Department,
		Status:        string(doc.EffectiveStatus()),
		StoredStatus:  string(doc.Status),
		CurrentOffice: string(doc.CurrentOffice),
		NextOffice:    string(doc.NextOffice),
		AssignedTo:    doc.AssignedTo,
		Reviewer:      doc.Reviewer,
		Comments:      doc.Comments,
		ReviewDate:    doc.ReviewDate,
		DateUploaded:  doc.DateUploaded,
		ExpectedHours: doc.ExpectedHours,
		AttachmentRef: doc.AttachmentRef,
		Version:       doc.Version,
	}
	for _, entry := range doc.History {
		resp.History = append(resp.History, FromRoutingEntry(entry))
	}
	return resp
}

// FromRoutingEntry converts a ledger entry to its HTTP representation.
func FromRoutingEntry(entry workflow.RoutingEntry) RoutingResponse {
	return RoutingResponse{
		Office:      string(entry.Office),
		ToOffice:    string(entry.ToOffice),
		Action:      string(entry.Action),
		PerformedBy: entry.PerformedBy,
		Timestamp:   entry.Timestamp,
		Comments:    entry.Comments,
	}
}

// FromTimeReport converts a domain time report to its HTTP representation.
func FromTimeReport(report workflow.TimeReport) TimeReportResponse {
	return TimeReportResponse{
		ExpectedHours:  report.ExpectedHours,
		SpentHours:     report.SpentHours,
		RemainingHours: report.RemainingHours,
		Exceeded:       report.Exceeded,
		Percentage:     report.Percentage,
		IsApproved:     report.IsApproved,
		IsRejected:     report.IsRejected,
	}
}
