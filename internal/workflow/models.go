// Package workflow implements the document routing engine: position alias
// resolution, department scoping, the per-category routing table, the status
// state machine, the append-only routing ledger, visibility filtering, and
// approval-time analytics.
//
// Every operation is pure: it takes a document snapshot plus actor data and
// returns a new snapshot and exactly one ledger entry. No function here reads
// the wall clock or performs I/O; "now" is always a parameter.
package workflow

import (
	"time"

	id "docflow/pkg/domain"
)

// Category classifies a document and selects its routing chain.
type Category string

const (
	CategoryEndorsementForm  Category = "endorsement_form"
	CategoryRequestedSubject Category = "requested_subject"
	CategoryFacultyLoading   Category = "faculty_loading"
	CategoryTravelOrder      Category = "travel_order"
	CategoryOther            Category = "other"
)

// ParseCategory converts a raw string to a Category. Unknown values map to
// CategoryOther, which routes through the default chain.
func ParseCategory(s string) Category {
	switch Category(s) {
	case CategoryEndorsementForm, CategoryRequestedSubject, CategoryFacultyLoading, CategoryTravelOrder:
		return Category(s)
	}
	return CategoryOther
}

// Status is the stored workflow state of a document.
//
// Valid status graph:
//
//	Submitted ──► UnderReview ──► Processing ──► Approved
//	     │             │               │
//	     └─────────────┴───────────────┴──► Rejected
//
// Rejected, and Approved with an empty NextOffice, are terminal.
type Status string

const (
	StatusSubmitted   Status = "submitted"
	StatusUnderReview Status = "under_review"
	StatusProcessing  Status = "processing"
	StatusApproved    Status = "approved"
	StatusRejected    Status = "rejected"
)

// EntryAction is the kind of a routing ledger entry.
type EntryAction string

const (
	EntryReceived  EntryAction = "received"
	EntryReviewed  EntryAction = "reviewed"
	EntryForwarded EntryAction = "forwarded"
	EntryApproved  EntryAction = "approved"
	EntryRejected  EntryAction = "rejected"
)

// DefaultExpectedHours is the expected processing duration applied when a
// document does not carry its own.
const DefaultExpectedHours = 24

// RoutingEntry is one immutable record in a document's routing ledger.
type RoutingEntry struct {
	Office      Position    `json:"office"`
	ToOffice    Position    `json:"to_office,omitempty"`
	Action      EntryAction `json:"action"`
	PerformedBy string      `json:"performed_by"`
	Timestamp   time.Time   `json:"timestamp"`
	Comments    string      `json:"comments,omitempty"`
}

// Actor is the acting employee as the engine sees it: identity plus the raw
// position and department strings from the directory. The engine canonicalizes
// internally; callers never pre-normalize.
type Actor struct {
	ID         id.EmployeeID
	Name       string
	Position   string
	Department string
	OfficeName string
}

// Document is a routing snapshot. Services load it, run a pure engine
// operation, and persist the returned copy; the engine never mutates its
// input.
type Document struct {
	ID       id.DocumentID `json:"id"`
	Category Category      `json:"category"`
	Title    string        `json:"title"`

	// SubmittedBy is the free-text submitter name as entered at upload.
	// SubmitterID and Department are resolved against the directory at
	// submission; Department stays empty when the submitter cannot be
	// matched, which makes the document fail closed for routing and
	// department-scoped visibility.
	SubmittedBy string        `json:"submitted_by"`
	SubmitterID id.EmployeeID `json:"submitter_id"`
	Department  string        `json:"department"`

	Status        Status   `json:"status"`
	CurrentOffice Position `json:"current_office"`
	NextOffice    Position `json:"next_office"`

	AssignedTo     []id.EmployeeID `json:"assigned_to"`
	CurrentHandler id.EmployeeID   `json:"current_handler"`

	History History `json:"routing_history"`

	Reviewer   string     `json:"reviewer,omitempty"`
	Comments   string     `json:"comments,omitempty"`
	ReviewDate *time.Time `json:"review_date,omitempty"`

	DateUploaded  time.Time `json:"date_uploaded"`
	ExpectedHours float64   `json:"expected_processing_time_hours"`

	// AttachmentRef is an opaque handle to external blob storage.
	AttachmentRef string `json:"attachment_ref,omitempty"`

	// Version supports optimistic concurrency in persistent stores. The
	// engine itself ignores it; stores reject saves whose version does not
	// match the stored row.
	Version int64 `json:"version"`
}

// IsTerminal reports whether the document accepts no further routing actions.
func (d Document) IsTerminal() bool {
	if d.Status == StatusRejected {
		return true
	}
	return d.Status == StatusApproved && d.NextOffice == PositionNone
}

// EffectiveStatus re-derives the externally visible status from the
// NextOffice-emptiness invariant. A stored "approved" with a pending next
// office is still in flight and must display as processing; the stored field
// is never rewritten to match.
func (d Document) EffectiveStatus() Status {
	if d.Status == StatusApproved && d.NextOffice != PositionNone {
		return StatusProcessing
	}
	return d.Status
}

// IsAssignedTo reports whether the employee is in the assigned set or is the
// current handler.
func (d Document) IsAssignedTo(empID id.EmployeeID) bool {
	if !d.CurrentHandler.IsNil() && d.CurrentHandler == empID {
		return true
	}
	for _, a := range d.AssignedTo {
		if a == empID {
			return true
		}
	}
	return false
}

// clone returns a copy safe to mutate without aliasing the input's slices.
func (d Document) clone() Document {
	out := d
	out.History = append(History(nil), d.History...)
	out.AssignedTo = append([]id.EmployeeID(nil), d.AssignedTo...)
	if d.ReviewDate != nil {
		rd := *d.ReviewDate
		out.ReviewDate = &rd
	}
	return out
}
