// Package audit captures the organization-wide trail of routing decisions.
// Unlike a document's routing ledger, which belongs to one document, audit
// events cut across documents and are keyed by actor for compliance queries.
package audit

import (
	"context"
	"time"

	id "docflow/pkg/domain"
)

// Event is emitted from domain logic to capture key actions. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	Timestamp  time.Time     `json:"timestamp"`
	ActorID    id.EmployeeID `json:"actor_id"`
	ActorName  string        `json:"actor_name"`
	DocumentID id.DocumentID `json:"document_id"`
	Action     string        `json:"action"`
	Stage      string        `json:"stage,omitempty"`
	Decision   string        `json:"decision,omitempty"`
	Reason     string        `json:"reason,omitempty"`
	RequestID  string        `json:"request_id,omitempty"`
}

// Store is an append-only sink for audit events.
type Store interface {
	Append(ctx context.Context, event Event) error
	ListByActor(ctx context.Context, actorID id.EmployeeID) ([]Event, error)
	ListByDocument(ctx context.Context, docID id.DocumentID) ([]Event, error)
}
