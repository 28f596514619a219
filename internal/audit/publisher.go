package audit

import (
	"context"
	"time"

	id "docflow/pkg/domain"
)

// Publisher captures structured audit events. It is append-only and uses the
// storage layer for persistence so tests can swap sinks easily.
type Publisher struct {
	store Store
}

func NewPublisher(store Store) *Publisher {
	return &Publisher{store: store}
}

func (p *Publisher) Emit(ctx context.Context, event Event) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	return p.store.Append(ctx, event)
}

func (p *Publisher) ListByActor(ctx context.Context, actorID id.EmployeeID) ([]Event, error) {
	return p.store.ListByActor(ctx, actorID)
}

func (p *Publisher) ListByDocument(ctx context.Context, docID id.DocumentID) ([]Event, error) {
	return p.store.ListByDocument(ctx, docID)
}
