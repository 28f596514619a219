package audit

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	id "docflow/pkg/domain"
	txcontext "docflow/pkg/platform/tx"
)

// PostgresStore persists audit events via database/sql. When the caller put a
// transaction in context (pkg/platform/tx), the append joins it so the event
// commits atomically with the document update it records.
//
// Schema:
//
//	CREATE TABLE audit_events (
//	    id          UUID PRIMARY KEY,
//	    occurred_at TIMESTAMPTZ NOT NULL,
//	    actor_id    UUID NOT NULL,
//	    actor_name  TEXT NOT NULL,
//	    document_id UUID NOT NULL,
//	    action      TEXT NOT NULL,
//	    stage       TEXT NOT NULL DEFAULT '',
//	    decision    TEXT NOT NULL DEFAULT '',
//	    reason      TEXT NOT NULL DEFAULT '',
//	    request_id  TEXT NOT NULL DEFAULT ''
//	);
//	CREATE INDEX audit_events_actor_idx ON audit_events (actor_id, occurred_at);
//	CREATE INDEX audit_events_document_idx ON audit_events (document_id, occurred_at);
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

type dbExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func (s *PostgresStore) execer(ctx context.Context) dbExecutor {
	if tx, ok := txcontext.From(ctx); ok {
		return tx
	}
	return s.db
}

func (s *PostgresStore) Append(ctx context.Context, event Event) error {
	query := `
		INSERT INTO audit_events
			(id, occurred_at, actor_id, actor_name, document_id, action, stage, decision, reason, request_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := s.execer(ctx).ExecContext(ctx, query,
		uuid.New(), event.Timestamp,
		uuid.UUID(event.ActorID), event.ActorName,
		uuid.UUID(event.DocumentID), event.Action,
		event.Stage, event.Decision, event.Reason, event.RequestID,
	)
	if err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListByActor(ctx context.Context, actorID id.EmployeeID) ([]Event, error) {
	query := selectEvents + ` WHERE actor_id = $1 ORDER BY occurred_at`
	return s.list(ctx, query, uuid.UUID(actorID))
}

func (s *PostgresStore) ListByDocument(ctx context.Context, docID id.DocumentID) ([]Event, error) {
	query := selectEvents + ` WHERE document_id = $1 ORDER BY occurred_at`
	return s.list(ctx, query, uuid.UUID(docID))
}

const selectEvents = `
	SELECT occurred_at, actor_id, actor_name, document_id, action, stage, decision, reason, request_id
	FROM audit_events
`

func (s *PostgresStore) list(ctx context.Context, query string, arg any) ([]Event, error) {
	rows, err := s.execer(ctx).QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("query audit events: %w", err)
	}
	defer rows.Close()

	var out []Event
	for rows.Next() {
		var (
			event   Event
			actorID uuid.UUID
			docID   uuid.UUID
		)
		if err := rows.Scan(&event.Timestamp, &actorID, &event.ActorName, &docID,
			&event.Action, &event.Stage, &event.Decision, &event.Reason, &event.RequestID); err != nil {
			return nil, fmt.Errorf("scan audit event: %w", err)
		}
		event.ActorID = id.EmployeeID(actorID)
		event.DocumentID = id.DocumentID(docID)
		out = append(out, event)
	}
	return out, rows.Err()
}
