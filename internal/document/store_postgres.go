package document

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"docflow/internal/workflow"
	id "docflow/pkg/domain"
	"docflow/pkg/platform/sentinel"
)

// PostgresStore persists document snapshots with optimistic concurrency. The
// routing ledger and assignee set travel as JSONB inside the row: a snapshot
// is loaded and saved whole, and the version column arbitrates writers.
//
// Schema:
//
//	CREATE TABLE documents (
//	    id              UUID PRIMARY KEY,
//	    category        TEXT NOT NULL,
//	    title           TEXT NOT NULL DEFAULT '',
//	    submitted_by    TEXT NOT NULL,
//	    submitter_id    UUID,
//	    department      TEXT NOT NULL DEFAULT '',
//	    status          TEXT NOT NULL,
//	    current_office  TEXT NOT NULL DEFAULT '',
//	    next_office     TEXT NOT NULL DEFAULT '',
//	    assigned_to     JSONB NOT NULL DEFAULT '[]',
//	    current_handler UUID,
//	    history         JSONB NOT NULL DEFAULT '[]',
//	    reviewer        TEXT NOT NULL DEFAULT '',
//	    comments        TEXT NOT NULL DEFAULT '',
//	    review_date     TIMESTAMPTZ,
//	    date_uploaded   TIMESTAMPTZ NOT NULL,
//	    expected_hours  DOUBLE PRECISION NOT NULL DEFAULT 24,
//	    attachment_ref  TEXT NOT NULL DEFAULT '',
//	    version         BIGINT NOT NULL DEFAULT 1
//	);
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) Save(ctx context.Context, doc workflow.Document) error {
	history, assigned, err := marshalSnapshot(doc)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO documents
			(id, category, title, submitted_by, submitter_id, department, status,
			 current_office, next_office, assigned_to, current_handler, history,
			 reviewer, comments, review_date, date_uploaded, expected_hours,
			 attachment_ref, version)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,1)
		ON CONFLICT (id) DO NOTHING
	`
	tag, err := s.pool.Exec(ctx, query,
		uuid.UUID(doc.ID), string(doc.Category), doc.Title, doc.SubmittedBy,
		nullableUUID(uuid.UUID(doc.SubmitterID)), doc.Department, string(doc.Status),
		string(doc.CurrentOffice), string(doc.NextOffice), assigned,
		nullableUUID(uuid.UUID(doc.CurrentHandler)), history,
		doc.Reviewer, doc.Comments, doc.ReviewDate, doc.DateUploaded,
		doc.ExpectedHours, doc.AttachmentRef,
	)
	if err != nil {
		return fmt.Errorf("insert document: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return sentinel.ErrConflict
	}
	return nil
}

// Update saves a snapshot only if the stored version still matches; the
// returned copy carries the incremented version.
func (s *PostgresStore) Update(ctx context.Context, doc workflow.Document) (workflow.Document, error) {
	history, assigned, err := marshalSnapshot(doc)
	if err != nil {
		return workflow.Document{}, err
	}
	query := `
		UPDATE documents SET
			status = $3, current_office = $4, next_office = $5,
			assigned_to = $6, current_handler = $7, history = $8,
			reviewer = $9, comments = $10, review_date = $11,
			expected_hours = $12, version = version + 1
		WHERE id = $1 AND version = $2
	`
	tag, err := s.pool.Exec(ctx, query,
		uuid.UUID(doc.ID), doc.Version,
		string(doc.Status), string(doc.CurrentOffice), string(doc.NextOffice),
		assigned, nullableUUID(uuid.UUID(doc.CurrentHandler)), history,
		doc.Reviewer, doc.Comments, doc.ReviewDate, doc.ExpectedHours,
	)
	if err != nil {
		return workflow.Document{}, fmt.Errorf("update document: %w", err)
	}
	if tag.RowsAffected() == 0 {
		// Either the row is gone or another writer got there first.
		if _, findErr := s.FindByID(ctx, doc.ID); errors.Is(findErr, sentinel.ErrNotFound) {
			return workflow.Document{}, sentinel.ErrNotFound
		}
		return workflow.Document{}, sentinel.ErrVersionConflict
	}
	doc.Version++
	return doc, nil
}

func (s *PostgresStore) FindByID(ctx context.Context, docID id.DocumentID) (workflow.Document, error) {
	row := s.pool.QueryRow(ctx, selectDocuments+` WHERE id = $1`, uuid.UUID(docID))
	doc, err := scanDocument(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return workflow.Document{}, sentinel.ErrNotFound
		}
		return workflow.Document{}, err
	}
	return doc, nil
}

func (s *PostgresStore) List(ctx context.Context) ([]workflow.Document, error) {
	rows, err := s.pool.Query(ctx, selectDocuments+` ORDER BY date_uploaded`)
	if err != nil {
		return nil, fmt.Errorf("query documents: %w", err)
	}
	defer rows.Close()

	var out []workflow.Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, rows.Err()
}

const selectDocuments = `
	SELECT id, category, title, submitted_by, submitter_id, department, status,
	       current_office, next_office, assigned_to, current_handler, history,
	       reviewer, comments, review_date, date_uploaded, expected_hours,
	       attachment_ref, version
	FROM documents
`

func scanDocument(row pgx.Row) (workflow.Document, error) {
	var (
		doc            workflow.Document
		docID          uuid.UUID
		submitterID    *uuid.UUID
		currentHandler *uuid.UUID
		category       string
		status         string
		currentOffice  string
		nextOffice     string
		assigned       []byte
		history        []byte
		reviewDate     *time.Time
	)
	err := row.Scan(&docID, &category, &doc.Title, &doc.SubmittedBy, &submitterID,
		&doc.Department, &status, &currentOffice, &nextOffice, &assigned,
		&currentHandler, &history, &doc.Reviewer, &doc.Comments, &reviewDate,
		&doc.DateUploaded, &doc.ExpectedHours, &doc.AttachmentRef, &doc.Version)
	if err != nil {
		return workflow.Document{}, err
	}

	doc.ID = id.DocumentID(docID)
	doc.Category = workflow.Category(category)
	doc.Status = workflow.Status(status)
	doc.CurrentOffice = workflow.Position(currentOffice)
	doc.NextOffice = workflow.Position(nextOffice)
	doc.ReviewDate = reviewDate
	if submitterID != nil {
		doc.SubmitterID = id.EmployeeID(*submitterID)
	}
	if currentHandler != nil {
		doc.CurrentHandler = id.EmployeeID(*currentHandler)
	}
	if err := json.Unmarshal(history, &doc.History); err != nil {
		return workflow.Document{}, fmt.Errorf("unmarshal history: %w", err)
	}
	var assignedIDs []id.EmployeeID
	if err := json.Unmarshal(assigned, &assignedIDs); err != nil {
		return workflow.Document{}, fmt.Errorf("unmarshal assignees: %w", err)
	}
	doc.AssignedTo = assignedIDs
	return doc, nil
}

func marshalSnapshot(doc workflow.Document) (history, assigned []byte, err error) {
	history, err = json.Marshal(doc.History)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal history: %w", err)
	}
	if doc.History == nil {
		history = []byte("[]")
	}
	assigned, err = json.Marshal(doc.AssignedTo)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal assignees: %w", err)
	}
	if doc.AssignedTo == nil {
		assigned = []byte("[]")
	}
	return history, assigned, nil
}

func nullableUUID(u uuid.UUID) *uuid.UUID {
	if u == uuid.Nil {
		return nil
	}
	return &u
}
