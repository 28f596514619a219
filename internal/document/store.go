// Package document orchestrates the routing engine over durable storage:
// loading snapshots, running pure workflow operations, and persisting the
// result under optimistic concurrency.
package document

import (
	"context"

	"docflow/internal/workflow"
	id "docflow/pkg/domain"
)

//go:generate mockgen -source=store.go -destination=mocks/store.go -package=mocks

// Store persists document snapshots. Implementations return
// sentinel.ErrNotFound for missing documents and sentinel.ErrVersionConflict
// when an Update races another writer.
//
// Update performs a compare-and-swap on doc.Version: the save succeeds only
// if the stored version still equals the snapshot's, and the returned copy
// carries the incremented version. Two concurrent actions on the same stage
// therefore cannot double-append to the ledger; the loser reloads and
// retries or surfaces the conflict.
type Store interface {
	Save(ctx context.Context, doc workflow.Document) error
	Update(ctx context.Context, doc workflow.Document) (workflow.Document, error)
	FindByID(ctx context.Context, docID id.DocumentID) (workflow.Document, error)
	List(ctx context.Context) ([]workflow.Document, error)
}
