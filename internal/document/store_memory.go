package document

import (
	"context"
	"sync"

	"docflow/internal/workflow"
	id "docflow/pkg/domain"
	"docflow/pkg/platform/sentinel"
)

// InMemoryStore keeps the initial implementation lightweight and testable.
// It enforces the same version CAS semantics as the Postgres store so unit
// tests exercise the conflict path.
type InMemoryStore struct {
	mu        sync.RWMutex
	documents map[id.DocumentID]workflow.Document
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{documents: make(map[id.DocumentID]workflow.Document)}
}

func (s *InMemoryStore) Save(_ context.Context, doc workflow.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.documents[doc.ID]; ok {
		return sentinel.ErrConflict
	}
	doc.Version = 1
	s.documents[doc.ID] = doc
	return nil
}

func (s *InMemoryStore) Update(_ context.Context, doc workflow.Document) (workflow.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.documents[doc.ID]
	if !ok {
		return workflow.Document{}, sentinel.ErrNotFound
	}
	if stored.Version != doc.Version {
		return workflow.Document{}, sentinel.ErrVersionConflict
	}
	doc.Version++
	s.documents[doc.ID] = doc
	return doc, nil
}

func (s *InMemoryStore) FindByID(_ context.Context, docID id.DocumentID) (workflow.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if doc, ok := s.documents[docID]; ok {
		return doc, nil
	}
	return workflow.Document{}, sentinel.ErrNotFound
}

func (s *InMemoryStore) List(_ context.Context) ([]workflow.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]workflow.Document, 0, len(s.documents))
	for _, doc := range s.documents {
		out = append(out, doc)
	}
	return out, nil
}
