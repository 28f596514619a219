package audit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "docflow/pkg/domain"
)

func TestPublisher_StampsTimestamp(t *testing.T) {
	store := NewInMemoryStore()
	publisher := NewPublisher(store)
	actorID := id.NewEmployeeID()

	require.NoError(t, publisher.Emit(context.Background(), Event{
		ActorID: actorID,
		Action:  "approve_and_forward",
	}))

	events, err := publisher.ListByActor(context.Background(), actorID)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.False(t, events[0].Timestamp.IsZero())
}

func TestWorker_DrainsInbox(t *testing.T) {
	store := NewInMemoryStore()
	inbox := make(chan Event, 4)
	worker := NewWorker(store, inbox)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- worker.Run(ctx) }()

	docID := id.NewDocumentID()
	sink := NewChannelSink(inbox)
	require.NoError(t, sink.Emit(ctx, Event{DocumentID: docID, Action: "forward_only", Timestamp: time.Now()}))

	assert.Eventually(t, func() bool {
		events, err := store.ListByDocument(context.Background(), docID)
		return err == nil && len(events) == 1
	}, time.Second, 10*time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}

type failingSink struct{ err error }

func (s failingSink) Emit(context.Context, Event) error { return s.err }

func TestFanOut_DeliversPastFailures(t *testing.T) {
	store := NewInMemoryStore()
	boom := errors.New("kafka down")
	fan := NewFanOut(failingSink{err: boom}, NewPublisher(store))
	docID := id.NewDocumentID()

	err := fan.Emit(context.Background(), Event{DocumentID: docID, Action: "final_approve"})
	assert.ErrorIs(t, err, boom)

	events, listErr := store.ListByDocument(context.Background(), docID)
	require.NoError(t, listErr)
	assert.Len(t, events, 1)
}
