package audit

import (
	"context"
	"errors"
)

// Sink receives emitted audit events. Publisher, ChannelSink, and the Kafka
// publisher all implement it.
type Sink interface {
	Emit(ctx context.Context, event Event) error
}

// FanOut delivers each event to every configured sink. Delivery is
// best-effort per sink: one failing sink does not stop the others, and all
// failures are joined into the returned error.
type FanOut struct {
	sinks []Sink
}

func NewFanOut(sinks ...Sink) *FanOut {
	return &FanOut{sinks: sinks}
}

func (f *FanOut) Emit(ctx context.Context, event Event) error {
	var errs []error
	for _, sink := range f.sinks {
		if err := sink.Emit(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// ChannelSink hands events to a background worker through a channel, keeping
// slow persistence off the request path. Emit blocks until the worker accepts
// the event or the context is cancelled; events are never silently dropped.
type ChannelSink struct {
	inbox chan<- Event
}

func NewChannelSink(inbox chan<- Event) *ChannelSink {
	return &ChannelSink{inbox: inbox}
}

func (s *ChannelSink) Emit(ctx context.Context, event Event) error {
	select {
	case s.inbox <- event:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
