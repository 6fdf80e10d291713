// Package relay forwards API events to a message bus.
package relay

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/fivetwenty-io/stripe-client/internal/constants"
	"github.com/fivetwenty-io/stripe-client/pkg/stripe"
)

// Static errors for err113 compliance.
var (
	ErrEventListerRequired = errors.New("event lister is required")
	ErrPublisherRequired   = errors.New("publisher is required")
	ErrInvalidInterval     = errors.New("poll interval must be positive")
)

// EventLister lists events. stripe.EventsClient satisfies it.
type EventLister interface {
	List(ctx context.Context, params *stripe.EventListParams) (*stripe.List[stripe.Event], error)
}

// Publisher delivers one encoded event. The id may be used for deduplication.
type Publisher interface {
	Publish(ctx context.Context, subject, id string, data []byte) error
	Flush(ctx context.Context) error
}

// Forwarder publishes events newer than a cursor, oldest first.
type Forwarder struct {
	events    EventLister
	publisher Publisher
	prefix    string
	pageSize  int64
	types     []string
	logger    stripe.Logger
}

// Option configures a Forwarder.
type Option func(*Forwarder)

// WithSubjectPrefix sets the prefix of every subject.
func WithSubjectPrefix(prefix string) Option {
	return func(f *Forwarder) {
		f.prefix = prefix
	}
}

// WithPageSize sets the number of events requested per page.
func WithPageSize(size int64) Option {
	return func(f *Forwarder) {
		f.pageSize = size
	}
}

// WithTypes restricts forwarding to the given event types.
func WithTypes(types ...string) Option {
	return func(f *Forwarder) {
		f.types = types
	}
}

// WithLogger sets the logger.
func WithLogger(logger stripe.Logger) Option {
	return func(f *Forwarder) {
		f.logger = logger
	}
}

// NewForwarder creates a forwarder reading from events and writing to publisher.
func NewForwarder(events EventLister, publisher Publisher, opts ...Option) (*Forwarder, error) {
	if events == nil {
		return nil, ErrEventListerRequired
	}

	if publisher == nil {
		return nil, ErrPublisherRequired
	}

	forwarder := &Forwarder{
		events:    events,
		publisher: publisher,
		prefix:    constants.DefaultSubjectPrefix,
		pageSize:  constants.EventPageSize,
	}

	for _, opt := range opts {
		opt(forwarder)
	}

	return forwarder, nil
}

// Subject returns the subject an event is published on.
func (f *Forwarder) Subject(event *stripe.Event) string {
	if f.prefix == "" {
		return event.Type
	}

	return f.prefix + "." + event.Type
}

// Forward publishes every event created after cursor and returns the ID of
// the newest event published. An empty cursor publishes only the latest page.
// On failure the returned cursor still points at the last published event.
func (f *Forwarder) Forward(ctx context.Context, cursor string) (string, error) {
	for {
		params := &stripe.EventListParams{
			ListParams: stripe.ListParams{Limit: stripe.Ptr(f.pageSize)},
			Types:      f.types,
		}
		if cursor != "" {
			params.EndingBefore = stripe.Ptr(cursor)
		}

		page, err := f.events.List(ctx, params)
		if err != nil {
			return cursor, fmt.Errorf("listing events: %w", err)
		}

		if page.Len() == 0 {
			return cursor, nil
		}

		first := cursor == ""

		// Pages are newest first.
		for i := len(page.Data) - 1; i >= 0; i-- {
			event := &page.Data[i]

			err = f.publish(ctx, event)
			if err != nil {
				return cursor, err
			}

			cursor = event.ID
		}

		err = f.publisher.Flush(ctx)
		if err != nil {
			return cursor, fmt.Errorf("flushing publisher: %w", err)
		}

		if first || !page.HasMore {
			return cursor, nil
		}
	}
}

func (f *Forwarder) publish(ctx context.Context, event *stripe.Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encoding event %s: %w", event.ID, err)
	}

	subject := f.Subject(event)

	err = f.publisher.Publish(ctx, subject, event.ID, data)
	if err != nil {
		return fmt.Errorf("publishing event %s: %w", event.ID, err)
	}

	if f.logger != nil {
		f.logger.Debug("Event published", map[string]interface{}{
			"event_id": event.ID,
			"subject":  subject,
		})
	}

	return nil
}

// Run calls Forward every interval until ctx is done, carrying the cursor
// between passes. Failed passes are logged and retried on the next tick.
func (f *Forwarder) Run(ctx context.Context, cursor string, interval time.Duration) error {
	if interval <= 0 {
		return ErrInvalidInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		next, err := f.Forward(ctx, cursor)
		if err != nil && f.logger != nil && ctx.Err() == nil {
			f.logger.Warn("Event forwarding failed", map[string]interface{}{
				"cursor": cursor,
				"error":  err.Error(),
			})
		}

		cursor = next

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
