package toast

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/toastkit/pkg/feed"
	"github.com/dmitrymomot/toastkit/pkg/logger"
)

// Snapshot is the read-only view of the active notification set published
// to feed subscribers after every mutation.
type Snapshot struct {
	Active []Notification `json:"active"`
}

// Dispatcher mediates all mutation of the active notification set. One
// dispatcher owns one set; collaborators never mutate the set directly.
// All methods are safe for concurrent use.
type Dispatcher struct {
	store  *store
	feed   *feed.Feed[Snapshot]
	logger *slog.Logger

	newID func() string
	after func(time.Duration, func()) *time.Timer
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithLogger sets the logger for the Dispatcher.
func WithLogger(l *slog.Logger) DispatcherOption {
	return func(d *Dispatcher) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithFeedBuffer sets the per-subscriber snapshot buffer size.
// Default is 8 if not specified.
func WithFeedBuffer(size int) DispatcherOption {
	return func(d *Dispatcher) {
		if size > 0 {
			d.feed = feed.New[Snapshot](size)
		}
	}
}

// WithIDFunc overrides id generation. Ids must be unique among
// concurrently-live notifications. Intended for tests.
func WithIDFunc(fn func() string) DispatcherOption {
	return func(d *Dispatcher) {
		if fn != nil {
			d.newID = fn
		}
	}
}

// WithAfterFunc overrides the timer facility used for expiry scheduling.
// Intended for tests.
func WithAfterFunc(fn func(time.Duration, func()) *time.Timer) DispatcherOption {
	return func(d *Dispatcher) {
		if fn != nil {
			d.after = fn
		}
	}
}

// New creates a dispatcher with an empty active set.
func New(opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		store:  newStore(),
		feed:   feed.New[Snapshot](8),
		logger: slog.Default(),
		newID:  func() string { return uuid.New().String() },
		after:  time.AfterFunc,
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Add appends a new notification to the active set and returns the created
// record. When a positive duration is set, a one-shot expiry is armed that
// removes the record after the duration elapses; the timer firing after an
// earlier explicit dismiss is a harmless no-op.
func (d *Dispatcher) Add(message string, opts ...Option) Notification {
	n := Notification{
		ID:        d.newID(),
		Message:   message,
		CreatedAt: time.Now(),
	}

	for _, opt := range opts {
		opt(&n)
	}

	d.store.append(n)
	d.publish()

	if n.Duration > 0 {
		id := n.ID
		// No cancellation on early removal: the timer fires and no-ops
		// against an absent id. See the expiry scheduling notes in doc.go.
		d.after(n.Duration, func() {
			d.expire(id)
		})
	}

	d.logger.LogAttrs(context.Background(), slog.LevelDebug, "notification added",
		logger.NotificationID(n.ID),
		logger.Variant(string(n.Variant)),
		logger.Position(string(n.Position)),
		logger.Count(d.store.len()),
		slog.Duration("duration", n.Duration),
	)

	return n
}

// Remove deletes the notification with the given id from the active set.
// Removing an unknown or already-removed id is a no-op, never an error.
func (d *Dispatcher) Remove(id string) {
	if d.store.remove(id) {
		d.publish()
		d.logger.LogAttrs(context.Background(), slog.LevelDebug, "notification removed",
			logger.NotificationID(id),
			logger.Count(d.store.len()),
		)
	}
}

// expire is the timer callback for scheduled removal.
func (d *Dispatcher) expire(id string) {
	if d.store.remove(id) {
		d.publish()
		d.logger.LogAttrs(context.Background(), slog.LevelDebug, "notification expired",
			logger.NotificationID(id),
			logger.Count(d.store.len()),
		)
	}
}

// Active returns a copy of the active notification set in insertion order.
func (d *Dispatcher) Active() []Notification {
	return d.store.snapshot()
}

// Len reports the current size of the active set.
func (d *Dispatcher) Len() int {
	return d.store.len()
}

// Subscribe returns a read-only feed of active-set snapshots. The current
// snapshot is delivered immediately; a new one follows every add, dismiss,
// and expiry. The subscription is cleaned up when ctx is cancelled.
func (d *Dispatcher) Subscribe(ctx context.Context) *feed.Subscriber[Snapshot] {
	return d.feed.Subscribe(ctx)
}

// Snapshot returns the current read-only view of the active set.
func (d *Dispatcher) Snapshot() Snapshot {
	return Snapshot{Active: d.store.snapshot()}
}

// Close shuts down the snapshot feed. Pending expiry timers may still fire
// afterwards; they no-op against the closed feed and drained set.
func (d *Dispatcher) Close() error {
	return d.feed.Close()
}

func (d *Dispatcher) publish() {
	d.feed.Publish(Snapshot{Active: d.store.snapshot()})
}
