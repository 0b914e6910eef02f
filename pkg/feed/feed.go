package feed

import (
	"context"
	"sync"
)

// Subscriber receives published values from a Feed.
// All methods are safe for concurrent use.
type Subscriber[T any] struct {
	ch     chan T
	closed bool
	mu     sync.RWMutex
}

func newSubscriber[T any](bufferSize int) *Subscriber[T] {
	return &Subscriber[T]{
		ch: make(chan T, bufferSize),
	}
}

// Receive returns the channel delivering published values. The channel is
// closed when the subscriber is closed; no more values arrive after that.
func (s *Subscriber[T]) Receive() <-chan T {
	return s.ch
}

// Close closes the subscriber and its receive channel.
// Close is idempotent and safe to call multiple times.
func (s *Subscriber[T]) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.closed {
		close(s.ch)
		s.closed = true
	}
	return nil
}

// send delivers v without blocking. When the buffer is full the oldest
// queued value is discarded first: subscribers consuming render state only
// care about the most recent value, so intermediate ones are droppable.
func (s *Subscriber[T]) send(v T) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return false
	}

	select {
	case s.ch <- v:
		return true
	default:
	}

	// Buffer full: make room by dropping one stale value, then retry once.
	select {
	case <-s.ch:
	default:
	}

	select {
	case s.ch <- v:
		return true
	default:
		return false
	}
}

// Feed is an in-memory latest-value broadcaster. Every published value is
// fanned out to all subscribers without blocking the publisher, and the most
// recent value is retained so that new subscribers receive the current state
// immediately instead of waiting for the next change.
type Feed[T any] struct {
	subscribers map[*Subscriber[T]]struct{}
	latest      T
	hasLatest   bool
	bufferSize  int
	closed      bool
	done        chan struct{}
	mu          sync.RWMutex
	cleanupWg   sync.WaitGroup
}

// New creates a feed whose subscribers buffer up to bufferSize values.
// A minimum buffer size of 1 is enforced so sends never block.
func New[T any](bufferSize int) *Feed[T] {
	return &Feed[T]{
		subscribers: make(map[*Subscriber[T]]struct{}),
		bufferSize:  max(bufferSize, 1),
		done:        make(chan struct{}),
	}
}

// Subscribe registers a new subscriber. If a value has already been
// published, the subscriber receives it immediately. The subscription is
// cleaned up when the provided context is cancelled. Subscribing to a
// closed feed returns an already-closed subscriber.
func (f *Feed[T]) Subscribe(ctx context.Context) *Subscriber[T] {
	f.mu.Lock()
	defer f.mu.Unlock()

	sub := newSubscriber[T](f.bufferSize)
	if f.closed {
		_ = sub.Close()
		return sub
	}

	f.subscribers[sub] = struct{}{}
	if f.hasLatest {
		sub.send(f.latest)
	}

	if ctx.Done() != nil {
		f.cleanupWg.Add(1)
		go func() {
			defer f.cleanupWg.Done()
			// The feed's done channel releases the goroutine when the
			// feed is closed before the subscriber's context ends;
			// otherwise Close would wait on it forever.
			select {
			case <-ctx.Done():
				f.unsubscribe(sub)
			case <-f.done:
			}
		}()
	}

	return sub
}

// Publish retains v as the latest value and fans it out to all subscribers.
// Slow subscribers lose intermediate values rather than blocking the
// publisher.
func (f *Feed[T]) Publish(v T) {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return
	}
	f.latest = v
	f.hasLatest = true
	subs := make([]*Subscriber[T], 0, len(f.subscribers))
	for sub := range f.subscribers {
		subs = append(subs, sub)
	}
	f.mu.Unlock()

	for _, sub := range subs {
		sub.send(v)
	}
}

// Latest returns the most recently published value, if any.
func (f *Feed[T]) Latest() (T, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.latest, f.hasLatest
}

// Close shuts down the feed and closes all subscribers. It is safe to call
// multiple times; after Close, Publish has no effect and Subscribe returns
// closed subscribers.
func (f *Feed[T]) Close() error {
	f.mu.Lock()

	if f.closed {
		f.mu.Unlock()
		return nil
	}

	f.closed = true
	close(f.done)
	for sub := range f.subscribers {
		_ = sub.Close()
	}
	clear(f.subscribers)
	f.mu.Unlock()

	// Wait for context-cleanup goroutines so Close never races unsubscribe.
	f.cleanupWg.Wait()

	return nil
}

func (f *Feed[T]) unsubscribe(sub *Subscriber[T]) {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.subscribers, sub)
	_ = sub.Close()
}
