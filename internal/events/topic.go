// Package events carries data-change notifications from the stores to
// whoever recomputes derived state.
package events

import (
	"context"
	"sync"
)

// Topic is an in-process broadcast of values of type T. A new subscriber
// first receives the most recently published value, then every later one.
// Subscribers that fall behind skip intermediate values but always end up
// with the latest.
type Topic[T any] struct {
	mu     sync.Mutex
	latest T
	has    bool
	subs   map[chan T]struct{}
}

// NewTopic creates an empty topic.
func NewTopic[T any]() *Topic[T] {
	return &Topic[T]{subs: make(map[chan T]struct{})}
}

// Publish records v as the latest value and hands it to every subscriber.
// It never blocks.
func (t *Topic[T]) Publish(v T) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.latest = v
	t.has = true
	for ch := range t.subs {
		offer(ch, v)
	}
}

// current returns the most recently published value, if any.
func (t *Topic[T]) current() (T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.latest, t.has
}

// Subscribe returns a channel of published values. The channel is closed
// once ctx is done.
func (t *Topic[T]) Subscribe(ctx context.Context) <-chan T {
	ch := make(chan T, 1)

	t.mu.Lock()
	if t.has {
		ch <- t.latest
	}
	t.subs[ch] = struct{}{}
	t.mu.Unlock()

	go func() {
		<-ctx.Done()
		t.mu.Lock()
		delete(t.subs, ch)
		close(ch)
		t.mu.Unlock()
	}()

	return ch
}

// Subscribers returns the number of live subscriptions.
func (t *Topic[T]) Subscribers() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.subs)
}

// offer replaces any undelivered value in ch with v. Callers hold the topic
// lock, so nothing else sends on ch concurrently.
func offer[T any](ch chan T, v T) {
	select {
	case ch <- v:
		return
	default:
	}
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- v:
	default:
	}
}
