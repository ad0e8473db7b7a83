// Package observe provides a latest-value cell with channel subscribers.
package observe

import (
	"context"
	"sync"
)

// Value holds the current value of T and notifies subscribers when it changes.
// Slow subscribers only ever see the most recent value; intermediate values are dropped.
type Value[T any] struct {
	mu   sync.Mutex
	v    T
	subs map[int]chan T
	next int
}

// NewValue creates a Value holding initial.
func NewValue[T any](initial T) *Value[T] {
	return &Value[T]{v: initial, subs: make(map[int]chan T)}
}

// Get returns the current value.
func (o *Value[T]) Get() T {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.v
}

// Set replaces the current value and notifies subscribers.
func (o *Value[T]) Set(v T) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.v = v
	for _, ch := range o.subs {
		offer(ch, v)
	}
}

// Update applies fn to the current value under the lock and publishes the result.
func (o *Value[T]) Update(fn func(T) T) T {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.v = fn(o.v)
	for _, ch := range o.subs {
		offer(ch, o.v)
	}
	return o.v
}

// Subscribe returns a channel that first yields the current value and then every
// later one. The channel is closed when ctx is done.
func (o *Value[T]) Subscribe(ctx context.Context) <-chan T {
	ch := make(chan T, 1)

	o.mu.Lock()
	id := o.next
	o.next++
	o.subs[id] = ch
	ch <- o.v
	o.mu.Unlock()

	go func() {
		<-ctx.Done()
		o.mu.Lock()
		delete(o.subs, id)
		close(ch)
		o.mu.Unlock()
	}()
	return ch
}

// offer replaces whatever is buffered in ch with v. Callers hold o.mu.
func offer[T any](ch chan T, v T) {
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- v:
	default:
	}
}
