package tween

import "fmt"

// Pool is a generic bounded free list for reusing interpolator and timer
// instances without allocation churn. Get falls back to the factory when
// the free list is empty, so the pool never runs dry; Put retains at most
// MaxSize instances and discards the rest for the garbage collector.
//
// Not thread-safe: concurrent Get and Put calls would corrupt the free
// list. Single-threaded reuse only, like the drivers it recycles.
type Pool[T any] struct {
	free    []T
	factory func() T
	reset   func(T)
	maxSize int
	preload int
}

// NewPool creates a pool that retains at most maxSize instances and
// eagerly constructs preload instances now (and again on each Reset).
// The reset callback runs on every instance returned through Put; nil
// means instances are reused as-is.
//
// Fails fast with ErrInvalidPool when maxSize is not positive or factory
// is nil.
func NewPool[T any](maxSize, preload int, factory func() T, reset func(T)) (*Pool[T], error) {
	if maxSize <= 0 {
		return nil, fmt.Errorf("%w: max size must be positive, got %d", ErrInvalidPool, maxSize)
	}
	if factory == nil {
		return nil, fmt.Errorf("%w: nil factory", ErrInvalidPool)
	}

	if preload < 0 {
		preload = 0
	}
	if preload > maxSize {
		preload = maxSize
	}

	p := &Pool[T]{
		free:    make([]T, 0, maxSize),
		factory: factory,
		reset:   reset,
		maxSize: maxSize,
		preload: preload,
	}
	p.Reset()
	return p, nil
}

// Get returns a previously pooled instance when available, otherwise a
// freshly constructed one.
func (p *Pool[T]) Get() T {
	if n := len(p.free); n > 0 {
		item := p.free[n-1]
		var zero T
		p.free[n-1] = zero // release the reference
		p.free = p.free[:n-1]
		return item
	}
	return p.factory()
}

// Put resets item and returns it to the pool. Reports false when the pool
// is already at its maximum size, in which case the item is discarded.
func (p *Pool[T]) Put(item T) bool {
	if p.reset != nil {
		p.reset(item)
	}
	if len(p.free) >= p.maxSize {
		return false
	}
	p.free = append(p.free, item)
	return true
}

// Len returns the number of instances currently pooled.
func (p *Pool[T]) Len() int {
	return len(p.free)
}

// Cap returns the maximum number of instances the pool retains.
func (p *Pool[T]) Cap() int {
	return p.maxSize
}

// Reset discards all pooled instances and eagerly constructs the preload
// count anew.
func (p *Pool[T]) Reset() {
	clear(p.free)
	p.free = p.free[:0]
	for i := 0; i < p.preload; i++ {
		p.free = append(p.free, p.factory())
	}
}
