package sim

import "errors"

// ErrPoolExhausted is returned by Allocate when every slot is active.
// Callers drop the spawn; it never propagates further.
var ErrPoolExhausted = errors.New("pool exhausted")

// Pool is a fixed-capacity slot array. Slots are addressed by a stable index
// handle; allocation takes the first inactive slot.
type Pool[T any] struct {
	items  []T
	active []bool
	count  int
}

// NewPool allocates all slots up front. Nothing is allocated afterwards.
func NewPool[T any](capacity int) *Pool[T] {
	return &Pool[T]{
		items:  make([]T, capacity),
		active: make([]bool, capacity),
	}
}

// Allocate marks the first free slot active, zeroes it and returns its index.
func (p *Pool[T]) Allocate() (int, error) {
	for i, on := range p.active {
		if !on {
			var zero T
			p.items[i] = zero
			p.active[i] = true
			p.count++
			return i, nil
		}
	}
	return -1, ErrPoolExhausted
}

// Release clears the active flag of slot i. Releasing a free slot is a no-op.
func (p *Pool[T]) Release(i int) {
	if i < 0 || i >= len(p.active) || !p.active[i] {
		return
	}
	p.active[i] = false
	p.count--
}

// Get returns the slot at i regardless of its active flag.
func (p *Pool[T]) Get(i int) *T { return &p.items[i] }

// Active reports whether slot i is in use.
func (p *Pool[T]) Active(i int) bool { return p.active[i] }

// Cap returns the fixed capacity.
func (p *Pool[T]) Cap() int { return len(p.items) }

// Len returns the number of active slots.
func (p *Pool[T]) Len() int { return p.count }

// Free returns the number of inactive slots.
func (p *Pool[T]) Free() int { return len(p.items) - p.count }

// Clear releases every slot and zeroes the backing storage.
func (p *Pool[T]) Clear() {
	var zero T
	for i := range p.items {
		p.items[i] = zero
		p.active[i] = false
	}
	p.count = 0
}

// Each calls fn for every active slot in index order. fn may release the
// slot it is given.
func (p *Pool[T]) Each(fn func(i int, v *T)) {
	for i := range p.items {
		if p.active[i] {
			fn(i, &p.items[i])
		}
	}
}
