package typedpool

import "sync"

// Pool is a typed sync.Pool. Values are passed to the reset
// function before they go back into the pool.
type Pool[T any] struct {
	pool  sync.Pool
	reset func(value *T)
}

func New[T any](reset func(value *T)) *Pool[T] {
	return &Pool[T]{
		pool: sync.Pool{
			New: func() any { return new(T) },
		},
		reset: reset,
	}
}

func (p *Pool[T]) Get() *T {
	return p.pool.Get().(*T)
}

func (p *Pool[T]) Put(value *T) {
	if p.reset != nil {
		p.reset(value)
	}

	p.pool.Put(value)
}

// Slices returns a pool of slices that are truncated to zero
// length when put back. Their capacity is kept.
func Slices[E any]() *Pool[[]E] {
	return New(func(value *[]E) {
		clear(*value)
		*value = (*value)[:0]
	})
}
