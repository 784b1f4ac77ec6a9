// Package nextbatch builds fixed-size batches from pull-based sources,
// releasing anything it pulled but could not hand to the caller.
package nextbatch

import (
	"github.com/grafana/nextbatch/types"
)

// Builder accumulates up to a fixed number of elements. Only the first
// Len() slots hold live values; the rest stay zeroed until written. A
// builder has exactly one logical owner and is not safe for concurrent use.
type Builder[T any] struct {
	slots   []T
	count   int
	release func(T)
}

// New returns an empty builder that fills batches of exactly n elements.
// A negative n is a programming error and panics.
func New[T any](n int, opts ...Option[T]) *Builder[T] {
	return newBuilder(n, newOptions(opts...))
}

func newBuilder[T any](n int, o *options[T]) *Builder[T] {
	if n < 0 {
		panic("nextbatch: negative batch size")
	}
	return &Builder[T]{
		slots:   make([]T, n),
		release: o.release,
	}
}

// Len is the number of live elements appended so far.
func (b *Builder[T]) Len() int {
	return b.count
}

// Cap is the batch size the builder was created with.
func (b *Builder[T]) Cap() int {
	return len(b.slots)
}

// Append stores v in the next free slot. The caller must check Len against
// Cap first; appending to a full builder is a programming error and panics.
func (b *Builder[T]) Append(v T) {
	if b.count == len(b.slots) {
		panic("nextbatch: append past capacity")
	}
	b.slots[b.count] = v
	b.count++
}

// Take returns the finished batch once every slot is live. Ownership of the
// backing storage moves to the caller and the builder resets to empty with
// fresh storage, so nothing is released and the builder can be refilled.
// On a builder that is not yet full Take returns (nil, false) and changes
// nothing.
func (b *Builder[T]) Take() ([]T, bool) {
	if b.count != len(b.slots) {
		return nil, false
	}
	out := b.slots
	b.slots = make([]T, len(out))
	b.count = 0
	return out, true
}

// Discard releases every live element exactly once and empties the builder.
// Elements are released in reverse append order, and each one is detached
// from the builder before its release hook runs: a hook that panics can
// never cause a double release, and a later Discard resumes with the
// elements that are still live. Discarding an empty builder is a no-op.
func (b *Builder[T]) Discard() {
	for b.count > 0 {
		b.count--
		v := b.slots[b.count]
		b.slots[b.count] = types.Zero[T]()
		if b.release != nil {
			b.release(v)
		}
	}
}
