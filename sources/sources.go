// Package sources provides Source adapters over common producers: slices,
// channels, plain pull functions, standard library iterators, and an
// unbounded mailbox.
package sources

import (
	"iter"

	"github.com/grafana/nextbatch/types"
)

var (
	_ types.Source[int] = (*Slice[int])(nil)
	_ types.Source[int] = Chan[int]{}
	_ types.Source[int] = (Func[int])(nil)
	_ types.Source[int] = (*Seq[int])(nil)
)

// Slice pulls from an in-memory slice. Pulls advance a cursor, so a second
// fill over the same source continues where the first one stopped.
type Slice[T any] struct {
	items []T
	pos   int
}

func FromSlice[T any](items []T) *Slice[T] {
	return &Slice[T]{items: items}
}

func (s *Slice[T]) Next() (T, bool) {
	if s.pos == len(s.items) {
		return types.Zero[T](), false
	}
	v := s.items[s.pos]
	s.pos++
	return v, true
}

// Remaining is the number of items that have not been pulled yet.
func (s *Slice[T]) Remaining() int {
	return len(s.items) - s.pos
}

// Chan pulls from a channel. It blocks until a value arrives and is
// exhausted once the channel is closed and drained.
type Chan[T any] struct {
	ch <-chan T
}

func FromChan[T any](ch <-chan T) Chan[T] {
	return Chan[T]{ch: ch}
}

func (c Chan[T]) Next() (T, bool) {
	v, ok := <-c.ch
	return v, ok
}

// Func adapts a plain pull function.
type Func[T any] func() (T, bool)

func (f Func[T]) Next() (T, bool) {
	return f()
}

// Seq pulls from a standard library iterator. Stop must be called when the
// consumer walks away early, otherwise the iterator leaks until collected.
type Seq[T any] struct {
	next func() (T, bool)
	stop func()
}

func FromSeq[T any](seq iter.Seq[T]) *Seq[T] {
	next, stop := iter.Pull(seq)
	return &Seq[T]{next: next, stop: stop}
}

func (s *Seq[T]) Next() (T, bool) {
	return s.next()
}

func (s *Seq[T]) Stop() {
	s.stop()
}
