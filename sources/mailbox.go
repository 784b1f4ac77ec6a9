package sources

import (
	"context"
	"errors"

	"go.uber.org/atomic"
	"golang.design/x/chann"

	"github.com/grafana/nextbatch/types"
)

var _ types.Source[int] = (*Mailbox[int])(nil)

// Mailbox is an unbounded conduit between producers and a single pulling
// consumer. Send never blocks on a full buffer; Next blocks until a value
// arrives or the mailbox is closed and drained. Sending is safe from
// multiple goroutines, pulling is not.
type Mailbox[T any] struct {
	closed atomic.Bool
	ch     *chann.Chann[T]
}

func NewMailbox[T any](opts ...chann.Opt) *Mailbox[T] {
	return &Mailbox[T]{
		ch: chann.New[T](opts...),
	}
}

func (m *Mailbox[T]) Send(ctx context.Context, data T) error {
	if m.closed.Load() {
		return errors.New("mailbox is closed")
	}
	select {
	case <-ctx.Done():
		return errors.New("send cancelled")
	case m.ch.In() <- data:
		return nil
	}
}

func (m *Mailbox[T]) Next() (T, bool) {
	v, ok := <-m.ch.Out()
	if !ok {
		return types.Zero[T](), false
	}
	return v, true
}

func (m *Mailbox[T]) AproxLen() int {
	return m.ch.Len()
}

func (m *Mailbox[T]) Close() {
	m.closed.Store(true)
	m.ch.Close()
}
