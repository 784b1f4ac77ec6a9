package nextbatch

import (
	"github.com/go-kit/log"

	"github.com/grafana/nextbatch/types"
)

type options[T any] struct {
	release func(T)
	logger  log.Logger
	stats   types.StatsHub
}

type Option[T any] func(*options[T])

func newOptions[T any](opts ...Option[T]) *options[T] {
	o := &options[T]{
		logger: log.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithRelease installs a hook that is called exactly once for every element
// that is abandoned without being handed to the caller.
func WithRelease[T any](f func(T)) Option[T] {
	return func(o *options[T]) {
		o.release = f
	}
}

// WithReleaser installs a release hook that calls Free on abandoned elements.
func WithReleaser[T types.Releaser]() Option[T] {
	return WithRelease[T](func(v T) {
		v.Free()
	})
}

// WithLogger sets the logger for internal operations. The default is a nop logger.
func WithLogger[T any](l log.Logger) Option[T] {
	return func(o *options[T]) {
		o.logger = l
	}
}

// WithStats publishes per-fill stats to hub.
func WithStats[T any](hub types.StatsHub) Option[T] {
	return func(o *options[T]) {
		o.stats = hub
	}
}

func (o *options[T]) sendStats(fs types.FillStats) {
	if o.stats != nil {
		o.stats.SendFillStats(fs)
	}
}
