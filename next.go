package nextbatch

import (
	"iter"

	"github.com/go-kit/log/level"

	"github.com/grafana/nextbatch/sources"
	"github.com/grafana/nextbatch/types"
)

// Next pulls up to n items from src into a fresh batch. It returns the batch
// and true after n successful pulls. If src runs out first it returns
// (nil, false): the items pulled so far are released through the configured
// release hook and are not put back, so a later call continues from where
// the source stopped. Exactly min(n, available) items are consumed.
func Next[T any](src types.Source[T], n int, opts ...Option[T]) ([]T, bool) {
	o := newOptions(opts...)
	b := newBuilder(n, o)

	var fs types.FillStats
	for b.Len() < n {
		v, ok := src.Next()
		if !ok {
			fs.Exhausted = true
			fs.Released = b.Len()
			level.Debug(o.logger).Log("msg", "source exhausted before batch complete", "have", b.Len(), "want", n)
			b.Discard()
			o.sendStats(fs)
			return nil, false
		}
		fs.Pulled++
		b.Append(v)
	}

	out, ok := b.Take()
	if !ok {
		// Unreachable: the loop appended exactly n items.
		panic("nextbatch: builder not full after fill")
	}
	fs.Completed = true
	o.sendStats(fs)
	return out, true
}

// NextSeq is Next over a standard library iterator. The sequence is stopped
// before returning, whether or not a full batch was produced.
func NextSeq[T any](seq iter.Seq[T], n int, opts ...Option[T]) ([]T, bool) {
	src := sources.FromSeq(seq)
	defer src.Stop()
	return Next[T](src, n, opts...)
}
