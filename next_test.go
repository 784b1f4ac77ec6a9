package nextbatch

import (
	"bytes"
	"slices"
	"testing"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"

	"github.com/grafana/nextbatch/sources"
	"github.com/grafana/nextbatch/stats"
	"github.com/grafana/nextbatch/types"
)

func Test_Next_Exact(t *testing.T) {
	src := sources.FromSlice([]int{1, 2, 3, 4, 5})
	got, ok := Next[int](src, 3)
	require.True(t, ok)
	assert.Equal(t, []int{1, 2, 3}, got)
	assert.Equal(t, 2, src.Remaining())
}

func Test_Next_SecondFillExhausted(t *testing.T) {
	freed := make(map[int]int)
	src := sources.FromSlice([]int{1, 2, 3, 4, 5})

	first, ok := Next[int](src, 3, WithRelease[int](func(v int) {
		freed[v]++
	}))
	require.True(t, ok)
	assert.Equal(t, []int{1, 2, 3}, first)
	assert.Empty(t, freed)

	// Only 4 and 5 remain, so the second fill comes up short and releases both.
	second, ok := Next[int](src, 3, WithRelease[int](func(v int) {
		freed[v]++
	}))
	assert.False(t, ok)
	assert.Nil(t, second)
	assert.Equal(t, map[int]int{4: 1, 5: 1}, freed)
	assert.Equal(t, 0, src.Remaining())
}

func Test_Next_ZeroCount(t *testing.T) {
	src := sources.FromSlice([]int{1, 2, 3})
	got, ok := Next[int](src, 0)
	require.True(t, ok)
	assert.NotNil(t, got)
	assert.Len(t, got, 0)
	assert.Equal(t, 3, src.Remaining())
}

func Test_Next_RoundTrip(t *testing.T) {
	first, ok := Next[int](sources.FromSlice([]int{7, 8, 9}), 3)
	require.True(t, ok)

	second, ok := Next[int](sources.FromSlice(first), 3)
	require.True(t, ok)
	assert.Equal(t, first, second)
}

type pooledItem struct {
	frees atomic.Int64
}

func (p *pooledItem) Free() {
	p.frees.Inc()
}

func Test_Next_Releaser(t *testing.T) {
	items := []*pooledItem{{}, {}}
	src := sources.FromSlice(items)

	got, ok := Next[*pooledItem](src, 3, WithReleaser[*pooledItem]())
	assert.False(t, ok)
	assert.Nil(t, got)
	for _, item := range items {
		assert.Equal(t, int64(1), item.frees.Load())
	}
}

func Test_Next_Stats(t *testing.T) {
	sh := stats.NewHub()
	var got []types.FillStats
	release := sh.RegisterFill(func(fs types.FillStats) {
		got = append(got, fs)
	})
	defer release()

	src := sources.FromSlice([]int{1, 2, 3, 4, 5})
	_, ok := Next[int](src, 3, WithStats[int](sh))
	require.True(t, ok)
	_, ok = Next[int](src, 3, WithStats[int](sh))
	require.False(t, ok)

	require.Len(t, got, 2)
	assert.Equal(t, types.FillStats{Pulled: 3, Completed: true}, got[0])
	assert.Equal(t, types.FillStats{Pulled: 2, Released: 2, Exhausted: true}, got[1])
}

func Test_Next_LogsExhaustion(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewLogfmtLogger(log.NewSyncWriter(&buf))

	_, ok := Next[int](sources.FromSlice([]int{1}), 3, WithLogger[int](logger))
	assert.False(t, ok)
	assert.Contains(t, buf.String(), "source exhausted before batch complete")
	assert.Contains(t, buf.String(), "have=1")
	assert.Contains(t, buf.String(), "want=3")
}

func Test_NextSeq(t *testing.T) {
	yielded := 0
	seq := func(yield func(int) bool) {
		for i := 1; i <= 10; i++ {
			yielded++
			if !yield(i) {
				return
			}
		}
	}

	got, ok := NextSeq[int](seq, 4)
	require.True(t, ok)
	assert.Equal(t, []int{1, 2, 3, 4}, got)
	// Pull-based: nothing past the batch is produced.
	assert.Equal(t, 4, yielded)
}

func Test_NextSeq_Exhausted(t *testing.T) {
	freed := 0
	got, ok := NextSeq[int](slices.Values([]int{1, 2}), 3, WithRelease[int](func(int) {
		freed++
	}))
	assert.False(t, ok)
	assert.Nil(t, got)
	assert.Equal(t, 2, freed)
}

func Benchmark_Next(b *testing.B) {
	b.ReportAllocs()
	items := make([]int, 1024)
	for i := range items {
		items[i] = i
	}
	for i := 0; i < b.N; i++ {
		src := sources.FromSlice(items)
		for {
			if _, ok := Next[int](src, 64); !ok {
				break
			}
		}
	}
}
