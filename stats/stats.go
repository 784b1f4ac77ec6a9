package stats

import (
	"sync"

	"github.com/grafana/nextbatch/types"
)

var _ types.StatsHub = (*hub)(nil)

// hub is used to collect and distribute stats to interested party.
// It does this by keeping track of interested parties to each type.
// Whenever a interested party registers they are given a NotificationRelease
// that cleans up.
type hub struct {
	mut   sync.RWMutex
	fills map[int]func(types.FillStats)
	index int
}

func NewHub() types.StatsHub {
	return &hub{
		fills: make(map[int]func(types.FillStats)),
	}
}

func (s *hub) RegisterFill(f func(types.FillStats)) types.NotificationRelease {
	s.mut.Lock()
	defer s.mut.Unlock()

	s.fills[s.index] = f
	index := s.index
	s.index++

	return func() {
		s.mut.Lock()
		defer s.mut.Unlock()

		delete(s.fills, index)
	}
}

func (s *hub) SendFillStats(fs types.FillStats) {
	s.mut.RLock()
	defer s.mut.RUnlock()

	for _, f := range s.fills {
		f(fs)
	}
}
