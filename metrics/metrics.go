// Package metrics bridges a StatsHub to a Prometheus registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/grafana/nextbatch/types"
)

type PrometheusStats struct {
	register prometheus.Registerer
	release  types.NotificationRelease

	BatchesCompleted prometheus.Counter
	FillsExhausted   prometheus.Counter
	ItemsPulled      prometheus.Counter
	ItemsReleased    prometheus.Counter
}

// NewStats registers fill metrics on registry and subscribes to sh. Call
// Unregister to drop both the subscription and the collectors.
func NewStats(namespace, subsystem string, registry prometheus.Registerer, sh types.StatsHub) *PrometheusStats {
	s := &PrometheusStats{
		register: registry,
		BatchesCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "batches_completed_total",
			Help:      "Total number of full batches handed to callers",
		}),
		FillsExhausted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "fills_exhausted_total",
			Help:      "Total number of fills abandoned because the source ran out",
		}),
		ItemsPulled: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "items_pulled_total",
			Help:      "Total number of items consumed from sources",
		}),
		ItemsReleased: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "items_released_total",
			Help:      "Total number of items released on abandoned fills",
		}),
	}
	registry.MustRegister(s.BatchesCompleted, s.FillsExhausted, s.ItemsPulled, s.ItemsReleased)
	s.release = sh.RegisterFill(s.update)
	return s
}

func (s *PrometheusStats) update(fs types.FillStats) {
	s.ItemsPulled.Add(float64(fs.Pulled))
	s.ItemsReleased.Add(float64(fs.Released))
	if fs.Completed {
		s.BatchesCompleted.Inc()
	}
	if fs.Exhausted {
		s.FillsExhausted.Inc()
	}
}

func (s *PrometheusStats) Unregister() {
	s.release()
	s.register.Unregister(s.BatchesCompleted)
	s.register.Unregister(s.FillsExhausted)
	s.register.Unregister(s.ItemsPulled)
	s.register.Unregister(s.ItemsReleased)
}
