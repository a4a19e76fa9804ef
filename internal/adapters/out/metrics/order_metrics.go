// Package metrics exports order lifecycle metrics through Prometheus.
package metrics

import (
	"pancakes/internal/core/ports"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "pancakes"

var _ ports.OrderMetrics = (*OrderMetrics)(nil)

// OrderMetrics counts order events and reports the live registry size.
type OrderMetrics struct {
	events *prometheus.CounterVec
}

// NewOrderMetrics registers the collectors on reg. liveOrders is sampled on every scrape.
func NewOrderMetrics(reg prometheus.Registerer, liveOrders func() int) (*OrderMetrics, error) {
	events := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "order_events_total",
		Help:      "Order events applied, by event.",
	}, []string{"event"})

	live := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "live_orders",
		Help:      "Orders currently in the live registry.",
	}, func() float64 {
		return float64(liveOrders())
	})

	for _, c := range []prometheus.Collector{events, live} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	// Pre-create every series so dashboards see zeros before the first event.
	for _, e := range []ports.OrderEvent{
		ports.OrderCreated, ports.PancakeAdded, ports.PancakesRemoved,
		ports.OrderCompleted, ports.OrderPrepared, ports.OrderDelivered, ports.OrderCanceled,
	} {
		events.WithLabelValues(string(e))
	}

	return &OrderMetrics{events: events}, nil
}

func (m *OrderMetrics) Observe(event ports.OrderEvent) {
	m.events.WithLabelValues(string(event)).Inc()
}
