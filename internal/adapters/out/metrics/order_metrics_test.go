package metrics_test

import (
	"strings"
	"testing"

	"pancakes/internal/adapters/out/metrics"
	"pancakes/internal/core/ports"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderMetrics_Observe(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := metrics.NewOrderMetrics(reg, func() int { return 3 })
	require.NoError(t, err)

	m.Observe(ports.OrderCreated)
	m.Observe(ports.OrderCreated)
	m.Observe(ports.OrderCanceled)

	expected := `
# HELP pancakes_order_events_total Order events applied, by event.
# TYPE pancakes_order_events_total counter
pancakes_order_events_total{event="canceled"} 1
pancakes_order_events_total{event="completed"} 0
pancakes_order_events_total{event="created"} 2
pancakes_order_events_total{event="delivered"} 0
pancakes_order_events_total{event="pancake_added"} 0
pancakes_order_events_total{event="pancakes_removed"} 0
pancakes_order_events_total{event="prepared"} 0
# HELP pancakes_live_orders Orders currently in the live registry.
# TYPE pancakes_live_orders gauge
pancakes_live_orders 3
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"pancakes_order_events_total", "pancakes_live_orders"))
}

func TestNewOrderMetrics_RejectsDuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := metrics.NewOrderMetrics(reg, func() int { return 0 })
	require.NoError(t, err)

	_, err = metrics.NewOrderMetrics(reg, func() int { return 0 })

	var already prometheus.AlreadyRegisteredError
	assert.ErrorAs(t, err, &already)
}
