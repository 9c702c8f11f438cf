package metrics

import "github.com/prometheus/client_golang/prometheus"

// NewRateLimitExceededTotal returns a Prometheus counter for the number of rejected HTTP requests due to rate limiting
func NewRateLimitExceededTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rate_limit_exceeded_total",
		Help: "Total number of rejected HTTP requests due to rate limiting",
	})
}

// NewDispatchSavedTotal returns a Prometheus counter for successfully persisted dispatch reconciliations
func NewDispatchSavedTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "dispatch_saves_total",
		Help: "Total number of successfully persisted dispatch reconciliations",
	})
}

// NewDispatchRejectedTotal returns a Prometheus counter for dispatch submissions rejected by validation
func NewDispatchRejectedTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "dispatch_rejected_total",
		Help: "Total number of dispatch submissions rejected by validation",
	})
}

// NewLineStatsClampedTotal returns a Prometheus counter for order lines whose stored dispatched quantity was out of range
func NewLineStatsClampedTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "line_stats_clamped_total",
		Help: "Total number of order lines whose stored dispatched quantity had to be clamped",
	})
}

// NewOverdueOrdersGauge returns a Prometheus gauge for orders past their expected dispatch date
func NewOverdueOrdersGauge() prometheus.Gauge {
	return prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "orders_overdue",
		Help: "Number of open orders past their expected dispatch date",
	})
}
