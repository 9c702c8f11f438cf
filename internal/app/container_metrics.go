package app

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"toyworks-orders/internal/metrics"
	"toyworks-orders/internal/service/dispatch"
)

type metricsOut struct {
	dig.Out

	RateLimitExceededTotal prometheus.Counter `name:"rate_limit_exceeded_total"`
	DispatchCounters       dispatch.Counters
	OverdueOrders          prometheus.Gauge
}

func provideMetrics() (metricsOut, error) {
	rateLimit, err := registerCounter("rate_limit_exceeded_total", metrics.NewRateLimitExceededTotal())
	if err != nil {
		return metricsOut{}, err
	}
	saved, err := registerCounter("dispatch_saves_total", metrics.NewDispatchSavedTotal())
	if err != nil {
		return metricsOut{}, err
	}
	rejected, err := registerCounter("dispatch_rejected_total", metrics.NewDispatchRejectedTotal())
	if err != nil {
		return metricsOut{}, err
	}
	clamped, err := registerCounter("line_stats_clamped_total", metrics.NewLineStatsClampedTotal())
	if err != nil {
		return metricsOut{}, err
	}
	overdue, err := registerGauge("orders_overdue", metrics.NewOverdueOrdersGauge())
	if err != nil {
		return metricsOut{}, err
	}
	return metricsOut{
		RateLimitExceededTotal: rateLimit,
		DispatchCounters: dispatch.Counters{
			Saved:    saved,
			Rejected: rejected,
			Clamped:  clamped,
		},
		OverdueOrders: overdue,
	}, nil
}

func registerCounter(name string, c prometheus.Counter) (prometheus.Counter, error) {
	col, err := register(name, c)
	if err != nil {
		return nil, err
	}
	return col.(prometheus.Counter), nil
}

func registerGauge(name string, g prometheus.Gauge) (prometheus.Gauge, error) {
	col, err := register(name, g)
	if err != nil {
		return nil, err
	}
	return col.(prometheus.Gauge), nil
}

// register registers c with the default registry. A collector registered by
// an earlier container build is reused instead of failing.
func register(name string, c prometheus.Collector) (prometheus.Collector, error) {
	if err := prometheus.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			return are.ExistingCollector, nil
		}
		return nil, fmt.Errorf("register %s: %w", name, err)
	}
	return c, nil
}
