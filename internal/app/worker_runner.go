package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"
	"golang.org/x/sync/errgroup"

	"toyworks-orders/internal/logx"
	"toyworks-orders/internal/service/orders"
	"toyworks-orders/internal/transport/kafka"
)

// WorkerRunner runs the order-event intake worker
type WorkerRunner struct {
	runFn func(*dig.Container) error
}

// NewWorkerRunner returns a new WorkerRunner
func NewWorkerRunner() *WorkerRunner {
	return &WorkerRunner{runFn: runWorker}
}

// MustRun starts the worker using the provided DI container
func (r *WorkerRunner) MustRun(container *dig.Container) {
	err := r.runFn(container)
	if err == nil || errors.Is(err, context.Canceled) {
		return
	}
	panic(err)
}

func runWorker(container *dig.Container) error {
	return container.Invoke(workerRun)
}

type workerRunIn struct {
	dig.In

	Ctx      context.Context
	Pool     *pgxpool.Pool
	Logger   logx.Logger
	Consumer *kafka.Consumer
	Orders   *orders.Service
	Overdue  prometheus.Gauge
	Interval overdueCheckInterval
}

func workerRun(in workerRunIn) error {
	if in.Consumer == nil {
		return fmt.Errorf("kafka consumer is nil: worker container misconfigured")
	}
	defer closeWorker(in.Pool, in.Logger, in.Consumer)

	in.Logger.Info("toyworks-orders-worker started")

	g, gctx := errgroup.WithContext(in.Ctx)
	g.Go(func() error {
		return in.Consumer.Run(gctx)
	})
	g.Go(func() error {
		runOverdueSweep(gctx, in.Logger, in.Orders, in.Overdue, time.Duration(in.Interval))
		return nil
	})
	return g.Wait()
}

type overdueCounter interface {
	CountOverdue(ctx context.Context) (int64, error)
}

func runOverdueSweep(
	ctx context.Context,
	logger logx.Logger,
	svc overdueCounter,
	gauge prometheus.Gauge,
	interval time.Duration,
) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := svc.CountOverdue(ctx)
			if err != nil {
				logger.Error("overdue sweep failed", logx.Any("err", err))
				continue
			}
			gauge.Set(float64(n))
			logger.Debug("overdue sweep", logx.Int64("count", n))
		}
	}
}

func closeWorker(pool *pgxpool.Pool, logger logx.Logger, consumer *kafka.Consumer) {
	if consumer != nil {
		if err := consumer.Close(); err != nil {
			logger.Error("kafka close error", logx.Any("err", err))
		}
	}
	if pool != nil {
		pool.Close()
	}
}
