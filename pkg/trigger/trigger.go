package trigger

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/codecraftpakistan/codecraft-site/pkg/logger"
	"github.com/codecraftpakistan/codecraft-site/pkg/metrics"
	"go.uber.org/zap"
)

// Task is a unit of best-effort background work
type Task func(ctx context.Context) error

// ErrorSink receives the failure of a detached task. It is the only place a
// task's error goes.
type ErrorSink func(name string, err error)

// LogSink is the default sink: failures are logged at error level
func LogSink(name string, err error) {
	logger.Error("Detached task failed",
		zap.String("task", name),
		zap.Error(err))
}

// Dispatcher runs tasks detached from the caller's request. Callers never
// learn a task's outcome; shutdown can drain outstanding tasks with Wait.
type Dispatcher struct {
	timeout time.Duration
	sink    ErrorSink
	wg      sync.WaitGroup
}

// NewDispatcher creates a dispatcher whose tasks are bounded by timeout
func NewDispatcher(timeout time.Duration, sink ErrorSink) *Dispatcher {
	if sink == nil {
		sink = LogSink
	}
	return &Dispatcher{
		timeout: timeout,
		sink:    sink,
	}
}

// Go launches fn in the background. The task keeps ctx's values (trace
// context) but not its cancellation, so it outlives the request.
func (d *Dispatcher) Go(ctx context.Context, name string, fn Task) {
	taskCtx := context.WithoutCancel(ctx)

	d.wg.Add(1)
	metrics.DetachedTasksInFlight.Inc()

	go func() {
		defer d.wg.Done()
		defer metrics.DetachedTasksInFlight.Dec()

		runCtx := taskCtx
		if d.timeout > 0 {
			var cancel context.CancelFunc
			runCtx, cancel = context.WithTimeout(taskCtx, d.timeout)
			defer cancel()
		}

		err := d.run(runCtx, fn)
		if err != nil {
			metrics.DetachedTaskTotal.WithLabelValues(name, "error").Inc()
			d.sink(name, err)
			return
		}

		metrics.DetachedTaskTotal.WithLabelValues(name, "success").Inc()
		logger.Debug("Detached task completed", zap.String("task", name))
	}()
}

// run converts a panic into an error so one bad task cannot take down the process
func (d *Dispatcher) run(ctx context.Context, fn Task) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("task panicked: %v", r)
		}
	}()
	return fn(ctx)
}

// Wait blocks until every launched task has finished or ctx is done
func (d *Dispatcher) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
