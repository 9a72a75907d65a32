// Package notifications delivers customer notifications for order lifecycle
// events off the request path.
//
// The Dispatcher is a bounded queue in front of a fixed worker pool. Publish
// never blocks: when the queue is full the event is dropped and logged. Workers
// hand each event to a Handler (normally the Policy); failures are logged and
// counted, never retried.
package notifications

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/logging"

	"go.uber.org/zap"
)

const (
	DefaultWorkers     = 4
	DefaultQueueSize   = 256
	DefaultTaskTimeout = 30 * time.Second
)

// ErrDispatcherStopped is logged when an event is published after Stop.
var ErrDispatcherStopped = errors.New("notification dispatcher is stopped")

// Handler performs the side effects of one event.
type Handler interface {
	Handle(ctx context.Context, event order.Event) error
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(ctx context.Context, event order.Event) error

func (f HandlerFunc) Handle(ctx context.Context, event order.Event) error {
	return f(ctx, event)
}

type DispatcherConfig struct {
	Workers     int
	QueueSize   int
	TaskTimeout time.Duration
}

func (c DispatcherConfig) withDefaults() DispatcherConfig {
	if c.Workers <= 0 {
		c.Workers = DefaultWorkers
	}
	if c.QueueSize <= 0 {
		c.QueueSize = DefaultQueueSize
	}
	if c.TaskTimeout <= 0 {
		c.TaskTimeout = DefaultTaskTimeout
	}
	return c
}

// Stats is a point-in-time snapshot of dispatcher counters.
type Stats struct {
	Published int64
	Dropped   int64
	Processed int64
	Failed    int64
	Queued    int
}

type Dispatcher struct {
	cfg     DispatcherConfig
	handler Handler
	logger  *zap.Logger
	queue   chan order.Event

	mu      sync.RWMutex
	started bool
	stopped bool
	wg      sync.WaitGroup

	published atomic.Int64
	dropped   atomic.Int64
	processed atomic.Int64
	failed    atomic.Int64
}

func NewDispatcher(cfg DispatcherConfig, handler Handler, logger *zap.Logger) *Dispatcher {
	cfg = cfg.withDefaults()
	return &Dispatcher{
		cfg:     cfg,
		handler: handler,
		logger:  logging.Component(logger, "notification_dispatcher"),
		queue:   make(chan order.Event, cfg.QueueSize),
	}
}

// Start launches the workers. ctx only supplies values to task contexts: its
// cancellation does not reach provider calls, which are bounded by the task
// timeout instead. Calling Start twice is a no-op.
func (d *Dispatcher) Start(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.started || d.stopped {
		return
	}
	d.started = true

	for i := range d.cfg.Workers {
		d.wg.Add(1)
		go d.work(ctx, i)
	}

	d.logger.Info("dispatcher started",
		zap.Int("workers", d.cfg.Workers),
		zap.Int("queue_size", d.cfg.QueueSize))
}

// Publish enqueues event without blocking. It implements ports.EventPublisher.
func (d *Dispatcher) Publish(event order.Event) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.stopped {
		d.dropped.Add(1)
		d.logDrop(event, ErrDispatcherStopped)
		return
	}

	select {
	case d.queue <- event:
		d.published.Add(1)
	default:
		d.dropped.Add(1)
		d.logDrop(event, errors.New("queue is full"))
	}
}

// Stop refuses new events, lets the workers drain the queue and waits for
// them until ctx expires.
func (d *Dispatcher) Stop(ctx context.Context) error {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return nil
	}
	d.stopped = true
	close(d.queue)
	started := d.started
	d.mu.Unlock()

	if !started {
		return nil
	}

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		d.logger.Info("dispatcher drained", zap.Int64("processed", d.processed.Load()))
		return nil
	case <-ctx.Done():
		d.logger.Warn("dispatcher stop timed out", zap.Int("queued", len(d.queue)))
		return ctx.Err()
	}
}

func (d *Dispatcher) Stats() Stats {
	return Stats{
		Published: d.published.Load(),
		Dropped:   d.dropped.Load(),
		Processed: d.processed.Load(),
		Failed:    d.failed.Load(),
		Queued:    len(d.queue),
	}
}

func (d *Dispatcher) work(ctx context.Context, id int) {
	defer d.wg.Done()
	for event := range d.queue {
		d.run(ctx, id, event)
	}
}

func (d *Dispatcher) run(parent context.Context, worker int, event order.Event) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(parent), d.cfg.TaskTimeout)
	defer cancel()

	start := time.Now()
	err := d.safeHandle(ctx, event)
	d.processed.Add(1)

	fields := []zap.Field{
		zap.Int("worker", worker),
		zap.Stringer("event", event.Type),
		zap.String("order_id", orderID(event)),
		zap.Duration("latency", time.Since(start)),
	}
	if err != nil {
		d.failed.Add(1)
		d.logger.Error("notification failed", append(fields, zap.Error(err))...)
		return
	}
	d.logger.Debug("notification delivered", fields...)
}

func (d *Dispatcher) safeHandle(ctx context.Context, event order.Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.New("notification handler panicked")
			d.logger.Error("recovered from panic in notification handler", zap.Any("panic", r))
		}
	}()
	return d.handler.Handle(ctx, event)
}

func (d *Dispatcher) logDrop(event order.Event, reason error) {
	d.logger.Warn("notification dropped",
		zap.Stringer("event", event.Type),
		zap.String("order_id", orderID(event)),
		zap.Error(reason))
}

func orderID(event order.Event) string {
	if event.Order == nil {
		return ""
	}
	return event.Order.ID().String()
}
