package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/postrepublic/quote-system/internal/api/metrics"
	"github.com/postrepublic/quote-system/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 128
)

// Dispatcher fans order alerts out to a fixed set of workers, sharded by
// order ID so retries for the same order never interleave. Order creation
// only enqueues; delivery happens off the request path.
type Dispatcher struct {
	workers  []chan ports.OrderAlert
	notifier ports.OrderNotifier
	log      zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, notifier ports.OrderNotifier, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers:  make([]chan ports.OrderAlert, numWorkers),
		notifier: notifier,
		log:      log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.OrderAlert, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue hands an alert to the worker responsible for its order.
// Non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(alert ports.OrderAlert) {
	d.workers[d.shardIndex(alert.OrderID)] <- alert
}

// shardIndex maps an order ID deterministically to a worker index.
func (d *Dispatcher) shardIndex(orderID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(orderID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.OrderAlert) {
	for {
		select {
		case <-ctx.Done():
			return
		case alert, ok := <-ch:
			if !ok {
				return
			}
			if err := d.notifier.OrderCreated(ctx, alert); err != nil {
				metrics.NotifyDeliveredTotal.WithLabelValues("error").Inc()
				d.log.Error().Err(err).
					Str("order_id", alert.OrderID).
					Int("worker_id", id).
					Msg("order notification failed")
				continue
			}
			metrics.NotifyDeliveredTotal.WithLabelValues("ok").Inc()
		}
	}
}
