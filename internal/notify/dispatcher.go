package notify

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/ZenKhalil/ExamProject-Barbershop-app/internal/metrics"
)

// ErrQueueFull is returned when the dispatch buffer is saturated and an
// event had to be dropped.
var ErrQueueFull = errors.New("notification queue full")

// Dispatcher is an async Sink: Send enqueues and a single worker
// delivers through the wrapped sink. Delivery failures are logged and
// counted, never propagated back into the booking flow.
type Dispatcher struct {
	sink  Sink
	queue chan BookingConfirmed
	log   zerolog.Logger
	done  chan struct{}
}

func NewDispatcher(sink Sink, log zerolog.Logger) *Dispatcher {
	d := &Dispatcher{
		sink:  sink,
		queue: make(chan BookingConfirmed, 100),
		log:   log,
		done:  make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)
	for ev := range d.queue {
		if err := d.sink.Send(ev); err != nil {
			metrics.IncNotificationFailures()
			d.log.Warn().
				Err(err).
				Str("reference", ev.Reference).
				Str("customer_email", ev.CustomerEmail).
				Msg("booking confirmation not delivered")
		}
	}
}

// Send never blocks: a full queue drops the event and reports it to the
// caller as a warning condition.
func (d *Dispatcher) Send(ev BookingConfirmed) error {
	select {
	case d.queue <- ev:
		return nil
	default:
		metrics.IncNotificationFailures()
		d.log.Warn().
			Str("reference", ev.Reference).
			Msg("notification queue full, dropping event")
		return ErrQueueFull
	}
}

// Close drains the queue and stops the worker.
func (d *Dispatcher) Close() {
	close(d.queue)
	<-d.done
}

var _ Sink = (*Dispatcher)(nil)
