package notification

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

type Dispatcher struct {
	sender Sender
	log    zerolog.Logger
	queue  chan Message
}

func NewDispatcher(sender Sender, log zerolog.Logger) *Dispatcher {
	d := &Dispatcher{
		sender: sender,
		log:    log.With().Str("component", "notification").Logger(),
		queue:  make(chan Message, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for msg := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := d.sender.Send(ctx, msg); err != nil {
			d.log.Warn().Err(err).Str("type", msg.Type).Msg("notification send failed")
		}
		cancel()
	}
}

// Dispatch enqueues without blocking. Notifications are best-effort: a nil
// dispatcher or a full queue drops the message without failing the request.
func (d *Dispatcher) Dispatch(msg Message) {
	if d == nil {
		return
	}
	select {
	case d.queue <- msg:
	default:
		d.log.Warn().Str("type", msg.Type).Msg("notification queue full, dropping message")
	}
}
