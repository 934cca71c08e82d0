package realtime

import "github.com/rs/zerolog/log"

// Event is a row-change notification pushed to subscribers so UIs can
// refresh without polling.
type Event struct {
	Entity   string `json:"entity"`
	Action   string `json:"action"`
	EntityID uint   `json:"entity_id"`
	ClientID uint   `json:"client_id,omitempty"`
	WorkerID *uint  `json:"worker_id,omitempty"`
}

// Publisher is what the use cases see; the transport behind it is
// interchangeable.
type Publisher interface {
	Publish(ev Event)
}

// Sink delivers an event to a concrete transport.
type Sink interface {
	Send(ev Event) error
}

// Dispatcher decouples request handling from the feed transport: events
// are queued and flushed by a single worker, and dropped when the queue
// is full.
type Dispatcher struct {
	sink  Sink
	queue chan Event
}

func NewDispatcher(sink Sink) *Dispatcher {
	d := &Dispatcher{
		sink:  sink,
		queue: make(chan Event, 256),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.sink.Send(ev); err != nil {
			log.Error().Err(err).Str("entity", ev.Entity).Str("action", ev.Action).Msg("feed publish failed")
		}
	}
}

func (d *Dispatcher) Publish(ev Event) {
	select {
	case d.queue <- ev:
	default:
		log.Warn().Str("entity", ev.Entity).Msg("feed queue full, dropping event")
	}
}

var _ Publisher = (*Dispatcher)(nil)

// NopSink is used when no feed transport is configured.
type NopSink struct{}

func (NopSink) Send(Event) error { return nil }
