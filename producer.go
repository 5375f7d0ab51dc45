package eventcore

import "sync"

// EventProducer is the composable state objects embed to dispatch events
// of family T through every bus registration they currently hold: hold
// one, dispatch through it, Close it on teardown.
type EventProducer[T any] struct {
	mu            sync.Mutex
	registrations []*ProducerRegistration[T]
	log           Logger
}

// NewEventProducer constructs an EventProducer. A nil log uses NopLogger.
func NewEventProducer[T any](log Logger) *EventProducer[T] {
	if log == nil {
		log = NopLogger{}
	}
	return &EventProducer[T]{log: log}
}

// DispatchEvent hands event to every registration currently held,
// pruning any that have since unregistered. Callable from any thread.
func (p *EventProducer[T]) DispatchEvent(event T) {
	p.mu.Lock()
	kept := p.registrations[:0]
	for _, r := range p.registrations {
		if !r.Unregistered() {
			kept = append(kept, r)
		}
	}
	p.registrations = kept
	live := make([]*ProducerRegistration[T], len(kept))
	copy(live, kept)
	p.mu.Unlock()

	for _, r := range live {
		r.Dispatch(event)
	}
}

func (p *EventProducer[T]) addRegistration(r *ProducerRegistration[T]) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.registrations = append(p.registrations, r)
}

// RegistrationCount reports the number of registrations currently held,
// for diagnostics and tests; it does not prune.
func (p *EventProducer[T]) RegistrationCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.registrations)
}

// Close unregisters every live registration and blocks until all bridged
// deliveries initiated through this producer have drained.
func (p *EventProducer[T]) Close() {
	p.mu.Lock()
	regs := p.registrations
	p.registrations = nil
	p.mu.Unlock()

	for _, r := range regs {
		r.Unregister()
	}
}
