package eventcore

import (
	"sync"
	"sync/atomic"
)

// ObserverBus is a queued, multi-producer/multi-listener fan-out bus for
// events of one family T. Producers dispatch into the bus's internal
// queue; Communicate, called by a single owner goroutine, drains that
// queue and fans each event out to every registered listener.
type ObserverBus[T any] struct {
	mu            sync.Mutex
	busQueue      *EventQueue[T]
	producers     map[*EventProducer[T]]*ProducerRegistration[T]
	listeners     map[*EventListener[T]]*ListenerRegistration[T]
	producerOrder []*ProducerRegistration[T]
	listenerOrder []*ListenerRegistration[T]

	communicating int32 // atomic re-entrancy guard for Communicate

	log    Logger
	strict bool
	id     string
}

// NewObserverBus constructs an empty, active bus. A nil log uses
// NopLogger; strict turns programming violations into panics instead of
// logged no-ops, matching Config.Strict.
func NewObserverBus[T any](log Logger, strict bool) *ObserverBus[T] {
	if log == nil {
		log = NopLogger{}
	}
	return &ObserverBus[T]{
		busQueue:  NewEventQueue[T](),
		producers: make(map[*EventProducer[T]]*ProducerRegistration[T]),
		listeners: make(map[*EventListener[T]]*ListenerRegistration[T]),
		log:       log,
		strict:    strict,
		id:        newIdentity(),
	}
}

// ID returns the bus's identity, used only for logging/diagnostics.
func (b *ObserverBus[T]) ID() string { return b.id }

// removeProducerOrder drops reg from producerOrder. Callers must hold b.mu.
func (b *ObserverBus[T]) removeProducerOrder(reg *ProducerRegistration[T]) {
	out := b.producerOrder[:0]
	for _, existing := range b.producerOrder {
		if existing != reg {
			out = append(out, existing)
		}
	}
	b.producerOrder = out
}

// removeListenerOrder drops reg from listenerOrder. Callers must hold b.mu.
func (b *ObserverBus[T]) removeListenerOrder(reg *ListenerRegistration[T]) {
	out := b.listenerOrder[:0]
	for _, existing := range b.listenerOrder {
		if existing != reg {
			out = append(out, existing)
		}
	}
	b.listenerOrder = out
}

// RegisterProducer attaches p to the bus: a new ProducerRegistration is
// created whose sole dispatcher pushes into the bus's internal queue,
// recorded both in the bus's map and in p's own registration set.
// Registering an already-registered producer logs a warning and is a
// no-op (ErrDuplicateRegistration).
func (b *ObserverBus[T]) RegisterProducer(p *EventProducer[T]) error {
	if p == nil {
		return violationAction(b.log, b.strict, ErrNilProducer, "RegisterProducer called with nil producer", "bus", b.id)
	}

	b.mu.Lock()
	if _, exists := b.producers[p]; exists {
		b.mu.Unlock()
		b.log.Warn("duplicate producer registration", "bus", b.id)
		return ErrDuplicateRegistration
	}

	reg := newProducerRegistration[T](b.log, func() {
		b.mu.Lock()
		delete(b.producers, p)
		b.removeProducerOrder(reg)
		b.mu.Unlock()
	})
	reg.AddDispatcher(newQueueDispatcher[T](b.busQueue))
	b.producers[p] = reg
	b.producerOrder = append(b.producerOrder, reg)
	b.mu.Unlock()

	p.addRegistration(reg)
	return nil
}

// RegisterListener attaches l to the bus with the default queue-backed
// dispatcher: events fanned out by Communicate are pushed into l's own
// queue for l to drain via ProcessEvents. Registering an
// already-registered listener logs a warning and is a no-op.
func (b *ObserverBus[T]) RegisterListener(l *EventListener[T]) error {
	return b.registerListener(l, false)
}

// RegisterListenerDirect attaches l to the bus with a synchronous
// dispatcher: Communicate invokes l's OnEvent callback directly instead
// of queueing, under the dispatcher's own serializing mutex. This is the
// "synchronous bus" registration option.
func (b *ObserverBus[T]) RegisterListenerDirect(l *EventListener[T]) error {
	return b.registerListener(l, true)
}

func (b *ObserverBus[T]) registerListener(l *EventListener[T], direct bool) error {
	if l == nil {
		return violationAction(b.log, b.strict, ErrNilListener, "RegisterListener called with nil listener", "bus", b.id)
	}

	b.mu.Lock()
	if _, exists := b.listeners[l]; exists {
		b.mu.Unlock()
		b.log.Warn("duplicate listener registration", "bus", b.id)
		return ErrDuplicateRegistration
	}

	token := NewLifetimeToken()
	var underlying Dispatcher[T]
	if direct {
		underlying = newDirectDispatcher[T](func(event T) { l.invoke(event) })
	} else {
		underlying = newQueueDispatcher[T](l.Queue())
	}
	bridge := newDispatcherBridge[T](token, underlying)

	reg := newListenerRegistration[T](b.log, bridge, token, func() {
		b.mu.Lock()
		delete(b.listeners, l)
		b.removeListenerOrder(reg)
		b.mu.Unlock()
	})
	b.listeners[l] = reg
	b.listenerOrder = append(b.listenerOrder, reg)
	b.mu.Unlock()

	l.addRegistration(reg)
	return nil
}

// Communicate drains the bus's internal queue and, for each event,
// snapshots the live listener registrations and invokes each one's
// Dispatch. It is the only externally scheduled step and must be called
// by a single owner goroutine at a time; a concurrent call observes the
// guard held and returns ErrConcurrentCommunicate without draining
// anything.
func (b *ObserverBus[T]) Communicate() error {
	if !atomic.CompareAndSwapInt32(&b.communicating, 0, 1) {
		return violationAction(b.log, b.strict, ErrConcurrentCommunicate, "Communicate called concurrently", "bus", b.id)
	}
	defer atomic.StoreInt32(&b.communicating, 0)

	for {
		event, ok := b.busQueue.TryNext()
		if !ok {
			return nil
		}

		b.mu.Lock()
		snapshot := make([]*ListenerRegistration[T], len(b.listenerOrder))
		copy(snapshot, b.listenerOrder)
		b.mu.Unlock()

		for _, reg := range snapshot {
			reg.Dispatch(event)
		}
	}
}

// UnregisterProducer removes p from the bus and blocks until its
// in-flight deliveries drain. Unregistering an unknown producer logs a
// trace and is a no-op (ErrAbsentRegistration).
func (b *ObserverBus[T]) UnregisterProducer(p *EventProducer[T]) error {
	b.mu.Lock()
	reg, ok := b.producers[p]
	if ok {
		delete(b.producers, p)
	}
	b.mu.Unlock()

	if !ok {
		b.log.Debug("unregister of absent producer", "bus", b.id)
		return ErrAbsentRegistration
	}

	reg.Unregister()
	return nil
}

// UnregisterListener removes l from the bus and blocks until its
// in-flight deliveries drain. Unregistering an unknown listener logs a
// trace and is a no-op (ErrAbsentRegistration).
func (b *ObserverBus[T]) UnregisterListener(l *EventListener[T]) error {
	b.mu.Lock()
	reg, ok := b.listeners[l]
	if ok {
		delete(b.listeners, l)
	}
	b.mu.Unlock()

	if !ok {
		b.log.Debug("unregister of absent listener", "bus", b.id)
		return ErrAbsentRegistration
	}

	reg.Unregister()
	return nil
}

// Close tears the bus down: every registration is detached from its
// owner's point of view, its external unregister callback disabled (so
// Unregister does not call back into this dying bus), and then drained.
// Close blocks until every in-flight bridged delivery through this bus
// has completed.
func (b *ObserverBus[T]) Close() {
	b.mu.Lock()
	producers := make([]*ProducerRegistration[T], len(b.producerOrder))
	copy(producers, b.producerOrder)
	listeners := make([]*ListenerRegistration[T], len(b.listenerOrder))
	copy(listeners, b.listenerOrder)
	b.producers = make(map[*EventProducer[T]]*ProducerRegistration[T])
	b.listeners = make(map[*EventListener[T]]*ListenerRegistration[T])
	b.producerOrder = nil
	b.listenerOrder = nil
	b.mu.Unlock()

	for _, reg := range producers {
		reg.DisableUnregisterCallback()
	}
	for _, reg := range listeners {
		reg.DisableUnregisterCallback()
	}

	for _, reg := range producers {
		reg.Unregister()
	}
	for _, reg := range listeners {
		reg.Unregister()
	}
}
