// Package runtime provides Pump, a small owner-thread driver that calls
// Communicate on a registered set of buses, standing in for the
// "some thread (conventionally the bus owner's)" every ObserverBus
// otherwise leaves to a hand-rolled loop.
package runtime

import (
	"context"
	"sync"
	"time"

	eventcore "github.com/RRRella/solarc-eventcore"
)

// Communicator is satisfied by *eventcore.ObserverBus[T] for any T.
type Communicator interface {
	Communicate() error
}

// Pump calls Communicate on every registered bus at a fixed tick, or
// immediately on request via Kick. Start/Stop follow a context-driven
// goroutine lifecycle.
type Pump struct {
	mu       sync.Mutex
	buses    []Communicator
	interval time.Duration
	log      eventcore.Logger

	kick   chan struct{}
	cancel context.CancelFunc
	done   chan struct{}
}

// NewPump constructs a pump that ticks at interval. A nil log uses
// eventcore.NopLogger. interval <= 0 disables the ticker; Communicate
// then only runs on Kick.
func NewPump(interval time.Duration, log eventcore.Logger) *Pump {
	if log == nil {
		log = eventcore.NopLogger{}
	}
	return &Pump{interval: interval, log: log, kick: make(chan struct{}, 1)}
}

// Register adds a bus the pump will call Communicate on. Safe to call
// before or after Start.
func (p *Pump) Register(bus Communicator) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.buses = append(p.buses, bus)
}

// Kick requests an immediate Communicate pass on every registered bus,
// without waiting for the next tick. Non-blocking: a pending kick is not
// duplicated.
func (p *Pump) Kick() {
	select {
	case p.kick <- struct{}{}:
	default:
	}
}

// Start launches the pump's run loop in its own goroutine. Calling Start
// twice without an intervening Stop is a programming error.
func (p *Pump) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.done = make(chan struct{})

	go p.run(ctx)
}

func (p *Pump) run(ctx context.Context) {
	defer close(p.done)

	var ticker *time.Ticker
	var tickCh <-chan time.Time
	if p.interval > 0 {
		ticker = time.NewTicker(p.interval)
		defer ticker.Stop()
		tickCh = ticker.C
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-tickCh:
			p.communicateAll()
		case <-p.kick:
			p.communicateAll()
		}
	}
}

func (p *Pump) communicateAll() {
	p.mu.Lock()
	buses := make([]Communicator, len(p.buses))
	copy(buses, p.buses)
	p.mu.Unlock()

	for _, bus := range buses {
		if err := bus.Communicate(); err != nil {
			p.log.Warn("pump: Communicate returned error", "error", err)
		}
	}
}

// Stop cancels the run loop and blocks until it has exited.
func (p *Pump) Stop() {
	if p.cancel == nil {
		return
	}
	p.cancel()
	<-p.done
}
