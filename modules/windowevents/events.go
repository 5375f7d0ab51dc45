// Package windowevents gives the window platform collaborator named
// alongside the core a concrete event family, plus a stub producer that
// exercises the registration path without bringing up a real window
// platform (Win32/Wayland bring-up is explicitly out of scope).
package windowevents

import (
	"sync"

	eventcore "github.com/RRRella/solarc-eventcore"
)

// Type identifies the kind of window transition.
type Type int

const (
	Shown Type = iota
	Hidden
	Close
	Generic
)

// Handle is an opaque window identity; platform glue fills it in, this
// package never interprets it.
type Handle uintptr

// Event is the immutable payload dispatched through a windowevents bus.
type Event struct {
	Type   Type
	Handle Handle
}

// Producer wraps an eventcore.EventProducer[Event] with named
// constructors for each transition.
type Producer struct {
	*eventcore.EventProducer[Event]
}

// NewProducer constructs a window event producer. A nil log uses the
// core's NopLogger.
func NewProducer(log eventcore.Logger) *Producer {
	return &Producer{EventProducer: eventcore.NewEventProducer[Event](log)}
}

func (p *Producer) DispatchShown(h Handle)   { p.DispatchEvent(Event{Type: Shown, Handle: h}) }
func (p *Producer) DispatchHidden(h Handle)  { p.DispatchEvent(Event{Type: Hidden, Handle: h}) }
func (p *Producer) DispatchClose(h Handle)   { p.DispatchEvent(Event{Type: Close, Handle: h}) }
func (p *Producer) DispatchGeneric(h Handle) { p.DispatchEvent(Event{Type: Generic, Handle: h}) }

// StubWindowPlatform stands in for real platform window bring-up: it
// holds a Producer and a fixed handle, and offers methods a caller (or a
// test) can invoke to simulate the platform firing lifecycle events. No
// real window is created.
type StubWindowPlatform struct {
	mu       sync.Mutex
	producer *Producer
	handle   Handle
	shown    bool
}

// NewStubWindowPlatform constructs a stub bound to handle, with its own
// producer.
func NewStubWindowPlatform(log eventcore.Logger, handle Handle) *StubWindowPlatform {
	return &StubWindowPlatform{producer: NewProducer(log), handle: handle}
}

// Producer returns the underlying event producer, for bus registration.
func (s *StubWindowPlatform) Producer() *Producer { return s.producer }

// Show simulates the platform window becoming visible.
func (s *StubWindowPlatform) Show() {
	s.mu.Lock()
	s.shown = true
	s.mu.Unlock()
	s.producer.DispatchShown(s.handle)
}

// Hide simulates the platform window becoming hidden.
func (s *StubWindowPlatform) Hide() {
	s.mu.Lock()
	s.shown = false
	s.mu.Unlock()
	s.producer.DispatchHidden(s.handle)
}

// RequestClose simulates a user-initiated close request.
func (s *StubWindowPlatform) RequestClose() {
	s.producer.DispatchClose(s.handle)
}

// IsShown reports the stub's last known visibility.
func (s *StubWindowPlatform) IsShown() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shown
}
