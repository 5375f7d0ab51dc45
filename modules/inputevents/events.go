// Package inputevents gives the input manager collaborator named
// alongside the core a concrete event family: discrete key and mouse
// button transitions. It deliberately does not model continuous state
// (held keys, mouse position) — events represent transitions only,
// matching the press/release discipline of the platform input layer
// this is grounded on.
package inputevents

import eventcore "github.com/RRRella/solarc-eventcore"

// KeyCode is a small, platform-agnostic subset of keyboard keys.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyA
	KeyB
	KeyEnter
	KeyEscape
	KeySpace
)

// MouseButton identifies one of the standard mouse buttons.
type MouseButton uint8

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
)

// Modifiers captures the modifier key state at the time of an event.
type Modifiers struct {
	Ctrl  bool
	Shift bool
	Alt   bool
}

// KeyEvent is a discrete key-press or key-release transition.
type KeyEvent struct {
	Code      KeyCode
	Pressed   bool
	Repeat    bool
	Modifiers Modifiers
}

// MouseButtonEvent is a discrete mouse-button-press or -release
// transition.
type MouseButtonEvent struct {
	Button    MouseButton
	Pressed   bool
	X, Y      int
	Modifiers Modifiers
}

// Event is the family this package's bus carries: exactly one of Key or
// Mouse is populated, discriminated by Kind.
type Event struct {
	Kind  Kind
	Key   KeyEvent
	Mouse MouseButtonEvent
}

// Kind discriminates which field of Event is populated.
type Kind int

const (
	KindKey Kind = iota
	KindMouseButton
)

// Producer wraps an eventcore.EventProducer[Event] with named
// constructors for each transition kind.
type Producer struct {
	*eventcore.EventProducer[Event]
}

// NewProducer constructs an input event producer. A nil log uses the
// core's NopLogger.
func NewProducer(log eventcore.Logger) *Producer {
	return &Producer{EventProducer: eventcore.NewEventProducer[Event](log)}
}

func (p *Producer) DispatchKey(e KeyEvent) {
	p.DispatchEvent(Event{Kind: KindKey, Key: e})
}

func (p *Producer) DispatchMouseButton(e MouseButtonEvent) {
	p.DispatchEvent(Event{Kind: KindMouseButton, Mouse: e})
}
