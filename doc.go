// Package eventcore implements the concurrent producer/listener event
// communication core: a thread-safe event queue, a small family of
// dispatchers (direct, queue, and lifetime-gated bridge), registration
// handles that bind producers and listeners to a bus, and a queued
// observer bus that fans events from many producers to many listeners
// through a single externally-driven Communicate step.
//
// The core makes no assumption about what an event family carries; T is
// supplied by the caller and is treated as an immutable value once
// dispatched.
package eventcore
