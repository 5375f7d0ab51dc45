package eventcore

import (
	"errors"
	"fmt"
)

// Sentinel errors identifying the error taxonomy: programming violations
// are never silently swallowed by the caller-visible API even though the
// core itself always recovers locally; duplicate/absent registration and
// shutdown races are expected, logged, and otherwise no-ops.
var (
	// ErrProgrammingViolation marks misuse that is a programming error, not
	// a runtime condition: a nil event, a nil producer/listener, a
	// re-entrant Communicate call, or a Communicate call off the owner
	// thread. See Config.Strict for turning these into panics.
	ErrProgrammingViolation = errors.New("eventcore: programming violation")

	// ErrNilEvent marks a dispatch of a nil event where T is a pointer or
	// interface type.
	ErrNilEvent = fmt.Errorf("%w: nil event", ErrProgrammingViolation)

	// ErrNilProducer marks a nil producer handed to RegisterProducer.
	ErrNilProducer = fmt.Errorf("%w: nil producer", ErrProgrammingViolation)

	// ErrNilListener marks a nil listener handed to RegisterListener.
	ErrNilListener = fmt.Errorf("%w: nil listener", ErrProgrammingViolation)

	// ErrConcurrentCommunicate marks a second, overlapping Communicate call
	// on the same bus. Communicate is owner-thread-only by convention; Go
	// has no portable way to check which goroutine is calling, so this is
	// enforced with a re-entrancy guard instead.
	ErrConcurrentCommunicate = fmt.Errorf("%w: concurrent Communicate call", ErrProgrammingViolation)

	// ErrDuplicateRegistration marks a register call for an
	// already-registered producer or listener. Handled by logging a
	// warning and returning without changing bus state.
	ErrDuplicateRegistration = errors.New("eventcore: duplicate registration")

	// ErrAbsentRegistration marks an unregister call for an unknown
	// producer or listener. Handled by logging a trace and returning.
	ErrAbsentRegistration = errors.New("eventcore: absent registration")
)

// violationAction applies the configured strictness policy to a
// programming violation: panic when Strict, otherwise log and return the
// error for the caller to inspect with errors.Is.
func violationAction(log Logger, strict bool, err error, msg string, kv ...any) error {
	if log != nil {
		log.Error(msg, append(kv, "error", err)...)
	}
	if strict {
		panic(err)
	}
	return err
}
