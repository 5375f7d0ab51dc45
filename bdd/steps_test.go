package bdd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/cucumber/godog"

	eventcore "github.com/RRRella/solarc-eventcore"
)

type busContext struct {
	bus       *eventcore.ObserverBus[int]
	producer  *eventcore.EventProducer[int]
	listener  *eventcore.EventListener[int]
	got       []int
	listener2 *eventcore.EventListener[int]
	got2      []int
	dupErr    error
}

func (c *busContext) aBusWithOneProducerAndOneListenerCountingEvents() error {
	c.bus = eventcore.NewObserverBus[int](nil, false)
	c.producer = eventcore.NewEventProducer[int](nil)
	if err := c.bus.RegisterProducer(c.producer); err != nil {
		return err
	}
	c.listener = eventcore.NewEventListener[int](nil, func(e int) { c.got = append(c.got, e) })
	return c.bus.RegisterListener(c.listener)
}

func (c *busContext) theProducerDispatchesEventsTagged(tags string) error {
	for _, tag := range parseTags(tags) {
		c.producer.DispatchEvent(tag)
	}
	return nil
}

func (c *busContext) theBusCommunicatesAndTheListenerProcessesEvents() error {
	if err := c.bus.Communicate(); err != nil {
		return err
	}
	c.listener.ProcessEvents()
	if c.listener2 != nil {
		c.listener2.ProcessEvents()
	}
	return nil
}

func (c *busContext) theListenerObservedEventsInOrder(tags string) error {
	want := parseTags(tags)
	if len(want) != len(c.got) {
		return fmt.Errorf("expected %v, got %v", want, c.got)
	}
	for i := range want {
		if want[i] != c.got[i] {
			return fmt.Errorf("expected %v, got %v", want, c.got)
		}
	}
	return nil
}

func (c *busContext) theProducerIsRegisteredAgainOnTheSameBus() error {
	c.dupErr = c.bus.RegisterProducer(c.producer)
	return nil
}

func (c *busContext) theDuplicateRegistrationIsRejected() error {
	if c.dupErr == nil {
		return fmt.Errorf("expected a duplicate-registration error, got nil")
	}
	return nil
}

func (c *busContext) theProducerStillHasExactlyNRegistrations(n int) error {
	if got := c.producer.RegistrationCount(); got != n {
		return fmt.Errorf("expected %d registrations, got %d", n, got)
	}
	return nil
}

func (c *busContext) theFirstListenerIsClosed() error {
	c.listener.Close()
	return nil
}

func (c *busContext) aSecondListenerCountingEventsIsRegistered() error {
	c.listener2 = eventcore.NewEventListener[int](nil, func(e int) { c.got2 = append(c.got2, e) })
	return c.bus.RegisterListener(c.listener2)
}

func (c *busContext) theSecondListenerObservedExactlyNEvent(n int) error {
	if len(c.got2) != n {
		return fmt.Errorf("expected %d events, got %d", n, len(c.got2))
	}
	return nil
}

func parseTags(tags string) []int {
	parts := strings.Split(tags, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			continue
		}
		out = append(out, n)
	}
	return out
}

// InitializeScenario registers every step definition against a fresh
// busContext per scenario.
func InitializeScenario(ctx *godog.ScenarioContext) {
	c := &busContext{}

	ctx.Before(func(ctx2 context.Context, sc *godog.Scenario) (context.Context, error) {
		*c = busContext{}
		return ctx2, nil
	})

	ctx.Step(`^a bus with one producer and one listener counting events$`, c.aBusWithOneProducerAndOneListenerCountingEvents)
	ctx.Step(`^the producer dispatches events tagged (.+)$`, c.theProducerDispatchesEventsTagged)
	ctx.Step(`^the bus communicates and the listener processes events$`, c.theBusCommunicatesAndTheListenerProcessesEvents)
	ctx.Step(`^the listener observed events in order (.+)$`, c.theListenerObservedEventsInOrder)
	ctx.Step(`^the producer is registered again on the same bus$`, c.theProducerIsRegisteredAgainOnTheSameBus)
	ctx.Step(`^the duplicate registration is rejected$`, c.theDuplicateRegistrationIsRejected)
	ctx.Step(`^the producer still has exactly (\d+) registration$`, c.theProducerStillHasExactlyNRegistrations)
	ctx.Step(`^the first listener is closed$`, c.theFirstListenerIsClosed)
	ctx.Step(`^a second listener counting events is registered$`, c.aSecondListenerCountingEventsIsRegistered)
	ctx.Step(`^the second listener observed exactly (\d+) event$`, c.theSecondListenerObservedExactlyNEvent)
}
