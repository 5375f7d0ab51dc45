// Package cloudbridge adapts events delivered through an eventcore bus
// into CloudEvents 1.0 envelopes for export to an external observer —
// a log sink, a broker client, a debugging console — without turning
// the bus itself into a durable or cross-process transport.
package cloudbridge

import (
	"context"
	"encoding/json"
	"time"

	cloudevents "github.com/cloudevents/sdk-go/v2"
	"github.com/google/uuid"

	eventcore "github.com/RRRella/solarc-eventcore"
)

// Exporter receives a converted CloudEvent. Implementations must not
// block the caller for long: Bridge.OnEvent calls Export synchronously
// from the bus's Communicate/ProcessEvents path.
type Exporter interface {
	Export(ctx context.Context, event cloudevents.Event) error
}

// LogExporter logs the CloudEvent through an eventcore.Logger instead of
// forwarding it anywhere, the default wiring for local development.
type LogExporter struct {
	Log eventcore.Logger
}

func (e LogExporter) Export(_ context.Context, event cloudevents.Event) error {
	log := e.Log
	if log == nil {
		log = eventcore.NopLogger{}
	}
	log.Info("cloudevent exported", "id", event.ID(), "type", event.Type(), "source", event.Source())
	return nil
}

// SliceExporter accumulates CloudEvents in memory, useful in tests and
// demos that want to assert on what was exported.
type SliceExporter struct {
	Events []cloudevents.Event
}

func (e *SliceExporter) Export(_ context.Context, event cloudevents.Event) error {
	e.Events = append(e.Events, event)
	return nil
}

// Bridge converts events of family T to CloudEvents and hands them to an
// Exporter. SourceURI and TypePrefix name the CloudEvents "source" and
// "type" attributes; Encode turns a domain event into the CloudEvents
// "data" payload (defaults to JSON-encoding the value directly).
type Bridge[T any] struct {
	Exporter   Exporter
	SourceURI  string
	TypePrefix string
	Encode     func(T) (any, error)
	Log        eventcore.Logger
}

// NewBridge constructs a Bridge exporting to exporter. A nil exporter
// defaults to LogExporter.
func NewBridge[T any](exporter Exporter, sourceURI, typePrefix string, log eventcore.Logger) *Bridge[T] {
	if exporter == nil {
		exporter = LogExporter{Log: log}
	}
	return &Bridge[T]{Exporter: exporter, SourceURI: sourceURI, TypePrefix: typePrefix, Log: log}
}

// OnEvent converts event and forwards it to the configured Exporter. It
// is meant to be passed directly as an eventcore.OnEventFunc[T].
func (b *Bridge[T]) OnEvent(event T) {
	ce, err := b.toCloudEvent(event)
	if err != nil {
		b.log().Error("cloudbridge: convert failed", "error", err)
		return
	}
	if err := b.Exporter.Export(context.Background(), ce); err != nil {
		b.log().Error("cloudbridge: export failed", "error", err)
	}
}

func (b *Bridge[T]) toCloudEvent(event T) (cloudevents.Event, error) {
	ce := cloudevents.NewEvent()
	ce.SetID(generateEventID())
	ce.SetSource(b.SourceURI)
	ce.SetType(b.TypePrefix)
	ce.SetTime(time.Now().UTC())

	payload, err := b.encode(event)
	if err != nil {
		return ce, err
	}
	if err := ce.SetData(cloudevents.ApplicationJSON, payload); err != nil {
		return ce, err
	}
	return ce, nil
}

func (b *Bridge[T]) encode(event T) (any, error) {
	if b.Encode != nil {
		return b.Encode(event)
	}
	raw, err := json.Marshal(event)
	if err != nil {
		return nil, err
	}
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, err
	}
	return generic, nil
}

func (b *Bridge[T]) log() eventcore.Logger {
	if b.Log == nil {
		return eventcore.NopLogger{}
	}
	return b.Log
}

// generateEventID mints a UUIDv7 identity, falling back to UUIDv4.
func generateEventID() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.New().String()
}
