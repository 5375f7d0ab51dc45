// Package appevents gives the application lifecycle collaborator named
// alongside the core a concrete event family: an eventcore.EventProducer
// carrying the five phases an application main loop passes through.
package appevents

import eventcore "github.com/RRRella/solarc-eventcore"

// Type identifies which lifecycle phase completed.
type Type int

const (
	InitializeComplete Type = iota
	StagingComplete
	LoadingComplete
	RunningComplete
	CleanupComplete
)

func (t Type) String() string {
	switch t {
	case InitializeComplete:
		return "InitializeComplete"
	case StagingComplete:
		return "StagingComplete"
	case LoadingComplete:
		return "LoadingComplete"
	case RunningComplete:
		return "RunningComplete"
	case CleanupComplete:
		return "CleanupComplete"
	default:
		return "Unknown"
	}
}

// PostRunAction is the action requested by a RunningComplete event.
type PostRunAction int

const (
	Shutdown PostRunAction = iota
	Restart
	OpenNewProject
)

// Event is the immutable payload eventcore.EventProducer[Event] dispatches.
// ProjectPath is only meaningful for StagingComplete; Action only for
// RunningComplete.
type Event struct {
	Type        Type
	ProjectPath string
	Action      PostRunAction
}

// Producer wraps an eventcore.EventProducer[Event] with named constructors
// for each lifecycle phase, mirroring the concrete event subclasses of the
// family this is ported from.
type Producer struct {
	*eventcore.EventProducer[Event]
}

// NewProducer constructs a lifecycle event producer. A nil log uses the
// core's NopLogger.
func NewProducer(log eventcore.Logger) *Producer {
	return &Producer{EventProducer: eventcore.NewEventProducer[Event](log)}
}

func (p *Producer) DispatchInitializeComplete() {
	p.DispatchEvent(Event{Type: InitializeComplete})
}

func (p *Producer) DispatchStagingComplete(projectPath string) {
	p.DispatchEvent(Event{Type: StagingComplete, ProjectPath: projectPath})
}

func (p *Producer) DispatchLoadingComplete() {
	p.DispatchEvent(Event{Type: LoadingComplete})
}

func (p *Producer) DispatchRunningComplete(action PostRunAction) {
	p.DispatchEvent(Event{Type: RunningComplete, Action: action})
}

func (p *Producer) DispatchCleanupComplete() {
	p.DispatchEvent(Event{Type: CleanupComplete})
}
