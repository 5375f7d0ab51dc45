package windowevents_test

import (
	"testing"

	eventcore "github.com/RRRella/solarc-eventcore"
	"github.com/RRRella/solarc-eventcore/modules/windowevents"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStubWindowPlatformFiresLifecycleEvents(t *testing.T) {
	bus := eventcore.NewObserverBus[windowevents.Event](nil, false)
	platform := windowevents.NewStubWindowPlatform(nil, windowevents.Handle(1))
	require.NoError(t, bus.RegisterProducer(platform.Producer().EventProducer))

	var got []windowevents.Type
	listener := eventcore.NewEventListener[windowevents.Event](nil, func(e windowevents.Event) {
		got = append(got, e.Type)
	})
	require.NoError(t, bus.RegisterListener(listener))

	platform.Show()
	platform.RequestClose()
	platform.Hide()

	require.NoError(t, bus.Communicate())
	listener.ProcessEvents()

	assert.Equal(t, []windowevents.Type{windowevents.Shown, windowevents.Close, windowevents.Hidden}, got)
	assert.False(t, platform.IsShown())
}
