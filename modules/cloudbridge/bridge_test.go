package cloudbridge_test

import (
	"testing"

	eventcore "github.com/RRRella/solarc-eventcore"
	"github.com/RRRella/solarc-eventcore/modules/cloudbridge"
	"github.com/stretchr/testify/require"
)

type widgetCreated struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestBridgeExportsOneCloudEventPerDomainEvent(t *testing.T) {
	bus := eventcore.NewObserverBus[widgetCreated](nil, false)
	producer := eventcore.NewEventProducer[widgetCreated](nil)
	require.NoError(t, bus.RegisterProducer(producer))

	exporter := &cloudbridge.SliceExporter{}
	bridge := cloudbridge.NewBridge[widgetCreated](exporter, "urn:eventcore:demo", "com.eventcore.widget.created", nil)
	listener := eventcore.NewEventListener[widgetCreated](nil, bridge.OnEvent)
	require.NoError(t, bus.RegisterListener(listener))

	producer.DispatchEvent(widgetCreated{ID: "w1", Name: "gear"})
	producer.DispatchEvent(widgetCreated{ID: "w2", Name: "cog"})

	require.NoError(t, bus.Communicate())
	listener.ProcessEvents()

	require.Len(t, exporter.Events, 2)
	require.Equal(t, "com.eventcore.widget.created", exporter.Events[0].Type())
	require.Equal(t, "urn:eventcore:demo", exporter.Events[0].Source())
	require.NotEmpty(t, exporter.Events[0].ID())
}
