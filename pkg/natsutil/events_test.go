package natsutil

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opsfabric/nodeflow/pkg/models"
)

func TestMarshalNodeLifecycleEvent(t *testing.T) {
	timestamp := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)

	data := models.NodeLifecycleEventData{
		SubscriptionID: "6ba7b810-9dad-11d1-80b4-00c04fd430c8",
		NodeName:       "loc1-core",
		PreviousStatus: "provisioning",
		CurrentStatus:  "active",
		Timestamp:      timestamp,
	}

	eventBytes, subject, err := marshalNodeLifecycleEvent(data)
	require.NoError(t, err)
	require.Equal(t, "events.node.lifecycle", subject)

	var event models.CloudEvent

	require.NoError(t, json.Unmarshal(eventBytes, &event))
	assert.Equal(t, "1.0", event.SpecVersion)
	assert.Equal(t, "nodeflow/provisioner", event.Source)
	assert.Equal(t, "com.opsfabric.nodeflow.node.lifecycle", event.Type)
	assert.Equal(t, "application/json", event.DataContentType)
	assert.NotEmpty(t, event.ID)
	require.NotNil(t, event.Time)
	assert.True(t, event.Time.Equal(timestamp))

	payload, err := json.Marshal(event.Data)
	require.NoError(t, err)

	var decoded models.NodeLifecycleEventData

	require.NoError(t, json.Unmarshal(payload, &decoded))
	assert.Equal(t, data.NodeName, decoded.NodeName)
	assert.Equal(t, data.PreviousStatus, decoded.PreviousStatus)
	assert.Equal(t, data.CurrentStatus, decoded.CurrentStatus)
}

func TestMarshalNodeLifecycleEventUniqueIDs(t *testing.T) {
	data := models.NodeLifecycleEventData{NodeName: "loc1-core", Timestamp: time.Now()}

	first, _, err := marshalNodeLifecycleEvent(data)
	require.NoError(t, err)

	second, _, err := marshalNodeLifecycleEvent(data)
	require.NoError(t, err)

	var firstEvent, secondEvent models.CloudEvent

	require.NoError(t, json.Unmarshal(first, &firstEvent))
	require.NoError(t, json.Unmarshal(second, &secondEvent))
	assert.NotEqual(t, firstEvent.ID, secondEvent.ID)
}
