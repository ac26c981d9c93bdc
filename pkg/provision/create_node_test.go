/*
 * Copyright 2026 Opsfabric, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package provision

import (
	"context"
	"net/netip"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/opsfabric/nodeflow/pkg/logger"
	"github.com/opsfabric/nodeflow/pkg/models"
	"github.com/opsfabric/nodeflow/pkg/netbox"
	"github.com/opsfabric/nodeflow/pkg/subscription"
)

var testCustomerID = uuid.MustParse("2f47f65a-0911-e511-80d0-005056956c1a")

func testDevice() *netbox.Device {
	return &netbox.Device{
		ID:         12,
		Name:       "loc1-core-rtr1",
		DeviceType: netbox.Ref{ID: 3, Name: "7280R3"},
		Role:       netbox.Ref{ID: 2, Name: "router"},
		Site:       netbox.Ref{ID: 1, Name: "loc1"},
		Status:     netbox.Status{Value: "planned", Label: "Planned"},
		PrimaryIP4: &netbox.IPRef{ID: 41, Address: "10.0.0.12/32"},
		PrimaryIP6: &netbox.IPRef{ID: 42, Address: "fc00:0:0:12::/128"},
	}
}

func newTestProvisioner(t *testing.T, inventory netbox.Inventory, publisher EventPublisher) (*Provisioner, *subscription.Store) {
	t.Helper()

	store := subscription.NewStore()

	return NewProvisioner(inventory, store, testCustomerID, publisher, logger.NewTestLogger()), store
}

func TestPlannedDeviceChoices(t *testing.T) {
	ctrl := gomock.NewController(t)
	inventory := netbox.NewMockInventory(ctrl)

	inventory.EXPECT().GetDevices(gomock.Any(), "planned").Return([]netbox.Device{
		{ID: 12, Name: "loc1-core-rtr1", Status: netbox.Status{Value: "planned"}},
		{ID: 13, Name: "loc1-core-rtr2", Status: netbox.Status{Value: "planned"}},
	}, nil)

	prov, _ := newTestProvisioner(t, inventory, nil)

	choices, err := prov.PlannedDeviceChoices(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []DeviceChoice{
		{DeviceID: 12, DeviceName: "loc1-core-rtr1", DeviceStatus: "planned"},
		{DeviceID: 13, DeviceName: "loc1-core-rtr2", DeviceStatus: "planned"},
	}, choices)
}

func TestProvisionNode(t *testing.T) {
	ctrl := gomock.NewController(t)
	inventory := netbox.NewMockInventory(ctrl)
	publisher := NewMockEventPublisher(ctrl)

	inventory.EXPECT().GetDevice(gomock.Any(), "loc1-core-rtr1").Return(testDevice(), nil)

	var updatePayload netbox.DevicePayload

	inventory.EXPECT().Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p netbox.Payload) (bool, error) {
			updatePayload = p.(netbox.DevicePayload)
			return true, nil
		})

	var events []models.NodeLifecycleEventData

	publisher.EXPECT().PublishNodeLifecycleEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, data models.NodeLifecycleEventData) error {
			events = append(events, data)
			return nil
		}).Times(2)

	prov, store := newTestProvisioner(t, inventory, publisher)

	sub, err := prov.ProvisionNode(context.Background(), CreateNodeInput{
		DeviceID:     12,
		DeviceName:   "loc1-core-rtr1",
		DeviceStatus: "planned",
	})
	require.NoError(t, err)

	assert.Equal(t, subscription.LifecycleActive, sub.Status)
	assert.Equal(t, testCustomerID, sub.CustomerID)
	assert.Equal(t, 12, sub.Node.NodeID)
	assert.Equal(t, "10.0.0.12/32", sub.Node.IPv4Loopback.String())
	assert.Equal(t, "fc00:0:0:12::/128", sub.Node.IPv6Loopback.String())

	stored, err := store.Get(sub.SubscriptionID)
	require.NoError(t, err)
	assert.Same(t, sub, stored)

	// The NetBox update runs after activation, so it carries the final
	// lifecycle state.
	require.NotNil(t, updatePayload.Status)
	assert.Equal(t, "active", *updatePayload.Status)
	assert.Equal(t, 12, updatePayload.ID)
	assert.Equal(t, 1, updatePayload.Site)

	require.Len(t, events, 2)
	assert.Equal(t, "initial", events[0].PreviousStatus)
	assert.Equal(t, "provisioning", events[0].CurrentStatus)
	assert.Equal(t, "provisioning", events[1].PreviousStatus)
	assert.Equal(t, "active", events[1].CurrentStatus)
}

func TestProvisionNodeDeviceMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	inventory := netbox.NewMockInventory(ctrl)

	inventory.EXPECT().GetDevice(gomock.Any(), "loc1-core-rtr9").Return(nil, nil)

	prov, store := newTestProvisioner(t, inventory, nil)

	_, err := prov.ProvisionNode(context.Background(), CreateNodeInput{
		DeviceID:   99,
		DeviceName: "loc1-core-rtr9",
	})
	require.ErrorIs(t, err, errDeviceNotFound)

	// The first step already registered the subscription; it stays in
	// the initial state.
	subs := store.ByStatus(subscription.LifecycleInitial)
	require.Len(t, subs, 1)
	assert.Equal(t, "loc1-core-rtr9", subs[0].Node.NodeName)
}

func TestProvisionNodeMissingPrimaryIP(t *testing.T) {
	ctrl := gomock.NewController(t)
	inventory := netbox.NewMockInventory(ctrl)

	device := testDevice()
	device.PrimaryIP6 = nil

	inventory.EXPECT().GetDevice(gomock.Any(), "loc1-core-rtr1").Return(device, nil)

	prov, _ := newTestProvisioner(t, inventory, nil)

	_, err := prov.ProvisionNode(context.Background(), CreateNodeInput{
		DeviceID:   12,
		DeviceName: "loc1-core-rtr1",
	})
	require.ErrorIs(t, err, errMissingPrimaryIP)
}

func TestProvisionNodeContextCanceled(t *testing.T) {
	ctrl := gomock.NewController(t)
	inventory := netbox.NewMockInventory(ctrl)

	prov, _ := newTestProvisioner(t, inventory, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := prov.ProvisionNode(ctx, CreateNodeInput{DeviceID: 12, DeviceName: "loc1-core-rtr1"})
	require.ErrorIs(t, err, context.Canceled)
}

func TestBuildDevicePayload(t *testing.T) {
	sub := subscription.New(testCustomerID)
	sub.Node.NodeID = 12
	sub.Node.NodeName = "loc1-core-rtr1"
	sub.Status = subscription.LifecycleActive

	payload := BuildDevicePayload(sub, testDevice())

	fields := payload.Fields()
	assert.Equal(t, 3, fields["device_type"])
	assert.Equal(t, 2, fields["device_role"])
	assert.Equal(t, 1, fields["site"])
	assert.Equal(t, "loc1-core-rtr1", fields["name"])
	assert.Equal(t, "active", fields["status"])
	assert.Equal(t, 41, fields["primary_ip4"])
	assert.Equal(t, 42, fields["primary_ip6"])
}

func TestRouterConfig(t *testing.T) {
	sub := subscription.New(testCustomerID)
	sub.Node.NodeName = "loc1-core-rtr1"
	sub.Node.IPv4Loopback = netip.MustParsePrefix("10.0.0.12/32")
	sub.Node.IPv6Loopback = netip.MustParsePrefix("fc00:0:0:12::/128")

	config := RouterConfig(sub)

	assert.Contains(t, config, "hostname loc1-core-rtr1")
	assert.Contains(t, config, "ip address 10.0.0.12/32")
	assert.Contains(t, config, "ipv6 address fc00:0:0:12::/128")
	assert.Contains(t, config, "copy running-config startup-config")
}
