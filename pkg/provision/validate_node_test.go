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
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/opsfabric/nodeflow/pkg/netbox"
	"github.com/opsfabric/nodeflow/pkg/subscription"
)

func activeSubscription(t *testing.T, store *subscription.Store) *subscription.Subscription {
	t.Helper()

	sub := subscription.New(testCustomerID)
	sub.Node = subscription.NodeBlock{
		NodeID:       12,
		NodeName:     "loc1-core-rtr1",
		NodeStatus:   "active",
		IPv4Loopback: netip.MustParsePrefix("10.0.0.12/32"),
		IPv6Loopback: netip.MustParsePrefix("fc00:0:0:12::/128"),
	}
	sub.Status = subscription.LifecycleActive

	require.NoError(t, store.Add(sub))

	return sub
}

func TestValidateNode(t *testing.T) {
	ctrl := gomock.NewController(t)
	inventory := netbox.NewMockInventory(ctrl)

	device := testDevice()
	device.Status = netbox.Status{Value: "active", Label: "Active"}

	inventory.EXPECT().GetDevice(gomock.Any(), "loc1-core-rtr1").Return(device, nil)

	prov, store := newTestProvisioner(t, inventory, nil)
	sub := activeSubscription(t, store)

	require.NoError(t, prov.ValidateNode(context.Background(), sub.SubscriptionID))
}

func TestValidateNodeDeviceInactive(t *testing.T) {
	ctrl := gomock.NewController(t)
	inventory := netbox.NewMockInventory(ctrl)

	// Device fell back to planned while the subscription stayed active.
	inventory.EXPECT().GetDevice(gomock.Any(), "loc1-core-rtr1").Return(testDevice(), nil)

	prov, store := newTestProvisioner(t, inventory, nil)
	sub := activeSubscription(t, store)

	err := prov.ValidateNode(context.Background(), sub.SubscriptionID)
	require.ErrorIs(t, err, errNodeNotActive)
}

func TestValidateNodeSubscriptionInactive(t *testing.T) {
	ctrl := gomock.NewController(t)
	inventory := netbox.NewMockInventory(ctrl)

	device := testDevice()
	device.Status = netbox.Status{Value: "active", Label: "Active"}

	inventory.EXPECT().GetDevice(gomock.Any(), "loc1-core-rtr1").Return(device, nil)

	prov, store := newTestProvisioner(t, inventory, nil)
	sub := activeSubscription(t, store)
	require.NoError(t, sub.SetStatus(subscription.LifecycleProvisioning))

	err := prov.ValidateNode(context.Background(), sub.SubscriptionID)
	require.ErrorIs(t, err, errSubscriptionNotActive)
}

func TestValidateNodeDeviceGone(t *testing.T) {
	ctrl := gomock.NewController(t)
	inventory := netbox.NewMockInventory(ctrl)

	inventory.EXPECT().GetDevice(gomock.Any(), "loc1-core-rtr1").Return(nil, nil)

	prov, store := newTestProvisioner(t, inventory, nil)
	sub := activeSubscription(t, store)

	err := prov.ValidateNode(context.Background(), sub.SubscriptionID)
	require.ErrorIs(t, err, errDeviceNotFound)
}

func TestValidateNodeUnknownSubscription(t *testing.T) {
	ctrl := gomock.NewController(t)
	inventory := netbox.NewMockInventory(ctrl)

	prov, _ := newTestProvisioner(t, inventory, nil)

	err := prov.ValidateNode(context.Background(), uuid.New())
	require.ErrorIs(t, err, subscription.ErrNotFound)
}
