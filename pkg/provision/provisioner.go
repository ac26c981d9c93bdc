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

// Package provision defines the node subscription provisioning workflows
// and the service that periodically validates them against NetBox.
package provision

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/opsfabric/nodeflow/pkg/logger"
	"github.com/opsfabric/nodeflow/pkg/models"
	"github.com/opsfabric/nodeflow/pkg/netbox"
	"github.com/opsfabric/nodeflow/pkg/subscription"
	"github.com/opsfabric/nodeflow/pkg/workflow"
)

// Workflow state keys shared between steps.
const (
	StateKeySubscription  = "subscription"
	StateKeyDevice        = "device"
	StateKeyRouterConfig  = "router_config"
	StateKeyNetboxUpdated = "netbox_updated"
)

var (
	errDeviceNotFound   = errors.New("device not found in netbox")
	errMissingPrimaryIP = errors.New("device is missing a primary IP address")
	errMissingStateKey  = errors.New("missing workflow state key")
)

// Provisioner builds and runs the node workflows.
type Provisioner struct {
	inventory  netbox.Inventory
	store      *subscription.Store
	customerID uuid.UUID
	publisher  EventPublisher // nil disables eventing
	clock      Clock
	logger     logger.Logger
}

// NewProvisioner wires a Provisioner. publisher may be nil.
func NewProvisioner(
	inventory netbox.Inventory,
	store *subscription.Store,
	customerID uuid.UUID,
	publisher EventPublisher,
	log logger.Logger,
) *Provisioner {
	return &Provisioner{
		inventory:  inventory,
		store:      store,
		customerID: customerID,
		publisher:  publisher,
		clock:      realClock{},
		logger:     log,
	}
}

// publishTransition emits a lifecycle event. Events are best effort; a
// publish failure never fails the workflow step that caused it.
func (p *Provisioner) publishTransition(ctx context.Context, sub *subscription.Subscription, previous subscription.Lifecycle, reason string) {
	if p.publisher == nil {
		return
	}

	data := models.NodeLifecycleEventData{
		SubscriptionID: sub.SubscriptionID.String(),
		NodeName:       sub.Node.NodeName,
		PreviousStatus: string(previous),
		CurrentStatus:  string(sub.Status),
		Reason:         reason,
		Timestamp:      p.clock.Now(),
	}

	if err := p.publisher.PublishNodeLifecycleEvent(ctx, data); err != nil {
		p.logger.Warn().Err(err).
			Str("subscription_id", data.SubscriptionID).
			Msg("Failed to publish node lifecycle event")
	}
}

func subscriptionFromState(state workflow.State) (*subscription.Subscription, error) {
	sub, ok := state[StateKeySubscription].(*subscription.Subscription)
	if !ok {
		return nil, fmt.Errorf("%w: %s", errMissingStateKey, StateKeySubscription)
	}

	return sub, nil
}

func deviceFromState(state workflow.State) (*netbox.Device, error) {
	device, ok := state[StateKeyDevice].(*netbox.Device)
	if !ok {
		return nil, fmt.Errorf("%w: %s", errMissingStateKey, StateKeyDevice)
	}

	return device, nil
}

// BuildDevicePayload maps a node subscription onto the NetBox device it was
// provisioned from. The subscription's lifecycle state becomes the device
// status.
func BuildDevicePayload(sub *subscription.Subscription, device *netbox.Device) netbox.DevicePayload {
	name := sub.Node.NodeName
	status := string(sub.Status)

	payload := netbox.DevicePayload{
		ID:         sub.Node.NodeID,
		Site:       device.Site.ID,
		DeviceType: device.DeviceType.ID,
		DeviceRole: device.Role.ID,
		Name:       &name,
		Status:     &status,
	}

	if device.PrimaryIP4 != nil {
		payload.PrimaryIP4 = &device.PrimaryIP4.ID
	}

	if device.PrimaryIP6 != nil {
		payload.PrimaryIP6 = &device.PrimaryIP6.ID
	}

	return payload
}
