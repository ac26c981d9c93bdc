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
	"fmt"
	"net/netip"

	"github.com/opsfabric/nodeflow/pkg/subscription"
	"github.com/opsfabric/nodeflow/pkg/workflow"
)

// DeviceChoice is one planned device an operator can select in the initial
// input form. Rendering the form is the orchestration framework's job; this
// is the data it shows.
type DeviceChoice struct {
	DeviceID     int    `json:"device_id"`
	DeviceName   string `json:"device_name"`
	DeviceStatus string `json:"device_status"`
}

// CreateNodeInput carries the operator's selection from the initial input
// form.
type CreateNodeInput struct {
	DeviceID     int
	DeviceName   string
	DeviceStatus string
}

// PlannedDeviceChoices lists the devices in planned state that a Create
// Node workflow can be started for.
func (p *Provisioner) PlannedDeviceChoices(ctx context.Context) ([]DeviceChoice, error) {
	devices, err := p.inventory.GetDevices(ctx, "planned")
	if err != nil {
		return nil, err
	}

	choices := make([]DeviceChoice, 0, len(devices))

	for i := range devices {
		choices = append(choices, DeviceChoice{
			DeviceID:     devices[i].ID,
			DeviceName:   devices[i].Name,
			DeviceStatus: devices[i].Status.Value,
		})
	}

	return choices, nil
}

// CreateNodeWorkflow assembles the Create Node step list for the selected
// device.
func (p *Provisioner) CreateNodeWorkflow(input CreateNodeInput) *workflow.Workflow {
	return workflow.New("Create Node", workflow.TargetCreate, p.logger,
		workflow.Step{Name: "Construct Node model", Run: p.constructNodeModel(input)},
		workflow.Step{Name: "Fetch detailed IP information", Run: p.fetchIPInformation},
		workflow.Step{Name: "Set subscription to provisioning", Run: p.transition(subscription.LifecycleProvisioning)},
		workflow.Step{Name: "Render node config", Run: p.renderNodeConfig},
		workflow.Step{Name: "Set Node to active", Run: p.transition(subscription.LifecycleActive)},
		workflow.Step{Name: "Update Node in Netbox", Run: p.updateNodeInNetbox},
	)
}

// ProvisionNode runs the Create Node workflow end to end and returns the
// resulting subscription.
func (p *Provisioner) ProvisionNode(ctx context.Context, input CreateNodeInput) (*subscription.Subscription, error) {
	state := workflow.State{}

	if err := p.CreateNodeWorkflow(input).Run(ctx, state); err != nil {
		return nil, err
	}

	return subscriptionFromState(state)
}

// constructNodeModel creates the subscription in its initial state and
// registers it.
func (p *Provisioner) constructNodeModel(input CreateNodeInput) func(context.Context, workflow.State) error {
	return func(_ context.Context, state workflow.State) error {
		p.logger.Debug().Str("device_name", input.DeviceName).Msg("Constructing Node model")

		sub := subscription.New(p.customerID)
		sub.Node.NodeID = input.DeviceID
		sub.Node.NodeName = input.DeviceName
		sub.Node.NodeStatus = input.DeviceStatus
		sub.Description = subscription.Describe(sub)

		if err := p.store.Add(sub); err != nil {
			return err
		}

		state[StateKeySubscription] = sub

		return nil
	}
}

// fetchIPInformation grabs the loopback addresses for the node and puts
// them on the domain model.
func (p *Provisioner) fetchIPInformation(ctx context.Context, state workflow.State) error {
	sub, err := subscriptionFromState(state)
	if err != nil {
		return err
	}

	p.logger.Debug().Str("node_name", sub.Node.NodeName).Msg("Fetching detailed IP information from NetBox")

	device, err := p.inventory.GetDevice(ctx, sub.Node.NodeName)
	if err != nil {
		return err
	}

	if device == nil {
		return fmt.Errorf("%w: %s", errDeviceNotFound, sub.Node.NodeName)
	}

	if device.PrimaryIP4 == nil || device.PrimaryIP6 == nil {
		return fmt.Errorf("%w: %s", errMissingPrimaryIP, sub.Node.NodeName)
	}

	ipv4, err := netip.ParsePrefix(device.PrimaryIP4.Address)
	if err != nil {
		return fmt.Errorf("parsing primary IPv4 %q: %w", device.PrimaryIP4.Address, err)
	}

	ipv6, err := netip.ParsePrefix(device.PrimaryIP6.Address)
	if err != nil {
		return fmt.Errorf("parsing primary IPv6 %q: %w", device.PrimaryIP6.Address, err)
	}

	sub.Node.IPv4Loopback = ipv4
	sub.Node.IPv6Loopback = ipv6
	state[StateKeyDevice] = device

	return nil
}

// transition moves the subscription to the given lifecycle state and emits
// an event.
func (p *Provisioner) transition(to subscription.Lifecycle) func(context.Context, workflow.State) error {
	return func(ctx context.Context, state workflow.State) error {
		sub, err := subscriptionFromState(state)
		if err != nil {
			return err
		}

		previous := sub.Status

		if err := sub.SetStatus(to); err != nil {
			return err
		}

		p.publishTransition(ctx, sub, previous, "")

		return nil
	}
}

// renderNodeConfig produces the configuration blob an operator pastes into
// the router to finish bringing the node up.
func (p *Provisioner) renderNodeConfig(_ context.Context, state workflow.State) error {
	sub, err := subscriptionFromState(state)
	if err != nil {
		return err
	}

	state[StateKeyRouterConfig] = RouterConfig(sub)

	return nil
}

// updateNodeInNetbox pushes the subscription's final state back to the
// NetBox device record.
func (p *Provisioner) updateNodeInNetbox(ctx context.Context, state workflow.State) error {
	sub, err := subscriptionFromState(state)
	if err != nil {
		return err
	}

	device, err := deviceFromState(state)
	if err != nil {
		return err
	}

	updated, err := p.inventory.Update(ctx, BuildDevicePayload(sub, device))
	if err != nil {
		return err
	}

	state[StateKeyNetboxUpdated] = updated

	return nil
}

// RouterConfig renders the loopback configuration for a node.
func RouterConfig(sub *subscription.Subscription) string {
	return fmt.Sprintf(`! Paste the following config into %[1]s:
! to complete configuring the device
!
enable
configure terminal
!
hostname %[1]s
!
interface loopback 0
!
ip address %s
ipv6 address %s
!
exit
!
end
copy running-config startup-config`,
		sub.Node.NodeName, sub.Node.IPv4Loopback, sub.Node.IPv6Loopback)
}
