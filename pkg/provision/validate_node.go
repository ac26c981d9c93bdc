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
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/opsfabric/nodeflow/pkg/subscription"
	"github.com/opsfabric/nodeflow/pkg/workflow"
)

var (
	errSubscriptionNotActive = errors.New("subscription is not active")
	errNodeNotActive         = errors.New("node device is not active in NetBox")
)

// ValidateNodeWorkflow assembles the Validate Node step list for the given
// subscription.
func (p *Provisioner) ValidateNodeWorkflow(subscriptionID uuid.UUID) *workflow.Workflow {
	return workflow.New("Validate Node", workflow.TargetValidate, p.logger,
		workflow.Step{Name: "Load relevant Node subscription information", Run: p.loadNodeInformation(subscriptionID)},
		workflow.Step{Name: "Check Node is active", Run: p.checkNodeActive},
	)
}

// ValidateNode runs the Validate Node workflow for the given subscription.
func (p *Provisioner) ValidateNode(ctx context.Context, subscriptionID uuid.UUID) error {
	return p.ValidateNodeWorkflow(subscriptionID).Run(ctx, workflow.State{})
}

// loadNodeInformation fetches the subscription and the backing NetBox
// device.
func (p *Provisioner) loadNodeInformation(subscriptionID uuid.UUID) func(context.Context, workflow.State) error {
	return func(ctx context.Context, state workflow.State) error {
		sub, err := p.store.Get(subscriptionID)
		if err != nil {
			return err
		}

		device, err := p.inventory.GetDevice(ctx, sub.Node.NodeName)
		if err != nil {
			return err
		}

		if device == nil {
			return fmt.Errorf("%w: %s", errDeviceNotFound, sub.Node.NodeName)
		}

		state[StateKeySubscription] = sub
		state[StateKeyDevice] = device

		return nil
	}
}

// checkNodeActive verifies the subscription and the inventory agree that
// the node is live.
func (p *Provisioner) checkNodeActive(_ context.Context, state workflow.State) error {
	sub, err := subscriptionFromState(state)
	if err != nil {
		return err
	}

	device, err := deviceFromState(state)
	if err != nil {
		return err
	}

	if sub.Status != subscription.LifecycleActive {
		return fmt.Errorf("%w: %s is %s", errSubscriptionNotActive, sub.SubscriptionID, sub.Status)
	}

	if device.Status.Value != "active" {
		return fmt.Errorf("%w: %s is %s", errNodeNotActive, device.Name, device.Status.Value)
	}

	return nil
}
