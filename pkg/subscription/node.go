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

// Package subscription models node subscriptions and their lifecycle.
package subscription

import (
	"errors"
	"fmt"
	"net/netip"
	"slices"

	"github.com/google/uuid"
)

// Lifecycle is the state of a subscription.
type Lifecycle string

const (
	LifecycleInitial      Lifecycle = "initial"
	LifecycleProvisioning Lifecycle = "provisioning"
	LifecycleActive       Lifecycle = "active"
	LifecycleTerminated   Lifecycle = "terminated"
)

var (
	errIncompleteNodeBlock = errors.New("node block is incomplete")
	errInvalidTransition   = errors.New("invalid lifecycle transition")
	errUnknownLifecycle    = errors.New("unknown lifecycle state")
)

// allowedTransitions lists the target states reachable from each state.
var allowedTransitions = map[Lifecycle][]Lifecycle{
	LifecycleInitial:      {LifecycleProvisioning, LifecycleActive},
	LifecycleProvisioning: {LifecycleActive, LifecycleTerminated},
	LifecycleActive:       {LifecycleProvisioning, LifecycleTerminated},
	LifecycleTerminated:   {},
}

// NodeBlock carries the resources a node subscription holds. All fields are
// unset when the subscription is created and must be complete before the
// subscription leaves the initial state.
type NodeBlock struct {
	NodeID       int          `json:"node_id"`
	NodeName     string       `json:"node_name"`
	NodeStatus   string       `json:"node_status"`
	IPv4Loopback netip.Prefix `json:"ipv4_loopback"`
	IPv6Loopback netip.Prefix `json:"ipv6_loopback"`
}

// Complete reports whether every resource on the block is set.
func (b NodeBlock) Complete() bool {
	return b.NodeID != 0 &&
		b.NodeName != "" &&
		b.NodeStatus != "" &&
		b.IPv4Loopback.IsValid() &&
		b.IPv6Loopback.IsValid()
}

// Subscription is a node subscription owned by a customer.
type Subscription struct {
	SubscriptionID uuid.UUID `json:"subscription_id"`
	CustomerID     uuid.UUID `json:"customer_id"`
	Description    string    `json:"description"`
	Status         Lifecycle `json:"status"`
	Node           NodeBlock `json:"node"`
}

// New creates a subscription in the initial lifecycle state.
func New(customerID uuid.UUID) *Subscription {
	return &Subscription{
		SubscriptionID: uuid.New(),
		CustomerID:     customerID,
		Status:         LifecycleInitial,
	}
}

// SetStatus transitions the subscription to the given state. Leaving the
// initial state requires a complete node block.
func (s *Subscription) SetStatus(to Lifecycle) error {
	targets, ok := allowedTransitions[s.Status]
	if !ok {
		return fmt.Errorf("%w: %q", errUnknownLifecycle, s.Status)
	}

	if !slices.Contains(targets, to) {
		return fmt.Errorf("%w: %s -> %s", errInvalidTransition, s.Status, to)
	}

	if s.Status == LifecycleInitial && !s.Node.Complete() {
		return fmt.Errorf("%w: cannot leave %s", errIncompleteNodeBlock, LifecycleInitial)
	}

	s.Status = to

	return nil
}

// Describe renders the human-readable subscription description shown in
// subscription listings.
func Describe(s *Subscription) string {
	if s.Node.NodeName == "" {
		return "Node subscription"
	}

	return fmt.Sprintf("Node %s (%s)", s.Node.NodeName, s.Node.NodeStatus)
}
