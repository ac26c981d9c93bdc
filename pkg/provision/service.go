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
	"time"

	"github.com/google/uuid"

	"github.com/opsfabric/nodeflow/pkg/logger"
	"github.com/opsfabric/nodeflow/pkg/netbox"
	"github.com/opsfabric/nodeflow/pkg/subscription"
)

// Service periodically re-validates every active node subscription against
// the inventory.
type Service struct {
	provisioner *Provisioner
	store       *subscription.Store
	interval    time.Duration
	clock       Clock
	logger      logger.Logger
	done        chan struct{}
}

// NewService builds the validation service from its dependencies. A nil
// clock falls back to the wall clock.
func NewService(cfg *Config, inventory netbox.Inventory, store *subscription.Store,
	publisher EventPublisher, clock Clock, log logger.Logger) (*Service, error) {
	customerID, err := uuid.Parse(cfg.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errInvalidCustomerID, err)
	}

	if clock == nil {
		clock = realClock{}
	}

	prov := NewProvisioner(inventory, store, customerID, publisher, log)
	prov.clock = clock

	return &Service{
		provisioner: prov,
		store:       store,
		interval:    time.Duration(cfg.ValidateInterval),
		clock:       clock,
		logger:      log,
		done:        make(chan struct{}),
	}, nil
}

// Provisioner exposes the underlying provisioner for workflow entry points.
func (s *Service) Provisioner() *Provisioner {
	return s.provisioner
}

// Start runs an initial validation pass and then re-validates on every
// tick until the context is canceled or Stop is called.
func (s *Service) Start(ctx context.Context) error {
	s.logger.Info().Dur("interval", s.interval).Msg("Starting node validation loop")

	if err := s.ValidateActiveSubscriptions(ctx); err != nil {
		s.logger.Error().Err(err).Msg("Initial validation pass failed")
	}

	ticker := s.clock.Ticker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.done:
			return nil
		case <-ticker.Chan():
			if err := s.ValidateActiveSubscriptions(ctx); err != nil {
				s.logger.Error().Err(err).Msg("Validation pass failed")
			}
		}
	}
}

// Stop terminates the validation loop.
func (s *Service) Stop() {
	close(s.done)
}

// ValidateActiveSubscriptions runs the Validate Node workflow for every
// active subscription and reports failures as lifecycle events. Failures
// are collected rather than aborting the pass.
func (s *Service) ValidateActiveSubscriptions(ctx context.Context) error {
	subs := s.store.ByStatus(subscription.LifecycleActive)

	s.logger.Debug().Int("count", len(subs)).Msg("Validating active subscriptions")

	var errs []error

	for _, sub := range subs {
		if err := s.provisioner.ValidateNode(ctx, sub.SubscriptionID); err != nil {
			s.logger.Warn().
				Err(err).
				Str("subscription_id", sub.SubscriptionID.String()).
				Str("node_name", sub.Node.NodeName).
				Msg("Node validation failed")

			s.provisioner.publishTransition(ctx, sub, sub.Status, err.Error())
			errs = append(errs, fmt.Errorf("subscription %s: %w", sub.SubscriptionID, err))
		}
	}

	return errors.Join(errs...)
}
