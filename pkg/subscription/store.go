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

package subscription

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

var (
	errDuplicateSubscription = errors.New("subscription already registered")
	// ErrNotFound reports an unknown subscription id.
	ErrNotFound = errors.New("subscription not found")
)

// Store is an in-memory subscription registry. Durable subscription state
// belongs to the orchestration framework; the store only tracks the
// subscriptions this process manages.
type Store struct {
	mu   sync.RWMutex
	subs map[uuid.UUID]*Subscription
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{subs: make(map[uuid.UUID]*Subscription)}
}

// Add registers a subscription.
func (s *Store) Add(sub *Subscription) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.subs[sub.SubscriptionID]; exists {
		return fmt.Errorf("%w: %s", errDuplicateSubscription, sub.SubscriptionID)
	}

	s.subs[sub.SubscriptionID] = sub

	return nil
}

// Get returns the subscription with the given id.
func (s *Store) Get(id uuid.UUID) (*Subscription, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sub, ok := s.subs[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	return sub, nil
}

// ByStatus returns all subscriptions in the given lifecycle state.
func (s *Store) ByStatus(status Lifecycle) []*Subscription {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []*Subscription

	for _, sub := range s.subs {
		if sub.Status == status {
			matched = append(matched, sub)
		}
	}

	return matched
}

// Len returns the number of registered subscriptions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.subs)
}
