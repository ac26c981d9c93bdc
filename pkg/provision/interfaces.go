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

//go:generate mockgen -destination=mock_provision.go -package=provision github.com/opsfabric/nodeflow/pkg/provision EventPublisher

package provision

import (
	"context"
	"time"

	"github.com/opsfabric/nodeflow/pkg/models"
)

// EventPublisher publishes subscription lifecycle events. natsutil provides
// the JetStream implementation; a nil publisher disables eventing.
type EventPublisher interface {
	PublishNodeLifecycleEvent(ctx context.Context, data models.NodeLifecycleEventData) error
}

// Clock abstracts time-related operations so the validation loop can be
// driven by tests.
type Clock interface {
	Now() time.Time
	Ticker(d time.Duration) Ticker
}

// Ticker abstracts the ticker used by the validation loop.
type Ticker interface {
	Chan() <-chan time.Time
	Stop()
}
