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
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/opsfabric/nodeflow/pkg/logger"
	"github.com/opsfabric/nodeflow/pkg/models"
	"github.com/opsfabric/nodeflow/pkg/netbox"
)

const (
	defaultValidateInterval = time.Hour
	defaultStreamName       = "nodeflow-events"
)

var (
	errMissingCustomerID = errors.New("customer_id is required")
	errInvalidCustomerID = errors.New("customer_id is not a valid UUID")
)

// Config is the provisioner service configuration.
type Config struct {
	NetBox           netbox.Config   `json:"netbox"`
	CustomerID       string          `json:"customer_id"`
	ValidateInterval models.Duration `json:"validate_interval,omitempty"`
	NATSURL          string          `json:"nats_url,omitempty"`
	StreamName       string          `json:"stream_name,omitempty"`
	Logging          logger.Config   `json:"logging,omitempty"`
}

// Validate applies defaults and checks required fields.
func (c *Config) Validate() error {
	if err := c.NetBox.Validate(); err != nil {
		return err
	}

	if c.CustomerID == "" {
		return errMissingCustomerID
	}

	if _, err := uuid.Parse(c.CustomerID); err != nil {
		return fmt.Errorf("%w: %q", errInvalidCustomerID, c.CustomerID)
	}

	if time.Duration(c.ValidateInterval) == 0 {
		c.ValidateInterval = models.Duration(defaultValidateInterval)
	}

	if c.NATSURL != "" && c.StreamName == "" {
		c.StreamName = defaultStreamName
	}

	return nil
}
