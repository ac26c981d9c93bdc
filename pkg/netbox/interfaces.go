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

//go:generate mockgen -destination=mock_netbox.go -package=netbox github.com/opsfabric/nodeflow/pkg/netbox Inventory

package netbox

import "context"

// Inventory is the contract the provisioning workflows program against.
// *Client is the production implementation.
type Inventory interface {
	Create(ctx context.Context, p Payload) (int, error)
	Update(ctx context.Context, p Payload) (bool, error)
	GetDevice(ctx context.Context, name string) (*Device, error)
	GetDevices(ctx context.Context, status string) ([]Device, error)
	GetAvailableRouterPorts(ctx context.Context, routerName string) ([]Interface, error)
	GetInterface(ctx context.Context, device, name string) (*Interface, error)
	GetIPAddress(ctx context.Context, address string) (*IPAddress, error)
	GetPrefixByID(ctx context.Context, id int) (*Prefix, error)
	CreateAvailablePrefix(ctx context.Context, p AvailablePrefixPayload) (int, error)
	CreateAvailableIP(ctx context.Context, p AvailableIPPayload) (int, error)
}

var _ Inventory = (*Client)(nil)
