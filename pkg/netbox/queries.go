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

package netbox

import (
	"context"
	"fmt"
	"net/url"
)

// interfaceSpeed400G is the NetBox interface speed, in kbps, of a 400G port.
const interfaceSpeed400G = "400000000"

// GetDevice returns the device with the given name, or nil when no device
// matches.
func (c *Client) GetDevice(ctx context.Context, name string) (*Device, error) {
	query := url.Values{}
	query.Set("name", name)

	devices, err := c.listDevices(ctx, query)
	if err != nil {
		return nil, err
	}

	if len(devices) == 0 {
		return nil, nil
	}

	return &devices[0], nil
}

// GetDevices returns all devices, optionally filtered by status, following
// pagination until exhausted.
func (c *Client) GetDevices(ctx context.Context, status string) ([]Device, error) {
	query := url.Values{}
	if status != "" {
		query.Set("status", status)
	}

	devices, err := c.listDevices(ctx, query)
	if err != nil {
		return nil, err
	}

	c.logger.Debug().Int("amount", len(devices)).Str("status", status).Msg("Found devices in NetBox")

	return devices, nil
}

func (c *Client) listDevices(ctx context.Context, query url.Values) ([]Device, error) {
	next := c.url("/api/dcim/devices/", query)

	var devices []Device

	for next != "" {
		var page DeviceListResponse

		found, err := c.getJSON(ctx, next, &page)
		if err != nil {
			return nil, err
		}

		if !found {
			return nil, fmt.Errorf("%w: 404 from %s", errUnexpectedStatusCode, next)
		}

		devices = append(devices, page.Results...)
		next = page.Next
	}

	return devices, nil
}

// GetAvailableRouterPorts returns the unoccupied 400G interfaces on the
// named router.
func (c *Client) GetAvailableRouterPorts(ctx context.Context, routerName string) ([]Interface, error) {
	query := url.Values{}
	query.Set("device", routerName)
	query.Set("occupied", "false")
	query.Set("speed", interfaceSpeed400G)

	ports, err := c.listInterfaces(ctx, query)
	if err != nil {
		return nil, err
	}

	c.logger.Debug().Int("amount", len(ports)).Str("router", routerName).Msg("Found ports in NetBox")

	return ports, nil
}

// GetInterface returns the interface identified by device and name, or nil
// when absent.
func (c *Client) GetInterface(ctx context.Context, device, name string) (*Interface, error) {
	query := url.Values{}
	query.Set("device", device)
	query.Set("name", name)

	interfaces, err := c.listInterfaces(ctx, query)
	if err != nil {
		return nil, err
	}

	if len(interfaces) == 0 {
		return nil, nil
	}

	return &interfaces[0], nil
}

func (c *Client) listInterfaces(ctx context.Context, query url.Values) ([]Interface, error) {
	next := c.url("/api/dcim/interfaces/", query)

	var interfaces []Interface

	for next != "" {
		var page InterfaceListResponse

		found, err := c.getJSON(ctx, next, &page)
		if err != nil {
			return nil, err
		}

		if !found {
			return nil, fmt.Errorf("%w: 404 from %s", errUnexpectedStatusCode, next)
		}

		interfaces = append(interfaces, page.Results...)
		next = page.Next
	}

	return interfaces, nil
}

// GetIPAddress returns the IP address object for the given address, or nil
// when absent.
func (c *Client) GetIPAddress(ctx context.Context, address string) (*IPAddress, error) {
	query := url.Values{}
	query.Set("address", address)

	var page IPAddressListResponse

	found, err := c.getJSON(ctx, c.url("/api/ipam/ip-addresses/", query), &page)
	if err != nil {
		return nil, err
	}

	if !found || len(page.Results) == 0 {
		return nil, nil
	}

	return &page.Results[0], nil
}

// GetPrefixByID returns the prefix with the given id, or nil when absent.
func (c *Client) GetPrefixByID(ctx context.Context, id int) (*Prefix, error) {
	var prefix Prefix

	found, err := c.getJSON(ctx, c.url(fmt.Sprintf("/api/ipam/prefixes/%d/", id), nil), &prefix)
	if err != nil {
		return nil, err
	}

	if !found {
		return nil, nil
	}

	return &prefix, nil
}

// CreateAvailablePrefix carves the next free child prefix out of the
// payload's parent prefix and returns its id.
func (c *Client) CreateAvailablePrefix(ctx context.Context, p AvailablePrefixPayload) (int, error) {
	return c.Create(ctx, p)
}

// CreateAvailableIP allocates the next free address under the payload's
// parent prefix and returns its id.
func (c *Client) CreateAvailableIP(ctx context.Context, p AvailableIPPayload) (int, error) {
	return c.Create(ctx, p)
}
