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

// Ref is an embedded NetBox object reference.
type Ref struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Status is a NetBox choice field.
type Status struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// IPRef is an embedded IP address reference.
type IPRef struct {
	ID      int    `json:"id"`
	Address string `json:"address"`
}

// Device represents a NetBox device as returned by the API.
type Device struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	DeviceType  Ref    `json:"device_type"`
	Role        Ref    `json:"role"`
	Site        Ref    `json:"site"`
	Status      Status `json:"status"`
	PrimaryIP4  *IPRef `json:"primary_ip4"`
	PrimaryIP6  *IPRef `json:"primary_ip6"`
	Description string `json:"description"`
	Created     string `json:"created"`
	LastUpdated string `json:"last_updated"`
}

// Interface represents a NetBox device interface.
type Interface struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Device   Ref    `json:"device"`
	Speed    int64  `json:"speed"`
	Occupied bool   `json:"_occupied"`
}

// IPAddress represents a NetBox ipam.ip-addresses object.
type IPAddress struct {
	ID          int    `json:"id"`
	Address     string `json:"address"`
	Status      Status `json:"status"`
	Description string `json:"description"`
}

// Prefix represents a NetBox ipam.prefixes object.
type Prefix struct {
	ID          int    `json:"id"`
	Prefix      string `json:"prefix"`
	Description string `json:"description"`
	IsPool      bool   `json:"is_pool"`
}

// DeviceListResponse is a paginated NetBox device listing.
type DeviceListResponse struct {
	Count    int      `json:"count"`
	Next     string   `json:"next"`
	Previous string   `json:"previous"`
	Results  []Device `json:"results"`
}

// InterfaceListResponse is a paginated NetBox interface listing.
type InterfaceListResponse struct {
	Count    int         `json:"count"`
	Next     string      `json:"next"`
	Previous string      `json:"previous"`
	Results  []Interface `json:"results"`
}

// IPAddressListResponse is a paginated NetBox IP address listing.
type IPAddressListResponse struct {
	Count    int         `json:"count"`
	Next     string      `json:"next"`
	Previous string      `json:"previous"`
	Results  []IPAddress `json:"results"`
}

// createdObject carries the only field dispatch needs from a create
// response.
type createdObject struct {
	ID int `json:"id"`
}
