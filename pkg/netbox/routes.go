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

import "fmt"

const (
	opCreate = "create"
	opUpdate = "update"
)

// route maps a payload kind to its NetBox collection and the operations
// registered for it.
type route struct {
	name         string // endpoint name used in error messages
	path         string // collection path; parent-scoped paths carry a %d
	create       bool
	update       bool
	parentScoped bool
}

// routes is the static dispatch table. One row per payload kind; existing
// rows are never altered when a kind is added.
var routes = map[Kind]route{
	KindDevice: {
		name:   "dcim.devices",
		path:   "/api/dcim/devices/",
		create: true,
		update: true,
	},
	KindCable: {
		name:   "dcim.cables",
		path:   "/api/dcim/cables/",
		create: true,
		update: true,
	},
	KindAvailablePrefix: {
		name:         "ipam.prefixes.available-prefixes",
		path:         "/api/ipam/prefixes/%d/available-prefixes/",
		create:       true,
		parentScoped: true,
	},
	KindAvailableIP: {
		name:         "ipam.prefixes.available-ips",
		path:         "/api/ipam/prefixes/%d/available-ips/",
		create:       true,
		parentScoped: true,
	},
}

// resolveRoute returns the route and concrete collection path for a payload
// and operation, or an UnsupportedPayloadError when no (kind, operation)
// registration exists.
func resolveRoute(p Payload, op string) (route, string, error) {
	r, ok := routes[p.Kind()]
	if !ok {
		return route{}, "", &UnsupportedPayloadError{Kind: p.Kind(), Op: op}
	}

	switch op {
	case opCreate:
		ok = r.create
	case opUpdate:
		ok = r.update
	default:
		ok = false
	}

	if !ok {
		return route{}, "", &UnsupportedPayloadError{Kind: p.Kind(), Op: op}
	}

	path := r.path
	if r.parentScoped {
		parent, isScoped := p.(parentScoped)
		if !isScoped {
			return route{}, "", &UnsupportedPayloadError{Kind: p.Kind(), Op: op}
		}

		path = fmt.Sprintf(r.path, parent.ParentID())
	}

	return r, path, nil
}
