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

// Kind tags a payload variant. Routing is keyed by Kind; adding a variant
// means adding a Kind and a row to the routing table, never touching the
// dispatch logic.
type Kind string

const (
	KindDevice          Kind = "device"
	KindCable           Kind = "cable"
	KindAvailablePrefix Kind = "available-prefix"
	KindAvailableIP     Kind = "available-ip"
)

// DefaultTerminationType is the object type cable terminations and IP
// assignments point at unless overridden.
const DefaultTerminationType = "dcim.interface"

// Payload describes an object to create or update in NetBox. Payloads are
// stateless value objects built immediately before a dispatch call.
//
// Fields returns the flat field mapping sent to NetBox. The identifying id
// is never part of the mapping; it selects the object to update. Field-level
// validation is NetBox's responsibility, so nil optionals are sent as
// explicit nulls rather than omitted.
type Payload interface {
	Kind() Kind
	ObjectID() int
	Fields() map[string]any
}

// parentScoped is implemented by payloads whose endpoint is a sub-resource
// of a parent prefix.
type parentScoped interface {
	ParentID() int
}

// DevicePayload describes a dcim.devices object.
type DevicePayload struct {
	ID         int
	Site       int
	DeviceType int
	DeviceRole int
	Name       *string
	Status     *string
	PrimaryIP4 *int
	PrimaryIP6 *int
}

func (DevicePayload) Kind() Kind { return KindDevice }
func (p DevicePayload) ObjectID() int { return p.ID }

func (p DevicePayload) Fields() map[string]any {
	return map[string]any{
		"site":        p.Site,
		"device_type": p.DeviceType,
		"device_role": p.DeviceRole,
		"name":        ptrValue(p.Name),
		"status":      ptrValue(p.Status),
		"primary_ip4": ptrValue(p.PrimaryIP4),
		"primary_ip6": ptrValue(p.PrimaryIP6),
	}
}

// CableTermination identifies one end of a cable.
type CableTermination struct {
	ObjectID   int    `json:"object_id"`
	ObjectType string `json:"object_type"`
}

// NewCableTermination builds a termination on an interface.
func NewCableTermination(objectID int) CableTermination {
	return CableTermination{ObjectID: objectID, ObjectType: DefaultTerminationType}
}

// CablePayload describes a dcim.cables object.
type CablePayload struct {
	ID            int
	Status        string
	Description   *string
	ATerminations []CableTermination
	BTerminations []CableTermination
}

func (CablePayload) Kind() Kind { return KindCable }
func (p CablePayload) ObjectID() int { return p.ID }

func (p CablePayload) Fields() map[string]any {
	return map[string]any{
		"status":         p.Status,
		"description":    ptrValue(p.Description),
		"a_terminations": terminationMaps(p.ATerminations),
		"b_terminations": terminationMaps(p.BTerminations),
	}
}

// AvailablePrefixPayload carves a child prefix out of the parent prefix's
// available-prefixes sub-resource.
type AvailablePrefixPayload struct {
	ParentPrefixID int
	PrefixLength   int
	Description    string
	IsPool         bool
}

func (AvailablePrefixPayload) Kind() Kind { return KindAvailablePrefix }
func (AvailablePrefixPayload) ObjectID() int { return 0 }
func (p AvailablePrefixPayload) ParentID() int { return p.ParentPrefixID }

func (p AvailablePrefixPayload) Fields() map[string]any {
	return map[string]any{
		"prefix_length": p.PrefixLength,
		"description":   p.Description,
		"is_pool":       p.IsPool,
	}
}

// AvailableIPPayload allocates the next free address from the parent
// prefix's available-ips sub-resource.
type AvailableIPPayload struct {
	ParentPrefixID     int
	Description        string
	AssignedObjectID   int
	AssignedObjectType string
	Status             string
}

// NewAvailableIPPayload builds an allocation assigned to an interface with
// status "active".
func NewAvailableIPPayload(parentPrefixID, assignedObjectID int, description string) AvailableIPPayload {
	return AvailableIPPayload{
		ParentPrefixID:     parentPrefixID,
		Description:        description,
		AssignedObjectID:   assignedObjectID,
		AssignedObjectType: DefaultTerminationType,
		Status:             "active",
	}
}

func (AvailableIPPayload) Kind() Kind { return KindAvailableIP }
func (AvailableIPPayload) ObjectID() int { return 0 }
func (p AvailableIPPayload) ParentID() int { return p.ParentPrefixID }

func (p AvailableIPPayload) Fields() map[string]any {
	return map[string]any{
		"description":          p.Description,
		"assigned_object_id":   p.AssignedObjectID,
		"assigned_object_type": p.AssignedObjectType,
		"status":               p.Status,
	}
}

func terminationMaps(terminations []CableTermination) []map[string]any {
	maps := make([]map[string]any, 0, len(terminations))

	for _, t := range terminations {
		maps = append(maps, map[string]any{
			"object_id":   t.ObjectID,
			"object_type": t.ObjectType,
		})
	}

	return maps
}

// ptrValue unwraps an optional field for the wire mapping, keeping nil as
// an explicit null so NetBox clears the field on update.
func ptrValue[T any](p *T) any {
	if p == nil {
		return nil
	}

	return *p
}
