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
	"encoding/json"
	"fmt"
	"net/http"
)

// Create submits the payload's mapping to the collection its kind routes to
// and returns the id NetBox assigned. A rejected payload surfaces as a
// *ValidationError carrying the original rejection body; an unregistered
// (kind, create) pair surfaces as *UnsupportedPayloadError before any call
// is made. Parent-scoped payloads verify the parent prefix exists first.
func (c *Client) Create(ctx context.Context, p Payload) (int, error) {
	r, path, err := resolveRoute(p, opCreate)
	if err != nil {
		return 0, err
	}

	if parent, ok := p.(parentScoped); ok {
		prefix, err := c.GetPrefixByID(ctx, parent.ParentID())
		if err != nil {
			return 0, err
		}

		if prefix == nil {
			return 0, &NotFoundError{ID: parent.ParentID(), Endpoint: "ipam.prefixes"}
		}
	}

	resp, err := c.do(ctx, http.MethodPost, c.url(path, nil), p.Fields())
	if err != nil {
		return 0, err
	}
	defer c.closeResponse(resp)

	switch resp.StatusCode {
	case http.StatusCreated, http.StatusOK:
		var created createdObject
		if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
			return 0, err
		}

		c.logger.Debug().Str("endpoint", r.name).Int("id", created.ID).Msg("Created object in NetBox")

		return created.ID, nil
	case http.StatusBadRequest:
		message := readBody(resp)
		c.logger.Warn().Str("endpoint", r.name).Str("message", message).Msg("NetBox create failed")

		return 0, &ValidationError{Message: message}
	default:
		return 0, fmt.Errorf("%w: %d on %s create", errUnexpectedStatusCode, resp.StatusCode, r.name)
	}
}

// Update fetches the object identified by the payload's id from its routed
// collection, applies the payload's mapping, and reports whether the persist
// succeeded. An absent id surfaces as *NotFoundError without a mutating
// call; an unregistered (kind, update) pair surfaces as
// *UnsupportedPayloadError before any call is made.
func (c *Client) Update(ctx context.Context, p Payload) (bool, error) {
	r, path, err := resolveRoute(p, opUpdate)
	if err != nil {
		return false, err
	}

	objectURL := c.url(fmt.Sprintf("%s%d/", path, p.ObjectID()), nil)

	var existing createdObject

	found, err := c.getJSON(ctx, objectURL, &existing)
	if err != nil {
		return false, err
	}

	if !found {
		return false, &NotFoundError{ID: p.ObjectID(), Endpoint: r.name}
	}

	resp, err := c.do(ctx, http.MethodPatch, objectURL, p.Fields())
	if err != nil {
		return false, err
	}
	defer c.closeResponse(resp)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return false, fmt.Errorf("%w: %d on %s update of id %d",
			errUnexpectedStatusCode, resp.StatusCode, r.name, p.ObjectID())
	}

	c.logger.Debug().Str("endpoint", r.name).Int("id", p.ObjectID()).Msg("Updated object in NetBox")

	return true, nil
}
