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
	"errors"
	"fmt"
)

var errUnexpectedStatusCode = errors.New("unexpected status code")

// ValidationError reports that NetBox rejected a create request's field
// values. Message carries the original rejection body.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("netbox rejected payload: %s", e.Message)
}

// NotFoundError reports that an operation targeted an id that does not
// exist on the given endpoint.
type NotFoundError struct {
	ID       int
	Endpoint string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("netbox object with id %d on %s endpoint not found", e.ID, e.Endpoint)
}

// UnsupportedPayloadError reports that no routing is registered for a
// payload kind and operation.
type UnsupportedPayloadError struct {
	Kind Kind
	Op   string
}

func (e *UnsupportedPayloadError) Error() string {
	return fmt.Sprintf("no %s route registered for payload kind %q", e.Op, e.Kind)
}
