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

// Package netbox is a client for a NetBox-style IPAM/DCIM inventory API.
// It exposes typed payloads and generic Create/Update dispatch routed by
// payload kind, plus the read queries the provisioning workflows need.
package netbox

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/opsfabric/nodeflow/pkg/logger"
	"github.com/opsfabric/nodeflow/pkg/models"
)

// EnvAPIToken is the environment variable consulted for the API token when
// the config file leaves it empty. Tokens are never literals in code.
const EnvAPIToken = "NODEFLOW_NETBOX_TOKEN"

var (
	errMissingEndpoint = errors.New("netbox endpoint is required")
	errMissingAPIToken = errors.New("netbox api token is required (set api_token or " + EnvAPIToken + ")")
)

// Config describes how to reach the NetBox API.
type Config struct {
	Endpoint           string          `json:"endpoint"`
	APIToken           string          `json:"api_token,omitempty"`
	InsecureSkipVerify bool            `json:"insecure_skip_verify,omitempty"`
	Timeout            models.Duration `json:"timeout,omitempty"`
}

// Validate applies defaults and sources the API token from the environment
// when the file leaves it unset.
func (c *Config) Validate() error {
	if c.Endpoint == "" {
		return errMissingEndpoint
	}

	c.Endpoint = strings.TrimRight(c.Endpoint, "/")

	if c.APIToken == "" {
		c.APIToken = os.Getenv(EnvAPIToken)
	}

	if c.APIToken == "" {
		return errMissingAPIToken
	}

	return nil
}

// Client issues blocking requests against one NetBox deployment. A Client is
// constructed once at startup and reused sequentially; this layer performs
// no retries, locking, or coordination of overlapping calls.
type Client struct {
	endpoint string
	token    string
	http     *http.Client
	logger   logger.Logger
}

// NewClient validates the config and builds a Client.
func NewClient(cfg Config, log logger.Logger) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	transport := &http.Transport{
		//nolint:gosec // skipping verification is an explicit per-deployment opt-in
		TLSClientConfig: &tls.Config{InsecureSkipVerify: cfg.InsecureSkipVerify},
	}

	return &Client{
		endpoint: cfg.Endpoint,
		token:    cfg.APIToken,
		http: &http.Client{
			Transport: transport,
			Timeout:   time.Duration(cfg.Timeout),
		},
		logger: log,
	}, nil
}

// url builds an absolute URL for an API path and optional query.
func (c *Client) url(path string, query url.Values) string {
	u := c.endpoint + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	return u
}

// do sends one request with the token header, marshaling body as JSON when
// present.
func (c *Client) do(ctx context.Context, method, rawURL string, body any) (*http.Response, error) {
	var reader io.Reader = http.NoBody

	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}

		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Authorization", "Token "+c.token)
	req.Header.Set("Accept", "application/json")

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.http.Do(req)
}

// getJSON fetches rawURL and decodes a 200 response into out. A 404 reports
// found=false without error; any other status is unexpected.
func (c *Client) getJSON(ctx context.Context, rawURL string, out any) (bool, error) {
	resp, err := c.do(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return false, err
	}
	defer c.closeResponse(resp)

	switch resp.StatusCode {
	case http.StatusOK:
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return false, err
		}

		return true, nil
	case http.StatusNotFound:
		return false, nil
	default:
		return false, fmt.Errorf("%w: %d from %s", errUnexpectedStatusCode, resp.StatusCode, rawURL)
	}
}

// closeResponse closes the HTTP response body, logging any errors.
func (c *Client) closeResponse(resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		c.logger.Warn().Err(err).Msg("Failed to close response body")
	}
}

// readBody drains the response body for use in error messages.
func readBody(resp *http.Response) string {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return ""
	}

	return strings.TrimSpace(string(data))
}
