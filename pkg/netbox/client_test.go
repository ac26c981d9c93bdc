package netbox

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opsfabric/nodeflow/pkg/logger"
	"github.com/opsfabric/nodeflow/pkg/models"
)

func TestConfigValidate(t *testing.T) {
	t.Run("missing endpoint", func(t *testing.T) {
		cfg := Config{APIToken: "abc"}
		require.ErrorIs(t, cfg.Validate(), errMissingEndpoint)
	})

	t.Run("strips trailing slash", func(t *testing.T) {
		cfg := Config{Endpoint: "https://netbox.example.com/", APIToken: "abc"}
		require.NoError(t, cfg.Validate())
		require.Equal(t, "https://netbox.example.com", cfg.Endpoint)
	})

	t.Run("token from environment", func(t *testing.T) {
		t.Setenv(EnvAPIToken, "env-token")

		cfg := Config{Endpoint: "https://netbox.example.com"}
		require.NoError(t, cfg.Validate())
		require.Equal(t, "env-token", cfg.APIToken)
	})

	t.Run("missing token", func(t *testing.T) {
		t.Setenv(EnvAPIToken, "")

		cfg := Config{Endpoint: "https://netbox.example.com"}
		require.ErrorIs(t, cfg.Validate(), errMissingAPIToken)
	})

	t.Run("timeout is passed to the transport client", func(t *testing.T) {
		client, err := NewClient(Config{
			Endpoint: "https://netbox.example.com",
			APIToken: "abc",
			Timeout:  models.Duration(10 * time.Second),
		}, logger.NewTestLogger())
		require.NoError(t, err)
		require.Equal(t, 10*time.Second, client.http.Timeout)
	})
}

func TestGetDevices_Pagination(t *testing.T) {
	var serverURL string

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/dcim/devices/", r.URL.Path)
		require.Equal(t, "Token test-token", r.Header.Get("Authorization"))

		if r.URL.Query().Get("offset") == "" {
			require.Equal(t, "planned", r.URL.Query().Get("status"))
			fmt.Fprintf(w, `{
				"count": 3,
				"next": "%s/api/dcim/devices/?limit=2&offset=2&status=planned",
				"results": [{"id": 1, "name": "rtr1"}, {"id": 2, "name": "rtr2"}]
			}`, serverURL)

			return
		}

		_, _ = w.Write([]byte(`{"count": 3, "next": "", "results": [{"id": 3, "name": "rtr3"}]}`))
	})

	client, server := newTestClient(t, handler)
	serverURL = server.URL

	devices, err := client.GetDevices(context.Background(), "planned")
	require.NoError(t, err)
	require.Len(t, devices, 3)
	assert.Equal(t, "rtr1", devices[0].Name)
	assert.Equal(t, "rtr3", devices[2].Name)
}

func TestGetDevice(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("name") == "loc1-core" {
			_, _ = w.Write([]byte(`{
				"count": 1,
				"results": [{
					"id": 5,
					"name": "loc1-core",
					"status": {"value": "active", "label": "Active"},
					"primary_ip4": {"id": 7, "address": "10.0.0.1/32"},
					"primary_ip6": {"id": 8, "address": "2001:db8::1/128"}
				}]
			}`))

			return
		}

		_, _ = w.Write([]byte(`{"count": 0, "results": []}`))
	}))

	device, err := client.GetDevice(context.Background(), "loc1-core")
	require.NoError(t, err)
	require.NotNil(t, device)
	assert.Equal(t, 5, device.ID)
	assert.Equal(t, "active", device.Status.Value)
	assert.Equal(t, "10.0.0.1/32", device.PrimaryIP4.Address)
	assert.Equal(t, "2001:db8::1/128", device.PrimaryIP6.Address)

	absent, err := client.GetDevice(context.Background(), "unknown")
	require.NoError(t, err)
	assert.Nil(t, absent)
}

func TestGetAvailableRouterPorts(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/dcim/interfaces/", r.URL.Path)
		require.Equal(t, "loc1-core", r.URL.Query().Get("device"))
		require.Equal(t, "false", r.URL.Query().Get("occupied"))
		require.Equal(t, "400000000", r.URL.Query().Get("speed"))

		_, _ = w.Write([]byte(`{
			"count": 2,
			"results": [
				{"id": 10, "name": "et-0/0/0", "speed": 400000000},
				{"id": 11, "name": "et-0/0/1", "speed": 400000000}
			]
		}`))
	}))

	ports, err := client.GetAvailableRouterPorts(context.Background(), "loc1-core")
	require.NoError(t, err)
	require.Len(t, ports, 2)
	assert.Equal(t, "et-0/0/0", ports[0].Name)
}

func TestGetInterface(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "loc1-core", r.URL.Query().Get("device"))
		require.Equal(t, "lo0", r.URL.Query().Get("name"))

		_, _ = w.Write([]byte(`{"count": 1, "results": [{"id": 42, "name": "lo0"}]}`))
	}))

	iface, err := client.GetInterface(context.Background(), "loc1-core", "lo0")
	require.NoError(t, err)
	require.NotNil(t, iface)
	assert.Equal(t, 42, iface.ID)
}

func TestGetIPAddress(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/ipam/ip-addresses/", r.URL.Path)
		require.Equal(t, "10.0.0.1/32", r.URL.Query().Get("address"))

		_, _ = w.Write([]byte(`{"count": 1, "results": [{"id": 7, "address": "10.0.0.1/32"}]}`))
	}))

	addr, err := client.GetIPAddress(context.Background(), "10.0.0.1/32")
	require.NoError(t, err)
	require.NotNil(t, addr)
	assert.Equal(t, 7, addr.ID)
}

func TestGetPrefixByID(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/ipam/prefixes/3/" {
			_, _ = w.Write([]byte(`{"id": 3, "prefix": "10.0.0.0/16", "is_pool": true}`))
			return
		}

		w.WriteHeader(http.StatusNotFound)
	}))

	prefix, err := client.GetPrefixByID(context.Background(), 3)
	require.NoError(t, err)
	require.NotNil(t, prefix)
	assert.Equal(t, "10.0.0.0/16", prefix.Prefix)
	assert.True(t, prefix.IsPool)

	absent, err := client.GetPrefixByID(context.Background(), 4)
	require.NoError(t, err)
	assert.Nil(t, absent)
}

func TestGetDevices_UnexpectedStatus(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))

	_, err := client.GetDevices(context.Background(), "")
	require.ErrorIs(t, err, errUnexpectedStatusCode)
}
