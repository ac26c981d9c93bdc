package logger

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:   "defaults",
			config: Config{},
		},
		{
			name:   "explicit level",
			config: Config{Level: "warn"},
		},
		{
			name:   "debug overrides level",
			config: Config{Level: "error", Debug: true},
		},
		{
			name:   "stderr output",
			config: Config{Output: "stderr"},
		},
		{
			name:    "invalid level",
			config:  Config{Level: "verbose"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := New(tt.config)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, log)
		})
	}
}

func TestWithComponent(t *testing.T) {
	log := NewTestLogger()
	component := log.WithComponent("netbox")

	// The derived logger must be usable without panicking even when disabled.
	component.Info().Msg("test")
}
