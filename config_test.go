package txreplay

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.Equal(t, runtime.NumCPU(), cfg.Workers)
	require.Equal(t, 100000, cfg.ChannelCapacity)
	require.NoError(t, cfg.Validate(), "defaults should validate")
}

func TestSetDefaults(t *testing.T) {
	t.Run("fills zero values", func(t *testing.T) {
		cfg := Config{}
		SetDefaults(&cfg)

		require.Equal(t, runtime.NumCPU(), cfg.Workers)
		require.Equal(t, 100000, cfg.ChannelCapacity)
	})

	t.Run("preserves explicit values", func(t *testing.T) {
		cfg := Config{Workers: 2, ChannelCapacity: 512}
		SetDefaults(&cfg)

		require.Equal(t, 2, cfg.Workers)
		require.Equal(t, 512, cfg.ChannelCapacity)
	})
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "valid", cfg: Config{Workers: 4, ChannelCapacity: 1024}, wantErr: false},
		{name: "single worker", cfg: Config{Workers: 1, ChannelCapacity: 1}, wantErr: false},
		{name: "zero workers", cfg: Config{Workers: 0, ChannelCapacity: 1024}, wantErr: true},
		{name: "negative workers", cfg: Config{Workers: -1, ChannelCapacity: 1024}, wantErr: true},
		{name: "zero channel capacity", cfg: Config{Workers: 4, ChannelCapacity: 0}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestConfig_YAML(t *testing.T) {
	yamlConfig := `
workers: 8
channelCapacity: 4096
`

	var cfg Config
	err := yaml.Unmarshal([]byte(yamlConfig), &cfg)
	require.NoError(t, err)

	require.Equal(t, 8, cfg.Workers)
	require.Equal(t, 4096, cfg.ChannelCapacity)
}

func TestConfig_DefaultsWithPartialYAML(t *testing.T) {
	yamlConfig := `
workers: 2
`

	var cfg Config
	err := yaml.Unmarshal([]byte(yamlConfig), &cfg)
	require.NoError(t, err)

	SetDefaults(&cfg)

	require.Equal(t, 2, cfg.Workers, "explicit value should survive defaults")
	require.Equal(t, 100000, cfg.ChannelCapacity, "missing value should be defaulted")
}

func TestTestConfig(t *testing.T) {
	cfg := TestConfig()

	require.Equal(t, 1, cfg.Workers, "test config should be deterministic")
	require.NoError(t, cfg.Validate())
}
