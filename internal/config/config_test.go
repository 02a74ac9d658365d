package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dexplorer/orderscan/internal/domain"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAPIConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *APIConfig)
	}{
		{
			name: "valid config file",
			configFile: `
debug: true
sentry_dsn: "https://sentry.example.com"
server:
  host: 127.0.0.1
  port: 9090
  read_timeout: 5
auth:
  api_keys:
    - "test-key"
networks:
  mainnet:
    orderbook:
      - environment: prod
        url: "https://api.cow.fi/mainnet"
      - environment: barn
        url: "https://barn.api.cow.fi/mainnet"
    subgraph: "https://api.thegraph.com/subgraphs/name/cow/mainnet"
    rpc_url: "https://eth.example.com"
  gnosis:
    orderbook:
      - environment: prod
        url: "https://api.cow.fi/xdai"
resolver:
  search_order: [mainnet, gnosis]
trace:
  base_url: "https://api.tenderly.co/api/v1"
  access_key: "secret"
http:
  timeout: "10s"
watch:
  order_interval: "5s"
`,
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.True(t, cfg.Debug)
				assert.Equal(t, "https://sentry.example.com", cfg.SentryDSN)
				assert.Equal(t, "127.0.0.1", cfg.Server.Host)
				assert.Equal(t, 9090, cfg.Server.Port)
				assert.Equal(t, 5, cfg.Server.ReadTimeout)
				assert.Equal(t, []string{"test-key"}, cfg.Auth.APIKeys)

				require.Contains(t, cfg.Networks, domain.NetworkMainnet)
				mainnet := cfg.Networks[domain.NetworkMainnet]
				require.Len(t, mainnet.Orderbook, 2)
				assert.Equal(t, domain.EnvironmentProd, mainnet.Orderbook[0].Environment)
				assert.Equal(t, "https://api.cow.fi/mainnet", mainnet.Orderbook[0].URL)
				assert.Equal(t, domain.EnvironmentBarn, mainnet.Orderbook[1].Environment)

				assert.Equal(t, []domain.Network{domain.NetworkMainnet, domain.NetworkGnosis}, cfg.Resolver.SearchOrder)
				assert.Equal(t, "https://api.tenderly.co/api/v1", cfg.Trace.BaseURL)
				assert.Equal(t, 10*time.Second, cfg.HTTP.Timeout)
				assert.Equal(t, 5*time.Second, cfg.Watch.OrderInterval)
				// Unset values take defaults
				assert.Equal(t, 15*time.Second, cfg.Watch.TxInterval)
				assert.Equal(t, 10, cfg.Server.WriteTimeout)
			},
		},
		{
			name: "defaults applied without overrides",
			configFile: `
networks:
  mainnet:
    orderbook:
      - environment: prod
        url: "https://api.cow.fi/mainnet"
`,
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.False(t, cfg.Debug)
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, 30*time.Second, cfg.HTTP.Timeout)
				assert.Equal(t, domain.AllNetworks(), cfg.Resolver.SearchOrder)
			},
		},
		{
			name:        "no networks configured",
			configFile:  `debug: false`,
			expectError: true,
		},
		{
			name: "unsupported network rejected",
			configFile: `
networks:
  arbitrum:
    orderbook:
      - environment: prod
        url: "https://example.com"
`,
			expectError: true,
		},
		{
			name: "unsupported network in search order rejected",
			configFile: `
networks:
  mainnet:
    orderbook:
      - environment: prod
        url: "https://api.cow.fi/mainnet"
resolver:
  search_order: [mainnet, polygon]
`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfigFile(t, tt.configFile)
			cfg, err := LoadAPIConfig(path, t.TempDir())
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.validate(t, cfg)
		})
	}
}

func TestLoadLookupConfig(t *testing.T) {
	path := writeConfigFile(t, `
networks:
  sepolia:
    orderbook:
      - environment: prod
        url: "https://api.cow.fi/sepolia"
resolver:
  search_order: [sepolia]
`)

	cfg, err := LoadLookupConfig(path, t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, []domain.Network{domain.NetworkSepolia}, cfg.Resolver.SearchOrder)
	require.Contains(t, cfg.Networks, domain.NetworkSepolia)
	assert.Equal(t, 30*time.Second, cfg.HTTP.Timeout)
}
