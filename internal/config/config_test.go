package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testPackageID  = "0x000000000000000000000000000000000000000000000000000000000000abc0"
	testRegistryID = "0x000000000000000000000000000000000000000000000000000000000000d00d"
)

func TestLoadGatewayConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *GatewayConfig)
	}{
		{
			name: "valid config file",
			configFile: `
debug: true
sentry_dsn: "https://sentry.example.com"
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: 20
  write_timeout: 20
  idle_timeout: 180
sui:
  rpc_url: "https://fullnode.mainnet.sui.io:443"
  package_id: "` + testPackageID + `"
  registry_id: "` + testRegistryID + `"
  asset_type: "0xabc::gallery::Artwork"
  key_strategy: "asset_id"
  display_precedence:
    - "fields"
    - "display"
    - "defaults"
  gas_budget: 100000000
  http_timeout: "10s"
nats:
  url: "nats://localhost:4222"
  stream_name: "CUSTOM_STREAM"
  consumer_name: "custom-consumer"
  max_reconnects: 5
  reconnect_wait: "5s"
  connection_name: "test-connection"
  ack_wait: "60s"
auth:
  jwt_public_key: "test-public-key"
  api_keys:
    - "key1"
    - "key2"
worker:
  pool_size: 16
  queue_size: 512
`,
			expectError: false,
			validate: func(t *testing.T, cfg *GatewayConfig) {
				assert.True(t, cfg.Debug)
				assert.Equal(t, "https://sentry.example.com", cfg.SentryDSN)
				assert.Equal(t, "127.0.0.1", cfg.Server.Host)
				assert.Equal(t, 9090, cfg.Server.Port)
				assert.Equal(t, 20, cfg.Server.ReadTimeout)
				assert.Equal(t, 180, cfg.Server.IdleTimeout)
				assert.Equal(t, "https://fullnode.mainnet.sui.io:443", cfg.Sui.RPCURL)
				assert.Equal(t, testPackageID, cfg.Sui.PackageID)
				assert.Equal(t, testRegistryID, cfg.Sui.RegistryID)
				assert.Equal(t, "0xabc::gallery::Artwork", cfg.Sui.AssetType)
				assert.Equal(t, "asset_id", cfg.Sui.KeyStrategy)
				assert.Equal(t, []string{"fields", "display", "defaults"}, cfg.Sui.DisplayPrecedence)
				assert.Equal(t, uint64(100000000), cfg.Sui.GasBudget)
				assert.Equal(t, 10*time.Second, cfg.Sui.HTTPTimeout)
				assert.Equal(t, "nats://localhost:4222", cfg.NATS.URL)
				assert.Equal(t, "CUSTOM_STREAM", cfg.NATS.StreamName)
				assert.Equal(t, "custom-consumer", cfg.NATS.ConsumerName)
				assert.Equal(t, 60*time.Second, cfg.NATS.AckWait)
				assert.Equal(t, "test-public-key", cfg.Auth.JWTPublicKey)
				assert.Len(t, cfg.Auth.APIKeys, 2)
				assert.Equal(t, 16, cfg.Worker.WorkerPoolSize)
				assert.Equal(t, 512, cfg.Worker.WorkerQueueSize)
			},
		},
		{
			name: "config with defaults",
			configFile: `
sui:
  package_id: "` + testPackageID + `"
  registry_id: "` + testRegistryID + `"
  asset_type: "0xabc::gallery::Artwork"
`,
			expectError: false,
			validate: func(t *testing.T, cfg *GatewayConfig) {
				// Check defaults
				assert.False(t, cfg.Debug)
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, 10, cfg.Server.ReadTimeout)
				assert.Equal(t, 120, cfg.Server.IdleTimeout)
				assert.Equal(t, "https://fullnode.testnet.sui.io:443", cfg.Sui.RPCURL)
				assert.Equal(t, "named", cfg.Sui.KeyStrategy)
				assert.Equal(t, []string{"display", "fields", "defaults"}, cfg.Sui.DisplayPrecedence)
				assert.Equal(t, uint64(50_000_000), cfg.Sui.GasBudget)
				assert.Equal(t, 30*time.Second, cfg.Sui.HTTPTimeout)
				assert.Equal(t, "RENTAL_EVENTS", cfg.NATS.StreamName)
				assert.Equal(t, "gateway-refresher", cfg.NATS.ConsumerName)
				assert.Equal(t, 10, cfg.NATS.MaxReconnects)
				assert.Equal(t, "2s", cfg.NATS.ReconnectWait.String())
				assert.Equal(t, 30*time.Second, cfg.NATS.AckWait)
				assert.Equal(t, 8, cfg.Worker.WorkerPoolSize)
				assert.Equal(t, 256, cfg.Worker.WorkerQueueSize)
			},
		},
		{
			name: "missing package id",
			configFile: `
sui:
  registry_id: "` + testRegistryID + `"
  asset_type: "0xabc::gallery::Artwork"
`,
			expectError: true,
			validate:    nil,
		},
		{
			name: "malformed registry id",
			configFile: `
sui:
  package_id: "` + testPackageID + `"
  registry_id: "not-an-object-id"
  asset_type: "0xabc::gallery::Artwork"
`,
			expectError: true,
			validate:    nil,
		},
		{
			name: "unknown key strategy",
			configFile: `
sui:
  package_id: "` + testPackageID + `"
  registry_id: "` + testRegistryID + `"
  asset_type: "0xabc::gallery::Artwork"
  key_strategy: "positional"
`,
			expectError: true,
			validate:    nil,
		},
		{
			name: "unknown display precedence source",
			configFile: `
sui:
  package_id: "` + testPackageID + `"
  registry_id: "` + testRegistryID + `"
  asset_type: "0xabc::gallery::Artwork"
  display_precedence:
    - "oracle"
`,
			expectError: true,
			validate:    nil,
		},
		{
			name: "invalid yaml",
			configFile: `
				server:
				  port: invalid
			`,
			expectError: true, // Invalid port should cause unmarshal error
			validate:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			configFile := filepath.Join(tmpDir, "config.yaml")
			err := os.WriteFile(configFile, []byte(tt.configFile), 0600)
			require.NoError(t, err)

			cfg, err := LoadGatewayConfig(configFile, "")

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
			} else {
				if tt.validate != nil {
					require.NoError(t, err)
					require.NotNil(t, cfg)
					tt.validate(t, cfg)
				}
			}
		})
	}
}

func TestGatewayConfigWithEnvironmentVariables(t *testing.T) {
	tmpDir := t.TempDir()

	// Create temporary directory for env files
	envDir := filepath.Join(tmpDir, "env")
	err := os.MkdirAll(envDir, 0750)
	require.NoError(t, err)

	// Create .env file with environment variables
	// Note: Viper uses SUI_GATEWAY_ prefix, so env vars need the prefix
	envFile := filepath.Join(envDir, ".env")
	envContent := `SUI_GATEWAY_DEBUG=true
SUI_GATEWAY_SUI_RPC_URL=https://env-node.example.com
SUI_GATEWAY_SUI_GAS_BUDGET=75000000
SUI_GATEWAY_NATS_URL=nats://env-host:4222
`
	err = os.WriteFile(envFile, []byte(envContent), 0600)
	require.NoError(t, err)

	// Create config file with different values to verify env vars override
	configPath := filepath.Join(tmpDir, "config.yaml")
	configFile := `
debug: false
sui:
  rpc_url: "https://file-node.example.com"
  package_id: "` + testPackageID + `"
  registry_id: "` + testRegistryID + `"
  asset_type: "0xabc::gallery::Artwork"
  gas_budget: 50000000
`

	err = os.WriteFile(configPath, []byte(configFile), 0600)
	require.NoError(t, err)

	// Load config with envPath pointing to the temporary env directory
	cfg, err := LoadGatewayConfig(configPath, envDir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	// Environment variables from the .env file override config file values:
	// godotenv.Overload sets real environment variables and viper's
	// AutomaticEnv picks them up with the SUI_GATEWAY_ prefix
	assert.True(t, cfg.Debug)
	assert.Equal(t, "https://env-node.example.com", cfg.Sui.RPCURL)
	assert.Equal(t, uint64(75_000_000), cfg.Sui.GasBudget)
	assert.Equal(t, "nats://env-host:4222", cfg.NATS.URL)
}
