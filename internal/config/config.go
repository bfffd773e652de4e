package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/openrent/sui-rental-gateway/internal/domain"
	"github.com/openrent/sui-rental-gateway/internal/metadata"
	"github.com/openrent/sui-rental-gateway/internal/pipeline"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds
}

// SuiConfig holds Sui JSON-RPC and marketplace contract configuration
type SuiConfig struct {
	RPCURL            string        `mapstructure:"rpc_url"`
	PackageID         string        `mapstructure:"package_id"`
	RegistryID        string        `mapstructure:"registry_id"`
	AssetType         string        `mapstructure:"asset_type"`
	KeyStrategy       string        `mapstructure:"key_strategy"`
	DisplayPrecedence []string      `mapstructure:"display_precedence"`
	GasBudget         uint64        `mapstructure:"gas_budget"`
	HTTPTimeout       time.Duration `mapstructure:"http_timeout"`
}

// NATSConfig holds NATS JetStream configuration
type NATSConfig struct {
	URL            string        `mapstructure:"url"`
	StreamName     string        `mapstructure:"stream_name"`
	ConsumerName   string        `mapstructure:"consumer_name"`
	MaxReconnects  int           `mapstructure:"max_reconnects"`
	ReconnectWait  time.Duration `mapstructure:"reconnect_wait"`
	ConnectionName string        `mapstructure:"connection_name"`
	AckWait        time.Duration `mapstructure:"ack_wait"`
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTPublicKey string   `mapstructure:"jwt_public_key"`
	APIKeys      []string `mapstructure:"api_keys"`
}

// WorkerConfig holds worker pool configuration
type WorkerConfig struct {
	WorkerPoolSize  int `mapstructure:"pool_size"`
	WorkerQueueSize int `mapstructure:"queue_size"`
}

// GatewayConfig holds configuration for the rental gateway server
type GatewayConfig struct {
	BaseConfig `mapstructure:",squash"`
	Server     ServerConfig `mapstructure:"server"`
	Sui        SuiConfig    `mapstructure:"sui"`
	NATS       NATSConfig   `mapstructure:"nats"`
	Auth       AuthConfig   `mapstructure:"auth"`
	Worker     WorkerConfig `mapstructure:"worker"`
}

// LoadGatewayConfig loads configuration for the gateway server
func LoadGatewayConfig(configFile string, envPath string) (*GatewayConfig, error) {
	v := configureViper("gateway", configFile, envPath)

	// Set defaults
	v.SetDefault("debug", false)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("server.idle_timeout", 120)
	v.SetDefault("sui.rpc_url", "https://fullnode.testnet.sui.io:443")
	v.SetDefault("sui.key_strategy", string(pipeline.KeyStrategyNamed))
	v.SetDefault("sui.display_precedence", []string{"display", "fields", "defaults"})
	v.SetDefault("sui.gas_budget", 50_000_000)
	v.SetDefault("sui.http_timeout", "30s")
	v.SetDefault("nats.stream_name", "RENTAL_EVENTS")
	v.SetDefault("nats.consumer_name", "gateway-refresher")
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("nats.connection_name", "sui-rental-gateway")
	v.SetDefault("nats.ack_wait", "30s")
	v.SetDefault("worker.pool_size", 8)
	v.SetDefault("worker.queue_size", 256)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			// Config file not found, use environment variables
		} else {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config GatewayConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks the contract coordinates and enum-valued settings
func (c *GatewayConfig) Validate() error {
	if c.Sui.PackageID == "" {
		return errors.New("sui.package_id is required")
	}
	if !domain.IsValidObjectID(c.Sui.PackageID) {
		return fmt.Errorf("sui.package_id %q is not a valid object id", c.Sui.PackageID)
	}
	if c.Sui.RegistryID == "" {
		return errors.New("sui.registry_id is required")
	}
	if !domain.IsValidObjectID(c.Sui.RegistryID) {
		return fmt.Errorf("sui.registry_id %q is not a valid object id", c.Sui.RegistryID)
	}
	if c.Sui.AssetType == "" {
		return errors.New("sui.asset_type is required")
	}
	if _, err := pipeline.ParseKeyStrategy(c.Sui.KeyStrategy); err != nil {
		return fmt.Errorf("sui.key_strategy: %w", err)
	}
	if _, err := metadata.ParsePrecedence(c.Sui.DisplayPrecedence); err != nil {
		return fmt.Errorf("sui.display_precedence: %w", err)
	}
	return nil
}

// configureViper returns a viper instance with the config file and environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	// Load environment variables
	loadEnv(envPath, service)

	// Set config file
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		// Search for config.yaml in multiple locations:
		// 1. Current directory
		v.AddConfigPath(".")
		// 2. Service-specific directory (e.g., cmd/gateway/)
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		// 3. Config directory
		v.AddConfigPath("config/")
	}

	// Set environment variables
	v.SetEnvPrefix("SUI_GATEWAY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicitly bind all environment variables
	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables
// This is required for viper to map env vars to config struct fields when no config file exists
func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"sentry_dsn",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		// Sui
		"sui.rpc_url",
		"sui.package_id",
		"sui.registry_id",
		"sui.asset_type",
		"sui.key_strategy",
		"sui.display_precedence",
		"sui.gas_budget",
		"sui.http_timeout",
		// NATS
		"nats.url",
		"nats.stream_name",
		"nats.consumer_name",
		"nats.max_reconnects",
		"nats.reconnect_wait",
		"nats.connection_name",
		"nats.ack_wait",
		// Auth
		"auth.jwt_public_key",
		"auth.api_keys",
		// Worker
		"worker.pool_size",
		"worker.queue_size",
	}

	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	// Always try shared base first, then local, then optional per-service local.
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	// Default to config directory
	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		candidate := filepath.Join(envPath, envFile)
		_ = godotenv.Overload(candidate) // Overload lets later files override earlier ones
	}
}

// ChdirRepoRoot changes the current working directory to the repository root
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}
