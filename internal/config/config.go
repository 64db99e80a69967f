// Package config loads the service configuration from the environment.
//
// Variables use the PAYVERIFY_ prefix, e.g. PAYVERIFY_HTTP_ADDR or
// PAYVERIFY_REDIS_ADDR. Network RPC endpoints are read from the unprefixed
// <NETWORK>_RPC_URL variables, and PAYVERIFY_NETWORKS_FILE may point at a YAML
// file that adds networks or overrides the built-in ones.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ad402/payverify/internal/payverify"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// Prefix is the environment variable prefix.
const Prefix = "PAYVERIFY"

// Rate limit stores.
const (
	RateLimitStoreRedis  = "redis"
	RateLimitStoreMemory = "memory"
)

// ErrInvalidConfig is returned when a loaded value is out of range.
var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	HTTPAddr string `envconfig:"HTTP_ADDR" default:":8080"`

	// NetworksFile is an optional YAML file with extra networks.
	NetworksFile string `envconfig:"NETWORKS_FILE"`

	Telemetry TelemetryConfig `envconfig:"OTEL"`
	RPC       RPCConfig       `envconfig:"RPC"`
	Verify    VerifyConfig    `envconfig:"VERIFY"`
	Redis     RedisConfig     `envconfig:"REDIS"`
	Kafka     KafkaConfig     `envconfig:"KAFKA"`
	RateLimit RateLimitConfig `envconfig:"RATE_LIMIT"`
	Confirm   ConfirmConfig   `envconfig:"CONFIRM"`
}

type TelemetryConfig struct {
	Enabled     bool   `envconfig:"ENABLED" default:"false"`
	ServiceName string `envconfig:"SERVICE_NAME" default:"payverify"`
}

// RPCConfig tunes the HTTP transport to the chain nodes. Retries at this
// level are off by default; verification retries are handled above it.
type RPCConfig struct {
	Timeout  time.Duration `envconfig:"TIMEOUT" default:"10s"`
	RetryMax int           `envconfig:"RETRY_MAX" default:"0"`
}

type VerifyConfig struct {
	Timeout    time.Duration `envconfig:"TIMEOUT" default:"10s"`
	Attempts   uint          `envconfig:"ATTEMPTS" default:"3"`
	RetryDelay time.Duration `envconfig:"RETRY_DELAY" default:"500ms"`
}

// RedisConfig locates the store for payments and the pending-confirmation
// queue.
type RedisConfig struct {
	Addr     string `envconfig:"ADDR" default:"localhost:6379"`
	Username string `envconfig:"USERNAME"`
	Password string `envconfig:"PASSWORD"`
	DB       int    `envconfig:"DB" default:"0"`
}

// KafkaConfig enables event publishing when Brokers is set.
type KafkaConfig struct {
	Brokers []string `envconfig:"BROKERS"`
	Topic   string   `envconfig:"TOPIC" default:"payverify.payments"`
}

// RateLimitConfig sets the request limits. Store is "redis" to share
// counters between replicas or "memory" to keep them per process.
type RateLimitConfig struct {
	Store       string        `envconfig:"STORE" default:"redis"`
	IPLimit     int64         `envconfig:"IP_LIMIT" default:"100"`
	WalletLimit int64         `envconfig:"WALLET_LIMIT" default:"50"`
	Window      time.Duration `envconfig:"WINDOW" default:"15m"`
}

type ConfirmConfig struct {
	Interval         time.Duration `envconfig:"INTERVAL" default:"15s"`
	MinConfirmations uint64        `envconfig:"MIN_CONFIRMATIONS" default:"3"`
	MaxPendingAge    time.Duration `envconfig:"MAX_PENDING_AGE" default:"1h"`
	BatchSize        int           `envconfig:"BATCH_SIZE" default:"100"`
	Workers          int           `envconfig:"WORKERS" default:"4"`
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, err
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) validate() error {
	var errs []error

	if c.Verify.Attempts == 0 {
		errs = append(errs, fmt.Errorf("%w: VERIFY_ATTEMPTS must be at least 1", ErrInvalidConfig))
	}
	if c.RateLimit.IPLimit <= 0 || c.RateLimit.WalletLimit <= 0 || c.RateLimit.Window <= 0 {
		errs = append(errs, fmt.Errorf("%w: rate limits and window must be positive", ErrInvalidConfig))
	}
	if c.RateLimit.Store != RateLimitStoreRedis && c.RateLimit.Store != RateLimitStoreMemory {
		errs = append(errs, fmt.Errorf("%w: unknown RATE_LIMIT_STORE %q", ErrInvalidConfig, c.RateLimit.Store))
	}
	if c.Confirm.Interval <= 0 {
		errs = append(errs, fmt.Errorf("%w: CONFIRM_INTERVAL must be positive", ErrInvalidConfig))
	}
	if c.Confirm.BatchSize <= 0 {
		errs = append(errs, fmt.Errorf("%w: CONFIRM_BATCH_SIZE must be positive", ErrInvalidConfig))
	}

	return errors.Join(errs...)
}

type networksFile struct {
	Networks []payverify.Network `yaml:"networks"`
}

// LoadNetworks parses a YAML networks file:
//
//	networks:
//	  - name: mantle
//	    rpcUrl: https://mantle.example.org
//	  - name: base
//	    chainId: 8453
//	    rpcUrl: https://mainnet.base.org
//	    nativeSymbol: ETH
func LoadNetworks(path string) ([]payverify.Network, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f networksFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, err)
	}

	for i, n := range f.Networks {
		if n.Name == "" {
			return nil, fmt.Errorf("%w: %s: network %d has no name", ErrInvalidConfig, path, i)
		}
	}

	return f.Networks, nil
}

// Registry builds the network registry: the built-in networks, then the
// networks file, then the <NETWORK>_RPC_URL overrides found by lookup.
func (c Config) Registry(lookup func(string) (string, bool)) (*payverify.Registry, error) {
	registry := payverify.NewRegistry(payverify.DefaultNetworks()...)

	if c.NetworksFile != "" {
		networks, err := LoadNetworks(c.NetworksFile)
		if err != nil {
			return nil, err
		}
		registry.Merge(networks...)
	}

	registry.ApplyEnv(lookup)
	return registry, nil
}
