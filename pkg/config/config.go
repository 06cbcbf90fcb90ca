// Package config loads the daemon configuration from a YAML file with
// LOOM_* environment overrides applied on top.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config is the full daemon configuration
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Registry  RegistryConfig  `yaml:"registry"`
	Balancer  BalancerConfig  `yaml:"balancer"`
	Runtime   RuntimeConfig   `yaml:"runtime"`
	Messaging MessagingConfig `yaml:"messaging"`
	TaskStore TaskStoreConfig `yaml:"taskstore"`
	Storage   StorageConfig   `yaml:"storage"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Gateway   GatewayConfig   `yaml:"gateway"`
	Log       LogConfig       `yaml:"log"`
}

// ServerConfig configures the control-plane gRPC listener
type ServerConfig struct {
	ListenAddr        string  `yaml:"listen_addr" env:"LOOM_SERVER_LISTEN_ADDR"`
	MetricsAddr       string  `yaml:"metrics_addr" env:"LOOM_SERVER_METRICS_ADDR"`
	TLSCertFile       string  `yaml:"tls_cert_file" env:"LOOM_SERVER_TLS_CERT_FILE"`
	TLSKeyFile        string  `yaml:"tls_key_file" env:"LOOM_SERVER_TLS_KEY_FILE"`
	TLSClientCAFile   string  `yaml:"tls_client_ca_file" env:"LOOM_SERVER_TLS_CLIENT_CA_FILE"`
	RequestsPerSecond float64 `yaml:"requests_per_second" env:"LOOM_SERVER_REQUESTS_PER_SECOND"`
	Burst             int     `yaml:"burst" env:"LOOM_SERVER_BURST"`
}

// RegistryConfig configures cluster health probing
type RegistryConfig struct {
	ProbeInterval      time.Duration `yaml:"probe_interval" env:"LOOM_REGISTRY_PROBE_INTERVAL"`
	ProbeTimeout       time.Duration `yaml:"probe_timeout" env:"LOOM_REGISTRY_PROBE_TIMEOUT"`
	DegradedThreshold  int           `yaml:"degraded_threshold" env:"LOOM_REGISTRY_DEGRADED_THRESHOLD"`
	OfflineThreshold   int           `yaml:"offline_threshold" env:"LOOM_REGISTRY_OFFLINE_THRESHOLD"`
	AutoRemoveAfter    time.Duration `yaml:"auto_remove_after" env:"LOOM_REGISTRY_AUTO_REMOVE_AFTER"`
}

// BalancerConfig configures spawn placement and migration
type BalancerConfig struct {
	DefaultPriority         string        `yaml:"default_priority" env:"LOOM_BALANCER_DEFAULT_PRIORITY"`
	Strategy                string        `yaml:"strategy" env:"LOOM_BALANCER_STRATEGY"`
	LocalFloor              float64       `yaml:"local_floor" env:"LOOM_BALANCER_LOCAL_FLOOR"`
	MaxSpawnAttempts        int           `yaml:"max_spawn_attempts" env:"LOOM_BALANCER_MAX_SPAWN_ATTEMPTS"`
	MaxConcurrentMigrations int           `yaml:"max_concurrent_migrations" env:"LOOM_BALANCER_MAX_CONCURRENT_MIGRATIONS"`
	VerifyTimeout           time.Duration `yaml:"verify_timeout" env:"LOOM_BALANCER_VERIFY_TIMEOUT"`
}

// RuntimeConfig configures the local process runtime
type RuntimeConfig struct {
	MaxAgents     int      `yaml:"max_agents" env:"LOOM_RUNTIME_MAX_AGENTS"`
	WorkerCommand []string `yaml:"worker_command" env:"LOOM_RUNTIME_WORKER_COMMAND" envSeparator:" "`
}

// MessagingConfig configures mailboxes and the message bus
type MessagingConfig struct {
	MaxMessages      int           `yaml:"max_messages" env:"LOOM_MESSAGING_MAX_MESSAGES"`
	SweepInterval    time.Duration `yaml:"sweep_interval" env:"LOOM_MESSAGING_SWEEP_INTERVAL"`
	DeliveryTracking bool          `yaml:"delivery_tracking" env:"LOOM_MESSAGING_DELIVERY_TRACKING"`
}

// TaskStoreConfig configures the file-backed task store
type TaskStoreConfig struct {
	BasePath      string        `yaml:"base_path" env:"LOOM_TASKSTORE_BASE_PATH"`
	LockStaleness time.Duration `yaml:"lock_staleness" env:"LOOM_TASKSTORE_LOCK_STALENESS"`
}

// StorageConfig configures the bbolt control-plane state store
type StorageConfig struct {
	Path string `yaml:"path" env:"LOOM_STORAGE_PATH"`
}

// TelemetryConfig configures OpenTelemetry tracing
type TelemetryConfig struct {
	Enabled      bool   `yaml:"enabled" env:"LOOM_TELEMETRY_ENABLED"`
	OTLPEndpoint string `yaml:"otlp_endpoint" env:"LOOM_TELEMETRY_OTLP_ENDPOINT"`
	ServiceName  string `yaml:"service_name" env:"LOOM_TELEMETRY_SERVICE_NAME"`
	Environment  string `yaml:"environment" env:"LOOM_TELEMETRY_ENVIRONMENT"`
}

// GatewayConfig configures the WebSocket event gateway
type GatewayConfig struct {
	Enabled    bool   `yaml:"enabled" env:"LOOM_GATEWAY_ENABLED"`
	ListenAddr string `yaml:"listen_addr" env:"LOOM_GATEWAY_LISTEN_ADDR"`
}

// LogConfig configures logging
type LogConfig struct {
	Level string `yaml:"level" env:"LOOM_LOG_LEVEL"`
	JSON  bool   `yaml:"json" env:"LOOM_LOG_JSON"`
}

// Default returns the development profile
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			ListenAddr:        "127.0.0.1:7117",
			MetricsAddr:       "127.0.0.1:9117",
			RequestsPerSecond: 50,
			Burst:             100,
		},
		Registry: RegistryConfig{
			ProbeInterval:     30 * time.Second,
			ProbeTimeout:      5 * time.Second,
			DegradedThreshold: 2,
			OfflineThreshold:  5,
		},
		Balancer: BalancerConfig{
			DefaultPriority:         "availability",
			Strategy:                "least-loaded",
			LocalFloor:              30,
			MaxSpawnAttempts:        3,
			MaxConcurrentMigrations: 4,
			VerifyTimeout:           30 * time.Second,
		},
		Runtime: RuntimeConfig{
			MaxAgents: 32,
		},
		Messaging: MessagingConfig{
			MaxMessages:      1000,
			SweepInterval:    time.Minute,
			DeliveryTracking: false,
		},
		TaskStore: TaskStoreConfig{
			BasePath:      "data/tasks",
			LockStaleness: 30 * time.Second,
		},
		Storage: StorageConfig{
			Path: "data/loom.db",
		},
		Telemetry: TelemetryConfig{
			ServiceName: "loom",
			Environment: "development",
		},
		Gateway: GatewayConfig{
			ListenAddr: "127.0.0.1:7118",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads the YAML file at path (optional; empty path skips the file),
// applies environment overrides, and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects configurations the daemon cannot run with
func (c *Config) Validate() error {
	if c.Server.ListenAddr == "" {
		return fmt.Errorf("server.listen_addr must not be empty")
	}
	if c.Registry.ProbeInterval <= 0 {
		return fmt.Errorf("registry.probe_interval must be positive")
	}
	if c.Registry.ProbeTimeout <= 0 {
		return fmt.Errorf("registry.probe_timeout must be positive")
	}
	if c.Registry.DegradedThreshold < 1 {
		return fmt.Errorf("registry.degraded_threshold must be at least 1")
	}
	if c.Registry.OfflineThreshold < c.Registry.DegradedThreshold {
		return fmt.Errorf("registry.offline_threshold must be >= degraded_threshold")
	}
	if c.Balancer.MaxSpawnAttempts < 1 {
		return fmt.Errorf("balancer.max_spawn_attempts must be at least 1")
	}
	if c.Balancer.MaxConcurrentMigrations < 1 {
		return fmt.Errorf("balancer.max_concurrent_migrations must be at least 1")
	}
	if c.Messaging.MaxMessages < 1 {
		return fmt.Errorf("messaging.max_messages must be at least 1")
	}
	if c.TaskStore.BasePath == "" {
		return fmt.Errorf("taskstore.base_path must not be empty")
	}
	return nil
}
