package config

import (
	"fmt"
	"os"
	"time"

	"github.com/creasty/defaults"
	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Environment variables overriding secrets from the config file
const (
	EnvDatabasePassword = "GATEWAY_DB_PASSWORD"
	EnvJWTSecret        = "GATEWAY_JWT_SECRET"
)

// Config represents the gateway service configuration
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Gateway    GatewayConfig    `yaml:"gateway"`
	Auth       AuthConfig       `yaml:"auth"`
	Monitoring MonitoringConfig `yaml:"monitoring"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `yaml:"host" default:"0.0.0.0"`
	Port            int           `yaml:"port" default:"8080" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `yaml:"read_timeout" default:"15s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" default:"15s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" default:"30s"`
}

// DatabaseConfig contains database connection settings. When disabled the
// gateway keeps its journal in memory and loses state on restart.
type DatabaseConfig struct {
	Enabled  bool   `yaml:"enabled" default:"true"`
	Host     string `yaml:"host" default:"localhost" validate:"required_if=Enabled true"`
	Port     int    `yaml:"port" default:"5432"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database" default:"token_gateway" validate:"required_if=Enabled true"`
	SSLMode  string `yaml:"ssl_mode" default:"disable" validate:"oneof=disable require verify-ca verify-full"`
}

// GatewayConfig contains the genesis of the L2 runtime
type GatewayConfig struct {
	// Address is where the gateway contract is installed on L2
	Address string `yaml:"address" validate:"required,eth_addr"`
	// L1Counterpart is the L1 gateway allowed to deliver deposits and registrations
	L1Counterpart string `yaml:"l1_counterpart" validate:"required,eth_addr"`
	// TemplateAddress hosts the standard token implementation
	TemplateAddress string `yaml:"template_address" validate:"required,eth_addr"`
	// CustomTemplateAddress hosts the implementation used by operator-deployed tokens
	CustomTemplateAddress string `yaml:"custom_template_address" validate:"omitempty,eth_addr"`
	// OperatorAddress may deploy custom tokens
	OperatorAddress string `yaml:"operator_address" validate:"omitempty,eth_addr"`
	GasLimit        uint64 `yaml:"gas_limit" default:"3000000" validate:"min=100000"`
	ChainID         uint64 `yaml:"chain_id" default:"412346"`
}

// AuthConfig contains HTTP authentication settings
type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret" validate:"required,min=32"`
	JWTIssuer string `yaml:"jwt_issuer" default:"token-gateway"`
	// SignatureTTL bounds the age of signed holder requests
	SignatureTTL time.Duration `yaml:"signature_ttl" default:"5m"`
}

// MonitoringConfig contains monitoring and metrics settings
type MonitoringConfig struct {
	Enabled bool   `yaml:"enabled" default:"true"`
	Path    string `yaml:"path" default:"/metrics"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level      string `yaml:"level" default:"info"`
	Format     string `yaml:"format" default:"json" validate:"oneof=json console"`
	OutputPath string `yaml:"output_path" default:"stdout"`
}

// Load loads configuration from file and environment variables
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML document, applies defaults and environment overrides and
// validates the result.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := defaults.Set(&cfg); err != nil {
		return nil, fmt.Errorf("failed to set config defaults: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if v, ok := os.LookupEnv(EnvDatabasePassword); ok {
		cfg.Database.Password = v
	}
	if v, ok := os.LookupEnv(EnvJWTSecret); ok {
		cfg.Auth.JWTSecret = v
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// GatewayAddress returns the configured gateway contract address
func (c *GatewayConfig) GatewayAddress() common.Address {
	return common.HexToAddress(c.Address)
}

// Counterpart returns the configured L1 counterpart address
func (c *GatewayConfig) Counterpart() common.Address {
	return common.HexToAddress(c.L1Counterpart)
}

// Template returns the standard template address
func (c *GatewayConfig) Template() common.Address {
	return common.HexToAddress(c.TemplateAddress)
}

// CustomTemplate returns the custom template address, or the zero address when unset
func (c *GatewayConfig) CustomTemplate() common.Address {
	if c.CustomTemplateAddress == "" {
		return common.Address{}
	}
	return common.HexToAddress(c.CustomTemplateAddress)
}

// Operator returns the operator address, or the zero address when unset
func (c *GatewayConfig) Operator() common.Address {
	if c.OperatorAddress == "" {
		return common.Address{}
	}
	return common.HexToAddress(c.OperatorAddress)
}

// GetConnectionString returns a PostgreSQL connection string
func (c *DatabaseConfig) GetConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}
