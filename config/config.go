package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment Configuration
	Environment EnvironmentConfig

	// Server Configuration
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// PostgreSQL - Users, audit trail
	Postgres PostgresConfig

	// Redis - User cache
	Redis RedisConfig

	// Kafka - Audit event stream
	Kafka KafkaConfig

	// JWT - Token issuance and verification
	JWT JWTConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string
}

// HTTPServerConfig is the configuration for the HTTP server.
type HTTPServerConfig struct {
	Host string
	Port int
	Mode string
}

// LoggerConfig is the configuration for the logger.
type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// PostgresConfig is the configuration for Postgres.
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	Schema   string
}

// RedisConfig is the configuration for Redis.
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// KafkaConfig is the configuration for Kafka. Brokers may be empty to run
// without the audit event stream.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// JWTConfig configures the RS256 token manager. This service issues tokens,
// so the private key is required in production; verify-only deployments may
// omit it. Keys are provided inline as PEM or as a file path.
type JWTConfig struct {
	Algorithm      string
	Issuer         string
	Audience       []string
	PrivateKey     string
	PrivateKeyFile string
	PublicKey      string
	PublicKeyFile  string
	AccessTTL      int // in seconds
	RefreshTTL     int // in seconds
}

// Load loads configuration using Viper.
func Load() (*Config, error) {
	viper.SetConfigName("identity-config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/identity/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Host = viper.GetString("http_server.host")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// PostgreSQL
	cfg.Postgres.Host = viper.GetString("postgres.host")
	cfg.Postgres.Port = viper.GetInt("postgres.port")
	cfg.Postgres.User = viper.GetString("postgres.user")
	cfg.Postgres.Password = viper.GetString("postgres.password")
	cfg.Postgres.DBName = viper.GetString("postgres.dbname")
	cfg.Postgres.SSLMode = viper.GetString("postgres.sslmode")
	cfg.Postgres.Schema = viper.GetString("postgres.schema")

	// Redis
	cfg.Redis.Host = viper.GetString("redis.host")
	cfg.Redis.Port = viper.GetInt("redis.port")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")

	// Kafka
	cfg.Kafka.Brokers = viper.GetStringSlice("kafka.brokers")
	cfg.Kafka.Topic = viper.GetString("kafka.topic")

	// JWT
	cfg.JWT.Algorithm = viper.GetString("jwt.algorithm")
	cfg.JWT.Issuer = viper.GetString("jwt.issuer")
	cfg.JWT.Audience = viper.GetStringSlice("jwt.audience")
	cfg.JWT.PrivateKey = viper.GetString("jwt.private_key")
	cfg.JWT.PrivateKeyFile = viper.GetString("jwt.private_key_file")
	cfg.JWT.PublicKey = viper.GetString("jwt.public_key")
	cfg.JWT.PublicKeyFile = viper.GetString("jwt.public_key_file")
	cfg.JWT.AccessTTL = viper.GetInt("jwt.access_ttl")
	cfg.JWT.RefreshTTL = viper.GetInt("jwt.refresh_ttl")

	if err := resolveKeyFiles(cfg); err != nil {
		return nil, err
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// resolveKeyFiles reads the PEM key material from files when keys are not
// configured inline.
func resolveKeyFiles(cfg *Config) error {
	if cfg.JWT.PrivateKey == "" && cfg.JWT.PrivateKeyFile != "" {
		data, err := os.ReadFile(cfg.JWT.PrivateKeyFile)
		if err != nil {
			return fmt.Errorf("failed to read jwt.private_key_file: %w", err)
		}
		cfg.JWT.PrivateKey = string(data)
	}
	if cfg.JWT.PublicKey == "" && cfg.JWT.PublicKeyFile != "" {
		data, err := os.ReadFile(cfg.JWT.PublicKeyFile)
		if err != nil {
			return fmt.Errorf("failed to read jwt.public_key_file: %w", err)
		}
		cfg.JWT.PublicKey = string(data)
	}
	return nil
}

func setDefaults() {
	// Environment
	viper.SetDefault("environment.name", "production")

	// HTTP Server
	viper.SetDefault("http_server.host", "")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")

	// Logger
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	// PostgreSQL (schema per specs: identity)
	viper.SetDefault("postgres.host", "localhost")
	viper.SetDefault("postgres.port", 5432)
	viper.SetDefault("postgres.user", "postgres")
	viper.SetDefault("postgres.password", "postgres")
	viper.SetDefault("postgres.dbname", "postgres")
	viper.SetDefault("postgres.sslmode", "prefer")
	viper.SetDefault("postgres.schema", "identity")

	// Redis
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)

	// Kafka (topic per specs: identity.audit)
	viper.SetDefault("kafka.brokers", []string{"localhost:9092"})
	viper.SetDefault("kafka.topic", "identity.audit")

	// JWT
	viper.SetDefault("jwt.algorithm", "RS256")
	viper.SetDefault("jwt.issuer", "identity-srv")
	viper.SetDefault("jwt.audience", []string{"identity-services"})
	viper.SetDefault("jwt.private_key_file", "private_key.pem")
	viper.SetDefault("jwt.public_key_file", "public_key.pem")
	viper.SetDefault("jwt.access_ttl", 1800)    // 30 minutes
	viper.SetDefault("jwt.refresh_ttl", 604800) // 7 days
}

func validate(cfg *Config) error {
	// Validate JWT fields
	if cfg.JWT.Algorithm != "RS256" {
		return fmt.Errorf("jwt.algorithm must be RS256, got %q", cfg.JWT.Algorithm)
	}
	if cfg.JWT.PublicKey == "" {
		return fmt.Errorf("jwt.public_key or jwt.public_key_file is required")
	}
	if cfg.JWT.Issuer == "" {
		return fmt.Errorf("jwt.issuer is required")
	}
	if len(cfg.JWT.Audience) == 0 {
		return fmt.Errorf("jwt.audience must have at least one value")
	}
	if cfg.JWT.AccessTTL <= 0 {
		return fmt.Errorf("jwt.access_ttl must be greater than 0")
	}
	if cfg.JWT.RefreshTTL <= 0 {
		return fmt.Errorf("jwt.refresh_ttl must be greater than 0")
	}

	if cfg.Postgres.Host == "" {
		return fmt.Errorf("postgres.host is required")
	}
	if cfg.Postgres.Port == 0 {
		return fmt.Errorf("postgres.port is required")
	}
	if cfg.Postgres.DBName == "" {
		return fmt.Errorf("postgres.dbname is required")
	}
	if cfg.Postgres.User == "" {
		return fmt.Errorf("postgres.user is required")
	}

	if cfg.Redis.Host == "" {
		return fmt.Errorf("redis.host is required")
	}
	if cfg.Redis.Port == 0 {
		return fmt.Errorf("redis.port is required")
	}

	return nil
}
