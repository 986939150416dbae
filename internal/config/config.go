package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// DefaultOutputPath is used when neither the command line nor the config names a file.
const DefaultOutputPath = "shape_questions.csv"

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env              string `mapstructure:"env"`               // current application environment (local, dev, production)
	OutputPath       string `mapstructure:"output_path"`       // CSV destination
	Count            int    `mapstructure:"count"`             // number of questions to generate
	Seed             int64  `mapstructure:"seed"`              // random seed, 0 means time based
	TopicNumber      string `mapstructure:"topic_number"`      // topic code written into every row
	ContributorEmail string `mapstructure:"contributor_email"` // contributor column value
	VariationNumber  int    `mapstructure:"variation_number"`  // variation column value
	TimeSeconds      int    `mapstructure:"time_seconds"`      // time allowed per question
	DB               DB     `mapstructure:"database"`          // optional question bank export
}

// DB contains database-related configuration parameters.
type DB struct {
	URL             string        `mapstructure:"-"`                 // database connection string loaded from environment
	MaxConnections  int           `mapstructure:"max_connections"`   // maximum number of open connections in the pool
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"` // maximum lifetime of a single connection
}

// Enabled reports whether rows should also be exported to Postgres.
func (db DB) Enabled() bool {
	return db.URL != ""
}

// Load reads configuration from an optional .env file, config files and environment variables.
func Load() (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	// Initialize Viper instance and base config options.
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	// Set default values for configuration keys.
	v.SetDefault("env", "local")
	v.SetDefault("output_path", DefaultOutputPath)
	v.SetDefault("count", 200)
	v.SetDefault("seed", 0)
	v.SetDefault("topic_number", "040101")
	v.SetDefault("contributor_email", "2024.riteshs@isu.ac.in")
	v.SetDefault("variation_number", 128)
	v.SetDefault("time_seconds", 45)
	v.SetDefault("database.max_connections", 5)
	v.SetDefault("database.max_conn_lifetime", "30s")

	// Configure environment variable handling and key mapping.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	// Bind explicit environment variables to configuration keys.
	_ = v.BindEnv("env", "APP_ENV")
	_ = v.BindEnv("output_path", "OUTPUT_PATH")
	_ = v.BindEnv("count", "QUESTION_COUNT")
	_ = v.BindEnv("seed", "QUESTION_SEED")
	_ = v.BindEnv("database_url", "DATABASE_URL")

	// Try to read configuration file if present.
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	// Unmarshal configuration into strongly typed struct.
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	// Load sensitive values from environment variables.
	cfg.DB.URL = v.GetString("database_url")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks values that would otherwise fail halfway through a run.
func (c *Config) Validate() error {
	if c.Count < 0 {
		return fmt.Errorf("%w: count must not be negative, got %d", ErrInvalidConfig, c.Count)
	}
	if strings.TrimSpace(c.OutputPath) == "" {
		return fmt.Errorf("%w: output_path is empty", ErrInvalidConfig)
	}
	if c.DB.Enabled() && c.DB.MaxConnections <= 0 {
		return fmt.Errorf("%w: database.max_connections must be positive", ErrInvalidConfig)
	}
	return nil
}
