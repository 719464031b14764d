package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the service settings for the HTTP server and stores.
type Config struct {
	Addr            string        `mapstructure:"addr"`
	DBPath          string        `mapstructure:"db_path"`
	SnapshotDir     string        `mapstructure:"snapshot_dir"`
	ReportCacheTTL  time.Duration `mapstructure:"report_cache_ttl"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Load reads the config file at path, if given, and applies environment
// overrides. A .env file in the working directory is honored.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("addr", ":8080")
	v.SetDefault("db_path", "shiftrecon.db")
	v.SetDefault("snapshot_dir", "snapshots")
	v.SetDefault("report_cache_ttl", 5*time.Minute)
	v.SetDefault("shutdown_timeout", 10*time.Second)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if addr := os.Getenv("SHIFTRECON_ADDR"); addr != "" {
		v.Set("addr", addr)
	}
	if dbPath := os.Getenv("SHIFTRECON_DB_PATH"); dbPath != "" {
		v.Set("db_path", dbPath)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
