// Package config loads the process-wide application configuration.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

// Config holds application level configuration aggregated from env/config files.
// It is built once at startup and passed by reference; nothing mutates it afterwards.
type Config struct {
	Server struct {
		Addr string
	}
	Database struct {
		// URL is either a postgres:// DSN or a sqlite file path.
		URL         string
		AutoMigrate bool
	}
	Redis struct {
		// Addr empty means the cache layer is disabled.
		Addr     string
		Password string
	}
	Auth struct {
		Secret     string
		TokenTTL   time.Duration
		BcryptCost int
	}
	CORS struct {
		Origins []string
	}
	// Seed describes an optional initial admin account created at startup
	// when no user with the given email exists. Email empty disables seeding.
	Seed struct {
		Email    string
		Username string
		Password string
		FullName string
	}
}

// Load reads configuration from environment variables and an optional config file.
// A .env file in the working directory is applied first without overriding the
// real environment.
func Load() (*Config, error) {
	_ = godotenv.Load() // optional file

	v := viper.New()
	v.SetEnvPrefix("ITEM_BACKEND")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("database.url", "app.db")
	v.SetDefault("database.automigrate", true)
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("auth.secret", "")
	v.SetDefault("auth.tokenttl", 30*time.Minute)
	v.SetDefault("auth.bcryptcost", bcrypt.DefaultCost)
	v.SetDefault("cors.origins", []string{
		"http://localhost:3000",
		"http://localhost:8000",
		"http://localhost:5173",
	})
	v.SetDefault("seed.email", "")
	v.SetDefault("seed.username", "admin")
	v.SetDefault("seed.password", "")
	v.SetDefault("seed.fullname", "Admin User")

	v.SetConfigName("config")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // optional file

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if cfg.Auth.TokenTTL <= 0 {
		return nil, fmt.Errorf("auth.tokenttl must be positive, got %v", cfg.Auth.TokenTTL)
	}

	return &cfg, nil
}

// IsPostgres reports whether the configured database URL selects the postgres driver.
func (c *Config) IsPostgres() bool {
	return strings.HasPrefix(c.Database.URL, "postgres://") ||
		strings.HasPrefix(c.Database.URL, "postgresql://")
}
