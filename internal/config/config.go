// Package config loads and validates application settings once at startup.
package config

import (
	"fmt"
	"net"
	"net/url"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	// Runtime
	Env      string
	LogLevel string

	// Server
	Port               string
	RateLimit          string
	CORSAllowedOrigins []string

	// Local tier
	LocalDBPath string

	// Remote tier
	Remote RemoteConfig
}

// RemoteConfig holds the remote backend connection settings. It is only
// consulted when Enabled is true.
type RemoteConfig struct {
	Enabled  bool
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// DSN returns the PostgreSQL keyword/value connection string
func (r RemoteConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		r.Host, r.Port, r.User, r.Password, r.DBName, r.SSLMode)
}

// URL returns the postgres:// form used by golang-migrate, with credentials
// and database name escaped.
func (r RemoteConfig) URL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(r.User, r.Password),
		Host:     net.JoinHostPort(r.Host, r.Port),
		Path:     "/" + r.DBName,
		RawQuery: url.Values{"sslmode": {r.SSLMode}}.Encode(),
	}
	return u.String()
}

// Load reads configuration from a .env file (if present) and the environment,
// applies defaults and validates it. Missing required settings are reported
// together in one error.
func Load() (*Config, error) {
	// A missing .env file is fine; the environment still applies.
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("PORT", "8080")
	v.SetDefault("RATE_LIMIT", "100-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("LOCAL_DB_PATH", "budgetapp.db")
	v.SetDefault("REMOTE_ENABLED", false)
	v.SetDefault("REMOTE_DB_HOST", "")
	v.SetDefault("REMOTE_DB_PORT", "5432")
	v.SetDefault("REMOTE_DB_USER", "")
	v.SetDefault("REMOTE_DB_PASSWORD", "")
	v.SetDefault("REMOTE_DB_NAME", "")
	v.SetDefault("REMOTE_DB_SSLMODE", "require")
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Env:                v.GetString("ENV"),
		LogLevel:           v.GetString("LOG_LEVEL"),
		Port:               v.GetString("PORT"),
		RateLimit:          v.GetString("RATE_LIMIT"),
		CORSAllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		LocalDBPath:        v.GetString("LOCAL_DB_PATH"),
		Remote: RemoteConfig{
			Enabled:  v.GetBool("REMOTE_ENABLED"),
			Host:     v.GetString("REMOTE_DB_HOST"),
			Port:     v.GetString("REMOTE_DB_PORT"),
			User:     v.GetString("REMOTE_DB_USER"),
			Password: v.GetString("REMOTE_DB_PASSWORD"),
			DBName:   v.GetString("REMOTE_DB_NAME"),
			SSLMode:  v.GetString("REMOTE_DB_SSLMODE"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks required settings.
func (c *Config) Validate() error {
	var missing []string
	if c.Port == "" {
		missing = append(missing, "PORT")
	}
	if c.LocalDBPath == "" {
		missing = append(missing, "LOCAL_DB_PATH")
	}
	if c.Remote.Enabled {
		required := []struct{ key, value string }{
			{"REMOTE_DB_HOST", c.Remote.Host},
			{"REMOTE_DB_PORT", c.Remote.Port},
			{"REMOTE_DB_USER", c.Remote.User},
			{"REMOTE_DB_PASSWORD", c.Remote.Password},
			{"REMOTE_DB_NAME", c.Remote.DBName},
		}
		for _, r := range required {
			if r.value == "" {
				missing = append(missing, r.key)
			}
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	return nil
}

// IsProduction reports whether the app runs in production mode.
func (c *Config) IsProduction() bool { return c.Env == "production" }

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
