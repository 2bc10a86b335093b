package config

import (
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/unicsmcr/bizdash/environment"

	"go.uber.org/config"
)

// AppConfig is a struct to store non-private configuration for the project
type AppConfig struct {
	Name         string             `yaml:"name"`
	Upstream     UpstreamConfig     `yaml:"upstream"`
	Auth         AuthConfig         `yaml:"auth"`
	SessionCache SessionCacheConfig `yaml:"session_cache"`
	Pagination   PaginationConfig   `yaml:"pagination"`
	Dashboard    DashboardConfig    `yaml:"dashboard"`
}

// UpstreamConfig stores the settings for requests to the REST backend
type UpstreamConfig struct {
	// Timeout of a single backend request, in seconds
	Timeout      int64 `yaml:"timeout"`
	MaxBodyBytes int64 `yaml:"max_body_bytes"`
}

// AuthConfig stores the settings for sessions issued by bizdash
type AuthConfig struct {
	// SessionLifetime in seconds
	SessionLifetime int64  `yaml:"session_lifetime"`
	CookieName      string `yaml:"cookie_name"`
	SecureCookie    bool   `yaml:"secure_cookie"`
}

// SessionCacheConfig stores the settings for the Redis session cache
type SessionCacheConfig struct {
	// TTL in seconds
	TTL int64 `yaml:"ttl"`
}

type PaginationConfig struct {
	DefaultPageSize int `yaml:"default_page_size"`
	MaxPageSize     int `yaml:"max_page_size"`
}

type DashboardConfig struct {
	Concurrency int `yaml:"concurrency"`
}

// NewAppConfig loads the project config from the config files based on the environment
func NewAppConfig(env *environment.Env) (*AppConfig, error) {
	dir := env.Get(environment.ConfigDir)
	if len(dir) == 0 {
		dir = "."
	}

	configFiles := []config.YAMLOption{config.File(filepath.Join(dir, "base.yaml"))}
	if env.Get(environment.Environment) == "prod" {
		configFiles = append(configFiles, config.File(filepath.Join(dir, "production.yaml")))
	} else if env.Get(environment.Environment) == "dev" {
		configFiles = append(configFiles, config.File(filepath.Join(dir, "development.yaml")))
	}

	configProvider, err := config.NewYAML(configFiles...)
	if err != nil {
		return nil, errors.Wrap(err, "could not load config files")
	}

	var cfg AppConfig
	err = configProvider.Get(config.Root).Populate(&cfg)
	if err != nil {
		return nil, errors.Wrap(err, "could not populate config")
	}

	return &cfg, nil
}
