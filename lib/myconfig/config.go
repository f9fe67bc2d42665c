package myconfig

import (
	"fmt"
	"time"
)

type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

const (
	DefaultAPIVersion        = "2.6.0"
	DefaultEnvironment       = EnvironmentProduction
	DefaultRequestTimeout    = 10 * time.Second
	DefaultOptOutExpiredTime = 365 * 24 * time.Hour

	productionBaseURL  = "https://api.seel.com"
	developmentBaseURL = "https://api-test.seel.com"
)

// Config is created once at startup and handed to the quote client, the preference store and the widget.
type Config struct {
	APIKey            string        `mapstructure:"api_key"`
	APIVersion        string        `mapstructure:"api_version"`
	Environment       Environment   `mapstructure:"environment"`
	BaseURLOverride   string        `mapstructure:"base_url"`
	RequestTimeout    time.Duration `mapstructure:"request_timeout"`
	OptOutExpiredTime time.Duration `mapstructure:"opt_out_expired_time"`
	Store             StoreConfig   `mapstructure:"store"`
	Log               LogConfig     `mapstructure:"log"`
}

type StoreBackend string

const (
	StoreBackendMemory    StoreBackend = "memory"
	StoreBackendDatastore StoreBackend = "datastore"
	StoreBackendRedis     StoreBackend = "redis"
)

type StoreConfig struct {
	Backend   StoreBackend `mapstructure:"backend"`
	ProjectID string       `mapstructure:"project_id"`
	RedisAddr string       `mapstructure:"redis_addr"`
	RedisDB   int          `mapstructure:"redis_db"`
	Namespace string       `mapstructure:"namespace"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

func New(apiKey string) Config {
	c := Config{APIKey: apiKey}
	c.SetDefaults()
	return c
}

func (c *Config) SetDefaults() {
	if c.APIVersion == "" {
		c.APIVersion = DefaultAPIVersion
	}
	if c.Environment == "" {
		c.Environment = DefaultEnvironment
	}
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = DefaultRequestTimeout
	}
	if c.OptOutExpiredTime <= 0 {
		c.OptOutExpiredTime = DefaultOptOutExpiredTime
	}
	if c.Store.Backend == "" {
		c.Store.Backend = StoreBackendMemory
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// Validate checks the shape of the configuration. A missing api key is allowed here:
// it is reported per quote call as a config error so the host keeps running.
func (c Config) Validate() error {
	switch c.Environment {
	case EnvironmentDevelopment, EnvironmentProduction:
	default:
		return fmt.Errorf("unknown environment '%s'", c.Environment)
	}
	switch c.Store.Backend {
	case StoreBackendMemory:
	case StoreBackendDatastore:
		if c.Store.ProjectID == "" {
			return fmt.Errorf("datastore backend requires a project id")
		}
	case StoreBackendRedis:
		if c.Store.RedisAddr == "" {
			return fmt.Errorf("redis backend requires an address")
		}
	default:
		return fmt.Errorf("unknown store backend '%s'", c.Store.Backend)
	}
	return nil
}

func (c Config) IsConfigured() bool {
	return c.APIKey != ""
}

func (c Config) BaseURL() string {
	if c.BaseURLOverride != "" {
		return c.BaseURLOverride
	}
	if c.Environment == EnvironmentProduction {
		return productionBaseURL
	}
	return developmentBaseURL
}
