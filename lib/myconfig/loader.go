package myconfig

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const envPrefix = "WFP"

// Load reads an optional config file and WFP_* environment variables.
// An empty path searches for config.yaml in the usual locations.
func Load(configPath string) (Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath("$HOME/.wfpwidget")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv only resolves keys viper already knows about
	for _, key := range []string{
		"api_key", "api_version", "environment", "base_url", "request_timeout", "opt_out_expired_time",
		"store.backend", "store.project_id", "store.redis_addr", "store.redis_db", "store.namespace",
		"log.level",
	} {
		err := v.BindEnv(key)
		if err != nil {
			return Config{}, fmt.Errorf("error binding env for %s: %w", key, err)
		}
	}

	err := v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	config := Config{}
	err = v.Unmarshal(&config)
	if err != nil {
		return Config{}, fmt.Errorf("error unmarshalling config: %w", err)
	}

	config.SetDefaults()

	err = config.Validate()
	if err != nil {
		return Config{}, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}
