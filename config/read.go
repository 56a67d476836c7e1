package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/Francis1918/citamed_backend/pkg/constants"
	"github.com/spf13/viper"
)

var GlobalConf *Config

func ReadConfig(configPath string) (*Config, error) {
	viper.SetConfigName(constants.ConfigName)
	viper.SetConfigType(constants.ConfigFormat)
	viper.AddConfigPath(configPath)

	// Allow env vars to override config values.
	// e.g. CITAMED_DATABASE_HOST overrides database.host
	viper.SetEnvPrefix("CITAMED")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setSchedulerDefaults()

	// Read the config file (optional in Docker environments)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Only fail if it's not a "file not found" error
			if os.Getenv("CITAMED_DATABASE_HOST") == "" {
				return nil, fmt.Errorf("error reading config file: %v", err)
			}
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %v", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// setSchedulerDefaults: one-hour slots, a 9-17 office window when a doctor
// has no configured schedule, and a 12-hour advance-notice rule on
// cancellation and rescheduling.
func setSchedulerDefaults() {
	viper.SetDefault("scheduler.slot_minutes", 60)
	viper.SetDefault("scheduler.default_start_hour", 9)
	viper.SetDefault("scheduler.default_end_hour", 17)
	viper.SetDefault("scheduler.cancel_notice_hours", 12)
	viper.SetDefault("scheduler.schedule_cache_ttl_minutes", 10)
	viper.SetDefault("scheduler.timezone", "UTC")
	viper.SetDefault("codes.appointment_prefix", "CM")
	viper.SetDefault("codes.appointment_length", 6)
	viper.SetDefault("server.timeout_seconds", 30)
	viper.SetDefault("server.rate_limit.max", 20)
	viper.SetDefault("server.rate_limit.window_seconds", 30)
}

func MustReadConfig(path string) *Config {
	config, err := ReadConfig(path)
	if err != nil {
		panic(err)
	}

	GlobalConf = config

	return config
}
