package appconf

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/viper"

	"tygcalc.metabolicrisk.org/internal/metabolic"
)

type Environment int

const (
	Development Environment = iota
	Test
	Production
)

func (e Environment) String() string {
	switch e {
	case Test:
		return "test"
	case Production:
		return "production"
	default:
		return "development"
	}
}

// EnvFlagToEnvironment maps the -env flag value to an Environment. Unknown
// values fall back to Development.
func EnvFlagToEnvironment(env string) Environment {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "test":
		return Test
	case "production", "prod":
		return Production
	default:
		return Development
	}
}

// Config holds all the configuration settings for the Application.
type Config struct {
	Port      int
	Env       Environment
	ApiKeys   []string
	RateLimit int
	LogLevel  string

	// Thresholds names the cut point pair used for classification.
	Thresholds string
}

// ConfigError represents an invalid configuration value.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error in field '" + e.Field + "': " + e.Message
}

const envPrefix = "TYGCALC"

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("port", 4000)
	v.SetDefault("env", "development")
	v.SetDefault("api-keys", "test")
	v.SetDefault("rate-limit", 100)
	v.SetDefault("log-level", "info")
	v.SetDefault("thresholds", metabolic.IncidenceThresholds.Name)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load builds a Config from defaults, an optional config file and TYGCALC_*
// environment variables, in increasing order of precedence. The file format is
// taken from its extension (yaml, json, toml). An empty configFile skips the
// file entirely.
func Load(configFile string) (Config, error) {
	v := newViper()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file %s: %w", configFile, err)
		}
	}

	cfg := Config{
		Port:      v.GetInt("port"),
		Env:       EnvFlagToEnvironment(v.GetString("env")),
		ApiKeys:   SplitAPIKeys(v.GetString("api-keys")),
		RateLimit: v.GetInt("rate-limit"),
		LogLevel:  v.GetString("log-level"),

		Thresholds: v.GetString("thresholds"),
	}
	if len(cfg.ApiKeys) == 0 {
		// yaml/toml lists come through as slices
		cfg.ApiKeys = SplitAPIKeys(strings.Join(v.GetStringSlice("api-keys"), ","))
	}

	return cfg, cfg.Validate()
}

// SplitAPIKeys parses a comma separated key list, dropping blanks.
func SplitAPIKeys(s string) []string {
	var keys []string
	for _, k := range strings.Split(s, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}

// Validate checks if the configuration is valid.
func (c Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return &ConfigError{Field: "port", Message: "must be between 1 and 65535"}
	}
	if c.RateLimit < 0 {
		return &ConfigError{Field: "rate-limit", Message: "must not be negative"}
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return &ConfigError{Field: "log-level", Message: "must be one of debug, info, warn, error"}
	}
	if _, ok := metabolic.ThresholdsByName(c.Thresholds); !ok {
		return &ConfigError{Field: "thresholds", Message: "must be incidence or prevalence"}
	}
	return nil
}

// SlogLevel converts LogLevel to a slog.Level, defaulting to Info.
func (c Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}
