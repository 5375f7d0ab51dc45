package eventcore

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/golobby/cast"
	"gopkg.in/yaml.v3"
)

// Config carries bus tuning knobs. It is loaded from a YAML or TOML file
// and then overridden field-by-field from environment variables, mirroring
// a feed-then-validate-then-Setup pipeline: LoadConfig feeds the file,
// applyEnvOverrides coerces string overrides, Setup fills in defaults.
type Config struct {
	// LogLevel is one of "debug", "info", "warn", "error".
	LogLevel string `yaml:"log_level" toml:"log_level"`

	// Strict turns ProgrammingViolation-class errors into panics instead
	// of logged no-ops. Intended for debug/test builds.
	Strict bool `yaml:"strict" toml:"strict"`

	// DefaultQueueCapacityHint sizes nothing directly (EventQueue grows
	// without bound, per the core's design) but is surfaced to callers
	// that want to pre-size their own buffers or alert on backlog.
	DefaultQueueCapacityHint int `yaml:"default_queue_capacity_hint" toml:"default_queue_capacity_hint"`
}

// Setup applies defaults to zero-valued fields. Called after feeding from
// a file and environment, matching the ConfigSetup convention.
func (c *Config) Setup() error {
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.DefaultQueueCapacityHint <= 0 {
		c.DefaultQueueCapacityHint = 256
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("eventcore: config: unknown log_level %q", c.LogLevel)
	}
	return nil
}

// LoadConfig feeds path (detected by extension: .yaml/.yml or .toml) into
// a Config, applies environment overrides prefixed with "EVENTCORE_", then
// calls Setup.
func LoadConfig(path string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("eventcore: config: read %s: %w", path, err)
	}

	switch ext := fileExt(path); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("eventcore: config: yaml decode %s: %w", path, err)
		}
	case ".toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return cfg, fmt.Errorf("eventcore: config: toml decode %s: %w", path, err)
		}
	default:
		return cfg, fmt.Errorf("eventcore: config: unsupported extension %q", ext)
	}

	if err := applyEnvOverrides(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Setup(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func fileExt(path string) string {
	for i := len(path) - 1; i >= 0 && path[i] != '/'; i-- {
		if path[i] == '.' {
			return path[i:]
		}
	}
	return ""
}

// applyEnvOverrides coerces EVENTCORE_LOG_LEVEL, EVENTCORE_STRICT, and
// EVENTCORE_DEFAULT_QUEUE_CAPACITY_HINT into cfg when present, using
// golobby/cast the way a feeder coerces untyped environment strings into
// typed struct fields.
func applyEnvOverrides(cfg *Config) error {
	if v, ok := os.LookupEnv("EVENTCORE_LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	if v, ok := os.LookupEnv("EVENTCORE_STRICT"); ok {
		b, err := cast.ToBool(v)
		if err != nil {
			return fmt.Errorf("eventcore: config: EVENTCORE_STRICT: %w", err)
		}
		cfg.Strict = b
	}
	if v, ok := os.LookupEnv("EVENTCORE_DEFAULT_QUEUE_CAPACITY_HINT"); ok {
		n, err := cast.ToInt(v)
		if err != nil {
			return fmt.Errorf("eventcore: config: EVENTCORE_DEFAULT_QUEUE_CAPACITY_HINT: %w", err)
		}
		cfg.DefaultQueueCapacityHint = n
	}
	return nil
}
