package config

// Config represents the main configuration structure
type Config struct {
	Redaction RedactionConfig `yaml:"redaction" mapstructure:"redaction"`
	Logging   LoggingConfig   `yaml:"logging" mapstructure:"logging"`
}

// RedactionConfig controls which detection rules run
type RedactionConfig struct {
	Enabled   bool         `yaml:"enabled" mapstructure:"enabled"`
	Detectors []string     `yaml:"detectors" mapstructure:"detectors"`
	Rules     []RuleConfig `yaml:"rules" mapstructure:"rules"`
}

// RuleConfig is a user-supplied detection rule. Pattern is a regular
// expression; an empty Replacement defaults to <NAME_REDACTED>.
type RuleConfig struct {
	Name        string `yaml:"name" mapstructure:"name"`
	Pattern     string `yaml:"pattern" mapstructure:"pattern"`
	Replacement string `yaml:"replacement" mapstructure:"replacement"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"` // json or console
	File   struct {
		Enabled bool   `yaml:"enabled" mapstructure:"enabled"`
		Path    string `yaml:"path" mapstructure:"path"`
	} `yaml:"file" mapstructure:"file"`
}

// GetDefaults returns a configuration with sensible defaults
func GetDefaults() *Config {
	return &Config{
		Redaction: RedactionConfig{
			Enabled:   true,
			Detectors: []string{"all"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
