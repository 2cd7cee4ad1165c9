package config

// Default values for configuration fields.
const (
	DefaultCodecDir    = "./codecs"
	DefaultTemplateDir = "./templates"
	DefaultOutputDir   = "./out"
	DefaultJobs        = 4
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
)

// ApplyDefaults fills unset fields with default values.
func ApplyDefaults(cfg *Config) {
	if cfg.CodecDir == "" {
		cfg.CodecDir = DefaultCodecDir
	}
	if cfg.TemplateDir == "" {
		cfg.TemplateDir = DefaultTemplateDir
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = DefaultOutputDir
	}
	if cfg.Jobs == 0 {
		cfg.Jobs = DefaultJobs
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}
}

// DefaultConfig returns a configuration with every field at its default.
func DefaultConfig() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}
