// Package config loads and validates the c2e tool configuration.
package config

// Config is the root configuration structure for the c2e tool.
type Config struct {
	// CodecDir is the directory searched for codec documents.
	// Default: "./codecs"
	CodecDir string `yaml:"codec_dir"`

	// TemplateDir is the directory of language packs, one subdirectory
	// per output language. Default: "./templates"
	TemplateDir string `yaml:"template_dir"`

	// OutputDir is the root directory generated files are written under.
	// Default: "./out"
	OutputDir string `yaml:"output_dir"`

	// Languages selects the language packs to generate. Empty means every
	// pack found under TemplateDir.
	Languages []string `yaml:"languages"`

	// Jobs is the number of codec documents compiled in parallel.
	// Default: 4
	Jobs int `yaml:"jobs"`

	// Log contains logging configuration.
	Log LogConfig `yaml:"log"`
}

// LogConfig configures structured logging.
type LogConfig struct {
	// Level is the minimum log level: debug, info, warn, error.
	// Default: "info"
	Level string `yaml:"level"`

	// Format is the output format: text or json. Default: "text"
	Format string `yaml:"format"`
}
