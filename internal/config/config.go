// Package config provides configuration loading and parsing for dsgen.
package config

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/omarluq/dsgen/internal/emitter"
)

// Log level constants.
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// Log format constants.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
	FormatPretty  = "pretty"
)

// Console output constants.
const (
	OutputStdout = "stdout"
	OutputStderr = "stderr"
)

// Defaults for the example dataset invocation.
const (
	DefaultDatasetDir  = "./foof/food-101"
	DefaultOutputName  = "food101.yaml"
	DefaultLogFile     = "yaml_generation.log"
	DefaultLogLevel    = LevelInfo
	DefaultLogFormat   = FormatConsole
	DefaultConsoleSink = OutputStderr
)

// DefaultClasses are the class names used when none are configured.
var DefaultClasses = []string{"pizza", "grilled_chicken", "sushi", "ice_cream", "hamburger"}

// Config represents the complete dsgen configuration.
type Config struct {
	Logging LoggingConfig `yaml:"logging" toml:"logging"`
	Dataset DatasetConfig `yaml:"dataset" toml:"dataset"`
}

// DatasetConfig describes the document to emit.
type DatasetConfig struct {
	// Dir is the dataset directory. It must exist at emission time.
	Dir string `yaml:"dir" toml:"dir"`

	// Output is where the document is written.
	// Default: <dir>/food101.yaml
	Output string `yaml:"output" toml:"output"`

	// Classes are the class names in index order.
	Classes []string `yaml:"classes" toml:"classes"`

	// Strict rejects empty class lists and class names with structural characters.
	Strict bool `yaml:"strict" toml:"strict"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level  string `yaml:"level" toml:"level"`   // debug, info, warn, error
	Format string `yaml:"format" toml:"format"` // json, console, pretty
	Output string `yaml:"output" toml:"output"` // stdout or stderr
	File   string `yaml:"file" toml:"file"`     // log file entries are duplicated to
	Pretty bool   `yaml:"pretty" toml:"pretty"` // force colored console output
}

// Default returns the configuration of the example invocation.
func Default() *Config {
	return &Config{
		Dataset: DatasetConfig{
			Dir:     DefaultDatasetDir,
			Classes: append([]string(nil), DefaultClasses...),
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
			Output: DefaultConsoleSink,
			File:   DefaultLogFile,
		},
	}
}

// applyDefaults fills zero fields from Default.
// An explicitly empty classes list is kept; only an absent one is defaulted.
func (c *Config) applyDefaults() {
	def := Default()

	if c.Dataset.Dir == "" {
		c.Dataset.Dir = def.Dataset.Dir
	}
	if c.Dataset.Classes == nil {
		c.Dataset.Classes = def.Dataset.Classes
	}
	if c.Logging.Level == "" {
		c.Logging.Level = def.Logging.Level
	}
	if c.Logging.Format == "" {
		c.Logging.Format = def.Logging.Format
	}
	if c.Logging.Output == "" {
		c.Logging.Output = def.Logging.Output
	}
	if c.Logging.File == "" {
		c.Logging.File = def.Logging.File
	}
}

// OutputPath returns the configured output or <dir>/food101.yaml.
func (d *DatasetConfig) OutputPath() string {
	if d.Output != "" {
		return d.Output
	}
	return emitter.JoinPath(d.Dir, DefaultOutputName)
}

// Request converts the dataset section into an emission request.
func (d *DatasetConfig) Request() emitter.Request {
	return emitter.Request{
		Dir:     d.Dir,
		Classes: append([]string(nil), d.Classes...),
		Output:  d.OutputPath(),
	}
}

// ParseLevel converts a string log level to zerolog.Level.
// Returns zerolog.InfoLevel if the level string is invalid.
func (l *LoggingConfig) ParseLevel() zerolog.Level {
	switch strings.ToLower(l.Level) {
	case LevelDebug:
		return zerolog.DebugLevel
	case LevelInfo:
		return zerolog.InfoLevel
	case LevelWarn:
		return zerolog.WarnLevel
	case LevelError:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
