package config

import "strings"

// Valid logging levels.
var validLogLevels = map[string]bool{
	"":         true, // Empty defaults to info
	LevelDebug: true,
	LevelInfo:  true,
	LevelWarn:  true,
	LevelError: true,
}

// Valid logging formats.
var validLogFormats = map[string]bool{
	"":            true, // Empty defaults to console
	FormatJSON:    true,
	FormatConsole: true,
	FormatPretty:  true,
}

// Valid console outputs.
var validLogOutputs = map[string]bool{
	"":           true, // Empty defaults to stderr
	OutputStdout: true,
	OutputStderr: true,
}

// Validate checks the configuration for errors.
// Returns a ValidationError containing all errors found, or nil if valid.
// Dataset directory existence is checked at emission time, not here.
func (c *Config) Validate() error {
	errs := &ValidationError{}

	validateDataset(&c.Dataset, errs)
	validateLogging(&c.Logging, errs)

	return errs.ToError()
}

func validateDataset(d *DatasetConfig, errs *ValidationError) {
	if strings.TrimSpace(d.Dir) == "" {
		errs.Add("dataset.dir is required")
	}
	if d.Strict && len(d.Classes) == 0 {
		errs.Add("dataset.classes must not be empty when dataset.strict is set")
	}
}

func validateLogging(l *LoggingConfig, errs *ValidationError) {
	if !validLogLevels[strings.ToLower(l.Level)] {
		errs.Addf("logging.level %q is invalid (use debug, info, warn, error)", l.Level)
	}
	if !validLogFormats[l.Format] {
		errs.Addf("logging.format %q is invalid (use json, console, pretty)", l.Format)
	}
	if !validLogOutputs[l.Output] {
		errs.Addf("logging.output %q is invalid (use stdout, stderr)", l.Output)
	}
}
