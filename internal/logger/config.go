package logger

import (
	"log/slog"
	"strings"
)

// Config selects the slog handler for one gachabox process
type Config struct {
	Level       string // empty picks the environment default
	Format      string // empty picks the environment default
	ServiceName string
	Version     string
	Environment string
	// Component names the binary inside the service, e.g. "api" or "seed"
	Component string
	AddSource bool
}

// NewConfig builds a Config for component, filling an empty level or format
// from the environment: debug/text in development, info/json in production
// and info/text elsewhere. Source locations are logged only in development.
func NewConfig(level, format, serviceName, version, environment, component string) Config {
	cfg := Config{
		Level:       strings.ToLower(level),
		Format:      strings.ToLower(format),
		ServiceName: serviceName,
		Version:     version,
		Environment: environment,
		Component:   component,
		AddSource:   IsDevelopment(environment),
	}
	if cfg.ServiceName == "" {
		cfg.ServiceName = DefaultServiceName
	}
	if cfg.Level == "" {
		cfg.Level = LogLevelInfo
		if cfg.AddSource {
			cfg.Level = LogLevelDebug
		}
	}
	if cfg.Format == "" {
		cfg.Format = LogFormatText
		if strings.EqualFold(environment, EnvironmentProduction) {
			cfg.Format = LogFormatJSON
		}
	}
	return cfg
}

// IsDevelopment reports whether env is a local development environment
func IsDevelopment(env string) bool {
	env = strings.ToLower(env)
	return env == EnvironmentDev || env == EnvironmentDevelopment
}

// LogLevel parses Level, accepting slog's own names and "warning".
// Anything unparseable logs at info.
func (c Config) LogLevel() slog.Level {
	level := c.Level
	if strings.EqualFold(level, LogLevelWarning) {
		level = LogLevelWarn
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return l
}

// IsJSON returns true if format is JSON
func (c Config) IsJSON() bool {
	return strings.EqualFold(c.Format, LogFormatJSON)
}

// BaseAttributes are attached to every record
func (c Config) BaseAttributes() []slog.Attr {
	attrs := []slog.Attr{
		slog.String(AttrKeyService, c.ServiceName),
		slog.String(AttrKeyVersion, c.Version),
		slog.String(AttrKeyEnvironment, c.Environment),
	}
	if c.Component != "" {
		attrs = append(attrs, slog.String(AttrKeyComponent, c.Component))
	}
	return attrs
}
