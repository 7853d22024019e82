// internal/common/config/config.go
package config

import "time"

// Config is the main application configuration struct.
type Config struct {
	App        AppConfig        `mapstructure:"app"`
	Server     ServerConfig     `mapstructure:"server"`
	Search     SearchConfig     `mapstructure:"search"`
	Validation ValidationConfig `mapstructure:"validation"`
	HTTP       HTTPClientConfig `mapstructure:"http"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	Tracing    TracingConfig    `mapstructure:"tracing"`
}

// --- Core App/Infrastructure Config ---
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// SearchConfig holds settings for the upstream Google Custom Search call.
type SearchConfig struct {
	BaseURL    string `mapstructure:"base_url"`
	Timeout    int    `mapstructure:"timeout"`     // milliseconds
	DefaultNum int    `mapstructure:"default_num"` // results per query
	MaxNum     int    `mapstructure:"max_num"`     // Google API limit
}

// ValidationConfig holds settings for the image existence probes.
type ValidationConfig struct {
	ProxyBaseURL string `mapstructure:"proxy_base_url"`
	ProbeTimeout int    `mapstructure:"probe_timeout"` // milliseconds
}

// HTTPClientConfig carries the default header set applied to every
// outbound request. Kept as configuration rather than a process-wide
// constant so tests and deployments can override it.
type HTTPClientConfig struct {
	UserAgent      string `mapstructure:"user_agent"`
	AcceptLanguage string `mapstructure:"accept_language"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// TracingConfig configures the optional Jaeger trace exporter. An empty
// endpoint disables exporting.
type TracingConfig struct {
	JaegerEndpoint string `mapstructure:"jaeger_endpoint"`
}

// SearchTimeout returns the upstream request timeout as a duration.
func (s SearchConfig) SearchTimeout() time.Duration {
	return time.Duration(s.Timeout) * time.Millisecond
}

// Timeout returns the per-probe deadline as a duration.
func (v ValidationConfig) Timeout() time.Duration {
	return time.Duration(v.ProbeTimeout) * time.Millisecond
}
