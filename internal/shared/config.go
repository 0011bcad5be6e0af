package shared

import (
	_ "embed"
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
)

//go:embed config.example.toml
var exampleConf []byte

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Upstream UpstreamConfig `toml:"upstream"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Host         string        `toml:"host"`
	Port         int           `toml:"port"`
	ReadTimeout  time.Duration `toml:"read_timeout"`
	WriteTimeout time.Duration `toml:"write_timeout"`
	LogFormat    string        `toml:"log_format"`
}

// UpstreamConfig holds the music service endpoints queried by the resolver.
//
// Defaults reproduce the production endpoints; base URLs are only overridden to
// point at test doubles.
type UpstreamConfig struct {
	LegacyBaseURL  string        `toml:"legacy_base_url"`
	ModernBaseURL  string        `toml:"modern_base_url"`
	ExternalDomain string        `toml:"external_domain"`
	EmbedBaseURL   string        `toml:"embed_base_url"`
	Timeout        time.Duration `toml:"timeout"`
}

// Addr returns the host:port listen address.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
//
// Keys missing from the file keep their default values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// Validate checks the port range, log format and timeout, and that every upstream base URL is absolute.
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("%w: server port %d out of range", ErrInvalidConfig, c.Server.Port)
	}
	if _, err := ParseLogFormat(c.Server.LogFormat); err != nil {
		return err
	}
	if c.Upstream.Timeout < 0 {
		return fmt.Errorf("%w: negative upstream timeout", ErrInvalidConfig)
	}

	for name, raw := range map[string]string{
		"legacy_base_url": c.Upstream.LegacyBaseURL,
		"modern_base_url": c.Upstream.ModernBaseURL,
		"embed_base_url":  c.Upstream.EmbedBaseURL,
	} {
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%w: upstream.%s must be an absolute URL, got %q", ErrInvalidConfig, name, raw)
		}
	}

	if c.Upstream.ExternalDomain == "" {
		return fmt.Errorf("%w: upstream.external_domain is required", ErrInvalidConfig)
	}
	return nil
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
