package config

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"github.com/caarlos0/env/v11"
	"github.com/viant/afs"
	"github.com/viant/bearer/token"
	"github.com/viant/bearer/transport"
	"github.com/viant/bearer/whitelist"
	"gopkg.in/yaml.v3"
	"io"
	"time"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "BEARER_"

// Config enumerates every recognised transport option.
type Config struct {
	// HeaderName defaults to Authorization
	HeaderName string `yaml:"headerName,omitempty" json:"headerName,omitempty"`
	// AuthScheme defaults to "Bearer " when nil, an explicit empty value is preserved
	AuthScheme *string `yaml:"authScheme,omitempty" json:"authScheme,omitempty"`
	// WhitelistedDomains switches to list matching when set, an explicit empty list whitelists relative URLs only
	WhitelistedDomains *whitelist.List `yaml:"whitelistedDomains,omitempty" json:"whitelistedDomains,omitempty"`
	ThrowNoTokenError  bool            `yaml:"throwNoTokenError,omitempty" json:"throwNoTokenError,omitempty"`
	SkipWhenExpired    bool            `yaml:"skipWhenExpired,omitempty" json:"skipWhenExpired,omitempty"`
	// ExpiryOffset in seconds, used by the default expiry checker
	ExpiryOffset int64 `yaml:"expiryOffset,omitempty" json:"expiryOffset,omitempty"`
	// ResolveTimeout bounds waiting for the token and whitelist, zero waits for the request context only
	ResolveTimeout time.Duration `yaml:"resolveTimeout,omitempty" json:"resolveTimeout,omitempty"`
}

// overrides are the settings that can come from the environment
type overrides struct {
	HeaderName        string        `env:"HEADER_NAME"`
	ThrowNoTokenError bool          `env:"THROW_NO_TOKEN_ERROR"`
	SkipWhenExpired   bool          `env:"SKIP_WHEN_EXPIRED"`
	ExpiryOffset      int64         `env:"EXPIRY_OFFSET"`
	ResolveTimeout    time.Duration `env:"RESOLVE_TIMEOUT"`
}

// New returns a config with defaults
func New() *Config {
	scheme := transport.DefaultAuthScheme
	return &Config{HeaderName: transport.DefaultHeaderName, AuthScheme: &scheme}
}

// Load reads a YAML config from any afs supported URL
func Load(ctx context.Context, URL string) (*Config, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to download config %v: %w", URL, err)
	}
	ret, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %v: %w", URL, err)
	}
	return ret, nil
}

// Parse decodes YAML, unknown keys are rejected
func Parse(data []byte) (*Config, error) {
	ret := New()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(ret); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	ret.Init()
	if err := ret.Validate(); err != nil {
		return nil, err
	}
	return ret, nil
}

// FromEnv overlays BEARER_* environment variables onto c
func FromEnv(c *Config) error {
	values := overrides{
		HeaderName:        c.HeaderName,
		ThrowNoTokenError: c.ThrowNoTokenError,
		SkipWhenExpired:   c.SkipWhenExpired,
		ExpiryOffset:      c.ExpiryOffset,
		ResolveTimeout:    c.ResolveTimeout,
	}
	if err := env.ParseWithOptions(&values, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("failed to parse environment: %w", err)
	}
	c.HeaderName = values.HeaderName
	c.ThrowNoTokenError = values.ThrowNoTokenError
	c.SkipWhenExpired = values.SkipWhenExpired
	c.ExpiryOffset = values.ExpiryOffset
	c.ResolveTimeout = values.ResolveTimeout
	c.Init()
	return c.Validate()
}

// Init fills in defaults
func (c *Config) Init() {
	if c.HeaderName == "" {
		c.HeaderName = transport.DefaultHeaderName
	}
	if c.AuthScheme == nil {
		scheme := transport.DefaultAuthScheme
		c.AuthScheme = &scheme
	}
}

// Validate checks config
func (c *Config) Validate() error {
	if c.ExpiryOffset < 0 {
		return fmt.Errorf("expiryOffset must not be negative: %v", c.ExpiryOffset)
	}
	if c.ResolveTimeout < 0 {
		return fmt.Errorf("resolveTimeout must not be negative: %v", c.ResolveTimeout)
	}
	if c.WhitelistedDomains != nil {
		for i, entry := range *c.WhitelistedDomains {
			if entry == nil {
				return fmt.Errorf("whitelistedDomains[%d] is empty", i)
			}
		}
	}
	return nil
}

// Options returns transport options for the config; extra options are applied last.
// A whitelist predicate passed in extra conflicts with configured whitelistedDomains.
func (c *Config) Options(getter token.Getter, extra ...transport.Option) []transport.Option {
	c.Init()
	options := []transport.Option{
		transport.WithTokenGetter(getter),
		transport.WithHeaderName(c.HeaderName),
		transport.WithAuthScheme(*c.AuthScheme),
		transport.WithThrowNoTokenError(c.ThrowNoTokenError),
		transport.WithSkipWhenExpired(c.SkipWhenExpired),
		transport.WithExpiryChecker(&token.Helper{Offset: c.ExpiryOffset}),
		transport.WithResolveTimeout(c.ResolveTimeout),
	}
	if c.WhitelistedDomains != nil {
		options = append(options, transport.WithWhitelistedDomains(*c.WhitelistedDomains))
	}
	return append(options, extra...)
}

// Transport builds the RoundTripper for the config
func (c *Config) Transport(getter token.Getter, extra ...transport.Option) (*transport.RoundTripper, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return transport.New(c.Options(getter, extra...)...)
}
