package bearer

import (
	"context"
	"github.com/viant/bearer/config"
	"github.com/viant/bearer/token"
	"github.com/viant/bearer/transport"
	"net/http"
	"time"
)

// ClientOptions
//
// defines options for building an HTTP client that attaches bearer tokens.
type ClientOptions struct {
	ConfigURL string        `yaml:"configURL,omitempty" json:"configURL,omitempty" short:"c" long:"config" description:"bearer config URL (yaml)"`
	NoEnv     bool          `yaml:"noEnv,omitempty" json:"noEnv,omitempty" long:"no-env" description:"ignore BEARER_* environment overrides"`
	Timeout   time.Duration `yaml:"timeout,omitempty" json:"timeout,omitempty" long:"timeout" description:"http client timeout"`

	// Transport, if set, receives the forwarded requests; http.DefaultTransport otherwise.
	Transport http.RoundTripper `yaml:"-" json:"-"`
}

// Config loads the configuration described by the options, defaults are used without ConfigURL.
func (o *ClientOptions) Config(ctx context.Context) (*config.Config, error) {
	cfg := config.New()
	if o.ConfigURL != "" {
		var err error
		if cfg, err = config.Load(ctx, o.ConfigURL); err != nil {
			return nil, err
		}
	}
	if !o.NoEnv {
		if err := config.FromEnv(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// NewTransport creates the bearer RoundTripper described by options
func NewTransport(ctx context.Context, options *ClientOptions, getter token.Getter, extra ...transport.Option) (*transport.RoundTripper, error) {
	if options == nil {
		options = &ClientOptions{}
	}
	cfg, err := options.Config(ctx)
	if err != nil {
		return nil, err
	}
	if options.Transport != nil {
		extra = append([]transport.Option{transport.WithTransport(options.Transport)}, extra...)
	}
	return cfg.Transport(getter, extra...)
}

// NewClient creates an http.Client whose requests carry the token supplied by getter.
func NewClient(ctx context.Context, options *ClientOptions, getter token.Getter, extra ...transport.Option) (*http.Client, error) {
	rt, err := NewTransport(ctx, options, getter, extra...)
	if err != nil {
		return nil, err
	}
	ret := &http.Client{Transport: rt}
	if options != nil {
		ret.Timeout = options.Timeout
	}
	return ret, nil
}
