// Package config loads the YAML configuration shared by the paramctl tool and
// anything else that wants to set up httpparams from a file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zostay/go-params/httpparams"
	"github.com/zostay/go-params/params"
)

// Config describes how request parameters are built.
//
//	sensitive: [password, token]
//	charset: iso-8859-1
//	fold: true
//	defaults:
//	  limit: ["10"]
type Config struct {
	// Sensitive lists parameter names to strip from every request. Names are
	// matched ignoring case.
	Sensitive []string `yaml:"sensitive"`

	// Charset names the character set requests are posted in. Leave it
	// empty for UTF-8.
	Charset string `yaml:"charset"`

	// Defaults are parameters every request starts with.
	Defaults map[string][]string `yaml:"defaults"`

	// Fold merges request parameter names that differ only by case.
	Fold bool `yaml:"fold"`

	// RouteParams merges router URL parameters into the request parameters.
	RouteParams bool `yaml:"route_params"`
}

// Load reads and parses the configuration file at path.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read config %q: %w", path, err)
	}

	c, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("unable to parse config %q: %w", path, err)
	}

	return c, nil
}

// Parse parses YAML configuration.
func Parse(b []byte) (*Config, error) {
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Parent returns the Defaults as Parameters, or nil if there are none.
func (c *Config) Parent() *params.Parameters {
	if len(c.Defaults) == 0 {
		return nil
	}

	raw := make(map[string]any, len(c.Defaults))
	for k, vs := range c.Defaults {
		raw[k] = vs
	}
	return params.Create(raw).Build()
}

// Options returns the httpparams options described by the configuration.
func (c *Config) Options() []httpparams.Option {
	opts := []httpparams.Option{}
	if parent := c.Parent(); parent != nil {
		opts = append(opts, httpparams.WithParent(parent))
	}
	if len(c.Sensitive) > 0 {
		opts = append(opts, httpparams.WithSensitive(c.Sensitive...))
	}
	if c.Charset != "" {
		opts = append(opts, httpparams.WithCharset(c.Charset))
	}
	if c.Fold {
		opts = append(opts, httpparams.WithComparator(params.CaseInsensitive))
	}
	if c.RouteParams {
		opts = append(opts, httpparams.WithRouteParams())
	}
	return opts
}
