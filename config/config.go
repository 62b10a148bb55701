package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// ChainConfig is the root structure for a chain definition (e.g. from YAML).
type ChainConfig struct {
	Name         string           `yaml:"name"`
	Interceptors []InterceptorRef `yaml:"interceptors"`

	// Handler, when present, installs a retrying error handler on the
	// built chain.
	Handler *HandlerConfig `yaml:"handler"`
}

// InterceptorRef is a single interceptor entry: either a plain name or a
// name + options. In YAML, an interceptor can be written as:
//   - transport
//   - name: transport
type InterceptorRef struct {
	Name string `yaml:"name"`
}

// UnmarshalYAML allows an interceptor to be a string (name only) or a struct.
func (r *InterceptorRef) UnmarshalYAML(value *yaml.Node) error {
	var nameOnly string
	if err := value.Decode(&nameOnly); err == nil {
		r.Name = nameOnly
		return nil
	}
	type raw InterceptorRef
	return value.Decode((*raw)(r))
}

// HandlerConfig configures the chain's error handler.
//
//	handler:
//	  retry: retryable
//	  max_attempts: 5
//	  backoff: 2s
type HandlerConfig struct {
	// Retry: "retryable" (default; only errors marked retryable) or
	// "always" (every error).
	Retry string `yaml:"retry"`

	MaxAttempts int      `yaml:"max_attempts"`
	Backoff     Duration `yaml:"backoff"`
}

// Duration is a time.Duration that unmarshals from YAML strings (e.g. "60s", "5m").
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// Duration returns the standard time.Duration.
func (d Duration) Duration() time.Duration { return time.Duration(d) }

// ParseChainConfig parses YAML bytes into a single ChainConfig.
func ParseChainConfig(data []byte) (*ChainConfig, error) {
	var cfg ChainConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// MultiChainConfig is the root structure for a file that defines multiple
// chains. Top-level key is "chains"; each value is a chain (name +
// interceptors + optional handler).
type MultiChainConfig struct {
	Chains map[string]ChainConfig `yaml:"chains"`
}

// ParseMultiChainConfig parses YAML bytes that contain a "chains" map from
// name to chain config. Example YAML:
//
//	chains:
//	  api:
//	    interceptors: [headers, transport, expect, finish]
//	  health:
//	    interceptors: [transport, finish]
func ParseMultiChainConfig(data []byte) (*MultiChainConfig, error) {
	var cfg MultiChainConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
