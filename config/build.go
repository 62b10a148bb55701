package config

import (
	"fmt"

	"github.com/chainkit/chainkit/chain"
	"github.com/chainkit/chainkit/interceptors"
)

// BuildChain builds a chain.Chain from config and registry. Interceptor
// names in config must be registered. When cfg.Handler is set, a
// interceptors.RetryHandler with the configured policy is installed.
func BuildChain(reg *Registry, cfg *ChainConfig) (*chain.Chain, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}
	ics := make([]chain.Interceptor, 0, len(cfg.Interceptors))
	for i, ref := range cfg.Interceptors {
		if ref.Name == "" {
			return nil, fmt.Errorf("interceptor %d: name required", i)
		}
		f, ok := reg.Get(ref.Name)
		if !ok {
			return nil, fmt.Errorf("interceptor %d: %q not in registry", i, ref.Name)
		}
		ics = append(ics, f())
	}
	c := &chain.Chain{Name: cfg.Name, Interceptors: ics}
	if cfg.Handler != nil {
		h, err := buildHandler(cfg.Handler)
		if err != nil {
			return nil, fmt.Errorf("handler: %w", err)
		}
		c.Handler = h
	}
	return c, nil
}

func buildHandler(hc *HandlerConfig) (chain.ErrorHandler, error) {
	policy := interceptors.RetryPolicy{
		MaxAttempts: hc.MaxAttempts,
		Backoff:     hc.Backoff.Duration(),
	}
	switch hc.Retry {
	case "", "retryable":
		policy.ShouldRetry = interceptors.IsRetryable
	case "always":
		// nil ShouldRetry retries every error
	default:
		return nil, fmt.Errorf("retry %q not supported (use \"retryable\" or \"always\")", hc.Retry)
	}
	return interceptors.NewRetryHandler(policy), nil
}

// BuildAllChains builds a chain.Chain for each entry in multi. Keys are
// chain names. If a chain config's Name is empty, the map key is used as
// the chain name.
func BuildAllChains(reg *Registry, multi *MultiChainConfig) (map[string]*chain.Chain, error) {
	if multi == nil {
		return nil, fmt.Errorf("MultiChainConfig is nil")
	}
	out := make(map[string]*chain.Chain, len(multi.Chains))
	for name, cfg := range multi.Chains {
		if cfg.Name == "" {
			cfg.Name = name
		}
		c, err := BuildChain(reg, &cfg)
		if err != nil {
			return nil, fmt.Errorf("chain %q: %w", name, err)
		}
		out[name] = c
	}
	return out, nil
}
