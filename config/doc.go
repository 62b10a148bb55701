// Package config provides an interceptor registry and human-readable chain
// configuration.
//
// Register interceptors by name, then define chains in YAML (or structs)
// that reference those names, plus an optional error-handler policy:
//
//	api:
//	  name: api
//	  interceptors:
//	    - headers
//	    - transport
//	    - expect
//	    - decode
//	    - finish
//	  handler:
//	    retry: retryable
//	    max_attempts: 5
//	    backoff: 2s
//
// Build a chain with BuildChain(registry, config). Because a Chain serves
// one request lifecycle, build a fresh one per request; the registry and
// parsed config are reusable. Registration takes a Factory, invoked once
// per built chain, so interceptors that hold per-run state (e.g. the
// transport's in-flight cancel) are never shared between chains. Use
// Static for interceptors that can or should be shared, like a response
// cache.
package config
