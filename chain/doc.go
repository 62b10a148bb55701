// Package chain sequences a single in-flight request/response pair through an
// ordered list of interceptors. The chain itself performs no I/O and never
// inspects payloads; it is the control-flow backbone a network client hangs
// its transport, caching, and parsing stages on.
//
// Start hands the request to the first interceptor. Each interceptor does its
// work and then calls back into the chain exactly once: Proceed to advance to
// the next interceptor, Complete to deliver a final response, or Fail to
// deliver a terminal error. Interceptors run strictly one at a time; the next
// interceptor is never invoked until the current one has called back, no
// matter which goroutine it calls back from.
//
//	c := &chain.Chain{
//	    Name: "api",
//	    Interceptors: []chain.Interceptor{
//	        interceptors.Headers(http.Header{"Accept": {"application/json"}}),
//	        interceptors.Transport(nil),
//	    },
//	}
//	c.Start(chain.NewRequest("GET", url), func(resp *chain.Response, err error) {
//	    ...
//	})
//
// # Completion delivery
//
// The terminal outcome is delivered to the Completion exactly once per
// Start/Retry cycle, on the chain's Dispatcher (inline when nil). Exactly one
// of response and error is non-nil; there is no partial-result delivery.
//
// # Cancellation
//
// Cancel is idempotent and terminal. It broadcasts to every interceptor that
// implements Canceller, regardless of which one is currently active, because
// interceptors may have spawned background work that outlives their position
// in the chain. After Cancel, Proceed, Fail, and Complete are dropped
// silently and the Completion is never invoked again for that chain.
//
// # Retry
//
// Retry restarts the same chain instance from the first interceptor,
// incrementing the request's Attempt counter. The chain exposes only this
// restart primitive; retry policy (backoff, max attempts) belongs to a caller
// or to an ErrorHandler such as interceptors.NewRetryHandler. Interceptors
// must tolerate being re-invoked from a clean state after Retry.
//
// # Error escalation
//
// When a Handler is installed, every terminal error is routed through it
// before delivery. The handler may call Retry, transform the outcome, or
// terminate via Deliver; without a handler, errors go straight to the
// Completion.
//
// # Caller obligations
//
// An interceptor that never calls back stalls the chain permanently; the
// chain has no timeout of its own. Timeouts, where needed, are an
// interceptor's responsibility (e.g. Request.Timeout honored by the
// transport).
package chain
