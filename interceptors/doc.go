// Package interceptors provides ready-made stages for request chains: an
// HTTP transport, default headers, JSON decoding, response expectations,
// structured logging, an in-memory cache, and a retrying error handler.
//
// The response flows forward through the chain: the transport fills it in
// and proceeds, stages behind it refine it in place, and the final Finish
// stage delivers it. A typical client chain:
//
//	cache := interceptors.NewCache()
//	c := &chain.Chain{
//	    Name: "api",
//	    Interceptors: []chain.Interceptor{
//	        interceptors.Headers(http.Header{"Accept": {"application/json"}}),
//	        cache.Check(),
//	        interceptors.Transport(nil),
//	        interceptors.ExpectSuccess(),
//	        interceptors.DecodeJSON(),
//	        interceptors.Logger(log),
//	        cache.Store(),
//	        interceptors.Finish(),
//	    },
//	    Handler: interceptors.NewRetryHandler(interceptors.RetryPolicy{
//	        MaxAttempts: 3,
//	        Backoff:     time.Second,
//	        ShouldRetry: interceptors.IsRetryable,
//	    }),
//	}
//
// Stages that reject a response (ExpectSuccess, DecodeJSON on a bad body)
// route the error through the chain's Fail path, so an installed
// ErrorHandler such as NewRetryHandler gets first refusal and may restart
// the chain from the top.
package interceptors
