package interceptors

import (
	"fmt"

	"github.com/chainkit/chainkit/chain"
)

// Expect returns a stage that runs the predicate on the in-progress response
// and proceeds when it passes. Place it after the transport. A predicate
// error is routed through the chain's Fail path, so an installed
// ErrorHandler may retry it.
func Expect(predicate func(*chain.Response) error) chain.Interceptor {
	if predicate == nil {
		panic("interceptors.Expect: predicate must not be nil")
	}
	return chain.InterceptorFunc(func(c *chain.Chain, req *chain.Request, resp *chain.Response, done chain.Completion) {
		if err := predicate(resp); err != nil {
			c.Fail(fmt.Errorf("expect: %w", err), req, resp, done)
			return
		}
		c.Proceed(req, resp, done)
	})
}

// ExpectSuccess returns a stage that fails responses whose status is outside
// the 2xx range. 5xx statuses are marked retryable so a RetryHandler with
// ShouldRetry: IsRetryable restarts them; 4xx statuses are permanent.
func ExpectSuccess() chain.Interceptor {
	return Expect(func(resp *chain.Response) error {
		switch {
		case resp.StatusCode >= 500:
			return RetryableErr(fmt.Errorf("status %d", resp.StatusCode))
		case resp.StatusCode < 200 || resp.StatusCode >= 300:
			return fmt.Errorf("status %d", resp.StatusCode)
		}
		return nil
	})
}
