package interceptors

import (
	"github.com/chainkit/chainkit/chain"
)

// Finish returns the terminal stage: it delivers the in-progress response as
// the chain's successful outcome. Every chain needs exactly one terminal
// stage; a chain whose last stage proceeds instead fails with an
// InvalidIndexError.
func Finish() chain.Interceptor {
	return chain.InterceptorFunc(func(c *chain.Chain, req *chain.Request, resp *chain.Response, done chain.Completion) {
		c.Complete(resp, done)
	})
}
