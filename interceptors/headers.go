package interceptors

import (
	"net/http"

	"github.com/chainkit/chainkit/chain"
)

// Headers returns an interceptor that fills in default header values on the
// request and proceeds. Headers already set on the request win; defaults
// never overwrite them.
func Headers(defaults http.Header) chain.Interceptor {
	return chain.InterceptorFunc(func(c *chain.Chain, req *chain.Request, resp *chain.Response, done chain.Completion) {
		if req.Header == nil {
			req.Header = make(http.Header)
		}
		for k, vs := range defaults {
			if req.Header.Get(k) == "" {
				for _, v := range vs {
					req.Header.Add(k, v)
				}
			}
		}
		c.Proceed(req, resp, done)
	})
}
