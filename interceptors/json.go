package interceptors

import (
	"encoding/json"
	"fmt"

	"github.com/chainkit/chainkit/chain"
)

// DecodeJSON returns a stage that unmarshals the response body into
// Response.Value and proceeds. Place it after the transport. An empty body
// passes through untouched; a body that fails to parse routes the error
// through the chain's Fail path.
func DecodeJSON() chain.Interceptor {
	return chain.InterceptorFunc(func(c *chain.Chain, req *chain.Request, resp *chain.Response, done chain.Completion) {
		if len(resp.Body) == 0 {
			c.Proceed(req, resp, done)
			return
		}
		var v interface{}
		if err := json.Unmarshal(resp.Body, &v); err != nil {
			c.Fail(fmt.Errorf("decodejson: %w", err), req, resp, done)
			return
		}
		resp.Value = v
		c.Proceed(req, resp, done)
	})
}

// DecodeJSONTo returns a stage like DecodeJSON that unmarshals the body into
// a value of type T. Response.Value is set to *T.
func DecodeJSONTo[T any]() chain.Interceptor {
	return chain.InterceptorFunc(func(c *chain.Chain, req *chain.Request, resp *chain.Response, done chain.Completion) {
		if len(resp.Body) == 0 {
			c.Proceed(req, resp, done)
			return
		}
		var v T
		if err := json.Unmarshal(resp.Body, &v); err != nil {
			c.Fail(fmt.Errorf("decodejsonto: %w", err), req, resp, done)
			return
		}
		resp.Value = &v
		c.Proceed(req, resp, done)
	})
}
