package interceptors

import (
	"github.com/rs/zerolog"

	"github.com/chainkit/chainkit/chain"
)

// Logger returns a stage that logs the request and, when the transport ran
// before it, the response status, with structured fields (chain name, run
// ID, method, URL, attempt). Place it after the transport to see statuses;
// placed first it logs each attempt as it starts.
func Logger(log zerolog.Logger) chain.Interceptor {
	return chain.InterceptorFunc(func(c *chain.Chain, req *chain.Request, resp *chain.Response, done chain.Completion) {
		evt := log.Info().
			Str("chain", c.Name).
			Str("run_id", c.RunID()).
			Str("method", req.Method).
			Str("url", req.URL).
			Int("attempt", req.Attempt)
		if resp.StatusCode != 0 {
			evt = evt.Int("status", resp.StatusCode)
		}
		evt.Msg("request")
		c.Proceed(req, resp, done)
	})
}
