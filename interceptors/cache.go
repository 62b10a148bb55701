package interceptors

import (
	"net/http"
	"sync"

	"github.com/chainkit/chainkit/chain"
)

// Cache is an in-memory response cache shared by a Check stage in front of
// the transport and a Store stage behind it. Check completes the chain
// immediately on a hit, so the stages between Check and Store never run;
// Store records 2xx GET responses for later hits. The store is safe to
// share across chains.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]chain.Response
}

// NewCache returns an empty response cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]chain.Response)}
}

// Check returns the lookup stage. On a hit for a GET request it completes
// the chain with a copy of the stored response; otherwise it proceeds.
func (ca *Cache) Check() chain.Interceptor {
	return chain.InterceptorFunc(func(c *chain.Chain, req *chain.Request, resp *chain.Response, done chain.Completion) {
		if req.Method != http.MethodGet {
			c.Proceed(req, resp, done)
			return
		}
		ca.mu.RLock()
		cached, ok := ca.entries[key(req)]
		ca.mu.RUnlock()
		if ok {
			hit := cached
			c.Complete(&hit, done)
			return
		}
		c.Proceed(req, resp, done)
	})
}

// Store returns the recording stage. It saves 2xx GET responses and
// proceeds either way.
func (ca *Cache) Store() chain.Interceptor {
	return chain.InterceptorFunc(func(c *chain.Chain, req *chain.Request, resp *chain.Response, done chain.Completion) {
		if req.Method == http.MethodGet && resp.StatusCode >= 200 && resp.StatusCode < 300 {
			ca.mu.Lock()
			ca.entries[key(req)] = *resp
			ca.mu.Unlock()
		}
		c.Proceed(req, resp, done)
	})
}

// Invalidate removes the cached response for method+URL, if present.
func (ca *Cache) Invalidate(method, url string) {
	ca.mu.Lock()
	delete(ca.entries, method+" "+url)
	ca.mu.Unlock()
}

// Len returns the number of cached responses.
func (ca *Cache) Len() int {
	ca.mu.RLock()
	defer ca.mu.RUnlock()
	return len(ca.entries)
}

func key(req *chain.Request) string {
	return req.Method + " " + req.URL
}
