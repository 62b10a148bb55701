package interceptors

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/chainkit/chainkit/chain"
)

// TransportInterceptor performs the HTTP round trip. It fills the
// in-progress response with status, header, and body and proceeds, so
// response-processing stages (ExpectSuccess, DecodeJSON, a cache Store)
// run behind it and a Finish stage ends the chain. It implements
// chain.Canceller by cancelling the in-flight request's context.
type TransportInterceptor struct {
	client *http.Client

	mu     sync.Mutex
	cancel context.CancelFunc
}

// Transport returns a transport interceptor using client for requests.
// If client is nil, http.DefaultClient is used. Request.Timeout, when set,
// bounds each attempt via a context deadline.
func Transport(client *http.Client) *TransportInterceptor {
	if client == nil {
		client = http.DefaultClient
	}
	return &TransportInterceptor{client: client}
}

// Process implements chain.Interceptor.
func (t *TransportInterceptor) Process(c *chain.Chain, req *chain.Request, resp *chain.Response, done chain.Completion) {
	ctx := context.Background()
	var cancel context.CancelFunc
	if req.Timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, req.Timeout)
	} else {
		ctx, cancel = context.WithCancel(ctx)
	}
	t.mu.Lock()
	t.cancel = cancel
	t.mu.Unlock()
	defer cancel()

	var body io.Reader
	if len(req.Body) > 0 {
		body = bytes.NewReader(req.Body)
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		c.Fail(fmt.Errorf("transport: new request: %w", err), req, resp, done)
		return
	}
	for k, vs := range req.Header {
		httpReq.Header[k] = vs
	}

	httpResp, err := t.client.Do(httpReq)
	if err != nil {
		c.Fail(fmt.Errorf("transport: %s %q: %w", req.Method, req.URL, err), req, resp, done)
		return
	}
	defer httpResp.Body.Close()
	raw, err := io.ReadAll(httpResp.Body)
	if err != nil {
		c.Fail(fmt.Errorf("transport: %s %q: read body: %w", req.Method, req.URL, err), req, resp, done)
		return
	}

	resp.StatusCode = httpResp.StatusCode
	resp.Header = httpResp.Header
	resp.Body = raw
	c.Proceed(req, resp, done)
}

// Cancel implements chain.Canceller by aborting the in-flight request, if any.
func (t *TransportInterceptor) Cancel() {
	t.mu.Lock()
	cancel := t.cancel
	t.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}
