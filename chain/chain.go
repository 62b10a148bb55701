package chain

import (
	"sync/atomic"

	"github.com/google/uuid"
)

// Interceptor is one stage in a chain. Process receives the in-progress
// request and response and must eventually call exactly one of the chain's
// Proceed, Complete, or Fail, exactly once, from any goroutine. An
// interceptor that never calls back stalls the chain permanently.
type Interceptor interface {
	Process(c *Chain, req *Request, resp *Response, done Completion)
}

// InterceptorFunc adapts a function to the Interceptor interface.
type InterceptorFunc func(c *Chain, req *Request, resp *Response, done Completion)

// Process implements Interceptor.
func (f InterceptorFunc) Process(c *Chain, req *Request, resp *Response, done Completion) {
	f(c, req, resp, done)
}

// Canceller is the optional cancellation capability of an interceptor.
// Cancel is invoked by Chain.Cancel for every interceptor implementing it,
// whether or not that interceptor is currently active. It must not block.
type Canceller interface {
	Cancel()
}

// ErrorHandler is an optional chain-level hook given first refusal on
// terminal errors. It has full authority over the outcome: it may call
// c.Retry to restart the chain, mutate the request or response, or terminate
// with c.Deliver. It must eventually do exactly one of those; like an
// interceptor, a handler that never calls back stalls the chain.
type ErrorHandler interface {
	Handle(c *Chain, err error, req *Request, resp *Response, done Completion)
}

// Completion receives the terminal outcome of a chain run. Exactly one of
// resp and err is non-nil. It is invoked at most once per Start/Retry cycle,
// on the chain's Dispatcher, and never after Cancel.
type Completion func(resp *Response, err error)

// Chain threads one request through an ordered list of interceptors. The
// interceptor list, Handler, and Dispatcher must not change once Start has
// been called; a Chain serves exactly one logical request lifecycle, though
// Retry may reuse it across sequential attempts. The zero value with a
// non-empty Interceptors slice is ready to use.
type Chain struct {
	Name         string
	Interceptors []Interceptor
	Handler      ErrorHandler // optional; receives terminal errors before delivery
	Dispatcher   Dispatcher   // optional; completions run inline when nil

	cursor    int
	cancelled atomic.Bool
	runID     string
}

// Start begins a run: it hands req to the first interceptor and arranges for
// done to receive the terminal outcome. A chain with no interceptors fails
// immediately with ErrNoInterceptors. Start must not be called while a run
// is in flight; restarting mid-run is a programming error, not a recoverable
// fault. Use Retry to restart after a terminal error.
func (c *Chain) Start(req *Request, done Completion) {
	if c.cancelled.Load() {
		return
	}
	if c.runID == "" {
		c.runID = uuid.New().String()
	}
	resp := NewResponse()
	if len(c.Interceptors) == 0 {
		c.Fail(ErrNoInterceptors, req, resp, done)
		return
	}
	c.cursor = 0
	c.Interceptors[0].Process(c, req, resp, done)
}

// Proceed advances to the next interceptor. It is called by the currently
// active interceptor. On a cancelled chain it is dropped silently: no
// callback fires, because the caller already considers the run finished.
// Calling Proceed from the last interceptor delivers an InvalidIndexError,
// which signals a misassembled list (the last stage should have called
// Complete or Fail).
func (c *Chain) Proceed(req *Request, resp *Response, done Completion) {
	if c.cancelled.Load() {
		return
	}
	next := c.cursor + 1
	if next >= len(c.Interceptors) {
		c.Fail(&InvalidIndexError{Index: next}, req, resp, done)
		return
	}
	c.cursor = next
	c.Interceptors[next].Process(c, req, resp, done)
}

// Fail terminates the run with err. On a cancelled chain it is dropped
// silently, matching Proceed. When a Handler is installed the error is
// delegated to it with the chain, request, response, and completion, so the
// handler may retry, transform, or still terminate; otherwise err is
// delivered to done on the Dispatcher.
func (c *Chain) Fail(err error, req *Request, resp *Response, done Completion) {
	if c.cancelled.Load() {
		return
	}
	if c.Handler != nil {
		c.Handler.Handle(c, err, req, resp, done)
		return
	}
	c.deliver(done, nil, err)
}

// Complete terminates the run successfully with resp. On a cancelled chain
// it is dropped silently.
func (c *Chain) Complete(resp *Response, done Completion) {
	if c.cancelled.Load() {
		return
	}
	c.deliver(done, resp, nil)
}

// Cancel abandons the run. The first call sets the cancellation flag and
// broadcasts to every interceptor implementing Canceller, regardless of
// cursor position; later calls are no-ops. Cancellation is terminal: it
// suppresses all further callback delivery, including results that arrive
// after it, and a cancelled chain cannot be restarted.
func (c *Chain) Cancel() {
	if c.cancelled.Swap(true) {
		return
	}
	for _, ic := range c.Interceptors {
		if canceller, ok := ic.(Canceller); ok {
			canceller.Cancel()
		}
	}
}

// Retry restarts the chain from the first interceptor with the same
// interceptor instances, incrementing req.Attempt. The counter is owned by
// the request, not the chain. On a cancelled chain Retry is a no-op.
// Interceptors must tolerate re-entry from a clean state.
func (c *Chain) Retry(req *Request, done Completion) {
	if c.cancelled.Load() {
		return
	}
	req.Attempt++
	c.Start(req, done)
}

// Deliver hands a terminal outcome to done without consulting the Handler,
// under the same contract as the chain's own delivery: on the Dispatcher,
// suppressed after Cancel. It is the way an ErrorHandler terminates a run it
// chose not to retry.
func (c *Chain) Deliver(resp *Response, err error, done Completion) {
	if c.cancelled.Load() {
		return
	}
	c.deliver(done, resp, err)
}

// Cancelled reports whether Cancel has been called.
func (c *Chain) Cancelled() bool {
	return c.cancelled.Load()
}

// RunID returns the identifier generated on the first Start. It is stable
// across retries and empty before the chain has started.
func (c *Chain) RunID() string {
	return c.runID
}

func (c *Chain) deliver(done Completion, resp *Response, err error) {
	d := c.Dispatcher
	if d == nil {
		d = Sync
	}
	d.Dispatch(func() {
		// Cancel may have landed between the transition check and the
		// dispatched callback actually running.
		if c.cancelled.Load() {
			return
		}
		done(resp, err)
	})
}
