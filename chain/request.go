package chain

import (
	"net/http"
	"time"
)

// Request is the mutable in-progress request threaded through a chain.
// Interceptors may rewrite any of it as it passes; the chain itself forwards
// it opaquely and touches only Attempt, in Retry.
type Request struct {
	Method  string
	URL     string
	Header  http.Header
	Body    []byte
	Timeout time.Duration // optional per-attempt deadline, honored by the transport

	// Attempt counts restarts of this request. It starts at 0 and is
	// incremented by Chain.Retry; the request owns it, the chain never
	// reads it.
	Attempt int
}

// NewRequest returns a request for the given method and URL with an empty header.
func NewRequest(method, url string) *Request {
	return &Request{Method: method, URL: url, Header: make(http.Header)}
}

// Response is the mutable in-progress response built stage by stage. Start
// creates it empty; the transport fills status, header, and body; a parsing
// interceptor may set Value.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte

	// Value holds a decoded form of Body when a parsing interceptor ran
	// (e.g. the result of unmarshalling JSON).
	Value interface{}
}

// NewResponse returns an empty in-progress response.
func NewResponse() *Response {
	return &Response{Header: make(http.Header)}
}
