package interceptors

import (
	"testing"

	"github.com/chainkit/chainkit/chain"
)

// fixedResponse fills the in-progress response and proceeds, standing in for
// the transport.
func fixedResponse(status int, body string) chain.Interceptor {
	return chain.InterceptorFunc(func(c *chain.Chain, req *chain.Request, resp *chain.Response, done chain.Completion) {
		resp.StatusCode = status
		resp.Body = []byte(body)
		c.Proceed(req, resp, done)
	})
}

func TestDecodeJSON(t *testing.T) {
	c := &chain.Chain{Interceptors: []chain.Interceptor{
		fixedResponse(200, `{"name":"chainkit","count":2}`),
		DecodeJSON(),
		Finish(),
	}}
	var got *chain.Response
	var gotErr error
	c.Start(chain.NewRequest("GET", "u"), func(resp *chain.Response, err error) { got, gotErr = resp, err })
	if gotErr != nil {
		t.Fatal(gotErr)
	}
	m, ok := got.Value.(map[string]interface{})
	if !ok {
		t.Fatalf("value: expected map, got %T", got.Value)
	}
	if m["name"] != "chainkit" {
		t.Errorf("name: got %v", m["name"])
	}
}

func TestDecodeJSON_BadBody(t *testing.T) {
	c := &chain.Chain{Interceptors: []chain.Interceptor{
		fixedResponse(200, `{not json`),
		DecodeJSON(),
		Finish(),
	}}
	var gotErr error
	c.Start(chain.NewRequest("GET", "u"), func(resp *chain.Response, err error) { gotErr = err })
	if gotErr == nil {
		t.Fatal("expected decode error")
	}
}

func TestDecodeJSON_EmptyBodyPassesThrough(t *testing.T) {
	c := &chain.Chain{Interceptors: []chain.Interceptor{
		fixedResponse(204, ""),
		DecodeJSON(),
		Finish(),
	}}
	var got *chain.Response
	var gotErr error
	c.Start(chain.NewRequest("GET", "u"), func(resp *chain.Response, err error) { got, gotErr = resp, err })
	if gotErr != nil {
		t.Fatal(gotErr)
	}
	if got.Value != nil {
		t.Errorf("value should stay nil for empty body, got %v", got.Value)
	}
}

func TestDecodeJSONTo(t *testing.T) {
	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}
	c := &chain.Chain{Interceptors: []chain.Interceptor{
		fixedResponse(200, `{"name":"chainkit","count":2}`),
		DecodeJSONTo[payload](),
		Finish(),
	}}
	var got *chain.Response
	var gotErr error
	c.Start(chain.NewRequest("GET", "u"), func(resp *chain.Response, err error) { got, gotErr = resp, err })
	if gotErr != nil {
		t.Fatal(gotErr)
	}
	p, ok := got.Value.(*payload)
	if !ok {
		t.Fatalf("value: expected *payload, got %T", got.Value)
	}
	if p.Name != "chainkit" || p.Count != 2 {
		t.Errorf("decoded: got %+v", p)
	}
}

func TestExpectSuccess_Passes2xx(t *testing.T) {
	c := &chain.Chain{Interceptors: []chain.Interceptor{
		fixedResponse(201, "created"),
		ExpectSuccess(),
		Finish(),
	}}
	var gotErr error
	c.Start(chain.NewRequest("GET", "u"), func(resp *chain.Response, err error) { gotErr = err })
	if gotErr != nil {
		t.Fatal(gotErr)
	}
}

func TestExpectSuccess_Fails5xxRetryable(t *testing.T) {
	c := &chain.Chain{Interceptors: []chain.Interceptor{
		fixedResponse(503, "unavailable"),
		ExpectSuccess(),
		Finish(),
	}}
	var gotErr error
	c.Start(chain.NewRequest("GET", "u"), func(resp *chain.Response, err error) { gotErr = err })
	if gotErr == nil {
		t.Fatal("expected error for 503")
	}
	if !IsRetryable(gotErr) {
		t.Errorf("5xx should be retryable, got %v", gotErr)
	}
}

func TestExpectSuccess_Fails4xxPermanent(t *testing.T) {
	c := &chain.Chain{Interceptors: []chain.Interceptor{
		fixedResponse(404, "missing"),
		ExpectSuccess(),
		Finish(),
	}}
	var gotErr error
	c.Start(chain.NewRequest("GET", "u"), func(resp *chain.Response, err error) { gotErr = err })
	if gotErr == nil {
		t.Fatal("expected error for 404")
	}
	if IsRetryable(gotErr) {
		t.Errorf("4xx should not be retryable, got %v", gotErr)
	}
}
