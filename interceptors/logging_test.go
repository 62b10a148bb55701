package interceptors

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/chainkit/chainkit/chain"
)

func TestLogger_LogsStatusAfterTransport(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	c := &chain.Chain{
		Name: "api",
		Interceptors: []chain.Interceptor{
			fixedResponse(200, "ok"),
			Logger(log),
			Finish(),
		},
	}
	c.Start(chain.NewRequest("GET", "http://example.com"), func(*chain.Response, error) {})

	out := buf.String()
	if !strings.Contains(out, `"chain":"api"`) {
		t.Errorf("missing chain name in log: %s", out)
	}
	if !strings.Contains(out, `"status":200`) {
		t.Errorf("missing status in log: %s", out)
	}
	if !strings.Contains(out, `"run_id":"`) {
		t.Errorf("missing run id in log: %s", out)
	}
}

func TestLogger_PlacedFirstOmitsStatus(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	c := &chain.Chain{
		Name: "api",
		Interceptors: []chain.Interceptor{
			Logger(log),
			fixedResponse(200, "ok"),
			Finish(),
		},
	}
	c.Start(chain.NewRequest("GET", "http://example.com"), func(*chain.Response, error) {})

	out := buf.String()
	if strings.Contains(out, `"status"`) {
		t.Errorf("status should be absent before the transport ran: %s", out)
	}
	if !strings.Contains(out, `"attempt":0`) {
		t.Errorf("missing attempt in log: %s", out)
	}
}

func TestLogger_LogsEachAttempt(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	attempts := 0
	c := &chain.Chain{
		Name: "api",
		Interceptors: []chain.Interceptor{
			Logger(log),
			failNTimes(1, RetryableErr(errTransient), &attempts),
		},
		Handler: NewRetryHandler(RetryPolicy{MaxAttempts: 2, ShouldRetry: IsRetryable}),
	}
	c.Start(chain.NewRequest("GET", "http://example.com"), func(*chain.Response, error) {})

	out := buf.String()
	if !strings.Contains(out, `"attempt":0`) || !strings.Contains(out, `"attempt":1`) {
		t.Errorf("expected a log line per attempt: %s", out)
	}
}
