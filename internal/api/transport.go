package api

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/segmentio/ksuid"

	"vandar/client/internal/credentials"
)

const requestIDHeader = "X-Request-Id"

type ctxKey struct{}

// unauthorizedGuardKey carries a sync.Once so a 401 clears the stored
// credential at most once per logical request, however often the response
// is intercepted.
var unauthorizedGuardKey ctxKey

func withUnauthorizedGuard(ctx context.Context) context.Context {
	return context.WithValue(ctx, unauthorizedGuardKey, &sync.Once{})
}

type transport struct {
	next  http.RoundTripper
	creds *credentials.Store
	log   zerolog.Logger
}

func newTransport(next http.RoundTripper, creds *credentials.Store, log zerolog.Logger) *transport {
	if next == nil {
		next = http.DefaultTransport
	}
	return &transport{next: next, creds: creds, log: log}
}

func (t *transport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	req = req.Clone(req.Context())
	if req.Header.Get(requestIDHeader) == "" {
		req.Header.Set(requestIDHeader, ksuid.New().String())
	}
	if req.Header.Get("Authorization") == "" {
		if token, err := t.creds.Load(); err == nil {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := t.next.RoundTrip(req)
	latency := time.Since(start)

	if err != nil {
		t.log.Warn().
			Str("method", req.Method).
			Str("path", req.URL.Path).
			Dur("latency", latency).
			Str("request_id", req.Header.Get(requestIDHeader)).
			Err(err).
			Msg("http request failed")
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		t.clearCredentialOnce(req)
	}

	event := t.log.Debug()
	if resp.StatusCode >= 500 {
		event = t.log.Error()
	} else if resp.StatusCode >= 400 {
		event = t.log.Warn()
	}
	event.
		Str("method", req.Method).
		Str("path", req.URL.Path).
		Int("status", resp.StatusCode).
		Dur("latency", latency).
		Str("request_id", req.Header.Get(requestIDHeader)).
		Msg("http request")

	return resp, nil
}

func (t *transport) clearCredentialOnce(req *http.Request) {
	clear := func() {
		if err := t.creds.Clear(); err != nil {
			t.log.Warn().Err(err).Msg("clear credential failed")
		}
	}

	if once, ok := req.Context().Value(unauthorizedGuardKey).(*sync.Once); ok {
		once.Do(clear)
		return
	}
	clear()
}
