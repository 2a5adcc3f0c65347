package testutil

import (
	"io"
	"net/http"
	"strings"
	"sync"
)

// RoundTripperFunc adapts a function into an http.RoundTripper.
type RoundTripperFunc func(*http.Request) (*http.Response, error)

func (f RoundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// Response builds a response with the given status and body.
func Response(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
}

// Upstream is a fake upstream that serves canned bodies by URL path and records every request.
type Upstream struct {
	mu       sync.Mutex
	bodies   map[string]string
	status   int
	requests []*http.Request
}

// NewUpstream serves bodies keyed by URL path with status 200.
func NewUpstream(bodies map[string]string) *Upstream {
	return &Upstream{bodies: bodies, status: http.StatusOK}
}

// WithStatus makes every response use status.
func (u *Upstream) WithStatus(status int) *Upstream {
	u.status = status
	return u
}

// Client returns an http.Client routed through the fake.
func (u *Upstream) Client() *http.Client {
	return &http.Client{Transport: RoundTripperFunc(u.roundTrip)}
}

// Requests returns the requests seen so far.
func (u *Upstream) Requests() []*http.Request {
	u.mu.Lock()
	defer u.mu.Unlock()
	out := make([]*http.Request, len(u.requests))
	copy(out, u.requests)
	return out
}

func (u *Upstream) roundTrip(req *http.Request) (*http.Response, error) {
	u.mu.Lock()
	u.requests = append(u.requests, req)
	u.mu.Unlock()

	body, ok := u.bodies[req.URL.Path]
	if !ok {
		return Response(http.StatusNotFound, ""), nil
	}
	return Response(u.status, body), nil
}
