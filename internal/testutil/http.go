package testutil

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	jsoniter "github.com/json-iterator/go"
)

// Serve executes a request against the provided handler and returns the recorder.
func Serve(h http.Handler, method, path string, body io.Reader) *httptest.ResponseRecorder {
	return ServeRequest(h, httptest.NewRequest(method, path, body))
}

// ServeRequest executes the given request against the handler.
func ServeRequest(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

// AssertStatus verifies the response status code and shows the body on mismatch.
func AssertStatus(t *testing.T, rr *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rr.Code != want {
		t.Fatalf("expected status %d, got %d: %s", want, rr.Code, rr.Body.String())
	}
}

// DecodeJSON decodes the recorder body into dest, failing the test on error.
func DecodeJSON(t *testing.T, rr *httptest.ResponseRecorder, dest any) {
	t.Helper()
	if ct := rr.Header().Get("Content-Type"); ct != "" && ct != "application/json" {
		t.Fatalf("expected application/json, got %q", ct)
	}
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.NewDecoder(rr.Body).Decode(dest); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
}

// List mirrors the gateway list envelope.
type List[T any] struct {
	Season string `json:"season"`
	Date   string `json:"date"`
	Count  int    `json:"count"`
	Data   []T    `json:"data"`
}

// DecodeList decodes a gateway list response and checks that count matches data.
func DecodeList[T any](t *testing.T, rr *httptest.ResponseRecorder) List[T] {
	t.Helper()
	var out List[T]
	DecodeJSON(t, rr, &out)
	if out.Count != len(out.Data) {
		t.Fatalf("expected count %d to match %d records", out.Count, len(out.Data))
	}
	return out
}
