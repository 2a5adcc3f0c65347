package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JerelRocktaschel/jumpshot/internal/http/middleware"
	"github.com/JerelRocktaschel/jumpshot/internal/testutil"
)

func TestWriteErrorPrefersContextRequestID(t *testing.T) {
	var ctxID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxID = middleware.RequestIDFromContext(r.Context())
		writeError(w, r, http.StatusNotFound, codeNoData, "no standings", nil)
	})
	req := httptest.NewRequest(http.MethodGet, "/standings", nil)
	req.Header.Set("X-Request-ID", "bad id")
	rr := testutil.ServeRequest(middleware.LoggingMiddleware(nil, nil, next), req)

	testutil.AssertStatus(t, rr, http.StatusNotFound)
	var body errorBody
	testutil.DecodeJSON(t, rr, &body)
	if body.RequestID == "" || body.RequestID != ctxID || body.RequestID == "bad id" {
		t.Fatalf("expected sanitized context request id %q, got %+v", ctxID, body)
	}
	if body.Code != codeNoData || body.Error != "no standings" {
		t.Fatalf("unexpected body %+v", body)
	}
}

func TestWriteErrorFallsBackToHeaderRequestID(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/coaches", nil)
	req.Header.Set("X-Request-ID", "header-id")
	writeError(rr, req, http.StatusBadRequest, codeInvalidParameter, "season", nil)

	var body errorBody
	testutil.DecodeJSON(t, rr, &body)
	if body.RequestID != "header-id" {
		t.Fatalf("expected header request id, got %+v", body)
	}
}

func TestWriteJSONLogsEncodeError(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	rr := httptest.NewRecorder()
	writeJSON(rr, http.StatusOK, make(chan int), logger)

	testutil.AssertStatus(t, rr, http.StatusOK)
	testutil.AssertLogged(t, buf, "failed to encode response")
}

func TestWriteImageSetsHeaders(t *testing.T) {
	rr := httptest.NewRecorder()
	writeImage(rr, []byte("png-bytes"), nil)

	testutil.AssertStatus(t, rr, http.StatusOK)
	if got := rr.Header().Get("Content-Type"); got != "image/png" {
		t.Fatalf("expected image/png, got %s", got)
	}
	if got := rr.Header().Get("Content-Length"); got != "9" {
		t.Fatalf("expected content length 9, got %s", got)
	}
}

func TestLoggerFromContextFallsBack(t *testing.T) {
	fallback, _ := testutil.NewBufferLogger()
	if got := loggerFromContext(nil, fallback); got != fallback {
		t.Fatalf("expected fallback for nil request")
	}
	req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(context.Background())
	if got := loggerFromContext(req, fallback); got != fallback {
		t.Fatalf("expected fallback without context logger")
	}
}
