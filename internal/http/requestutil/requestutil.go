// Package requestutil holds request helpers shared by the gateway middleware and handlers.
package requestutil

import (
	"crypto/rand"
	"encoding/hex"
	"io"
	"net"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"sync/atomic"
)

const maxRequestIDLength = 64

var (
	requestIDPattern = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

	// entropy is swapped in tests to force the counter fallback.
	entropy  io.Reader = rand.Reader
	sequence atomic.Uint64
)

// SanitizeRequestID keeps a caller-supplied ID when it is short and printable, otherwise
// it mints a new one.
func SanitizeRequestID(incoming string) string {
	incoming = strings.TrimSpace(incoming)
	if incoming == "" || len(incoming) > maxRequestIDLength || !requestIDPattern.MatchString(incoming) {
		return NewRequestID()
	}
	return incoming
}

// NewRequestID returns 16 hex characters of randomness, or a process-local sequence
// number when the random source fails.
func NewRequestID() string {
	var b [8]byte
	if _, err := io.ReadFull(entropy, b[:]); err == nil {
		return hex.EncodeToString(b[:])
	}
	return "seq-" + strconv.FormatUint(sequence.Add(1), 10)
}

// ClientIP returns the first X-Forwarded-For hop, then X-Real-IP, then the host part of
// RemoteAddr.
func ClientIP(r *http.Request) string {
	if r == nil {
		return ""
	}
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	if real := strings.TrimSpace(r.Header.Get("X-Real-IP")); real != "" {
		return real
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
