package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Duration is time.Duration, named for config struct readability.
type Duration = time.Duration

// envReader reads overrides from the process environment. Unset or blank keys keep the
// current value; the first malformed value is kept in err and later reads still run.
type envReader struct {
	err error
}

func (e *envReader) fail(key, raw, want string) {
	if e.err == nil {
		e.err = fmt.Errorf("config: %s=%q: expected %s", key, raw, want)
	}
}

func (e *envReader) lookup(key string) (string, bool) {
	raw := strings.TrimSpace(os.Getenv(key))
	return raw, raw != ""
}

func (e *envReader) str(key, current string) string {
	if raw, ok := e.lookup(key); ok {
		return raw
	}
	return current
}

func (e *envReader) duration(key string, current time.Duration) time.Duration {
	raw, ok := e.lookup(key)
	if !ok {
		return current
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		e.fail(key, raw, "a positive duration such as 10s")
		return current
	}
	return d
}

func (e *envReader) boolean(key string, current bool) bool {
	raw, ok := e.lookup(key)
	if !ok {
		return current
	}
	switch strings.ToLower(raw) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	e.fail(key, raw, "true or false")
	return current
}
