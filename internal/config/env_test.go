package config

import (
	"strings"
	"testing"
	"time"
)

func TestEnvReaderBoolean(t *testing.T) {
	env := &envReader{}
	t.Setenv("JUMPSHOT_BOOL", "")
	if got := env.boolean("JUMPSHOT_BOOL", true); !got {
		t.Fatalf("expected current value when unset")
	}

	for raw, want := range map[string]bool{"TRUE": true, "on": true, "1": true, "No": false, "off": false, "0": false} {
		t.Setenv("JUMPSHOT_BOOL", raw)
		if got := env.boolean("JUMPSHOT_BOOL", !want); got != want {
			t.Fatalf("expected %v for %q, got %v", want, raw, got)
		}
	}
	if env.err != nil {
		t.Fatalf("expected no error, got %v", env.err)
	}

	t.Setenv("JUMPSHOT_BOOL", "maybe")
	if got := env.boolean("JUMPSHOT_BOOL", true); !got || env.err == nil {
		t.Fatalf("expected current value and an error for maybe, got %v %v", got, env.err)
	}
}

func TestEnvReaderDurationKeepsFirstError(t *testing.T) {
	env := &envReader{}
	t.Setenv("JUMPSHOT_A", "250ms")
	if got := env.duration("JUMPSHOT_A", time.Second); got != 250*time.Millisecond {
		t.Fatalf("expected 250ms, got %s", got)
	}

	t.Setenv("JUMPSHOT_A", "soon")
	t.Setenv("JUMPSHOT_B", "-1s")
	env.duration("JUMPSHOT_A", time.Second)
	if got := env.duration("JUMPSHOT_B", time.Second); got != time.Second {
		t.Fatalf("expected current value for a negative duration, got %s", got)
	}
	if env.err == nil || !strings.Contains(env.err.Error(), "JUMPSHOT_A") {
		t.Fatalf("expected the first failing key in the error, got %v", env.err)
	}
}
