package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"strings"
	"testing"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// buf receives every line once the package logger is initialized by TestMain
var buf bytes.Buffer

func TestMain(m *testing.M) {
	Init(Options{Level: "debug", Format: "json", Service: "forgeapi", Writer: &buf, StaticFields: map[string]string{"env": "test"}})
	os.Exit(m.Run())
}

func lastLine(t *testing.T) map[string]any {
	t.Helper()
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	var m map[string]any
	if err := json.Unmarshal([]byte(lines[len(lines)-1]), &m); err != nil {
		t.Fatalf("decode %q: %v", lines[len(lines)-1], err)
	}
	return m
}

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":    zerolog.TraceLevel,
		" DEBUG ":  zerolog.DebugLevel,
		"warning":  zerolog.WarnLevel,
		"error":    zerolog.ErrorLevel,
		"":         zerolog.InfoLevel,
		"nonsense": zerolog.InfoLevel,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Fatalf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestConsole(t *testing.T) {
	var b bytes.Buffer
	if !console("console", &b) || console("json", &b) || console("auto", &b) {
		t.Fatalf("console detection wrong for a buffer")
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "WARN")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_CALLER", "true")
	t.Setenv("LOG_SAMPLE_EVERY", "5")

	opt := FromEnv()
	if opt.Level != "warn" || opt.Format != "json" || opt.Service != "forgeapi" || !opt.WithCaller || opt.SampleEvery != 5 {
		t.Fatalf("FromEnv = %+v", opt)
	}

	t.Setenv("LOG_SAMPLE_EVERY", "often")
	if FromEnv().SampleEvery != 0 {
		t.Fatalf("invalid sample rate should be ignored")
	}
}

func TestRootFields(t *testing.T) {
	Get().Info().Msg("dispatcher ready")
	m := lastLine(t)
	if m["service"] != "forgeapi" || m["env"] != "test" || m["message"] != "dispatcher ready" {
		t.Fatalf("line = %v", m)
	}
}

func TestNamed(t *testing.T) {
	Named("forgekit").Info().Msg("x")
	if m := lastLine(t); m["component"] != "forgekit" {
		t.Fatalf("line = %v", m)
	}
	if Named("") != Get() {
		t.Fatalf("empty component should return root")
	}
}

func TestC_RequestID(t *testing.T) {
	C(WithRequest(context.Background(), "req-123")).Info().Msg("x")
	if m := lastLine(t); m["request_id"] != "req-123" {
		t.Fatalf("line = %v", m)
	}

	ctx := context.WithValue(context.Background(), chimw.RequestIDKey, "chi-42")
	C(ctx).Info().Msg("x")
	if m := lastLine(t); m["request_id"] != "chi-42" {
		t.Fatalf("chi request id not used: %v", m)
	}

	if C(context.Background()) != Get() || WithRequest(context.Background(), "") != context.Background() {
		t.Fatalf("no request id should leave root untouched")
	}
}
