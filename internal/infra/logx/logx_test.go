package logx

import (
	"bytes"
	"strings"
	"testing"
)

func TestEmitRespectsMinLevel(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	SetMinLevel(LevelWarn)

	Debugf("quiet")
	Infof("still quiet")
	Warnf("loud")

	got := buf.String()
	if strings.Contains(got, "quiet") {
		t.Fatalf("expected sub-threshold messages to be dropped, got: %s", got)
	}
	if !strings.Contains(got, "loud") {
		t.Fatalf("expected warn message to be emitted, got: %s", got)
	}
}

func TestEmitWritesJSONLine(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	SetMinLevel(LevelDebug)

	Infof("hello %d", 7)

	got := buf.String()
	if !strings.HasSuffix(got, "\n") {
		t.Fatalf("expected newline-terminated entry, got: %q", got)
	}
	if !strings.Contains(got, `"level":"info"`) {
		t.Fatalf("expected info level in entry, got: %s", got)
	}
	if !strings.Contains(got, `"msg":"hello 7"`) {
		t.Fatalf("expected formatted message, got: %s", got)
	}
}

func TestLevelString(t *testing.T) {
	cases := map[Level]string{
		LevelDebug: "debug",
		LevelInfo:  "info",
		LevelWarn:  "warn",
		LevelError: "error",
		Level(99):  "debug",
	}
	for lvl, want := range cases {
		if got := lvl.String(); got != want {
			t.Fatalf("Level(%d).String() = %q, want %q", lvl, got, want)
		}
	}
}
