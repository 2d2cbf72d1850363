package results

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	saved := baseLogger
	baseLogger = log.New(&buf, "", 0)
	t.Cleanup(func() { baseLogger = saved })
	return &buf
}

func TestInfof_NoDoubleFormattingWithPercent(t *testing.T) {
	buf := captureLog(t)
	SetLogLevel("info")

	msg := "loaded security-tests-20240215.json (pass rate 97.87%)"
	Infof(msg)

	out := buf.String()
	if !strings.Contains(out, "97.87%") {
		t.Fatalf("log output missing expected percent segment: %s", out)
	}
	if strings.Contains(out, "(MISSING)") {
		t.Fatalf("log output shows fmt artifact: %s", out)
	}
}

func TestSetLogLevel_FiltersBelowThreshold(t *testing.T) {
	buf := captureLog(t)
	SetLogLevel("warn")
	defer SetLogLevel("info")

	Infof("should be suppressed")
	Warnf("should appear")

	out := buf.String()
	if strings.Contains(out, "suppressed") {
		t.Fatalf("info message leaked at warn level: %s", out)
	}
	if !strings.Contains(out, "[WARN] should appear") {
		t.Fatalf("warn message missing: %s", out)
	}
}

func TestSetLogLevel_UnknownNameKeepsCurrent(t *testing.T) {
	buf := captureLog(t)
	SetLogLevel("info")
	SetLogLevel("loud")

	Infof("still visible")
	if !strings.Contains(buf.String(), "still visible") {
		t.Fatal("unknown level name should not change the threshold")
	}
}
