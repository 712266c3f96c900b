package utils

import (
	"bytes"
	"log"
	"os"
	"strings"
	"testing"
)

func TestLogActionShape(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	LogAction("req-1", "docs", "generate_invoice", "booking_id=5")

	out := buf.String()
	for _, want := range []string{"action=docs.generate_invoice", "request_id=req-1", "booking_id=5"} {
		if !strings.Contains(out, want) {
			t.Fatalf("log line %q missing %q", out, want)
		}
	}
}

func TestLogActionOmitsEmptyDetail(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	LogAction("req-2", "booking", "delete", "  ")

	out := strings.TrimSpace(buf.String())
	if !strings.HasSuffix(out, "request_id=req-2") {
		t.Fatalf("expected line to end at request_id, got %q", out)
	}
}
