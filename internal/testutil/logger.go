package testutil

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/preston-bernstein/esports-tracker/internal/logging"
)

// NewBufferLogger returns a debug-level text logger writing into the returned buffer.
func NewBufferLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return logging.NewLogger(logging.Config{Level: "debug", Format: "text", Output: buf}), buf
}

// AssertLogged fails unless every fragment appears in the captured log output.
func AssertLogged(t *testing.T, buf *bytes.Buffer, fragments ...string) {
	t.Helper()
	out := buf.String()
	for _, f := range fragments {
		if !strings.Contains(out, f) {
			t.Fatalf("expected %q in log output:\n%s", f, out)
		}
	}
}
