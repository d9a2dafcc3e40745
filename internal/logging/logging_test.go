package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestWithPhaseAddsField(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(zerolog.New(&buf))

	WithPhase("classify").Info().Msg("hello")

	got := buf.String()
	if !strings.Contains(got, `"phase":"classify"`) {
		t.Fatalf("expected a phase field in the log line, got %s", got)
	}
}
