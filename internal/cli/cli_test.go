package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestCountdown_BlocksForFullDelay(t *testing.T) {
	var buf bytes.Buffer
	tick := 5 * time.Millisecond

	start := time.Now()
	countdown(&buf, 3, tick)
	elapsed := time.Since(start)

	if elapsed < 3*tick {
		t.Errorf("expected countdown to block for at least %v, returned after %v", 3*tick, elapsed)
	}

	out := buf.String()
	for _, want := range []string{"3s", "2s", "1s"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected countdown output to announce %s, got %q", want, out)
		}
	}
}

func TestCountdown_ZeroSecondsWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	countdown(&buf, 0, time.Millisecond)
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}
