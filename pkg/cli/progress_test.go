package cli

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"
)

// syncBuffer guards a buffer shared with the animation goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestIndicator_StartStop(t *testing.T) {
	buf := &syncBuffer{}
	ind := NewIndicator(buf, "思考中")
	ind.tick = 5 * time.Millisecond

	ind.Start()
	ind.Start()
	if !ind.Running() {
		t.Fatal("expected indicator to be running")
	}
	time.Sleep(30 * time.Millisecond)
	ind.Stop()

	if ind.Running() {
		t.Error("expected indicator to be stopped")
	}

	out := buf.String()
	if !strings.Contains(out, "思考中") {
		t.Errorf("expected label in output, got %q", out)
	}
	if !strings.HasSuffix(out, "\r\033[K") {
		t.Error("expected the line to be cleared on Stop")
	}
}

func TestIndicator_StopWithoutStart(t *testing.T) {
	buf := &syncBuffer{}
	ind := NewIndicator(buf, "waiting")

	ind.Stop()

	if buf.String() != "" {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestIndicator_Restart(t *testing.T) {
	buf := &syncBuffer{}
	ind := NewIndicator(buf, "waiting")
	ind.tick = time.Millisecond

	ind.Start()
	ind.Stop()
	ind.Start()
	ind.Stop()

	if n := strings.Count(buf.String(), "\r\033[K"); n != 2 {
		t.Errorf("expected 2 line clears, got %d", n)
	}
}
