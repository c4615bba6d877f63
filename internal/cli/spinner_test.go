package cli

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"
)

// syncBuffer is a bytes.Buffer safe for the spinner goroutine.
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

func quietSpinner(ctx context.Context, msg string) (*Spinner, *syncBuffer) {
	s := newSpinnerWithContext(ctx, msg)
	out := &syncBuffer{}
	s.out = out
	return s, out
}

func TestSpinnerDrawsMessage(t *testing.T) {
	s, out := quietSpinner(context.Background(), "Rendering snowman...")
	s.Start()
	time.Sleep(200 * time.Millisecond)
	s.Stop()

	if !strings.Contains(out.String(), "Rendering snowman...") {
		t.Errorf("spinner output missing message: %q", out.String())
	}
}

func TestSpinnerWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	s, _ := quietSpinner(ctx, "Testing with context...")
	s.Start()
	cancel()
	time.Sleep(100 * time.Millisecond)

	if !s.Cancelled() {
		t.Error("Spinner should be cancelled after context cancellation")
	}
	s.Stop()
}

func TestSpinnerWithTimeout(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	s, _ := quietSpinner(ctx, "Testing with timeout...")
	s.Start()
	time.Sleep(100 * time.Millisecond)

	if !s.Cancelled() {
		t.Error("Spinner should be cancelled after context timeout")
	}
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	s, _ := quietSpinner(context.Background(), "Testing idempotent stop...")
	s.Start()

	s.Stop()
	s.Stop()
	s.Stop()
}

func TestSpinnerStopBeforeStart(t *testing.T) {
	s, _ := quietSpinner(context.Background(), "never started")
	done := make(chan struct{})
	go func() {
		s.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop before Start blocked")
	}
}

func TestSpinnerStartTwice(t *testing.T) {
	s, _ := quietSpinner(context.Background(), "twice")
	s.Start()
	s.Start()
	s.Stop()
}

func TestSpinnerStopWithSuccess(t *testing.T) {
	s, _ := quietSpinner(context.Background(), "Testing success...")
	s.Start()
	time.Sleep(50 * time.Millisecond)
	s.StopWithSuccess("Done!")
}

func TestSpinnerStopWithError(t *testing.T) {
	s, _ := quietSpinner(context.Background(), "Testing error...")
	s.Start()
	time.Sleep(50 * time.Millisecond)
	s.StopWithError("Failed!")
}
