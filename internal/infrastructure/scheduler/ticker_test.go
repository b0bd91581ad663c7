package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestTickerRunsImmediatelyAndRepeats(t *testing.T) {
	t.Parallel()

	var runs atomic.Int32
	s := NewTickerScheduler(10 * time.Millisecond)
	if err := s.Start(context.Background(), func(time.Time) { runs.Add(1) }); err != nil {
		t.Fatalf("start: %v", err)
	}
	// A second start must not launch another loop.
	if err := s.Start(context.Background(), func(time.Time) { runs.Add(100) }); err != nil {
		t.Fatalf("second start: %v", err)
	}

	deadline := time.Now().Add(time.Second)
	for runs.Load() < 3 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if err := s.Stop(context.Background()); err != nil {
		t.Fatalf("stop: %v", err)
	}

	got := runs.Load()
	if got < 3 || got >= 100 {
		t.Fatalf("unexpected run count %d", got)
	}
	if err := s.Stop(context.Background()); err != nil {
		t.Fatalf("second stop: %v", err)
	}
}

func TestTickerStopsWithContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	ran := make(chan struct{}, 1)
	s := NewTickerScheduler(time.Hour)
	if err := s.Start(ctx, func(time.Time) { ran <- struct{}{} }); err != nil {
		t.Fatalf("start: %v", err)
	}
	<-ran
	cancel()

	if err := s.Stop(context.Background()); err != nil {
		t.Fatalf("stop after cancel: %v", err)
	}
}

func TestTickerNilJob(t *testing.T) {
	t.Parallel()

	s := NewTickerScheduler(0)
	if s.interval != defaultInterval {
		t.Fatalf("expected default interval, got %s", s.interval)
	}
	if err := s.Start(context.Background(), nil); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := s.Stop(context.Background()); err != nil {
		t.Fatalf("stop: %v", err)
	}
}
