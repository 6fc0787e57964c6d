package cli

import (
	"context"
	"testing"
	"time"
)

func TestSpinnerStop(t *testing.T) {
	tests := []struct {
		name string
		stop func(*Spinner)
	}{
		{"plain", (*Spinner).Stop},
		{"success", func(s *Spinner) { s.StopWithSuccess("Layout complete") }},
		{"error", func(s *Spinner) { s.StopWithError("Layout failed") }},
		{"repeated", func(s *Spinner) { s.Stop(); s.Stop(); s.Stop() }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSpinner("Computing layout...")
			s.Start()
			time.Sleep(20 * time.Millisecond)
			tt.stop(s)
			select {
			case <-s.stopped:
			default:
				t.Error("spinner goroutine still running after Stop")
			}
		})
	}
}

func TestSpinnerCancelled(t *testing.T) {
	t.Run("parent cancel", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		s := newSpinnerWithContext(ctx, "Rendering...")
		s.Start()
		cancel()
		if !s.Cancelled() {
			t.Error("spinner should report cancellation of its parent context")
		}
		s.Stop()
	})

	t.Run("parent timeout", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		s := newSpinnerWithContext(ctx, "Rendering...")
		s.Start()
		<-ctx.Done()
		if !s.Cancelled() {
			t.Error("spinner should report an expired parent context")
		}
		s.Stop()
	})
}

func TestSpinnerWithoutTerminal(t *testing.T) {
	s := newSpinner("Computing layout...")
	s.animate = false
	s.Start()
	select {
	case <-s.stopped:
	case <-time.After(time.Second):
		t.Fatal("non-animated spinner should finish immediately")
	}
	s.Stop()
}
