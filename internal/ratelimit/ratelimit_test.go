package ratelimit

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		perSecond float64
		want      float64
	}{
		{name: "unlimited_zero", perSecond: 0, want: 0},
		{name: "unlimited_negative", perSecond: -1, want: 0},
		{name: "one_per_second", perSecond: 1, want: 1},
		{name: "fractional", perSecond: 0.5, want: 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := New(tt.perSecond).Limit(); got != tt.want {
				t.Errorf("Limit() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAllow(t *testing.T) {
	unlimited := New(0)
	for i := range 10 {
		if !unlimited.Allow() {
			t.Fatalf("unlimited Allow() = false at %d", i)
		}
	}

	limited := New(1)
	if !limited.Allow() {
		t.Fatal("first Allow() = false")
	}
	if limited.Allow() {
		t.Error("second immediate Allow() = true, want false")
	}
}

func TestWaitCanceled(t *testing.T) {
	limiter := New(0.001)
	limiter.Allow()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if err := limiter.Wait(ctx); err == nil {
		t.Error("Wait() error = nil, want a context error")
	} else if errors.Is(err, context.Canceled) {
		t.Errorf("Wait() error = %v, want deadline related", err)
	}
}
