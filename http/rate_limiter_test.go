package http

import (
	"testing"
	"time"
)

func TestRateLimiter_EnforcesCapacityPerClient(t *testing.T) {

	limiter := NewRateLimiter(3, time.Minute)
	defer limiter.Stop()

	for i := 0; i < 3; i++ {
		if !limiter.Allow("10.0.0.1") {
			t.Fatalf("request %d should be allowed within capacity", i+1)
		}
	}
	if limiter.Allow("10.0.0.1") {
		t.Errorf("expected rejection once capacity is exhausted")
	}
	if !limiter.Allow("10.0.0.2") {
		t.Errorf("a different client must have its own bucket")
	}
}

func TestRateLimiter_RefillsAfterWindow(t *testing.T) {

	limiter := NewRateLimiter(1, 10*time.Millisecond)
	defer limiter.Stop()

	if !limiter.Allow("10.0.0.1") {
		t.Fatalf("first request should be allowed")
	}
	if limiter.Allow("10.0.0.1") {
		t.Fatalf("second request should be rejected before the window elapses")
	}

	time.Sleep(20 * time.Millisecond)

	if !limiter.Allow("10.0.0.1") {
		t.Errorf("expected tokens to refill after the window")
	}
}
