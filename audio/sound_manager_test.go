package audio

import (
	"testing"
)

// TestSoundManagerGracefulDegradation verifies cues are ignored without a speaker
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager()

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	sm.PlayEat()
	sm.PlayCrash()
	if n := sm.Active(); n != 0 {
		t.Errorf("Expected no active cues, got %d", n)
	}
	sm.Cleanup()
}

// TestSoundManagerQueuesCues drives the mixer without opening a device
func TestSoundManagerQueuesCues(t *testing.T) {
	sm := NewSoundManager()
	sm.initialized = true

	sm.PlayEat()
	sm.PlayCrash()
	if n := sm.Active(); n != 2 {
		t.Fatalf("Expected 2 active cues, got %d", n)
	}

	buf := make([][2]float64, 1024)
	n, ok := sm.mixer.Stream(buf)
	if !ok || n != len(buf) {
		t.Errorf("Expected full mixer buffer, got n=%d ok=%v", n, ok)
	}

	sm.Cleanup()
	if n := sm.Active(); n != 0 {
		t.Errorf("Expected cleared mixer, got %d", n)
	}

	sm.PlayEat()
	if n := sm.Active(); n != 0 {
		t.Errorf("Expected cues ignored after cleanup, got %d", n)
	}
}

// TestSoundManagerInitialization verifies a real device can be opened when present
func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager()

	if err := sm.Initialize(); err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}
	if err := sm.Initialize(); err != nil {
		t.Errorf("Second initialization should be a no-op, got %v", err)
	}
	sm.Cleanup()
}
