package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/term-snake/constants"
)

// SoundManager plays game cues through a single mixer
// Play calls are no-ops until Initialize succeeds
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rate        beep.SampleRate
	volume      float64
	initialized bool

	// lock/unlock guard the mixer against the speaker goroutine
	lock, unlock func()
}

// NewSoundManager creates a sound manager at the default rate and volume
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		rate:   beep.SampleRate(constants.AudioSampleRate),
		volume: constants.AudioVolume,
		lock:   func() {},
		unlock: func() {},
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sm.rate, sm.rate.N(100*time.Millisecond)); err != nil {
		return err
	}

	sm.lock, sm.unlock = speaker.Lock, speaker.Unlock
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences the mixer; further play calls are ignored
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	sm.lock()
	sm.mixer.Clear()
	sm.unlock()

	// beep has no speaker close; an empty mixer stays silent
	sm.initialized = false
}

// PlayEat plays the food chime
func (sm *SoundManager) PlayEat() {
	sm.play(CreateEatSound(sm.rate, sm.volume))
}

// PlayCrash plays the collision buzz
func (sm *SoundManager) PlayCrash() {
	sm.play(CreateCrashSound(sm.rate, sm.volume))
}

// Active returns the number of cues still playing
func (sm *SoundManager) Active() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.lock()
	defer sm.unlock()
	return sm.mixer.Len()
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	sm.lock()
	sm.mixer.Add(s)
	sm.unlock()
}
