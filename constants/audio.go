package constants

import "time"

// Sound cue parameters
const (
	AudioSampleRate = 44100

	// EatToneHz/EatToneDuration shape the chime played when food is eaten
	EatToneHz       = 880.0
	EatToneDuration = 80 * time.Millisecond

	// CrashToneHz/CrashToneDuration shape the buzz played on self-collision
	CrashToneHz       = 110.0
	CrashToneDuration = 300 * time.Millisecond

	AudioAttack  = 5 * time.Millisecond
	AudioRelease = 40 * time.Millisecond
	AudioVolume  = 0.3
)
