package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)
)

// SoundManager plays curves through the system speaker
type SoundManager struct {
	mu          sync.Mutex
	curve       *beep.Ctrl
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker; safe to call more than once
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops playback and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	sm.curve = nil
	speaker.Unlock()

	speaker.Close()
	sm.initialized = false
}

// PlayCurve sonifies a curve left to right, replacing any curve still playing
func (sm *SoundManager) PlayCurve(c Curve, height int, lowHz, highHz float64, duration time.Duration) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	gen := NewCurveGenerator(sampleRate, Pitches(c, height, lowHz, highHz), duration)

	speaker.Lock()
	sm.mixer.Clear()
	sm.curve = &beep.Ctrl{Streamer: gen, Paused: false}
	sm.mixer.Add(sm.curve)
	speaker.Unlock()
}

// Stop silences the curve currently playing
func (sm *SoundManager) Stop() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.curve == nil {
		return
	}
	speaker.Lock()
	sm.curve.Paused = true
	speaker.Unlock()
}
