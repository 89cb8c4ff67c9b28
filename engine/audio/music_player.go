// Package audio plays the ambient background track that the music key toggles.
package audio

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// MusicPlayer toggles a looping ambient track on and off.
type MusicPlayer interface {
	// Initialize opens the audio device. Safe to call more than once.
	//
	// Returns:
	//   - error: error if the speaker cannot be opened
	Initialize() error

	// Toggle starts the track if it is paused and pauses it if it is playing.
	// Does nothing before Initialize succeeds.
	//
	// Returns:
	//   - bool: true if the track is playing after the call
	Toggle() bool

	// Playing reports whether the track is currently audible.
	//
	// Returns:
	//   - bool: true while playing
	Playing() bool

	// Cleanup silences the track and clears the mixer.
	Cleanup()
}

type musicPlayerImpl struct {
	mu *sync.Mutex

	mixer *beep.Mixer
	track *beep.Ctrl

	volume      float64
	initialized bool

	// speaker hooks, swapped out in tests
	initSpeaker func(sr beep.SampleRate, bufferSize int) error
	play        func(s ...beep.Streamer)
	lock        func()
	unlock      func()
}

var _ MusicPlayer = &musicPlayerImpl{}

// NewMusicPlayer creates a paused MusicPlayer. The audio device is not opened until Initialize.
//
// Parameters:
//   - options: functional options
//
// Returns:
//   - MusicPlayer: the new player
func NewMusicPlayer(options ...MusicPlayerBuilderOption) MusicPlayer {
	m := &musicPlayerImpl{
		mu:          &sync.Mutex{},
		mixer:       &beep.Mixer{},
		volume:      0.2,
		initSpeaker: speaker.Init,
		play:        speaker.Play,
		lock:        speaker.Lock,
		unlock:      speaker.Unlock,
	}
	for _, option := range options {
		option(m)
	}
	return m
}

func (m *musicPlayerImpl) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	if err := m.initSpeaker(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		log.Printf("[Audio] speaker unavailable, music disabled: %v", err)
		return fmt.Errorf("failed to open speaker: %w", err)
	}

	m.track = &beep.Ctrl{Streamer: NewDroneGenerator(sampleRate, m.volume), Paused: true}
	m.mixer.Add(m.track)
	m.play(m.mixer)
	m.initialized = true
	return nil
}

func (m *musicPlayerImpl) Toggle() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		log.Printf("[Audio] toggle ignored, speaker not initialized")
		return false
	}

	m.lock()
	m.track.Paused = !m.track.Paused
	playing := !m.track.Paused
	m.unlock()
	return playing
}

func (m *musicPlayerImpl) Playing() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return false
	}
	m.lock()
	defer m.unlock()
	return !m.track.Paused
}

func (m *musicPlayerImpl) Cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}

	m.lock()
	m.track.Paused = true
	m.mixer.Clear()
	m.unlock()

	m.track = nil
	m.initialized = false
}
