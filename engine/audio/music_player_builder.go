package audio

import "github.com/gopxl/beep"

type MusicPlayerBuilderOption func(*musicPlayerImpl)

// WithVolume sets the drone amplitude in [0, 1].
//
// Parameters:
//   - volume: the amplitude
//
// Returns:
//   - MusicPlayerBuilderOption: a function that sets the volume
func WithVolume(volume float64) MusicPlayerBuilderOption {
	return func(m *musicPlayerImpl) {
		m.volume = min(max(volume, 0), 1)
	}
}

// withSpeaker replaces the speaker functions. Used by tests to run without an audio device.
func withSpeaker(initSpeaker func(beep.SampleRate, int) error, play func(...beep.Streamer), lock, unlock func()) MusicPlayerBuilderOption {
	return func(m *musicPlayerImpl) {
		m.initSpeaker = initSpeaker
		m.play = play
		m.lock = lock
		m.unlock = unlock
	}
}
