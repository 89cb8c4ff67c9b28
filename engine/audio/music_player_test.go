package audio

import (
	"errors"
	"testing"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSpeaker struct {
	initErr error
	inits   int
	played  []beep.Streamer
}

func (f *fakeSpeaker) option() MusicPlayerBuilderOption {
	return withSpeaker(
		func(beep.SampleRate, int) error {
			f.inits++
			return f.initErr
		},
		func(s ...beep.Streamer) { f.played = append(f.played, s...) },
		func() {},
		func() {},
	)
}

func TestMusicPlayer_ToggleBeforeInitialize(t *testing.T) {
	spk := &fakeSpeaker{}
	m := NewMusicPlayer(spk.option())
	assert.False(t, m.Toggle())
	assert.False(t, m.Playing())
}

func TestMusicPlayer_ToggleFlipsPlayback(t *testing.T) {
	spk := &fakeSpeaker{}
	m := NewMusicPlayer(spk.option())
	require.NoError(t, m.Initialize())
	require.NoError(t, m.Initialize())
	assert.Equal(t, 1, spk.inits)
	require.Len(t, spk.played, 1)

	assert.False(t, m.Playing(), "starts paused")
	assert.True(t, m.Toggle())
	assert.True(t, m.Playing())
	assert.False(t, m.Toggle())
	assert.False(t, m.Playing())
}

func TestMusicPlayer_InitializeError(t *testing.T) {
	spk := &fakeSpeaker{initErr: errors.New("no device")}
	m := NewMusicPlayer(spk.option())

	err := m.Initialize()
	require.Error(t, err)
	assert.ErrorIs(t, err, spk.initErr)
	assert.Empty(t, spk.played)
	assert.False(t, m.Toggle())
}

func TestMusicPlayer_Cleanup(t *testing.T) {
	spk := &fakeSpeaker{}
	m := NewMusicPlayer(spk.option())
	require.NoError(t, m.Initialize())
	m.Toggle()

	m.Cleanup()
	assert.False(t, m.Playing())
	m.Cleanup()
}

func TestDroneGenerator_StaysInRange(t *testing.T) {
	g := NewDroneGenerator(beep.SampleRate(44100), 1)
	samples := make([][2]float64, 44100)

	n, ok := g.Stream(samples)
	require.True(t, ok)
	require.Equal(t, len(samples), n)
	require.NoError(t, g.Err())

	var energy float64
	for _, s := range samples {
		assert.LessOrEqual(t, s[0], 1.0)
		assert.GreaterOrEqual(t, s[0], -1.0)
		assert.LessOrEqual(t, s[1], 1.0)
		assert.GreaterOrEqual(t, s[1], -1.0)
		energy += s[0] * s[0]
	}
	assert.Greater(t, energy, 0.0)
}

func TestDroneGenerator_NeverEnds(t *testing.T) {
	g := NewDroneGenerator(beep.SampleRate(8000), 0.2)
	buf := make([][2]float64, 512)
	for range 100 {
		n, ok := g.Stream(buf)
		require.True(t, ok)
		require.Equal(t, 512, n)
	}
}
