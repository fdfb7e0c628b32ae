package main

import (
	"bytes"
	"image/color"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScene(t *testing.T) *Scene {
	t.Helper()

	cfg, err := LoadSceneConfig("")
	require.NoError(t, err)

	rig, clips, err := ParseRig(bytes.NewReader(figureJson))
	require.NoError(t, err)

	return NewScene(cfg, rig, clips)
}

func TestSceneStartsSequence(t *testing.T) {
	s := newTestScene(t)

	assert.Equal(t, "idle", s.Sequencer.ActiveClip().Name)
	assert.Equal(t, 1, s.Mixer.ListenerCount())
	assert.Equal(t, 0.3, s.Sequencer.ActiveAction().TimeScale)
}

func TestSceneRecordsTransitions(t *testing.T) {
	s := newTestScene(t)

	// idle is 2 seconds, 6.67 seconds at 0.3x
	for range 700 {
		s.Clock.Tick(time.Second / 100)
		s.Mixer.Update(0.01)
	}

	assert.Equal(t, "wave", s.Sequencer.ActiveClip().Name)
	require.Equal(t, 1, s.Transitions.Length)

	tr := s.Transitions.PeekLast()
	assert.Equal(t, "idle", tr.From)
	assert.Equal(t, "wave", tr.To)
	assert.InDelta(t, 6.67, tr.At.Seconds(), 0.02)
}

func TestSceneTransitionsFollowReplacedClips(t *testing.T) {
	s := newTestScene(t)

	// idle keeps playing, the list it came from is gone
	replaced := []*AnimationClip{
		{Name: "bow", Duration: 1},
		{Name: "jump", Duration: 1},
	}
	s.Sequencer.SetClips(replaced)
	require.Equal(t, "idle", s.Sequencer.ActiveAction().Clip.Name)

	// idle is 2 seconds, 6.67 seconds at 0.3x
	s.Mixer.Update(7)

	require.Equal(t, 1, s.Transitions.Length)
	tr := s.Transitions.PeekLast()
	assert.Equal(t, "idle", tr.From)
	assert.Equal(t, "jump", tr.To)

	// jump is 3.33 seconds at 0.3x
	s.Mixer.Update(4)

	require.Equal(t, 2, s.Transitions.Length)
	tr = s.Transitions.PeekLast()
	assert.Equal(t, "jump", tr.From)
	assert.Equal(t, "bow", tr.To)
}

func TestSceneSkipToNextStage(t *testing.T) {
	s := newTestScene(t)

	s.Clock.Tick(3 * time.Second)
	s.SkipToNextStage()

	assert.Equal(t, 1, PatternStage(s.Clock.Seconds()))
	assert.InDelta(t, 10, s.Clock.Seconds(), 1e-9)
}

func TestSceneClose(t *testing.T) {
	s := newTestScene(t)

	s.Close()

	assert.Equal(t, 0, s.Mixer.ListenerCount())
	assert.Nil(t, s.Sequencer.ActiveAction())
}

func TestSceneClock(t *testing.T) {
	var c SceneClock

	c.Tick(time.Second)
	c.Tick(-time.Second)
	assert.Equal(t, 1.0, c.Seconds())

	assert.Error(t, c.SeekForward(0.5))
	assert.Equal(t, 1.0, c.Seconds())

	assert.NoError(t, c.SeekForward(42.5))
	assert.Equal(t, 42.5, c.Seconds())

	// clipboard can hold anything
	for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1), 1e12, MaxSeekSeconds * 2} {
		assert.Error(t, c.SeekForward(bad), bad)
		assert.Equal(t, 42.5, c.Seconds(), bad)
	}

	assert.NoError(t, c.SeekForward(1e6))
	assert.Equal(t, 1e6, c.Seconds())
}

func TestLightRigShade(t *testing.T) {
	cfg, err := LoadSceneConfig("")
	require.NoError(t, err)

	white := color.NRGBA{255, 255, 255, 255}

	// default ambient light is strong enough to saturate everything
	lights := NewLightRig(cfg)
	assert.Equal(t, white, lights.Shade(white, V3(0, 1, 0)))
	assert.Equal(t, white, lights.Shade(white, V3(1, 0, 0)))

	lights = LightRig{
		DirectionalColor:     white,
		DirectionalPosition:  V3(0, 10, 0),
		DirectionalIntensity: 1,
	}
	assert.Equal(t, color.NRGBA{0, 0, 0, 255}, lights.Shade(white, V3(0, 1, 0)))
	assert.Equal(t, white, lights.Shade(white, V3(1, 0, 0)))
}
