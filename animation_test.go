package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoneTrackSample(t *testing.T) {
	track := BoneTrack{
		Times:     []float64{0, 1, 3},
		Rotations: []Vec3{{X: 0}, {X: 1}, {X: 3, Y: 2}},
	}

	assert.Equal(t, Vec3{X: 0}, track.Sample(-1))
	assert.Equal(t, Vec3{X: 0}, track.Sample(0))
	assert.InDelta(t, 0.5, track.Sample(0.5).X, 1e-9)
	assert.Equal(t, Vec3{X: 1}, track.Sample(1))
	assert.InDelta(t, 2, track.Sample(2).X, 1e-9)
	assert.InDelta(t, 1, track.Sample(2).Y, 1e-9)
	assert.Equal(t, Vec3{X: 3, Y: 2}, track.Sample(10))

	assert.Equal(t, Vec3{}, (&BoneTrack{}).Sample(1))
}

func TestClipActionLoopRepeat(t *testing.T) {
	m := NewAnimationMixer()
	clip := &AnimationClip{Name: "loop", Duration: 2}

	finished := 0
	m.AddFinishedListener(func(*ClipAction) { finished++ })

	action := m.ClipAction(clip)
	action.Play()

	m.Update(2.5)
	assert.InDelta(t, 0.5, action.Time, 1e-9)
	assert.Equal(t, 0, finished)
	assert.True(t, action.IsRunning())
}

func TestClipActionLoopOnce(t *testing.T) {
	m := NewAnimationMixer()
	clip := &AnimationClip{Name: "once", Duration: 2}

	var finished []*ClipAction
	m.AddFinishedListener(func(a *ClipAction) { finished = append(finished, a) })

	action := m.ClipAction(clip)
	action.Loop = LoopOnce
	action.ClampWhenFinished = true
	action.Play()

	m.Update(1)
	assert.Empty(t, finished)

	m.Update(5)
	assert.Equal(t, []*ClipAction{action}, finished)
	assert.Equal(t, 2.0, action.Time)
	assert.True(t, action.Paused)
	assert.True(t, action.Enabled)

	// stays clamped, no more events
	m.Update(5)
	assert.Len(t, finished, 1)
	assert.Equal(t, 2.0, action.Time)
}

func TestClipActionLoopOnceWithoutClamp(t *testing.T) {
	m := NewAnimationMixer()
	clip := &AnimationClip{Name: "once", Duration: 1}

	action := m.ClipAction(clip)
	action.Loop = LoopOnce
	action.Play()

	m.Update(2)
	assert.False(t, action.Enabled)
	assert.False(t, action.IsRunning())
}

func TestMixerReturnsSameAction(t *testing.T) {
	m := NewAnimationMixer()
	clip := &AnimationClip{Name: "a", Duration: 1}

	assert.Same(t, m.ClipAction(clip), m.ClipAction(clip))
	assert.Equal(t, 1.0, m.ClipAction(clip).TimeScale)
}

func TestMixerListeners(t *testing.T) {
	m := NewAnimationMixer()

	calls := 0
	id1 := m.AddFinishedListener(func(*ClipAction) { calls++ })
	id2 := m.AddFinishedListener(func(*ClipAction) { calls += 10 })
	assert.NotEqual(t, id1, id2)
	assert.Equal(t, 2, m.ListenerCount())

	assert.True(t, m.RemoveFinishedListener(id1))
	assert.False(t, m.RemoveFinishedListener(id1))
	assert.Equal(t, 1, m.ListenerCount())

	m.dispatchFinished(nil)
	assert.Equal(t, 10, calls)
}

func TestMixerListenerReplacesItselfDuringDispatch(t *testing.T) {
	m := NewAnimationMixer()

	calls := 0
	var id ListenerID
	var listener FinishedListener
	listener = func(*ClipAction) {
		calls++
		m.RemoveFinishedListener(id)
		id = m.AddFinishedListener(listener)
	}
	id = m.AddFinishedListener(listener)

	m.dispatchFinished(nil)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, m.ListenerCount())

	m.dispatchFinished(nil)
	assert.Equal(t, 2, calls)
	assert.Equal(t, 1, m.ListenerCount())
}

func TestMixerStopAllAction(t *testing.T) {
	m := NewAnimationMixer()
	a := m.ClipAction(&AnimationClip{Name: "a", Duration: 1}).Play()
	b := m.ClipAction(&AnimationClip{Name: "b", Duration: 1}).Play()

	m.StopAllAction()

	assert.False(t, a.IsRunning())
	assert.False(t, b.IsRunning())
	assert.Empty(t, m.active)
}

func TestMixerSamplePose(t *testing.T) {
	rig := &Rig{Bones: []Bone{
		{Name: "root", Parent: -1, Rest: Vec3{Z: 0.1}},
		{Name: "child", Parent: 0, Offset: Vec3{Y: 1}},
	}}

	m := NewAnimationMixer()
	assert.Equal(t, Pose{{Z: 0.1}, {}}, m.SamplePose(rig))

	first := &AnimationClip{Name: "first", Duration: 2, Tracks: []BoneTrack{
		{Bone: 0, Times: []float64{0, 2}, Rotations: []Vec3{{}, {X: 2}}},
		{Bone: 1, Times: []float64{0}, Rotations: []Vec3{{Y: 5}}},
	}}
	second := &AnimationClip{Name: "second", Duration: 2, Tracks: []BoneTrack{
		{Bone: 1, Times: []float64{0}, Rotations: []Vec3{{Y: 7}}},
		// out of range bones are skipped
		{Bone: 9, Times: []float64{0}, Rotations: []Vec3{{Y: 7}}},
	}}

	m.ClipAction(first).Play()
	m.Update(1)
	pose := m.SamplePose(rig)
	assert.InDelta(t, 1, pose[0].X, 1e-9)
	assert.Equal(t, Vec3{Y: 5}, pose[1])

	// later action wins
	m.ClipAction(second).Play()
	pose = m.SamplePose(rig)
	assert.Equal(t, Vec3{Y: 7}, pose[1])
}
