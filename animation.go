package main

import (
	"slices"
)

type LoopMode int

const (
	LoopRepeat LoopMode = iota
	LoopOnce
)

// BoneTrack animates rotation of a single bone.
// Times must be ascending and len(Times) == len(Rotations).
type BoneTrack struct {
	Bone      int
	Times     []float64
	Rotations []Vec3
}

// Sample holds first and last key outside of the key range.
func (bt *BoneTrack) Sample(t float64) Vec3 {
	if len(bt.Times) == 0 {
		return Vec3{}
	}
	if t <= bt.Times[0] {
		return bt.Rotations[0]
	}
	last := len(bt.Times) - 1
	if t >= bt.Times[last] {
		return bt.Rotations[last]
	}

	// first key at or after t
	i, _ := slices.BinarySearch(bt.Times, t)
	if i < len(bt.Times) && bt.Times[i] == t {
		return bt.Rotations[i]
	}

	t0, t1 := bt.Times[i-1], bt.Times[i]
	return LerpVec3(bt.Rotations[i-1], bt.Rotations[i], (t-t0)/(t1-t0))
}

type AnimationClip struct {
	Name     string
	Duration float64
	Tracks   []BoneTrack
}

type ClipAction struct {
	Clip *AnimationClip

	Time      float64
	TimeScale float64

	Loop LoopMode
	// When LoopOnce action finishes, keep the last pose instead of disabling the action.
	ClampWhenFinished bool

	Paused  bool
	Enabled bool

	running bool
	mixer   *AnimationMixer
}

// Reset rewinds the action and clears Paused.
func (a *ClipAction) Reset() *ClipAction {
	a.Time = 0
	a.Paused = false
	a.Enabled = true
	return a
}

func (a *ClipAction) Play() *ClipAction {
	if !a.running {
		a.running = true
		a.mixer.activate(a)
	}
	return a
}

func (a *ClipAction) Stop() *ClipAction {
	if a.running {
		a.running = false
		a.mixer.deactivate(a)
	}
	return a.Reset()
}

func (a *ClipAction) IsRunning() bool {
	return a.running && a.Enabled && !a.Paused
}

func (a *ClipAction) advance(dt float64) (finished bool) {
	if !a.Enabled || a.Paused {
		return false
	}

	duration := a.Clip.Duration
	a.Time += dt * a.TimeScale

	switch a.Loop {
	case LoopOnce:
		if a.Time >= duration || a.Time < 0 {
			a.Time = Clamp(a.Time, 0, duration)
			if a.ClampWhenFinished {
				a.Paused = true
			} else {
				a.Enabled = false
			}
			return true
		}
	default:
		if duration > 0 {
			a.Time = GlslMod(a.Time, duration)
		}
	}

	return false
}

type ListenerID int64

type FinishedListener func(action *ClipAction)

type finishedListenerEntry struct {
	ID ListenerID
	Fn FinishedListener
}

// AnimationMixer plays ClipActions and notifies listeners when LoopOnce actions finish.
type AnimationMixer struct {
	actions map[*AnimationClip]*ClipAction
	active  []*ClipAction

	listeners     []finishedListenerEntry
	listenerIDMax ListenerID
}

func NewAnimationMixer() *AnimationMixer {
	return &AnimationMixer{
		actions: make(map[*AnimationClip]*ClipAction),
	}
}

// ClipAction returns the same action every time for the same clip.
func (m *AnimationMixer) ClipAction(clip *AnimationClip) *ClipAction {
	if action, ok := m.actions[clip]; ok {
		return action
	}

	action := &ClipAction{
		Clip:      clip,
		TimeScale: 1,
		Enabled:   true,
		mixer:     m,
	}
	m.actions[clip] = action

	return action
}

func (m *AnimationMixer) activate(a *ClipAction) {
	m.active = append(m.active, a)
}

func (m *AnimationMixer) deactivate(a *ClipAction) {
	m.active = slices.DeleteFunc(m.active, func(other *ClipAction) bool {
		return other == a
	})
}

func (m *AnimationMixer) StopAllAction() {
	for _, a := range slices.Clone(m.active) {
		a.Stop()
	}
}

func (m *AnimationMixer) AddFinishedListener(fn FinishedListener) ListenerID {
	m.listenerIDMax++
	m.listeners = append(m.listeners, finishedListenerEntry{
		ID: m.listenerIDMax,
		Fn: fn,
	})
	return m.listenerIDMax
}

func (m *AnimationMixer) RemoveFinishedListener(id ListenerID) bool {
	before := len(m.listeners)
	m.listeners = slices.DeleteFunc(m.listeners, func(e finishedListenerEntry) bool {
		return e.ID == id
	})
	return len(m.listeners) != before
}

func (m *AnimationMixer) ListenerCount() int {
	return len(m.listeners)
}

func (m *AnimationMixer) dispatchFinished(action *ClipAction) {
	// listeners are allowed to remove themselves and add new ones
	for _, e := range slices.Clone(m.listeners) {
		e.Fn(action)
	}
}

// Update advances every playing action by dt seconds.
// Actions that start playing during Update are not advanced until the next Update.
func (m *AnimationMixer) Update(dt float64) {
	for _, a := range slices.Clone(m.active) {
		// stopped by a listener earlier in this loop
		if !a.running {
			continue
		}
		if a.advance(dt) {
			m.dispatchFinished(a)
		}
	}
}

// SamplePose applies active actions in the order they were played.
// Later actions override earlier ones, there is no blending.
func (m *AnimationMixer) SamplePose(rig *Rig) Pose {
	pose := rig.RestPose()

	for _, a := range m.active {
		if !a.Enabled {
			continue
		}
		for i := range a.Clip.Tracks {
			track := &a.Clip.Tracks[i]
			if track.Bone >= 0 && track.Bone < len(pose) {
				pose[track.Bone] = track.Sample(a.Time)
			}
		}
	}

	return pose
}
