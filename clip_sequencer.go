package main

// ClipPlayer is the part of AnimationMixer that ClipSequencer needs.
type ClipPlayer interface {
	ClipAction(clip *AnimationClip) *ClipAction
	AddFinishedListener(fn FinishedListener) ListenerID
	RemoveFinishedListener(id ListenerID) bool
}

const DefaultClipTimeScale = 0.3

// ClipSequencer plays clips one at a time in order, looping forever.
//
// It holds at most one finished listener.
// The listener is always removed before the next one is added.
type ClipSequencer struct {
	Player    ClipPlayer
	TimeScale float64

	// OnAdvance is called after sequencer moved on to the next clip.
	OnAdvance func(prev, next int)

	clips       []*AnimationClip
	activeIndex int
	started     bool

	current *ClipAction

	listener   ListenerID
	subscribed bool

	cycles int
}

// NewClipSequencer falls back to DefaultClipTimeScale unless timeScale is positive.
func NewClipSequencer(player ClipPlayer, timeScale float64) *ClipSequencer {
	if !(timeScale > 0) {
		timeScale = DefaultClipTimeScale
	}
	return &ClipSequencer{
		Player:    player,
		TimeScale: timeScale,
	}
}

// SetClips starts the sequence the first time it receives non empty clips.
// After that, the active index wraps around the new clip count.
func (cs *ClipSequencer) SetClips(clips []*AnimationClip) {
	cs.clips = clips

	if len(clips) == 0 {
		cs.release()
		cs.stopCurrent()
		cs.activeIndex = 0
		cs.started = false
		return
	}

	if !cs.started {
		cs.started = true
		cs.activeIndex = 0
		cs.activate()
		return
	}

	if cs.activeIndex >= len(clips) {
		cs.activeIndex %= len(clips)
		cs.activate()
	}
}

func (cs *ClipSequencer) ActiveIndex() int {
	return cs.activeIndex
}

func (cs *ClipSequencer) ActiveClip() *AnimationClip {
	if len(cs.clips) == 0 {
		return nil
	}
	return cs.clips[cs.activeIndex]
}

func (cs *ClipSequencer) ActiveAction() *ClipAction {
	return cs.current
}

// Cycles is how many times the sequence wrapped back to the first clip.
func (cs *ClipSequencer) Cycles() int {
	return cs.cycles
}

func (cs *ClipSequencer) IsSubscribed() bool {
	return cs.subscribed
}

// Destroy removes the finished listener and stops the current clip.
// Sequencer does nothing after Destroy until SetClips is called again.
func (cs *ClipSequencer) Destroy() {
	cs.release()
	cs.stopCurrent()
	cs.clips = nil
	cs.started = false
}

func (cs *ClipSequencer) activate() {
	cs.release()

	action := cs.Player.ClipAction(cs.clips[cs.activeIndex])

	if cs.current != nil && cs.current != action {
		cs.current.Stop()
	}
	cs.current = action

	action.Reset()
	action.TimeScale = cs.TimeScale
	action.Loop = LoopOnce
	action.ClampWhenFinished = true
	action.Play()

	cs.listener = cs.Player.AddFinishedListener(cs.onFinished)
	cs.subscribed = true
}

func (cs *ClipSequencer) onFinished(action *ClipAction) {
	if action != cs.current || len(cs.clips) == 0 {
		return
	}

	cs.release()

	prev := cs.activeIndex
	cs.activeIndex = (cs.activeIndex + 1) % len(cs.clips)
	if cs.activeIndex == 0 {
		cs.cycles++
	}

	cs.activate()

	if cs.OnAdvance != nil {
		cs.OnAdvance(prev, cs.activeIndex)
	}
}

func (cs *ClipSequencer) release() {
	if cs.subscribed {
		cs.Player.RemoveFinishedListener(cs.listener)
		cs.subscribed = false
	}
}

func (cs *ClipSequencer) stopCurrent() {
	if cs.current != nil {
		cs.current.Stop()
		cs.current = nil
	}
}
