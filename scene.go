package main

import (
	"time"

	eb "github.com/hajimehoshi/ebiten/v2"
)

type ClipTransition struct {
	At       time.Duration
	From, To string
}

type Scene struct {
	Config SceneConfig

	Clock SceneClock

	Mixer     *AnimationMixer
	Sequencer *ClipSequencer

	Rig            *Rig
	ModelTransform ModelTransform

	Camera *OrbitCamera
	Lights LightRig
	Screen *LCDScreen

	Transitions CircularQueue[ClipTransition]

	// name of the clip the sequencer last activated
	playingClip string
}

func NewScene(cfg SceneConfig, rig *Rig, clips []*AnimationClip) *Scene {
	s := &Scene{
		Config: cfg,
		Rig:    rig,
		ModelTransform: ModelTransform{
			Position: V3FromArray(cfg.Model.Position),
			Scale:    V3FromArray(cfg.Model.Scale),
		},
		Camera: NewOrbitCamera(
			V3FromArray(cfg.Camera.Position),
			V3FromArray(cfg.Camera.Target),
			cfg.Camera.Fov, cfg.Camera.Near, cfg.Camera.Far,
		),
		Lights:      NewLightRig(cfg),
		Screen:      NewLCDScreen(cfg),
		Transitions: NewCircularQueue[ClipTransition](8),
	}

	s.Mixer = NewAnimationMixer()
	s.Sequencer = NewClipSequencer(s.Mixer, DefaultClipTimeScale)
	s.Sequencer.OnAdvance = func(_, _ int) {
		to := s.Sequencer.ActiveClip().Name
		s.Transitions.Enqueue(ClipTransition{
			At:   s.Clock.elapsed,
			From: s.playingClip,
			To:   to,
		})
		s.playingClip = to
	}
	s.Sequencer.SetClips(clips)
	if clip := s.Sequencer.ActiveClip(); clip != nil {
		s.playingClip = clip.Name
	}

	return s
}

// Update advances the scene by delta.
// Clock and mixer get the same delta.
func (s *Scene) Update(delta time.Duration) {
	s.Clock.Tick(delta)
	s.Mixer.Update(delta.Seconds())
	s.Camera.Update()
}

func (s *Scene) SkipToNextStage() {
	if err := s.Clock.SeekForward(NextStageTime(s.Clock.Seconds())); err != nil {
		ErrorLogger.Printf("failed to skip stage : %v", err)
	}
}

func (s *Scene) Close() {
	s.Sequencer.Destroy()
}

func (s *Scene) Draw(dst *eb.Image) {
	dst.Fill(s.Config.clearColor)

	width, height := ImageSizeF(dst)

	// back to front, screen is see through
	screenDepth := s.Camera.ToView(s.Screen.Position).Z
	modelDepth := s.Camera.ToView(s.ModelTransform.Position).Z

	if screenDepth > modelDepth {
		s.Screen.Draw(dst, s.Camera, s.Clock.Seconds())
		s.drawModel(dst, width, height)
	} else {
		s.drawModel(dst, width, height)
		s.Screen.Draw(dst, s.Camera, s.Clock.Seconds())
	}
}

func (s *Scene) drawModel(dst *eb.Image, width, height float64) {
	pose := s.Mixer.SamplePose(s.Rig)
	joints := s.Rig.Solve(pose, s.ModelTransform)

	for i, bone := range s.Rig.Bones {
		if bone.Parent < 0 {
			continue
		}

		from, to := joints[bone.Parent], joints[i]

		p0, _, ok0 := s.Camera.Project(from, width, height)
		p1, _, ok1 := s.Camera.Project(to, width, height)
		if !ok0 || !ok1 {
			continue
		}

		clr := s.Lights.Shade(s.Config.wireColor, to.Sub(from))
		StrokeLine(dst, p0, p1, 2, clr, true)
	}

	// head
	if head := s.Rig.BoneIndex("head"); head >= 0 {
		if p, depth, ok := s.Camera.Project(joints[head], width, height); ok {
			radius := 0.6 * s.ModelTransform.Scale.Y * s.Camera.PixelsPerUnit(height) / depth
			StrokeCircle(dst, p.X, p.Y, radius, 2, s.Config.wireColor, true)
		}
	}
}
