package main

import (
	"encoding/json"
	"fmt"
	"io"
)

type Bone struct {
	Name   string
	Parent int // -1 for root
	// Offset from parent joint, in parent space.
	Offset Vec3
	Rest   Vec3
}

type Rig struct {
	Bones []Bone
}

// Pose is euler rotation of each bone, indexed like Rig.Bones.
type Pose []Vec3

func (r *Rig) RestPose() Pose {
	pose := make(Pose, len(r.Bones))
	for i, b := range r.Bones {
		pose[i] = b.Rest
	}
	return pose
}

func (r *Rig) BoneIndex(name string) int {
	for i, b := range r.Bones {
		if b.Name == name {
			return i
		}
	}
	return -1
}

type ModelTransform struct {
	Position Vec3
	Scale    Vec3
}

// Solve returns world position of each joint.
// Parents always come before their children, which ParseRig checks.
func (r *Rig) Solve(pose Pose, transform ModelTransform) []Vec3 {
	joints := make([]Vec3, len(r.Bones))
	rotations := make([]Mat3, len(r.Bones))

	for i, b := range r.Bones {
		local := Mat3FromEuler(pose[i])

		if b.Parent < 0 {
			rotations[i] = local
			joints[i] = b.Offset
		} else {
			parentRot := rotations[b.Parent]
			rotations[i] = parentRot.Mul(local)
			joints[i] = joints[b.Parent].Add(parentRot.MulVec3(b.Offset))
		}
	}

	for i := range joints {
		joints[i] = joints[i].Mul(transform.Scale).Add(transform.Position)
	}

	return joints
}

// =================================
// json loading
// =================================

type rigJson struct {
	Bones []struct {
		Name   string     `json:"name"`
		Parent string     `json:"parent"`
		Offset [3]float64 `json:"offset"`
		Rest   [3]float64 `json:"rest"`
	} `json:"bones"`

	Clips []struct {
		Name     string  `json:"name"`
		Duration float64 `json:"duration"`
		Tracks   []struct {
			Bone      string       `json:"bone"`
			Times     []float64    `json:"times"`
			Rotations [][3]float64 `json:"rotations"`
		} `json:"tracks"`
	} `json:"clips"`
}

func ParseRig(r io.Reader) (*Rig, []*AnimationClip, error) {
	var data rigJson

	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&data); err != nil {
		return nil, nil, fmt.Errorf("decoding rig: %w", err)
	}

	if len(data.Bones) == 0 {
		return nil, nil, fmt.Errorf("rig has no bones")
	}

	rig := &Rig{}

	for _, jb := range data.Bones {
		if rig.BoneIndex(jb.Name) >= 0 {
			return nil, nil, fmt.Errorf("duplicate bone %q", jb.Name)
		}

		parent := -1
		if jb.Parent != "" {
			parent = rig.BoneIndex(jb.Parent)
			if parent < 0 {
				return nil, nil, fmt.Errorf("bone %q: parent %q must be declared before it", jb.Name, jb.Parent)
			}
		}

		rig.Bones = append(rig.Bones, Bone{
			Name:   jb.Name,
			Parent: parent,
			Offset: V3FromArray(jb.Offset),
			Rest:   V3FromArray(jb.Rest),
		})
	}

	var clips []*AnimationClip

	for _, jc := range data.Clips {
		if jc.Duration <= 0 {
			return nil, nil, fmt.Errorf("clip %q: duration must be positive, got %v", jc.Name, jc.Duration)
		}

		clip := &AnimationClip{
			Name:     jc.Name,
			Duration: jc.Duration,
		}

		for _, jt := range jc.Tracks {
			bone := rig.BoneIndex(jt.Bone)
			if bone < 0 {
				return nil, nil, fmt.Errorf("clip %q: unknown bone %q", jc.Name, jt.Bone)
			}
			if len(jt.Times) != len(jt.Rotations) {
				return nil, nil, fmt.Errorf(
					"clip %q bone %q: %d times but %d rotations",
					jc.Name, jt.Bone, len(jt.Times), len(jt.Rotations))
			}
			for i := 1; i < len(jt.Times); i++ {
				if jt.Times[i] <= jt.Times[i-1] {
					return nil, nil, fmt.Errorf("clip %q bone %q: times are not ascending", jc.Name, jt.Bone)
				}
			}

			track := BoneTrack{
				Bone:  bone,
				Times: jt.Times,
			}
			for _, rot := range jt.Rotations {
				track.Rotations = append(track.Rotations, V3FromArray(rot))
			}

			clip.Tracks = append(clip.Tracks, track)
		}

		clips = append(clips, clip)
	}

	return rig, clips, nil
}
