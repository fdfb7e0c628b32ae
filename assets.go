package main

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	eb "github.com/hajimehoshi/ebiten/v2"
)

const PatternShaderPath = "assets/pattern_shader.go"

var (
	//go:embed assets/pattern_shader.go
	patternShaderCode []byte
	PatternShader     *eb.Shader
)

var (
	//go:embed assets/figure.json
	figureJson []byte
	FigureRig  *Rig
	// FigureClips are in the order they are played.
	FigureClips []*AnimationClip
)

//go:embed assets/scene.json
var defaultSceneConfigJson []byte

// LoadPatternShader compiles the embedded shader,
// or the one on disk when fromDisk is set.
func LoadPatternShader(fromDisk bool) (*eb.Shader, error) {
	code := patternShaderCode

	if fromDisk {
		var err error
		code, err = os.ReadFile(PatternShaderPath)
		if err != nil {
			return nil, err
		}
	}

	shader, err := eb.NewShader(code)
	if err != nil {
		return nil, fmt.Errorf("compiling pattern shader: %w", err)
	}

	return shader, nil
}

func LoadAssets() {
	timer := NewProfTimer("LoadAssets")
	defer timer.Report()

	var err error
	FigureRig, FigureClips, err = ParseRig(bytes.NewReader(figureJson))
	if err != nil {
		ErrorLogger.Fatalf("failed to load figure : %v", err)
	}
	InfoLogger.Printf("loaded figure: %d bones, %d clips", len(FigureRig.Bones), len(FigureClips))

	ReloadPatternShader()
}

// ReloadPatternShader keeps the previous shader if compiling fails.
// With no shader at all, CPU renderer takes over.
func ReloadPatternShader() {
	shader, err := LoadPatternShader(FlagHotReload)
	if err != nil {
		ErrorLogger.Printf("failed to load shader : %v", err)
		return
	}
	if PatternShader != nil {
		PatternShader.Deallocate()
	}
	PatternShader = shader
	InfoLogger.Print("pattern shader loaded")
}
