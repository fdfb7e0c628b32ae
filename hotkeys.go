package main

import (
	eb "github.com/hajimehoshi/ebiten/v2"
)

const (
	ShowDebugConsoleKey eb.Key = eb.KeyF1
	ReloadShaderKey     eb.Key = eb.KeyF5

	CopyClockKey eb.Key = eb.KeyF6
	SeekClockKey eb.Key = eb.KeyF7

	NextStageKey     eb.Key = eb.KeyN
	ToggleCpuModeKey eb.Key = eb.KeyC

	ScreenshotKey eb.Key = eb.KeyP
)
