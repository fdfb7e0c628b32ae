package main

import (
	"fmt"
	"math"
	"time"

	eb "github.com/hajimehoshi/ebiten/v2"
)

var globalTimer time.Duration

func UpdateDelta() time.Duration {
	return time.Second / time.Duration(eb.TPS())
}

func UpdateGlobalTimer() {
	globalTimer += UpdateDelta()
}

func GlobalTimerNow() time.Duration {
	return globalTimer
}

// SceneClock is the elapsed time patterns and animations are driven by.
//
// It only moves forward.
type SceneClock struct {
	elapsed time.Duration
}

func (c *SceneClock) Tick(delta time.Duration) {
	if delta > 0 {
		c.elapsed += delta
	}
}

// Seconds is the value passed to the pattern shader.
func (c *SceneClock) Seconds() float64 {
	return c.elapsed.Seconds()
}

// MaxSeekSeconds is the largest time a SceneClock can hold.
const MaxSeekSeconds = float64(math.MaxInt64 / int64(time.Second))

// SeekForward jumps to t seconds.
// Clock is left alone if t is not a usable time or not ahead of the clock.
func (c *SceneClock) SeekForward(t float64) error {
	if math.IsNaN(t) || math.IsInf(t, 0) {
		return fmt.Errorf("can't seek to %v", t)
	}
	if t > MaxSeekSeconds {
		return fmt.Errorf("can't seek to %v, clock stops at %v seconds", t, MaxSeekSeconds)
	}
	target := time.Duration(t * float64(time.Second))
	if target <= c.elapsed {
		return fmt.Errorf("can't seek backward from %v to %v", c.Seconds(), t)
	}
	c.elapsed = target
	return nil
}

// Timer for profiling.
// Usage :
//
//	{
//		timer := NewProfTimer("some function")
//		defer timer.Report()
//		// reports some function took 10ms
//	}
type ProfTimer struct {
	Start time.Time
	Name  string
}

func NewProfTimer(name string) ProfTimer {
	return ProfTimer{
		Start: time.Now(),
		Name:  name,
	}
}

func (p ProfTimer) Report() {
	now := time.Now()
	InfoLogger.Printf("\"%v\" took %v\n", p.Name, now.Sub(p.Start))
}
