// Package tui provides the Bubble Tea integration for the runner.
// It handles the terminal UI loop, input mapping and the frame driver.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent to trigger one simulation step. Gen identifies the
// driver run that scheduled it.
type FrameMsg struct {
	Gen  uint64
	Time time.Time
}

// frameGen numbers generations across every driver in the process. A game
// view replacing another in the same program never reuses a generation, so
// its predecessor's in-flight frames are dropped.
var frameGen atomic.Uint64

// FrameDriver schedules FrameMsgs at a fixed rate while a run is active.
// Every Start takes a new generation, so frames scheduled by an earlier run
// are recognized and dropped instead of doubling the loop.
type FrameDriver struct {
	gen      uint64
	running  bool
	interval time.Duration
}

// NewFrameDriver creates a stopped driver ticking at tickRate frames per
// second. Non-positive rates fall back to 60.
func NewFrameDriver(tickRate int) FrameDriver {
	if tickRate <= 0 {
		tickRate = 60
	}
	return FrameDriver{interval: time.Second / time.Duration(tickRate)}
}

// Start begins a new generation and returns the command for its first frame.
func (d *FrameDriver) Start() tea.Cmd {
	d.gen = frameGen.Add(1)
	d.running = true
	return d.tick()
}

// Stop ends the current generation. Frames already in flight are dropped
// by Accept.
func (d *FrameDriver) Stop() {
	if d.running {
		d.gen = frameGen.Add(1)
	}
	d.running = false
}

// Running reports whether frames are being scheduled.
func (d FrameDriver) Running() bool {
	return d.running
}

// Accept reports whether msg belongs to the live generation.
func (d FrameDriver) Accept(msg FrameMsg) bool {
	return d.running && msg.Gen == d.gen
}

// Next schedules the following frame of the live generation, or nothing
// when stopped.
func (d FrameDriver) Next() tea.Cmd {
	if !d.running {
		return nil
	}
	return d.tick()
}

func (d FrameDriver) tick() tea.Cmd {
	gen := d.gen
	return tea.Tick(d.interval, func(t time.Time) tea.Msg {
		return FrameMsg{Gen: gen, Time: t}
	})
}
