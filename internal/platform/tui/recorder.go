package tui

import (
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// Recorder collects the non-empty input frames of one run, keyed by the
// tick they were applied on, so the run can be replayed exactly.
type Recorder struct {
	events []storage.InputEvent
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Record stores frame as applied on tick. Empty frames are skipped.
func (r *Recorder) Record(tick uint64, frame core.InputFrame) {
	if frame.Empty() {
		return
	}
	r.events = append(r.events, storage.InputEvent{Tick: tick, Mask: frame.Mask()})
}

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []storage.InputEvent {
	return append([]storage.InputEvent(nil), r.events...)
}

// Len returns the number of recorded frames.
func (r *Recorder) Len() int {
	return len(r.events)
}

// Reset discards all recorded frames.
func (r *Recorder) Reset() {
	r.events = r.events[:0]
}

// Frames converts stored events back to input frames keyed by tick.
func Frames(events []storage.InputEvent) map[uint64]core.InputFrame {
	frames := make(map[uint64]core.InputFrame, len(events))
	for _, ev := range events {
		frames[ev.Tick] = core.FrameFromMask(ev.Mask)
	}
	return frames
}
