// SPDX-License-Identifier: Unlicense OR MIT

package stroke

import "github.com/openpointer/pointerevents/pointer"

// Settings configure a Recorder.
type Settings struct {
	// TimeoutMillis is how long a finished stroke is retained after its
	// last event before Update evicts it.
	TimeoutMillis uint64 `toml:"timeout_millis"`
}

// DefaultSettings returns the default recorder settings.
func DefaultSettings() Settings {
	return Settings{TimeoutMillis: 5000}
}

// A Recorder consumes pointer events and groups them into strokes per
// pointer id. It owns the strokes it creates: finished strokes are
// evicted by Update once they outlive the configured timeout, or all at
// once by Clear.
//
// A Recorder satisfies the dispatcher's listener bundle, so it can be
// registered directly for the four core pointer channels.
type Recorder struct {
	settings Settings
	strokes  map[uint64][]*Stroke
}

// NewRecorder returns a recorder with the given settings.
func NewRecorder(settings Settings) *Recorder {
	return &Recorder{
		settings: settings,
		strokes:  map[uint64][]*Stroke{},
	}
}

// Settings returns the recorder's settings.
func (r *Recorder) Settings() Settings {
	return r.settings
}

// Add routes an event into the open stroke for its pointer id. A down
// event with no open stroke starts a new one; other events with no open
// stroke are dropped.
func (r *Recorder) Add(e *pointer.Event) {
	bucket := r.strokes[e.PointerID]
	if n := len(bucket); n > 0 && !bucket[n-1].IsFinished() {
		bucket[n-1].Add(*e)
		return
	}
	if e.EventType() != pointer.Down {
		return
	}
	s := NewStroke()
	s.Add(*e)
	r.strokes[e.PointerID] = append(bucket, s)
}

// Update evicts finished strokes whose last event is older than the
// timeout. nowMicros is the caller's clock, usually the timestamp base
// of the event stream.
func (r *Recorder) Update(nowMicros uint64) {
	timeout := r.settings.TimeoutMillis * 1000
	for id, bucket := range r.strokes {
		kept := bucket[:0]
		for _, s := range bucket {
			if s.IsFinished() && s.MaxTimestampMicros()+timeout <= nowMicros {
				continue
			}
			kept = append(kept, s)
		}
		if len(kept) == 0 {
			delete(r.strokes, id)
			continue
		}
		r.strokes[id] = kept
	}
}

// Clear drops all strokes.
func (r *Recorder) Clear() {
	r.strokes = map[uint64][]*Stroke{}
}

// Strokes returns the live strokes keyed by pointer id. The map is
// owned by the recorder; callers must not modify it.
func (r *Recorder) Strokes() map[uint64][]*Stroke {
	return r.strokes
}

// PointerDown implements the dispatcher listener bundle.
func (r *Recorder) PointerDown(e *pointer.Event) { r.Add(e) }

// PointerUp implements the dispatcher listener bundle.
func (r *Recorder) PointerUp(e *pointer.Event) { r.Add(e) }

// PointerMove implements the dispatcher listener bundle.
func (r *Recorder) PointerMove(e *pointer.Event) { r.Add(e) }

// PointerCancel implements the dispatcher listener bundle.
func (r *Recorder) PointerCancel(e *pointer.Event) { r.Add(e) }
