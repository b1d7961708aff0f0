package features

import (
	"fmt"

	"github.com/banshee-data/surprise.report/internal/vision"
)

// Stub is a scripted extractor for tests and replay harnesses. Each
// Extract call pops the next queued feature set or error, in order. When
// the queue is exhausted the last entry repeats, which makes static-scene
// sequences trivial to script.
type Stub struct {
	queue []stubEntry
	calls int
}

type stubEntry struct {
	fs  *vision.FeatureSet
	err error
}

// NewStub returns an empty scripted extractor. Queue at least one entry
// before use.
func NewStub() *Stub { return &Stub{} }

// QueueSet appends a feature set to the script.
func (s *Stub) QueueSet(fs *vision.FeatureSet) *Stub {
	s.queue = append(s.queue, stubEntry{fs: fs})
	return s
}

// QueueError appends a failure to the script.
func (s *Stub) QueueError(err error) *Stub {
	s.queue = append(s.queue, stubEntry{err: err})
	return s
}

// Calls returns how many times Extract has been invoked.
func (s *Stub) Calls() int { return s.calls }

// Extract pops the next scripted entry. The frame argument is ignored
// beyond satisfying the interface.
func (s *Stub) Extract(_ vision.Frame) (*vision.FeatureSet, error) {
	if len(s.queue) == 0 {
		return nil, fmt.Errorf("stub extractor: empty script")
	}
	idx := s.calls
	if idx >= len(s.queue) {
		idx = len(s.queue) - 1
	}
	s.calls++
	entry := s.queue[idx]
	return entry.fs, entry.err
}

// UniformSet builds a feature set with every channel map filled with the
// same value. Handy for static-scene scripts.
func UniformSet(width, height int, value float32) *vision.FeatureSet {
	fs := vision.NewFeatureSet(width, height)
	for ch := range fs.Maps {
		for i := range fs.Maps[ch] {
			fs.Maps[ch][i] = value
		}
	}
	return fs
}

// PatchSet builds a uniform feature set with a rectangular patch of a
// different value on every channel. Used to script abrupt localized
// changes.
func PatchSet(width, height int, base, patch float32, px, py, pw, ph int) *vision.FeatureSet {
	fs := UniformSet(width, height, base)
	for ch := range fs.Maps {
		m := fs.Maps[ch]
		for y := py; y < py+ph && y < height; y++ {
			for x := px; x < px+pw && x < width; x++ {
				m[y*width+x] = patch
			}
		}
	}
	return fs
}
