package features

import (
	"fmt"

	"github.com/banshee-data/surprise.report/internal/vision"
)

// Synthetic derives all seven feature channels from the luma plane of the
// incoming frame. Flicker and motion are frame-differencing channels, so
// the extractor keeps the previous frame's luma; that state belongs to the
// extractor, not to the surprise core, which only borrows the extractor
// per call.
type Synthetic struct {
	prevW, prevH int
	prev         []float32
}

// NewSynthetic returns an extractor with no frame history.
func NewSynthetic() *Synthetic { return &Synthetic{} }

// Extract computes one map per channel from the frame's luma plane. Values
// are in [0,1]. Fails on malformed frames; the engine propagates that as an
// extraction failure without touching belief state.
func (x *Synthetic) Extract(f vision.Frame) (*vision.FeatureSet, error) {
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("synthetic extractor: %w", err)
	}
	w, h := f.Width, f.Height
	n := w * h

	luma := make([]float32, n)
	var mean float32
	for i, p := range f.Pixels {
		v := float32(p) / 255
		luma[i] = v
		mean += v
	}
	mean /= float32(n)

	// Resolution changes invalidate frame-differencing history.
	havePrev := x.prev != nil && x.prevW == w && x.prevH == h

	fs := vision.NewFeatureSet(w, h)
	intensity := fs.Map(vision.Intensity)
	colorMap := fs.Map(vision.Color)
	orient := fs.Map(vision.Orientation)
	flicker := fs.Map(vision.Flicker)
	motion := fs.Map(vision.Motion)
	sal := fs.Map(vision.Saliency)
	gist := fs.Map(vision.Gist)

	for y := 0; y < h; y++ {
		for x0 := 0; x0 < w; x0++ {
			i := y*w + x0
			v := luma[i]

			intensity[i] = v
			colorMap[i] = abs32(v - mean)

			// Horizontal gradient magnitude as the orientation proxy.
			if x0+1 < w {
				orient[i] = abs32(luma[i+1] - v)
			}

			if havePrev {
				flicker[i] = abs32(v - x.prev[i])
				// Motion proxy: temporal difference against the previous
				// frame shifted one pixel, so lateral movement registers
				// where pure flicker does not.
				if x0 > 0 {
					motion[i] = abs32(v - x.prev[i-1])
				}
			}

			gist[i] = mean
		}
	}
	for i := range sal {
		sal[i] = (intensity[i] + colorMap[i] + orient[i] + flicker[i] + motion[i]) / 5
	}

	x.prev = luma
	x.prevW, x.prevH = w, h
	return fs, nil
}

// Reset drops the frame-differencing history.
func (x *Synthetic) Reset() {
	x.prev = nil
	x.prevW, x.prevH = 0, 0
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
