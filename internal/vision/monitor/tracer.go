// Package monitor records surprise values over a run and renders them as
// time-series plots for diagnostics and tuning. It plots the scalar wow
// trace per channel, never per-pixel surprise maps.
package monitor

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/banshee-data/surprise.report/internal/vision"
)

// TraceSample is one frame's recorded surprise.
type TraceSample struct {
	FrameIdx    int
	Timestamp   time.Time
	Wows        float64
	ChannelWows map[vision.Channel]float64
}

// SurpriseTracer accumulates per-frame wow values for a run. Safe for
// concurrent Record/Samples, though the engine itself is single-threaded;
// the lock exists so an operator can snapshot mid-run.
type SurpriseTracer struct {
	mu        sync.Mutex
	runID     string
	samples   []TraceSample
	startTime time.Time
	frameIdx  int
}

// NewSurpriseTracer creates a tracer with a fresh run ID.
func NewSurpriseTracer() *SurpriseTracer {
	return &SurpriseTracer{runID: uuid.NewString()}
}

// RunID returns the tracer's run identifier, used in output filenames.
func (t *SurpriseTracer) RunID() string { return t.runID }

// Record appends one frame's surprise values. perChannel may be nil; it is
// copied, not retained.
func (t *SurpriseTracer) Record(wows float64, perChannel map[vision.Channel]float64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := time.Now()
	if t.startTime.IsZero() {
		t.startTime = now
	}
	sample := TraceSample{
		FrameIdx:  t.frameIdx,
		Timestamp: now,
		Wows:      wows,
	}
	if perChannel != nil {
		sample.ChannelWows = make(map[vision.Channel]float64, len(perChannel))
		for ch, v := range perChannel {
			sample.ChannelWows[ch] = v
		}
	}
	t.samples = append(t.samples, sample)
	t.frameIdx++
}

// Samples returns a copy of the recorded samples.
func (t *SurpriseTracer) Samples() []TraceSample {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]TraceSample, len(t.samples))
	copy(out, t.samples)
	return out
}

// WritePlot renders the wow trace (total plus per-channel lines) to a PNG
// under outputDir and returns the file path.
func (t *SurpriseTracer) WritePlot(outputDir string) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(t.samples) == 0 {
		return "", fmt.Errorf("no samples recorded")
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output dir: %w", err)
	}

	p := plot.New()
	p.Title.Text = "Surprise Trace"
	p.X.Label.Text = "Frame"
	p.Y.Label.Text = "Surprise (wows)"

	totalPts := make(plotter.XYs, 0, len(t.samples))
	channelPts := map[vision.Channel]plotter.XYs{}
	for _, s := range t.samples {
		totalPts = append(totalPts, plotter.XY{X: float64(s.FrameIdx), Y: s.Wows})
		for ch, v := range s.ChannelWows {
			channelPts[ch] = append(channelPts[ch], plotter.XY{X: float64(s.FrameIdx), Y: v})
		}
	}

	totalLine, err := plotter.NewLine(totalPts)
	if err != nil {
		return "", err
	}
	totalLine.Width = vg.Points(2)
	totalLine.Color = color.RGBA{A: 255}
	p.Add(totalLine)
	p.Legend.Add("total", totalLine)

	palette := tracePalette(int(vision.NumChannels))
	for ch := vision.Channel(0); ch < vision.NumChannels; ch++ {
		pts, ok := channelPts[ch]
		if !ok || len(pts) == 0 {
			continue
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return "", err
		}
		line.Width = vg.Points(1)
		line.Color = palette[int(ch)]
		p.Add(line)
		p.Legend.Add(ch.String(), line)
	}

	file := filepath.Join(outputDir, fmt.Sprintf("surprise_trace_%s.png", t.runID))
	if err := p.Save(14*vg.Inch, 6*vg.Inch, file); err != nil {
		return "", fmt.Errorf("save trace plot: %w", err)
	}
	return file, nil
}

// tracePalette creates a palette of distinct colors for channel lines.
func tracePalette(n int) []color.Color {
	colors := make([]color.Color, n)
	for i := 0; i < n; i++ {
		hue := float64(i) / float64(n)
		r, g, b := hslToRGB(hue, 0.7, 0.5)
		colors[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return colors
}

// hslToRGB converts HSL color values to RGB bytes.
func hslToRGB(h, s, l float64) (uint8, uint8, uint8) {
	var r, g, b float64
	if s == 0 {
		r, g, b = l, l, l
	} else {
		var q float64
		if l < 0.5 {
			q = l * (1 + s)
		} else {
			q = l + s - l*s
		}
		p := 2*l - q
		r = hueToRGB(p, q, h+1.0/3.0)
		g = hueToRGB(p, q, h)
		b = hueToRGB(p, q, h-1.0/3.0)
	}
	return uint8(r * 255), uint8(g * 255), uint8(b * 255)
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6.0:
		return p + (q-p)*6*t
	case t < 1.0/2.0:
		return q
	case t < 2.0/3.0:
		return p + (q-p)*(2.0/3.0-t)*6
	default:
		return p
	}
}
