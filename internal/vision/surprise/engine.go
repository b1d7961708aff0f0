package surprise

import (
	"fmt"

	"github.com/banshee-data/surprise.report/internal/monitoring"
	"github.com/banshee-data/surprise.report/internal/vision"
	"github.com/banshee-data/surprise.report/internal/vision/belief"
)

// Config holds the engine's two tunables. Both are validated at
// construction and by the runtime setters; an invalid value is rejected
// with a vision.ConfigError and the previous valid value stays in effect.
type Config struct {
	// UpdateFactor is the exponential forgetting weight in the open
	// interval (0,1). Values near 1 keep long memory (only persistent
	// change is surprising); values near 0 forget almost immediately.
	UpdateFactor float64
	// Channels selects the feature channels that participate, as a string
	// over the alphabet SCIOFMG. Duplicate letters are ignored.
	Channels string
}

// DefaultConfig returns the stock configuration: update factor 0.95, all
// channels selected.
func DefaultConfig() Config {
	return Config{UpdateFactor: 0.95, Channels: vision.DefaultChannelSpec}
}

// Engine computes one surprise scalar per video frame. It owns one belief
// surface per active channel and drives the per-pixel update/divergence
// pass on every Process call.
//
// Engine is not safe for concurrent use: Process mutates surfaces in place
// and a second call must not begin before the first returns.
type Engine struct {
	factor   float64
	channels vision.ChannelSet

	surfaces [vision.NumChannels]*belief.Surface
	agg      *Aggregator
	scratch  []float64

	frames     int64
	degenerate *monitoring.Counter
}

// NewEngine builds an engine from cfg. No belief surfaces are allocated
// until the first processed frame.
func NewEngine(cfg Config) (*Engine, error) {
	e := &Engine{
		agg:        NewAggregator(),
		degenerate: monitoring.NewCounter("surprise.degenerate_pixels"),
	}
	if err := e.SetUpdateFactor(cfg.UpdateFactor); err != nil {
		return nil, err
	}
	if err := e.SetChannels(cfg.Channels); err != nil {
		return nil, err
	}
	return e, nil
}

// UpdateFactor returns the current forgetting weight.
func (e *Engine) UpdateFactor() float64 { return e.factor }

// SetUpdateFactor validates and installs a new forgetting weight. Rejects
// values outside the open interval (0,1); on rejection the previous value
// remains in effect.
func (e *Engine) SetUpdateFactor(f float64) error {
	if !(f > 0 && f < 1) {
		return &vision.ConfigError{
			Param:  "updateFactor",
			Reason: fmt.Sprintf("%v outside open interval (0,1)", f),
		}
	}
	e.factor = f
	return nil
}

// Channels returns the active selection in canonical (deduplicated,
// first-occurrence order) spec form.
func (e *Engine) Channels() string { return e.channels.String() }

// ChannelSet returns the active selection as a parsed set.
func (e *Engine) ChannelSet() vision.ChannelSet { return e.channels }

// SetChannels validates and installs a new channel selection. Surfaces for
// channels that leave the selection are discarded; surfaces for channels
// that remain are untouched; newly added channels allocate lazily on the
// next frame (and so contribute zero surprise for that frame). On
// rejection the previous selection and all surfaces remain in effect.
func (e *Engine) SetChannels(spec string) error {
	set, err := vision.ParseChannels(spec)
	if err != nil {
		return err
	}
	for ch := vision.Channel(0); ch < vision.NumChannels; ch++ {
		if e.surfaces[ch] != nil && !set.Contains(ch) {
			e.surfaces[ch] = nil
		}
	}
	e.channels = set
	return nil
}

// Process runs one frame through the pipeline: invoke the borrowed
// extractor, update every active channel's belief surface, and return the
// aggregate surprise in wows (always >= 0).
//
// The extractor is always run once per frame regardless of the channel
// selection; only selected channels are consumed. If extraction fails or
// returns a malformed feature set, Process returns a vision.ExtractionError
// and belief state is untouched: the feature set is validated in full
// before any surface is mutated, so a failed frame never partially updates
// some channels and not others.
func (e *Engine) Process(ex vision.Extractor, frame vision.Frame) (float64, error) {
	if ex == nil {
		return 0, &vision.ExtractionError{Err: fmt.Errorf("extractor is nil")}
	}
	fs, err := ex.Extract(frame)
	if err != nil {
		return 0, &vision.ExtractionError{Err: err}
	}
	if err := fs.Validate(); err != nil {
		return 0, &vision.ExtractionError{Err: err}
	}

	w, h := fs.Width, fs.Height
	pixels := w * h
	if cap(e.scratch) < pixels {
		e.scratch = make([]float64, pixels)
	}
	div := e.scratch[:pixels]

	// A geometry change on any allocated surface resets belief wholesale:
	// hyperparameters learned at one resolution have no meaning at another.
	reset := false
	for _, ch := range e.channels {
		if s := e.surfaces[ch]; s != nil && !s.Matches(w, h) {
			reset = true
			break
		}
	}
	if reset {
		monitoring.Logf("[SurpriseEngine] Frame geometry changed to %dx%d; reinitializing %d belief surfaces", w, h, len(e.channels))
	}

	e.agg.Begin(pixels)
	clamped := 0
	for _, ch := range e.channels {
		m := fs.Map(ch)
		s := e.surfaces[ch]
		if reset || s == nil {
			s = belief.NewSurface(w, h)
			s.Initialize(m)
			e.surfaces[ch] = s
			e.agg.AccumulateZero(ch)
			continue
		}
		clamped += s.UpdateAndDiverge(m, e.factor, div)
		e.agg.Accumulate(ch, div)
	}
	if clamped > 0 {
		e.degenerate.Add(int64(clamped))
	}
	e.frames++

	return e.agg.FrameWows(), nil
}

// ChannelWows returns the most recent frame's per-channel contribution in
// wows. Diagnostic accessor; values are overwritten by the next Process
// call.
func (e *Engine) ChannelWows() map[vision.Channel]float64 {
	out := make(map[vision.Channel]float64, len(e.agg.Channels()))
	for _, ch := range e.agg.Channels() {
		out[ch] = e.agg.ChannelWows(ch)
	}
	return out
}

// FramesProcessed returns the number of successful Process calls.
func (e *Engine) FramesProcessed() int64 { return e.frames }

// DegeneratePixels returns the cumulative count of per-pixel divergence
// computations that hit a non-finite intermediate and were recovered by
// clamping. Shared across engines via the monitoring registry.
func (e *Engine) DegeneratePixels() int64 { return e.degenerate.Value() }

// Surface exposes one channel's belief surface for diagnostics and tests.
// Returns nil for unselected or not-yet-allocated channels.
func (e *Engine) Surface(ch vision.Channel) *belief.Surface {
	if ch < 0 || ch >= vision.NumChannels {
		return nil
	}
	return e.surfaces[ch]
}
