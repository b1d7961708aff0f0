package surprise

import (
	"github.com/banshee-data/surprise.report/internal/units"
	"github.com/banshee-data/surprise.report/internal/vision"
)

// Aggregator reduces the per-pixel divergence maps of one frame into a
// single scalar.
//
// Reduction, fixed and documented: per channel, divergences (nats) are
// summed over all pixels and normalized by the pixel count, giving that
// channel's mean per-pixel divergence; the frame value is the mean of the
// active channels' means, converted to wows (divide by ln 2). Using means
// on both axes keeps values comparable across resolutions and across
// configurations with different active-channel counts.
type Aggregator struct {
	pixels     int
	sumNats    map[vision.Channel]float64
	frameOrder vision.ChannelSet
}

// NewAggregator returns an empty aggregator. Begin must be called before
// accumulating each frame.
func NewAggregator() *Aggregator {
	return &Aggregator{sumNats: make(map[vision.Channel]float64)}
}

// Begin resets the aggregator for a new frame at the given pixel count.
func (a *Aggregator) Begin(pixels int) {
	a.pixels = pixels
	a.frameOrder = a.frameOrder[:0]
	for ch := range a.sumNats {
		delete(a.sumNats, ch)
	}
}

// Accumulate folds one channel's per-pixel divergence map (nats) into the
// frame. A channel accumulated twice in one frame overwrites its previous
// contribution.
func (a *Aggregator) Accumulate(ch vision.Channel, div []float64) {
	total := 0.0
	for _, d := range div {
		total += d
	}
	if _, seen := a.sumNats[ch]; !seen {
		a.frameOrder = append(a.frameOrder, ch)
	}
	a.sumNats[ch] = total
}

// AccumulateZero records a channel that contributed no divergence this
// frame (a freshly initialized surface). It still counts toward the
// channel mean so that reinitialization frames read as exactly zero rather
// than being skipped.
func (a *Aggregator) AccumulateZero(ch vision.Channel) {
	if _, seen := a.sumNats[ch]; !seen {
		a.frameOrder = append(a.frameOrder, ch)
	}
	a.sumNats[ch] = 0
}

// ChannelWows returns one channel's mean per-pixel divergence in wows for
// the current frame.
func (a *Aggregator) ChannelWows(ch vision.Channel) float64 {
	if a.pixels == 0 {
		return 0
	}
	return units.NatsToWows(a.sumNats[ch] / float64(a.pixels))
}

// FrameWows returns the frame scalar: mean over accumulated channels of the
// per-channel mean divergence, in wows. Always >= 0; zero when nothing was
// accumulated.
func (a *Aggregator) FrameWows() float64 {
	if a.pixels == 0 || len(a.frameOrder) == 0 {
		return 0
	}
	total := 0.0
	for _, ch := range a.frameOrder {
		total += a.sumNats[ch]
	}
	mean := total / float64(a.pixels) / float64(len(a.frameOrder))
	return units.NatsToWows(mean)
}

// Channels returns the channels accumulated for the current frame, in
// accumulation order.
func (a *Aggregator) Channels() vision.ChannelSet {
	return a.frameOrder
}
