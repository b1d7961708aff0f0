package vision

import "fmt"

// Frame is one raw video frame as handed to the feature extractor. Pixels is
// row-major luma, len = Width*Height. The surprise core never reads Pixels
// itself; it only forwards the frame to the extractor and consumes the
// resulting feature maps.
type Frame struct {
	Width  int
	Height int
	Pixels []uint8
}

// Validate checks basic frame geometry before the frame is handed to an
// extractor.
func (f Frame) Validate() error {
	if f.Width <= 0 || f.Height <= 0 {
		return fmt.Errorf("frame dimensions %dx%d invalid", f.Width, f.Height)
	}
	if len(f.Pixels) != f.Width*f.Height {
		return fmt.Errorf("frame pixel buffer len %d, want %d", len(f.Pixels), f.Width*f.Height)
	}
	return nil
}

// FeatureSet holds one real-valued conspicuity map per channel in the
// alphabet, all sharing the same resolution. Maps are row-major, indexed by
// Channel. Extractors always populate every channel; the engine consumes
// only the selected ones.
type FeatureSet struct {
	Width  int
	Height int
	Maps   [NumChannels][]float32
}

// NewFeatureSet allocates a FeatureSet with all channel maps sized for the
// given resolution.
func NewFeatureSet(width, height int) *FeatureSet {
	fs := &FeatureSet{Width: width, Height: height}
	for i := range fs.Maps {
		fs.Maps[i] = make([]float32, width*height)
	}
	return fs
}

// Map returns the feature map for one channel.
func (fs *FeatureSet) Map(ch Channel) []float32 { return fs.Maps[ch] }

// Validate checks that every channel map is present and matches the declared
// resolution. The engine calls this before touching any belief surface so a
// malformed set can never partially update state.
func (fs *FeatureSet) Validate() error {
	if fs == nil {
		return fmt.Errorf("feature set is nil")
	}
	if fs.Width <= 0 || fs.Height <= 0 {
		return fmt.Errorf("feature set dimensions %dx%d invalid", fs.Width, fs.Height)
	}
	want := fs.Width * fs.Height
	for ch := Channel(0); ch < NumChannels; ch++ {
		if len(fs.Maps[ch]) != want {
			return fmt.Errorf("channel %s map len %d, want %d", ch, len(fs.Maps[ch]), want)
		}
	}
	return nil
}

// Extractor is the borrowed feature-extraction collaborator. It is invoked
// once per processed frame and must return one map per alphabet channel, all
// at the same resolution. The surprise core treats the returned maps as
// read-only and retains no reference to them across calls.
type Extractor interface {
	Extract(f Frame) (*FeatureSet, error)
}
