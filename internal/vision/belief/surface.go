package belief

import "math"

// HyperFloor is the smallest value either hyperparameter may take. Clamping
// to it keeps every per-pixel Gamma distribution proper when feature values
// are zero or the decayed evidence underflows.
const HyperFloor = 1e-6

// Surface is the belief grid for one feature channel: one Gamma(alpha, beta)
// rate belief per pixel, stored row-major at the resolution of the frames it
// was allocated for. Dimensions are immutable once allocated; the engine
// replaces the whole surface when frame geometry changes.
//
// Storage is float32 to bound memory at video resolutions; all per-pixel
// math runs in float64.
type Surface struct {
	Width  int
	Height int
	Alpha  []float32
	Beta   []float32
}

// NewSurface allocates an uninitialized surface for the given resolution.
// Call Initialize with the first observed feature map before updating.
func NewSurface(width, height int) *Surface {
	n := width * height
	return &Surface{
		Width:  width,
		Height: height,
		Alpha:  make([]float32, n),
		Beta:   make([]float32, n),
	}
}

// Matches reports whether the surface was allocated for the given
// resolution.
func (s *Surface) Matches(width, height int) bool {
	return s != nil && s.Width == width && s.Height == height
}

// Initialize seeds every pixel's belief from a first observation: the belief
// mean equals the observed value (alpha=v, beta=1), with the maximal
// uncertainty a single observation allows. A surface initialized this way
// contributes no divergence for the frame that seeded it, which is what
// makes the first frame after (re)allocation surprise-free by definition.
func (s *Surface) Initialize(m []float32) {
	for i := range s.Alpha {
		v := float64(m[i])
		if !(v > HyperFloor) || math.IsInf(v, 1) {
			v = HyperFloor
		}
		s.Alpha[i] = float32(v)
		s.Beta[i] = 1
	}
}

// UpdateAndDiverge folds one frame's feature map into the surface and writes
// the per-pixel posterior-vs-prior KL divergence (nats) into dst, which must
// have len Width*Height. For each pixel with observed value v the conjugate
// forgetting update is
//
//	alpha' = factor*alpha + v
//	beta'  = factor*beta + 1
//
// so a fraction `factor` of accumulated evidence survives and the new sample
// enters with unit weight. Returns the number of pixels whose divergence was
// non-finite and recovered by clamping; those pixels emit zero divergence
// and their hyperparameters are committed at the floor.
func (s *Surface) UpdateAndDiverge(m []float32, factor float64, dst []float64) int {
	degenerate := 0
	for i := range s.Alpha {
		a0 := float64(s.Alpha[i])
		b0 := float64(s.Beta[i])
		v := float64(m[i])
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 1) {
			v = 0
		}

		a1 := factor*a0 + v
		b1 := factor*b0 + 1
		if a1 < HyperFloor {
			a1 = HyperFloor
		}
		if b1 < HyperFloor {
			b1 = HyperFloor
		}

		d := gammaKL(a1, b1, a0, b0)
		if math.IsNaN(d) || math.IsInf(d, 0) {
			// Degenerate intermediate; recover locally and report nothing
			// surprising for this pixel.
			degenerate++
			d = 0
			if !(a1 > HyperFloor) || math.IsInf(a1, 0) {
				a1 = HyperFloor
			}
			if !(b1 > HyperFloor) || math.IsInf(b1, 0) {
				b1 = HyperFloor
			}
		} else if d < 0 {
			// Closed form can go fractionally negative from rounding when
			// prior and posterior nearly coincide.
			d = 0
		}

		s.Alpha[i] = float32(a1)
		s.Beta[i] = float32(b1)
		dst[i] = d
	}
	return degenerate
}

// Mean returns the belief mean alpha/beta at one pixel index. Diagnostic
// accessor used by tests and the trace tooling.
func (s *Surface) Mean(i int) float64 {
	return float64(s.Alpha[i]) / float64(s.Beta[i])
}
