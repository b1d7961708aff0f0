package monitor

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/surprise.report/internal/vision"
)

func TestSurpriseTracer_RecordAndSamples(t *testing.T) {
	t.Parallel()

	tr := NewSurpriseTracer()
	require.NotEmpty(t, tr.RunID())

	tr.Record(0, nil)
	tr.Record(0.25, map[vision.Channel]float64{vision.Intensity: 0.5})
	tr.Record(0.1, map[vision.Channel]float64{vision.Intensity: 0.2})

	samples := tr.Samples()
	require.Len(t, samples, 3)
	assert.Equal(t, 0, samples[0].FrameIdx)
	assert.Equal(t, 2, samples[2].FrameIdx)
	assert.Equal(t, 0.25, samples[1].Wows)
	assert.Equal(t, 0.5, samples[1].ChannelWows[vision.Intensity])
	assert.Nil(t, samples[0].ChannelWows)
}

func TestSurpriseTracer_RecordCopiesChannelMap(t *testing.T) {
	t.Parallel()

	tr := NewSurpriseTracer()
	perChannel := map[vision.Channel]float64{vision.Motion: 1.0}
	tr.Record(1.0, perChannel)
	perChannel[vision.Motion] = 99

	assert.Equal(t, 1.0, tr.Samples()[0].ChannelWows[vision.Motion],
		"tracer must copy the per-channel map, not retain it")
}

func TestSurpriseTracer_WritePlot(t *testing.T) {
	t.Parallel()

	tr := NewSurpriseTracer()
	for i := 0; i < 20; i++ {
		wows := 0.01 * float64(i%5)
		tr.Record(wows, map[vision.Channel]float64{
			vision.Intensity: wows * 0.5,
			vision.Flicker:   wows * 0.3,
		})
	}

	dir := t.TempDir()
	file, err := tr.WritePlot(dir)
	require.NoError(t, err)

	info, err := os.Stat(file)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0), "plot file should not be empty")
	assert.Contains(t, file, tr.RunID())
}

func TestSurpriseTracer_WritePlotWithoutSamplesFails(t *testing.T) {
	t.Parallel()

	tr := NewSurpriseTracer()
	_, err := tr.WritePlot(t.TempDir())
	require.Error(t, err)
}
