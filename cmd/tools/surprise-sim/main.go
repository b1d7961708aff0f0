// Command surprise-sim runs the surprise engine over a synthetic frame
// sequence: a static scene with an abrupt localized bright patch partway
// through. It logs per-frame wows and can write a trace plot for tuning
// the update factor and channel selection.
package main

import (
	"flag"
	"log"

	"github.com/banshee-data/surprise.report/internal/config"
	"github.com/banshee-data/surprise.report/internal/version"
	"github.com/banshee-data/surprise.report/internal/vision"
	"github.com/banshee-data/surprise.report/internal/vision/features"
	"github.com/banshee-data/surprise.report/internal/vision/monitor"
	"github.com/banshee-data/surprise.report/internal/vision/surprise"
)

func main() {
	configPath := flag.String("config", "", "optional JSON tuning config path")
	factor := flag.Float64("factor", 0, "update factor in (0,1); overrides config")
	channels := flag.String("channels", "", "channel spec over SCIOFMG; overrides config")
	frames := flag.Int("frames", 0, "number of frames; overrides config")
	plotDir := flag.String("plot-dir", "", "write a surprise trace plot to this directory")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		log.Printf("surprise-sim %s", version.String())
		return
	}

	cfg := config.EmptyTuningConfig()
	if *configPath != "" {
		loaded, err := config.LoadTuningConfig(*configPath)
		if err != nil {
			log.Fatalf("config: %v", err)
		}
		cfg = loaded
	}

	engineCfg := surprise.Config{
		UpdateFactor: cfg.GetUpdateFactor(),
		Channels:     cfg.GetChannels(),
	}
	if *factor != 0 {
		engineCfg.UpdateFactor = *factor
	}
	if *channels != "" {
		engineCfg.Channels = *channels
	}

	engine, err := surprise.NewEngine(engineCfg)
	if err != nil {
		log.Fatalf("engine: %v", err)
	}

	nFrames := cfg.GetSimFrames()
	if *frames > 0 {
		nFrames = *frames
	}
	width := cfg.GetSimWidth()
	height := cfg.GetSimHeight()
	patchFrame := cfg.GetSimPatchFrame()
	if patchFrame >= nFrames {
		patchFrame = nFrames / 2
	}

	outDir := cfg.GetTraceOutputDir()
	if *plotDir != "" {
		outDir = *plotDir
	}

	tracer := monitor.NewSurpriseTracer()
	extractor := features.NewSynthetic()

	log.Printf("[surprise-sim] run=%s frames=%d size=%dx%d factor=%.3f channels=%s patch_frame=%d",
		tracer.RunID(), nFrames, width, height, engine.UpdateFactor(), engine.Channels(), patchFrame)

	for i := 0; i < nFrames; i++ {
		frame := makeFrame(width, height, i == patchFrame)
		wows, err := engine.Process(extractor, frame)
		if err != nil {
			log.Fatalf("frame %d: %v", i, err)
		}
		tracer.Record(wows, engine.ChannelWows())
		log.Printf("[surprise-sim] frame=%03d wows=%.6f", i, wows)
	}

	log.Printf("[surprise-sim] done: frames=%d degenerate_pixels=%d",
		engine.FramesProcessed(), engine.DegeneratePixels())

	if outDir != "" {
		file, err := tracer.WritePlot(outDir)
		if err != nil {
			log.Fatalf("trace plot: %v", err)
		}
		log.Printf("✓ Created: %s", file)
	}
}

// makeFrame builds a mid-gray frame; withPatch brightens a centered
// rectangle covering roughly 1/16 of the frame.
func makeFrame(width, height int, withPatch bool) vision.Frame {
	pixels := make([]uint8, width*height)
	for i := range pixels {
		pixels[i] = 96
	}
	if withPatch {
		pw, ph := width/4, height/4
		px, py := (width-pw)/2, (height-ph)/2
		for y := py; y < py+ph; y++ {
			for x := px; x < px+pw; x++ {
				pixels[y*width+x] = 240
			}
		}
	}
	return vision.Frame{Width: width, Height: height, Pixels: pixels}
}
