// planetgen generates a planet mesh headlessly and prints mesh statistics.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/planetgen/internal/config"
	"github.com/Faultbox/planetgen/internal/logger"
	"github.com/Faultbox/planetgen/internal/planet"
	"github.com/Faultbox/planetgen/internal/terrain"
)

var (
	flagWeld       = flag.Bool("weld", false, "Weld seam vertices and report unique vertex count")
	flagSaveConfig = flag.String("save-config", "", "Write the effective config to this path and exit")
	flagTimeout    = flag.Duration("timeout", 0, "Abort generation after this duration (0 = no limit)")
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if *flagSaveConfig != "" {
		if err := cfg.SaveTo(*flagSaveConfig); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Config written to %s\n", *flagSaveConfig)
		return
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg); err != nil {
		logger.Error("generation failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	pc, err := cfg.PlanetConfig()
	if err != nil {
		return err
	}
	mapper, err := cfg.Palette()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if *flagTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *flagTimeout)
		defer cancel()
	}

	gen := planet.New(pc,
		planet.WithLogger(logger.Named("planet")),
		planet.WithMapper(mapper),
	)

	start := time.Now()
	p, err := gen.Generate(ctx)
	if err != nil {
		return err
	}
	printStats(p, time.Since(start))
	return nil
}

func printStats(p *planet.Planet, took time.Duration) {
	c := p.Config
	fmt.Printf("Planet (pass %d)\n", p.Pass)
	fmt.Printf("  Kernel:      %s (seed %d)\n", c.Kernel, c.Seed)
	fmt.Printf("  Resolution:  %d\n", c.Resolution())
	fmt.Printf("  Face count:  %d\n", c.FaceCount())
	fmt.Printf("  Layers:      %d\n", len(c.NoiseSettings()))
	fmt.Printf("  Chunks:      %d\n", len(p.Chunks))
	fmt.Printf("  Vertices:    %d\n", p.VertexCount())
	fmt.Printf("  Triangles:   %d\n", p.TriangleCount())
	fmt.Printf("  Elevation:   [%.4f, %.4f]\n", p.Range.Min, p.Range.Max)
	fmt.Printf("  Bounds:      %v - %v\n", p.Bounds.Min, p.Bounds.Max)
	fmt.Printf("  Took:        %v\n", took.Round(time.Millisecond))

	if *flagWeld {
		mesh := p.Weld(terrain.DefaultWeldEpsilon)
		fmt.Printf("  Welded:      %d vertices, %d triangles\n", len(mesh.Vertices), len(mesh.Indices)/3)
	}
}
