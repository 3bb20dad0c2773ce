// Package planet orchestrates cube-sphere planet generation: it builds the
// noise stack, generates every chunk in parallel, folds the elevation range
// and colors the result.
package planet

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/Faultbox/planetgen/internal/colormap"
	"github.com/Faultbox/planetgen/internal/noise"
	"github.com/Faultbox/planetgen/internal/terrain"
)

// Planet is the immutable output of one generation pass.
type Planet struct {
	Pass   uint64
	Config Config
	Chunks []*terrain.Chunk
	Range  terrain.MinMax
	Bounds terrain.Bounds
}

// VertexCount returns the number of vertices over all chunks.
func (p *Planet) VertexCount() int {
	n := 0
	for _, c := range p.Chunks {
		n += len(c.Vertices)
	}
	return n
}

// TriangleCount returns the number of triangles over all chunks.
func (p *Planet) TriangleCount() int {
	n := 0
	for _, c := range p.Chunks {
		n += c.TriangleCount()
	}
	return n
}

// Weld merges all chunks into one mesh with shared seam vertices.
func (p *Planet) Weld(epsilon float32) *terrain.Mesh {
	return terrain.Weld(p.Chunks, epsilon)
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.log = l
		}
	}
}

// WithKernel overrides the kernel otherwise built from Config.Kernel.
func WithKernel(k noise.Kernel) Option {
	return func(g *Generator) {
		g.kernel = k
	}
}

// WithMapper sets the elevation color mapper.
func WithMapper(m *colormap.Mapper) Option {
	return func(g *Generator) {
		if m != nil {
			g.mapper = m
		}
	}
}

// WithStateHook registers fn to be called on every state transition. fn
// runs synchronously on the goroutine driving the pass. It may call State,
// Current, Config and Reconfigure; calling Generate from fn deadlocks.
func WithStateHook(fn func(from, to State)) Option {
	return func(g *Generator) {
		g.hook = fn
	}
}

// Generator runs generation passes. Passes are serialized; the last
// successful Planet stays readable through Current until the next pass
// completes and replaces it.
type Generator struct {
	mu        sync.Mutex // serializes passes
	passes    uint64
	elevation *terrain.ElevationRange

	cfgMu sync.Mutex
	cfg   Config

	kernel noise.Kernel
	mapper *colormap.Mapper
	log    *zap.Logger
	hook   func(from, to State)

	state   atomic.Int32
	current atomic.Pointer[Planet]
}

// New returns a generator in the Uninitialized state.
func New(cfg Config, opts ...Option) *Generator {
	g := &Generator{
		cfg:       cfg.clone(),
		elevation: terrain.NewElevationRange(),
		mapper:    colormap.DefaultMapper(),
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// State returns the current lifecycle stage.
func (g *Generator) State() State {
	return State(g.state.Load())
}

// Current returns the last completed planet, or nil.
func (g *Generator) Current() *Planet {
	return g.current.Load()
}

// Config returns a copy of the configuration used by the next pass.
func (g *Generator) Config() Config {
	g.cfgMu.Lock()
	defer g.cfgMu.Unlock()
	return g.cfg.clone()
}

// Reconfigure replaces the configuration. A running pass keeps the
// configuration it started with; the change applies from the next pass.
func (g *Generator) Reconfigure(cfg Config) {
	cfg = cfg.clone()
	g.cfgMu.Lock()
	g.cfg = cfg
	g.cfgMu.Unlock()
}

// Generate runs a full pass. On error or cancellation the previous planet
// is left untouched and returned by Current.
func (g *Generator) Generate(ctx context.Context) (*Planet, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	start := time.Now()
	p, err := g.generate(ctx)
	if err != nil {
		if g.current.Load() != nil {
			g.setState(Ready)
		} else {
			g.setState(Uninitialized)
		}
		g.log.Warn("generation pass failed", zap.Uint64("pass", g.passes), zap.Error(err))
		return nil, err
	}

	g.current.Store(p)
	g.setState(Ready)

	g.log.Info("planet generated",
		zap.Uint64("pass", p.Pass),
		zap.Int("chunks", len(p.Chunks)),
		zap.Int("vertices", p.VertexCount()),
		zap.Int("triangles", p.TriangleCount()),
		zap.Float32("min_elevation", p.Range.Min),
		zap.Float32("max_elevation", p.Range.Max),
		zap.Duration("took", time.Since(start)),
	)
	return p, nil
}

func (g *Generator) generate(ctx context.Context) (*Planet, error) {
	g.passes++
	pass := g.passes

	g.setState(Initializing)
	cfg := g.Config()
	if cfg.Radius <= 0 {
		cfg.Radius = 1
	}

	kernel := g.kernel
	if kernel == nil {
		k, err := noise.NewKernel(cfg.Kernel, cfg.Seed)
		if err != nil {
			return nil, fmt.Errorf("initializing noise: %w", err)
		}
		kernel = k
	}
	settings := cfg.NoiseSettings()
	stack := noise.NewStack(kernel, settings, cfg.UseFirstLayerAsMask)
	descs := terrain.Descriptors(cfg.FaceCount())
	g.elevation.Clear()

	g.log.Debug("pass initialized",
		zap.Uint64("pass", pass),
		zap.Int("resolution", cfg.Resolution()),
		zap.Int("face_count", cfg.FaceCount()),
		zap.Int("layers", len(settings)),
		zap.Int("chunks", len(descs)),
		zap.Int("workers", cfg.workers()),
	)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pool := pond.NewResultPool[*terrain.Chunk](cfg.workers(), pond.WithContext(ctx))
	defer pool.StopAndWait()

	g.setState(Generating)
	opts := terrain.BuildOptions{
		Resolution: cfg.Resolution(),
		FaceCount:  cfg.FaceCount(),
		Radius:     cfg.Radius,
		Elevation:  stack.Evaluate,
	}
	built := pool.NewGroup()
	for _, d := range descs {
		built.SubmitErr(func() (*terrain.Chunk, error) {
			c, err := terrain.BuildChunk(d, opts)
			if err != nil {
				return nil, fmt.Errorf("chunk %s: %w", d, err)
			}
			return c, nil
		})
	}
	chunks, err := built.Wait()
	if err != nil {
		return nil, fmt.Errorf("generating chunks: %w", err)
	}

	// Every chunk has finished: fold local ranges into the pass range.
	bounds := chunks[0].Bounds
	for _, c := range chunks {
		g.elevation.ObserveRange(c.Range)
		bounds = bounds.Union(c.Bounds)
	}
	terrain.SmoothSeams(chunks, terrain.DefaultWeldEpsilon)
	rng := g.elevation.MinMax()

	g.setState(Coloring)
	colored := pool.NewGroup()
	for _, c := range chunks {
		colored.Submit(func() *terrain.Chunk {
			g.mapper.ColorChunk(c, cfg.SeaLevel, rng)
			return c
		})
	}
	if _, err := colored.Wait(); err != nil {
		return nil, fmt.Errorf("coloring chunks: %w", err)
	}

	return &Planet{
		Pass:   pass,
		Config: cfg,
		Chunks: chunks,
		Range:  rng,
		Bounds: bounds,
	}, nil
}

func (g *Generator) setState(s State) {
	prev := State(g.state.Swap(int32(s)))
	if prev == s {
		return
	}
	g.log.Debug("state changed", zap.Stringer("from", prev), zap.Stringer("to", s))
	if g.hook != nil {
		g.hook(prev, s)
	}
}
