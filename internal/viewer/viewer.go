// Package viewer implements the interactive planet viewer loop.
package viewer

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/planetgen/internal/config"
	"github.com/Faultbox/planetgen/internal/engine/camera"
	"github.com/Faultbox/planetgen/internal/engine/debug"
	"github.com/Faultbox/planetgen/internal/engine/input"
	"github.com/Faultbox/planetgen/internal/engine/lighting"
	"github.com/Faultbox/planetgen/internal/engine/renderer"
	"github.com/Faultbox/planetgen/internal/engine/window"
	"github.com/Faultbox/planetgen/internal/planet"
)

const title = "Planetgen"

// Sun placement relative to the camera, in degrees.
const (
	sunOffset   = 35
	sunLatitude = 25
)

// Viewer renders the generator's current planet and regenerates on demand.
type Viewer struct {
	cfg      *config.Config
	log      *zap.Logger
	gen      *planet.Generator
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	camera   *camera.OrbitCamera
	shots    *debug.ScreenshotCapture

	running   bool
	wantShot  bool
	cancel    context.CancelFunc
	wg        sync.WaitGroup
	status    string
	lastTitle string
}

// New opens the window and GL context. gen is not started until Run.
func New(cfg *config.Config, gen *planet.Generator, log *zap.Logger) (*Viewer, error) {
	if log == nil {
		log = zap.NewNop()
	}
	v := &Viewer{
		cfg:    cfg,
		log:    log,
		gen:    gen,
		input:  input.New(),
		camera: camera.NewOrbitCamera(),
		shots:  debug.NewScreenshotCapture(cfg.Viewer.ScreenshotDir, "planet"),
	}

	var err error
	v.window, err = window.New(window.Config{
		Title:      title,
		Width:      cfg.Viewer.Width,
		Height:     cfg.Viewer.Height,
		Fullscreen: cfg.Viewer.Fullscreen,
		VSync:      cfg.Viewer.VSync,
	}, log.Named("window"))
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Renderer AFTER window, since the OpenGL context must exist
	width, height := v.window.Size()
	v.renderer, err = renderer.New(renderer.Config{
		Width:     width,
		Height:    height,
		Wireframe: cfg.Viewer.Wireframe,
	}, log.Named("renderer"))
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	return v, nil
}

// Run starts generation and the render loop. It returns when the window
// is closed or Esc is pressed.
func (v *Viewer) Run(ctx context.Context) error {
	ctx, v.cancel = context.WithCancel(ctx)
	defer v.cancel()

	v.regenerate(ctx)
	v.running = true

	var frameBudget time.Duration
	if v.cfg.Viewer.FPSLimit > 0 {
		frameBudget = time.Second / time.Duration(v.cfg.Viewer.FPSLimit)
	}

	v.log.Info("starting render loop")
	for v.running {
		frameStart := time.Now()

		if v.input.Update() {
			break
		}
		v.handleEvents(ctx)

		if ctx.Err() != nil {
			break
		}

		v.syncPlanet()
		v.updateTitle()
		v.render()
		if v.wantShot {
			v.screenshot()
			v.wantShot = false
		}
		v.window.SwapBuffers()

		if frameBudget > 0 {
			if left := frameBudget - time.Since(frameStart); left > 0 {
				time.Sleep(left)
			}
		}
	}

	return nil
}

// Close stops pending generation and releases window resources.
func (v *Viewer) Close() {
	v.log.Info("closing viewer")

	if v.cancel != nil {
		v.cancel()
	}
	v.wg.Wait()

	if v.renderer != nil {
		v.renderer.Close()
	}
	if v.window != nil {
		v.window.Close()
	}
}

func (v *Viewer) handleEvents(ctx context.Context) {
	for _, e := range v.input.Events() {
		switch e.Type {
		case input.EventWindowResize:
			w, h := v.window.Size()
			v.renderer.Resize(w, h)

		case input.EventMouseMove:
			if v.input.Dragging() {
				v.camera.HandleDrag(float32(e.DeltaX), float32(e.DeltaY))
			}

		case input.EventMouseWheel:
			v.camera.HandleZoom(e.Wheel)

		case input.EventKeyDown:
			switch e.Key {
			case sdl.SCANCODE_ESCAPE:
				v.running = false
			case sdl.SCANCODE_F5:
				cfg := v.gen.Config()
				cfg.Seed = rand.Int64()
				v.gen.Reconfigure(cfg)
				v.regenerate(ctx)
			case sdl.SCANCODE_F12:
				v.wantShot = true
			case sdl.SCANCODE_TAB:
				v.renderer.ToggleWireframe()
			}
		}
	}
}

// regenerate runs a generation pass off the render thread. Passes queue on
// the generator's mutex; the loop picks up whichever finishes last.
func (v *Viewer) regenerate(ctx context.Context) {
	seed := v.gen.Config().Seed
	v.log.Info("regenerating planet", zap.Int64("seed", seed))
	v.status = fmt.Sprintf("generating seed %d", seed)

	v.wg.Add(1)
	go func() {
		defer v.wg.Done()
		if _, err := v.gen.Generate(ctx); err != nil {
			v.log.Warn("generation failed", zap.Int64("seed", seed), zap.Error(err))
		}
	}()
}

// syncPlanet uploads a newly completed planet. GL calls stay on the main
// thread.
func (v *Viewer) syncPlanet() {
	p := v.gen.Current()
	if p == nil || p.Pass == v.renderer.Pass() {
		return
	}

	first := v.renderer.Pass() == 0
	v.renderer.Upload(p)
	if first {
		v.camera.FitToBounds(p.Bounds.Min, p.Bounds.Max)
	}
	v.status = fmt.Sprintf("seed %d, %d triangles", p.Config.Seed, p.TriangleCount())
}

func (v *Viewer) updateTitle() {
	state := v.gen.State()
	t := fmt.Sprintf("%s - %s", title, v.status)
	if state != planet.Ready {
		t = fmt.Sprintf("%s - %s", title, state)
	}
	if t != v.lastTitle {
		v.window.SetTitle(t)
		v.lastTitle = t
	}
}

func (v *Viewer) render() {
	v.renderer.Begin()

	w, h := v.renderer.Size()
	view := v.camera.ViewMatrix()
	proj := v.camera.ProjectionMatrix(w, h)

	// The sun follows the camera, offset so the terminator stays visible.
	lon := mgl32.RadToDeg(v.camera.Yaw) + sunOffset
	v.renderer.Draw(view, proj, lighting.LightDirection(lon, sunLatitude))
}

// screenshot reads the back buffer, so it must run before SwapBuffers.
func (v *Viewer) screenshot() {
	w, h := v.renderer.Size()
	path, err := v.shots.CaptureFromPixels(v.renderer.ReadPixels(), w, h)
	if err != nil {
		v.log.Error("screenshot failed", zap.Error(err))
		return
	}
	v.log.Info("screenshot saved", zap.String("path", path))
}
