// Package renderer draws generated planets with OpenGL.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/planetgen/internal/engine/shader"
	"github.com/Faultbox/planetgen/internal/planet"
)

// Config holds renderer configuration.
type Config struct {
	Width     int
	Height    int
	Wireframe bool
}

// Renderer owns the GL buffers of the planet currently on screen.
type Renderer struct {
	config  Config
	log     *zap.Logger
	program *shader.Program
	chunks  []chunkBuffers
	pass    uint64
}

type chunkBuffers struct {
	vao, vbo, ebo uint32
	count         int32
}

const vertexShaderSource = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;
layout (location = 2) in vec4 aColor;

uniform mat4 uView;
uniform mat4 uProjection;

out vec3 vNormal;
out vec4 vColor;

void main() {
	gl_Position = uProjection * uView * vec4(aPos, 1.0);
	vNormal = aNormal;
	vColor = aColor;
}
`

const fragmentShaderSource = `
#version 410 core

in vec3 vNormal;
in vec4 vColor;

uniform vec3 uLightDir;
uniform float uAmbient;

out vec4 FragColor;

void main() {
	float diffuse = max(dot(normalize(vNormal), -uLightDir), 0.0);
	FragColor = vec4(vColor.rgb * (uAmbient + (1.0 - uAmbient) * diffuse), vColor.a);
}
`

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config, log *zap.Logger) (*Renderer, error) {
	if log == nil {
		log = zap.NewNop()
	}
	r := &Renderer{
		config: cfg,
		log:    log,
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)
	gl.Enable(gl.MULTISAMPLE)
	gl.ClearColor(0.02, 0.02, 0.05, 1.0)

	var err error
	r.program, err = shader.New(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}
	r.log.Debug("shader program created", zap.Uint32("program", r.program.ID))

	r.Resize(cfg.Width, cfg.Height)
	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	r.release()
	if r.program != nil {
		r.program.Delete()
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Size returns the viewport size.
func (r *Renderer) Size() (int, int) {
	return r.config.Width, r.config.Height
}

// ToggleWireframe switches between filled and line rendering.
func (r *Renderer) ToggleWireframe() {
	r.config.Wireframe = !r.config.Wireframe
}

// Pass returns the generation pass currently uploaded, 0 if none.
func (r *Renderer) Pass() uint64 {
	return r.pass
}

// Upload replaces the GPU buffers with the chunks of p, one VAO per chunk.
func (r *Renderer) Upload(p *planet.Planet) {
	r.release()

	r.chunks = make([]chunkBuffers, 0, len(p.Chunks))
	for _, c := range p.Chunks {
		if len(c.Indices) == 0 {
			continue
		}
		data := interleave(c)

		var b chunkBuffers
		gl.GenVertexArrays(1, &b.vao)
		gl.BindVertexArray(b.vao)

		gl.GenBuffers(1, &b.vbo)
		gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
		gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, unsafe.Pointer(&data[0]), gl.STATIC_DRAW)

		gl.GenBuffers(1, &b.ebo)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(c.Indices)*4, unsafe.Pointer(&c.Indices[0]), gl.STATIC_DRAW)

		gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, vertexStride, positionOffset*4)
		gl.EnableVertexAttribArray(0)
		gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, vertexStride, normalOffset*4)
		gl.EnableVertexAttribArray(1)
		gl.VertexAttribPointerWithOffset(2, 4, gl.FLOAT, false, vertexStride, colorOffset*4)
		gl.EnableVertexAttribArray(2)

		gl.BindVertexArray(0)

		b.count = int32(len(c.Indices))
		r.chunks = append(r.chunks, b)
	}
	r.pass = p.Pass

	r.log.Debug("planet uploaded",
		zap.Uint64("pass", p.Pass),
		zap.Int("chunks", len(r.chunks)),
	)
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Draw renders every uploaded chunk. lightDir points from the light
// towards the planet.
func (r *Renderer) Draw(view, projection mgl32.Mat4, lightDir mgl32.Vec3) {
	if len(r.chunks) == 0 {
		return
	}

	if r.config.Wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
		defer gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}

	r.program.Use()
	r.program.SetMat4("uView", view)
	r.program.SetMat4("uProjection", projection)
	r.program.SetVec3("uLightDir", lightDir.Normalize())
	r.program.SetFloat("uAmbient", 0.15)

	for _, b := range r.chunks {
		gl.BindVertexArray(b.vao)
		gl.DrawElements(gl.TRIANGLES, b.count, gl.UNSIGNED_INT, nil)
	}
	gl.BindVertexArray(0)
}

// ReadPixels returns the back buffer as tightly packed RGBA rows, bottom
// row first.
func (r *Renderer) ReadPixels() []byte {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	if len(pixels) == 0 {
		return pixels
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&pixels[0]))
	return pixels
}

func (r *Renderer) release() {
	for i := range r.chunks {
		b := &r.chunks[i]
		gl.DeleteVertexArrays(1, &b.vao)
		gl.DeleteBuffers(1, &b.vbo)
		gl.DeleteBuffers(1, &b.ebo)
	}
	r.chunks = nil
	r.pass = 0
}
