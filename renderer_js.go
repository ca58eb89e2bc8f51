package main

import (
	"errors"
	"fmt"

	"github.com/seqsense/mapviewer/dom"
	"github.com/seqsense/mapviewer/gl"
)

// renderer draws the map image as a textured quad under the view matrix.
type renderer struct {
	canvas dom.Element
	gl     *gl.WebGL

	program     webglProgram
	posBuf      gl.Buffer
	texCoordBuf gl.Buffer
	tex         gl.Texture

	hasMap bool
}

type webglProgram struct {
	program           gl.Program
	aPosition         int
	aTexCoord         int
	uViewMatrix, uMap gl.Location
}

func newRenderer(canvas dom.Element) (*renderer, error) {
	g, err := gl.New(canvas.JS())
	if err != nil {
		return nil, err
	}

	vs := g.CreateShader(g.VERTEX_SHADER)
	g.ShaderSource(vs, vsSource)
	g.CompileShader(vs)
	if !g.GetShaderParameter(vs, g.COMPILE_STATUS).(bool) {
		return nil, errors.New("compile failed (VERTEX_SHADER)")
	}
	fs := g.CreateShader(g.FRAGMENT_SHADER)
	g.ShaderSource(fs, fsSource)
	g.CompileShader(fs)
	if !g.GetShaderParameter(fs, g.COMPILE_STATUS).(bool) {
		return nil, errors.New("compile failed (FRAGMENT_SHADER)")
	}

	program := g.CreateProgram()
	g.AttachShader(program, vs)
	g.AttachShader(program, fs)
	g.LinkProgram(program)
	if !g.GetProgramParameter(program, g.LINK_STATUS).(bool) {
		return nil, fmt.Errorf("link failed: %s", g.GetProgramInfoLog(program))
	}

	r := &renderer{
		canvas: canvas,
		gl:     g,
		program: webglProgram{
			program:     program,
			aPosition:   g.GetAttribLocation(program, "aPosition"),
			aTexCoord:   g.GetAttribLocation(program, "aTexCoord"),
			uViewMatrix: g.GetUniformLocation(program, "uViewMatrix"),
			uMap:        g.GetUniformLocation(program, "uMap"),
		},
		posBuf:      g.CreateBuffer(),
		texCoordBuf: g.CreateBuffer(),
	}
	g.ClearColor(0.2, 0.2, 0.2, 1.0)
	return r, nil
}

// setMap uploads the map image and places its quad in world coordinates.
func (r *renderer) setMap(m *occupancyGrid, img mapImage) {
	g := r.gl

	x0, y0 := m.origin()
	w := float32(img.Width()) * m.Resolution
	h := float32(img.Height()) * m.Resolution

	// Texture row 0 is the top of the image, world y grows upward.
	pos := gl.Float32ArrayBuffer{
		x0, y0,
		x0 + w, y0,
		x0, y0 + h,
		x0 + w, y0 + h,
	}
	texCoord := gl.Float32ArrayBuffer{
		0, 1,
		1, 1,
		0, 0,
		1, 0,
	}
	g.BindBuffer(g.ARRAY_BUFFER, r.posBuf)
	g.BufferData(g.ARRAY_BUFFER, pos, g.STATIC_DRAW)
	g.BindBuffer(g.ARRAY_BUFFER, r.texCoordBuf)
	g.BufferData(g.ARRAY_BUFFER, texCoord, g.STATIC_DRAW)

	r.tex = g.CreateTexture()
	g.BindTexture(g.TEXTURE_2D, r.tex)
	g.TexImage2D(g.TEXTURE_2D, 0, g.RGBA, g.RGBA, g.UNSIGNED_BYTE, img.Interface())
	g.TexParameteri(g.TEXTURE_2D, g.TEXTURE_MIN_FILTER, g.LINEAR)
	g.TexParameteri(g.TEXTURE_2D, g.TEXTURE_MAG_FILTER, g.LINEAR)
	g.TexParameteri(g.TEXTURE_2D, g.TEXTURE_WRAP_S, g.CLAMP_TO_EDGE)
	g.TexParameteri(g.TEXTURE_2D, g.TEXTURE_WRAP_T, g.CLAMP_TO_EDGE)

	r.hasMap = true
}

func (r *renderer) render(v *view) {
	g := r.gl

	width, height := r.canvas.ClientWidth(), r.canvas.ClientHeight()
	if width != r.canvas.Width() || height != r.canvas.Height() {
		r.canvas.SetWidth(width)
		r.canvas.SetHeight(height)
		g.Viewport(0, 0, width, height)
	}
	v.setSize(width, height)

	g.Clear(g.COLOR_BUFFER_BIT)
	if !r.hasMap {
		return
	}

	g.UseProgram(r.program.program)

	g.BindBuffer(g.ARRAY_BUFFER, r.posBuf)
	g.VertexAttribPointer(r.program.aPosition, 2, g.FLOAT, false, 0, 0)
	g.EnableVertexAttribArray(r.program.aPosition)

	g.BindBuffer(g.ARRAY_BUFFER, r.texCoordBuf)
	g.VertexAttribPointer(r.program.aTexCoord, 2, g.FLOAT, false, 0, 0)
	g.EnableVertexAttribArray(r.program.aTexCoord)

	g.ActiveTexture(g.TEXTURE0)
	g.BindTexture(g.TEXTURE_2D, r.tex)
	g.Uniform1i(r.program.uMap, 0)

	g.UniformMatrix4fv(r.program.uViewMatrix, false, v.matrix())

	g.DrawArrays(g.TRIANGLE_STRIP, 0, 4)
}
