package viewcube

import (
	"errors"
	"syscall/js"

	webgl "github.com/seqsense/webgl-go"
)

var errContextLost = errors.New("WebGL context lost")

// WebGLRenderer draws the gizmo faces on its own canvas with a
// transparent background.
type WebGLRenderer struct {
	canvas  js.Value
	gl      *webgl.WebGL
	program webgl.Program

	uProjectionMatrix webgl.Location
	uModelViewMatrix  webgl.Location

	triBuf, lineBuf       webgl.Buffer
	nTriVerts, nLineVerts int

	uploaded bool
	hover    ViewCommand
	hoverOK  bool
}

func NewWebGLRenderer(canvas js.Value) (*WebGLRenderer, error) {
	gl, err := webgl.New(canvas)
	if err != nil {
		return nil, err
	}
	vs, err := initVertexShader(gl, vsSource)
	if err != nil {
		return nil, err
	}
	fs, err := initFragmentShader(gl, fsSource)
	if err != nil {
		return nil, err
	}
	program, err := linkShaders(gl, vs, fs)
	if err != nil {
		return nil, err
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	gl.ClearColor(0.0, 0.0, 0.0, 0.0)

	return &WebGLRenderer{
		canvas:            canvas,
		gl:                gl,
		program:           program,
		uProjectionMatrix: gl.GetUniformLocation(program, "uProjectionMatrix"),
		uModelViewMatrix:  gl.GetUniformLocation(program, "uModelViewMatrix"),
		triBuf:            gl.CreateBuffer(),
		lineBuf:           gl.CreateBuffer(),
	}, nil
}

// DrawFaces renders one gizmo frame. The vertex buffers are rebuilt only
// when the hover state changes; the face geometry itself never does.
func (r *WebGLRenderer) DrawFaces(cam *Camera, faces []PickableFace, hover ViewCommand, hoverOK bool) {
	gl := r.gl
	if !r.uploaded || hover != r.hover || hoverOK != r.hoverOK {
		tris, lines := faceVertexData(faces, hover, hoverOK)
		r.nTriVerts = len(tris) / 6
		r.nLineVerts = len(lines) / 6
		gl.BindBuffer(gl.ARRAY_BUFFER, r.triBuf)
		gl.BufferData(gl.ARRAY_BUFFER, webgl.Float32ArrayBuffer(tris), gl.STATIC_DRAW)
		gl.BindBuffer(gl.ARRAY_BUFFER, r.lineBuf)
		gl.BufferData(gl.ARRAY_BUFFER, webgl.Float32ArrayBuffer(lines), gl.STATIC_DRAW)
		r.uploaded, r.hover, r.hoverOK = true, hover, hoverOK
	}

	projection := cam.ProjectionMatrix()
	modelView := cam.ViewMatrix()

	gl.UseProgram(r.program)
	gl.Viewport(0, 0, r.canvas.Get("width").Int(), r.canvas.Get("height").Int())
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.UniformMatrix4fv(r.uProjectionMatrix, false, projection)
	gl.UniformMatrix4fv(r.uModelViewMatrix, false, modelView)

	const (
		aVertexPosition = 0
		aVertexColor    = 1
		stride          = 6 * 4
	)
	gl.EnableVertexAttribArray(aVertexPosition)
	gl.EnableVertexAttribArray(aVertexColor)

	gl.BindBuffer(gl.ARRAY_BUFFER, r.triBuf)
	gl.VertexAttribPointer(aVertexPosition, 3, gl.FLOAT, false, stride, 0)
	gl.VertexAttribPointer(aVertexColor, 3, gl.FLOAT, false, stride, 3*4)
	gl.DrawArrays(gl.TRIANGLES, 0, r.nTriVerts)

	gl.BindBuffer(gl.ARRAY_BUFFER, r.lineBuf)
	gl.VertexAttribPointer(aVertexPosition, 3, gl.FLOAT, false, stride, 0)
	gl.VertexAttribPointer(aVertexColor, 3, gl.FLOAT, false, stride, 3*4)
	gl.DrawArrays(gl.LINES, 0, r.nLineVerts)
}

func initVertexShader(gl *webgl.WebGL, src string) (webgl.Shader, error) {
	s := gl.CreateShader(gl.VERTEX_SHADER)
	gl.ShaderSource(s, src)
	gl.CompileShader(s)
	if !gl.GetShaderParameter(s, gl.COMPILE_STATUS).(bool) {
		if gl.IsContextLost() {
			return webgl.Shader(js.Null()), errContextLost
		}
		return webgl.Shader(js.Null()), errors.New("compile failed (VERTEX_SHADER)")
	}
	return s, nil
}

func initFragmentShader(gl *webgl.WebGL, src string) (webgl.Shader, error) {
	s := gl.CreateShader(gl.FRAGMENT_SHADER)
	gl.ShaderSource(s, src)
	gl.CompileShader(s)
	if !gl.GetShaderParameter(s, gl.COMPILE_STATUS).(bool) {
		if gl.IsContextLost() {
			return webgl.Shader(js.Null()), errContextLost
		}
		return webgl.Shader(js.Null()), errors.New("compile failed (FRAGMENT_SHADER)")
	}
	return s, nil
}

func linkShaders(gl *webgl.WebGL, shaders ...webgl.Shader) (webgl.Program, error) {
	program := gl.CreateProgram()
	for _, s := range shaders {
		gl.AttachShader(program, s)
	}
	gl.LinkProgram(program)
	if !gl.GetProgramParameter(program, gl.LINK_STATUS).(bool) {
		if gl.IsContextLost() {
			return webgl.Program(js.Null()), errContextLost
		}
		return webgl.Program(js.Null()), errors.New("link failed: " + gl.GetProgramInfoLog(program))
	}
	return program, nil
}
