package viewcube

const vsSource = `#version 300 es
	layout (location = 0) in vec3 aVertexPosition;
	layout (location = 1) in vec3 aVertexColor;
	uniform mat4 uModelViewMatrix;
	uniform mat4 uProjectionMatrix;
	out lowp vec4 vColor;

	void main(void) {
		gl_Position = uProjectionMatrix * uModelViewMatrix * vec4(aVertexPosition, 1.0);
		vColor = vec4(aVertexColor, 1.0);
	}
`

const fsSource = `#version 300 es
	precision lowp float;
	in lowp vec4 vColor;
	out vec4 outColor;

	void main(void) {
		outColor = vColor;
	}
`
