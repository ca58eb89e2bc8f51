package main

const vsSource = `
attribute vec2 aPosition;
attribute vec2 aTexCoord;
uniform mat4 uViewMatrix;
varying highp vec2 vTexCoord;
void main(void) {
	gl_Position = uViewMatrix * vec4(aPosition, 0.0, 1.0);
	vTexCoord = aTexCoord;
}
`

const fsSource = `
varying highp vec2 vTexCoord;
uniform sampler2D uMap;
void main(void) {
	gl_FragColor = texture2D(uMap, vTexCoord);
}
`
