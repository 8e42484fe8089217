package renderer

const sceneVertexShader = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;

uniform mat4 uView;
uniform mat4 uProjection;

out vec3 vNormal;
out vec3 vWorld;

void main() {
	vNormal = aNormal;
	vWorld = aPos;
	gl_Position = uProjection * uView * vec4(aPos, 1.0);
}
`

const sceneFragmentShader = `
#version 410 core

in vec3 vNormal;
in vec3 vWorld;

uniform vec3 uColor;
uniform vec3 uEye;
uniform vec3 uLightDir;
uniform float uGloss;
uniform float uAmbient;

out vec4 FragColor;

void main() {
	vec3 n = normalize(vNormal);
	vec3 v = normalize(uEye - vWorld);
	vec3 h = normalize(uLightDir + v);

	float diffuse = max(dot(n, uLightDir), 0.0);
	float spec = pow(max(dot(n, h), 0.0), mix(16.0, 96.0, uGloss)) * uGloss;
	float rim = pow(1.0 - max(dot(n, v), 0.0), 3.0) * 0.25;

	vec3 color = uColor * (uAmbient + (1.0 - uAmbient) * diffuse) + vec3(spec + rim);
	FragColor = vec4(pow(color, vec3(1.0 / 2.2)), 1.0);
}
`

const overlayVertexShader = `
#version 410 core

layout (location = 0) in vec2 aPos;

uniform vec4 uRect;

out vec2 vUV;

void main() {
	vUV = aPos;
	gl_Position = vec4(uRect.xy + aPos * uRect.zw, 0.0, 1.0);
}
`

const overlayFragmentShader = `
#version 410 core

in vec2 vUV;

uniform vec4 uColor;
uniform float uRound;

out vec4 FragColor;

void main() {
	if (uRound > 0.5 && length(vUV - vec2(0.5)) > 0.5) {
		discard;
	}
	FragColor = uColor;
}
`
