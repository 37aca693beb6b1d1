// SPDX-License-Identifier: GPL-2.0-or-later

package viewer

const (
	vertexSource = `
#version 410 core
layout (location = 0) in vec3 position;
layout (location = 1) in vec2 texcoord;

uniform mat4 projection;
uniform mat4 view;
uniform mat4 model;

out vec2 Texcoord;

void main() {
	Texcoord = texcoord;
	gl_Position = projection * view * model * vec4(position, 1.0);
}
`

	fragmentSource = `
#version 410 core
in vec2 Texcoord;

uniform sampler2D samplerTex;
uniform vec4 atmosphereColor;
uniform int useTexture;

out vec4 color;

void main() {
	if (useTexture != 0) {
		color = texture(samplerTex, Texcoord);
	} else {
		color = atmosphereColor;
	}
}
`
)
