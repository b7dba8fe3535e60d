// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glinf

// Limit is one implementation-defined resource limit line in the
// report.
type Limit struct {
	// Label is the human label shown on the line, including its
	// trailing colon.
	Label string

	// Name is the GL query identifier, printed after the value for
	// traceability.
	Name string

	// Pname is the enum passed to [Functions.GetInteger].
	Pname uint32

	// Factor multiplies the queried value when greater than 1, for
	// limits that the driver reports in other units, such as output
	// components reported per draw buffer.
	Factor int
}

// LimitGroup is a heading in the report with its limits.
type LimitGroup struct {
	Name   string
	Limits []Limit
}

// ResourceLimits is the fixed table of implementation-defined limits
// printed at the end of the report, in order.
var ResourceLimits = []LimitGroup{
	{"Texture limits", []Limit{
		{"1D / 2D size:", "GL_MAX_TEXTURE_SIZE", MaxTextureSize, 0},
		{"3D size:", "GL_MAX_3D_TEXTURE_SIZE", Max3DTextureSize, 0},
		{"Cubemap size:", "GL_MAX_CUBE_MAP_TEXTURE_SIZE", MaxCubeMapTextureSize, 0},
		{"Arr. layers:", "GL_MAX_ARRAY_TEXTURE_LAYERS", MaxArrayTextureLayers, 0},
	}},
	{"Framebuffer object limits", []Limit{
		{"Width:", "GL_MAX_FRAMEBUFFER_WIDTH", MaxFramebufferWidth, 0},
		{"Height:", "GL_MAX_FRAMEBUFFER_HEIGHT", MaxFramebufferHeight, 0},
		{"Color Attach.:", "GL_MAX_COLOR_ATTACHMENTS", MaxColorAttachments, 0},
		{"Draw buffers:", "GL_MAX_DRAW_BUFFERS", MaxDrawBuffers, 0},
	}},
	{"Maximum number of uniform components in shader stage", []Limit{
		{"Vertex:", "GL_MAX_VERTEX_UNIFORM_COMPONENTS", MaxVertexUniformComponents, 0},
		{"Tess. Ctrl.:", "GL_MAX_TESS_CONTROL_UNIFORM_COMPONENTS", MaxTessControlUniformComponents, 0},
		{"Tess. Eval.:", "GL_MAX_TESS_EVALUATION_UNIFORM_COMPONENTS", MaxTessEvaluationUniformComponents, 0},
		{"Geometry:", "GL_MAX_GEOMETRY_UNIFORM_COMPONENTS", MaxGeometryUniformComponents, 0},
		{"Fragment:", "GL_MAX_FRAGMENT_UNIFORM_COMPONENTS", MaxFragmentUniformComponents, 0},
		{"Compute:", "GL_MAX_COMPUTE_UNIFORM_COMPONENTS", MaxComputeUniformComponents, 0},
	}},
	{"Maximum number of input components in shader stage", []Limit{
		{"Vertex:", "GL_MAX_VERTEX_ATTRIBS", MaxVertexAttribs, 4},
		{"Tess. Ctrl.:", "GL_MAX_TESS_CONTROL_INPUT_COMPONENTS", MaxTessControlInputComponents, 0},
		{"Tess. Eval.:", "GL_MAX_TESS_EVALUATION_INPUT_COMPONENTS", MaxTessEvaluationInputComponents, 0},
		{"Geometry:", "GL_MAX_GEOMETRY_INPUT_COMPONENTS", MaxGeometryInputComponents, 0},
		{"Fragment:", "GL_MAX_FRAGMENT_INPUT_COMPONENTS", MaxFragmentInputComponents, 0},
	}},
	{"Maximum number of output components in shader stage", []Limit{
		{"Vertex:", "GL_MAX_VERTEX_OUTPUT_COMPONENTS", MaxVertexOutputComponents, 0},
		{"Tess. Ctrl.:", "GL_MAX_TESS_CONTROL_OUTPUT_COMPONENTS", MaxTessControlOutputComponents, 0},
		{"Tess. Eval.:", "GL_MAX_TESS_EVALUATION_OUTPUT_COMPONENTS", MaxTessEvaluationOutputComponents, 0},
		{"Geometry:", "GL_MAX_GEOMETRY_OUTPUT_COMPONENTS", MaxGeometryOutputComponents, 0},
		{"Fragment:", "GL_MAX_DRAW_BUFFERS", MaxDrawBuffers, 4},
	}},
	{"Maximum number of samplers in shader stage", []Limit{
		{"Vertex:", "GL_MAX_VERTEX_TEXTURE_IMAGE_UNITS", MaxVertexTextureImageUnits, 0},
		{"Tess. Ctrl.:", "GL_MAX_TESS_CONTROL_TEXTURE_IMAGE_UNITS", MaxTessControlTextureImageUnits, 0},
		{"Tess. Eval.:", "GL_MAX_TESS_EVALUATION_TEXTURE_IMAGE_UNITS", MaxTessEvaluationTextureImageUnits, 0},
		{"Geometry:", "GL_MAX_GEOMETRY_TEXTURE_IMAGE_UNITS", MaxGeometryTextureImageUnits, 0},
		{"Fragment:", "GL_MAX_TEXTURE_IMAGE_UNITS", MaxTextureImageUnits, 0},
		{"Compute:", "GL_MAX_COMPUTE_TEXTURE_IMAGE_UNITS", MaxComputeTextureImageUnits, 0},
		{"Combined:", "GL_MAX_COMBINED_TEXTURE_IMAGE_UNITS", MaxCombinedTextureImageUnits, 0},
	}},
}
