// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glinf

// GL query enums used by the report. Declared here rather than taken
// from a binding package so that this package stays free of cgo, and
// because no single versioned binding carries all of them (the tess
// and compute limits are 4.x enums, while the negotiation floor is
// 3.2). Values are from the Khronos registry.
const (
	Vendor                 uint32 = 0x1F00
	Renderer               uint32 = 0x1F01
	Version                uint32 = 0x1F02
	Extensions             uint32 = 0x1F03
	ShadingLanguageVersion uint32 = 0x8B8C
	NumExtensions          uint32 = 0x821D

	MaxTextureSize        uint32 = 0x0D33
	Max3DTextureSize      uint32 = 0x8073
	MaxCubeMapTextureSize uint32 = 0x851C
	MaxArrayTextureLayers uint32 = 0x88FF

	MaxFramebufferWidth  uint32 = 0x9315
	MaxFramebufferHeight uint32 = 0x9316
	MaxColorAttachments  uint32 = 0x8CDF
	MaxDrawBuffers       uint32 = 0x8824

	MaxVertexUniformComponents         uint32 = 0x8B4A
	MaxTessControlUniformComponents    uint32 = 0x8E7F
	MaxTessEvaluationUniformComponents uint32 = 0x8E80
	MaxGeometryUniformComponents       uint32 = 0x8DDF
	MaxFragmentUniformComponents       uint32 = 0x8B49
	MaxComputeUniformComponents        uint32 = 0x8263

	MaxVertexAttribs                 uint32 = 0x8869
	MaxTessControlInputComponents    uint32 = 0x886C
	MaxTessEvaluationInputComponents uint32 = 0x886D
	MaxGeometryInputComponents       uint32 = 0x9123
	MaxFragmentInputComponents       uint32 = 0x9125

	MaxVertexOutputComponents         uint32 = 0x9122
	MaxTessControlOutputComponents    uint32 = 0x8E83
	MaxTessEvaluationOutputComponents uint32 = 0x8E86
	MaxGeometryOutputComponents       uint32 = 0x9124

	MaxVertexTextureImageUnits         uint32 = 0x8B4C
	MaxTessControlTextureImageUnits    uint32 = 0x8E81
	MaxTessEvaluationTextureImageUnits uint32 = 0x8E82
	MaxGeometryTextureImageUnits       uint32 = 0x8C29
	MaxTextureImageUnits               uint32 = 0x8872
	MaxComputeTextureImageUnits        uint32 = 0x91BC
	MaxCombinedTextureImageUnits       uint32 = 0x8B4D
)
