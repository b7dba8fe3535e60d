// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glinf

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakeFuncs serves canned query results the way a driver would.
type fakeFuncs struct {
	ints    map[uint32]int
	strs    map[uint32]string
	indexed []string // extension names served through GetStringi
}

func (f *fakeFuncs) GetInteger(pname uint32) int {
	if pname == NumExtensions {
		return len(f.indexed)
	}
	return f.ints[pname]
}

func (f *fakeFuncs) GetString(pname uint32) string {
	return f.strs[pname]
}

func (f *fakeFuncs) GetStringi(pname, index uint32) string {
	if pname != Extensions || int(index) >= len(f.indexed) {
		return ""
	}
	return f.indexed[index]
}

func testFuncs() *fakeFuncs {
	return &fakeFuncs{
		ints: map[uint32]int{
			MaxTextureSize:   16384,
			MaxVertexAttribs: 16,
			MaxDrawBuffers:   8,
		},
		strs: map[uint32]string{
			Version:                "4.6.0 Test Driver",
			ShadingLanguageVersion: "4.60 Test",
			Vendor:                 "Test Vendor",
			Renderer:               "Test Renderer",
		},
		indexed: []string{
			"GL_ARB_debug_output",
			"GL_EXT_texture_filter_anisotropic",
			"GL_ARB_clip_control",
		},
	}
}

func TestInfoString(t *testing.T) {
	type test struct {
		info Info
		want string
	}
	tests := []test{
		{Info{false, 4, 6, ProfileCore}, "OpenGL version 4.6 core profile"},
		{Info{false, 4, 6, ProfileCompat}, "OpenGL version 4.6 compatibility profile"},
		{Info{false, 3, 2, ProfileCore}, "OpenGL version 3.2 core profile"},
		{Info{false, 3, 1, ProfileCore}, "OpenGL version 3.1"},
		{Info{false, 2, 1, ProfileCompat}, "OpenGL version 2.1"},
		{Info{true, 3, 2, ProfileCore}, "OpenGLES version 3.2"},
		{Info{true, 2, 0, ProfileCompat}, "OpenGLES version 2.0"},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, test.info.String())
	}
}

func TestListExtensions(t *testing.T) {
	fns := testFuncs()
	fns.indexed = []string{
		"GL_EXT_b",
		"",
		"GL_ARB_a",
		"GL_EXT_b",
		"",
		"GL_ARB_c",
	}
	assert.Equal(t, []string{"GL_ARB_a", "GL_ARB_c", "GL_EXT_b"}, ListExtensions(fns))
}

func TestListExtensionsEmpty(t *testing.T) {
	fns := testFuncs()
	fns.indexed = nil
	assert.Empty(t, ListExtensions(fns))
}

func TestWriteReport(t *testing.T) {
	var b bytes.Buffer
	WriteReport(&b, Info{Major: 4, Minor: 6}, testFuncs(), false)
	out := b.String()

	assert.True(t, strings.HasPrefix(out, "Context:    OpenGL version 4.6 core profile\n"))
	assert.Contains(t, out, "Version:    4.6.0 Test Driver\n")
	assert.Contains(t, out, "SL Version: 4.60 Test\n")
	assert.Contains(t, out, "Vendor:     Test Vendor\n")
	assert.Contains(t, out, "Renderer:   Test Renderer\n")
	assert.NotContains(t, out, "Extensions:")

	assert.Contains(t, out, "Resource limitations:\n")
	for _, g := range ResourceLimits {
		assert.Contains(t, out, "  "+g.Name+":\n")
	}
	assert.Contains(t, out, "    1D / 2D size: 16384  GL_MAX_TEXTURE_SIZE\n")
	// unknown queries read 0 and still print
	assert.Contains(t, out, "    3D size:          0  GL_MAX_3D_TEXTURE_SIZE\n")
	// derived values: 4 components per vertex attrib and per draw buffer
	assert.Contains(t, out, "    Vertex:          64  4*GL_MAX_VERTEX_ATTRIBS\n")
	assert.Contains(t, out, "    Fragment:        32  4*GL_MAX_DRAW_BUFFERS\n")
}

func TestWriteReportExtensions(t *testing.T) {
	var b bytes.Buffer
	WriteReport(&b, Info{Major: 4, Minor: 6}, testFuncs(), true)
	out := b.String()

	i := strings.Index(out, "Extensions:\n")
	assert.GreaterOrEqual(t, i, 0)
	assert.Contains(t, out, "    GL_ARB_clip_control\n")
	// extension list is sorted
	a := strings.Index(out, "GL_ARB_clip_control")
	c := strings.Index(out, "GL_ARB_debug_output")
	e := strings.Index(out, "GL_EXT_texture_filter_anisotropic")
	assert.Less(t, a, c)
	assert.Less(t, c, e)
}

func TestWriteReportIdempotent(t *testing.T) {
	var b1, b2 bytes.Buffer
	WriteReport(&b1, Info{Major: 4, Minor: 6}, testFuncs(), true)
	WriteReport(&b2, Info{Major: 4, Minor: 6}, testFuncs(), true)
	assert.Equal(t, b1.String(), b2.String())
}
