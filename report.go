// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glinf

import (
	"fmt"
	"io"
	"slices"
	"strconv"
)

// Functions is the minimal set of GL query entry points the report
// needs. Queries are total: an enum the driver does not know reads 0
// or the empty string.
type Functions interface {
	// GetInteger returns the value of an integer query.
	GetInteger(pname uint32) int

	// GetString returns the value of a string query.
	GetString(pname uint32) string

	// GetStringi returns one indexed value of a string query.
	GetStringi(pname, index uint32) string
}

// Info describes a negotiated context to the report.
type Info struct {
	// ES is whether this is an OpenGL ES context.
	ES bool

	// Major and Minor are the negotiated context version.
	Major, Minor int

	// Profile is the negotiated profile. It is only meaningful when
	// [Info.HasProfile] is true.
	Profile Profile
}

// HasProfile reports whether the context has a meaningful profile:
// desktop OpenGL at version 3.2 or above.
func (in Info) HasProfile() bool {
	return !in.ES && (in.Major > 3 || (in.Major == 3 && in.Minor >= 2))
}

// String returns the context summary line, such as
// "OpenGL version 4.6 core profile".
func (in Info) String() string {
	api := "OpenGL"
	if in.ES {
		api = "OpenGLES"
	}
	s := fmt.Sprintf("%s version %d.%d", api, in.Major, in.Minor)
	if in.HasProfile() {
		if in.Profile == ProfileCompat {
			s += " compatibility profile"
		} else {
			s += " core profile"
		}
	}
	return s
}

// ListExtensions returns the supported extension names, deduplicated,
// with empty entries dropped, sorted ascending.
func ListExtensions(gl Functions) []string {
	n := gl.GetInteger(NumExtensions)
	exts := make([]string, 0, n)
	for i := 0; i < n; i++ {
		ext := gl.GetStringi(Extensions, uint32(i))
		if ext != "" {
			exts = append(exts, ext)
		}
	}
	slices.Sort(exts)
	return slices.Compact(exts)
}

// WriteReport writes the full report for a current context to w: the
// context summary, the driver strings, the extension list when
// extensions is set, and the resource limit table. It only reads from
// the context and produces the same bytes for the same driver state.
func WriteReport(w io.Writer, info Info, gl Functions, extensions bool) {
	fmt.Fprintf(w, "Context:    %s\n", info)
	fmt.Fprintf(w, "Version:    %s\n", gl.GetString(Version))
	fmt.Fprintf(w, "SL Version: %s\n", gl.GetString(ShadingLanguageVersion))
	fmt.Fprintf(w, "Vendor:     %s\n", gl.GetString(Vendor))
	fmt.Fprintf(w, "Renderer:   %s\n", gl.GetString(Renderer))

	if extensions {
		fmt.Fprintln(w, "Extensions:")
		for _, ext := range ListExtensions(gl) {
			fmt.Fprintf(w, "    %s\n", ext)
		}
	}

	fmt.Fprintln(w, "Resource limitations:")
	for _, g := range ResourceLimits {
		fmt.Fprintf(w, "  %s:\n", g.Name)
		for _, l := range g.Limits {
			v := gl.GetInteger(l.Pname)
			name := l.Name
			if l.Factor > 1 {
				v *= l.Factor
				name = strconv.Itoa(l.Factor) + "*" + name
			}
			fmt.Fprintf(w, "    %-14s%5d  %s\n", l.Label, v, name)
		}
	}
}
