// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package glinf negotiates OpenGL and OpenGL ES contexts and reports
// what the driver actually provides: the negotiated version and
// profile, the driver strings, the supported extensions, and the
// implementation-defined resource limits.
//
// Context creation and the GL query calls live in the [driver]
// subpackage; everything here works against the small [Creator],
// [Surface], and [Functions] interfaces, so it runs without a GPU.
package glinf

import (
	"errors"
	"strconv"
	"strings"
)

var (
	// ErrInvalidType is returned for a context type that is neither
	// opengl nor opengles.
	ErrInvalidType = errors.New("invalid type")

	// ErrInvalidProfile is returned for a profile that is neither
	// core nor compat.
	ErrInvalidProfile = errors.New("invalid profile")

	// ErrInvalidVersion is returned for a version that is not a
	// MAJOR.MINOR pair of unsigned integers.
	ErrInvalidVersion = errors.New("invalid version")

	// ErrNoContext is returned by [Negotiate] when no acceptable
	// context could be created anywhere in the version range.
	ErrNoContext = errors.New("cannot create context")

	// ErrNotCurrent is returned when a created context cannot be
	// made current against its offscreen surface.
	ErrNotCurrent = errors.New("cannot make context current")
)

// ContextType selects the renderable API to request.
type ContextType int32

const (
	// TypeAny requests the platform's default renderable type.
	TypeAny ContextType = iota

	// TypeOpenGL requests a desktop OpenGL context.
	TypeOpenGL

	// TypeOpenGLES requests an OpenGL ES context.
	TypeOpenGLES
)

// Profile selects the OpenGL context profile. Profiles only exist for
// desktop OpenGL 3.2 and above; ES and older contexts ignore it.
type Profile int32

const (
	ProfileCore Profile = iota
	ProfileCompat
)

// Request is the set of constraints that context negotiation works
// within. The zero value is not useful; use [NewRequest].
type Request struct {
	// Type is the renderable API to request.
	Type ContextType

	// Profile is the desktop OpenGL profile to request.
	Profile Profile

	// Version range searched by [Negotiate], from MajorMax.MinorMax
	// down to MajorMin.MinorMin, inclusive, in descending order.
	MajorMax, MinorMax int
	MajorMin, MinorMin int
}

// NewRequest returns a Request with the default constraints:
// any renderable type, core profile, versions 4.9 down to 3.2.
func NewRequest() *Request {
	return &Request{
		Profile:  ProfileCore,
		MajorMax: 4,
		MinorMax: 9,
		MajorMin: 3,
		MinorMin: 2,
	}
}

// Pin collapses the version range to exactly major.minor, so that
// negotiation makes a single attempt at that version and never
// searches downward from it.
func (r *Request) Pin(major, minor int) {
	r.MajorMax, r.MajorMin = major, major
	r.MinorMax, r.MinorMin = minor, minor
}

// ParseType parses a context type flag value, case-insensitively.
func ParseType(s string) (ContextType, error) {
	switch strings.ToLower(s) {
	case "opengl":
		return TypeOpenGL, nil
	case "opengles":
		return TypeOpenGLES, nil
	}
	return TypeAny, ErrInvalidType
}

// ParseProfile parses a profile flag value, case-insensitively.
func ParseProfile(s string) (Profile, error) {
	switch strings.ToLower(s) {
	case "core":
		return ProfileCore, nil
	case "compat", "compatibility":
		return ProfileCompat, nil
	}
	return ProfileCore, ErrInvalidProfile
}

// ParseVersion parses a MAJOR.MINOR version pair of unsigned decimal
// integers.
func ParseVersion(s string) (major, minor int, err error) {
	ma, mi, ok := strings.Cut(s, ".")
	if !ok {
		return 0, 0, ErrInvalidVersion
	}
	maj, err := strconv.ParseUint(ma, 10, 16)
	if err != nil {
		return 0, 0, ErrInvalidVersion
	}
	min, err := strconv.ParseUint(mi, 10, 16)
	if err != nil {
		return 0, 0, ErrInvalidVersion
	}
	return int(maj), int(min), nil
}
