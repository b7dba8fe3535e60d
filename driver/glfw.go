// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package driver creates real OpenGL and OpenGL ES contexts with GLFW
// and exposes their query entry points through [glinf.Functions].
// Everything here must run on the main OS thread.
package driver

import (
	"fmt"

	"cogentcore.org/glinf"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Init initializes GLFW. It must be called on the main thread before
// any contexts are created, and [Terminate] must be called before the
// process exits.
func Init() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("cannot initialize glfw: %w", err)
	}
	return nil
}

// Terminate shuts GLFW down, destroying any remaining contexts.
func Terminate() {
	glfw.Terminate()
}

// Creator is the GLFW-backed [glinf.Creator]. Surfaces it creates are
// hidden 16x16 windows, which is how GLFW does offscreen.
type Creator struct{}

// Create makes one attempt at a context of the given version.
func (Creator) Create(req *glinf.Request, major, minor int) (glinf.Surface, error) {
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.Resizable, glfw.False)
	if req.Type == glinf.TypeOpenGLES {
		glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLESAPI)
	}
	glfw.WindowHint(glfw.ContextVersionMajor, major)
	glfw.WindowHint(glfw.ContextVersionMinor, minor)
	if req.Type != glinf.TypeOpenGLES && (major > 3 || (major == 3 && minor >= 2)) {
		// profiles only exist for desktop GL 3.2+; GLFW rejects the
		// hint for anything else
		if req.Profile == glinf.ProfileCompat {
			glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCompatProfile)
		} else {
			glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
		}
	}
	win, err := createWindow()
	if err != nil {
		return nil, err
	}
	return newContext(win), nil
}

// createWindow converts GLFW panics into errors. The binding only
// returns driver refusals (APIUnavailable, VersionUnavailable) as
// errors and panics for everything else, including the InvalidValue
// that GLFW raises for versions it knows never shipped (3.4 through
// 3.9); for the negotiation search those are just failed attempts.
func createWindow() (win *glfw.Window, err error) {
	defer func() {
		if r := recover(); r != nil {
			win, err = nil, fmt.Errorf("%v", r)
		}
	}()
	return glfw.CreateWindow(16, 16, "glinf", nil, nil)
}

// Context is a created, not necessarily current, GLFW context with the
// attributes the driver granted it.
type Context struct {
	win     *glfw.Window
	es      bool
	major   int
	minor   int
	profile glinf.Profile
}

func newContext(win *glfw.Window) *Context {
	c := &Context{win: win}
	c.es = win.GetAttrib(glfw.ClientAPI) == glfw.OpenGLESAPI
	c.major = win.GetAttrib(glfw.ContextVersionMajor)
	c.minor = win.GetAttrib(glfw.ContextVersionMinor)
	if win.GetAttrib(glfw.OpenGLProfile) == glfw.OpenGLCompatProfile {
		c.profile = glinf.ProfileCompat
	}
	return c
}

// Version reports the version the driver granted.
func (c *Context) Version() (major, minor int) {
	return c.major, c.minor
}

// ES reports whether the driver granted an OpenGL ES context.
func (c *Context) ES() bool {
	return c.es
}

// Info returns the context description for the report.
func (c *Context) Info() glinf.Info {
	return glinf.Info{ES: c.es, Major: c.major, Minor: c.minor, Profile: c.profile}
}

// Release destroys the window and its context.
func (c *Context) Release() {
	c.win.Destroy()
}

// MakeCurrent binds the context to the calling thread. GLFW reports
// failure here by panicking, which is converted back into
// [glinf.ErrNotCurrent].
func (c *Context) MakeCurrent() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = glinf.ErrNotCurrent
		}
	}()
	c.win.MakeContextCurrent()
	return nil
}
