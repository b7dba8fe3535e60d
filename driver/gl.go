// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package driver

import (
	"fmt"

	"cogentcore.org/glinf"
	"github.com/go-gl/gl/v3.1/gles2"
	"github.com/go-gl/gl/v3.2-core/gl"
)

// Functions loads the GL query entry points for the context, which
// must be current on the calling thread. Desktop contexts use the 3.2
// core loader, matching the negotiation floor; ES contexts use the
// GLES loader.
func (c *Context) Functions() (glinf.Functions, error) {
	if c.es {
		if err := gles2.Init(); err != nil {
			return nil, fmt.Errorf("cannot load gl functions: %w", err)
		}
		return esFuncs{}, nil
	}
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("cannot load gl functions: %w", err)
	}
	return glFuncs{}, nil
}

// glFuncs is [glinf.Functions] over the desktop GL bindings.
type glFuncs struct{}

func (glFuncs) GetInteger(pname uint32) int {
	var v int32
	gl.GetIntegerv(pname, &v)
	return int(v)
}

func (glFuncs) GetString(pname uint32) string {
	return goStr(gl.GetString(pname))
}

func (glFuncs) GetStringi(pname, index uint32) string {
	return goStr(gl.GetStringi(pname, index))
}

// esFuncs is [glinf.Functions] over the GLES bindings.
type esFuncs struct{}

func (esFuncs) GetInteger(pname uint32) int {
	var v int32
	gles2.GetIntegerv(pname, &v)
	return int(v)
}

func (esFuncs) GetString(pname uint32) string {
	return goStr(gles2.GetString(pname))
}

func (esFuncs) GetStringi(pname, index uint32) string {
	return goStr(gles2.GetStringi(pname, index))
}

// goStr guards against drivers returning NULL for unknown queries.
func goStr(p *uint8) string {
	if p == nil {
		return ""
	}
	return gl.GoStr(p)
}
