// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glinf

import "log/slog"

// Surface is the offscreen surface and rendering context pair produced
// by one creation attempt.
type Surface interface {
	// Version reports the context version the driver actually
	// provided, which may differ from the requested one.
	Version() (major, minor int)

	// Release destroys the surface and its context.
	Release()
}

// Creator makes a single attempt at creating a context of the given
// version, within the type and profile constraints of the request.
type Creator interface {
	Create(req *Request, major, minor int) (Surface, error)
}

// Negotiate searches the request's version range for the best context
// the driver will honor. It starts at the highest version and steps
// down one minor version at a time, wrapping from minor 0 to the
// previous major at minor 9. An attempt succeeds when the context is
// created and its version is at or above the trial version; anything
// less is released and the search continues. When the trial version
// drops below the range floor, Negotiate returns [ErrNoContext].
//
// Drivers often grant a higher or lower version than requested, or
// refuse unsupported version and profile combinations outright; the
// descending search finds the best version actually available instead
// of failing on the first unsupported exact match.
func Negotiate(c Creator, req *Request) (Surface, error) {
	tryMajor := req.MajorMax
	tryMinor := req.MinorMax
	for {
		slog.Debug("requesting context", "major", tryMajor, "minor", tryMinor)
		sf, err := c.Create(req, tryMajor, tryMinor)
		ok := err == nil
		if ok {
			major, minor := sf.Version()
			if major < tryMajor || (major == tryMajor && minor < tryMinor) {
				slog.Debug("driver granted lower version", "major", major, "minor", minor)
				ok = false
			}
		}
		if ok {
			return sf, nil
		}
		if sf != nil {
			sf.Release()
		}
		switch {
		case tryMajor > req.MajorMin && tryMinor == 0:
			tryMajor--
			tryMinor = 9
		case tryMajor > req.MajorMin || tryMinor > req.MinorMin:
			tryMinor--
		default:
			return nil, ErrNoContext
		}
	}
}
