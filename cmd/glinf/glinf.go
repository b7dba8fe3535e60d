// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command glinf prints information about OpenGL and OpenGL ES
// contexts: the negotiated version and profile, the driver strings,
// the supported extensions, and the implementation-defined resource
// limits.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"cogentcore.org/glinf"
	"cogentcore.org/glinf/driver"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v2"
)

func init() {
	// GLFW and the GL context are bound to the main OS thread
	runtime.LockOSThread()
}

func main() {
	app := &cli.App{
		Name:            "glinf",
		Usage:           "print information about OpenGL or OpenGLES contexts",
		HideHelpCommand: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "type",
				Aliases: []string{"t"},
				Usage:   "select context type: 'opengl' or 'opengles'",
			},
			&cli.StringFlag{
				Name:    "profile",
				Aliases: []string{"p"},
				Usage:   "select context profile: 'core' or 'compat'",
			},
			&cli.StringFlag{
				Name:    "version",
				Aliases: []string{"v"},
				Usage:   "select context version: MAJOR.MINOR",
			},
			&cli.BoolFlag{
				Name:    "extensions",
				Aliases: []string{"e"},
				Usage:   "list supported extensions",
			},
			&cli.BoolFlag{
				Name:    "debug",
				Aliases: []string{"d"},
				Usage:   "log context negotiation attempts",
			},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	if c.Bool("debug") {
		slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
			Level:   slog.LevelDebug,
			NoColor: !isatty.IsTerminal(os.Stderr.Fd()),
		})))
	}

	req := glinf.NewRequest()
	if c.IsSet("type") {
		typ, err := glinf.ParseType(c.String("type"))
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}
		req.Type = typ
	}
	if c.IsSet("profile") {
		prof, err := glinf.ParseProfile(c.String("profile"))
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}
		req.Profile = prof
	}
	if c.IsSet("version") {
		major, minor, err := glinf.ParseVersion(c.String("version"))
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}
		req.Pin(major, minor)
	}

	if err := driver.Init(); err != nil {
		return cli.Exit(err.Error(), 1)
	}
	defer driver.Terminate()

	sf, err := glinf.Negotiate(driver.Creator{}, req)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	ctx := sf.(*driver.Context)
	if err := ctx.MakeCurrent(); err != nil {
		return cli.Exit(err.Error(), 1)
	}
	fns, err := ctx.Functions()
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	glinf.WriteReport(os.Stdout, ctx.Info(), fns, c.Bool("extensions"))
	return nil
}
