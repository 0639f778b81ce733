// This file is part of vcsplay.
//
// vcsplay is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// vcsplay is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with vcsplay.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/urfave/cli/v2"
	"github.com/vcsplay/vcsplay/cartridgeloader"
	"github.com/vcsplay/vcsplay/cartridgeloader/cache"
	"github.com/vcsplay/vcsplay/catalog"
	"github.com/vcsplay/vcsplay/core"
	"github.com/vcsplay/vcsplay/core/testcard"
	"github.com/vcsplay/vcsplay/digest"
	"github.com/vcsplay/vcsplay/logger"
	"github.com/vcsplay/vcsplay/paths"
	"github.com/vcsplay/vcsplay/performance"
	"github.com/vcsplay/vcsplay/playback"
	"github.com/vcsplay/vcsplay/television/imagetv"
)

// errNoProgram is returned by commands that require a program argument.
var errNoProgram = errors.New("no program specified")

func list(c *cli.Context) error {
	p, err := preferences(c)
	if err != nil {
		return cli.Exit(err, 1)
	}

	cat, err := catalog.New(p.Server.String())
	if err != nil {
		return cli.Exit(err, 1)
	}

	var category catalog.Category = -1
	for _, e := range cat.Entries() {
		if e.Category != category {
			category = e.Category
			fmt.Fprintf(c.App.Writer, "%s\n", category)
		}
		fmt.Fprintf(c.App.Writer, "  %-24s %s\n", e.Name, e.Label())
	}

	return nil
}

// newFetcher returns the fetcher to use for catalog programs. the returned
// function must be called when the fetcher is no longer required.
func newFetcher(p *playback.Preferences) (cartridgeloader.Fetcher, func(), error) {
	var f cartridgeloader.Fetcher = cartridgeloader.HTTPFetcher{}

	file := p.Cache.String()
	if file == "" {
		return f, func() {}, nil
	}

	cch, err := cache.Open(file, f)
	if err != nil {
		return nil, nil, err
	}

	return cch, func() {
		if err := cch.Close(); err != nil {
			logger.Log(logger.Allow, "cache", err)
		}
	}, nil
}

// loadProgram returns the program image for the argument. the argument is
// either the name of a catalog entry or a filename or URL.
func loadProgram(ctx context.Context, cat *catalog.Catalog, f cartridgeloader.Fetcher, arg string) (cartridgeloader.ProgramImage, error) {
	if arg == "" {
		return cartridgeloader.ProgramImage{}, errNoProgram
	}

	if e, i := cat.Find(arg); i >= 0 {
		return cat.Image(ctx, f, e)
	}

	ld := cartridgeloader.NewLoader(arg)
	if err := ld.Load(ctx); err != nil {
		return cartridgeloader.ProgramImage{}, err
	}
	return ld.Image()
}

// interruptible returns a context that is cancelled on an interrupt signal.
func interruptible(c *cli.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(c.Context, os.Interrupt)
}

// runFrames plays the program given on the command line until the surface
// has been presented with the specified number of frames.
func runFrames(c *cli.Context, surface playback.Surface) (cartridgeloader.ProgramImage, error) {
	ctx, cancel := interruptible(c)
	defer cancel()

	p, err := preferences(c)
	if err != nil {
		return cartridgeloader.ProgramImage{}, err
	}

	settings, err := p.Settings()
	if err != nil {
		return cartridgeloader.ProgramImage{}, err
	}

	cat, err := catalog.New(p.Server.String())
	if err != nil {
		return cartridgeloader.ProgramImage{}, err
	}

	f, done, err := newFetcher(p)
	if err != nil {
		return cartridgeloader.ProgramImage{}, err
	}
	defer done()

	img, err := loadProgram(ctx, cat, f, c.Args().First())
	if err != nil {
		return cartridgeloader.ProgramImage{}, err
	}

	return img, playFrames(ctx, core.NewGate(testcard.NewCore(0)), img, surface, settings, c.Int("frames"))
}

// playFrames creates a session for the image and runs it until the surface
// has been presented with the specified number of frames.
func playFrames(ctx context.Context, gate *core.Gate, img cartridgeloader.ProgramImage, surface playback.Surface,
	settings playback.Settings, frames int) error {

	if frames < 1 {
		return fmt.Errorf("number of frames must be at least one (%d)", frames)
	}

	gate.Start(ctx)
	colors, err := gate.Wait(ctx)
	if err != nil {
		return err
	}

	ses, err := playback.NewSession(gate.Core(), colors, img, playback.LimitFrames(surface, frames), settings)
	if err != nil {
		return err
	}

	ses.Start()
	defer ses.Stop()

	select {
	case <-ses.Done():
	case <-ctx.Done():
		return ctx.Err()
	}

	logger.Logf(logger.Allow, "session", "%s: %s", img.Name(), ses.Meter())

	return ses.Err()
}

func digestFrames(c *cli.Context) error {
	dig := digest.NewVideo()

	if _, err := runFrames(c, dig); err != nil {
		return cli.Exit(err, 1)
	}

	fmt.Fprintln(c.App.Writer, dig.Hash())
	return nil
}

func snapshot(c *cli.Context) error {
	imtv := imagetv.NewImageTV()

	img, err := runFrames(c, imtv)
	if err != nil {
		return cli.Exit(err, 1)
	}

	base := c.String("output")
	if base == "" {
		base = paths.UniqueFilename("snapshot", img.Name())
	}

	imtv.SetCaption(img.Name())
	name, err := imtv.Save(base)
	if err != nil {
		return cli.Exit(err, 1)
	}

	fmt.Fprintf(c.App.Writer, "snapshot saved to %s\n", name)
	return nil
}

func performanceFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "duration",
			Usage: "run performance check for duration",
			Value: "5s",
		},
		&cli.StringFlag{
			Name:  "profile",
			Usage: "create profile for the check: cpu, mem, trace, all (comma separated)",
			Value: "none",
		},
	}
}

func perform(c *cli.Context) error {
	ctx, cancel := interruptible(c)
	defer cancel()

	p, err := preferences(c)
	if err != nil {
		return cli.Exit(err, 1)
	}

	settings, err := p.Settings()
	if err != nil {
		return cli.Exit(err, 1)
	}

	profile, err := performance.ParseProfileString(c.String("profile"))
	if err != nil {
		return cli.Exit(err, 1)
	}

	cat, err := catalog.New(p.Server.String())
	if err != nil {
		return cli.Exit(err, 1)
	}

	f, done, err := newFetcher(p)
	if err != nil {
		return cli.Exit(err, 1)
	}
	defer done()

	arg := c.Args().First()
	if arg == "" && cat.Len() > 0 {
		arg = cat.At(0).Name
	}

	img, err := loadProgram(ctx, cat, f, arg)
	if err != nil {
		return cli.Exit(err, 1)
	}

	err = performance.Check(ctx, c.App.Writer, profile, core.NewGate(testcard.NewCore(0)), img,
		settings.Mode, settings.Halve, settings.Cadence.Cycles, c.String("duration"))
	if err != nil {
		return cli.Exit(err, 1)
	}

	return nil
}
