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
	"time"

	"github.com/bradleyjkemp/memviz"
	"github.com/urfave/cli/v2"
	"github.com/vcsplay/vcsplay/cartridgeloader"
	"github.com/vcsplay/vcsplay/catalog"
	"github.com/vcsplay/vcsplay/core"
	"github.com/vcsplay/vcsplay/core/testcard"
	"github.com/vcsplay/vcsplay/gui"
	"github.com/vcsplay/vcsplay/gui/ebitenplay"
	"github.com/vcsplay/vcsplay/gui/sdlplay"
	"github.com/vcsplay/vcsplay/logger"
	"github.com/vcsplay/vcsplay/paths"
	"github.com/vcsplay/vcsplay/performance"
	"github.com/vcsplay/vcsplay/playback"
	"github.com/vcsplay/vcsplay/statsview"
	"github.com/vcsplay/vcsplay/television/imagetv"
	"github.com/vcsplay/vcsplay/userinput"
	"github.com/vcsplay/vcsplay/version"
)

func playFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "gui",
			Usage: "display to use: sdl, ebiten or none",
			Value: "sdl",
		},
		&cli.Float64Flag{
			Name:  "scale",
			Usage: "size of each television pixel in the window",
			Value: 2.0,
		},
		&cli.BoolFlag{
			Name:  "save",
			Usage: "save the settings as the new preferences",
		},
		&cli.StringFlag{
			Name:  "memviz",
			Usage: "write a graphviz file of the playback driver to the named file on exit",
		},
		&cli.BoolFlag{
			Name:  "statsview",
			Usage: fmt.Sprintf("run the statsview server on %s", statsview.Address),
		},
	}
}

// player carries out the actions requested by the user. it implements the
// userinput.HandleInput interface.
type player struct {
	drv  *playback.Driver
	imtv *imagetv.ImageTV
}

func (pl *player) Next(ctx context.Context) error {
	return pl.drv.Next(ctx)
}

func (pl *player) Previous(ctx context.Context) error {
	return pl.drv.Previous(ctx)
}

func (pl *player) Snapshot() error {
	name := pl.drv.ProgramName()
	pl.imtv.SetCaption(name)
	fn, err := pl.imtv.Save(paths.UniqueFilename("snapshot", name))
	if err != nil {
		return err
	}
	logger.Logf(logger.Allow, "play", "snapshot saved to %s", fn)
	return nil
}

func (pl *player) Copy() error {
	img, err := pl.imtv.Image()
	if err != nil {
		return err
	}
	return userinput.CopyImage(img)
}

func (pl *player) ToggleOverlay() error {
	s := pl.drv.Settings()
	s.Overlay = !s.Overlay
	return pl.drv.SetSettings(s)
}

// the status shown in the ebiten window
func (pl *player) status() string {
	return fmt.Sprintf("%s %s", performance.FormatFPS(pl.drv.FPS()), pl.drv.ProgramName())
}

// the number of catalog entries tried when no program is named
const chooseAttempts = 5

// choose the first program. an empty argument means the first program in
// the catalog that can be fetched
func (pl *player) choose(ctx context.Context, cat *catalog.Catalog, arg string) error {
	if arg == "" {
		var err error
		for range min(cat.Len(), chooseAttempts) {
			err = pl.drv.Next(ctx)
			if err == nil || errors.Is(err, playback.ErrNoEntries) || errors.Is(err, playback.ErrStopped) || ctx.Err() != nil {
				return err
			}
			logger.Log(logger.Allow, "play", err)
		}
		return err
	}

	if _, i := cat.Find(arg); i >= 0 {
		return pl.drv.SelectName(ctx, arg)
	}

	ld := cartridgeloader.NewLoader(arg)
	if err := ld.Load(ctx); err != nil {
		return err
	}
	img, err := ld.Image()
	if err != nil {
		return err
	}
	return pl.drv.UploadImage(img)
}

// loop handles events and updates the status until the user quits or the
// context is cancelled.
func (pl *player) loop(ctx context.Context, events chan gui.Event, trm *userinput.Terminal, window gui.GUI) error {
	tck := time.NewTicker(statusInterval)
	defer tck.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			quit, err := userinput.HandleEvent(ctx, ev, pl)
			if err != nil {
				logger.Log(logger.Allow, "play", err)
			}
			if quit {
				return nil
			}

		case <-tck.C:
			if pl.drv.State() == playback.Failed {
				return pl.drv.Err()
			}

			name := pl.drv.ProgramName()
			if trm != nil {
				trm.Status(name, pl.drv.FPS())
			}
			if window != nil {
				caption := fmt.Sprintf("%s :: %s :: %s", version.ApplicationName, name, performance.FormatFPS(pl.drv.FPS()))
				if err := window.SetFeature(gui.ReqSetCaption, caption); err != nil {
					logger.Log(logger.Allow, "play", err)
				}
			}
		}
	}
}

func play(c *cli.Context, sync *mainSync) error {
	// the play command stops the driver and restores the terminal on an
	// interrupt so the main thread must not quit immediately
	sync.state <- stateRequest{req: reqNoIntSig}

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

	if c.Bool("save") {
		if err := p.Save(); err != nil {
			return cli.Exit(err, 1)
		}
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

	if c.Bool("statsview") {
		if !statsview.Available() {
			return cli.Exit("statsview is not available in this build", 1)
		}
		defer statsview.Launch(os.Stdout)()
	}

	drv := playback.NewDriver(core.NewGate(testcard.NewCore(0)), cat, f, settings)
	defer drv.Stop()

	pl := &player{
		drv:  drv,
		imtv: imagetv.NewImageTV(),
	}

	events := make(chan gui.Event, 16)
	surfaces := playback.Surfaces{pl.imtv}

	var window gui.GUI
	var eb *ebitenplay.EbitenPlay

	switch c.String("gui") {
	case "sdl":
		scale := float32(c.Float64("scale"))
		window, err = sync.create(func() (gui.GUI, error) {
			scr, err := sdlplay.NewSdlPlay(scale)
			if err != nil {
				return nil, err
			}
			return scr, nil
		})
		if err != nil {
			return cli.Exit(err, 1)
		}
		if err := window.SetFeature(gui.ReqSetEventChan, events); err != nil {
			return cli.Exit(err, 1)
		}
		if err := window.SetFeature(gui.ReqSetVisibility, true); err != nil {
			return cli.Exit(err, 1)
		}
		surfaces = append(surfaces, window)
	case "ebiten":
		eb = ebitenplay.NewEbitenPlay(events, pl.status)
		surfaces = append(surfaces, eb)
	case "none":
	default:
		return cli.Exit(fmt.Sprintf("unknown gui (%s)", c.String("gui")), 1)
	}

	if err := drv.SetSurface(surfaces); err != nil {
		return cli.Exit(err, 1)
	}

	trm, err := userinput.NewTerminal(events)
	if err != nil {
		if !errors.Is(err, userinput.ErrNotTerminal) {
			return cli.Exit(err, 1)
		}
		logger.Log(logger.Allow, "play", err)
		trm = nil
	} else {
		defer trm.Stop()
	}

	drv.Start(ctx)

	if err := pl.choose(ctx, cat, c.Args().First()); err != nil {
		return cli.Exit(err, 1)
	}

	// the ebiten window runs on the main thread and blocks it until the
	// window is closed
	var runErr chan error
	if eb != nil {
		runErr = make(chan error, 1)
		go func() {
			runErr <- sync.run(func() error {
				return eb.Run(version.ApplicationName, int(c.Float64("scale")))
			})
			cancel()
		}()
	}

	err = pl.loop(ctx, events, trm, window)

	if eb != nil {
		eb.Close()
		if rerr := <-runErr; rerr != nil && err == nil {
			err = rerr
		}
	}

	drv.Stop()
	logger.Logf(logger.Allow, "play", "driver %s", drv.State())

	if fn := c.String("memviz"); fn != "" {
		if err := dumpDriver(fn, drv); err != nil {
			logger.Log(logger.Allow, "memviz", err)
		}
	}

	if err != nil {
		return cli.Exit(err, 1)
	}
	return nil
}

// write the structure of the driver as a graphviz file
func dumpDriver(fn string, drv *playback.Driver) error {
	f, err := os.Create(fn)
	if err != nil {
		return err
	}
	defer f.Close()
	memviz.Map(f, drv)
	return nil
}
