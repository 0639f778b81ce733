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
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/urfave/cli/v2"
	"github.com/vcsplay/vcsplay/gui"
	"github.com/vcsplay/vcsplay/logger"
	"github.com/vcsplay/vcsplay/playback"
	"github.com/vcsplay/vcsplay/version"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// reset interrupt signal handling. used when the play command installs
	// its own handler.
	//
	// takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"

	// run a function on the main thread. the function will block the main
	// thread until it returns. the error is sent on the runResult channel of
	// the mainSync instance.
	//
	// takes a func() error argument.
	reqRun stateReq = "RUN"
)

type stateRequest struct {
	req  stateReq
	args interface{}
}

// communication between the main() function and the launch() function. this is
// required because many gui solutions (notably SDL and ebiten) require window
// event handling (including creation) to occur on the main thread.
type mainSync struct {
	state   chan stateRequest
	creator chan func() (gui.GUI, error)

	// the result of creator will be returned on either of these two channels.
	creation      chan gui.GUI
	creationError chan error

	// result of a reqRun request
	runResult chan error
}

// create a gui on the main thread. the returned gui will be serviced by the
// main thread until the program ends or another gui is created.
func (sync *mainSync) create(creator func() (gui.GUI, error)) (gui.GUI, error) {
	sync.creator <- creator
	select {
	case g := <-sync.creation:
		return g, nil
	case err := <-sync.creationError:
		return nil, err
	}
}

// run function on the main thread and wait for it to return.
func (sync *mainSync) run(f func() error) error {
	sync.state <- stateRequest{req: reqRun, args: f}
	return <-sync.runResult
}

// #mainthread
func main() {
	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (gui.GUI, error)),
		creation:      make(chan gui.GUI),
		creationError: make(chan error),
		runResult:     make(chan error),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// #ctrlc default handler. can be turned off with reqNoIntSig request
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	// launch program as a go routine. further communication is through
	// the mainSync instance
	go launch(sync)

	// loop until done is true. every iteration of the loop we listen for:
	//
	//  1. interrupt signals
	//  2. new gui creation functions
	//  3. state requests
	//  4. anything in the Service() function of the most recently created GUI
	//
	// if there is no gui the loop blocks until one of the first three happens
	done := false
	var g gui.GUI

	handle := func(state stateRequest) {
		switch state.req {
		case reqQuit:
			done = true
			if g != nil {
				g.Destroy()
				g = nil
			}

			if state.args != nil {
				if v, ok := state.args.(int); ok {
					exitVal = v
				} else {
					panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
				}
			}

		case reqNoIntSig:
			signal.Reset(os.Interrupt)
			if state.args != nil {
				panic(fmt.Sprintf("%s does not accept any arguments", reqNoIntSig))
			}

		case reqRun:
			f, ok := state.args.(func() error)
			if !ok {
				panic(fmt.Sprintf("cannot convert %s arguments into func() error", reqRun))
			}
			sync.runResult <- f()
		}
	}

	create := func(creator func() (gui.GUI, error)) {
		// destroy existing gui
		if g != nil {
			g.Destroy()
			g = nil
		}

		ng, err := creator()
		if err != nil {
			sync.creationError <- err
			return
		}
		g = ng
		sync.creation <- g
	}

	for !done {
		if g == nil {
			select {
			case <-intChan:
				fmt.Println("\r")
				done = true
			case creator := <-sync.creator:
				create(creator)
			case state := <-sync.state:
				handle(state)
			}
			continue
		}

		select {
		case <-intChan:
			fmt.Println("\r")
			done = true
		case creator := <-sync.creator:
			create(creator)
		case state := <-sync.state:
			handle(state)
		default:
			g.Service()
		}
	}

	fmt.Print("\r")
	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate gui creation and to quit.
func launch(sync *mainSync) {
	logger.Log(logger.Allow, "vcsplay", version.String())

	app := cli.NewApp()
	app.Name = "vcsplay"
	app.Usage = "play Atari 2600 programs on a display surface"
	app.Version = version.String()
	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "echo log to stderr",
		},
		&cli.StringFlag{
			Name:  "prefs",
			Usage: "preferences file. the default file is in the resource directory",
		},
	}
	// errors are reported by launch() so that the main thread can clean up
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	app.Before = func(c *cli.Context) error {
		if c.Bool("verbose") {
			logger.SetEcho(os.Stderr)
		}
		return nil
	}
	app.Commands = []*cli.Command{
		{
			Name:   "list",
			Usage:  "list the programs in the catalog",
			Action: list,
		},
		{
			Name:      "play",
			Usage:     "play a catalog program, a file or a URL",
			ArgsUsage: "[NAME|FILE|URL]",
			Flags:     append(settingsFlags(), playFlags()...),
			Action: func(c *cli.Context) error {
				return play(c, sync)
			},
		},
		{
			Name:      "performance",
			Usage:     "measure the speed of the core without a display",
			ArgsUsage: "[NAME|FILE|URL]",
			Flags:     append(settingsFlags(), performanceFlags()...),
			Action:    perform,
		},
		{
			Name:      "digest",
			Usage:     "print the digest of the first frames of a program",
			ArgsUsage: "[NAME|FILE|URL]",
			Flags:     append(settingsFlags(), framesFlag(60)),
			Action:    digestFrames,
		},
		{
			Name:      "snapshot",
			Usage:     "save an image of a program after a number of frames",
			ArgsUsage: "[NAME|FILE|URL]",
			Flags: append(settingsFlags(), framesFlag(10), &cli.StringFlag{
				Name:  "output",
				Usage: "base of the output filename. the default is made from the program name",
			}),
			Action: snapshot,
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "* error: %v\n", err)
		exitVal := 10
		var ec cli.ExitCoder
		if errors.As(err, &ec) {
			exitVal = ec.ExitCode()
		}
		sync.state <- stateRequest{req: reqQuit, args: exitVal}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// flags common to all commands that run a program.
func settingsFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "server",
			Usage: "server for the catalog test programs",
		},
		&cli.StringFlag{
			Name:  "cache",
			Usage: "sqlite file used to cache fetched programs",
		},
		&cli.StringFlag{
			Name:  "mode",
			Usage: "television mode (split or packed)",
		},
		&cli.BoolFlag{
			Name:  "halve",
			Usage: "only draw every other scanline",
		},
		&cli.BoolFlag{
			Name:  "overlay",
			Usage: "draw the television guides over the image",
		},
		&cli.IntFlag{
			Name:  "interval",
			Usage: "milliseconds between ticks",
		},
		&cli.IntFlag{
			Name:  "cycles",
			Usage: "core cycles per tick",
		},
	}
}

func framesFlag(value int) cli.Flag {
	return &cli.IntFlag{
		Name:  "frames",
		Usage: "number of frames to run",
		Value: value,
	}
}

// load preferences and apply any settings flags that have been set on the
// command line. the command line values are not saved unless the caller
// saves the preferences.
func preferences(c *cli.Context) (*playback.Preferences, error) {
	var p *playback.Preferences
	var err error

	if pth := c.String("prefs"); pth != "" {
		p, err = playback.LoadPreferences(pth)
	} else {
		p, err = playback.NewPreferences()
	}
	if err != nil {
		return nil, err
	}

	if c.IsSet("server") {
		err = p.Server.Set(c.String("server"))
	}
	if err == nil && c.IsSet("cache") {
		err = p.Cache.Set(c.String("cache"))
	}
	if err == nil && c.IsSet("mode") {
		err = p.Mode.Set(c.String("mode"))
	}
	if err == nil && c.IsSet("halve") {
		err = p.Halve.Set(c.Bool("halve"))
	}
	if err == nil && c.IsSet("overlay") {
		err = p.Overlay.Set(c.Bool("overlay"))
	}
	if err == nil && c.IsSet("interval") {
		err = p.Interval.Set(c.Int("interval"))
	}
	if err == nil && c.IsSet("cycles") {
		err = p.Cycles.Set(c.Int("cycles"))
	}
	if err != nil {
		return nil, err
	}

	logger.Log(logger.Allow, "prefs", p.String())

	return p, nil
}

// statusInterval is how often the status line and window caption are
// updated.
const statusInterval = time.Second
