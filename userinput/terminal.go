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

package userinput

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/pkg/term"
	"github.com/vcsplay/vcsplay/gui"
	xterm "golang.org/x/term"
)

// the device for the controlling terminal
const ttyDevice = "/dev/tty"

// how often the reading goroutine checks for the end of input
const readTimeout = 100 * time.Millisecond

// ErrNotTerminal is returned by NewTerminal() if the standard input is not a
// terminal.
var ErrNotTerminal = errors.New("userinput: not a terminal")

// Terminal reads single key presses from the terminal and writes the status
// line. Keys are sent to the events channel as gui.EventKeyboard values.
type Terminal struct {
	tty    *term.Term
	output *os.File

	events chan gui.Event

	quit chan bool
	done chan bool
	once sync.Once

	// the length of the last status line written
	crit      sync.Mutex
	statusLen int
}

// NewTerminal puts the terminal into cbreak mode and starts reading key
// presses. Stop() must be called to restore the terminal.
func NewTerminal(events chan gui.Event) (*Terminal, error) {
	if !xterm.IsTerminal(int(os.Stdin.Fd())) {
		return nil, ErrNotTerminal
	}

	tty, err := term.Open(ttyDevice, term.CBreakMode)
	if err != nil {
		return nil, fmt.Errorf("userinput: %w", err)
	}

	err = tty.SetReadTimeout(readTimeout)
	if err != nil {
		_ = tty.Restore()
		_ = tty.Close()
		return nil, fmt.Errorf("userinput: %w", err)
	}

	trm := &Terminal{
		tty:    tty,
		output: os.Stdout,
		events: events,
		quit:   make(chan bool),
		done:   make(chan bool),
	}

	go trm.read()

	return trm, nil
}

func (trm *Terminal) read() {
	defer close(trm.done)

	b := make([]byte, 1)
	for {
		select {
		case <-trm.quit:
			return
		default:
		}

		n, err := trm.tty.Read(b)
		if err != nil && !errors.Is(err, io.EOF) {
			trm.send(fmt.Errorf("userinput: %w", err))
			return
		}
		if n == 0 {
			continue
		}

		// ctrl-c and ctrl-d are treated the same as the quit key. cbreak mode
		// means that ctrl-c never reaches us as a byte but that depends on the
		// terminal settings
		switch b[0] {
		case 0x03, 0x04:
			trm.send(gui.EventQuit{})
		case 0x1b:
			trm.send(gui.EventKeyboard{Key: "Escape", Down: true})
		default:
			trm.send(gui.EventKeyboard{Key: strings.ToUpper(string(b[0])), Down: true})
		}
	}
}

func (trm *Terminal) send(ev gui.Event) {
	select {
	case trm.events <- ev:
	case <-trm.quit:
	}
}

// Stop reading from the terminal and restore the terminal to the mode it
// was in when NewTerminal() was called.
func (trm *Terminal) Stop() {
	trm.once.Do(func() {
		close(trm.quit)
		<-trm.done
		trm.clearStatus()
		_ = trm.tty.Restore()
		_ = trm.tty.Close()
	})
}

// Status writes the status line, replacing the previous status line.
func (trm *Terminal) Status(name string, fps float64) {
	width, _, err := xterm.GetSize(int(trm.output.Fd()))
	if err != nil {
		width = 0
	}

	s := FormatStatus(width, name, fps)

	trm.crit.Lock()
	defer trm.crit.Unlock()

	pad := ""
	if n := trm.statusLen - len(s); n > 0 {
		pad = strings.Repeat(" ", n)
	}
	fmt.Fprintf(trm.output, "\r%s%s", s, pad)
	trm.statusLen = len(s)
}

func (trm *Terminal) clearStatus() {
	trm.crit.Lock()
	defer trm.crit.Unlock()
	if trm.statusLen > 0 {
		fmt.Fprintf(trm.output, "\r%s\r", strings.Repeat(" ", trm.statusLen))
		trm.statusLen = 0
	}
}

// FormatStatus returns the status line for the program name and FPS value.
// The line is truncated to the width, if the width is greater than zero.
func FormatStatus(width int, name string, fps float64) string {
	if name == "" {
		name = "no program"
	}

	s := fmt.Sprintf("%s :: %.1f fps :: [n]ext [p]rev [s]napshot [c]opy [o]verlay [q]uit", name, fps)

	// leave the last column free so that the terminal does not wrap
	if width > 1 && len(s) > width-1 {
		s = s[:width-1]
	}

	return s
}
