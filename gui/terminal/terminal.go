// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package terminal

import (
	"os"
	"strings"
	"sync"
	"time"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/govern"
	"github.com/jetsetilly/gopher8/gui/terminal/easyterm"
	"github.com/jetsetilly/gopher8/gui/terminal/easyterm/ansi"
	"github.com/jetsetilly/gopher8/hardware/display"
	"golang.org/x/term"
)

// how long a key is considered held after it has been pressed
const holdDuration = 150 * time.Millisecond

// Terminal implements the hardware.Renderer and input.Source interfaces.
type Terminal struct {
	et  easyterm.Terminal
	pal display.Palette

	// the title is printed underneath the display
	title string

	crit sync.Mutex

	// serialises writes of the display with changes to the terminal mode
	outputCrit sync.Mutex

	// the terminal has been returned to its normal state and must not be
	// written to again
	destroyed bool

	// the time each key was most recently pressed
	pressed map[string]time.Time
	now     func() time.Time

	paused bool
	quit   bool

	// error from the input goroutine
	err error
}

func newTerminal(pal display.Palette, title string) *Terminal {
	return &Terminal{
		pal:     pal,
		title:   title,
		pressed: make(map[string]time.Time),
		now:     time.Now,
	}
}

// NewTerminal is the preferred method of initialisation for the Terminal
// type. Both the input and output files must be terminals.
func NewTerminal(input *os.File, output *os.File, pal display.Palette, title string) (*Terminal, error) {
	if !term.IsTerminal(int(input.Fd())) {
		return nil, curated.Errorf("terminal: %v", "input is not a terminal")
	}
	if !term.IsTerminal(int(output.Fd())) {
		return nil, curated.Errorf("terminal: %v", "output is not a terminal")
	}

	trm := newTerminal(pal, title)

	err := trm.et.Initialise(input, output)
	if err != nil {
		return nil, curated.Errorf("terminal: %v", err)
	}

	g := trm.et.Geometry()
	if g.Cols > 0 && (g.Cols < display.Width || g.Rows < display.Height/2+1) {
		trm.et.CleanUp()
		return nil, curated.Errorf("terminal: %v", "terminal is too small for the display")
	}

	trm.et.RawMode()
	trm.et.Print("%s%s", ansi.ClearScreen, ansi.CursorHide)

	go trm.readInput()

	return trm, nil
}

// Destroy returns the terminal to its normal state.
func (trm *Terminal) Destroy() {
	trm.outputCrit.Lock()
	defer trm.outputCrit.Unlock()

	if trm.markDestroyed() {
		return
	}

	trm.et.Print("%s%s\n", ansi.NormalPen, ansi.CursorShow)
	trm.et.CleanUp()
}

// markDestroyed returns true if the terminal had already been destroyed.
func (trm *Terminal) markDestroyed() bool {
	trm.crit.Lock()
	defer trm.crit.Unlock()
	d := trm.destroyed
	trm.destroyed = true
	return d
}

// the goroutine ends on an input error, a quit key or the first key after
// Destroy(). a blocked read cannot be interrupted so if no key is pressed
// after Destroy() the goroutine ends with the process
func (trm *Terminal) readInput() {
	b := make([]byte, 1)
	for {
		_, err := trm.et.Read(b)
		if err != nil {
			trm.crit.Lock()
			trm.err = curated.Errorf("terminal: %v", err)
			trm.crit.Unlock()
			return
		}
		if trm.handleKey(b[0]) {
			return
		}
	}
}

// handleKey returns true if the input goroutine should end.
func (trm *Terminal) handleKey(b byte) bool {
	trm.crit.Lock()

	if trm.destroyed {
		trm.crit.Unlock()
		return true
	}

	switch b {
	case easyterm.KeyInterrupt, easyterm.KeyEsc:
		trm.quit = true
		trm.crit.Unlock()
		return true
	case easyterm.KeySpace:
		trm.paused = !trm.paused
	case easyterm.KeySuspend:
		trm.crit.Unlock()
		return trm.suspend()
	default:
		trm.pressed[strings.ToUpper(string(rune(b)))] = trm.now()
	}

	trm.crit.Unlock()
	return false
}

// suspend the process. the terminal is returned to canonical mode while the
// process is suspended. returns true if the terminal has been destroyed
func (trm *Terminal) suspend() bool {
	trm.outputCrit.Lock()
	defer trm.outputCrit.Unlock()

	trm.crit.Lock()
	destroyed := trm.destroyed
	trm.crit.Unlock()
	if destroyed {
		return true
	}

	trm.et.CanonicalMode()
	_ = easyterm.SuspendProcess()
	trm.et.RawMode()

	return false
}

// Pressed implements the input.Source interface.
func (trm *Terminal) Pressed(symbol string) bool {
	trm.crit.Lock()
	defer trm.crit.Unlock()
	t, ok := trm.pressed[strings.ToUpper(symbol)]
	return ok && trm.now().Sub(t) < holdDuration
}

// ContinueCheck is suitable for use with the hardware.Run() function.
func (trm *Terminal) ContinueCheck() (govern.State, error) {
	trm.crit.Lock()
	defer trm.crit.Unlock()

	if trm.err != nil {
		return govern.Ending, trm.err
	}
	if trm.quit {
		return govern.Ending, nil
	}
	if trm.paused {
		return govern.Paused, nil
	}
	return govern.Running, nil
}

// UpdateDisplay implements the hardware.Renderer interface.
func (trm *Terminal) UpdateDisplay(disp *display.Display) error {
	trm.outputCrit.Lock()
	defer trm.outputCrit.Unlock()

	trm.crit.Lock()
	destroyed := trm.destroyed
	status := trm.title
	if trm.paused {
		status += " [paused]"
	}
	trm.crit.Unlock()

	if destroyed {
		return nil
	}

	_, err := trm.et.Write([]byte(frame(disp, trm.pal, status)))
	if err != nil {
		return curated.Errorf("terminal: %v", err)
	}
	return nil
}

// frame returns the display as a string of ANSI sequences. Each character
// cell is two pixels high, the upper pixel drawn in the pen colour and the
// lower pixel in the paper colour.
func frame(disp *display.Display, pal display.Palette, status string) string {
	colour := func(on bool) uint32 {
		if on {
			return pal.Foreground
		}
		return pal.Background
	}

	s := strings.Builder{}
	s.WriteString(ansi.CursorHome)

	for y := 0; y < display.Height; y += 2 {
		var prev string
		for x := 0; x < display.Width; x++ {
			c := ansi.TrueColor(colour(disp.Pixel(x, y)), colour(disp.Pixel(x, y+1)))
			if c != prev {
				s.WriteString(c)
				prev = c
			}
			s.WriteString("▀")
		}
		s.WriteString(ansi.NormalPen)
		s.WriteString("\n")
	}

	s.WriteString(ansi.ClearLine)
	s.WriteString(status)

	return s.String()
}
