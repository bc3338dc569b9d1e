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

package sdl

import (
	"fmt"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/govern"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/input"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/veandco/go-sdl2/sdl"
)

// the texture is always the size of the display. scaling is performed by the
// SDL renderer
const pixelDepth = 4

// SDL implements the hardware.Renderer and input.Source interfaces.
type SDL struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	pixels []byte
	pal    display.Palette

	title string

	// state of the physical keyboard. keys are named with sdl.GetKeyName()
	keys *input.KeySet

	paused bool
	quit   bool
}

// NewSDL is the preferred method of initialisation for the SDL type. The
// window is scaled by the scale argument.
func NewSDL(scale int, pal display.Palette, title string) (*SDL, error) {
	if scale < 1 {
		return nil, curated.Errorf("sdl: %v", fmt.Sprintf("scale must be positive (%d)", scale))
	}

	gui := &SDL{
		pal:    pal,
		title:  title,
		keys:   input.NewKeySet(),
		pixels: make([]byte, display.Width*display.Height*pixelDepth),
	}

	err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO)
	if err != nil {
		return nil, curated.Errorf("sdl: %v", err)
	}

	w, h := display.RenderSize(scale)

	gui.window, err = sdl.CreateWindow(title,
		int32(sdl.WINDOWPOS_CENTERED), int32(sdl.WINDOWPOS_CENTERED),
		int32(w), int32(h), uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		gui.Destroy()
		return nil, curated.Errorf("sdl: %v", err)
	}

	gui.renderer, err = sdl.CreateRenderer(gui.window, -1, uint32(sdl.RENDERER_ACCELERATED)|uint32(sdl.RENDERER_PRESENTVSYNC))
	if err != nil {
		gui.Destroy()
		return nil, curated.Errorf("sdl: %v", err)
	}

	gui.texture, err = gui.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888), int(sdl.TEXTUREACCESS_STREAMING),
		int32(display.Width), int32(display.Height))
	if err != nil {
		gui.Destroy()
		return nil, curated.Errorf("sdl: %v", err)
	}

	// show the blank display
	err = gui.UpdateDisplay(display.NewDisplay())
	if err != nil {
		gui.Destroy()
		return nil, err
	}

	logger.Logf(logger.Allow, "sdl", "window opened at scale %d (%dx%d)", scale, w, h)

	return gui, nil
}

// Destroy the window and free any SDL resources.
func (gui *SDL) Destroy() {
	if gui.texture != nil {
		_ = gui.texture.Destroy()
		gui.texture = nil
	}
	if gui.renderer != nil {
		_ = gui.renderer.Destroy()
		gui.renderer = nil
	}
	if gui.window != nil {
		_ = gui.window.Destroy()
		gui.window = nil
	}
	sdl.Quit()
}

// UpdateDisplay implements the hardware.Renderer interface.
func (gui *SDL) UpdateDisplay(disp *display.Display) error {
	err := disp.RenderRGBA(gui.pixels, 1, gui.pal)
	if err != nil {
		return curated.Errorf("sdl: %v", err)
	}

	err = gui.texture.Update(nil, gui.pixels, display.Width*pixelDepth)
	if err != nil {
		return curated.Errorf("sdl: %v", err)
	}

	err = gui.renderer.Clear()
	if err != nil {
		return curated.Errorf("sdl: %v", err)
	}

	err = gui.renderer.Copy(gui.texture, nil, nil)
	if err != nil {
		return curated.Errorf("sdl: %v", err)
	}

	gui.renderer.Present()

	return nil
}

// Pressed implements the input.Source interface.
func (gui *SDL) Pressed(symbol string) bool {
	return gui.keys.Pressed(symbol)
}

// ContinueCheck is suitable for use with the hardware.Run() function. It
// services the SDL event queue and so must be called from the main thread.
func (gui *SDL) ContinueCheck() (govern.State, error) {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			gui.quit = true

		case *sdl.KeyboardEvent:
			if ev.Repeat != 0 {
				continue
			}

			key := sdl.GetKeyName(ev.Keysym.Sym)

			switch ev.Type {
			case sdl.KEYDOWN:
				switch key {
				case "Escape":
					gui.quit = true
				case "Space":
					gui.setPaused(!gui.paused)
				default:
					gui.keys.Press(key)
				}
			case sdl.KEYUP:
				gui.keys.Release(key)
			}

		case *sdl.WindowEvent:
			// keys released while the window does not have focus are never
			// reported
			if ev.Event == sdl.WINDOWEVENT_FOCUS_LOST {
				gui.keys.ReleaseAll()
			}
		}
	}

	if gui.quit {
		return govern.Ending, nil
	}
	if gui.paused {
		return govern.Paused, nil
	}
	return govern.Running, nil
}

func (gui *SDL) setPaused(paused bool) {
	gui.paused = paused
	if paused {
		gui.window.SetTitle(fmt.Sprintf("%s [paused]", gui.title))
	} else {
		gui.window.SetTitle(gui.title)
	}
}
