// window/glfwwin/glfwwin.go

// Package glfwwin implements the window contracts over GLFW. It is a
// renderer-driven backend: the renderer polls events and swaps buffers
// each frame, so [window.LoopHost] windows are refused.
//
// GLFW requires that Init, PollEvents, and window creation all happen on
// the main OS thread; callers are expected to lock it themselves.
package glfwwin

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/termin-graphics/tgfx/window"
)

// BackendName is the name this backend registers under
const BackendName = "glfw"

func init() {
	window.Register(BackendName, func() (window.Backend, error) {
		return NewBackend()
	})
}

// Backend wraps GLFW's global state
type Backend struct {
	initialized bool
}

// NewBackend initializes GLFW
func NewBackend() (*Backend, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("initializing GLFW: %w", err)
	}
	return &Backend{initialized: true}, nil
}

// Name implements [window.Backend]
func (b *Backend) Name() string { return BackendName }

// CreateWindow implements [window.Backend]
func (b *Backend) CreateWindow(opts window.Options) (window.Window, error) {
	if !b.initialized {
		return nil, fmt.Errorf("backend is terminated")
	}
	if opts.Loop == window.LoopHost {
		return nil, fmt.Errorf("glfw cannot host-drive a render loop")
	}

	var share *glfw.Window
	if opts.Share != nil {
		sw, ok := opts.Share.(*Window)
		if !ok {
			return nil, fmt.Errorf("share window is not a glfw window")
		}
		share = sw.win
	}

	width, height := opts.Width, opts.Height
	if width <= 0 {
		width = 800
	}
	if height <= 0 {
		height = 600
	}

	win, err := glfw.CreateWindow(width, height, opts.Title, nil, share)
	if err != nil {
		return nil, fmt.Errorf("creating window: %w", err)
	}

	return &Window{win: win}, nil
}

// PollEvents implements [window.Backend]
func (b *Backend) PollEvents() {
	glfw.PollEvents()
}

// Terminate implements [window.Backend]
func (b *Backend) Terminate() error {
	if b.initialized {
		glfw.Terminate()
		b.initialized = false
	}
	return nil
}

// Window adapts a GLFW window to [window.Window]
type Window struct {
	win         *glfw.Window
	userData    any
	graphics    any
	framebuffer any
}

// Close implements [window.Window]
func (w *Window) Close() error {
	w.win.Destroy()
	return nil
}

func (w *Window) ShouldClose() bool        { return w.win.ShouldClose() }
func (w *Window) SetShouldClose(flag bool) { w.win.SetShouldClose(flag) }

// MakeCurrent implements [window.Window]
func (w *Window) MakeCurrent() error {
	w.win.MakeContextCurrent()
	return nil
}

func (w *Window) SwapBuffers() { w.win.SwapBuffers() }

func (w *Window) FramebufferSize() (int, int) { return w.win.GetFramebufferSize() }
func (w *Window) Size() (int, int)            { return w.win.GetSize() }

func (w *Window) CursorPos() (float64, float64) { return w.win.GetCursorPos() }

// SetGraphics implements [window.Window]. Changing the backend drops any
// previously wrapped framebuffer handle.
func (w *Window) SetGraphics(graphics any) {
	w.graphics = graphics
	w.framebuffer = nil
}

// WindowFramebuffer implements [window.Window]. GLFW renders into
// framebuffer object 0; the handle wrapping it is created lazily and
// reused.
func (w *Window) WindowFramebuffer() any {
	src, ok := w.graphics.(window.FramebufferSource)
	if !ok {
		return nil
	}
	if w.framebuffer == nil {
		width, height := w.win.GetFramebufferSize()
		w.framebuffer = src.CreateExternalFramebuffer(0, width, height)
	}
	return w.framebuffer
}

func (w *Window) SetUserData(data any) { w.userData = data }
func (w *Window) UserData() any        { return w.userData }

// RequestUpdate is a no-op: a renderer-driven window is redrawn every
// frame anyway
func (w *Window) RequestUpdate() {}

// SetFramebufferSizeCallback implements [window.Window]
func (w *Window) SetFramebufferSizeCallback(fn window.FramebufferSizeFunc) {
	if fn == nil {
		w.win.SetFramebufferSizeCallback(nil)
		return
	}
	w.win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		fn(w, width, height)
	})
}

// SetCursorPosCallback implements [window.Window]
func (w *Window) SetCursorPosCallback(fn window.CursorPosFunc) {
	if fn == nil {
		w.win.SetCursorPosCallback(nil)
		return
	}
	w.win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		fn(w, x, y)
	})
}

// SetScrollCallback implements [window.Window]
func (w *Window) SetScrollCallback(fn window.ScrollFunc) {
	if fn == nil {
		w.win.SetScrollCallback(nil)
		return
	}
	w.win.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		fn(w, xoff, yoff)
	})
}

// SetMouseButtonCallback implements [window.Window]
func (w *Window) SetMouseButtonCallback(fn window.MouseButtonFunc) {
	if fn == nil {
		w.win.SetMouseButtonCallback(nil)
		return
	}
	w.win.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		fn(w, window.MouseButton(button), window.Action(action), window.ModifierKey(mods))
	})
}

// SetKeyCallback implements [window.Window]
func (w *Window) SetKeyCallback(fn window.KeyFunc) {
	if fn == nil {
		w.win.SetKeyCallback(nil)
		return
	}
	w.win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		fn(w, window.Key(key), scancode, window.Action(action), window.ModifierKey(mods))
	})
}
