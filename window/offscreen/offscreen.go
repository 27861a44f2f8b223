// window/offscreen/offscreen.go

// Package offscreen is a headless window backend. It renders nowhere and
// pumps events only when told to, which makes it the reference
// implementation for tests and for host-driven integrations: update
// requests are coalesced and delivered as a single render per event pump.
package offscreen

import (
	"fmt"

	"github.com/termin-graphics/tgfx/window"
)

// BackendName is the name this backend registers under
const BackendName = "offscreen"

func init() {
	window.Register(BackendName, func() (window.Backend, error) {
		return NewBackend(), nil
	})
}

// Backend tracks the windows it created so PollEvents can deliver
// coalesced render requests
type Backend struct {
	windows    []*Window
	terminated bool
}

// NewBackend creates a headless backend
func NewBackend() *Backend {
	return &Backend{}
}

// Name implements [window.Backend]
func (b *Backend) Name() string { return BackendName }

// CreateWindow implements [window.Backend]. Both loop kinds are
// supported; a LoopHost window implements [window.HostDriven].
func (b *Backend) CreateWindow(opts window.Options) (window.Window, error) {
	if b.terminated {
		return nil, fmt.Errorf("backend is terminated")
	}
	if opts.Share != nil {
		if _, ok := opts.Share.(*Window); !ok {
			return nil, fmt.Errorf("share window is not an offscreen window")
		}
	}

	width, height := opts.Width, opts.Height
	if width <= 0 {
		width = 640
	}
	if height <= 0 {
		height = 480
	}

	w := &Window{
		backend: b,
		width:   width,
		height:  height,
		title:   opts.Title,
		loop:    opts.Loop,
		scale:   1,
	}
	b.windows = append(b.windows, w)
	return w, nil
}

// PollEvents implements [window.Backend]. For host-driven windows, any
// number of pending update requests collapses into one render call;
// closed windows are never rendered.
func (b *Backend) PollEvents() {
	for _, w := range b.windows {
		if w.closed {
			continue
		}
		if w.loop == window.LoopHost && w.updatePending && w.renderFn != nil {
			w.updatePending = false
			w.renderFn()
		}
	}
}

// Terminate implements [window.Backend]
func (b *Backend) Terminate() error {
	for _, w := range b.windows {
		w.closed = true
	}
	b.windows = nil
	b.terminated = true
	return nil
}

// Window is a headless window. Its Emit and Resize methods stand in for
// the input a real toolkit would deliver.
type Window struct {
	backend *Backend
	width   int
	height  int
	title   string
	loop    window.LoopKind
	scale   int

	closed      bool
	shouldClose bool
	cursorX     float64
	cursorY     float64
	userData    any
	graphics    any
	framebuffer any

	updatePending bool
	renderFn      func()

	fbSizeFn window.FramebufferSizeFunc
	cursorFn window.CursorPosFunc
	scrollFn window.ScrollFunc
	mouseFn  window.MouseButtonFunc
	keyFn    window.KeyFunc
}

var _ window.HostDriven = (*Window)(nil)

// Close implements [window.Window]. Pending update requests die with the
// window.
func (w *Window) Close() error {
	w.closed = true
	w.updatePending = false
	return nil
}

func (w *Window) ShouldClose() bool        { return w.shouldClose }
func (w *Window) SetShouldClose(flag bool) { w.shouldClose = flag }

// MakeCurrent implements [window.Window]; a headless window has no real
// context, so this only validates liveness
func (w *Window) MakeCurrent() error {
	if w.closed {
		return fmt.Errorf("window is closed")
	}
	return nil
}

func (w *Window) SwapBuffers() {}

func (w *Window) FramebufferSize() (int, int) { return w.width * w.scale, w.height * w.scale }
func (w *Window) Size() (int, int)            { return w.width, w.height }

func (w *Window) CursorPos() (float64, float64) { return w.cursorX, w.cursorY }

// SetGraphics implements [window.Window]. Changing the backend drops any
// previously wrapped framebuffer handle.
func (w *Window) SetGraphics(graphics any) {
	w.graphics = graphics
	w.framebuffer = nil
}

// WindowFramebuffer implements [window.Window]; the handle wrapping the
// default framebuffer is created lazily and reused
func (w *Window) WindowFramebuffer() any {
	src, ok := w.graphics.(window.FramebufferSource)
	if !ok {
		return nil
	}
	if w.framebuffer == nil {
		pw, ph := w.FramebufferSize()
		w.framebuffer = src.CreateExternalFramebuffer(0, pw, ph)
	}
	return w.framebuffer
}

func (w *Window) SetUserData(data any) { w.userData = data }
func (w *Window) UserData() any        { return w.userData }

// RequestUpdate implements [window.Window]; requests coalesce until the
// next event pump
func (w *Window) RequestUpdate() {
	w.updatePending = true
}

// OnRender implements [window.HostDriven]
func (w *Window) OnRender(fn func()) {
	w.renderFn = fn
}

func (w *Window) SetFramebufferSizeCallback(fn window.FramebufferSizeFunc) { w.fbSizeFn = fn }
func (w *Window) SetCursorPosCallback(fn window.CursorPosFunc)             { w.cursorFn = fn }
func (w *Window) SetScrollCallback(fn window.ScrollFunc)                   { w.scrollFn = fn }
func (w *Window) SetMouseButtonCallback(fn window.MouseButtonFunc)         { w.mouseFn = fn }
func (w *Window) SetKeyCallback(fn window.KeyFunc)                         { w.keyFn = fn }

// SetScale sets the pixel-to-logical ratio, simulating a high-DPI display
func (w *Window) SetScale(scale int) {
	if scale < 1 {
		scale = 1
	}
	w.scale = scale
}

// Resize changes the logical size and notifies the resize observer with
// the new framebuffer pixel size
func (w *Window) Resize(width, height int) {
	w.width, w.height = width, height
	if w.fbSizeFn != nil {
		pw, ph := w.FramebufferSize()
		w.fbSizeFn(w, pw, ph)
	}
}

// MoveCursor moves the cursor and notifies the cursor observer
func (w *Window) MoveCursor(x, y float64) {
	w.cursorX, w.cursorY = x, y
	if w.cursorFn != nil {
		w.cursorFn(w, x, y)
	}
}

// EmitScroll notifies the scroll observer
func (w *Window) EmitScroll(xoff, yoff float64) {
	if w.scrollFn != nil {
		w.scrollFn(w, xoff, yoff)
	}
}

// EmitMouseButton notifies the mouse-button observer
func (w *Window) EmitMouseButton(button window.MouseButton, action window.Action, mods window.ModifierKey) {
	if w.mouseFn != nil {
		w.mouseFn(w, button, action, mods)
	}
}

// EmitKey notifies the key observer
func (w *Window) EmitKey(key window.Key, scancode int, action window.Action, mods window.ModifierKey) {
	if w.keyFn != nil {
		w.keyFn(w, key, scancode, action, mods)
	}
}
