// window/window.go

// Package window defines the contracts a host windowing integration must
// satisfy so the renderer can draw into a window it does not own. The
// package holds no state and performs no I/O; conforming implementations
// wrap a concrete toolkit (GLFW, Qt, SDL) and deliver input callbacks from
// that toolkit's own event loop.
package window

// Window is a drawable surface owned by a host windowing toolkit.
//
// Callback delivery timing and thread affinity are the backend's business;
// callers must not assume callbacks arrive on any particular goroutine.
type Window interface {
	// Close destroys the window and releases its toolkit resources
	Close() error

	// ShouldClose reports whether the user or host requested the window
	// be closed
	ShouldClose() bool

	// SetShouldClose sets or clears the close request
	SetShouldClose(flag bool)

	// MakeCurrent binds the window's drawing context to the calling thread
	MakeCurrent() error

	// SwapBuffers presents the back buffer
	SwapBuffers()

	// FramebufferSize returns the drawable size in pixels
	FramebufferSize() (width, height int)

	// Size returns the window size in logical (screen) units, which may
	// differ from FramebufferSize on high-DPI displays
	Size() (width, height int)

	// CursorPos returns the cursor position in logical units
	CursorPos() (x, y float64)

	// SetFramebufferSizeCallback registers the resize observer
	SetFramebufferSizeCallback(fn FramebufferSizeFunc)

	// SetCursorPosCallback registers the cursor-move observer
	SetCursorPosCallback(fn CursorPosFunc)

	// SetScrollCallback registers the scroll observer
	SetScrollCallback(fn ScrollFunc)

	// SetMouseButtonCallback registers the mouse-button observer
	SetMouseButtonCallback(fn MouseButtonFunc)

	// SetKeyCallback registers the key observer
	SetKeyCallback(fn KeyFunc)

	// SetGraphics hands the window the renderer's graphics backend. The
	// backend is used to wrap the window's default framebuffer; see
	// WindowFramebuffer.
	SetGraphics(graphics any)

	// WindowFramebuffer returns an opaque handle for the window's default
	// framebuffer, created through the graphics backend on first use. It
	// returns nil until a backend implementing [FramebufferSource] has
	// been set with SetGraphics.
	WindowFramebuffer() any

	// SetUserData associates an arbitrary caller-owned value with the
	// window, for context recovery inside callbacks
	SetUserData(data any)

	// UserData returns the value set by SetUserData, or nil
	UserData() any

	// RequestUpdate hints that the window should be redrawn soon. It is an
	// at-least-one-redraw-eventually hint: deliveries may be coalesced and
	// no redraw is guaranteed within any particular frame.
	RequestUpdate()
}

// FramebufferSource creates framebuffer handles over the window's drawing
// context. The renderer's graphics backend satisfies it; the handles it
// returns are opaque to this package.
type FramebufferSource interface {
	// CreateExternalFramebuffer wraps an existing toolkit framebuffer
	// object of the given pixel size. The default window framebuffer is
	// object 0.
	CreateExternalFramebuffer(fbo uint32, width, height int) any
}

// HostDriven is implemented by windows whose toolkit owns the frame loop
// (for example a Qt widget). The renderer registers its frame function
// with OnRender and the toolkit decides when to call it; RequestUpdate is
// the way to ask for another frame.
//
// A window created with [LoopHost] must implement this interface.
type HostDriven interface {
	Window

	// OnRender registers the function the host toolkit invokes to draw
	// one frame
	OnRender(fn func())
}
