// window/events.go
package window

// Action is the state transition carried by button and key events
type Action int

const (
	// Release means the button or key was released
	Release Action = iota
	// Press means the button or key was pressed
	Press
	// Repeat means a held key generated a repeat
	Repeat
)

// MouseButton identifies a mouse button
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

// Key is the toolkit's native keycode, passed through unmapped. The
// renderer treats it as opaque; applications that need symbolic keys
// consult their backend's own constants.
type Key int

// ModifierKey is a bitmask of modifier keys held during an event
type ModifierKey int

const (
	ModShift ModifierKey = 1 << iota
	ModControl
	ModAlt
	ModSuper
)

// FramebufferSizeFunc observes framebuffer pixel-size changes
type FramebufferSizeFunc func(w Window, width, height int)

// CursorPosFunc observes cursor movement in logical units
type CursorPosFunc func(w Window, x, y float64)

// ScrollFunc observes scroll wheel or trackpad deltas
type ScrollFunc func(w Window, xoff, yoff float64)

// MouseButtonFunc observes mouse button transitions
type MouseButtonFunc func(w Window, button MouseButton, action Action, mods ModifierKey)

// KeyFunc observes key transitions
type KeyFunc func(w Window, key Key, scancode int, action Action, mods ModifierKey)
