// window/backend.go
package window

// LoopKind selects who drives a window's render loop. The choice is made
// at window creation and fixed for the window's lifetime.
type LoopKind int

const (
	// LoopRenderer means the renderer drives the loop: it polls events,
	// draws, and swaps buffers each frame
	LoopRenderer LoopKind = iota

	// LoopHost means the host toolkit drives its own render loop and
	// calls the renderer back; such windows implement [HostDriven]
	LoopHost
)

// Options configures window creation. A zero Share means no context
// sharing; passing an existing window shares its GPU resources (textures,
// meshes, shaders) with the new window's context.
type Options struct {
	Width  int
	Height int
	Title  string
	Share  Window
	Loop   LoopKind
}

// Backend is a window-system integration (GLFW, SDL, an embedding
// toolkit). Implementations hold the toolkit's global state; the contract
// itself does not.
type Backend interface {
	// Name returns the backend's registry name
	Name() string

	// CreateWindow creates a window. When opts.Loop is LoopHost the
	// returned window must implement [HostDriven]; backends that cannot
	// host-drive must fail instead.
	CreateWindow(opts Options) (Window, error)

	// PollEvents pumps pending input events once, delivering callbacks
	// for every window created by this backend
	PollEvents()

	// Terminate releases all backend resources. Windows created by the
	// backend are invalid afterwards.
	Terminate() error
}
