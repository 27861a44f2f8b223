// window/registry.go
package window

import (
	"fmt"
	"sort"
	"sync"
)

// Factory creates a backend instance
type Factory func() (Backend, error)

var (
	registryMu sync.RWMutex
	registry   = map[string]Factory{}
)

// Register makes a backend available under the given name. Backend
// packages call it from init; registering the same name twice panics.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if _, dup := registry[name]; dup {
		panic(fmt.Sprintf("window: backend %q registered twice", name))
	}
	registry[name] = factory
}

// Get instantiates the named backend
func Get(name string) (Backend, error) {
	registryMu.RLock()
	factory, ok := registry[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("window: unknown backend %q (registered: %v)", name, Names())
	}
	return factory()
}

// Names returns the registered backend names, sorted
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
