// pkg/watch/watch_test.go
package watch

import (
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
)

func TestRelevant(t *testing.T) {
	tests := []struct {
		name string
		op   fsnotify.Op
		want bool
	}{
		{"src/tgfx_gpu_ops.c", fsnotify.Write, true},
		{"include/tgfx/handles.hpp", fsnotify.Create, true},
		{"CMakeLists.txt", fsnotify.Write, true},
		{"python/tgfx/__init__.py", fsnotify.Write, true},
		{"src/newdir", fsnotify.Create, true},
		{"src/module.o", fsnotify.Write, false},
		{".git/index.lock", fsnotify.Create, false},
		{"src/tgfx_log.c", fsnotify.Chmod, false},
	}

	for _, tt := range tests {
		got := relevant(fsnotify.Event{Name: tt.name, Op: tt.op})
		assert.Equal(t, tt.want, got, tt.name)
	}
}

func TestDebouncerSingleFirePerBurst(t *testing.T) {
	b := &debouncer{d: 20 * time.Millisecond}

	// Let the window expire with the tick unconsumed, then bump again; the
	// stale tick must not leak through as an early fire
	b.Bump()
	time.Sleep(40 * time.Millisecond)
	b.Bump()

	select {
	case <-b.C():
		t.Fatal("fired before the fresh debounce window elapsed")
	case <-time.After(5 * time.Millisecond):
	}

	select {
	case <-b.C():
	case <-time.After(200 * time.Millisecond):
		t.Fatal("debounce never fired")
	}
	b.Done()

	// Nothing pending, nothing to fire
	select {
	case <-b.C():
		t.Fatal("fired with no bump pending")
	case <-time.After(40 * time.Millisecond):
	}
}
