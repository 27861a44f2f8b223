// window/registry_test.go
package window

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nullBackend struct{}

func (nullBackend) Name() string { return "null" }
func (nullBackend) CreateWindow(opts Options) (Window, error) {
	return nil, nil
}
func (nullBackend) PollEvents()      {}
func (nullBackend) Terminate() error { return nil }

func TestRegister(t *testing.T) {
	Register("null", func() (Backend, error) { return nullBackend{}, nil })

	b, err := Get("null")
	require.NoError(t, err)
	assert.Equal(t, "null", b.Name())

	assert.Contains(t, Names(), "null")
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup", func() (Backend, error) { return nullBackend{}, nil })

	assert.Panics(t, func() {
		Register("dup", func() (Backend, error) { return nullBackend{}, nil })
	})
}

func TestGetUnknown(t *testing.T) {
	_, err := Get("no-such-backend")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no-such-backend")
}
