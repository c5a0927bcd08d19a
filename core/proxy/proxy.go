// Package proxy provides the bookkeeping shared by every binding proxy.
// It manages the handle to the interpreter-owned object by composition
// rather than embedding a base class, so each proxy package keeps its own
// public surface while reusing one guard implementation.
package proxy

import (
	"sync"

	gkerrors "github.com/gokeras/gokeras/pkg/errors"
	"github.com/gokeras/gokeras/pkg/runtime"
)

// Handle holds a proxy's interpreter object in a thread-safe manner.
// The zero value is unbound; Bind attaches the object at construction time.
type Handle struct {
	mu    sync.RWMutex
	obj   *runtime.Object
	class string
}

// Bind attaches the interpreter object created for class to the handle.
func (h *Handle) Bind(class string, obj *runtime.Object) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.class = class
	h.obj = obj
}

// Object returns the underlying interpreter object, or nil when unbound.
func (h *Handle) Object() *runtime.Object {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.obj
}

// Class returns the library class name the handle was bound to.
func (h *Handle) Class() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.class
}

// Bound reports whether an interpreter object is attached.
func (h *Handle) Bound() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.obj.Valid()
}

// Require returns the attached object, or a NotBuiltError naming the method
// that was called on an unbound proxy.
func (h *Handle) Require(method string) (*runtime.Object, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if !h.obj.Valid() {
		class := h.class
		if class == "" {
			class = "proxy"
		}
		return nil, gkerrors.NewNotBuiltError(class, method)
	}
	return h.obj, nil
}
