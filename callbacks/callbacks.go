// Package callbacks exposes the wrapped library's training callbacks to Go
// code. Every type here is a proxy: its constructor collects named options
// into a parameter bag, hands the bag to the interpreter bridge, and keeps a
// handle to the library-side object. Option validation, trigger logic, and
// all training-time behavior live inside the library; the proxies only
// marshal configuration in and copy recorded state out.
//
// Option names match the library's keyword arguments exactly, so the
// library's own defaulting applies to every option a caller leaves unset.
package callbacks

import (
	"github.com/gokeras/gokeras/core/proxy"
	"github.com/gokeras/gokeras/pkg/params"
	"github.com/gokeras/gokeras/pkg/runtime"
)

// Handle is implemented by every callback proxy. Model fitting accepts any
// Handle, including callbacks constructed outside this package.
type Handle interface {
	// Object returns the interpreter-side callback object.
	Object() *runtime.Object
}

// Callback is the common part of every callback proxy. It carries the
// interpreter handle and nothing else.
type Callback struct {
	proxy.Handle
}

// build constructs the library-side callback and binds it to the proxy.
func (c *Callback) build(class string, bag *params.Bag) error {
	obj, err := runtime.New(class, bag)
	if err != nil {
		return err
	}
	c.Bind(class, obj)
	return nil
}

// NewCallback constructs the library's no-op base callback. It is rarely
// useful on its own but mirrors the wrapped API surface.
func NewCallback() (*Callback, error) {
	c := &Callback{}
	if err := c.build("Callback", nil); err != nil {
		return nil, err
	}
	return c, nil
}
