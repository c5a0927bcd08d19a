// Package layers exposes the wrapped library's layer classes to Go code.
// A layer proxy holds nothing but its constructor configuration, marshaled
// once into a parameter bag, and the handle of the interpreter-side layer
// object. Shape inference, weight creation, and the forward computation are
// entirely library concerns.
package layers

import (
	"github.com/gokeras/gokeras/core/proxy"
	"github.com/gokeras/gokeras/pkg/params"
	"github.com/gokeras/gokeras/pkg/runtime"
)

// Layer is implemented by every layer proxy. Models accept any Layer,
// including layers constructed outside this package.
type Layer interface {
	// Object returns the interpreter-side layer object.
	Object() *runtime.Object
}

// Base is the common part of every layer proxy.
type Base struct {
	proxy.Handle
}

// build constructs the library-side layer and binds it to the proxy.
func (b *Base) build(class string, bag *params.Bag) error {
	obj, err := runtime.New(class, bag)
	if err != nil {
		return err
	}
	b.Bind(class, obj)
	return nil
}

// Name reads back the name the library assigned to the layer.
func (b *Base) Name() (string, error) {
	obj, err := b.Require("Name")
	if err != nil {
		return "", err
	}
	return obj.AttrString("name")
}

// setInputShape stores an optional input_shape option. Only the first layer
// of a model carries one; elsewhere the library infers shapes.
func setInputShape(bag *params.Bag, shape []int) {
	if shape == nil {
		return
	}
	bag.Set("input_shape", shape)
}
