package models

import (
	"github.com/gokeras/gokeras/layers"
	"github.com/gokeras/gokeras/pkg/runtime"
)

// Sequential proxies the library's linear layer stack. Layers are appended
// with Add; everything after that is the shared Model surface.
type Sequential struct {
	Model
}

// NewSequential constructs the library-side Sequential model and appends the
// given layers in order.
func NewSequential(stack ...layers.Layer) (*Sequential, error) {
	s := &Sequential{}
	obj, err := runtime.New("Sequential", nil)
	if err != nil {
		return nil, err
	}
	s.Bind("Sequential", obj)

	for _, l := range stack {
		if err := s.Add(l); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Add appends a layer to the stack. The library performs all shape checking.
func (s *Sequential) Add(l layers.Layer) error {
	obj, err := s.Require("Add")
	if err != nil {
		return err
	}
	_, err = obj.Call("add", []interface{}{l.Object()}, nil)
	return err
}

// Pop removes the last layer of the stack.
func (s *Sequential) Pop() error {
	obj, err := s.Require("Pop")
	if err != nil {
		return err
	}
	_, err = obj.Call("pop", nil, nil)
	return err
}
