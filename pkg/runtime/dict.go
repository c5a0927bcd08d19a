package runtime

import (
	"sort"

	"github.com/go-python/gpython/py"

	gkerrors "github.com/gokeras/gokeras/pkg/errors"
)

// Item reads one entry of an interpreter dict and returns it as a new
// handle. Missing keys are an error; use Keys to enumerate first when the
// key set is not known.
func (o *Object) Item(key string) (*Object, error) {
	if err := o.require("Item"); err != nil {
		return nil, err
	}
	defer lock()()
	dict, ok := o.obj.(py.StringDict)
	if !ok {
		return nil, gkerrors.NewConversionError(o.class, key, "dict", "interpreter value is not a dict")
	}
	v, ok := dict[key]
	if !ok {
		return nil, gkerrors.Newf("gokeras: %s: dict has no key %q", o.class, key)
	}
	return &Object{obj: v, class: key}, nil
}

// Keys returns the sorted key set of an interpreter dict.
func (o *Object) Keys() ([]string, error) {
	if err := o.require("Keys"); err != nil {
		return nil, err
	}
	defer lock()()
	dict, ok := o.obj.(py.StringDict)
	if !ok {
		return nil, gkerrors.NewConversionError(o.class, "", "dict", "interpreter value is not a dict")
	}
	keys := make([]string, 0, len(dict))
	for k := range dict {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

// Strings copies the value out as a []string. The interpreter value must be
// a list or tuple of strings.
func (o *Object) Strings() ([]string, error) {
	if err := o.require("Strings"); err != nil {
		return nil, err
	}
	defer lock()()
	items, err := sequenceItems(o.class, o.obj)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		s, ok := it.(py.String)
		if !ok {
			return nil, gkerrors.NewConversionError(o.class, "", "[]string", "sequence element is not a string")
		}
		out = append(out, string(s))
	}
	return out, nil
}

// StringMap copies the value out as a map[string]string. The interpreter
// value must be a dict of strings.
func (o *Object) StringMap() (map[string]string, error) {
	if err := o.require("StringMap"); err != nil {
		return nil, err
	}
	defer lock()()
	dict, ok := o.obj.(py.StringDict)
	if !ok {
		return nil, gkerrors.NewConversionError(o.class, "", "map[string]string", "interpreter value is not a dict")
	}
	out := make(map[string]string, len(dict))
	for k, v := range dict {
		s, ok := v.(py.String)
		if !ok {
			return nil, gkerrors.NewConversionError(o.class, k, "map[string]string", "dict value is not a string")
		}
		out[k] = string(s)
	}
	return out, nil
}

// Len returns the length of an interpreter list, tuple, or dict.
func (o *Object) Len() (int, error) {
	if err := o.require("Len"); err != nil {
		return 0, err
	}
	defer lock()()
	switch v := o.obj.(type) {
	case *py.List:
		return len(v.Items), nil
	case py.Tuple:
		return len(v), nil
	case py.StringDict:
		return len(v), nil
	default:
		return 0, gkerrors.NewConversionError(o.class, "", "length", "interpreter value has no length")
	}
}
