package runtime

import (
	"github.com/go-python/gpython/py"

	gkerrors "github.com/gokeras/gokeras/pkg/errors"
	"github.com/gokeras/gokeras/pkg/log"
	"github.com/gokeras/gokeras/pkg/params"
)

// Object is an opaque handle to a value owned by the embedded interpreter.
// The interpreter, not the host, controls the value's lifetime; an Object
// merely keeps it reachable. The zero value represents "no object" and every
// method on it fails with a NotBuiltError.
type Object struct {
	obj   py.Object
	class string
}

// Class returns the library class name the object was constructed from, when
// known. Objects produced by attribute reads report the attribute they came
// from instead.
func (o *Object) Class() string {
	if o == nil {
		return ""
	}
	return o.class
}

// Valid reports whether the handle refers to an interpreter object.
func (o *Object) Valid() bool {
	return o != nil && o.obj != nil
}

func (o *Object) require(method string) error {
	if !o.Valid() {
		class := "Object"
		if o != nil && o.class != "" {
			class = o.class
		}
		return gkerrors.NewNotBuiltError(class, method)
	}
	return nil
}

// Call invokes the named method on the object, forwarding positional
// arguments and the bag as keyword arguments. Either may be nil. The result
// is returned as a new handle; interpreter exceptions propagate unchanged.
func (o *Object) Call(method string, positional []interface{}, bag *params.Bag) (*Object, error) {
	if err := o.require(method); err != nil {
		return nil, err
	}
	defer lock()()
	interp()

	op := o.class + "." + method
	fn, err := py.GetAttrString(o.obj, method)
	if err != nil {
		return nil, gkerrors.NewPythonError(op, err)
	}
	var args py.Tuple
	for _, a := range positional {
		pv, convErr := toPy(op, "", a)
		if convErr != nil {
			return nil, convErr
		}
		args = append(args, pv)
	}
	kwargs, err := bagToKwargs(op, bag)
	if err != nil {
		return nil, err
	}
	res, err := py.Call(fn, args, kwargs)
	if err != nil {
		return nil, gkerrors.NewPythonError(op, err)
	}

	logger.Debug("invoked interpreter method",
		log.OperationKey, "call",
		log.ClassKey, o.class,
		log.MethodKey, method,
		log.BagSizeKey, bagLen(bag),
	)
	return &Object{obj: res, class: op}, nil
}

// Attr reads the named attribute and returns it as a new handle.
func (o *Object) Attr(name string) (*Object, error) {
	if err := o.require(name); err != nil {
		return nil, err
	}
	defer lock()()
	interp()

	v, err := py.GetAttrString(o.obj, name)
	if err != nil {
		return nil, gkerrors.NewPythonError(o.class+"."+name, err)
	}
	return &Object{obj: v, class: name}, nil
}

// IsNone reports whether the handle refers to the interpreter's None.
func (o *Object) IsNone() bool {
	return o != nil && o.obj == py.None
}

// Float copies the value out as a float64. Integers are coerced with a
// DataConversionWarning.
func (o *Object) Float() (float64, error) {
	if err := o.require("Float"); err != nil {
		return 0, err
	}
	defer lock()()
	return floatFromPy(o.class, o.obj)
}

// Int copies the value out as an int.
func (o *Object) Int() (int, error) {
	if err := o.require("Int"); err != nil {
		return 0, err
	}
	defer lock()()
	v, ok := o.obj.(py.Int)
	if !ok {
		return 0, gkerrors.NewConversionError(o.class, "", "int", "interpreter value is not an integer")
	}
	return int(v), nil
}

// Str copies the value out as a string.
func (o *Object) Str() (string, error) {
	if err := o.require("Str"); err != nil {
		return "", err
	}
	defer lock()()
	v, ok := o.obj.(py.String)
	if !ok {
		return "", gkerrors.NewConversionError(o.class, "", "string", "interpreter value is not a string")
	}
	return string(v), nil
}

// Bool copies the value out as a bool.
func (o *Object) Bool() (bool, error) {
	if err := o.require("Bool"); err != nil {
		return false, err
	}
	defer lock()()
	v, ok := o.obj.(py.Bool)
	if !ok {
		return false, gkerrors.NewConversionError(o.class, "", "bool", "interpreter value is not a bool")
	}
	return bool(v), nil
}

// AttrFloat reads an attribute and copies it out as a float64.
func (o *Object) AttrFloat(name string) (float64, error) {
	v, err := o.Attr(name)
	if err != nil {
		return 0, err
	}
	return v.Float()
}

// AttrInt reads an attribute and copies it out as an int.
func (o *Object) AttrInt(name string) (int, error) {
	v, err := o.Attr(name)
	if err != nil {
		return 0, err
	}
	return v.Int()
}

// AttrString reads an attribute and copies it out as a string.
func (o *Object) AttrString(name string) (string, error) {
	v, err := o.Attr(name)
	if err != nil {
		return "", err
	}
	return v.Str()
}

// AttrInts reads an attribute and copies it out as an []int.
func (o *Object) AttrInts(name string) ([]int, error) {
	v, err := o.Attr(name)
	if err != nil {
		return nil, err
	}
	return v.Ints()
}

// AttrFloats reads an attribute and copies it out as a []float64.
func (o *Object) AttrFloats(name string) ([]float64, error) {
	v, err := o.Attr(name)
	if err != nil {
		return nil, err
	}
	return v.Floats()
}

// AttrFloatSeries reads an attribute and copies it out as a map from name to
// float series.
func (o *Object) AttrFloatSeries(name string) (map[string][]float64, error) {
	v, err := o.Attr(name)
	if err != nil {
		return nil, err
	}
	return v.FloatSeries()
}

// Ints copies the value out as an []int. The interpreter value must be a
// list or tuple of integers.
func (o *Object) Ints() ([]int, error) {
	if err := o.require("Ints"); err != nil {
		return nil, err
	}
	defer lock()()
	items, err := sequenceItems(o.class, o.obj)
	if err != nil {
		return nil, err
	}
	out := make([]int, 0, len(items))
	for _, it := range items {
		v, ok := it.(py.Int)
		if !ok {
			return nil, gkerrors.NewConversionError(o.class, "", "[]int", "sequence element is not an integer")
		}
		out = append(out, int(v))
	}
	return out, nil
}

// Floats copies the value out as a []float64. Integer elements are coerced
// with a DataConversionWarning.
func (o *Object) Floats() ([]float64, error) {
	if err := o.require("Floats"); err != nil {
		return nil, err
	}
	defer lock()()
	return floatsFromPy(o.class, o.obj)
}

// Floats2D copies the value out as a row-major [][]float64. The interpreter
// value must be a sequence of equally shaped numeric sequences.
func (o *Object) Floats2D() ([][]float64, error) {
	if err := o.require("Floats2D"); err != nil {
		return nil, err
	}
	defer lock()()
	rows, err := sequenceItems(o.class, o.obj)
	if err != nil {
		return nil, err
	}
	out := make([][]float64, 0, len(rows))
	for _, r := range rows {
		vals, err := floatsFromPy(o.class, r)
		if err != nil {
			return nil, err
		}
		out = append(out, vals)
	}
	return out, nil
}

// FloatSeries copies the value out as a map from name to float series, the
// shape of the wrapped library's metric history dictionaries.
func (o *Object) FloatSeries() (map[string][]float64, error) {
	if err := o.require("FloatSeries"); err != nil {
		return nil, err
	}
	defer lock()()
	dict, ok := o.obj.(py.StringDict)
	if !ok {
		return nil, gkerrors.NewConversionError(o.class, "", "map[string][]float64", "interpreter value is not a dict")
	}
	out := make(map[string][]float64, len(dict))
	for k, v := range dict {
		vals, err := floatsFromPy(o.class, v)
		if err != nil {
			return nil, err
		}
		out[k] = vals
	}
	return out, nil
}
