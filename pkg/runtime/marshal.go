package runtime

import (
	"fmt"

	"github.com/go-python/gpython/py"
	"gonum.org/v1/gonum/mat"

	gkerrors "github.com/gokeras/gokeras/pkg/errors"
	"github.com/gokeras/gokeras/pkg/params"
)

// ScheduleFunc maps an epoch index and the current learning rate to the next
// learning rate. It is the host-side signature forwarded to the library's
// schedule-taking callbacks.
type ScheduleFunc func(epoch int, lr float64) float64

// EpochFunc is a host hook invoked with an epoch index and the metric values
// the library reports for it.
type EpochFunc func(epoch int, logs map[string]float64)

// BatchFunc is a host hook invoked with a batch index and the metric values
// the library reports for it.
type BatchFunc func(batch int, logs map[string]float64)

// TrainFunc is a host hook invoked at training start or end.
type TrainFunc func(logs map[string]float64)

// bagToKwargs converts a parameter bag to interpreter keyword arguments.
// A nil bag yields nil kwargs so library defaults apply to every option.
func bagToKwargs(op string, bag *params.Bag) (py.StringDict, error) {
	if bag == nil || bag.Len() == 0 {
		return nil, nil
	}
	kwargs := py.NewStringDict()
	err := bag.Each(func(key string, value interface{}) error {
		pv, err := toPy(op, key, value)
		if err != nil {
			return err
		}
		kwargs[key] = pv
		return nil
	})
	if err != nil {
		return nil, err
	}
	return kwargs, nil
}

// toPy converts one host value to its interpreter representation. The set of
// supported types is exactly the set of option kinds the wrapped library's
// constructors take; anything else is a host-side ConversionError.
func toPy(op, key string, value interface{}) (py.Object, error) {
	switch v := value.(type) {
	case nil:
		return py.None, nil
	case bool:
		if v {
			return py.True, nil
		}
		return py.False, nil
	case int:
		return py.Int(v), nil
	case int64:
		return py.Int(v), nil
	case float64:
		return py.Float(v), nil
	case string:
		return py.String(v), nil
	case *float64:
		if v == nil {
			return py.None, nil
		}
		return py.Float(*v), nil
	case *int:
		if v == nil {
			return py.None, nil
		}
		return py.Int(*v), nil
	case []string:
		items := make([]py.Object, len(v))
		for i, s := range v {
			items[i] = py.String(s)
		}
		return py.NewListFromItems(items), nil
	case []int:
		items := make([]py.Object, len(v))
		for i, n := range v {
			items[i] = py.Int(n)
		}
		return py.NewListFromItems(items), nil
	case []float64:
		items := make([]py.Object, len(v))
		for i, f := range v {
			items[i] = py.Float(f)
		}
		return py.NewListFromItems(items), nil
	case []interface{}:
		items := make([]py.Object, len(v))
		for i, el := range v {
			pv, err := toPy(op, key, el)
			if err != nil {
				return nil, err
			}
			items[i] = pv
		}
		return py.NewListFromItems(items), nil
	case map[string]string:
		d := py.NewStringDict()
		for k, s := range v {
			d[k] = py.String(s)
		}
		return d, nil
	case map[string]float64:
		d := py.NewStringDict()
		for k, f := range v {
			d[k] = py.Float(f)
		}
		return d, nil
	case *params.Bag:
		d, err := bagToKwargs(op, v)
		if err != nil {
			return nil, err
		}
		if d == nil {
			d = py.NewStringDict()
		}
		return d, nil
	case *Object:
		if !v.Valid() {
			return nil, gkerrors.NewConversionError(op, key, "*runtime.Object", "handle has no interpreter object")
		}
		return v.obj, nil
	case mat.Matrix:
		return matrixToPy(v), nil
	case ScheduleFunc:
		return scheduleToPy(key, v), nil
	case func(epoch int, lr float64) float64:
		return scheduleToPy(key, ScheduleFunc(v)), nil
	case EpochFunc:
		return hookToPy(key, func(n int, logs map[string]float64) { v(n, logs) }), nil
	case func(epoch int, logs map[string]float64):
		return hookToPy(key, v), nil
	case BatchFunc:
		return hookToPy(key, func(n int, logs map[string]float64) { v(n, logs) }), nil
	case TrainFunc:
		return trainHookToPy(key, v), nil
	case func(logs map[string]float64):
		return trainHookToPy(key, TrainFunc(v)), nil
	default:
		return nil, gkerrors.NewConversionError(op, key, fmt.Sprintf("%T", value), "unsupported parameter type")
	}
}

// matrixToPy converts an externally owned matrix handle to a nested list at
// the boundary. The matrix itself is never retained interpreter-side.
func matrixToPy(m mat.Matrix) py.Object {
	rows, cols := m.Dims()
	outer := make([]py.Object, rows)
	for i := 0; i < rows; i++ {
		row := make([]py.Object, cols)
		for j := 0; j < cols; j++ {
			row[j] = py.Float(m.At(i, j))
		}
		outer[i] = py.NewListFromItems(row)
	}
	return py.NewListFromItems(outer)
}

// scheduleToPy wraps a learning-rate schedule as an interpreter callable
// with the (epoch, lr) -> lr signature the library expects.
func scheduleToPy(name string, fn ScheduleFunc) py.Object {
	return py.MustNewMethod(name, func(_ py.Object, args py.Tuple) (py.Object, error) {
		epoch := 0
		lr := 0.0
		if len(args) > 0 {
			if v, ok := args[0].(py.Int); ok {
				epoch = int(v)
			}
		}
		if len(args) > 1 {
			switch v := args[1].(type) {
			case py.Float:
				lr = float64(v)
			case py.Int:
				lr = float64(v)
			}
		}
		return py.Float(fn(epoch, lr)), nil
	}, 0, "host learning-rate schedule")
}

// hookToPy wraps an epoch or batch hook as an interpreter callable with the
// (index, logs) signature the library's lambda callback expects.
func hookToPy(name string, fn func(n int, logs map[string]float64)) py.Object {
	return py.MustNewMethod(name, func(_ py.Object, args py.Tuple) (py.Object, error) {
		n := 0
		var logs map[string]float64
		if len(args) > 0 {
			if v, ok := args[0].(py.Int); ok {
				n = int(v)
			}
		}
		if len(args) > 1 {
			logs = logsFromPy(args[1])
		}
		fn(n, logs)
		return py.None, nil
	}, 0, "host callback hook")
}

// trainHookToPy wraps a train begin/end hook as an interpreter callable with
// the (logs) signature.
func trainHookToPy(name string, fn TrainFunc) py.Object {
	return py.MustNewMethod(name, func(_ py.Object, args py.Tuple) (py.Object, error) {
		var logs map[string]float64
		if len(args) > 0 {
			logs = logsFromPy(args[0])
		}
		fn(logs)
		return py.None, nil
	}, 0, "host callback hook")
}

func logsFromPy(obj py.Object) map[string]float64 {
	dict, ok := obj.(py.StringDict)
	if !ok {
		return nil
	}
	logs := make(map[string]float64, len(dict))
	for k, v := range dict {
		switch f := v.(type) {
		case py.Float:
			logs[k] = float64(f)
		case py.Int:
			logs[k] = float64(f)
		}
	}
	return logs
}

// floatFromPy copies one numeric interpreter value out as a float64,
// coercing integers with a warning.
func floatFromPy(op string, obj py.Object) (float64, error) {
	switch v := obj.(type) {
	case py.Float:
		return float64(v), nil
	case py.Int:
		gkerrors.Warn(gkerrors.NewDataConversionWarning("int", "float64", "numeric read-back from "+op))
		return float64(v), nil
	default:
		return 0, gkerrors.NewConversionError(op, "", "float64", "interpreter value is not numeric")
	}
}

// floatsFromPy copies a numeric interpreter sequence out as a []float64.
// Integer elements are coerced; the warning is emitted once per sequence.
func floatsFromPy(op string, obj py.Object) ([]float64, error) {
	items, err := sequenceItems(op, obj)
	if err != nil {
		return nil, err
	}
	out := make([]float64, 0, len(items))
	coerced := false
	for _, it := range items {
		switch v := it.(type) {
		case py.Float:
			out = append(out, float64(v))
		case py.Int:
			coerced = true
			out = append(out, float64(v))
		default:
			return nil, gkerrors.NewConversionError(op, "", "[]float64", "sequence element is not numeric")
		}
	}
	if coerced {
		gkerrors.Warn(gkerrors.NewDataConversionWarning("int", "float64", "numeric series read-back from "+op))
	}
	return out, nil
}

func sequenceItems(op string, obj py.Object) ([]py.Object, error) {
	switch v := obj.(type) {
	case *py.List:
		return v.Items, nil
	case py.Tuple:
		return v, nil
	default:
		return nil, gkerrors.NewConversionError(op, "", "sequence", "interpreter value is not a list or tuple")
	}
}
