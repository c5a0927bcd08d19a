package callbacks

import (
	"github.com/gokeras/gokeras/pkg/runtime"
)

// History proxies the library callback that records metric values per epoch.
// A model's fit call creates one implicitly and returns it; NewHistory exists
// for callers who want to attach their own instance. Both derived properties
// are copied out of the interpreter object on demand, so repeated reads
// observe whatever the library has recorded up to that point.
type History struct {
	Callback
}

// NewHistory constructs the library-side History callback.
func NewHistory() (*History, error) {
	h := &History{}
	if err := h.build("History", nil); err != nil {
		return nil, err
	}
	return h, nil
}

// HistoryFromObject wraps an interpreter-side History object, typically the
// return value of a fit call.
func HistoryFromObject(obj *runtime.Object) *History {
	h := &History{}
	h.Bind("History", obj)
	return h
}

// Epoch reads back the recorded epoch indices.
func (h *History) Epoch() ([]int, error) {
	obj, err := h.Require("Epoch")
	if err != nil {
		return nil, err
	}
	return obj.AttrInts("epoch")
}

// History reads back the per-metric value series recorded during training,
// keyed by metric name.
func (h *History) History() (map[string][]float64, error) {
	obj, err := h.Require("History")
	if err != nil {
		return nil, err
	}
	return obj.AttrFloatSeries("history")
}
