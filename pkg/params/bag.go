// Package params implements the ordered parameter bag handed across the
// interpreter boundary at proxy construction time.
//
// A Bag maps option names to option values. Keys are the exact names the
// wrapped library's constructors expect (snake_case, as in the Python API),
// and insertion order is preserved so replayed constructor calls are
// deterministic. Values are stored untyped; the bridge performs the actual
// conversion when the bag is marshaled. A nil value is forwarded as the
// interpreter's None so that library-side defaulting applies unchanged.
package params

import "fmt"

// Bag is an ordered name-to-value mapping for one constructor or method call.
// The zero value is not usable; create bags with NewBag.
type Bag struct {
	keys   []string
	values map[string]interface{}
}

// NewBag creates an empty parameter bag.
func NewBag() *Bag {
	return &Bag{
		values: make(map[string]interface{}),
	}
}

// Set stores value under key, appending the key to the iteration order on
// first use. Setting an existing key overwrites the value in place.
//
// Supported value types are the ones the bridge can marshal: nil, bool, int,
// int64, float64, string, *int, *float64, []int, []float64, []string,
// map[string]string, gonum mat.Matrix, another *Bag, bridge object handles,
// and host callables. Unsupported types are rejected by the bridge at call
// time, not here; this layer performs no validation of its own.
func (b *Bag) Set(key string, value interface{}) *Bag {
	if _, ok := b.values[key]; !ok {
		b.keys = append(b.keys, key)
	}
	b.values[key] = value
	return b
}

// SetFloatPtr stores an optional float option. A nil pointer crosses the
// boundary as None.
func (b *Bag) SetFloatPtr(key string, value *float64) *Bag {
	if value == nil {
		return b.Set(key, nil)
	}
	return b.Set(key, *value)
}

// SetIntPtr stores an optional integer option. A nil pointer crosses the
// boundary as None.
func (b *Bag) SetIntPtr(key string, value *int) *Bag {
	if value == nil {
		return b.Set(key, nil)
	}
	return b.Set(key, *value)
}

// Get returns the value stored under key and whether the key is present.
func (b *Bag) Get(key string) (interface{}, bool) {
	v, ok := b.values[key]
	return v, ok
}

// Keys returns the option names in insertion order. The returned slice is
// owned by the bag and must not be modified.
func (b *Bag) Keys() []string {
	return b.keys
}

// Len returns the number of options in the bag.
func (b *Bag) Len() int {
	return len(b.keys)
}

// Each calls fn for every option in insertion order. Iteration stops at the
// first error, which is returned unchanged.
func (b *Bag) Each(fn func(key string, value interface{}) error) error {
	for _, k := range b.keys {
		if err := fn(k, b.values[k]); err != nil {
			return err
		}
	}
	return nil
}

// String renders the bag for logging and test failure messages.
func (b *Bag) String() string {
	s := "{"
	for i, k := range b.keys {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%s: %v", k, b.values[k])
	}
	return s + "}"
}
