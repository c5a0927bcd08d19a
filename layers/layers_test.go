package layers

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gokeras/gokeras/pkg/runtime"
)

const stubSrc = `
class Dense:
    def __init__(self, **kwargs):
        self.captured = kwargs
        self.name = "dense_1"

class Activation:
    def __init__(self, **kwargs):
        self.captured = kwargs

class Dropout:
    def __init__(self, **kwargs):
        self.captured = kwargs

class Flatten:
    def __init__(self, **kwargs):
        self.captured = kwargs

class Reshape:
    def __init__(self, **kwargs):
        self.captured = kwargs

class Input:
    def __init__(self, **kwargs):
        self.captured = kwargs

class Conv2D:
    def __init__(self, **kwargs):
        self.captured = kwargs

class MaxPooling2D:
    def __init__(self, **kwargs):
        self.captured = kwargs

class BatchNormalization:
    def __init__(self, **kwargs):
        self.captured = kwargs

class Embedding:
    def __init__(self, **kwargs):
        self.captured = kwargs

class LSTM:
    def __init__(self, **kwargs):
        self.captured = kwargs
`

func TestMain(m *testing.M) {
	if err := runtime.LoadLibrarySrc("kerastub_layers", stubSrc); err != nil {
		panic(err)
	}
	runtime.SetLibrary("kerastub_layers")
	os.Exit(m.Run())
}

func capturedOf(t *testing.T, l Layer) *runtime.Object {
	t.Helper()
	c, err := l.Object().Attr("captured")
	require.NoError(t, err)
	return c
}

func itemInts(t *testing.T, c *runtime.Object, key string) []int {
	t.Helper()
	v, err := c.Item(key)
	require.NoError(t, err)
	ints, err := v.Ints()
	require.NoError(t, err)
	return ints
}

func TestDenseDefaults(t *testing.T) {
	d, err := NewDense(64)
	require.NoError(t, err)
	c := capturedOf(t, d)

	units, err := c.Item("units")
	require.NoError(t, err)
	n, err := units.Int()
	require.NoError(t, err)
	assert.Equal(t, 64, n)

	activation, err := c.Item("activation")
	require.NoError(t, err)
	assert.True(t, activation.IsNone())

	useBias, err := c.Item("use_bias")
	require.NoError(t, err)
	b, err := useBias.Bool()
	require.NoError(t, err)
	assert.True(t, b)

	ki, err := c.Item("kernel_initializer")
	require.NoError(t, err)
	s, err := ki.Str()
	require.NoError(t, err)
	assert.Equal(t, "glorot_uniform", s)

	// Regularizers and input_shape are omitted entirely when unset.
	_, err = c.Item("kernel_regularizer")
	assert.Error(t, err)
	_, err = c.Item("input_shape")
	assert.Error(t, err)
}

func TestDenseOptions(t *testing.T) {
	d, err := NewDense(128,
		WithDenseActivation("relu"),
		WithDenseUseBias(false),
		WithDenseKernelRegularizer("l2"),
		WithDenseInputShape([]int{784}),
	)
	require.NoError(t, err)
	c := capturedOf(t, d)

	activation, err := c.Item("activation")
	require.NoError(t, err)
	s, err := activation.Str()
	require.NoError(t, err)
	assert.Equal(t, "relu", s)

	useBias, err := c.Item("use_bias")
	require.NoError(t, err)
	b, err := useBias.Bool()
	require.NoError(t, err)
	assert.False(t, b)

	reg, err := c.Item("kernel_regularizer")
	require.NoError(t, err)
	s, err = reg.Str()
	require.NoError(t, err)
	assert.Equal(t, "l2", s)

	assert.Equal(t, []int{784}, itemInts(t, c, "input_shape"))

	name, err := d.Name()
	require.NoError(t, err)
	assert.Equal(t, "dense_1", name)
}

func TestDropout(t *testing.T) {
	d, err := NewDropout(0.25, WithDropoutSeed(7))
	require.NoError(t, err)
	c := capturedOf(t, d)

	rate, err := c.Item("rate")
	require.NoError(t, err)
	f, err := rate.Float()
	require.NoError(t, err)
	assert.Equal(t, 0.25, f)

	noise, err := c.Item("noise_shape")
	require.NoError(t, err)
	assert.True(t, noise.IsNone())

	seed, err := c.Item("seed")
	require.NoError(t, err)
	n, err := seed.Int()
	require.NoError(t, err)
	assert.Equal(t, 7, n)
}

func TestShapeOnlyLayers(t *testing.T) {
	t.Run("flatten has no parameters", func(t *testing.T) {
		f, err := NewFlatten()
		require.NoError(t, err)
		c := capturedOf(t, f)
		n, err := c.Len()
		require.NoError(t, err)
		assert.Equal(t, 0, n)
	})

	t.Run("reshape", func(t *testing.T) {
		r, err := NewReshape([]int{3, 4})
		require.NoError(t, err)
		assert.Equal(t, []int{3, 4}, itemInts(t, capturedOf(t, r), "target_shape"))
	})

	t.Run("input", func(t *testing.T) {
		in, err := NewInput([]int{28, 28, 1})
		require.NoError(t, err)
		assert.Equal(t, []int{28, 28, 1}, itemInts(t, capturedOf(t, in), "shape"))
	})

	t.Run("activation", func(t *testing.T) {
		a, err := NewActivation("softmax")
		require.NoError(t, err)
		c := capturedOf(t, a)
		v, err := c.Item("activation")
		require.NoError(t, err)
		s, err := v.Str()
		require.NoError(t, err)
		assert.Equal(t, "softmax", s)
	})
}

func TestConv2D(t *testing.T) {
	conv, err := NewConv2D(32, []int{3, 3},
		WithConvActivation("relu"),
		WithConvInputShape([]int{28, 28, 1}),
	)
	require.NoError(t, err)
	c := capturedOf(t, conv)

	filters, err := c.Item("filters")
	require.NoError(t, err)
	n, err := filters.Int()
	require.NoError(t, err)
	assert.Equal(t, 32, n)

	assert.Equal(t, []int{3, 3}, itemInts(t, c, "kernel_size"))
	assert.Equal(t, []int{1, 1}, itemInts(t, c, "strides"))

	padding, err := c.Item("padding")
	require.NoError(t, err)
	s, err := padding.Str()
	require.NoError(t, err)
	assert.Equal(t, "valid", s)

	assert.Equal(t, []int{28, 28, 1}, itemInts(t, c, "input_shape"))
}

func TestMaxPooling2D(t *testing.T) {
	p, err := NewMaxPooling2D([]int{2, 2})
	require.NoError(t, err)
	c := capturedOf(t, p)

	assert.Equal(t, []int{2, 2}, itemInts(t, c, "pool_size"))

	strides, err := c.Item("strides")
	require.NoError(t, err)
	assert.True(t, strides.IsNone())
}

func TestBatchNormalizationDefaults(t *testing.T) {
	bn, err := NewBatchNormalization()
	require.NoError(t, err)
	c := capturedOf(t, bn)

	axis, err := c.Item("axis")
	require.NoError(t, err)
	n, err := axis.Int()
	require.NoError(t, err)
	assert.Equal(t, -1, n)

	momentum, err := c.Item("momentum")
	require.NoError(t, err)
	f, err := momentum.Float()
	require.NoError(t, err)
	assert.Equal(t, 0.99, f)

	epsilon, err := c.Item("epsilon")
	require.NoError(t, err)
	f, err = epsilon.Float()
	require.NoError(t, err)
	assert.Equal(t, 1e-3, f)
}

func TestEmbedding(t *testing.T) {
	e, err := NewEmbedding(10000, 64, WithEmbeddingInputLength(20))
	require.NoError(t, err)
	c := capturedOf(t, e)

	inputDim, err := c.Item("input_dim")
	require.NoError(t, err)
	n, err := inputDim.Int()
	require.NoError(t, err)
	assert.Equal(t, 10000, n)

	length, err := c.Item("input_length")
	require.NoError(t, err)
	n, err = length.Int()
	require.NoError(t, err)
	assert.Equal(t, 20, n)
}

func TestLSTMDefaults(t *testing.T) {
	l, err := NewLSTM(50)
	require.NoError(t, err)
	c := capturedOf(t, l)

	activation, err := c.Item("activation")
	require.NoError(t, err)
	s, err := activation.Str()
	require.NoError(t, err)
	assert.Equal(t, "tanh", s)

	recurrent, err := c.Item("recurrent_activation")
	require.NoError(t, err)
	s, err = recurrent.Str()
	require.NoError(t, err)
	assert.Equal(t, "hard_sigmoid", s)

	returns, err := c.Item("return_sequences")
	require.NoError(t, err)
	b, err := returns.Bool()
	require.NoError(t, err)
	assert.False(t, b)
}
