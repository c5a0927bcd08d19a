package layers

import (
	"github.com/gokeras/gokeras/pkg/params"
)

// Conv2D proxies the library's 2D convolution layer.
type Conv2D struct {
	Base

	filters           int
	kernelSize        []int
	strides           []int
	padding           string
	activation        string
	useBias           bool
	kernelInitializer string
	inputShape        []int
}

// Conv2DOption configures a Conv2D proxy.
type Conv2DOption func(*Conv2D)

// WithConvStrides sets the stride of the convolution along each spatial
// dimension.
func WithConvStrides(strides []int) Conv2DOption {
	return func(c *Conv2D) {
		c.strides = strides
	}
}

// WithConvPadding sets the padding mode: "valid" or "same".
func WithConvPadding(padding string) Conv2DOption {
	return func(c *Conv2D) {
		c.padding = padding
	}
}

// WithConvActivation sets the activation function by its library name.
func WithConvActivation(activation string) Conv2DOption {
	return func(c *Conv2D) {
		c.activation = activation
	}
}

// WithConvUseBias toggles the bias vector.
func WithConvUseBias(useBias bool) Conv2DOption {
	return func(c *Conv2D) {
		c.useBias = useBias
	}
}

// WithConvKernelInitializer sets the kernel initializer by name.
func WithConvKernelInitializer(name string) Conv2DOption {
	return func(c *Conv2D) {
		c.kernelInitializer = name
	}
}

// WithConvInputShape sets the input shape for a first layer.
func WithConvInputShape(shape []int) Conv2DOption {
	return func(c *Conv2D) {
		c.inputShape = shape
	}
}

// NewConv2D constructs the library-side Conv2D layer with the given number
// of filters and kernel size.
func NewConv2D(filters int, kernelSize []int, options ...Conv2DOption) (*Conv2D, error) {
	c := &Conv2D{
		filters:           filters,
		kernelSize:        kernelSize,
		strides:           []int{1, 1},
		padding:           "valid",
		useBias:           true,
		kernelInitializer: "glorot_uniform",
	}
	for _, opt := range options {
		opt(c)
	}

	bag := params.NewBag().
		Set("filters", c.filters).
		Set("kernel_size", c.kernelSize).
		Set("strides", c.strides).
		Set("padding", c.padding)
	if c.activation == "" {
		bag.Set("activation", nil)
	} else {
		bag.Set("activation", c.activation)
	}
	bag.Set("use_bias", c.useBias).
		Set("kernel_initializer", c.kernelInitializer)
	setInputShape(bag, c.inputShape)

	if err := c.build("Conv2D", bag); err != nil {
		return nil, err
	}
	return c, nil
}

// MaxPooling2D proxies the library's 2D max pooling layer.
type MaxPooling2D struct {
	Base

	poolSize []int
	strides  []int
	padding  string
}

// MaxPooling2DOption configures a MaxPooling2D proxy.
type MaxPooling2DOption func(*MaxPooling2D)

// WithPoolStrides sets the stride of the pooling window.
func WithPoolStrides(strides []int) MaxPooling2DOption {
	return func(p *MaxPooling2D) {
		p.strides = strides
	}
}

// WithPoolPadding sets the padding mode: "valid" or "same".
func WithPoolPadding(padding string) MaxPooling2DOption {
	return func(p *MaxPooling2D) {
		p.padding = padding
	}
}

// NewMaxPooling2D constructs the library-side MaxPooling2D layer with the
// given pool size.
func NewMaxPooling2D(poolSize []int, options ...MaxPooling2DOption) (*MaxPooling2D, error) {
	p := &MaxPooling2D{
		poolSize: poolSize,
		padding:  "valid",
	}
	for _, opt := range options {
		opt(p)
	}

	bag := params.NewBag().Set("pool_size", p.poolSize)
	if p.strides == nil {
		bag.Set("strides", nil)
	} else {
		bag.Set("strides", p.strides)
	}
	bag.Set("padding", p.padding)

	if err := p.build("MaxPooling2D", bag); err != nil {
		return nil, err
	}
	return p, nil
}
