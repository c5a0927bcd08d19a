package layers

import (
	"github.com/gokeras/gokeras/pkg/params"
)

// Dense proxies the library's fully connected layer.
type Dense struct {
	Base

	units             int
	activation        string
	useBias           bool
	kernelInitializer string
	biasInitializer   string
	kernelRegularizer string
	biasRegularizer   string
	inputShape        []int
}

// DenseOption configures a Dense proxy.
type DenseOption func(*Dense)

// WithDenseActivation sets the activation function by its library name.
func WithDenseActivation(activation string) DenseOption {
	return func(d *Dense) {
		d.activation = activation
	}
}

// WithDenseUseBias toggles the bias vector.
func WithDenseUseBias(useBias bool) DenseOption {
	return func(d *Dense) {
		d.useBias = useBias
	}
}

// WithDenseKernelInitializer sets the kernel initializer by name.
func WithDenseKernelInitializer(name string) DenseOption {
	return func(d *Dense) {
		d.kernelInitializer = name
	}
}

// WithDenseBiasInitializer sets the bias initializer by name.
func WithDenseBiasInitializer(name string) DenseOption {
	return func(d *Dense) {
		d.biasInitializer = name
	}
}

// WithDenseKernelRegularizer sets the kernel regularizer by name.
func WithDenseKernelRegularizer(name string) DenseOption {
	return func(d *Dense) {
		d.kernelRegularizer = name
	}
}

// WithDenseBiasRegularizer sets the bias regularizer by name.
func WithDenseBiasRegularizer(name string) DenseOption {
	return func(d *Dense) {
		d.biasRegularizer = name
	}
}

// WithDenseInputShape sets the input shape for a first layer.
func WithDenseInputShape(shape []int) DenseOption {
	return func(d *Dense) {
		d.inputShape = shape
	}
}

// NewDense constructs the library-side Dense layer with the given number of
// output units.
func NewDense(units int, options ...DenseOption) (*Dense, error) {
	d := &Dense{
		units:             units,
		useBias:           true,
		kernelInitializer: "glorot_uniform",
		biasInitializer:   "zeros",
	}
	for _, opt := range options {
		opt(d)
	}

	bag := params.NewBag().Set("units", d.units)
	if d.activation == "" {
		bag.Set("activation", nil)
	} else {
		bag.Set("activation", d.activation)
	}
	bag.Set("use_bias", d.useBias).
		Set("kernel_initializer", d.kernelInitializer).
		Set("bias_initializer", d.biasInitializer)
	if d.kernelRegularizer != "" {
		bag.Set("kernel_regularizer", d.kernelRegularizer)
	}
	if d.biasRegularizer != "" {
		bag.Set("bias_regularizer", d.biasRegularizer)
	}
	setInputShape(bag, d.inputShape)

	if err := d.build("Dense", bag); err != nil {
		return nil, err
	}
	return d, nil
}

// Activation proxies the library's standalone activation layer.
type Activation struct {
	Base
}

// NewActivation constructs the library-side Activation layer applying the
// named activation function.
func NewActivation(activation string) (*Activation, error) {
	a := &Activation{}
	bag := params.NewBag().Set("activation", activation)
	if err := a.build("Activation", bag); err != nil {
		return nil, err
	}
	return a, nil
}

// Dropout proxies the library's dropout layer.
type Dropout struct {
	Base

	rate       float64
	noiseShape []int
	seed       *int
}

// DropoutOption configures a Dropout proxy.
type DropoutOption func(*Dropout)

// WithDropoutNoiseShape sets the shape of the binary dropout mask.
func WithDropoutNoiseShape(shape []int) DropoutOption {
	return func(d *Dropout) {
		d.noiseShape = shape
	}
}

// WithDropoutSeed fixes the random seed.
func WithDropoutSeed(seed int) DropoutOption {
	return func(d *Dropout) {
		d.seed = &seed
	}
}

// NewDropout constructs the library-side Dropout layer dropping the given
// fraction of input units.
func NewDropout(rate float64, options ...DropoutOption) (*Dropout, error) {
	d := &Dropout{rate: rate}
	for _, opt := range options {
		opt(d)
	}

	bag := params.NewBag().Set("rate", d.rate)
	if d.noiseShape == nil {
		bag.Set("noise_shape", nil)
	} else {
		bag.Set("noise_shape", d.noiseShape)
	}
	bag.SetIntPtr("seed", d.seed)

	if err := d.build("Dropout", bag); err != nil {
		return nil, err
	}
	return d, nil
}

// Flatten proxies the library's flatten layer.
type Flatten struct {
	Base
}

// NewFlatten constructs the library-side Flatten layer.
func NewFlatten() (*Flatten, error) {
	f := &Flatten{}
	if err := f.build("Flatten", nil); err != nil {
		return nil, err
	}
	return f, nil
}

// Reshape proxies the library's reshape layer.
type Reshape struct {
	Base
}

// NewReshape constructs the library-side Reshape layer producing the given
// target shape, sample axis excluded.
func NewReshape(targetShape []int) (*Reshape, error) {
	r := &Reshape{}
	bag := params.NewBag().Set("target_shape", targetShape)
	if err := r.build("Reshape", bag); err != nil {
		return nil, err
	}
	return r, nil
}

// Input proxies the library's symbolic input layer.
type Input struct {
	Base
}

// NewInput constructs the library-side Input layer with the given shape,
// batch axis excluded.
func NewInput(shape []int) (*Input, error) {
	in := &Input{}
	bag := params.NewBag().Set("shape", shape)
	if err := in.build("Input", bag); err != nil {
		return nil, err
	}
	return in, nil
}
