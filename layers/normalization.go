package layers

import (
	"github.com/gokeras/gokeras/pkg/params"
)

// BatchNormalization proxies the library's batch normalization layer.
type BatchNormalization struct {
	Base

	axis     int
	momentum float64
	epsilon  float64
	center   bool
	scale    bool
}

// BatchNormalizationOption configures a BatchNormalization proxy.
type BatchNormalizationOption func(*BatchNormalization)

// WithBNAxis sets the axis to normalize, typically the features axis.
func WithBNAxis(axis int) BatchNormalizationOption {
	return func(bn *BatchNormalization) {
		bn.axis = axis
	}
}

// WithBNMomentum sets the momentum of the moving statistics.
func WithBNMomentum(momentum float64) BatchNormalizationOption {
	return func(bn *BatchNormalization) {
		bn.momentum = momentum
	}
}

// WithBNEpsilon sets the variance floor added for numeric stability.
func WithBNEpsilon(epsilon float64) BatchNormalizationOption {
	return func(bn *BatchNormalization) {
		bn.epsilon = epsilon
	}
}

// WithBNCenter toggles the learned offset beta.
func WithBNCenter(center bool) BatchNormalizationOption {
	return func(bn *BatchNormalization) {
		bn.center = center
	}
}

// WithBNScale toggles the learned scale gamma.
func WithBNScale(scale bool) BatchNormalizationOption {
	return func(bn *BatchNormalization) {
		bn.scale = scale
	}
}

// NewBatchNormalization constructs the library-side BatchNormalization
// layer.
func NewBatchNormalization(options ...BatchNormalizationOption) (*BatchNormalization, error) {
	bn := &BatchNormalization{
		axis:     -1,
		momentum: 0.99,
		epsilon:  1e-3,
		center:   true,
		scale:    true,
	}
	for _, opt := range options {
		opt(bn)
	}

	bag := params.NewBag().
		Set("axis", bn.axis).
		Set("momentum", bn.momentum).
		Set("epsilon", bn.epsilon).
		Set("center", bn.center).
		Set("scale", bn.scale)

	if err := bn.build("BatchNormalization", bag); err != nil {
		return nil, err
	}
	return bn, nil
}
