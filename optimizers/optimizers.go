// Package optimizers exposes the wrapped library's optimizer classes to Go
// code. As everywhere in the binding, the math lives library-side; an
// optimizer proxy is a parameter bag turned into an interpreter object that
// models pass to their compile call.
package optimizers

import (
	"github.com/gokeras/gokeras/core/proxy"
	"github.com/gokeras/gokeras/pkg/params"
	"github.com/gokeras/gokeras/pkg/runtime"
)

// Optimizer is implemented by every optimizer proxy. Model compilation
// accepts any Optimizer or a plain library optimizer name.
type Optimizer interface {
	// Object returns the interpreter-side optimizer object.
	Object() *runtime.Object
}

// Base is the common part of every optimizer proxy.
type Base struct {
	proxy.Handle
}

func (b *Base) build(class string, bag *params.Bag) error {
	obj, err := runtime.New(class, bag)
	if err != nil {
		return err
	}
	b.Bind(class, obj)
	return nil
}

// LR reads back the optimizer's current learning rate. During training the
// value reflects any scheduling the library has applied.
func (b *Base) LR() (float64, error) {
	obj, err := b.Require("LR")
	if err != nil {
		return 0, err
	}
	return obj.AttrFloat("lr")
}

// SGD proxies the library's stochastic gradient descent optimizer.
type SGD struct {
	Base

	lr       float64
	momentum float64
	decay    float64
	nesterov bool
}

// SGDOption configures an SGD proxy.
type SGDOption func(*SGD)

// WithSGDLR sets the learning rate.
func WithSGDLR(lr float64) SGDOption {
	return func(o *SGD) {
		o.lr = lr
	}
}

// WithSGDMomentum sets the momentum factor.
func WithSGDMomentum(momentum float64) SGDOption {
	return func(o *SGD) {
		o.momentum = momentum
	}
}

// WithSGDDecay sets the per-update learning rate decay.
func WithSGDDecay(decay float64) SGDOption {
	return func(o *SGD) {
		o.decay = decay
	}
}

// WithSGDNesterov enables Nesterov momentum.
func WithSGDNesterov(nesterov bool) SGDOption {
	return func(o *SGD) {
		o.nesterov = nesterov
	}
}

// NewSGD constructs the library-side SGD optimizer.
func NewSGD(options ...SGDOption) (*SGD, error) {
	o := &SGD{lr: 0.01}
	for _, opt := range options {
		opt(o)
	}

	bag := params.NewBag().
		Set("lr", o.lr).
		Set("momentum", o.momentum).
		Set("decay", o.decay).
		Set("nesterov", o.nesterov)

	if err := o.build("SGD", bag); err != nil {
		return nil, err
	}
	return o, nil
}

// RMSprop proxies the library's RMSprop optimizer.
type RMSprop struct {
	Base

	lr      float64
	rho     float64
	epsilon *float64
	decay   float64
}

// RMSpropOption configures an RMSprop proxy.
type RMSpropOption func(*RMSprop)

// WithRMSpropLR sets the learning rate.
func WithRMSpropLR(lr float64) RMSpropOption {
	return func(o *RMSprop) {
		o.lr = lr
	}
}

// WithRMSpropRho sets the gradient moving-average decay factor.
func WithRMSpropRho(rho float64) RMSpropOption {
	return func(o *RMSprop) {
		o.rho = rho
	}
}

// WithRMSpropEpsilon sets the fuzz factor. Unset, the library's backend
// default applies.
func WithRMSpropEpsilon(epsilon float64) RMSpropOption {
	return func(o *RMSprop) {
		o.epsilon = &epsilon
	}
}

// WithRMSpropDecay sets the per-update learning rate decay.
func WithRMSpropDecay(decay float64) RMSpropOption {
	return func(o *RMSprop) {
		o.decay = decay
	}
}

// NewRMSprop constructs the library-side RMSprop optimizer.
func NewRMSprop(options ...RMSpropOption) (*RMSprop, error) {
	o := &RMSprop{lr: 0.001, rho: 0.9}
	for _, opt := range options {
		opt(o)
	}

	bag := params.NewBag().
		Set("lr", o.lr).
		Set("rho", o.rho).
		SetFloatPtr("epsilon", o.epsilon).
		Set("decay", o.decay)

	if err := o.build("RMSprop", bag); err != nil {
		return nil, err
	}
	return o, nil
}

// Adagrad proxies the library's Adagrad optimizer.
type Adagrad struct {
	Base

	lr      float64
	epsilon *float64
	decay   float64
}

// AdagradOption configures an Adagrad proxy.
type AdagradOption func(*Adagrad)

// WithAdagradLR sets the learning rate.
func WithAdagradLR(lr float64) AdagradOption {
	return func(o *Adagrad) {
		o.lr = lr
	}
}

// WithAdagradEpsilon sets the fuzz factor.
func WithAdagradEpsilon(epsilon float64) AdagradOption {
	return func(o *Adagrad) {
		o.epsilon = &epsilon
	}
}

// WithAdagradDecay sets the per-update learning rate decay.
func WithAdagradDecay(decay float64) AdagradOption {
	return func(o *Adagrad) {
		o.decay = decay
	}
}

// NewAdagrad constructs the library-side Adagrad optimizer.
func NewAdagrad(options ...AdagradOption) (*Adagrad, error) {
	o := &Adagrad{lr: 0.01}
	for _, opt := range options {
		opt(o)
	}

	bag := params.NewBag().
		Set("lr", o.lr).
		SetFloatPtr("epsilon", o.epsilon).
		Set("decay", o.decay)

	if err := o.build("Adagrad", bag); err != nil {
		return nil, err
	}
	return o, nil
}

// Adadelta proxies the library's Adadelta optimizer.
type Adadelta struct {
	Base

	lr      float64
	rho     float64
	epsilon *float64
	decay   float64
}

// AdadeltaOption configures an Adadelta proxy.
type AdadeltaOption func(*Adadelta)

// WithAdadeltaLR sets the learning rate.
func WithAdadeltaLR(lr float64) AdadeltaOption {
	return func(o *Adadelta) {
		o.lr = lr
	}
}

// WithAdadeltaRho sets the gradient moving-average decay factor.
func WithAdadeltaRho(rho float64) AdadeltaOption {
	return func(o *Adadelta) {
		o.rho = rho
	}
}

// WithAdadeltaEpsilon sets the fuzz factor.
func WithAdadeltaEpsilon(epsilon float64) AdadeltaOption {
	return func(o *Adadelta) {
		o.epsilon = &epsilon
	}
}

// WithAdadeltaDecay sets the per-update learning rate decay.
func WithAdadeltaDecay(decay float64) AdadeltaOption {
	return func(o *Adadelta) {
		o.decay = decay
	}
}

// NewAdadelta constructs the library-side Adadelta optimizer.
func NewAdadelta(options ...AdadeltaOption) (*Adadelta, error) {
	o := &Adadelta{lr: 1.0, rho: 0.95}
	for _, opt := range options {
		opt(o)
	}

	bag := params.NewBag().
		Set("lr", o.lr).
		Set("rho", o.rho).
		SetFloatPtr("epsilon", o.epsilon).
		Set("decay", o.decay)

	if err := o.build("Adadelta", bag); err != nil {
		return nil, err
	}
	return o, nil
}

// Adam proxies the library's Adam optimizer.
type Adam struct {
	Base

	lr      float64
	beta1   float64
	beta2   float64
	epsilon *float64
	decay   float64
	amsgrad bool
}

// AdamOption configures an Adam proxy.
type AdamOption func(*Adam)

// WithAdamLR sets the learning rate.
func WithAdamLR(lr float64) AdamOption {
	return func(o *Adam) {
		o.lr = lr
	}
}

// WithAdamBeta1 sets the first-moment decay factor.
func WithAdamBeta1(beta1 float64) AdamOption {
	return func(o *Adam) {
		o.beta1 = beta1
	}
}

// WithAdamBeta2 sets the second-moment decay factor.
func WithAdamBeta2(beta2 float64) AdamOption {
	return func(o *Adam) {
		o.beta2 = beta2
	}
}

// WithAdamEpsilon sets the fuzz factor.
func WithAdamEpsilon(epsilon float64) AdamOption {
	return func(o *Adam) {
		o.epsilon = &epsilon
	}
}

// WithAdamDecay sets the per-update learning rate decay.
func WithAdamDecay(decay float64) AdamOption {
	return func(o *Adam) {
		o.decay = decay
	}
}

// WithAdamAmsgrad applies the AMSGrad variant.
func WithAdamAmsgrad(amsgrad bool) AdamOption {
	return func(o *Adam) {
		o.amsgrad = amsgrad
	}
}

// NewAdam constructs the library-side Adam optimizer.
func NewAdam(options ...AdamOption) (*Adam, error) {
	o := &Adam{lr: 0.001, beta1: 0.9, beta2: 0.999}
	for _, opt := range options {
		opt(o)
	}

	bag := params.NewBag().
		Set("lr", o.lr).
		Set("beta_1", o.beta1).
		Set("beta_2", o.beta2).
		SetFloatPtr("epsilon", o.epsilon).
		Set("decay", o.decay).
		Set("amsgrad", o.amsgrad)

	if err := o.build("Adam", bag); err != nil {
		return nil, err
	}
	return o, nil
}

// Adamax proxies the library's Adamax optimizer, the infinity-norm variant
// of Adam.
type Adamax struct {
	Base

	lr      float64
	beta1   float64
	beta2   float64
	epsilon *float64
	decay   float64
}

// AdamaxOption configures an Adamax proxy.
type AdamaxOption func(*Adamax)

// WithAdamaxLR sets the learning rate.
func WithAdamaxLR(lr float64) AdamaxOption {
	return func(o *Adamax) {
		o.lr = lr
	}
}

// WithAdamaxBeta1 sets the first-moment decay factor.
func WithAdamaxBeta1(beta1 float64) AdamaxOption {
	return func(o *Adamax) {
		o.beta1 = beta1
	}
}

// WithAdamaxBeta2 sets the second-moment decay factor.
func WithAdamaxBeta2(beta2 float64) AdamaxOption {
	return func(o *Adamax) {
		o.beta2 = beta2
	}
}

// WithAdamaxEpsilon sets the fuzz factor.
func WithAdamaxEpsilon(epsilon float64) AdamaxOption {
	return func(o *Adamax) {
		o.epsilon = &epsilon
	}
}

// WithAdamaxDecay sets the per-update learning rate decay.
func WithAdamaxDecay(decay float64) AdamaxOption {
	return func(o *Adamax) {
		o.decay = decay
	}
}

// NewAdamax constructs the library-side Adamax optimizer.
func NewAdamax(options ...AdamaxOption) (*Adamax, error) {
	o := &Adamax{lr: 0.002, beta1: 0.9, beta2: 0.999}
	for _, opt := range options {
		opt(o)
	}

	bag := params.NewBag().
		Set("lr", o.lr).
		Set("beta_1", o.beta1).
		Set("beta_2", o.beta2).
		SetFloatPtr("epsilon", o.epsilon).
		Set("decay", o.decay)

	if err := o.build("Adamax", bag); err != nil {
		return nil, err
	}
	return o, nil
}

// Nadam proxies the library's Nesterov Adam optimizer.
type Nadam struct {
	Base

	lr            float64
	beta1         float64
	beta2         float64
	epsilon       *float64
	scheduleDecay float64
}

// NadamOption configures a Nadam proxy.
type NadamOption func(*Nadam)

// WithNadamLR sets the learning rate.
func WithNadamLR(lr float64) NadamOption {
	return func(o *Nadam) {
		o.lr = lr
	}
}

// WithNadamBeta1 sets the first-moment decay factor.
func WithNadamBeta1(beta1 float64) NadamOption {
	return func(o *Nadam) {
		o.beta1 = beta1
	}
}

// WithNadamBeta2 sets the second-moment decay factor.
func WithNadamBeta2(beta2 float64) NadamOption {
	return func(o *Nadam) {
		o.beta2 = beta2
	}
}

// WithNadamEpsilon sets the fuzz factor.
func WithNadamEpsilon(epsilon float64) NadamOption {
	return func(o *Nadam) {
		o.epsilon = &epsilon
	}
}

// WithNadamScheduleDecay sets the momentum schedule decay.
func WithNadamScheduleDecay(scheduleDecay float64) NadamOption {
	return func(o *Nadam) {
		o.scheduleDecay = scheduleDecay
	}
}

// NewNadam constructs the library-side Nadam optimizer.
func NewNadam(options ...NadamOption) (*Nadam, error) {
	o := &Nadam{lr: 0.002, beta1: 0.9, beta2: 0.999, scheduleDecay: 0.004}
	for _, opt := range options {
		opt(o)
	}

	bag := params.NewBag().
		Set("lr", o.lr).
		Set("beta_1", o.beta1).
		Set("beta_2", o.beta2).
		SetFloatPtr("epsilon", o.epsilon).
		Set("schedule_decay", o.scheduleDecay)

	if err := o.build("Nadam", bag); err != nil {
		return nil, err
	}
	return o, nil
}
