package callbacks

import (
	"github.com/gokeras/gokeras/pkg/params"
	"github.com/gokeras/gokeras/pkg/runtime"
)

// LambdaCallback proxies the library callback that dispatches training
// events to ad-hoc functions. The hooks run on the host: the bridge wraps
// each one as an interpreter callable, so the library calls back into Go at
// the matching point of its training loop. Unset hooks are forwarded as
// None and the library skips them.
type LambdaCallback struct {
	Callback

	onEpochBegin runtime.EpochFunc
	onEpochEnd   runtime.EpochFunc
	onBatchBegin runtime.BatchFunc
	onBatchEnd   runtime.BatchFunc
	onTrainBegin runtime.TrainFunc
	onTrainEnd   runtime.TrainFunc
}

// LambdaCallbackOption configures a LambdaCallback proxy.
type LambdaCallbackOption func(*LambdaCallback)

// WithOnEpochBegin sets the hook invoked at the start of every epoch.
func WithOnEpochBegin(fn runtime.EpochFunc) LambdaCallbackOption {
	return func(lc *LambdaCallback) {
		lc.onEpochBegin = fn
	}
}

// WithOnEpochEnd sets the hook invoked at the end of every epoch.
func WithOnEpochEnd(fn runtime.EpochFunc) LambdaCallbackOption {
	return func(lc *LambdaCallback) {
		lc.onEpochEnd = fn
	}
}

// WithOnBatchBegin sets the hook invoked at the start of every batch.
func WithOnBatchBegin(fn runtime.BatchFunc) LambdaCallbackOption {
	return func(lc *LambdaCallback) {
		lc.onBatchBegin = fn
	}
}

// WithOnBatchEnd sets the hook invoked at the end of every batch.
func WithOnBatchEnd(fn runtime.BatchFunc) LambdaCallbackOption {
	return func(lc *LambdaCallback) {
		lc.onBatchEnd = fn
	}
}

// WithOnTrainBegin sets the hook invoked once when training starts.
func WithOnTrainBegin(fn runtime.TrainFunc) LambdaCallbackOption {
	return func(lc *LambdaCallback) {
		lc.onTrainBegin = fn
	}
}

// WithOnTrainEnd sets the hook invoked once when training ends.
func WithOnTrainEnd(fn runtime.TrainFunc) LambdaCallbackOption {
	return func(lc *LambdaCallback) {
		lc.onTrainEnd = fn
	}
}

// NewLambdaCallback constructs the library-side LambdaCallback dispatching
// to the configured host hooks.
func NewLambdaCallback(options ...LambdaCallbackOption) (*LambdaCallback, error) {
	lc := &LambdaCallback{}
	for _, opt := range options {
		opt(lc)
	}

	bag := params.NewBag()
	setHook(bag, "on_epoch_begin", lc.onEpochBegin != nil, lc.onEpochBegin)
	setHook(bag, "on_epoch_end", lc.onEpochEnd != nil, lc.onEpochEnd)
	setHook(bag, "on_batch_begin", lc.onBatchBegin != nil, lc.onBatchBegin)
	setHook(bag, "on_batch_end", lc.onBatchEnd != nil, lc.onBatchEnd)
	setHook(bag, "on_train_begin", lc.onTrainBegin != nil, lc.onTrainBegin)
	setHook(bag, "on_train_end", lc.onTrainEnd != nil, lc.onTrainEnd)

	if err := lc.build("LambdaCallback", bag); err != nil {
		return nil, err
	}
	return lc, nil
}

func setHook(bag *params.Bag, key string, present bool, fn interface{}) {
	if !present {
		bag.Set(key, nil)
		return
	}
	bag.Set(key, fn)
}
