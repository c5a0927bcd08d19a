package callbacks

import (
	"github.com/gokeras/gokeras/pkg/params"
	"github.com/gokeras/gokeras/pkg/runtime"
)

// LearningRateScheduler proxies the library callback that sets the learning
// rate from a schedule. The schedule itself runs on the host: the bridge
// wraps it as an interpreter callable, so the library invokes Go code each
// epoch and applies whatever rate it returns.
type LearningRateScheduler struct {
	Callback
}

// NewLearningRateScheduler constructs the library-side scheduler around the
// given host schedule. Verbose enables library-side per-epoch reporting.
func NewLearningRateScheduler(schedule runtime.ScheduleFunc, verbose int) (*LearningRateScheduler, error) {
	lrs := &LearningRateScheduler{}
	bag := params.NewBag().
		Set("schedule", schedule).
		Set("verbose", verbose)

	if err := lrs.build("LearningRateScheduler", bag); err != nil {
		return nil, err
	}
	return lrs, nil
}

// ReduceLROnPlateau proxies the library callback that reduces the learning
// rate when a monitored metric has stopped improving.
type ReduceLROnPlateau struct {
	Callback

	monitor  string
	factor   float64
	patience int
	verbose  int
	mode     string
	minDelta float64
	cooldown int
	minLR    float64
}

// ReduceLROnPlateauOption configures a ReduceLROnPlateau proxy.
type ReduceLROnPlateauOption func(*ReduceLROnPlateau)

// WithRLRMonitor sets the quantity to monitor.
func WithRLRMonitor(monitor string) ReduceLROnPlateauOption {
	return func(r *ReduceLROnPlateau) {
		r.monitor = monitor
	}
}

// WithRLRFactor sets the factor the learning rate is multiplied by on each
// reduction.
func WithRLRFactor(factor float64) ReduceLROnPlateauOption {
	return func(r *ReduceLROnPlateau) {
		r.factor = factor
	}
}

// WithRLRPatience sets the number of epochs with no improvement before the
// rate is reduced.
func WithRLRPatience(patience int) ReduceLROnPlateauOption {
	return func(r *ReduceLROnPlateau) {
		r.patience = patience
	}
}

// WithRLRVerbose sets the library-side verbosity mode.
func WithRLRVerbose(verbose int) ReduceLROnPlateauOption {
	return func(r *ReduceLROnPlateau) {
		r.verbose = verbose
	}
}

// WithRLRMode sets the improvement direction: "auto", "min" or "max".
func WithRLRMode(mode string) ReduceLROnPlateauOption {
	return func(r *ReduceLROnPlateau) {
		r.mode = mode
	}
}

// WithRLRMinDelta sets the threshold for measuring a new optimum.
func WithRLRMinDelta(minDelta float64) ReduceLROnPlateauOption {
	return func(r *ReduceLROnPlateau) {
		r.minDelta = minDelta
	}
}

// WithRLRCooldown sets the number of epochs to wait after a reduction before
// resuming normal operation.
func WithRLRCooldown(cooldown int) ReduceLROnPlateauOption {
	return func(r *ReduceLROnPlateau) {
		r.cooldown = cooldown
	}
}

// WithRLRMinLR sets the lower bound on the learning rate.
func WithRLRMinLR(minLR float64) ReduceLROnPlateauOption {
	return func(r *ReduceLROnPlateau) {
		r.minLR = minLR
	}
}

// NewReduceLROnPlateau constructs the library-side ReduceLROnPlateau
// callback.
func NewReduceLROnPlateau(options ...ReduceLROnPlateauOption) (*ReduceLROnPlateau, error) {
	r := &ReduceLROnPlateau{
		monitor:  "val_loss",
		factor:   0.1,
		patience: 10,
		verbose:  0,
		mode:     "auto",
		minDelta: 1e-4,
		cooldown: 0,
		minLR:    0,
	}
	for _, opt := range options {
		opt(r)
	}

	bag := params.NewBag().
		Set("monitor", r.monitor).
		Set("factor", r.factor).
		Set("patience", r.patience).
		Set("verbose", r.verbose).
		Set("mode", r.mode).
		Set("min_delta", r.minDelta).
		Set("cooldown", r.cooldown).
		Set("min_lr", r.minLR)

	if err := r.build("ReduceLROnPlateau", bag); err != nil {
		return nil, err
	}
	return r, nil
}
