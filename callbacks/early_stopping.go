package callbacks

import (
	"github.com/gokeras/gokeras/pkg/params"
)

// EarlyStopping proxies the library callback that stops training when a
// monitored quantity has stopped improving. The stopping decision itself is
// made library-side; after training the stopped epoch can be read back.
type EarlyStopping struct {
	Callback

	monitor            string
	minDelta           float64
	patience           int
	verbose            int
	mode               string
	baseline           *float64
	restoreBestWeights bool
}

// EarlyStoppingOption configures an EarlyStopping proxy.
type EarlyStoppingOption func(*EarlyStopping)

// WithESMonitor sets the quantity to monitor.
func WithESMonitor(monitor string) EarlyStoppingOption {
	return func(es *EarlyStopping) {
		es.monitor = monitor
	}
}

// WithESMinDelta sets the minimum change counted as an improvement.
func WithESMinDelta(minDelta float64) EarlyStoppingOption {
	return func(es *EarlyStopping) {
		es.minDelta = minDelta
	}
}

// WithESPatience sets the number of epochs with no improvement after which
// training stops.
func WithESPatience(patience int) EarlyStoppingOption {
	return func(es *EarlyStopping) {
		es.patience = patience
	}
}

// WithESVerbose sets the library-side verbosity mode.
func WithESVerbose(verbose int) EarlyStoppingOption {
	return func(es *EarlyStopping) {
		es.verbose = verbose
	}
}

// WithESMode sets the improvement direction: "auto", "min" or "max". The
// library validates the value.
func WithESMode(mode string) EarlyStoppingOption {
	return func(es *EarlyStopping) {
		es.mode = mode
	}
}

// WithESBaseline sets the baseline the monitored quantity must beat.
// Unset, the library treats the baseline as absent.
func WithESBaseline(baseline float64) EarlyStoppingOption {
	return func(es *EarlyStopping) {
		es.baseline = &baseline
	}
}

// WithESRestoreBestWeights restores the weights from the best epoch when
// training stops.
func WithESRestoreBestWeights(restore bool) EarlyStoppingOption {
	return func(es *EarlyStopping) {
		es.restoreBestWeights = restore
	}
}

// NewEarlyStopping constructs the library-side EarlyStopping callback.
func NewEarlyStopping(options ...EarlyStoppingOption) (*EarlyStopping, error) {
	es := &EarlyStopping{
		monitor:  "val_loss",
		minDelta: 0,
		patience: 0,
		verbose:  0,
		mode:     "auto",
	}
	for _, opt := range options {
		opt(es)
	}

	bag := params.NewBag().
		Set("monitor", es.monitor).
		Set("min_delta", es.minDelta).
		Set("patience", es.patience).
		Set("verbose", es.verbose).
		Set("mode", es.mode).
		SetFloatPtr("baseline", es.baseline).
		Set("restore_best_weights", es.restoreBestWeights)

	if err := es.build("EarlyStopping", bag); err != nil {
		return nil, err
	}
	return es, nil
}

// StoppedEpoch reads back the epoch at which training stopped, or zero when
// training ran to completion.
func (es *EarlyStopping) StoppedEpoch() (int, error) {
	obj, err := es.Require("StoppedEpoch")
	if err != nil {
		return 0, err
	}
	return obj.AttrInt("stopped_epoch")
}
