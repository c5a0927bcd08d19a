package callbacks

import (
	"github.com/gokeras/gokeras/pkg/params"
)

// ModelCheckpoint proxies the library callback that saves the model during
// training. The filepath is an opaque template forwarded verbatim; the
// library expands its epoch and metric placeholders and owns the file format.
type ModelCheckpoint struct {
	Callback

	filepath        string
	monitor         string
	verbose         int
	saveBestOnly    bool
	saveWeightsOnly bool
	mode            string
	period          int
}

// ModelCheckpointOption configures a ModelCheckpoint proxy.
type ModelCheckpointOption func(*ModelCheckpoint)

// WithMCMonitor sets the quantity to monitor.
func WithMCMonitor(monitor string) ModelCheckpointOption {
	return func(mc *ModelCheckpoint) {
		mc.monitor = monitor
	}
}

// WithMCVerbose sets the library-side verbosity mode.
func WithMCVerbose(verbose int) ModelCheckpointOption {
	return func(mc *ModelCheckpoint) {
		mc.verbose = verbose
	}
}

// WithMCSaveBestOnly only overwrites the checkpoint when the monitored
// quantity improves.
func WithMCSaveBestOnly(saveBestOnly bool) ModelCheckpointOption {
	return func(mc *ModelCheckpoint) {
		mc.saveBestOnly = saveBestOnly
	}
}

// WithMCSaveWeightsOnly saves only the weights rather than the full model.
func WithMCSaveWeightsOnly(saveWeightsOnly bool) ModelCheckpointOption {
	return func(mc *ModelCheckpoint) {
		mc.saveWeightsOnly = saveWeightsOnly
	}
}

// WithMCMode sets the improvement direction: "auto", "min" or "max".
func WithMCMode(mode string) ModelCheckpointOption {
	return func(mc *ModelCheckpoint) {
		mc.mode = mode
	}
}

// WithMCPeriod sets the number of epochs between checkpoints.
func WithMCPeriod(period int) ModelCheckpointOption {
	return func(mc *ModelCheckpoint) {
		mc.period = period
	}
}

// NewModelCheckpoint constructs the library-side ModelCheckpoint callback
// writing to the given filepath template.
func NewModelCheckpoint(filepath string, options ...ModelCheckpointOption) (*ModelCheckpoint, error) {
	mc := &ModelCheckpoint{
		filepath: filepath,
		monitor:  "val_loss",
		verbose:  0,
		mode:     "auto",
		period:   1,
	}
	for _, opt := range options {
		opt(mc)
	}

	bag := params.NewBag().
		Set("filepath", mc.filepath).
		Set("monitor", mc.monitor).
		Set("verbose", mc.verbose).
		Set("save_best_only", mc.saveBestOnly).
		Set("save_weights_only", mc.saveWeightsOnly).
		Set("mode", mc.mode).
		Set("period", mc.period)

	if err := mc.build("ModelCheckpoint", bag); err != nil {
		return nil, err
	}
	return mc, nil
}
