// Package models exposes the wrapped library's model classes to Go code.
// A model proxy forwards every operation (compilation, fitting, evaluation,
// prediction, persistence) to the interpreter-side object; the training
// loop, metric computation, and file formats are all library concerns.
// Checkpoint and weight paths are opaque strings forwarded verbatim.
package models

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/gokeras/gokeras/callbacks"
	"github.com/gokeras/gokeras/core/proxy"
	gkerrors "github.com/gokeras/gokeras/pkg/errors"
	"github.com/gokeras/gokeras/pkg/params"
	"github.com/gokeras/gokeras/pkg/runtime"
)

// Model proxies a compiled-and-trainable library model. Sequential embeds
// it; LoadModel and ModelFromJSON return one directly.
type Model struct {
	proxy.Handle
}

// ModelFromObject wraps an interpreter-side model object.
func ModelFromObject(obj *runtime.Object) *Model {
	m := &Model{}
	m.Bind("Model", obj)
	return m
}

// LoadModel asks the library to deserialize a model saved with Save. The
// path and file format belong to the library.
func LoadModel(path string) (*Model, error) {
	obj, err := runtime.New("load_model", params.NewBag().Set("filepath", path))
	if err != nil {
		return nil, err
	}
	return ModelFromObject(obj), nil
}

// ModelFromJSON asks the library to rebuild a model architecture from its
// JSON description. Weights are not restored.
func ModelFromJSON(jsonConfig string) (*Model, error) {
	obj, err := runtime.New("model_from_json", params.NewBag().Set("json_string", jsonConfig))
	if err != nil {
		return nil, err
	}
	return ModelFromObject(obj), nil
}

// Compile configures the model for training. The optimizer is either a
// library optimizer name ("rmsprop") or an optimizer proxy; the library
// resolves names and validates everything else.
func (m *Model) Compile(optimizer interface{}, loss string, metrics []string) error {
	obj, err := m.Require("Compile")
	if err != nil {
		return err
	}
	opt, err := optimizerValue(optimizer)
	if err != nil {
		return err
	}

	bag := params.NewBag().
		Set("optimizer", opt).
		Set("loss", loss)
	if metrics == nil {
		bag.Set("metrics", nil)
	} else {
		bag.Set("metrics", metrics)
	}

	_, err = obj.Call("compile", nil, bag)
	return err
}

// optimizerValue maps the host-side optimizer argument to a bag value.
func optimizerValue(optimizer interface{}) (interface{}, error) {
	switch v := optimizer.(type) {
	case string:
		return v, nil
	case interface{ Object() *runtime.Object }:
		return v.Object(), nil
	default:
		return nil, gkerrors.NewConversionError("Model.Compile", "optimizer",
			fmt.Sprintf("%T", optimizer), "expected a library optimizer name or an optimizer proxy")
	}
}

// fitConfig collects the fit options forwarded as keyword arguments.
type fitConfig struct {
	batchSize       int
	epochs          int
	verbose         int
	validationSplit float64
	shuffle         bool
	callbacks       []callbacks.Handle
	valX, valY      mat.Matrix
}

// FitOption configures a fit call.
type FitOption func(*fitConfig)

// WithBatchSize sets the number of samples per gradient update.
func WithBatchSize(batchSize int) FitOption {
	return func(c *fitConfig) {
		c.batchSize = batchSize
	}
}

// WithEpochs sets the number of passes over the training data.
func WithEpochs(epochs int) FitOption {
	return func(c *fitConfig) {
		c.epochs = epochs
	}
}

// WithVerbose sets the library-side verbosity mode.
func WithVerbose(verbose int) FitOption {
	return func(c *fitConfig) {
		c.verbose = verbose
	}
}

// WithValidationSplit holds out the final fraction of the training data for
// validation.
func WithValidationSplit(split float64) FitOption {
	return func(c *fitConfig) {
		c.validationSplit = split
	}
}

// WithShuffle toggles shuffling of the training data before each epoch.
func WithShuffle(shuffle bool) FitOption {
	return func(c *fitConfig) {
		c.shuffle = shuffle
	}
}

// WithCallbacks attaches callback proxies to the training run.
func WithCallbacks(cbs ...callbacks.Handle) FitOption {
	return func(c *fitConfig) {
		c.callbacks = cbs
	}
}

// WithValidationData supplies explicit validation inputs and targets,
// overriding any validation split.
func WithValidationData(x, y mat.Matrix) FitOption {
	return func(c *fitConfig) {
		c.valX, c.valY = x, y
	}
}

// Fit trains the model on x and y and returns the History proxy recorded by
// the library. The matrices are externally owned; they are converted at the
// boundary and never retained interpreter-side.
func (m *Model) Fit(x, y mat.Matrix, options ...FitOption) (*callbacks.History, error) {
	obj, err := m.Require("Fit")
	if err != nil {
		return nil, err
	}
	cfg := &fitConfig{
		batchSize: 32,
		epochs:    1,
		verbose:   1,
		shuffle:   true,
	}
	for _, opt := range options {
		opt(cfg)
	}

	bag := params.NewBag().
		Set("x", x).
		Set("y", y).
		Set("batch_size", cfg.batchSize).
		Set("epochs", cfg.epochs).
		Set("verbose", cfg.verbose).
		Set("validation_split", cfg.validationSplit).
		Set("shuffle", cfg.shuffle)
	if len(cfg.callbacks) == 0 {
		bag.Set("callbacks", nil)
	} else {
		handles := make([]interface{}, len(cfg.callbacks))
		for i, cb := range cfg.callbacks {
			handles[i] = cb.Object()
		}
		bag.Set("callbacks", handles)
	}
	if (cfg.valX == nil) != (cfg.valY == nil) {
		return nil, gkerrors.NewConversionError("Model.Fit", "validation_data", "mat.Matrix",
			"validation inputs and targets must be supplied together")
	}
	if cfg.valX != nil {
		bag.Set("validation_data", []interface{}{cfg.valX, cfg.valY})
	}

	res, err := obj.Call("fit", nil, bag)
	if err != nil {
		return nil, err
	}
	return callbacks.HistoryFromObject(res), nil
}

// Evaluate computes the loss and metric values for the given data. The
// result order matches the library's: loss first, then the compiled metrics.
func (m *Model) Evaluate(x, y mat.Matrix, options ...FitOption) ([]float64, error) {
	obj, err := m.Require("Evaluate")
	if err != nil {
		return nil, err
	}
	cfg := &fitConfig{
		batchSize: 32,
		verbose:   0,
	}
	for _, opt := range options {
		opt(cfg)
	}

	bag := params.NewBag().
		Set("x", x).
		Set("y", y).
		Set("batch_size", cfg.batchSize).
		Set("verbose", cfg.verbose)

	res, err := obj.Call("evaluate", nil, bag)
	if err != nil {
		return nil, err
	}
	// A model compiled without metrics reports a bare scalar.
	if values, err := res.Floats(); err == nil {
		return values, nil
	}
	v, err := res.Float()
	if err != nil {
		return nil, err
	}
	return []float64{v}, nil
}

// Predict runs inference on x and copies the predictions back as a dense
// matrix, one row per input sample.
func (m *Model) Predict(x mat.Matrix) (*mat.Dense, error) {
	obj, err := m.Require("Predict")
	if err != nil {
		return nil, err
	}
	bag := params.NewBag().Set("x", x)
	res, err := obj.Call("predict", nil, bag)
	if err != nil {
		return nil, err
	}
	rows, err := res.Floats2D()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return &mat.Dense{}, nil
	}
	cols := len(rows[0])
	out := mat.NewDense(len(rows), cols, nil)
	for i, row := range rows {
		if len(row) != cols {
			return nil, gkerrors.NewConversionError("Model.Predict", "",
				"*mat.Dense", "prediction rows have inconsistent lengths")
		}
		out.SetRow(i, row)
	}
	return out, nil
}

// Summary asks the library to print the model architecture.
func (m *Model) Summary() error {
	obj, err := m.Require("Summary")
	if err != nil {
		return err
	}
	_, err = obj.Call("summary", nil, nil)
	return err
}

// Save persists the full model, weights and optimizer state included, to
// path in the library's own format.
func (m *Model) Save(path string) error {
	obj, err := m.Require("Save")
	if err != nil {
		return err
	}
	_, err = obj.Call("save", []interface{}{path}, nil)
	return err
}

// SaveWeights persists only the model weights to path.
func (m *Model) SaveWeights(path string) error {
	obj, err := m.Require("SaveWeights")
	if err != nil {
		return err
	}
	_, err = obj.Call("save_weights", []interface{}{path}, nil)
	return err
}

// LoadWeights restores model weights saved with SaveWeights. The
// architecture must already match.
func (m *Model) LoadWeights(path string) error {
	obj, err := m.Require("LoadWeights")
	if err != nil {
		return err
	}
	_, err = obj.Call("load_weights", []interface{}{path}, nil)
	return err
}

// ToJSON returns the library's JSON description of the model architecture.
func (m *Model) ToJSON() (string, error) {
	obj, err := m.Require("ToJSON")
	if err != nil {
		return "", err
	}
	res, err := obj.Call("to_json", nil, nil)
	if err != nil {
		return "", err
	}
	return res.Str()
}

// StopTraining reads back the flag callbacks set to end training early.
func (m *Model) StopTraining() (bool, error) {
	obj, err := m.Require("StopTraining")
	if err != nil {
		return false, err
	}
	v, err := obj.Attr("stop_training")
	if err != nil {
		return false, err
	}
	return v.Bool()
}
