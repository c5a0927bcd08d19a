package callbacks

import (
	"github.com/gokeras/gokeras/pkg/params"
)

// TensorBoard proxies the library callback that writes TensorBoard event
// files. The log directory is an opaque path forwarded verbatim; every file
// written under it is owned by the library.
type TensorBoard struct {
	Callback

	logDir        string
	histogramFreq int
	batchSize     int
	writeGraph    bool
	writeGrads    bool
	writeImages   bool
	updateFreq    string
}

// TensorBoardOption configures a TensorBoard proxy.
type TensorBoardOption func(*TensorBoard)

// WithTBLogDir sets the directory the event files are written to.
func WithTBLogDir(logDir string) TensorBoardOption {
	return func(tb *TensorBoard) {
		tb.logDir = logDir
	}
}

// WithTBHistogramFreq sets the epoch frequency of weight histogram
// computation; zero disables histograms.
func WithTBHistogramFreq(freq int) TensorBoardOption {
	return func(tb *TensorBoard) {
		tb.histogramFreq = freq
	}
}

// WithTBBatchSize sets the input batch size used for histogram computation.
func WithTBBatchSize(batchSize int) TensorBoardOption {
	return func(tb *TensorBoard) {
		tb.batchSize = batchSize
	}
}

// WithTBWriteGraph writes the computation graph to the event files.
func WithTBWriteGraph(writeGraph bool) TensorBoardOption {
	return func(tb *TensorBoard) {
		tb.writeGraph = writeGraph
	}
}

// WithTBWriteGrads writes gradient histograms; requires a nonzero histogram
// frequency.
func WithTBWriteGrads(writeGrads bool) TensorBoardOption {
	return func(tb *TensorBoard) {
		tb.writeGrads = writeGrads
	}
}

// WithTBWriteImages writes model weights as images.
func WithTBWriteImages(writeImages bool) TensorBoardOption {
	return func(tb *TensorBoard) {
		tb.writeImages = writeImages
	}
}

// WithTBUpdateFreq sets how often losses and metrics are written: "batch",
// "epoch", or the library's sample-count form.
func WithTBUpdateFreq(updateFreq string) TensorBoardOption {
	return func(tb *TensorBoard) {
		tb.updateFreq = updateFreq
	}
}

// NewTensorBoard constructs the library-side TensorBoard callback.
func NewTensorBoard(options ...TensorBoardOption) (*TensorBoard, error) {
	tb := &TensorBoard{
		logDir:     "./logs",
		batchSize:  32,
		writeGraph: true,
		updateFreq: "epoch",
	}
	for _, opt := range options {
		opt(tb)
	}

	bag := params.NewBag().
		Set("log_dir", tb.logDir).
		Set("histogram_freq", tb.histogramFreq).
		Set("batch_size", tb.batchSize).
		Set("write_graph", tb.writeGraph).
		Set("write_grads", tb.writeGrads).
		Set("write_images", tb.writeImages).
		Set("update_freq", tb.updateFreq)

	if err := tb.build("TensorBoard", bag); err != nil {
		return nil, err
	}
	return tb, nil
}
