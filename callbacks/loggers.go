package callbacks

import (
	"github.com/gokeras/gokeras/pkg/params"
)

// BaseLogger proxies the library callback that accumulates epoch averages of
// the reported metrics. The library attaches one to every fit call; an
// explicit instance is only needed to mark metrics as stateful.
type BaseLogger struct {
	Callback
}

// NewBaseLogger constructs the library-side BaseLogger. statefulMetrics
// names the metrics that must not be averaged over the epoch; nil forwards
// the library default.
func NewBaseLogger(statefulMetrics []string) (*BaseLogger, error) {
	bl := &BaseLogger{}
	bag := params.NewBag()
	if statefulMetrics == nil {
		bag.Set("stateful_metrics", nil)
	} else {
		bag.Set("stateful_metrics", statefulMetrics)
	}
	if err := bl.build("BaseLogger", bag); err != nil {
		return nil, err
	}
	return bl, nil
}

// TerminateOnNaN proxies the library callback that stops training when a NaN
// loss is encountered. It takes no options.
type TerminateOnNaN struct {
	Callback
}

// NewTerminateOnNaN constructs the library-side TerminateOnNaN callback.
func NewTerminateOnNaN() (*TerminateOnNaN, error) {
	tn := &TerminateOnNaN{}
	if err := tn.build("TerminateOnNaN", nil); err != nil {
		return nil, err
	}
	return tn, nil
}

// ProgbarLogger proxies the library callback that prints progress to stdout.
type ProgbarLogger struct {
	Callback

	countMode       string
	statefulMetrics []string
}

// ProgbarLoggerOption configures a ProgbarLogger proxy.
type ProgbarLoggerOption func(*ProgbarLogger)

// WithPLCountMode sets whether progress counts "steps" or "samples".
func WithPLCountMode(countMode string) ProgbarLoggerOption {
	return func(pl *ProgbarLogger) {
		pl.countMode = countMode
	}
}

// WithPLStatefulMetrics names the metrics that must not be averaged over the
// epoch.
func WithPLStatefulMetrics(metrics []string) ProgbarLoggerOption {
	return func(pl *ProgbarLogger) {
		pl.statefulMetrics = metrics
	}
}

// NewProgbarLogger constructs the library-side ProgbarLogger callback.
func NewProgbarLogger(options ...ProgbarLoggerOption) (*ProgbarLogger, error) {
	pl := &ProgbarLogger{
		countMode: "samples",
	}
	for _, opt := range options {
		opt(pl)
	}

	bag := params.NewBag().Set("count_mode", pl.countMode)
	if pl.statefulMetrics == nil {
		bag.Set("stateful_metrics", nil)
	} else {
		bag.Set("stateful_metrics", pl.statefulMetrics)
	}

	if err := pl.build("ProgbarLogger", bag); err != nil {
		return nil, err
	}
	return pl, nil
}

// CSVLogger proxies the library callback that streams epoch results to a CSV
// file. The filename is forwarded verbatim; the library owns the file.
type CSVLogger struct {
	Callback

	filename  string
	separator string
	append    bool
}

// CSVLoggerOption configures a CSVLogger proxy.
type CSVLoggerOption func(*CSVLogger)

// WithCSVSeparator sets the element separator.
func WithCSVSeparator(separator string) CSVLoggerOption {
	return func(cl *CSVLogger) {
		cl.separator = separator
	}
}

// WithCSVAppend appends to an existing file instead of overwriting it.
func WithCSVAppend(append bool) CSVLoggerOption {
	return func(cl *CSVLogger) {
		cl.append = append
	}
}

// NewCSVLogger constructs the library-side CSVLogger callback writing to
// filename.
func NewCSVLogger(filename string, options ...CSVLoggerOption) (*CSVLogger, error) {
	cl := &CSVLogger{
		filename:  filename,
		separator: ",",
	}
	for _, opt := range options {
		opt(cl)
	}

	bag := params.NewBag().
		Set("filename", cl.filename).
		Set("separator", cl.separator).
		Set("append", cl.append)

	if err := cl.build("CSVLogger", bag); err != nil {
		return nil, err
	}
	return cl, nil
}
