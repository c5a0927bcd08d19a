// Package gokeras is a Go binding for a Python deep learning library hosted
// in an embedded interpreter.
//
// The binding is deliberately thin. Every layer, callback, optimizer, and
// model type in this module is a proxy: its constructor marshals the Go
// arguments into an ordered parameter bag, forwards them to the interpreter
// as keyword arguments, and keeps an opaque handle to the object the library
// built. All semantics (shape inference, training loops, callback decision
// logic, file formats) stay library-side. Exceptions raised by the library
// propagate to Go callers unchanged, wrapped only for stack capture and
// structured logging.
//
// # Quick Start
//
// Building and training a model reads much like the Python it forwards to:
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "gonum.org/v1/gonum/mat"
//
//	    "github.com/gokeras/gokeras/callbacks"
//	    "github.com/gokeras/gokeras/layers"
//	    "github.com/gokeras/gokeras/models"
//	)
//
//	func main() {
//	    dense, err := layers.NewDense(64,
//	        layers.WithDenseActivation("relu"),
//	        layers.WithDenseInputShape([]int{20}),
//	    )
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    out, err := layers.NewDense(1, layers.WithDenseActivation("sigmoid"))
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    model, err := models.NewSequential(dense, out)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    if err := model.Compile("rmsprop", "binary_crossentropy", []string{"accuracy"}); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    es, err := callbacks.NewEarlyStopping(callbacks.WithESPatience(3))
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    x := mat.NewDense(100, 20, nil)
//	    y := mat.NewDense(100, 1, nil)
//	    history, err := model.Fit(x, y,
//	        models.WithEpochs(10),
//	        models.WithCallbacks(es),
//	    )
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    series, err := history.History()
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(series["loss"])
//	}
//
// # Packages
//
//   - layers: Dense, Conv2D, LSTM, Embedding, and the other layer proxies
//   - callbacks: EarlyStopping, ModelCheckpoint, History, and friends
//   - optimizers: SGD, Adam, RMSprop, and the rest of the optimizer family
//   - models: Sequential and the shared Model surface
//   - pkg/runtime: the interpreter bridge and value marshaling
//   - pkg/params: the ordered parameter bag
//   - pkg/errors: error types and the warning system
//   - pkg/log: structured logging
//
// # Error Handling
//
// Library exceptions surface as *errors.PythonError with the host operation
// name attached; host-side misuse surfaces as *errors.NotBuiltError or
// *errors.ConversionError. All carry stack traces:
//
//	if _, err := model.Fit(x, y); err != nil {
//	    var pyErr *gkerrors.PythonError
//	    if errors.As(err, &pyErr) {
//	        log.Printf("library rejected the call: %v", pyErr)
//	    }
//	}
package gokeras
