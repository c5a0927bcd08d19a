package errors

import (
	"fmt"
	"strings"
	"testing"
)

func TestNewPythonError(t *testing.T) {
	underlying := fmt.Errorf("ValueError: Unknown activation function: swish2")
	err := NewPythonError("Activation", underlying)

	want := "gokeras: Activation: python: ValueError: Unknown activation function: swish2"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	formatted := fmt.Sprintf("%+v", err)
	if !strings.Contains(formatted, "errors_test.go") {
		t.Error("Expected stack trace to contain test file name")
	}

	var pyErr *PythonError
	if !As(err, &pyErr) {
		t.Fatal("Error should be castable to *PythonError")
	}
	if pyErr.Op != "Activation" {
		t.Errorf("Op = %v, want Activation", pyErr.Op)
	}
	if !Is(err, underlying) {
		t.Error("Unwrap chain should reach the interpreter exception")
	}
}

func TestNewNotBuiltError(t *testing.T) {
	err := NewNotBuiltError("Sequential", "Fit")

	want := "gokeras: Sequential: proxy has no interpreter object. Construct it before calling Fit()"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	var notBuilt *NotBuiltError
	if !As(err, &notBuilt) {
		t.Error("Error should be castable to *NotBuiltError")
	}
}

func TestNewConversionError(t *testing.T) {
	tests := []struct {
		name    string
		op      string
		key     string
		goType  string
		reason  string
		wantMsg string
	}{
		{
			name:    "with key",
			op:      "EarlyStopping",
			key:     "baseline",
			goType:  "chan int",
			reason:  "unsupported parameter type",
			wantMsg: `gokeras: EarlyStopping: cannot convert "baseline" (chan int): unsupported parameter type`,
		},
		{
			name:    "without key",
			op:      "Model.Predict",
			key:     "",
			goType:  "*mat.Dense",
			reason:  "prediction rows have inconsistent lengths",
			wantMsg: "gokeras: Model.Predict: cannot convert *mat.Dense: prediction rows have inconsistent lengths",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewConversionError(tt.op, tt.key, tt.goType, tt.reason)
			if err.Error() != tt.wantMsg {
				t.Errorf("Error() = %v, want %v", err.Error(), tt.wantMsg)
			}

			var convErr *ConversionError
			if !As(err, &convErr) {
				t.Error("Error should be castable to *ConversionError")
			}
		})
	}
}

func TestWarningHandler(t *testing.T) {
	var captured error
	SetWarningHandler(func(w error) {
		captured = w
	})
	defer SetWarningHandler(nil)

	warning := NewDataConversionWarning("int", "float64", "integer series coerced during read-back")
	Warn(warning)

	if captured == nil {
		t.Fatal("Warning handler was not invoked")
	}
	want := "value converted from int to float64. Reason: integer series coerced during read-back"
	if captured.Error() != want {
		t.Errorf("warning = %v, want %v", captured.Error(), want)
	}
}

func TestZerologWarnFuncTakesPriority(t *testing.T) {
	var viaHandler, viaZerolog bool
	SetWarningHandler(func(w error) {
		viaHandler = true
	})
	SetZerologWarnFunc(func(w error) {
		viaZerolog = true
	})
	defer func() {
		SetWarningHandler(nil)
		SetZerologWarnFunc(nil)
	}()

	Warn(NewDataConversionWarning("int", "float64", "test"))

	if !viaZerolog {
		t.Error("zerolog sink should receive the warning")
	}
	if viaHandler {
		t.Error("plain handler should be bypassed while a zerolog sink is installed")
	}
}
