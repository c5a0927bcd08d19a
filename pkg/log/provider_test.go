package log

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	gkerrors "github.com/gokeras/gokeras/pkg/errors"
)

func TestTestLoggerCapture(t *testing.T) {
	testLogger, buffer := NewTestLogger(LevelDebug)

	testLogger.Debug("constructing proxy", ClassKey, "Dense")
	testLogger.Info("library loaded", LibraryKey, "keras")
	testLogger.Warn("coerced value")
	testLogger.Error("interpreter raised")

	if buffer.String() == "" {
		t.Fatal("Expected log output, got empty string")
	}
	for _, msg := range []string{"constructing proxy", "library loaded", "coerced value", "interpreter raised"} {
		if !testLogger.Contains(msg) {
			t.Errorf("%q not found in output", msg)
		}
	}
	if !testLogger.Contains("proxy.class=Dense") {
		t.Error("structured field proxy.class=Dense not found")
	}
}

func TestTestLoggerLevelFiltering(t *testing.T) {
	testLogger, _ := NewTestLogger(LevelWarn)

	testLogger.Debug("too quiet")
	testLogger.Info("still too quiet")
	testLogger.Warn("audible")

	if testLogger.Contains("too quiet") {
		t.Error("Debug record should be filtered below LevelWarn")
	}
	if !testLogger.Contains("audible") {
		t.Error("Warn record should pass the filter")
	}
	if len(testLogger.Lines()) != 1 {
		t.Errorf("Lines() = %d records, want 1", len(testLogger.Lines()))
	}
}

func TestTestLoggerWith(t *testing.T) {
	testLogger, _ := NewTestLogger(LevelInfo)
	scoped := testLogger.With(ClassKey, "EarlyStopping")

	scoped.Info("constructed")

	if !testLogger.Contains("proxy.class=EarlyStopping") {
		t.Error("With fields should appear on every record of the derived logger")
	}
	if !scoped.Enabled(context.Background(), LevelError) {
		t.Error("Error should be enabled on an Info-level logger")
	}
	if scoped.Enabled(context.Background(), LevelDebug) {
		t.Error("Debug should be disabled on an Info-level logger")
	}
}

func TestZerologProviderJSON(t *testing.T) {
	var buffer bytes.Buffer
	provider := NewZerologProvider(&buffer)

	provider.GetLoggerWithName("runtime").Info("library loaded", LibraryKey, "keras")

	var record map[string]interface{}
	if err := json.Unmarshal(buffer.Bytes(), &record); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if record["component"] != "runtime" {
		t.Errorf("component = %v, want runtime", record["component"])
	}
	if record["proxy.library"] != "keras" {
		t.Errorf("proxy.library = %v, want keras", record["proxy.library"])
	}
	if record["message"] != "library loaded" {
		t.Errorf("message = %v, want library loaded", record["message"])
	}
}

func TestZerologProviderLevel(t *testing.T) {
	var buffer bytes.Buffer
	provider := NewZerologProvider(&buffer)
	provider.SetLevel(LevelError)

	provider.GetLogger().Info("dropped")
	if buffer.Len() != 0 {
		t.Error("Info record should be dropped at LevelError")
	}

	provider.GetLogger().Error("kept")
	if buffer.Len() == 0 {
		t.Error("Error record should be written at LevelError")
	}
}

func TestInstallWarningSink(t *testing.T) {
	var buffer bytes.Buffer
	old := defaultProvider
	SetProvider(NewZerologProvider(&buffer))
	defer func() {
		SetProvider(old)
		gkerrors.SetZerologWarnFunc(nil)
	}()

	InstallWarningSink()
	gkerrors.Warn(gkerrors.NewDataConversionWarning("int", "float64", "integer series coerced"))

	var record map[string]interface{}
	if err := json.Unmarshal(buffer.Bytes(), &record); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if record["message"] != "binding warning" {
		t.Errorf("message = %v, want binding warning", record["message"])
	}
	if record["component"] != "warnings" {
		t.Errorf("component = %v, want warnings", record["component"])
	}
}

func TestToLogLevel(t *testing.T) {
	tests := map[string]struct {
		in   string
		want string
	}{
		"debug": {"debug", "DEBUG"},
		"info":  {"info", "INFO"},
		"warn":  {"warn", "WARN"},
		"error": {"error", "ERROR"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := ToLogLevel(tt.in).String(); got != tt.want {
				t.Errorf("ToLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
