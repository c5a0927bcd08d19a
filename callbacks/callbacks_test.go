package callbacks

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gokeras/gokeras/pkg/runtime"
)

// The stub library records every constructor keyword argument so the tests
// can check marshaling fidelity: what the Go constructor was given must be
// exactly what the library object observed.
const stubSrc = `
class Callback:
    def __init__(self, **kwargs):
        self.captured = kwargs

class BaseLogger:
    def __init__(self, **kwargs):
        self.captured = kwargs

class TerminateOnNaN:
    def __init__(self, **kwargs):
        self.captured = kwargs

class ProgbarLogger:
    def __init__(self, **kwargs):
        self.captured = kwargs

class History:
    def __init__(self, **kwargs):
        self.captured = kwargs
        self.epoch = [0, 1, 2, 3]
        self.history = {"loss": [0.9, 0.6, 0.4, 0.3], "val_loss": [1.0, 0.7, 0.5, 0.45]}

class ModelCheckpoint:
    def __init__(self, **kwargs):
        self.captured = kwargs

class EarlyStopping:
    def __init__(self, **kwargs):
        self.captured = kwargs
        self.stopped_epoch = 9

class RemoteMonitor:
    def __init__(self, **kwargs):
        self.captured = kwargs

class LearningRateScheduler:
    def __init__(self, **kwargs):
        self.captured = kwargs

    def invoke(self, epoch, lr):
        return self.captured["schedule"](epoch, lr)

class ReduceLROnPlateau:
    def __init__(self, **kwargs):
        self.captured = kwargs

class CSVLogger:
    def __init__(self, **kwargs):
        self.captured = kwargs

class LambdaCallback:
    def __init__(self, **kwargs):
        self.captured = kwargs

    def fire_epoch(self, epoch, logs):
        cb = self.captured["on_epoch_end"]
        if cb is not None:
            cb(epoch, logs)

class TensorBoard:
    def __init__(self, **kwargs):
        self.captured = kwargs
`

func TestMain(m *testing.M) {
	if err := runtime.LoadLibrarySrc("kerastub_callbacks", stubSrc); err != nil {
		panic(err)
	}
	runtime.SetLibrary("kerastub_callbacks")
	os.Exit(m.Run())
}

func capturedOf(t *testing.T, h Handle) *runtime.Object {
	t.Helper()
	c, err := h.Object().Attr("captured")
	require.NoError(t, err)
	return c
}

func itemString(t *testing.T, c *runtime.Object, key string) string {
	t.Helper()
	v, err := c.Item(key)
	require.NoError(t, err)
	s, err := v.Str()
	require.NoError(t, err)
	return s
}

func itemInt(t *testing.T, c *runtime.Object, key string) int {
	t.Helper()
	v, err := c.Item(key)
	require.NoError(t, err)
	n, err := v.Int()
	require.NoError(t, err)
	return n
}

func itemFloat(t *testing.T, c *runtime.Object, key string) float64 {
	t.Helper()
	v, err := c.Item(key)
	require.NoError(t, err)
	f, err := v.Float()
	require.NoError(t, err)
	return f
}

func itemBool(t *testing.T, c *runtime.Object, key string) bool {
	t.Helper()
	v, err := c.Item(key)
	require.NoError(t, err)
	b, err := v.Bool()
	require.NoError(t, err)
	return b
}

func itemIsNone(t *testing.T, c *runtime.Object, key string) bool {
	t.Helper()
	v, err := c.Item(key)
	require.NoError(t, err)
	return v.IsNone()
}

func TestEarlyStoppingDefaults(t *testing.T) {
	es, err := NewEarlyStopping()
	require.NoError(t, err)
	c := capturedOf(t, es)

	assert.Equal(t, "val_loss", itemString(t, c, "monitor"))
	assert.Equal(t, 0.0, itemFloat(t, c, "min_delta"))
	assert.Equal(t, 0, itemInt(t, c, "patience"))
	assert.Equal(t, 0, itemInt(t, c, "verbose"))
	assert.Equal(t, "auto", itemString(t, c, "mode"))
	assert.True(t, itemIsNone(t, c, "baseline"))
	assert.False(t, itemBool(t, c, "restore_best_weights"))
}

func TestEarlyStoppingOptions(t *testing.T) {
	es, err := NewEarlyStopping(
		WithESMonitor("val_acc"),
		WithESMinDelta(0.01),
		WithESPatience(3),
		WithESVerbose(1),
		WithESMode("max"),
		WithESBaseline(0.8),
		WithESRestoreBestWeights(true),
	)
	require.NoError(t, err)
	c := capturedOf(t, es)

	assert.Equal(t, "val_acc", itemString(t, c, "monitor"))
	assert.Equal(t, 0.01, itemFloat(t, c, "min_delta"))
	assert.Equal(t, 3, itemInt(t, c, "patience"))
	assert.Equal(t, 1, itemInt(t, c, "verbose"))
	assert.Equal(t, "max", itemString(t, c, "mode"))
	assert.Equal(t, 0.8, itemFloat(t, c, "baseline"))
	assert.True(t, itemBool(t, c, "restore_best_weights"))

	stopped, err := es.StoppedEpoch()
	require.NoError(t, err)
	assert.Equal(t, 9, stopped)
}

func TestModelCheckpoint(t *testing.T) {
	mc, err := NewModelCheckpoint("weights.{epoch:02d}.hdf5",
		WithMCMonitor("val_acc"),
		WithMCVerbose(1),
		WithMCSaveBestOnly(true),
		WithMCSaveWeightsOnly(true),
		WithMCMode("max"),
		WithMCPeriod(2),
	)
	require.NoError(t, err)
	c := capturedOf(t, mc)

	// The filepath template is opaque to the binding and must arrive intact.
	assert.Equal(t, "weights.{epoch:02d}.hdf5", itemString(t, c, "filepath"))
	assert.Equal(t, "val_acc", itemString(t, c, "monitor"))
	assert.Equal(t, 1, itemInt(t, c, "verbose"))
	assert.True(t, itemBool(t, c, "save_best_only"))
	assert.True(t, itemBool(t, c, "save_weights_only"))
	assert.Equal(t, "max", itemString(t, c, "mode"))
	assert.Equal(t, 2, itemInt(t, c, "period"))
}

func TestReduceLROnPlateauDefaults(t *testing.T) {
	r, err := NewReduceLROnPlateau()
	require.NoError(t, err)
	c := capturedOf(t, r)

	assert.Equal(t, "val_loss", itemString(t, c, "monitor"))
	assert.Equal(t, 0.1, itemFloat(t, c, "factor"))
	assert.Equal(t, 10, itemInt(t, c, "patience"))
	assert.Equal(t, "auto", itemString(t, c, "mode"))
	assert.Equal(t, 1e-4, itemFloat(t, c, "min_delta"))
	assert.Equal(t, 0, itemInt(t, c, "cooldown"))
	assert.Equal(t, 0.0, itemFloat(t, c, "min_lr"))
}

func TestLearningRateScheduler(t *testing.T) {
	schedule := func(epoch int, lr float64) float64 {
		return lr / float64(epoch+1)
	}
	lrs, err := NewLearningRateScheduler(schedule, 1)
	require.NoError(t, err)

	c := capturedOf(t, lrs)
	assert.Equal(t, 1, itemInt(t, c, "verbose"))

	// The schedule crosses the boundary as a callable the library can
	// invoke; its result must round-trip exactly.
	res, err := lrs.Object().Call("invoke", []interface{}{3, 0.2}, nil)
	require.NoError(t, err)
	out, err := res.Float()
	require.NoError(t, err)
	assert.InDelta(t, 0.05, out, 1e-12)
}

func TestLambdaCallbackHooks(t *testing.T) {
	var gotEpoch int
	var gotLogs map[string]float64
	lc, err := NewLambdaCallback(
		WithOnEpochEnd(func(epoch int, logs map[string]float64) {
			gotEpoch = epoch
			gotLogs = logs
		}),
	)
	require.NoError(t, err)

	c := capturedOf(t, lc)
	assert.True(t, itemIsNone(t, c, "on_epoch_begin"))
	assert.True(t, itemIsNone(t, c, "on_train_end"))

	_, err = lc.Object().Call("fire_epoch", []interface{}{2, map[string]float64{"loss": 0.4}}, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, gotEpoch)
	assert.Equal(t, map[string]float64{"loss": 0.4}, gotLogs)
}

// A host hook runs on the goroutine that is already driving the interpreter,
// so bridge calls made from inside it must not block on the bridge lock.
func TestLambdaCallbackHookReentersBridge(t *testing.T) {
	es, err := NewEarlyStopping()
	require.NoError(t, err)

	var libName string
	var stopped int
	lc, err := NewLambdaCallback(
		WithOnEpochEnd(func(epoch int, logs map[string]float64) {
			libName = runtime.LibraryName()
			var hookErr error
			stopped, hookErr = es.StoppedEpoch()
			require.NoError(t, hookErr)
		}),
	)
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, err = lc.Object().Call("fire_epoch", []interface{}{1, map[string]float64{"loss": 0.1}}, nil)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("hook deadlocked on the bridge lock")
	}
	require.NoError(t, err)
	assert.Equal(t, "kerastub_callbacks", libName)
	assert.Equal(t, 9, stopped)
}

func TestRemoteMonitor(t *testing.T) {
	rm, err := NewRemoteMonitor(
		WithRMRoot("http://monitor:9000"),
		WithRMPath("/events/"),
		WithRMField("payload"),
		WithRMHeaders(map[string]string{"X-Token": "secret"}),
		WithRMSendAsJSON(true),
	)
	require.NoError(t, err)
	c := capturedOf(t, rm)

	assert.Equal(t, "http://monitor:9000", itemString(t, c, "root"))
	assert.Equal(t, "/events/", itemString(t, c, "path"))
	assert.Equal(t, "payload", itemString(t, c, "field"))
	h, err := c.Item("headers")
	require.NoError(t, err)
	headers, err := h.StringMap()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"X-Token": "secret"}, headers)
	assert.True(t, itemBool(t, c, "send_as_json"))
}

func TestCSVLogger(t *testing.T) {
	cl, err := NewCSVLogger("training.log",
		WithCSVSeparator(";"),
		WithCSVAppend(true),
	)
	require.NoError(t, err)
	c := capturedOf(t, cl)

	assert.Equal(t, "training.log", itemString(t, c, "filename"))
	assert.Equal(t, ";", itemString(t, c, "separator"))
	assert.True(t, itemBool(t, c, "append"))
}

func TestTensorBoard(t *testing.T) {
	tb, err := NewTensorBoard(
		WithTBLogDir("/tmp/tb"),
		WithTBHistogramFreq(1),
		WithTBBatchSize(16),
		WithTBWriteGrads(true),
		WithTBWriteImages(true),
		WithTBUpdateFreq("batch"),
	)
	require.NoError(t, err)
	c := capturedOf(t, tb)

	assert.Equal(t, "/tmp/tb", itemString(t, c, "log_dir"))
	assert.Equal(t, 1, itemInt(t, c, "histogram_freq"))
	assert.Equal(t, 16, itemInt(t, c, "batch_size"))
	assert.True(t, itemBool(t, c, "write_graph"))
	assert.True(t, itemBool(t, c, "write_grads"))
	assert.True(t, itemBool(t, c, "write_images"))
	assert.Equal(t, "batch", itemString(t, c, "update_freq"))
}

func TestSimpleCallbacks(t *testing.T) {
	t.Run("base callback", func(t *testing.T) {
		cb, err := NewCallback()
		require.NoError(t, err)
		assert.True(t, cb.Bound())
	})

	t.Run("terminate on nan", func(t *testing.T) {
		tn, err := NewTerminateOnNaN()
		require.NoError(t, err)
		assert.True(t, tn.Bound())
	})

	t.Run("base logger stateful metrics", func(t *testing.T) {
		bl, err := NewBaseLogger([]string{"val_acc"})
		require.NoError(t, err)
		c := capturedOf(t, bl)
		v, err := c.Item("stateful_metrics")
		require.NoError(t, err)
		metrics, err := v.Strings()
		require.NoError(t, err)
		assert.Equal(t, []string{"val_acc"}, metrics)
	})

	t.Run("progbar logger", func(t *testing.T) {
		pl, err := NewProgbarLogger(WithPLCountMode("steps"))
		require.NoError(t, err)
		c := capturedOf(t, pl)
		assert.Equal(t, "steps", itemString(t, c, "count_mode"))
		assert.True(t, itemIsNone(t, c, "stateful_metrics"))
	})
}
