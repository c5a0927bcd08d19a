package callbacks

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryReadBack(t *testing.T) {
	h, err := NewHistory()
	require.NoError(t, err)

	epochs, err := h.Epoch()
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, epochs)

	series, err := h.History()
	require.NoError(t, err)
	assert.Equal(t, map[string][]float64{
		"loss":     {0.9, 0.6, 0.4, 0.3},
		"val_loss": {1.0, 0.7, 0.5, 0.45},
	}, series)
}

func TestHistorySavePlot(t *testing.T) {
	h, err := NewHistory()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "history.png")
	require.NoError(t, h.SavePlot(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
