package callbacks

import (
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	gkerrors "github.com/gokeras/gokeras/pkg/errors"
)

// SavePlot renders every recorded metric series as a line over the epoch
// axis and writes the chart to path. The image format follows the file
// extension, as in plot.Save.
func (h *History) SavePlot(path string) error {
	epochs, err := h.Epoch()
	if err != nil {
		return err
	}
	series, err := h.History()
	if err != nil {
		return err
	}
	if len(series) == 0 {
		return gkerrors.New("gokeras: History.SavePlot: no metric series recorded")
	}

	p := plot.New()
	p.Title.Text = "Training history"
	p.X.Label.Text = "epoch"
	p.Y.Label.Text = "value"
	p.Legend.Top = true

	// Deterministic legend order.
	names := make([]string, 0, len(series))
	for name := range series {
		names = append(names, name)
	}
	sort.Strings(names)

	for i, name := range names {
		values := series[name]
		pts := make(plotter.XYs, len(values))
		for j, v := range values {
			x := float64(j)
			if j < len(epochs) {
				x = float64(epochs[j])
			}
			pts[j].X = x
			pts[j].Y = v
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return gkerrors.Wrapf(err, "gokeras: History.SavePlot: series %q", name)
		}
		line.Color = plotutil.Color(i)
		p.Add(line)
		p.Legend.Add(name, line)
	}

	if err := p.Save(8*vg.Inch, 6*vg.Inch, path); err != nil {
		return gkerrors.Wrap(err, "gokeras: History.SavePlot")
	}
	return nil
}
