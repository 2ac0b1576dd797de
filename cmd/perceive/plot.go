package main

import (
	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

const bearingBins = 36

// plotBearings saves a histogram of navigable bearings, in degrees, as an image at path.
func plotBearings(bearings []float64, path string) error {
	if len(bearings) == 0 {
		return errors.New("no navigable terrain to plot")
	}
	p := plot.New()
	p.Title.Text = "Navigable bearings"
	p.X.Label.Text = "bearing (deg, left positive)"
	p.Y.Label.Text = "pixels"

	hist, err := plotter.NewHist(plotter.Values(bearings), bearingBins)
	if err != nil {
		return errors.Wrap(err, "cannot bin bearings")
	}
	p.Add(hist)
	p.Add(plotter.NewGrid())

	if err := p.Save(8*vg.Inch, 4*vg.Inch, path); err != nil {
		return errors.Wrapf(err, "cannot save bearing plot to %q", path)
	}
	return nil
}
