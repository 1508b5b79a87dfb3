// plot
/*
Copyright 2021 Bruce Golden and Matt Spangler

Permission is hereby granted, free of charge, to any person obtaining a copy of
this software and associated documentation files (the "Software"), to deal in
the Software without restriction, including without limitation the rights to
use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies
of the Software, and to permit persons to whom the Software is furnished to do
so, subject to the following conditions:
The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.
*/
package report

import (
	"fmt"
	"path/filepath"

	"github.com/blgolden/iGenDecModel/iGenDairy/animal"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Daily milk of a cow from its first advanced day as plot points
func MilkPoints(c *animal.Cow) plotter.XYs {
	pts := make(plotter.XYs, len(c.MilkStat))
	for i, m := range c.MilkStat {
		pts[i].X = float64(i)
		pts[i].Y = m
	}
	return pts
}

// Write the milk production of a cow as a PNG in dir.
// Returns the file name written.
func PlotMilk(c *animal.Cow, dir string) (string, error) {

	p, err := plot.New()
	if err != nil {
		return "", err
	}
	p.Title.Text = fmt.Sprintf("Cow %d milk production", c.Id)
	p.X.Label.Text = "Days of life"
	p.Y.Label.Text = "Milk per day"

	line, err := plotter.NewLine(MilkPoints(c))
	if err != nil {
		return "", fmt.Errorf("cow %d: %w", c.Id, err)
	}
	p.Add(line)

	file := filepath.Join(dir, fmt.Sprintf("cow%d_milk.png", c.Id))
	if err := p.Save(8*vg.Inch, 4*vg.Inch, file); err != nil {
		return "", err
	}
	return file, nil
}
