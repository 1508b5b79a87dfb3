// lactation
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
package animal

import "math"

// Days the annualized milk is scaled to
const LactationYearDays = 356

// MilkBot lactation curve parameters
type Curve struct {
	A float64 // Scale
	B float64 // Ramp
	C float64 // Offset
	D float64 // Decay
}

// First, second and later lactations
func DefaultCurves() []Curve {
	return []Curve{
		{A: 38, B: 36.6, C: -3.6, D: 0.00105},
		{A: 49, B: 27.9, C: -4.0, D: 0.00206},
		{A: 53.1, B: 30.1, C: -2.4, D: 0.00233},
	}
}

// Daily milk at dim days in milk
func (k Curve) Yield(dim int) float64 {
	t := float64(dim)
	return k.A * (1 - math.Exp((k.C-t)/k.B)/2) * math.Exp(-k.D*t)
}

// Today's milk, added to the lactation totals
func (c *Cow) milk() float64 {
	curves := c.env.Params.Curves
	y := curves[bucket(c.Parity, len(curves)-1)].Yield(c.DaysInMilk)

	b := 1
	if c.Parity == 1 {
		b = 0
	}
	c.MilkTotal[b] += y
	c.MilkDays[b]++

	return y
}

// Milk per year for the first lactation (0) or later lactations (1). ok is false when there are no days in milk yet.
func (c *Cow) AnnualizedMilk(lactation int) (milk float64, ok bool) {
	if lactation < 0 || lactation >= len(c.MilkDays) || c.MilkDays[lactation] == 0 {
		return 0, false
	}
	return c.MilkTotal[lactation] / float64(c.MilkDays[lactation]) * LactationYearDays, true
}
