// cull
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

import (
	"fmt"
	"math"
)

// Which rule culled a cow
type CullRule int

const (
	NotCulled      CullRule = iota
	ScheduledCull           // Involuntary cull chosen at calving
	HeiferOpenCull          // Heifer too old and open
	CowOpenCull             // Cow too far in milk and open
)

// Apply the cull rules that end the day. The scheduled involuntary cull
// comes first, then open heifers and open cows.
func (c *Cow) cullToday(today Date) bool {
	p := c.env.Params

	switch {
	case c.HasCullDay && today >= c.CullDay:
		c.CulledBy = ScheduledCull // CullCause was set when the cull was scheduled
	case c.Parity == 0 && !c.Lactating && !c.IsPregnant() && c.DaysBorn > p.HeiferOpenDays:
		c.CulledBy = HeiferOpenCull
		c.CullCause = fmt.Sprintf("Heifer not pregnant by %d days", p.HeiferOpenDays)
	case c.Lactating && c.DaysInMilk > p.CowOpenDim && !c.IsPregnant():
		c.CulledBy = CowOpenCull
		c.CullCause = fmt.Sprintf("Cow not pregnant by %d DIM", p.CowOpenDim)
	default:
		return false
	}

	c.Stage = Culled
	c.CullDays = append(c.CullDays, today)
	return true
}

// Decide at calving whether this cow will be culled later, why and when
func (c *Cow) scheduleInvoluntaryCull(today Date) {
	t := &c.env.Params.Cull

	if c.env.Rng.Float64() > t.ParityCullRate(c.Parity) {
		return
	}

	// The same draw picks both the cause and the point in its table
	r := c.env.Rng.Float64()
	cause := t.CauseFor(r)
	offset := t.CullDayOffset(cause, r)

	c.HasCullDay = true
	c.CullDay = today + Date(math.Round(offset))
	c.CullCause = cause.String()
}
