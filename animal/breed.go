// breed
//
// Estrus, heat detection and pregnancy
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

func (c *Cow) reproduce(today Date, day *DayResult) {

	c.scheduleEstrus(today)

	c.detectHeat()

	if c.IsPregnant() {
		c.progressPregnancy(today, day)
	}
}

// Schedule the next estrus if none is pending
func (c *Cow) scheduleEstrus(today Date) {
	if c.EstrusScheduled || c.IsPregnant() {
		return
	}
	p := c.env.Params

	var cycle int
	switch {
	case c.PostCalvingEstrus:
		cycle = roundDays(c.env.Rng.Normal(p.PostCalvingCycleMean, p.PostCalvingCycleSd))
	case c.Parity > 0 || c.DaysBorn > p.PubertyDays:
		cycle = roundDays(c.env.Rng.Normal(p.CycleMean, p.CycleStdDev))
	default:
		return // Not yet at puberty
	}

	c.EstrusScheduled = true
	c.NextEstrus = c.DaysBorn + cycle
	if c.Stage == NotYetActive {
		c.Stage = Cycling
	}

	estrusDay := today + Date(cycle)
	for _, d := range c.EstrusDays {
		if d == estrusDay {
			return
		}
	}
	c.EstrusDays = append(c.EstrusDays, estrusDay)
}

// Heifers can be bred any time, cows only between the voluntary wait
// period and MaxBreedingDim
func (c *Cow) inBreedingWindow() bool {
	if !c.Lactating {
		return true
	}
	return c.DaysInMilk >= c.policy.VoluntaryWaitPeriod() && c.DaysInMilk <= c.env.Params.MaxBreedingDim
}

// On the estrus day the heat is either seen and bred or missed
func (c *Cow) detectHeat() {
	if !c.EstrusScheduled || c.DaysBorn != c.NextEstrus || c.IsPregnant() {
		return
	}
	p := c.env.Params

	if c.inBreedingWindow() && c.env.Rng.Float64() <= p.HeatDetectionRate {
		c.Stage = Pregnant
		c.PregnancyDay = p.ConceptionOffset
		c.DueDay = roundDays(c.env.Rng.Normal(p.GestationMean, p.GestationStdDev))
		return
	}

	c.clearEstrus()
}

// Start a new cycle. A cow that misses her first heat after calving
// goes on regular cycles.
func (c *Cow) clearEstrus() {
	c.EstrusScheduled = false
	c.NextEstrus = 0
	if c.Parity > 0 {
		c.PostCalvingEstrus = false
	}
}

func (c *Cow) progressPregnancy(today Date, day *DayResult) {
	p := c.env.Params

	c.PregnancyDay++

	switch c.PregnancyDay {
	case 0:
		day.Inseminated = true
		c.ServiceDays = append(c.ServiceDays, today)
	case p.FirstCheckDay:
		if c.env.Rng.Float64() > c.ConceptionRate {
			c.losePregnancy() // Did not conceive
		}
	case p.SecondCheckDay:
		if c.env.Rng.Float64() <= p.SecondCheckLoss {
			c.losePregnancy()
		}
	case p.ThirdCheckDay:
		if c.env.Rng.Float64() <= p.ThirdCheckLoss {
			c.losePregnancy()
		}
	case p.DryOffDay:
		c.dryOff()
	}

	if c.IsPregnant() && c.PregnancyDay == c.DueDay {
		c.calve(today, day)
	}
}

func (c *Cow) losePregnancy() {
	c.Stage = Cycling
	c.PregnancyDay = NotPregnantDay
	c.DueDay = 0
	c.clearEstrus()
	c.ConceptionRate = c.policy.OnDiagnosisFailure(c.ConceptionRate)
}

func (c *Cow) dryOff() {
	c.Stage = Dry
	c.Lactating = false
	c.DaysInMilk = 0
}

// Calving starts a lactation whether or not the calf lives
func (c *Cow) calve(today Date, day *DayResult) {
	p := c.env.Params

	day.Calved = true

	c.Stage = Cycling
	c.PregnancyDay = NotPregnantDay
	c.DueDay = 0
	c.Lactating = true
	c.DaysInMilk = 0
	c.EstrusScheduled = false
	c.NextEstrus = 0
	c.PostCalvingEstrus = true
	c.Parity++
	c.ConceptionRate = c.policy.OnCalving(c.ConceptionRate)

	if c.env.Rng.Float64() <= p.StillbirthRate {
		day.Calved = false
		day.Stillborn = true
	}

	c.scheduleInvoluntaryCull(today)
}
