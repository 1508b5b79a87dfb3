// update
//
// The daily update of a cow
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

// Advance the cow through one simulated day and return what happened.
// Each day may be advanced once and days must increase. The steps run in
// a fixed order: the cull rules, growth, days in milk, reproduction and
// then milk.
func (c *Cow) Advance(today Date) (DayResult, error) {

	var day DayResult

	if c.Stage == Culled {
		return day, ErrCulled
	}
	if c.advanced && today <= c.lastDay {
		return day, fmt.Errorf("%w: cow %d day %d, last advanced %d", ErrDayReplayed, c.Id, today, c.lastDay)
	}
	c.advanced = true
	c.lastDay = today

	if c.cullToday(today) {
		day.Culled = true
		return day, nil
	}

	gain := c.weightGain(today)

	c.DaysBorn++
	c.Weight += gain
	day.Manure, day.Feed = c.env.Growth.Grow(Body{DaysBorn: c.DaysBorn, Weight: c.Weight}, gain)

	if c.Lactating {
		c.DaysInMilk++
	}

	c.reproduce(today, &day)

	if c.Lactating {
		day.Milk = c.milk()
	}

	if day.Calved {
		c.CalvingDays = append(c.CalvingDays, today)
	}
	c.MilkStat = append(c.MilkStat, day.Milk)
	c.ManureStat = append(c.ManureStat, day.Manure)
	c.FeedStat = append(c.FeedStat, day.Feed)

	return day, nil
}

// Daily weight gain. Calves gain by the season of the calendar day,
// open growth continues until the mature weight.
func (c *Cow) weightGain(today Date) float64 {
	p := c.env.Params

	if c.DaysBorn <= p.CalfGainDays {
		return c.env.Rng.Normal(p.SeasonGain[season(today)], p.GainStdDev)
	}
	if c.Weight < p.MatureWeight {
		return c.env.Rng.Normal(p.GrowingGain, p.GainStdDev)
	}
	return 0
}

// Season bucket of a calendar day, 0 to 3
func season(today Date) int {
	m := int(today) % 90
	if m < 0 {
		m += 90
	}
	return m % 4
}

// Round a drawn number of days
func roundDays(x float64) int {
	return int(math.Round(x))
}
