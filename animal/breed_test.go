// breed tests
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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirstEstrusAfterPuberty(t *testing.T) {
	c, err := NewCow(1, EarlyDetection, 0, testEnv(NewRng(11)))
	require.NoError(t, err)

	_, err = advanceThrough(c, 0, 359)
	require.NoError(t, err)
	assert.False(t, c.EstrusScheduled)
	assert.Equal(t, NotYetActive, c.Stage)
	assert.Empty(t, c.EstrusDays)

	_, err = c.Advance(360)
	require.NoError(t, err)
	assert.Equal(t, 361, c.DaysBorn)
	assert.True(t, c.EstrusScheduled)
	assert.Equal(t, Cycling, c.Stage)

	// 3 std devs of the cycle length
	cycle := c.NextEstrus - c.DaysBorn
	assert.GreaterOrEqual(t, cycle, 14)
	assert.LessOrEqual(t, cycle, 28)
	require.Len(t, c.EstrusDays, 1)
	assert.Equal(t, Date(360+cycle), c.EstrusDays[0])
}

func TestMissedHeatReschedules(t *testing.T) {
	c, err := NewCow(1, EarlyDetection, 0, testEnv(newScripted()))
	require.NoError(t, err)

	_, err = advanceThrough(c, 0, firstHeatDay-1)
	require.NoError(t, err)
	assert.Equal(t, []Date{firstHeatDay}, c.EstrusDays)

	_, err = c.Advance(firstHeatDay)
	require.NoError(t, err)
	assert.False(t, c.EstrusScheduled)
	assert.Equal(t, Cycling, c.Stage)

	_, err = c.Advance(firstHeatDay + 1)
	require.NoError(t, err)
	assert.Equal(t, []Date{firstHeatDay, firstHeatDay + 1 + 21}, c.EstrusDays)
	assert.Empty(t, c.ServiceDays)
}

func TestPregnancyToCalving(t *testing.T) {
	// heat seen, conceived, both abortion checks passed, live calf, no cull
	src := newScripted(0.1, 0.1, 0.5, 0.5, 0.5, 0.9)
	c, err := NewCow(1, EarlyDetection, 0, testEnv(src))
	require.NoError(t, err)

	_, err = advanceThrough(c, 0, firstHeatDay)
	require.NoError(t, err)
	assert.Equal(t, Pregnant, c.Stage)
	assert.Equal(t, -1, c.PregnancyDay)
	assert.Equal(t, 278, c.DueDay)

	day, err := c.Advance(serviceDay)
	require.NoError(t, err)
	assert.True(t, day.Inseminated)
	assert.Equal(t, []Date{serviceDay}, c.ServiceDays)

	_, err = advanceThrough(c, serviceDay+1, serviceDay+220)
	require.NoError(t, err)
	assert.Equal(t, Dry, c.Stage)
	assert.True(t, c.IsPregnant())

	_, err = advanceThrough(c, serviceDay+221, calvingDay-1)
	require.NoError(t, err)
	for _, m := range c.MilkStat {
		assert.Equal(t, 0.0, m)
	}

	day, err = c.Advance(calvingDay)
	require.NoError(t, err)
	assert.True(t, day.Calved)
	assert.False(t, day.Stillborn)
	assert.False(t, day.Culled)
	assert.Greater(t, day.Milk, 0.0)

	assert.Equal(t, []Date{calvingDay}, c.CalvingDays)
	assert.Equal(t, 1, c.Parity)
	assert.Equal(t, Cycling, c.Stage)
	assert.True(t, c.Lactating)
	assert.Equal(t, 0, c.DaysInMilk)
	assert.Equal(t, NotPregnantDay, c.PregnancyDay)
	assert.False(t, c.EstrusScheduled)
	assert.True(t, c.PostCalvingEstrus)
	assert.Equal(t, 0.339, c.ConceptionRate)
	assert.False(t, c.HasCullDay)
	assert.Empty(t, src.uniforms)

	// The post calving estrus is drawn the next day
	_, err = c.Advance(calvingDay + 1)
	require.NoError(t, err)
	assert.Equal(t, 1, c.DaysInMilk)
	assert.True(t, c.EstrusScheduled)
	assert.Equal(t, c.DaysBorn+19, c.NextEstrus)
}

func TestFailedFirstCheck(t *testing.T) {
	src := newScripted(0.1, 0.9)
	c, err := NewCow(1, EarlyDetection, 0, testEnv(src))
	require.NoError(t, err)

	_, err = advanceThrough(c, 0, firstCheck)
	require.NoError(t, err)

	assert.Equal(t, Cycling, c.Stage)
	assert.Equal(t, NotPregnantDay, c.PregnancyDay)
	assert.False(t, c.EstrusScheduled)
	assert.InDelta(t, 0.174, c.ConceptionRate, 1e-9)
}

func TestFixedRateKeepsConceptionRate(t *testing.T) {
	src := newScripted(0.1, 0.9)
	c, err := NewCow(1, EarlyDetectionTimedAI, 0, testEnv(src))
	require.NoError(t, err)

	_, err = advanceThrough(c, 0, firstCheck)
	require.NoError(t, err)
	assert.Equal(t, Cycling, c.Stage)
	assert.Equal(t, 0.40, c.ConceptionRate)
}

func TestEarlyAbortion(t *testing.T) {
	src := newScripted(0.1, 0.1, 0.05)
	c, err := NewCow(1, EarlyDetection, 0, testEnv(src))
	require.NoError(t, err)

	_, err = advanceThrough(c, 0, serviceDay+90)
	require.NoError(t, err)
	assert.True(t, c.IsPregnant())

	_, err = c.Advance(serviceDay + 91)
	require.NoError(t, err)
	assert.False(t, c.IsPregnant())
	assert.InDelta(t, 0.174, c.ConceptionRate, 1e-9)
}

func TestStillbirth(t *testing.T) {
	src := newScripted(0.1, 0.1, 0.5, 0.5, 0.01, 0.9)
	c, err := NewCow(1, EarlyDetection, 0, testEnv(src))
	require.NoError(t, err)

	day, err := advanceThrough(c, 0, calvingDay)
	require.NoError(t, err)

	assert.False(t, day.Calved)
	assert.True(t, day.Stillborn)
	assert.Empty(t, c.CalvingDays)
	assert.Equal(t, 1, c.Parity)
	assert.True(t, c.Lactating)
}

func TestOpenCowNotBredPastMaxDim(t *testing.T) {
	src := newScripted(0.1)
	c, err := NewCow(1, EarlyDetection, 0, testEnv(src))
	require.NoError(t, err)
	c.Parity = 1
	c.Lactating = true
	c.DaysInMilk = 401
	c.Stage = Cycling
	c.EstrusScheduled = true
	c.NextEstrus = c.DaysBorn
	c.PostCalvingEstrus = true

	assert.False(t, c.inBreedingWindow())
	c.detectHeat()
	assert.False(t, c.IsPregnant())
	assert.False(t, c.EstrusScheduled)
	assert.False(t, c.PostCalvingEstrus)
	assert.Len(t, src.uniforms, 1) // No detection draw outside the window

	c.DaysInMilk = 49
	assert.False(t, c.inBreedingWindow())
	c.DaysInMilk = 50
	assert.True(t, c.inBreedingWindow())
}
