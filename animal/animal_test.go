// animal tests
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

func TestNewCow(t *testing.T) {
	c, err := NewCow(1, EarlyDetection, 5, testEnv(newScripted()))
	require.NoError(t, err)

	assert.Equal(t, NotYetActive, c.Stage)
	assert.Equal(t, NotPregnantDay, c.PregnancyDay)
	assert.Equal(t, 40.8, c.Weight)
	assert.Equal(t, 0.20, c.ConceptionRate)
	assert.Equal(t, 50, c.VoluntaryWaitPeriod())
	assert.False(t, c.IsPregnant())
	assert.False(t, c.IsCulled())
}

func TestNewCowErrors(t *testing.T) {
	_, err := NewCow(1, TimedAI, 0, testEnv(newScripted()))
	assert.ErrorIs(t, err, ErrPolicyNotImplemented)

	_, err = NewCow(1, ReproMethod("natural"), 0, testEnv(newScripted()))
	assert.ErrorIs(t, err, ErrUnknownPolicy)

	_, err = NewCow(1, EarlyDetection, 0, Env{Params: DefaultParams()})
	assert.ErrorIs(t, err, ErrMissingParam)
}

func TestStageString(t *testing.T) {
	assert.Equal(t, "Pregnant", Pregnant.String())
	assert.Equal(t, "Stage(9)", Stage(9).String())
}

func TestAdvanceReplayedDay(t *testing.T) {
	c, err := NewCow(1, EarlyDetection, 0, testEnv(newScripted()))
	require.NoError(t, err)

	_, err = c.Advance(10)
	require.NoError(t, err)

	_, err = c.Advance(10)
	assert.ErrorIs(t, err, ErrDayReplayed)
	_, err = c.Advance(9)
	assert.ErrorIs(t, err, ErrDayReplayed)

	_, err = c.Advance(11)
	assert.NoError(t, err)
	assert.Equal(t, 2, c.DaysBorn)
}

func TestGrowthStats(t *testing.T) {
	c, err := NewCow(1, EarlyDetection, 0, testEnv(newScripted()))
	require.NoError(t, err)

	day, err := c.Advance(0)
	require.NoError(t, err)

	// Season 0 calf gain
	assert.InDelta(t, 40.8+0.84, c.Weight, 1e-9)
	assert.InDelta(t, (40.8+0.84)/1000*30+0.84*6, day.Feed, 1e-9)
	assert.InDelta(t, day.Feed*2.6, day.Manure, 1e-9)
	assert.Equal(t, 0.0, day.Milk)

	require.Len(t, c.FeedStat, 1)
	require.Len(t, c.ManureStat, 1)
	require.Len(t, c.MilkStat, 1)
}

func TestMatureWeightStopsGrowth(t *testing.T) {
	c, err := NewCow(1, EarlyDetection, 0, testEnv(newScripted()))
	require.NoError(t, err)
	c.DaysBorn = 200
	c.Weight = 680

	_, err = c.Advance(0)
	require.NoError(t, err)
	assert.Equal(t, 680.0, c.Weight)
}

func TestSeason(t *testing.T) {
	assert.Equal(t, 0, season(0))
	assert.Equal(t, 3, season(93))
	assert.Equal(t, 0, season(180))
	assert.Equal(t, 1, season(-1))
}

func TestRoundDays(t *testing.T) {
	assert.Equal(t, 21, roundDays(20.5))
	assert.Equal(t, 20, roundDays(20.49))
	assert.Equal(t, -3, roundDays(-2.5))
}
